// SPDX-License-Identifier: MIT

// Package qerr is the error currency of the qpp module: a closed catalog of
// precondition violations raised by matrix, vector, dimension, permutation
// and subsystem validation across the library.
//
// # Model
//
// Every reportable failure is an immutable Error value made of exactly three
// parts:
//
//   - a Kind, the discriminant selecting one fixed description phrase;
//   - an origin ("where"), a caller-supplied string naming the operation
//     that detected the violation, stored verbatim (it may be empty and is
//     never validated or normalized);
//   - for the single free-form Kind (Custom) only, a detail string embedded
//     in the description.
//
// The rendered diagnostic is derived on demand, never stored:
//
//	"IN " + where + ": " + description + "!"
//
// so e.g. New(MatrixNotSquare, "qop.Apply") reports
//
//	IN qop.Apply: Matrix is not square!
//
// # Construction and matching
//
// Validation sites construct errors with New (fixed kinds) or NewCustom and
// return them up the call chain; construction never fails, whatever the
// origin content. Callers match without knowing the concrete kind up front:
//
//	if errors.Is(err, qerr.DimsInvalid) { ... }
//
//	if k, ok := qerr.KindOf(err); ok {
//	    switch k {
//	    case qerr.PermInvalid, qerr.PermMismatchDims:
//	        ...
//	    }
//	}
//
// Kind itself satisfies the error interface, so the catalog constants double
// as matching targets; reportable values are still built through New so that
// an origin travels with them.
//
// # Extension policy
//
// The catalog is closed: a new violation category is added by declaring a
// new Kind constant with its own description, never by widening the meaning
// of an existing one. Unknown is a last-resort fallback, not a bucket.
//
// Error values are plain immutable data. They may be constructed, rendered
// and propagated concurrently without coordination.
package qerr
