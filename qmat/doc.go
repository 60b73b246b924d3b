// SPDX-License-Identifier: MIT

// Package qmat provides the dense complex linear algebra the rest of the
// module is built on: row-major complex128 matrices, with kets and bras
// represented as n×1 and 1×n matrices.
//
// Dense is the single concrete type. Constructors validate shape and copy
// their input; accessors (At, Set) bounds-check and return catalog errors
// instead of panicking; algebra lives in package-level functions (Add, Mul,
// Kron, Adjoint, Pow, ...) that allocate fresh results and never alias their
// operands' storage.
//
// All failures are reported through the qerr catalog: shape constructors
// raise ZeroSize, index accessors OutOfRange, operand disagreements
// SizeMismatch, square-only operations MatrixNotSquare, and the Format
// display helper UndefinedType for dynamic types it does not cover.
//
// The package has no notion of subsystems or tensor structure; that layer
// (dimension lists, multi-indices) belongs to qdim and qop.
package qmat
