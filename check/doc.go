// Package check hosts the precondition checks shared by the library's public
// operations. Each check inspects one structural property (shape, dimension
// list, subsystem selection, permutation) and, on violation, constructs the
// matching catalog error with the caller-supplied origin:
//
//	if err := check.Square(a, "qop.Apply"); err != nil {
//	    return nil, err // IN qop.Apply: Matrix is not square!
//	}
//
// The origin names the public operation on whose behalf the check runs, not
// the check itself; it travels verbatim into the rendered diagnostic. A nil
// return means the property holds.
//
// Checks verify exactly one property each and are meant to be chained. The
// conventional order, used across qop and gates: object non-emptiness first
// (ZeroSize), then dimension-list validity, then dims-vs-object size, then
// subsystem/permutation properties, then gate shape. The first violated
// precondition wins.
package check
