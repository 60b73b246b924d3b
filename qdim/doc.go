// Package qdim handles the dimension lists that describe multipartite
// (tensor-structured) objects, and the mixed-radix arithmetic that maps
// between flat indices and per-subsystem multi-indices.
//
// A dimension list dims describes a tensor product of len(dims) subsystems;
// subsystem i has dims[i] basis states. Flat indices are row-major: the last
// subsystem varies fastest, so for dims = [2, 3] the flat order is
// 00 01 02 10 11 12.
//
// The package is pure integer arithmetic. Predicates (Valid, IsPerm,
// SubsysValid) return booleans for use by the validation layer; the two
// index conversions return catalog errors themselves since they are public
// entry points in their own right.
package qdim
