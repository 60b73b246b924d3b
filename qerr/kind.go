// SPDX-License-Identifier: MIT

// Package qerr - Kind discriminant and the fixed description catalog.
//
// One constant per violation category; descriptions are frozen text, matched
// byte-for-byte by downstream tooling and tests. Changing a phrase here is a
// breaking change.

package qerr

import "fmt"

// Kind identifies one precondition-violation category from the closed
// catalog. The zero value is Unknown.
type Kind uint8

// The catalog, grouped by the precondition each Kind represents.
const (
	// Unknown is the last-resort fallback when no other Kind applies.
	Unknown Kind = iota

	// ZeroSize - an object (matrix, vector, dimension list) is empty.
	ZeroSize

	// Shape violations: a matrix/vector argument fails a required shape
	// predicate, or a disjunction of predicates.
	MatrixNotSquare
	MatrixNotCvector
	MatrixNotRvector
	MatrixNotVector
	MatrixNotSquareNorCvector
	MatrixNotSquareNorRvector
	MatrixNotSquareNorVector

	// MatrixMismatchSubsys - a gate's dimension disagrees with the total
	// dimension of the subsystems it is applied to.
	MatrixMismatchSubsys

	// Dimension-list violations: empty or degenerate entries, paired lists
	// disagreeing, or a list product disagreeing with an object's size.
	DimsInvalid
	DimsNotEqual
	DimsMismatchMatrix
	DimsMismatchCvector
	DimsMismatchRvector
	DimsMismatchVector

	// Subsystem and permutation violations.
	SubsysMismatchDims
	PermInvalid
	PermMismatchDims

	// Qubit-specific shape violations: an object expected to be exactly
	// 2-dimensional in the relevant sense is not.
	NotQubitMatrix
	NotQubitCvector
	NotQubitRvector
	NotQubitVector
	NotQubitSubsys

	// Structural violations.
	NotBipartite
	NoCodeword

	// Generic violations.
	OutOfRange
	TypeMismatch
	SizeMismatch
	UndefinedType

	// Custom is the single free-form Kind: its description embeds a
	// caller-supplied detail string (see NewCustom).
	Custom
)

// customPrefix opens every Custom description; the caller's detail follows
// verbatim, so an empty detail leaves the trailing space in place.
const customPrefix = "CUSTOM EXCEPTION "

// catalog binds each Kind to its constant name and its fixed description.
// Index keys keep the binding exhaustive and in declaration order.
var catalog = [...]struct {
	name string
	desc string
}{
	Unknown:                   {"Unknown", "UNKNOWN EXCEPTION"},
	ZeroSize:                  {"ZeroSize", "Object has zero size"},
	MatrixNotSquare:           {"MatrixNotSquare", "Matrix is not square"},
	MatrixNotCvector:          {"MatrixNotCvector", "Matrix is not a column vector"},
	MatrixNotRvector:          {"MatrixNotRvector", "Matrix is not a row vector"},
	MatrixNotVector:           {"MatrixNotVector", "Matrix is not a vector"},
	MatrixNotSquareNorCvector: {"MatrixNotSquareNorCvector", "Matrix is not square nor column vector"},
	MatrixNotSquareNorRvector: {"MatrixNotSquareNorRvector", "Matrix is not square nor row vector"},
	MatrixNotSquareNorVector:  {"MatrixNotSquareNorVector", "Matrix is not square nor vector"},
	MatrixMismatchSubsys:      {"MatrixMismatchSubsys", "Matrix mismatch subsystems"},
	DimsInvalid:               {"DimsInvalid", "Invalid dimension(s)"},
	DimsNotEqual:              {"DimsNotEqual", "Dimensions not equal"},
	DimsMismatchMatrix:        {"DimsMismatchMatrix", "Dimension(s) mismatch matrix size"},
	DimsMismatchCvector:       {"DimsMismatchCvector", "Dimension(s) mismatch column vector size"},
	DimsMismatchRvector:       {"DimsMismatchRvector", "Dimension(s) mismatch row vector size"},
	DimsMismatchVector:        {"DimsMismatchVector", "Dimension(s) mismatch vector size"},
	SubsysMismatchDims:        {"SubsysMismatchDims", "Subsystems mismatch dimensions"},
	PermInvalid:               {"PermInvalid", "Invalid permutation"},
	PermMismatchDims:          {"PermMismatchDims", "Permutation mismatch dimensions"},
	NotQubitMatrix:            {"NotQubitMatrix", "Matrix is not 2 x 2"},
	NotQubitCvector:           {"NotQubitCvector", "Column vector is not 2 x 1"},
	NotQubitRvector:           {"NotQubitRvector", "Row vector is not 1 x 2"},
	NotQubitVector:            {"NotQubitVector", "Vector is not 2 x 1 nor 1 x 2"},
	NotQubitSubsys:            {"NotQubitSubsys", "Subsystems are not qubits"},
	NotBipartite:              {"NotBipartite", "Not bi-partite"},
	NoCodeword:                {"NoCodeword", "Codeword does not exist"},
	OutOfRange:                {"OutOfRange", "Parameter out of range"},
	TypeMismatch:              {"TypeMismatch", "Type mismatch"},
	SizeMismatch:              {"SizeMismatch", "Size mismatch"},
	UndefinedType:             {"UndefinedType", "Not defined for this type"},
	Custom:                    {"Custom", "CUSTOM EXCEPTION"},
}

// String returns the constant name of k, or "Kind(n)" for values outside
// the catalog.
// Complexity: O(1).
func (k Kind) String() string {
	if int(k) < len(catalog) {
		return catalog[k].name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Description returns the fixed description phrase bound to k. For Custom it
// returns the bare category label; the full description of a Custom error
// appends the caller's detail (see Error.Describe). Values outside the
// catalog fall back to the Unknown text, keeping Description total.
// Complexity: O(1).
func (k Kind) Description() string {
	if int(k) < len(catalog) {
		return catalog[k].desc
	}
	return catalog[Unknown].desc
}

// Error makes Kind usable wherever an error is expected, most importantly as
// an errors.Is target:
//
//	errors.Is(err, qerr.MatrixNotSquare)
//
// The message is the bare description; reportable values carrying an origin
// are built with New.
func (k Kind) Error() string {
	return k.Description()
}

// Kinds returns every cataloged Kind in declaration order. The slice is
// freshly allocated; callers may modify it.
// Complexity: O(n) with n = catalog size.
func Kinds() []Kind {
	ks := make([]Kind, len(catalog))
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}
