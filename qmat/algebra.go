// SPDX-License-Identifier: MIT

// Package qmat - algebra on Dense values.
//
// Every function allocates a fresh result; operands are never written to and
// results never alias operand storage. Loop orders are fixed, keeping
// results bit-for-bit deterministic across runs.

package qmat

import (
	"math"
	"math/cmplx"

	"github.com/gitter-badger/qpp/qerr"
)

// Add returns a + b. Nil or empty operands yield ZeroSize, differing shapes
// SizeMismatch.
// Complexity: O(rows*cols).
func Add(a, b *Dense) (*Dense, error) {
	if a.Size() == 0 || b.Size() == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Add")
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, qerr.New(qerr.SizeMismatch, "qmat.Add")
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}
	return out, nil
}

// Sub returns a - b under the same contract as Add.
// Complexity: O(rows*cols).
func Sub(a, b *Dense) (*Dense, error) {
	if a.Size() == 0 || b.Size() == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Sub")
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, qerr.New(qerr.SizeMismatch, "qmat.Sub")
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] -= b.data[i]
	}
	return out, nil
}

// Scale returns s*a. A nil or empty operand yields ZeroSize.
// Complexity: O(rows*cols).
func Scale(a *Dense, s complex128) (*Dense, error) {
	if a.Size() == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Scale")
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out, nil
}

// Mul returns the matrix product a*b. Inner dimensions must agree
// (a.Cols() == b.Rows()), otherwise SizeMismatch.
// Complexity: O(a.Rows() * a.Cols() * b.Cols()).
func Mul(a, b *Dense) (*Dense, error) {
	if a.Size() == 0 || b.Size() == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Mul")
	}
	if a.cols != b.rows {
		return nil, qerr.New(qerr.SizeMismatch, "qmat.Mul")
	}
	out := &Dense{rows: a.rows, cols: b.cols, data: make([]complex128, a.rows*b.cols)}
	// i-k-j order walks both operands row-major.
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.data[i*a.cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*b.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}
	return out, nil
}

// Kron returns the Kronecker (tensor) product a ⊗ b, of shape
// (a.Rows()*b.Rows()) × (a.Cols()*b.Cols()).
// Complexity: O(a.Size() * b.Size()).
func Kron(a, b *Dense) (*Dense, error) {
	if a.Size() == 0 || b.Size() == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Kron")
	}
	rows, cols := a.rows*b.rows, a.cols*b.cols
	out := &Dense{rows: rows, cols: cols, data: make([]complex128, rows*cols)}
	for ia := 0; ia < a.rows; ia++ {
		for ja := 0; ja < a.cols; ja++ {
			av := a.data[ia*a.cols+ja]
			if av == 0 {
				continue
			}
			for ib := 0; ib < b.rows; ib++ {
				base := (ia*b.rows+ib)*cols + ja*b.cols
				for jb := 0; jb < b.cols; jb++ {
					out.data[base+jb] = av * b.data[ib*b.cols+jb]
				}
			}
		}
	}
	return out, nil
}

// KronN folds Kron over its arguments left to right: KronN(a, b, c) is
// a ⊗ b ⊗ c. At least one operand is required (ZeroSize otherwise).
// Complexity: product of operand sizes.
func KronN(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.KronN")
	}
	if ms[0].Size() == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.KronN")
	}
	out := ms[0].Clone()
	for _, m := range ms[1:] {
		next, err := Kron(out, m)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

// Transpose returns aᵀ. A nil or empty operand yields ZeroSize.
// Complexity: O(rows*cols).
func Transpose(a *Dense) (*Dense, error) {
	if a.Size() == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Transpose")
	}
	out := &Dense{rows: a.cols, cols: a.rows, data: make([]complex128, len(a.data))}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*out.cols+i] = a.data[i*a.cols+j]
		}
	}
	return out, nil
}

// Conj returns the elementwise complex conjugate.
// Complexity: O(rows*cols).
func Conj(a *Dense) (*Dense, error) {
	if a.Size() == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Conj")
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] = cmplx.Conj(out.data[i])
	}
	return out, nil
}

// Adjoint returns the conjugate transpose a†.
// Complexity: O(rows*cols).
func Adjoint(a *Dense) (*Dense, error) {
	if a.Size() == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Adjoint")
	}
	out := &Dense{rows: a.cols, cols: a.rows, data: make([]complex128, len(a.data))}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*out.cols+i] = cmplx.Conj(a.data[i*a.cols+j])
		}
	}
	return out, nil
}

// Trace returns the sum of diagonal elements. Only square matrices have a
// trace (MatrixNotSquare otherwise).
// Complexity: O(rows).
func Trace(a *Dense) (complex128, error) {
	if a.Size() == 0 {
		return 0, qerr.New(qerr.ZeroSize, "qmat.Trace")
	}
	if !a.IsSquare() {
		return 0, qerr.New(qerr.MatrixNotSquare, "qmat.Trace")
	}
	var t complex128
	for i := 0; i < a.rows; i++ {
		t += a.data[i*a.cols+i]
	}
	return t, nil
}

// Pow returns the k-th matrix power of a square matrix, with Pow(a, 0) the
// identity. Non-square operands yield MatrixNotSquare, negative exponents
// OutOfRange.
// Complexity: O(n³ log k) by binary exponentiation.
func Pow(a *Dense, k int) (*Dense, error) {
	if a.Size() == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Pow")
	}
	if !a.IsSquare() {
		return nil, qerr.New(qerr.MatrixNotSquare, "qmat.Pow")
	}
	if k < 0 {
		return nil, qerr.New(qerr.OutOfRange, "qmat.Pow")
	}
	out, err := Identity(a.rows)
	if err != nil {
		return nil, err
	}
	base := a.Clone()
	for k > 0 {
		if k&1 == 1 {
			if out, err = Mul(out, base); err != nil {
				return nil, err
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Norm returns the Frobenius norm, which for vectors is the usual 2-norm.
// Complexity: O(rows*cols).
func Norm(a *Dense) (float64, error) {
	if a.Size() == 0 {
		return 0, qerr.New(qerr.ZeroSize, "qmat.Norm")
	}
	var s float64
	for _, v := range a.data {
		s += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(s), nil
}

// Dot returns the inner product ⟨a|b⟩ of two kets, conjugating a. Both
// operands must be column vectors (MatrixNotCvector) of equal length
// (SizeMismatch).
// Complexity: O(n).
func Dot(a, b *Dense) (complex128, error) {
	if a.Size() == 0 || b.Size() == 0 {
		return 0, qerr.New(qerr.ZeroSize, "qmat.Dot")
	}
	if !a.IsCvector() || !b.IsCvector() {
		return 0, qerr.New(qerr.MatrixNotCvector, "qmat.Dot")
	}
	if a.rows != b.rows {
		return 0, qerr.New(qerr.SizeMismatch, "qmat.Dot")
	}
	var s complex128
	for i := range a.data {
		s += cmplx.Conj(a.data[i]) * b.data[i]
	}
	return s, nil
}

// EqualApprox reports whether a and b share a shape and agree elementwise
// within tol (in absolute value). Two nil matrices are equal; a nil and a
// non-nil one are not.
// Complexity: O(rows*cols).
func EqualApprox(a, b *Dense, tol float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > tol {
			return false
		}
	}
	return true
}
