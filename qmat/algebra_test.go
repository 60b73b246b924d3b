// SPDX-License-Identifier: MIT

package qmat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitter-badger/qpp/qerr"
	"github.com/gitter-badger/qpp/qmat"
)

const tol = 1e-12

func mustFromSlice(t *testing.T, rows, cols int, data []complex128) *qmat.Dense {
	t.Helper()
	m, err := qmat.FromSlice(rows, cols, data)
	require.NoError(t, err)
	return m
}

func TestAddSub(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []complex128{1, 2, 3, 4})
	b := mustFromSlice(t, 2, 2, []complex128{10, 20, 30, 40})

	sum, err := qmat.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []complex128{11, 22, 33, 44}, sum.Raw())

	diff, err := qmat.Sub(sum, b)
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(a, diff, tol), "a + b - b == a")

	short := mustFromSlice(t, 1, 4, []complex128{1, 2, 3, 4})
	_, err = qmat.Add(a, short)
	assert.ErrorIs(t, err, qerr.SizeMismatch, "same element count, different shape")
	_, err = qmat.Sub(a, short)
	assert.ErrorIs(t, err, qerr.SizeMismatch)

	_, err = qmat.Add(nil, b)
	assert.ErrorIs(t, err, qerr.ZeroSize)
}

func TestScale(t *testing.T) {
	a := mustFromSlice(t, 1, 2, []complex128{1, 1i})
	out, err := qmat.Scale(a, 2i)
	require.NoError(t, err)
	assert.Equal(t, []complex128{2i, -2}, out.Raw())

	_, err = qmat.Scale(nil, 2)
	assert.ErrorIs(t, err, qerr.ZeroSize)
}

func TestMul(t *testing.T) {
	a := mustFromSlice(t, 2, 3, []complex128{1, 2, 3, 4, 5, 6})
	b := mustFromSlice(t, 3, 2, []complex128{7, 8, 9, 10, 11, 12})

	ab, err := qmat.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []complex128{58, 64, 139, 154}, ab.Raw(), "textbook 2×3 by 3×2 product")

	id, err := qmat.Identity(2)
	require.NoError(t, err)
	again, err := qmat.Mul(id, ab)
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(ab, again, tol), "identity is neutral")

	_, err = qmat.Mul(a, a)
	assert.ErrorIs(t, err, qerr.SizeMismatch, "inner dimensions disagree")
}

func TestKron(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []complex128{1, 2, 3, 4})
	b := mustFromSlice(t, 2, 2, []complex128{0, 5, 6, 7})

	k, err := qmat.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 4, k.Rows())
	require.Equal(t, 4, k.Cols())
	assert.Equal(t, []complex128{
		0, 5, 0, 10,
		6, 7, 12, 14,
		0, 15, 0, 20,
		18, 21, 24, 28,
	}, k.Raw(), "block structure a[i][j] * b")

	// Tensor product of basis kets: |1⟩ ⊗ |0⟩ = |10⟩ = e₂ in dimension 4.
	one := mustFromSlice(t, 2, 1, []complex128{0, 1})
	zero := mustFromSlice(t, 2, 1, []complex128{1, 0})
	ket, err := qmat.Kron(one, zero)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0, 1, 0}, ket.Raw())

	_, err = qmat.Kron(nil, a)
	assert.ErrorIs(t, err, qerr.ZeroSize)
}

func TestKronN(t *testing.T) {
	x := mustFromSlice(t, 2, 2, []complex128{0, 1, 1, 0})
	id, err := qmat.Identity(2)
	require.NoError(t, err)

	xii, err := qmat.KronN(x, id, id)
	require.NoError(t, err)
	assert.Equal(t, 8, xii.Rows())

	// X ⊗ I ⊗ I applied to |000⟩ flips the first qubit: |100⟩ = e₄.
	e0 := mustFromSlice(t, 8, 1, []complex128{1, 0, 0, 0, 0, 0, 0, 0})
	out, err := qmat.Mul(xii, e0)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0, 0, 0, 1, 0, 0, 0}, out.Raw())

	single, err := qmat.KronN(x)
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(x, single, tol), "one operand folds to itself")

	_, err = qmat.KronN()
	assert.ErrorIs(t, err, qerr.ZeroSize, "no operands")
}

func TestTransposeConjAdjoint(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []complex128{1 + 1i, 2, 3 - 1i, 4i})

	tr, err := qmat.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1 + 1i, 3 - 1i, 2, 4i}, tr.Raw())

	cj, err := qmat.Conj(a)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1 - 1i, 2, 3 + 1i, -4i}, cj.Raw())

	ad, err := qmat.Adjoint(a)
	require.NoError(t, err)
	cjtr, err := qmat.Transpose(cj)
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(ad, cjtr, tol), "adjoint is conjugate transpose")

	rect := mustFromSlice(t, 1, 3, []complex128{1, 2i, 3})
	adr, err := qmat.Adjoint(rect)
	require.NoError(t, err)
	assert.Equal(t, 3, adr.Rows(), "adjoint swaps shape")
	assert.Equal(t, []complex128{1, -2i, 3}, adr.Raw())
}

func TestTrace(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []complex128{1, 2, 3, 4i})
	tr, err := qmat.Trace(a)
	require.NoError(t, err)
	assert.Equal(t, 1+4i, tr)

	rect := mustFromSlice(t, 2, 3, make([]complex128, 6))
	_, err = qmat.Trace(rect)
	require.ErrorIs(t, err, qerr.MatrixNotSquare)
	assert.Equal(t, "IN qmat.Trace: Matrix is not square!", err.Error())
}

func TestPow(t *testing.T) {
	x := mustFromSlice(t, 2, 2, []complex128{0, 1, 1, 0})
	id, err := qmat.Identity(2)
	require.NoError(t, err)

	x2, err := qmat.Pow(x, 2)
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(id, x2, tol), "X squares to the identity")

	x5, err := qmat.Pow(x, 5)
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(x, x5, tol), "odd powers of X are X")

	x0, err := qmat.Pow(x, 0)
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(id, x0, tol), "zeroth power is the identity")

	_, err = qmat.Pow(x, -1)
	assert.ErrorIs(t, err, qerr.OutOfRange, "negative exponent")

	rect := mustFromSlice(t, 1, 2, []complex128{1, 2})
	_, err = qmat.Pow(rect, 2)
	assert.ErrorIs(t, err, qerr.MatrixNotSquare)
}

func TestNorm(t *testing.T) {
	v := mustFromSlice(t, 2, 1, []complex128{3, 4i})
	n, err := qmat.Norm(v)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, n, tol, "|(3, 4i)| = 5")

	_, err = qmat.Norm(nil)
	assert.ErrorIs(t, err, qerr.ZeroSize)
}

func TestDot(t *testing.T) {
	zero := mustFromSlice(t, 2, 1, []complex128{1, 0})
	one := mustFromSlice(t, 2, 1, []complex128{0, 1})

	d, err := qmat.Dot(zero, one)
	require.NoError(t, err)
	assert.Zero(t, d, "orthogonal basis kets")

	s := complex(1/math.Sqrt2, 0)
	plus := mustFromSlice(t, 2, 1, []complex128{s, s})
	d, err = qmat.Dot(plus, plus)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(d), tol, "normalized ket has unit self-overlap")

	i1 := mustFromSlice(t, 1, 1, []complex128{1i})
	d, err = qmat.Dot(i1, i1)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), d, "left operand is conjugated")

	row := mustFromSlice(t, 1, 2, []complex128{1, 0})
	_, err = qmat.Dot(row, one)
	assert.ErrorIs(t, err, qerr.MatrixNotCvector)

	three := mustFromSlice(t, 3, 1, []complex128{1, 0, 0})
	_, err = qmat.Dot(zero, three)
	assert.ErrorIs(t, err, qerr.SizeMismatch)
}

func TestEqualApprox(t *testing.T) {
	a := mustFromSlice(t, 2, 1, []complex128{1, 0})
	b := mustFromSlice(t, 2, 1, []complex128{1 + 1e-14, -1e-14})
	c := mustFromSlice(t, 2, 1, []complex128{1, 1e-3})

	assert.True(t, qmat.EqualApprox(a, b, 1e-12))
	assert.False(t, qmat.EqualApprox(a, c, 1e-12))
	assert.False(t, qmat.EqualApprox(a, nil, 1e-12))
	assert.True(t, qmat.EqualApprox(nil, nil, 1e-12))

	row := mustFromSlice(t, 1, 2, []complex128{1, 0})
	assert.False(t, qmat.EqualApprox(a, row, 1e-12), "shape matters")
}
