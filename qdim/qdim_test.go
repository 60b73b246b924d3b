package qdim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitter-badger/qpp/qdim"
	"github.com/gitter-badger/qpp/qerr"
)

func TestProd(t *testing.T) {
	assert.Equal(t, 12, qdim.Prod([]int{2, 2, 3}))
	assert.Equal(t, 3, qdim.Prod([]int{3}))
	assert.Equal(t, 1, qdim.Prod(nil), "empty product is 1")
	assert.Equal(t, 0, qdim.Prod([]int{4, 0}), "zero entry zeroes the product")
}

func TestUniform(t *testing.T) {
	assert.Equal(t, []int{3, 3}, qdim.Uniform(2, 3))
	assert.Empty(t, qdim.Uniform(0, 5))
	assert.Empty(t, qdim.Uniform(-1, 5), "negative count clamps to empty")
}

func TestValid(t *testing.T) {
	assert.True(t, qdim.Valid([]int{2, 3, 2}))
	assert.True(t, qdim.Valid([]int{1}), "dimension one is degenerate but usable")
	assert.False(t, qdim.Valid(nil), "empty list is invalid")
	assert.False(t, qdim.Valid([]int{2, 0, 2}), "zero entry is invalid")
	assert.False(t, qdim.Valid([]int{-3}))
}

func TestEqual(t *testing.T) {
	assert.True(t, qdim.Equal([]int{2, 3}, []int{2, 3}))
	assert.False(t, qdim.Equal([]int{2, 3}, []int{3, 2}))
	assert.False(t, qdim.Equal([]int{2}, []int{2, 2}), "length counts")
	assert.True(t, qdim.Equal(nil, []int{}), "both empty agree")
}

func TestIsPerm(t *testing.T) {
	assert.True(t, qdim.IsPerm([]int{0}))
	assert.True(t, qdim.IsPerm([]int{2, 0, 1}))
	assert.False(t, qdim.IsPerm(nil))
	assert.False(t, qdim.IsPerm([]int{0, 0, 1}), "duplicates are not a permutation")
	assert.False(t, qdim.IsPerm([]int{0, 3, 1}), "label outside 0..n-1")
	assert.False(t, qdim.IsPerm([]int{-1, 0}))
}

func TestSubsysValid(t *testing.T) {
	assert.True(t, qdim.SubsysValid([]int{0, 2}, 3))
	assert.True(t, qdim.SubsysValid(nil, 3), "empty selection is valid here")
	assert.False(t, qdim.SubsysValid([]int{0, 0}, 3), "duplicate labels")
	assert.False(t, qdim.SubsysValid([]int{3}, 3), "label out of range")
	assert.False(t, qdim.SubsysValid([]int{0, 1, 2, 0}, 3), "more labels than subsystems")
	assert.False(t, qdim.SubsysValid([]int{0}, -1))
}

func TestN2MultiIdx_RowMajor(t *testing.T) {
	// dims [2,3]: flat order 00 01 02 10 11 12; the last digit is fastest.
	dims := []int{2, 3}
	want := [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	for n, midx := range want {
		got, err := qdim.N2MultiIdx(n, dims)
		require.NoError(t, err)
		assert.Equal(t, midx, got, "flat index %d", n)
	}
}

func TestN2MultiIdx_Errors(t *testing.T) {
	_, err := qdim.N2MultiIdx(0, nil)
	assert.ErrorIs(t, err, qerr.DimsInvalid)

	_, err = qdim.N2MultiIdx(6, []int{2, 3})
	require.ErrorIs(t, err, qerr.OutOfRange, "index beyond the total dimension")
	assert.Equal(t, "IN qdim.N2MultiIdx: Parameter out of range!", err.Error(),
		"conversion reports itself as origin")

	_, err = qdim.N2MultiIdx(-1, []int{2, 3})
	assert.ErrorIs(t, err, qerr.OutOfRange)
}

func TestMultiIdx2N_RoundTrip(t *testing.T) {
	dims := []int{3, 2, 4}
	for n := 0; n < qdim.Prod(dims); n++ {
		midx, err := qdim.N2MultiIdx(n, dims)
		require.NoError(t, err)
		back, err := qdim.MultiIdx2N(midx, dims)
		require.NoError(t, err)
		assert.Equal(t, n, back, "round trip of %d", n)
	}
}

func TestMultiIdx2N_Errors(t *testing.T) {
	_, err := qdim.MultiIdx2N([]int{0}, []int{0})
	assert.ErrorIs(t, err, qerr.DimsInvalid)

	_, err = qdim.MultiIdx2N([]int{0, 0, 0}, []int{2, 2})
	assert.ErrorIs(t, err, qerr.SizeMismatch, "digit count must match dims")

	_, err = qdim.MultiIdx2N([]int{0, 3}, []int{2, 3})
	assert.ErrorIs(t, err, qerr.OutOfRange, "digit beyond its radix")
}
