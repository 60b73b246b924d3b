package qdim

import "github.com/gitter-badger/qpp/qerr"

// N2MultiIdx expands a flat row-major index into one digit per subsystem:
// the returned slice m satisfies m[i] in [0, dims[i]) and
// MultiIdx2N(m, dims) == n. The last subsystem is the fastest-varying digit.
//
// Invalid dims yield DimsInvalid; n outside [0, Prod(dims)) yields
// OutOfRange.
// Complexity: O(len(dims)).
func N2MultiIdx(n int, dims []int) ([]int, error) {
	if !Valid(dims) {
		return nil, qerr.New(qerr.DimsInvalid, "qdim.N2MultiIdx")
	}
	if n < 0 || n >= Prod(dims) {
		return nil, qerr.New(qerr.OutOfRange, "qdim.N2MultiIdx")
	}
	midx := make([]int, len(dims))
	for i := len(dims) - 1; i >= 0; i-- {
		midx[i] = n % dims[i]
		n /= dims[i]
	}
	return midx, nil
}

// MultiIdx2N folds a multi-index back into its flat row-major index, the
// inverse of N2MultiIdx.
//
// Invalid dims yield DimsInvalid; a midx/dims length disagreement yields
// SizeMismatch; a digit outside its radix yields OutOfRange.
// Complexity: O(len(dims)).
func MultiIdx2N(midx, dims []int) (int, error) {
	if !Valid(dims) {
		return 0, qerr.New(qerr.DimsInvalid, "qdim.MultiIdx2N")
	}
	if len(midx) != len(dims) {
		return 0, qerr.New(qerr.SizeMismatch, "qdim.MultiIdx2N")
	}
	n := 0
	for i, d := range dims {
		if midx[i] < 0 || midx[i] >= d {
			return 0, qerr.New(qerr.OutOfRange, "qdim.MultiIdx2N")
		}
		n = n*d + midx[i]
	}
	return n, nil
}
