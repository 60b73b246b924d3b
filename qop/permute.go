// Package qop - relabeling subsystems of a state.

package qop

import (
	"github.com/gitter-badger/qpp/check"
	"github.com/gitter-badger/qpp/internal/midx"
	"github.com/gitter-badger/qpp/qerr"
	"github.com/gitter-badger/qpp/qmat"
)

// SysPermute moves subsystem i of the state to position perm[i], for a ket
// or a density matrix over the given dims. The result lives on the permuted
// dimension list; for uniform dims the list is unchanged.
//
// A nil/empty state yields ZeroSize, a bad dims list DimsInvalid, a perm
// that is not a permutation PermInvalid, a perm/dims length disagreement
// PermMismatchDims, a state that is neither square nor a ket
// MatrixNotSquareNorCvector, and a state/dims size disagreement
// DimsMismatchCvector or DimsMismatchMatrix per the state's shape.
// Complexity: O(Prod(dims)) for kets, O(Prod(dims)²) for density matrices.
func SysPermute(state *qmat.Dense, perm, dims []int) (*qmat.Dense, error) {
	const where = "qop.SysPermute"

	if err := check.NonZero(state, where); err != nil {
		return nil, err
	}
	if err := check.Dims(dims, where); err != nil {
		return nil, err
	}
	if err := check.Perm(perm, where); err != nil {
		return nil, err
	}
	if err := check.PermMatchDims(perm, dims, where); err != nil {
		return nil, err
	}

	outDims := make([]int, len(dims))
	for i, p := range perm {
		outDims[p] = dims[i]
	}

	switch {
	case state.IsCvector():
		if err := check.DimsMatchCvector(dims, state, where); err != nil {
			return nil, err
		}
		total := state.Rows()
		raw := state.Raw()
		out := make([]complex128, total)
		in := make([]int, len(dims))
		outIdx := make([]int, len(dims))
		for col := 0; col < total; col++ {
			midx.ToMulti(col, dims, in)
			for i, p := range perm {
				outIdx[p] = in[i]
			}
			out[midx.ToFlat(outIdx, outDims)] = raw[col]
		}
		return qmat.FromSlice(total, 1, out)

	case state.IsSquare():
		if err := check.DimsMatchMat(dims, state, where); err != nil {
			return nil, err
		}
		total := state.Rows()
		raw := state.Raw()
		out := make([]complex128, total*total)
		rin := make([]int, len(dims))
		cin := make([]int, len(dims))
		rout := make([]int, len(dims))
		cout := make([]int, len(dims))
		for r := 0; r < total; r++ {
			midx.ToMulti(r, dims, rin)
			for i, p := range perm {
				rout[p] = rin[i]
			}
			pr := midx.ToFlat(rout, outDims)
			for c := 0; c < total; c++ {
				midx.ToMulti(c, dims, cin)
				for i, p := range perm {
					cout[p] = cin[i]
				}
				out[pr*total+midx.ToFlat(cout, outDims)] = raw[r*total+c]
			}
		}
		return qmat.FromSlice(total, total, out)

	default:
		return nil, qerr.New(qerr.MatrixNotSquareNorCvector, where)
	}
}
