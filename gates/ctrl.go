// Package gates - the generalized controlled gate.

package gates

import (
	"github.com/gitter-badger/qpp/check"
	"github.com/gitter-badger/qpp/internal/midx"
	"github.com/gitter-badger/qpp/qdim"
	"github.com/gitter-badger/qpp/qerr"
	"github.com/gitter-badger/qpp/qmat"
)

// CTRL builds the controlled gate CTRL-a on n subsystems of dimension d
// each: when every control subsystem carries the same basis value m, a^m
// acts on the target subsystems; any other control configuration acts as
// the identity. For a single qubit control (d = 2) this reduces to the
// familiar controlled-a, e.g. CTRL(X(), []int{0}, []int{1}, 2, 2) is CNOT.
//
// a must be square (MatrixNotSquare) with row count d^len(target)
// (DimsMismatchMatrix); d and n must be positive (DimsInvalid); ctrl and
// target must be non-empty (ZeroSize) and jointly duplicate-free within
// [0, n) (SubsysMismatchDims).
// Complexity: O(d^(2n)) for the result plus O(d · t³) for the target-gate
// powers, t = d^len(target).
func CTRL(a *qmat.Dense, ctrl, target []int, n, d int) (*qmat.Dense, error) {
	const where = "gates.CTRL"

	if err := check.NonZero(a, where); err != nil {
		return nil, err
	}
	if err := check.Square(a, where); err != nil {
		return nil, err
	}
	if d < 1 || n < 1 {
		return nil, qerr.New(qerr.DimsInvalid, where)
	}
	if err := check.NonEmpty(ctrl, where); err != nil {
		return nil, err
	}
	if err := check.NonEmpty(target, where); err != nil {
		return nil, err
	}
	dims := qdim.Uniform(n, d)
	// Joint validation also rejects ctrl/target overlap as a duplicate.
	joint := make([]int, 0, len(ctrl)+len(target))
	joint = append(append(joint, ctrl...), target...)
	if err := check.Subsys(joint, dims, where); err != nil {
		return nil, err
	}
	if qdim.Prod(qdim.Uniform(len(target), d)) != a.Rows() {
		return nil, qerr.New(qerr.DimsMismatchMatrix, where)
	}

	// Powers a^0 .. a^(d-1), flattened for direct indexing.
	t := a.Rows()
	powers := make([][]complex128, d)
	id, err := qmat.Identity(t)
	if err != nil {
		return nil, err
	}
	powers[0] = id.Raw()
	acc := id
	for m := 1; m < d; m++ {
		if acc, err = qmat.Mul(acc, a); err != nil {
			return nil, err
		}
		powers[m] = acc.Raw()
	}

	total := qdim.Prod(dims)
	tdims := qdim.Uniform(len(target), d)
	out := make([]complex128, total*total)
	in := make([]int, n)
	tin := make([]int, len(target))
	tout := make([]int, len(target))
	outIdx := make([]int, n)

	for col := 0; col < total; col++ {
		midx.ToMulti(col, dims, in)

		m, uniform := in[ctrl[0]], true
		for _, c := range ctrl[1:] {
			if in[c] != m {
				uniform = false
				break
			}
		}
		if !uniform {
			// Controls disagree: this basis state passes through.
			out[col*total+col] = 1
			continue
		}

		for i, s := range target {
			tin[i] = in[s]
		}
		tcol := midx.ToFlat(tin, tdims)
		copy(outIdx, in)
		for trow := 0; trow < t; trow++ {
			amp := powers[m][trow*t+tcol]
			if amp == 0 {
				continue
			}
			midx.ToMulti(trow, tdims, tout)
			for i, s := range target {
				outIdx[s] = tout[i]
			}
			out[midx.ToFlat(outIdx, dims)*total+col] = amp
		}
	}
	return qmat.FromSlice(total, total, out)
}
