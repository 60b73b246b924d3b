// Package qop - applying a gate to selected subsystems of a ket.

package qop

import (
	"github.com/gitter-badger/qpp/check"
	"github.com/gitter-badger/qpp/internal/midx"
	"github.com/gitter-badger/qpp/qdim"
	"github.com/gitter-badger/qpp/qerr"
	"github.com/gitter-badger/qpp/qmat"
)

// Apply returns the state after acting with gate a on the target subsystems
// of the ket, leaving every other subsystem untouched. dims lists the
// dimension of each subsystem, so the ket's length must equal Prod(dims) and
// the gate's side must equal the product of the target dimensions.
//
// The validation chain reports the first violation: nil/empty operands yield
// ZeroSize, a bad dims list DimsInvalid, a non-ket state MatrixNotCvector, a
// state/dims length disagreement DimsMismatchCvector, a bad target selection
// SubsysMismatchDims, a non-square gate MatrixNotSquare and a gate/target
// dimension disagreement MatrixMismatchSubsys.
// Complexity: O(Prod(dims) * t) with t the gate side.
func Apply(state, a *qmat.Dense, target, dims []int) (*qmat.Dense, error) {
	const where = "qop.Apply"

	if err := check.NonZero(state, where); err != nil {
		return nil, err
	}
	if err := check.NonZero(a, where); err != nil {
		return nil, err
	}
	if err := check.Dims(dims, where); err != nil {
		return nil, err
	}
	if err := check.Cvector(state, where); err != nil {
		return nil, err
	}
	if err := check.DimsMatchCvector(dims, state, where); err != nil {
		return nil, err
	}
	if err := check.NonEmpty(target, where); err != nil {
		return nil, err
	}
	if err := check.Subsys(target, dims, where); err != nil {
		return nil, err
	}
	if err := check.Square(a, where); err != nil {
		return nil, err
	}
	if err := check.MatrixMatchSubsys(a, target, dims, where); err != nil {
		return nil, err
	}

	total := state.Rows()
	t := a.Rows()
	raw := state.Raw()
	gate := a.Raw()
	tdims := make([]int, len(target))
	for i, s := range target {
		tdims[i] = dims[s]
	}

	out := make([]complex128, total)
	in := make([]int, len(dims))
	tin := make([]int, len(target))
	tout := make([]int, len(target))
	outIdx := make([]int, len(dims))

	// Column-wise scatter: each nonzero input amplitude feeds the gate
	// column selected by its target digits.
	for col := 0; col < total; col++ {
		amp := raw[col]
		if amp == 0 {
			continue
		}
		midx.ToMulti(col, dims, in)
		for i, s := range target {
			tin[i] = in[s]
		}
		tcol := midx.ToFlat(tin, tdims)
		copy(outIdx, in)
		for trow := 0; trow < t; trow++ {
			g := gate[trow*t+tcol]
			if g == 0 {
				continue
			}
			midx.ToMulti(trow, tdims, tout)
			for i, s := range target {
				outIdx[s] = tout[i]
			}
			out[midx.ToFlat(outIdx, dims)] += g * amp
		}
	}
	return qmat.FromSlice(total, 1, out)
}

// ApplyQubit is the qubit convenience form of Apply: the state is a ket of
// n qubits and a is a gate on len(target) of them. A gate that is not
// d^len(target) = 2^len(target) sided on a single target is rejected as
// NotQubitMatrix; out-of-range target labels yield NotQubitSubsys; a state
// length that is not a power of two yields DimsMismatchCvector.
// Complexity: as Apply with d = 2.
func ApplyQubit(state, a *qmat.Dense, target ...int) (*qmat.Dense, error) {
	const where = "qop.ApplyQubit"

	if err := check.NonZero(state, where); err != nil {
		return nil, err
	}
	if err := check.Cvector(state, where); err != nil {
		return nil, err
	}
	n, ok := log2(state.Rows())
	if !ok {
		return nil, qerr.New(qerr.DimsMismatchCvector, where)
	}
	dims := qdim.Uniform(n, 2)
	if len(target) == 1 {
		if err := check.QubitMatrix(a, where); err != nil {
			return nil, err
		}
	}
	if err := check.QubitSubsys(target, dims, where); err != nil {
		return nil, err
	}
	return Apply(state, a, target, dims)
}

// log2 returns the exact base-2 logarithm of n and whether n is a positive
// power of two.
func log2(n int) (int, bool) {
	if n < 1 || n&(n-1) != 0 {
		return 0, false
	}
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k, true
}
