// Package qop - computational-basis measurement.

package qop

import (
	"math"
	"math/rand"

	"github.com/gitter-badger/qpp/check"
	"github.com/gitter-badger/qpp/internal/midx"
	"github.com/gitter-badger/qpp/qerr"
	"github.com/gitter-badger/qpp/qmat"
)

// DefaultSeed is used when Measure receives seed 0, keeping the zero value
// deterministic rather than time-dependent.
const DefaultSeed int64 = 42

// probTol bounds the numerical drift tolerated in a probability vector:
// entries may undershoot zero and the total may miss one by at most this
// much before the state is reported as broken.
const probTol = 1e-9

// Probs returns the outcome probabilities of a computational-basis
// measurement on the target subsystems of the ket: entry m is the
// probability of reading the basis state with flat target index m. The
// returned vector has one entry per joint target dimension.
//
// Validation mirrors Apply: ZeroSize, DimsInvalid, MatrixNotCvector,
// DimsMismatchCvector, SubsysMismatchDims.
// Complexity: O(Prod(dims)).
func Probs(state *qmat.Dense, target, dims []int) ([]float64, error) {
	const where = "qop.Probs"
	return probs(state, target, dims, where)
}

// probs carries the shared validation and accumulation for Probs and
// Measure, reporting errors under the caller's origin.
func probs(state *qmat.Dense, target, dims []int, where string) ([]float64, error) {
	if err := check.NonZero(state, where); err != nil {
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

	tdims := make([]int, len(target))
	for i, s := range target {
		tdims[i] = dims[s]
	}
	p := make([]float64, midx.Prod(dims, target))

	raw := state.Raw()
	in := make([]int, len(dims))
	tin := make([]int, len(target))
	for col, amp := range raw {
		if amp == 0 {
			continue
		}
		midx.ToMulti(col, dims, in)
		for i, s := range target {
			tin[i] = in[s]
		}
		p[midx.ToFlat(tin, tdims)] += real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	return p, nil
}

// Measure samples a computational-basis measurement on the target
// subsystems of the ket. It returns the sampled flat outcome index, the
// full outcome probability vector (as Probs) and the collapsed residual
// state: the normalized ket of the subsystems NOT measured, conditioned on
// the outcome. Measuring every subsystem leaves a trivial 1-dimensional
// residual with amplitude 1.
//
// Equal inputs and seeds give equal outcomes; seed 0 means DefaultSeed.
// A probability vector broken by numerical drift is reported as a Custom
// error, detail "negative probability" or "probabilities do not sum to
// one".
// Complexity: O(Prod(dims)).
func Measure(state *qmat.Dense, target, dims []int, seed int64) (int, []float64, *qmat.Dense, error) {
	const where = "qop.Measure"

	p, err := probs(state, target, dims, where)
	if err != nil {
		return 0, nil, nil, err
	}
	var sum float64
	for _, v := range p {
		if v < -probTol {
			return 0, nil, nil, qerr.NewCustom(where, "negative probability")
		}
		sum += v
	}
	if math.Abs(sum-1) > probTol {
		return 0, nil, nil, qerr.NewCustom(where, "probabilities do not sum to one")
	}

	if seed == 0 {
		seed = DefaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	// Inverse-CDF draw; drift pushes the final outcome to the last entry.
	m := len(p) - 1
	u := rng.Float64() * sum
	acc := 0.0
	for i, v := range p {
		acc += v
		if u < acc {
			m = i
			break
		}
	}

	residual, err := collapse(state, target, dims, m, p[m])
	if err != nil {
		return 0, nil, nil, err
	}
	return m, p, residual, nil
}

// collapse extracts the post-measurement ket of the unmeasured subsystems
// for outcome m, rescaled to unit norm. Callers guarantee the arguments
// were validated and p is the outcome's probability.
func collapse(state *qmat.Dense, target, dims []int, m int, p float64) (*qmat.Dense, error) {
	measured := make([]bool, len(dims))
	for _, s := range target {
		measured[s] = true
	}
	rest := make([]int, 0, len(dims)-len(target))
	for s := range dims {
		if !measured[s] {
			rest = append(rest, s)
		}
	}

	// Everything measured: the residual is the scalar ket (1).
	if len(rest) == 0 {
		return qmat.Ket(1)
	}

	tdims := make([]int, len(target))
	for i, s := range target {
		tdims[i] = dims[s]
	}
	rdims := make([]int, len(rest))
	for i, s := range rest {
		rdims[i] = dims[s]
	}

	inv := complex(0, 0)
	if p > 0 {
		inv = complex(1/math.Sqrt(p), 0)
	}

	raw := state.Raw()
	out := make([]complex128, midx.Prod(dims, rest))
	in := make([]int, len(dims))
	tin := make([]int, len(target))
	rin := make([]int, len(rest))
	for col, amp := range raw {
		if amp == 0 {
			continue
		}
		midx.ToMulti(col, dims, in)
		for i, s := range target {
			tin[i] = in[s]
		}
		if midx.ToFlat(tin, tdims) != m {
			continue
		}
		for i, s := range rest {
			rin[i] = in[s]
		}
		out[midx.ToFlat(rin, rdims)] = amp * inv
	}
	return qmat.FromSlice(len(out), 1, out)
}
