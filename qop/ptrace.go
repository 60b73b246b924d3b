// Package qop - projectors, partial traces and distances.

package qop

import (
	"github.com/gitter-badger/qpp/check"
	"github.com/gitter-badger/qpp/qmat"
)

// Proj returns the projector |ψ⟩⟨ψ| onto the ket, the density matrix of
// the pure state. A nil/empty argument yields ZeroSize, a non-ket
// MatrixNotCvector.
// Complexity: O(n²).
func Proj(ket *qmat.Dense) (*qmat.Dense, error) {
	const where = "qop.Proj"

	if err := check.NonZero(ket, where); err != nil {
		return nil, err
	}
	if err := check.Cvector(ket, where); err != nil {
		return nil, err
	}
	adj, err := qmat.Adjoint(ket)
	if err != nil {
		return nil, err
	}
	return qmat.Mul(ket, adj)
}

// PTrace1 traces out the FIRST part of a bipartite ket, returning the
// reduced density matrix of the second part. dims must name exactly two
// parts (NotBipartite otherwise) whose product matches the ket's length
// (DimsMismatchCvector).
// Complexity: O(dims[0] * dims[1]²).
func PTrace1(ket *qmat.Dense, dims []int) (*qmat.Dense, error) {
	const where = "qop.PTrace1"

	raw, d0, d1, err := bipartiteKet(ket, dims, where)
	if err != nil {
		return nil, err
	}
	// ρ_B[j][j'] = Σ_i ψ[i,j] conj(ψ[i,j']).
	out := make([]complex128, d1*d1)
	for i := 0; i < d0; i++ {
		row := raw[i*d1 : (i+1)*d1]
		for j, vj := range row {
			if vj == 0 {
				continue
			}
			for jp, vjp := range row {
				out[j*d1+jp] += vj * conj(vjp)
			}
		}
	}
	return qmat.FromSlice(d1, d1, out)
}

// PTrace2 traces out the SECOND part of a bipartite ket, returning the
// reduced density matrix of the first part, under the same contract as
// PTrace1.
// Complexity: O(dims[0]² * dims[1]).
func PTrace2(ket *qmat.Dense, dims []int) (*qmat.Dense, error) {
	const where = "qop.PTrace2"

	raw, d0, d1, err := bipartiteKet(ket, dims, where)
	if err != nil {
		return nil, err
	}
	// ρ_A[i][i'] = Σ_j ψ[i,j] conj(ψ[i',j]).
	out := make([]complex128, d0*d0)
	for i := 0; i < d0; i++ {
		for ip := 0; ip < d0; ip++ {
			var s complex128
			for j := 0; j < d1; j++ {
				s += raw[i*d1+j] * conj(raw[ip*d1+j])
			}
			out[i*d0+ip] = s
		}
	}
	return qmat.FromSlice(d0, d0, out)
}

// bipartiteKet validates the shared PTrace preconditions and hands back
// the raw amplitudes with the two part dimensions.
func bipartiteKet(ket *qmat.Dense, dims []int, where string) ([]complex128, int, int, error) {
	if err := check.NonZero(ket, where); err != nil {
		return nil, 0, 0, err
	}
	if err := check.Bipartite(dims, where); err != nil {
		return nil, 0, 0, err
	}
	if err := check.Dims(dims, where); err != nil {
		return nil, 0, 0, err
	}
	if err := check.Cvector(ket, where); err != nil {
		return nil, 0, 0, err
	}
	if err := check.DimsMatchCvector(dims, ket, where); err != nil {
		return nil, 0, 0, err
	}
	return ket.Raw(), dims[0], dims[1], nil
}

// NormDiff returns the 2-norm distance ‖a - b‖ between two kets. Both must
// be column vectors (MatrixNotCvector) of equal length (SizeMismatch).
// Complexity: O(n).
func NormDiff(a, b *qmat.Dense) (float64, error) {
	const where = "qop.NormDiff"

	if err := check.NonZero(a, where); err != nil {
		return 0, err
	}
	if err := check.NonZero(b, where); err != nil {
		return 0, err
	}
	if err := check.Cvector(a, where); err != nil {
		return 0, err
	}
	if err := check.Cvector(b, where); err != nil {
		return 0, err
	}
	if err := check.SameSize(a, b, where); err != nil {
		return 0, err
	}
	diff, err := qmat.Sub(a, b)
	if err != nil {
		return 0, err
	}
	return qmat.Norm(diff)
}

func conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
