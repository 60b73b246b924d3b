// Package gates - the qudit family parametrized by dimension.

package gates

import (
	"math"
	"math/cmplx"

	"github.com/gitter-badger/qpp/qerr"
	"github.com/gitter-badger/qpp/qmat"
)

// omegaPow returns ω^k for ω = exp(2πi/d), reducing k modulo d first so the
// angle stays small and the roots of unity stay numerically clean.
func omegaPow(d, k int) complex128 {
	k %= d
	if k < 0 {
		k += d
	}
	return cmplx.Exp(complex(0, 2*math.Pi*float64(k)/float64(d)))
}

// Id returns the identity gate on one d-dimensional subsystem. d < 1 yields
// DimsInvalid.
// Complexity: O(d²).
func Id(d int) (*qmat.Dense, error) {
	if d < 1 {
		return nil, qerr.New(qerr.DimsInvalid, "gates.Id")
	}
	return qmat.Identity(d)
}

// Xd returns the generalized shift gate, Xd|j⟩ = |j+1 mod d⟩. For d = 2
// this is Pauli-X. d < 1 yields DimsInvalid.
// Complexity: O(d²).
func Xd(d int) (*qmat.Dense, error) {
	if d < 1 {
		return nil, qerr.New(qerr.DimsInvalid, "gates.Xd")
	}
	data := make([]complex128, d*d)
	for j := 0; j < d; j++ {
		data[((j+1)%d)*d+j] = 1
	}
	return qmat.FromSlice(d, d, data)
}

// Zd returns the generalized clock gate, Zd|j⟩ = ω^j|j⟩ with
// ω = exp(2πi/d). For d = 2 this is Pauli-Z. d < 1 yields DimsInvalid.
// Complexity: O(d²).
func Zd(d int) (*qmat.Dense, error) {
	if d < 1 {
		return nil, qerr.New(qerr.DimsInvalid, "gates.Zd")
	}
	data := make([]complex128, d*d)
	for j := 0; j < d; j++ {
		data[j*d+j] = omegaPow(d, j)
	}
	return qmat.FromSlice(d, d, data)
}

// Fd returns the quantum Fourier gate on one d-dimensional subsystem,
// Fd[j][k] = d^{-1/2} ω^{jk}. For d = 2 this is the Hadamard gate. d < 1
// yields DimsInvalid.
// Complexity: O(d²).
func Fd(d int) (*qmat.Dense, error) {
	if d < 1 {
		return nil, qerr.New(qerr.DimsInvalid, "gates.Fd")
	}
	inv := complex(1/math.Sqrt(float64(d)), 0)
	data := make([]complex128, d*d)
	for j := 0; j < d; j++ {
		for k := 0; k < d; k++ {
			data[j*d+k] = inv * omegaPow(d, j*k)
		}
	}
	return qmat.FromSlice(d, d, data)
}
