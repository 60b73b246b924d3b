package states

import (
	"math"

	"github.com/gitter-badger/qpp/qerr"
	"github.com/gitter-badger/qpp/qmat"
)

// Zero returns the ground state |0⟩ of one d-dimensional subsystem. d < 1
// yields DimsInvalid.
// Complexity: O(d).
func Zero(d int) (*qmat.Dense, error) {
	if d < 1 {
		return nil, qerr.New(qerr.DimsInvalid, "states.Zero")
	}
	data := make([]complex128, d)
	data[0] = 1
	return qmat.FromSlice(d, 1, data)
}

// Basis returns the computational basis state |j⟩ in dimension d. d < 1
// yields DimsInvalid; j outside [0, d) yields OutOfRange.
// Complexity: O(d).
func Basis(d, j int) (*qmat.Dense, error) {
	if d < 1 {
		return nil, qerr.New(qerr.DimsInvalid, "states.Basis")
	}
	if j < 0 || j >= d {
		return nil, qerr.New(qerr.OutOfRange, "states.Basis")
	}
	data := make([]complex128, d)
	data[j] = 1
	return qmat.FromSlice(d, 1, data)
}

// Mes returns the maximally entangled state of two d-dimensional
// subsystems, d^{-1/2} Σ_j |j⟩|j⟩, as a d²-dimensional ket. d < 1 yields
// DimsInvalid.
// Complexity: O(d²).
func Mes(d int) (*qmat.Dense, error) {
	if d < 1 {
		return nil, qerr.New(qerr.DimsInvalid, "states.Mes")
	}
	inv := complex(1/math.Sqrt(float64(d)), 0)
	data := make([]complex128, d*d)
	for j := 0; j < d; j++ {
		data[j*d+j] = inv
	}
	return qmat.FromSlice(d*d, 1, data)
}

// Bell returns the Bell state (|00⟩ + |11⟩)/√2, the qubit case of Mes.
func Bell() *qmat.Dense {
	b, err := Mes(2)
	if err != nil {
		panic("states: Mes(2) cannot fail: " + err.Error())
	}
	return b
}
