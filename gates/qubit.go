// Package gates - the fixed qubit gate set.

package gates

import (
	"math"

	"github.com/gitter-badger/qpp/qmat"
)

// mustFromSlice builds a gate from literal data; shapes are compile-time
// constants here, so construction cannot fail.
func mustFromSlice(rows, cols int, data []complex128) *qmat.Dense {
	m, err := qmat.FromSlice(rows, cols, data)
	if err != nil {
		panic("gates: bad literal gate data: " + err.Error())
	}
	return m
}

// X returns the Pauli-X (NOT) gate.
func X() *qmat.Dense {
	return mustFromSlice(2, 2, []complex128{
		0, 1,
		1, 0,
	})
}

// Y returns the Pauli-Y gate.
func Y() *qmat.Dense {
	return mustFromSlice(2, 2, []complex128{
		0, -1i,
		1i, 0,
	})
}

// Z returns the Pauli-Z gate.
func Z() *qmat.Dense {
	return mustFromSlice(2, 2, []complex128{
		1, 0,
		0, -1,
	})
}

// H returns the Hadamard gate.
func H() *qmat.Dense {
	s := complex(1/math.Sqrt2, 0)
	return mustFromSlice(2, 2, []complex128{
		s, s,
		s, -s,
	})
}

// S returns the phase gate diag(1, i).
func S() *qmat.Dense {
	return mustFromSlice(2, 2, []complex128{
		1, 0,
		0, 1i,
	})
}

// T returns the π/8 gate diag(1, e^{iπ/4}).
func T() *qmat.Dense {
	return mustFromSlice(2, 2, []complex128{
		1, 0,
		0, complex(math.Cos(math.Pi/4), math.Sin(math.Pi/4)),
	})
}

// CNOT returns the controlled-NOT on two qubits, control first.
func CNOT() *qmat.Dense {
	return mustFromSlice(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})
}

// CZ returns the controlled-Z on two qubits.
func CZ() *qmat.Dense {
	return mustFromSlice(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	})
}

// SWAP returns the two-qubit swap gate.
func SWAP() *qmat.Dense {
	return mustFromSlice(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
}
