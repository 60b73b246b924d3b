package codes

import (
	"fmt"
	"math"

	"github.com/gitter-badger/qpp/qerr"
	"github.com/gitter-badger/qpp/qmat"
)

// Code selects one of the supported quantum error-correcting codes.
type Code int

const (
	// FiveQubit is the [[5,1,3]] perfect code, the smallest code
	// correcting an arbitrary single-qubit error.
	FiveQubit Code = iota + 1
	// SteaneSevenQubit is the [[7,1,3]] CSS code built on the classical
	// Hamming code.
	SteaneSevenQubit
	// ShorNineQubit is the [[9,1,3]] code, bit-flip repetition nested in
	// phase-flip repetition.
	ShorNineQubit
)

// codeSpec fixes a code's stabilizer generators and its logical operators,
// all as Pauli strings over {I, X, Y, Z}, one letter per physical qubit.
// Qubit 0 is the leftmost letter.
type codeSpec struct {
	name       string
	generators []string
	logicalX   string
	logicalZ   string
}

var specs = map[Code]codeSpec{
	FiveQubit: {
		name: "five-qubit",
		generators: []string{
			"XZZXI",
			"IXZZX",
			"XIXZZ",
			"ZXIXZ",
		},
		logicalX: "XXXXX",
		logicalZ: "ZZZZZ",
	},
	SteaneSevenQubit: {
		name: "steane",
		generators: []string{
			"IIIXXXX",
			"IXXIIXX",
			"XIXIXIX",
			"IIIZZZZ",
			"IZZIIZZ",
			"ZIZIZIZ",
		},
		logicalX: "XXXXXXX",
		logicalZ: "ZZZZZZZ",
	},
	ShorNineQubit: {
		name: "shor",
		generators: []string{
			"ZZIIIIIII",
			"IZZIIIIII",
			"IIIZZIIII",
			"IIIIZZIII",
			"IIIIIIZZI",
			"IIIIIIIZZ",
			"XXXXXXIII",
			"IIIXXXXXX",
		},
		// The logical operators swap roles here: Z on every qubit flips
		// the sign inside each GHZ block (the logical bit flip), X on
		// every qubit cycles each block (the logical phase flip).
		logicalX: "ZZZZZZZZZ",
		logicalZ: "XXXXXXXXX",
	},
}

// String returns the conventional short name of the code, or "Code(n)" for
// values outside the catalog.
func (c Code) String() string {
	if s, ok := specs[c]; ok {
		return s.name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Qubits returns the number of physical qubits the code acts on; 0 for an
// unsupported Code value.
func (c Code) Qubits() int {
	if s, ok := specs[c]; ok {
		return len(s.logicalX)
	}
	return 0
}

// Generators returns the code's stabilizer generators as Pauli strings.
// The slice is freshly allocated; callers may modify it.
func (c Code) Generators() []string {
	s, ok := specs[c]
	if !ok {
		return nil
	}
	gs := make([]string, len(s.generators))
	copy(gs, s.generators)
	return gs
}

// Codeword returns the logical basis state |i_L⟩ of the code, normalized.
// Only i = 0 and i = 1 exist (NoCodeword otherwise); an unsupported Code
// value yields UndefinedType.
// Complexity: O(g * 2^n) with g generators on n qubits.
func Codeword(c Code, i int) (*qmat.Dense, error) {
	const where = "codes.Codeword"

	cs, ok := specs[c]
	if !ok {
		return nil, qerr.New(qerr.UndefinedType, where)
	}
	if i != 0 && i != 1 {
		return nil, qerr.New(qerr.NoCodeword, where)
	}

	// Project |0...0⟩ with Π (I + g)/2 over the generators AND the
	// logical Z: the generators alone pin the codespace, which still has
	// a |1_L⟩ component wherever |0...0⟩ overlaps it (the Shor code),
	// and the logical Z projection removes it.
	n := len(cs.logicalX)
	v := make([]complex128, 1<<n)
	v[0] = 1
	for _, g := range append(cs.generators, cs.logicalZ) {
		gv := pauliApply(g, v)
		for k := range v {
			v[k] = (v[k] + gv[k]) / 2
		}
	}

	var norm2 float64
	for _, z := range v {
		norm2 += real(z)*real(z) + imag(z)*imag(z)
	}
	inv := complex(1/math.Sqrt(norm2), 0)
	for k := range v {
		v[k] *= inv
	}

	if i == 1 {
		v = pauliApply(cs.logicalX, v)
	}
	return qmat.FromSlice(len(v), 1, v)
}

// Apply acts with a Pauli string on a ket over the matching number of
// qubits. Letters outside {I, X, Y, Z} yield UndefinedType, a string/ket
// size disagreement SizeMismatch, a non-ket MatrixNotCvector.
// Complexity: O(2^n).
func Apply(pauli string, ket *qmat.Dense) (*qmat.Dense, error) {
	const where = "codes.Apply"

	if ket.Size() == 0 {
		return nil, qerr.New(qerr.ZeroSize, where)
	}
	if !ket.IsCvector() {
		return nil, qerr.New(qerr.MatrixNotCvector, where)
	}
	if ket.Rows() != 1<<len(pauli) {
		return nil, qerr.New(qerr.SizeMismatch, where)
	}
	for _, r := range pauli {
		switch r {
		case 'I', 'X', 'Y', 'Z':
		default:
			return nil, qerr.New(qerr.UndefinedType, where)
		}
	}
	return qmat.FromSlice(ket.Rows(), 1, pauliApply(pauli, ket.Raw()))
}

// pauliApply is the unchecked core of Apply: every Pauli string is a signed
// permutation of the computational basis, so one pass over the amplitudes
// suffices. Qubit 0 is the most significant bit of the flat index.
func pauliApply(pauli string, in []complex128) []complex128 {
	n := len(pauli)
	flip := 0
	for q := 0; q < n; q++ {
		if pauli[q] == 'X' || pauli[q] == 'Y' {
			flip |= 1 << (n - 1 - q)
		}
	}

	out := make([]complex128, len(in))
	for idx, amp := range in {
		if amp == 0 {
			continue
		}
		phase := complex(1, 0)
		for q := 0; q < n; q++ {
			bit := (idx >> (n - 1 - q)) & 1
			switch pauli[q] {
			case 'Z':
				if bit == 1 {
					phase = -phase
				}
			case 'Y':
				// Y|0⟩ = i|1⟩, Y|1⟩ = -i|0⟩.
				if bit == 0 {
					phase *= 1i
				} else {
					phase *= -1i
				}
			}
		}
		out[idx^flip] = phase * amp
	}
	return out
}
