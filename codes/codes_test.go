package codes_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitter-badger/qpp/codes"
	"github.com/gitter-badger/qpp/qerr"
	"github.com/gitter-badger/qpp/qmat"
)

const tol = 1e-12

var allCodes = []codes.Code{codes.FiveQubit, codes.SteaneSevenQubit, codes.ShorNineQubit}

// The defining properties: codewords are unit vectors, orthogonal to each
// other, fixed by every stabilizer generator, and swapped by logical X.
func TestCodewords_DefiningProperties(t *testing.T) {
	for _, c := range allCodes {
		c := c
		t.Run(c.String(), func(t *testing.T) {
			w0, err := codes.Codeword(c, 0)
			require.NoError(t, err)
			w1, err := codes.Codeword(c, 1)
			require.NoError(t, err)
			require.Equal(t, 1<<c.Qubits(), w0.Rows())

			for i, w := range []*qmat.Dense{w0, w1} {
				n, err := qmat.Norm(w)
				require.NoError(t, err)
				assert.InDelta(t, 1, n, tol, "|%d_L> is normalized", i)

				for _, g := range c.Generators() {
					gw, err := codes.Apply(g, w)
					require.NoError(t, err)
					assert.True(t, qmat.EqualApprox(gw, w, tol),
						"%s does not stabilize |%d_L>", g, i)
				}
			}

			olap, err := qmat.Dot(w0, w1)
			require.NoError(t, err)
			assert.InDelta(t, 0, real(olap), tol, "codewords overlap")
			assert.InDelta(t, 0, imag(olap), tol, "codewords overlap")
		})
	}
}

func TestShorCodeword_KnownAmplitudes(t *testing.T) {
	// |0_L> of the Shor code is (|000⟩+|111⟩)^⊗3 / √8: every block is
	// uniform, every populated amplitude is 1/(2√2).
	w0, err := codes.Codeword(codes.ShorNineQubit, 0)
	require.NoError(t, err)

	want := 1 / (2 * math.Sqrt2)
	populated := 0
	for idx, amp := range w0.Raw() {
		uniform := true
		for block := 0; block < 3; block++ {
			bits := (idx >> (block * 3)) & 7
			if bits != 0 && bits != 7 {
				uniform = false
				break
			}
		}
		if uniform {
			populated++
			assert.InDelta(t, want, real(amp), tol, "amplitude at %09b", idx)
			assert.InDelta(t, 0, imag(amp), tol)
		} else {
			assert.Zero(t, amp, "stray amplitude at %09b", idx)
		}
	}
	assert.Equal(t, 8, populated)
}

func TestCodeword_Errors(t *testing.T) {
	for _, c := range allCodes {
		for _, i := range []int{-1, 2, 10} {
			_, err := codes.Codeword(c, i)
			require.ErrorIs(t, err, qerr.NoCodeword, "%s word %d", c, i)
			assert.Equal(t, "IN codes.Codeword: Codeword does not exist!", err.Error())
		}
	}

	_, err := codes.Codeword(codes.Code(99), 0)
	assert.ErrorIs(t, err, qerr.UndefinedType)
	assert.Equal(t, "Code(99)", codes.Code(99).String())
	assert.Zero(t, codes.Code(99).Qubits())
	assert.Nil(t, codes.Code(99).Generators())
}

func TestApply_PauliAction(t *testing.T) {
	// X|0⟩ = |1⟩, Z|1⟩ = -|1⟩, Y|0⟩ = i|1⟩, per qubit within a string.
	k, err := qmat.Ket(1, 0, 0, 0)
	require.NoError(t, err)

	out, err := codes.Apply("XI", k)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0, 1, 0}, out.Raw())

	out, err = codes.Apply("IY", k)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 1i, 0, 0}, out.Raw())

	one, err := qmat.Ket(0, 1)
	require.NoError(t, err)
	out, err = codes.Apply("Z", one)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, -1}, out.Raw())
}

func TestApply_Errors(t *testing.T) {
	k, err := qmat.Ket(1, 0)
	require.NoError(t, err)

	_, err = codes.Apply("XX", k)
	assert.ErrorIs(t, err, qerr.SizeMismatch, "string length disagrees with ket size")

	_, err = codes.Apply("Q", k)
	assert.ErrorIs(t, err, qerr.UndefinedType)

	b, err := qmat.Bra(1, 0)
	require.NoError(t, err)
	_, err = codes.Apply("X", b)
	assert.ErrorIs(t, err, qerr.MatrixNotCvector)
}

func ExampleCodeword() {
	w1, _ := codes.Codeword(codes.FiveQubit, 1)
	fmt.Println(w1.Rows(), "amplitudes")
	// Output: 32 amplitudes
}
