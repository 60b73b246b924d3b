// Package states - seeded random state generation.
//
// The RNG policy mirrors the rest of the module: sources are local and
// seed-derived, never shared globals, so results are reproducible and tests
// stay deterministic.

package states

import (
	"math"
	"math/rand"

	"github.com/gitter-badger/qpp/qerr"
	"github.com/gitter-badger/qpp/qmat"
)

// DefaultSeed is used when RandKet receives seed 0, keeping the zero value
// deterministic rather than time-dependent.
const DefaultSeed int64 = 42

// RandKet returns a normalized random ket of dimension d, its amplitudes
// drawn as independent complex Gaussians and rescaled to unit norm. Equal
// seeds give equal states; seed 0 means DefaultSeed. d < 1 yields
// DimsInvalid.
// Complexity: O(d).
func RandKet(d int, seed int64) (*qmat.Dense, error) {
	if d < 1 {
		return nil, qerr.New(qerr.DimsInvalid, "states.RandKet")
	}
	if seed == 0 {
		seed = DefaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	data := make([]complex128, d)
	var norm2 float64
	for i := range data {
		re, im := rng.NormFloat64(), rng.NormFloat64()
		data[i] = complex(re, im)
		norm2 += re*re + im*im
	}
	// A zero draw has measure zero but a guaranteed escape hatch anyway.
	if norm2 == 0 {
		data[0] = 1
		norm2 = 1
	}
	inv := complex(1/math.Sqrt(norm2), 0)
	for i := range data {
		data[i] *= inv
	}
	return qmat.FromSlice(d, 1, data)
}
