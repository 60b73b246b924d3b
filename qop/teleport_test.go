package qop_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitter-badger/qpp/gates"
	"github.com/gitter-badger/qpp/qdim"
	"github.com/gitter-badger/qpp/qmat"
	"github.com/gitter-badger/qpp/qop"
	"github.com/gitter-badger/qpp/states"
)

// teleport runs the qudit teleportation protocol end to end for one random
// input state and returns the norm distance between Bob's corrected state
// and Alice's original.
func teleport(t *testing.T, d int, seed int64) float64 {
	t.Helper()
	dims := qdim.Uniform(3, d)

	// Alice's unknown state and the shared entangled resource.
	psi, err := states.RandKet(d, seed)
	require.NoError(t, err)
	mes, err := states.Mes(d)
	require.NoError(t, err)

	// Circuit measuring in the qudit Bell basis: (CTRL-Xd · (Fd ⊗ Id))†.
	xd, err := gates.Xd(d)
	require.NoError(t, err)
	ctrlX, err := gates.CTRL(xd, []int{0}, []int{1}, 2, d)
	require.NoError(t, err)
	fd, err := gates.Fd(d)
	require.NoError(t, err)
	id, err := gates.Id(d)
	require.NoError(t, err)
	fdId, err := qmat.Kron(fd, id)
	require.NoError(t, err)
	prod, err := qmat.Mul(ctrlX, fdId)
	require.NoError(t, err)
	bell, err := qmat.Adjoint(prod)
	require.NoError(t, err)

	input, err := qmat.Kron(psi, mes)
	require.NoError(t, err)
	output, err := qop.Apply(input, bell, []int{0, 1}, dims)
	require.NoError(t, err)

	// Alice measures her two qudits; Bob holds the residual.
	m, probs, residual, err := qop.Measure(output, []int{0, 1}, dims, seed)
	require.NoError(t, err)
	require.Len(t, probs, d*d)
	midx, err := qdim.N2MultiIdx(m, []int{d, d})
	require.NoError(t, err)

	// Bob's correction Z^m0 · (X†)^m1.
	zd, err := gates.Zd(d)
	require.NoError(t, err)
	zPow, err := qmat.Pow(zd, midx[0])
	require.NoError(t, err)
	xAdj, err := qmat.Adjoint(xd)
	require.NoError(t, err)
	xPow, err := qmat.Pow(xAdj, midx[1])
	require.NoError(t, err)
	correction, err := qmat.Mul(zPow, xPow)
	require.NoError(t, err)
	psiB, err := qmat.Mul(correction, residual)
	require.NoError(t, err)

	diff, err := qop.NormDiff(psiB, psi)
	require.NoError(t, err)
	return diff
}

func TestTeleport_Qudit(t *testing.T) {
	for _, d := range []int{2, 3, 5} {
		d := d
		t.Run(fmt.Sprintf("d=%d", d), func(t *testing.T) {
			// Several seeds so different measurement branches are hit.
			for seed := int64(1); seed <= 8; seed++ {
				diff := teleport(t, d, seed)
				assert.InDelta(t, 0, diff, 1e-9,
					"teleported state must match the input (seed %d)", seed)
			}
		})
	}
}
