package main

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gitter-badger/qpp/cmd/ui"
	"github.com/gitter-badger/qpp/gates"
	"github.com/gitter-badger/qpp/qdim"
	"github.com/gitter-badger/qpp/qmat"
	"github.com/gitter-badger/qpp/qop"
	"github.com/gitter-badger/qpp/states"
)

// fidelityTol bounds the norm difference accepted between the teleported
// state and the input before a trial is counted as failed.
const fidelityTol = 1e-9

func newTeleportCmd() *cobra.Command {
	var (
		dim     int
		trials  int
		seed    int64
		workers int
	)

	cmd := &cobra.Command{
		Use:   "teleport",
		Short: "Run the qudit teleportation walk-through",
		Long: `Teleport random qudit states through a maximally entangled resource and
verify each time that Bob's corrected state matches Alice's input.
Trials run concurrently and are fully deterministic for a given --seed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dim < 2 {
				return fmt.Errorf("teleport: --dim must be at least 2, got %d", dim)
			}
			if trials < 1 {
				return fmt.Errorf("teleport: --trials must be at least 1, got %d", trials)
			}
			if seed == 0 {
				seed = qop.DefaultSeed
			}
			if workers < 1 {
				workers = 1
			}

			fmt.Println(ui.Title(fmt.Sprintf(" Qudit teleportation, d = %d ", dim)))
			fmt.Println()

			// The Bell-basis measurement circuit is trial-independent.
			bell, err := bellCircuit(dim)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(trials,
				progressbar.OptionSetDescription("teleporting"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)

			var (
				mu       sync.Mutex
				counts   = make(map[int]int, dim*dim)
				worstErr float64
				failed   int
			)

			var g errgroup.Group
			g.SetLimit(workers)
			for i := 0; i < trials; i++ {
				i := i
				g.Go(func() error {
					outcome, diff, err := teleportTrial(dim, bell, seed+int64(i))
					if err != nil {
						return err
					}
					slog.Debug("trial done", "trial", i, "outcome", outcome, "normdiff", diff)

					mu.Lock()
					counts[outcome]++
					if diff > worstErr {
						worstErr = diff
					}
					if diff > fidelityTol {
						failed++
					}
					mu.Unlock()
					_ = bar.Add(1)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Outcome", "Alice reads", "Count", "Frequency")
			for m := 0; m < dim*dim; m++ {
				n := counts[m]
				if n == 0 {
					continue
				}
				midx, err := qdim.N2MultiIdx(m, []int{dim, dim})
				if err != nil {
					return err
				}
				label, err := qmat.Format(midx)
				if err != nil {
					return err
				}
				table.Append(
					ui.Accent(fmt.Sprintf("%d", m)),
					label,
					fmt.Sprintf("%d", n),
					fmt.Sprintf("%.3f", float64(n)/float64(trials)),
				)
			}
			table.Render()

			fmt.Println()
			if failed > 0 {
				fmt.Println(ui.Error(fmt.Sprintf("✗ %d/%d trials exceeded the fidelity tolerance", failed, trials)))
				return fmt.Errorf("teleport: %d trials failed", failed)
			}
			fmt.Println(ui.Success(fmt.Sprintf("✓ %d trials, worst norm difference %.2e", trials, worstErr)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&dim, "dim", "d", 3, "Qudit dimension")
	cmd.Flags().IntVarP(&trials, "trials", "n", 20, "Number of teleportation trials")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Base RNG seed (0 means the fixed default)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "Concurrent trial workers")

	return cmd
}

// bellCircuit builds the circuit measuring two qudits in the generalized
// Bell basis: (CTRL-Xd · (Fd ⊗ Id))†.
func bellCircuit(d int) (*qmat.Dense, error) {
	xd, err := gates.Xd(d)
	if err != nil {
		return nil, err
	}
	ctrlX, err := gates.CTRL(xd, []int{0}, []int{1}, 2, d)
	if err != nil {
		return nil, err
	}
	fd, err := gates.Fd(d)
	if err != nil {
		return nil, err
	}
	id, err := gates.Id(d)
	if err != nil {
		return nil, err
	}
	fdId, err := qmat.Kron(fd, id)
	if err != nil {
		return nil, err
	}
	prod, err := qmat.Mul(ctrlX, fdId)
	if err != nil {
		return nil, err
	}
	return qmat.Adjoint(prod)
}

// teleportTrial teleports one random d-dimensional state and returns
// Alice's measurement outcome together with the norm difference between
// Bob's corrected state and the input.
func teleportTrial(d int, bell *qmat.Dense, seed int64) (int, float64, error) {
	dims := qdim.Uniform(3, d)

	psi, err := states.RandKet(d, seed)
	if err != nil {
		return 0, 0, err
	}
	mes, err := states.Mes(d)
	if err != nil {
		return 0, 0, err
	}
	input, err := qmat.Kron(psi, mes)
	if err != nil {
		return 0, 0, err
	}
	output, err := qop.Apply(input, bell, []int{0, 1}, dims)
	if err != nil {
		return 0, 0, err
	}

	m, _, residual, err := qop.Measure(output, []int{0, 1}, dims, seed)
	if err != nil {
		return 0, 0, err
	}
	midx, err := qdim.N2MultiIdx(m, []int{d, d})
	if err != nil {
		return 0, 0, err
	}

	// Bob's correction Z^m0 · (X†)^m1.
	zd, err := gates.Zd(d)
	if err != nil {
		return 0, 0, err
	}
	zPow, err := qmat.Pow(zd, midx[0])
	if err != nil {
		return 0, 0, err
	}
	xd, err := gates.Xd(d)
	if err != nil {
		return 0, 0, err
	}
	xAdj, err := qmat.Adjoint(xd)
	if err != nil {
		return 0, 0, err
	}
	xPow, err := qmat.Pow(xAdj, midx[1])
	if err != nil {
		return 0, 0, err
	}
	correction, err := qmat.Mul(zPow, xPow)
	if err != nil {
		return 0, 0, err
	}
	psiB, err := qmat.Mul(correction, residual)
	if err != nil {
		return 0, 0, err
	}

	diff, err := qop.NormDiff(psiB, psi)
	if err != nil {
		return 0, 0, err
	}
	return m, diff, nil
}
