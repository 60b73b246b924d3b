package main

import (
	"fmt"
	"math/cmplx"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gitter-badger/qpp/cmd/ui"
	"github.com/gitter-badger/qpp/codes"
	"github.com/gitter-badger/qpp/qmat"
)

// codeNames maps the --code flag values onto the catalog.
var codeNames = map[string]codes.Code{
	"five":   codes.FiveQubit,
	"steane": codes.SteaneSevenQubit,
	"shor":   codes.ShorNineQubit,
}

func newCodesCmd() *cobra.Command {
	var (
		codeName string
		word     int
	)

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "Print an error-correcting codeword",
		Long: `Print the nonzero amplitudes of a logical codeword of the five-qubit,
Steane or Shor code, together with the code's stabilizer generators.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, ok := codeNames[codeName]
			if !ok {
				return fmt.Errorf("codes: unknown --code %q (want five, steane or shor)", codeName)
			}

			w, err := codes.Codeword(code, word)
			if err != nil {
				return err
			}

			n := code.Qubits()
			fmt.Println(ui.Title(fmt.Sprintf(" %s code, |%d_L> on %d qubits ", code, word, n)))
			fmt.Println()
			fmt.Println(ui.Dim("stabilizer generators: " + strings.Join(code.Generators(), ", ")))
			fmt.Println()

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Basis state", "Amplitude")
			for idx, amp := range w.Raw() {
				if cmplx.Abs(amp) < 1e-12 {
					continue
				}
				label, err := qmat.Format(amp)
				if err != nil {
					return err
				}
				table.Append(
					ui.Accent(fmt.Sprintf("|%0*b>", n, idx)),
					label,
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&codeName, "code", "c", "five", "Code: five, steane or shor")
	cmd.Flags().IntVarP(&word, "word", "i", 0, "Logical basis index (0 or 1)")

	return cmd
}
