package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gitter-badger/qpp/cmd/ui"
	"github.com/gitter-badger/qpp/qerr"
)

func newKindsCmd() *cobra.Command {
	var origin string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the error catalog",
		Long: `List every error kind with its fixed description and a sample of the
rendered diagnostic, "IN <origin>: <description>!".`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(ui.Title(" Error catalog "))
			fmt.Println()

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Kind", "Description", "Rendered")

			for _, k := range qerr.Kinds() {
				var e qerr.Error
				if k == qerr.Custom {
					e = qerr.NewCustom(origin, "<detail>")
				} else {
					e = qerr.New(k, origin)
				}
				table.Append(ui.Accent(k.String()), k.Description(), e.Error())
			}
			table.Render()

			fmt.Println()
			fmt.Println(ui.Dim(fmt.Sprintf("%d kinds; match with errors.Is(err, qerr.<Kind>)", len(qerr.Kinds()))))
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "qop.Apply", "Origin string used in the sample rendering")

	return cmd
}
