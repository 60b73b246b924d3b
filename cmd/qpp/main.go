// Command qpp is the demo surface of the toolkit: it renders the error
// catalog, runs the qudit teleportation walk-through and prints
// error-correcting codewords.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitter-badger/qpp/cmd/ui"
	"github.com/gitter-badger/qpp/qerr"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	logLevel  string
	logFormat string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "qpp",
		Short:   "qpp - a qudit toolkit with a typed precondition-error catalog",
		Long:    getBanner(),
		Version: fmt.Sprintf("%s (built: %s)", Version, BuildTime),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")

	rootCmd.AddCommand(newKindsCmd())
	rootCmd.AddCommand(newTeleportCmd())
	rootCmd.AddCommand(newCodesCmd())

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints the failure, naming the catalog Kind when the error
// carries one.
func reportError(err error) {
	if kind, ok := qerr.KindOf(err); ok {
		fmt.Fprintf(os.Stderr, "%s %s\n", ui.Error("["+kind.String()+"]"), err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", ui.Error("Error:"), err)
}

func getBanner() string {
	return `
qpp - matrices, qudits and a closed catalog of typed precondition errors.

Every validation failure in the library is one of ~30 fixed error kinds,
rendered as "IN <origin>: <description>!". Explore them with:

  qpp kinds                          the full catalog as a table
  qpp teleport --dim 3 --trials 20   qudit teleportation end to end
  qpp codes --code five --word 0     stabilizer codewords
`
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	} else {
		switch logLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if logFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
