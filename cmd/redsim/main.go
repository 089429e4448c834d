// Command redsim builds canonical redstone circuits, solves them to
// their steady state, and prints the resulting node states.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var debug bool

	root := &cobra.Command{
		Use:           "redsim",
		Short:         "Steady-state redstone circuit simulator",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "stream solver events at debug level")

	root.AddCommand(newListCommand())
	root.AddCommand(newRunCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMsg(err.Error()))
		os.Exit(1)
	}
}
