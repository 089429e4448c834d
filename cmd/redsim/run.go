package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/redstone/constraint"
)

// maxSteps caps a single solve; canonical circuits settle in far
// fewer dispatches, so hitting it means a wiring bug.
const maxSteps = 100_000

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available circuits",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range catalogNames() {
				fmt.Printf("%s  %s\n", accent(fmt.Sprintf("%-15s", name)), muted(catalog[name].about))
			}
			return nil
		},
	}
}

func newRunCommand() *cobra.Command {
	var showEvents bool

	cmd := &cobra.Command{
		Use:   "run <circuit>",
		Short: "Build a circuit, solve it, and print the final states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arena, seed, err := buildCircuit(args[0])
			if err != nil {
				return err
			}

			opts := []constraint.Option{
				constraint.WithMaxSteps(maxSteps),
				constraint.WithLogger(slog.Default()),
			}
			if showEvents {
				opts = append(opts, constraint.WithEventLog())
			}

			cg, err := constraint.Collect(seed, opts...)
			if err != nil {
				return err
			}
			if err = cg.Solve(); err != nil {
				return err
			}

			fmt.Println(renderStates(arena.Nodes()))
			if showEvents {
				fmt.Println(renderEvents(cg.Events()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showEvents, "events", false, "print the solver's diagnostic event log")

	return cmd
}
