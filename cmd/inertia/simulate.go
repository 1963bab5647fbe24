package main

import (
	"fmt"
	"os"

	"github.com/aretw0/inertia/internal/presentation/tui"
	"github.com/aretw0/inertia/pkg/scenario"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario>",
	Short: "Run a scenario and report how the blend behaved",
	Long: `Simulates the scenario with a fixed frame step and prints a summary report.
With --jsonl every frame sample is also written as one JSON object per line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonl, _ := cmd.Flags().GetString("jsonl")
		plain, _ := cmd.Flags().GetBool("plain")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		sc, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		trace, err := scenario.NewRunner(scenario.WithLogger(logger)).Run(cmd.Context(), sc)
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}

		if jsonl != "" {
			if err := writeTrace(jsonl, trace); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if !plain && tui.IsTerminal(out) {
			tui.PrintBanner(out)
		}
		report, err := tui.RendererFor(out, plain)(trace.Markdown())
		if err != nil {
			return err
		}
		fmt.Fprint(out, report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().String("jsonl", "", "Write per-frame samples to this file (- for stdout)")
	simulateCmd.Flags().Bool("plain", false, "Print the report as raw markdown")
}

func writeTrace(path string, trace *scenario.Trace) error {
	if path == "-" {
		return trace.WriteJSONL(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.WriteJSONL(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
