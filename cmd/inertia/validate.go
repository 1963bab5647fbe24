package main

import (
	"fmt"

	"github.com/aretw0/inertia/internal/presentation/tui"
	"github.com/aretw0/inertia/pkg/scenario"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scenario>",
	Short: "Check a scenario file for consistency",
	Long:  `Parses the scenario, builds both pose sources against the skeleton and checks the schedule.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		if err := sc.Validate(); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", tui.Status(false, "INVALID"), args[0])
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d bones, %d frames, %d events)\n",
			tui.Status(true, "OK"), sc.Name, len(sc.Bones), sc.Frames(), len(sc.Schedule))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
