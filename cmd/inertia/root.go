package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/inertia/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inertia",
	Short: "Inertialization blending for skeletal animation",
	Long: `inertia smooths the switch between two animated poses by decaying the offset from the
previously displayed pose instead of cross-fading animations.

Scenario files script a skeleton, two pose sources and a schedule of selection flips.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}
