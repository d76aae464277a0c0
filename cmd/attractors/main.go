package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/san-kum/attractors/internal/config"
	"github.com/san-kum/attractors/internal/gui"
	"github.com/san-kum/attractors/internal/logging"
	"github.com/san-kum/attractors/internal/scenario"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	frames     int
	integrator string
	workers    int
	steps      int
)

// main runs every preset scenario in a raylib window when invoked without
// a subcommand. Errors are printed to stderr and exit with status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "attractors:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "attractors",
		Short:         "strange attractor visualiser",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAll,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list attractor families and their parameters",
		Args:  cobra.NoArgs,
		RunE:  listFamilies,
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "print the preset scenario table and effective config as yaml",
		Args:  cobra.NoArgs,
		RunE:  dumpScenarios,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [scenario]",
		Short: "render one scenario in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  watchScenario,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [scenario]",
		Short: "run a scenario headless and report survivors and throughput",
		Args:  cobra.ExactArgs(1),
		RunE:  benchScenario,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 500, "frames to render")
	benchCmd.Flags().StringVar(&integrator, "integrator", "euler", "stepper (euler|rk4)")
	benchCmd.Flags().IntVar(&workers, "workers", 1, "parallel workers for the integration pass")

	plotCmd := &cobra.Command{
		Use:   "plot [scenario]",
		Short: "plot x/y/z of the first trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotScenario,
	}
	plotCmd.Flags().IntVar(&steps, "steps", 2000, "euler steps")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [scenario]",
		Short: "render a scenario headless and write its last frame as svg to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshotScenario,
	}
	snapshotCmd.Flags().IntVar(&frames, "frames", 500, "frames to render")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "attractors", version)
		},
	}

	rootCmd.AddCommand(listCmd, scenariosCmd, watchCmd, benchCmd, plotCmd, snapshotCmd, versionCmd)
	return rootCmd
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)

	d := scenario.NewDriver(cfg, scenario.OnSurface(gui.Factory), logger)
	results, err := d.Run(cmd.Context())
	if err != nil {
		return err
	}
	logger.Info("done", "scenarios", len(results))
	return nil
}
