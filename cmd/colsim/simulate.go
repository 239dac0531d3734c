package main

import (
	"fmt"

	"github.com/reglet-dev/colsim/internal/application/dto"
	"github.com/reglet-dev/colsim/internal/domain/lifecycle"
	"github.com/spf13/cobra"
)

const (
	untilConfigured = "configured"
	untilEquations  = "equations"
	untilSimulated  = "simulated"
)

type simulateOptions struct {
	OutputOptions
	Until string
}

// simulateCmd represents the simulate command
var simulateCmd = newSimulateCmd()

func newSimulateCmd() *cobra.Command {
	opts := &simulateOptions{OutputOptions: DefaultOutputOptions(), Until: untilSimulated}

	cmd := &cobra.Command{
		Use:   "simulate <column.yaml>",
		Short: "Build, derive equations for and simulate a column",
		Long: `Load a column definition, build it, derive its balance equations and
simulate its stage profiles.

Use --until to stop the lifecycle early:
  --until configured   Report the verified parameters only
  --until equations    Report parameters and derived equations
  --until simulated    Full run with stage profiles (default)`,
		Args: cobra.ExactArgs(1),
		RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
			return runSimulate(ctx, cmd, opts, args[0])
		}),
	}

	opts.RegisterFlags(cmd)
	cmd.Flags().StringVar(&opts.Until, "until", opts.Until, "Last lifecycle phase to run: configured, equations, simulated")
	return cmd
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(ctx *CommandContext, cmd *cobra.Command, opts *simulateOptions, path string) error {
	runCtx, cancel := opts.ApplyToContext(ctx.Context)
	defer cancel()

	svc := ctx.Container.SimulationService()
	prepared, err := svc.Prepare(path)
	if err != nil {
		return err
	}
	name := prepared.Definition.Name

	var report *dto.SimulationReport
	switch opts.Until {
	case untilSimulated:
		run, err := svc.Run(runCtx, name, prepared.Builder, prepared.Options...)
		if err != nil {
			return err
		}
		report, err = dto.NewRunReport(run)
		if err != nil {
			return err
		}
	case untilConfigured, untilEquations:
		configured, err := lifecycle.Build(prepared.Builder, prepared.Options...)
		if err != nil {
			return fmt.Errorf("column %s: %w", name, err)
		}
		var col lifecycle.Any = configured
		if opts.Until == untilEquations {
			col = lifecycle.DeriveEquations(configured)
		}
		report, err = dto.NewSimulationReport(name, col)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid --until value: %s (valid: %s, %s, %s)",
			opts.Until, untilConfigured, untilEquations, untilSimulated)
	}

	writer, closeWriter, err := opts.OpenWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeWriter()

	formatter, err := newFormatter(ctx, &opts.OutputOptions, writer)
	if err != nil {
		return err
	}
	if err := formatter.FormatSimulation(report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
