package main

import (
	"fmt"
	"strings"

	"github.com/reglet-dev/colsim/internal/application/dto"
	"github.com/reglet-dev/colsim/internal/application/services"
	"github.com/spf13/cobra"
)

type sweepOptions struct {
	OutputOptions
	Parameter   string
	Values      []float64
	Concurrency int
}

// sweepCmd represents the sweep command
var sweepCmd = newSweepCmd()

func newSweepCmd() *cobra.Command {
	opts := &sweepOptions{OutputOptions: DefaultOutputOptions()}

	cmd := &cobra.Command{
		Use:   "sweep <column.yaml>",
		Short: "Re-simulate a column with one parameter varied",
		Long: fmt.Sprintf(`Simulate a column, then re-simulate independent copies of it with one
parameter set to each of the given values. Variants that break a column rule
are reported with their violations; they do not stop the sweep.

Parameters: %s`, strings.Join(services.SweepParameters(), ", ")),
		Example: `  colsim sweep column.yaml --param stages --values 16,24,32,40
  colsim sweep column.yaml --param reflux_ratio --values 0.5,1,2 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
			return runSweep(ctx, cmd, opts, args[0])
		}),
	}

	opts.RegisterFlags(cmd)
	cmd.Flags().StringVar(&opts.Parameter, "param", "", "Parameter to vary")
	cmd.Flags().Float64SliceVar(&opts.Values, "values", nil, "Comma-separated values for the parameter")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 0, "Maximum variants simulated at once (default from config, else NumCPU)")
	_ = cmd.MarkFlagRequired("param")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(ctx *CommandContext, cmd *cobra.Command, opts *sweepOptions, path string) error {
	runCtx, cancel := opts.ApplyToContext(ctx.Context)
	defer cancel()

	svc := ctx.Container.SimulationService()
	prepared, err := svc.Prepare(path)
	if err != nil {
		return err
	}
	name := prepared.Definition.Name

	base, err := svc.Run(runCtx, name, prepared.Builder, prepared.Options...)
	if err != nil {
		return err
	}

	results, err := svc.Sweep(runCtx, name, base.Column, opts.Parameter, opts.Values)
	if err != nil {
		return err
	}

	report := dto.NewSweepReport(name, opts.Parameter, results)
	valid, invalid := report.Summary()
	ctx.Logger.Info("sweep complete", "name", name, "parameter", opts.Parameter, "valid", valid, "invalid", invalid)

	writer, closeWriter, err := opts.OpenWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeWriter()

	formatter, err := newFormatter(ctx, &opts.OutputOptions, writer)
	if err != nil {
		return err
	}
	if err := formatter.FormatSweep(report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
