package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/reglet-dev/colsim/internal/application/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// OutputOptions contains the output flags shared by simulate and sweep.
type OutputOptions struct {
	// Format overrides the configured output format when set.
	Format  string
	OutFile string

	Timeout time.Duration
	Compact bool
}

// DefaultOutputOptions returns sensible defaults.
func DefaultOutputOptions() OutputOptions {
	return OutputOptions{
		Timeout: time.Minute,
	}
}

// RegisterFlags adds output flags to a cobra command.
func (opts *OutputOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: table, json, yaml, junit (default from config, else table)")
	cmd.Flags().StringVarP(&opts.OutFile, "output", "o", opts.OutFile,
		"Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.Compact, "compact", opts.Compact,
		"Emit compact JSON instead of indented")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Global timeout for the command (0 to disable)")
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *OutputOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	// No timeout - return no-op cancel
	return ctx, func() {}
}

// ResolveFormat picks the flag value, then the CLI config, then the
// system config default, and checks it against the supported formats.
func (opts *OutputOptions) ResolveFormat(configured string, supported []string) (string, error) {
	format := opts.Format
	if format == "" {
		format = viper.GetString("format")
	}
	if format == "" {
		format = configured
	}
	if !slices.Contains(supported, format) {
		return "", fmt.Errorf("invalid format: %s (valid: %v)", format, supported)
	}
	return format, nil
}

// FormatterOptions builds formatter options from flags and config.
func (opts *OutputOptions) FormatterOptions(configuredNoColor bool) ports.FormatterOptions {
	return ports.FormatterOptions{
		Indent:  !opts.Compact,
		NoColor: configuredNoColor || viper.GetBool("no-color") || opts.OutFile != "",
	}
}

// OpenWriter returns stdout, or the output file when one was requested.
// The returned close function is always non-nil.
func (opts *OutputOptions) OpenWriter(stdout io.Writer) (io.Writer, func(), error) {
	if opts.OutFile == "" {
		return stdout, func() {}, nil
	}

	//nolint:gosec // G304: User-controlled output file path is intentional
	file, err := os.Create(opts.OutFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	slog.Info("writing output", "file", opts.OutFile)

	return file, func() {
		_ = file.Close() // Best-effort cleanup
	}, nil
}

// newFormatter resolves the format and creates a formatter for w.
func newFormatter(ctx *CommandContext, opts *OutputOptions, w io.Writer) (ports.OutputFormatter, error) {
	factory := ctx.Container.FormatterFactory()
	rc := ctx.Container.RuntimeConfig()

	format, err := opts.ResolveFormat(rc.OutputFormat, factory.SupportedFormats())
	if err != nil {
		return nil, err
	}
	return factory.Create(format, w, opts.FormatterOptions(rc.NoColor))
}
