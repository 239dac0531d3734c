package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/colsim/internal/infrastructure/container"
	"github.com/spf13/cobra"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
//
// Usage:
//
//	cmd := &cobra.Command{
//	    Use: "simulate",
//	    RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
//	        return runSimulate(ctx, cmd, args[0])
//	    }),
//	}
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		opts := container.Options{
			SystemConfigPath: systemConfigPath,
			Logger:           logger,
		}
		if flag := cmd.Flags().Lookup("concurrency"); flag != nil && flag.Changed {
			opts.SweepConcurrency, _ = cmd.Flags().GetInt("concurrency")
		}

		c, err := container.New(opts)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return handler(&CommandContext{
			Container: c,
			Logger:    logger,
			Context:   ctx,
		}, cmd, args)
	}
}
