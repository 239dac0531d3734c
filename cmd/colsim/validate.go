package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd checks a definition against the column rules without
// simulating it.
var validateCmd = &cobra.Command{
	Use:   "validate <column.yaml>",
	Short: "Check a column definition against the column rules",
	Long: `Load a column definition and report every rule violation, one per line.
Exits non-zero when the definition is malformed or any rule is violated.`,
	Args: cobra.ExactArgs(1),
	RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		return runValidate(ctx, cmd, args[0])
	}),
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(ctx *CommandContext, cmd *cobra.Command, path string) error {
	def, err := ctx.Container.DefinitionLoader().LoadDefinition(path)
	if err != nil {
		return err
	}

	violations := def.Builder().Validate()
	out := cmd.OutOrStdout()
	if len(violations) == 0 {
		fmt.Fprintf(out, "%s: valid\n", def.Name)
		return nil
	}

	for _, v := range violations {
		fmt.Fprintln(out, v)
	}
	return fmt.Errorf("column %s is invalid: %d violation(s)", def.Name, len(violations))
}
