package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/reglet-dev/colsim/internal/domain/entities"
	"github.com/reglet-dev/colsim/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// InitOptions holds the values of a new column definition.
type InitOptions struct {
	Name          string
	OutputPath    string
	FeedPositions []int
	Stages        int
	Ratio         float64
	Reflux        float64
	Temperature   float64
	Pressure      float64
	NoInteractive bool
	Force         bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a column definition file",
	Long: `Create a column definition file, prompting for any value not given as a
flag. The column rules are checked before anything is written.`,
	Example: `  colsim init
  colsim init --no-interactive --name debutanizer --stages 32 --feed 16,24 \
    --ratio 0.8 --reflux 2.25 --temperature 85 --pressure 1`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("name", "", "Column name")
	initCmd.Flags().Int("stages", 0, "Number of stages")
	initCmd.Flags().IntSlice("feed", nil, "Feed stage positions")
	initCmd.Flags().Float64("ratio", 0, "Distillate to feed ratio")
	initCmd.Flags().Float64("reflux", 0, "Reflux ratio")
	initCmd.Flags().Float64("temperature", 0, "Starting temperature")
	initCmd.Flags().Float64("pressure", 0, "Starting pressure")
	initCmd.Flags().StringP("output", "o", "column.yaml", "Output file path")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
	initCmd.Flags().Bool("no-interactive", false, "Disable interactive prompts")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	var opts InitOptions
	opts.Name, _ = cmd.Flags().GetString("name")
	opts.Stages, _ = cmd.Flags().GetInt("stages")
	opts.FeedPositions, _ = cmd.Flags().GetIntSlice("feed")
	opts.Ratio, _ = cmd.Flags().GetFloat64("ratio")
	opts.Reflux, _ = cmd.Flags().GetFloat64("reflux")
	opts.Temperature, _ = cmd.Flags().GetFloat64("temperature")
	opts.Pressure, _ = cmd.Flags().GetFloat64("pressure")
	opts.OutputPath, _ = cmd.Flags().GetString("output")
	opts.Force, _ = cmd.Flags().GetBool("force")
	opts.NoInteractive, _ = cmd.Flags().GetBool("no-interactive")

	if !opts.NoInteractive {
		if err := promptInitOptions(&opts); err != nil {
			return err
		}
	}

	def, err := buildDefinition(opts)
	if err != nil {
		return err
	}

	if err := saveDefinition(def, opts.OutputPath, opts.Force); err != nil {
		return fmt.Errorf("failed to save definition: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote column definition %s to %s\n", def.Name, opts.OutputPath)
	return nil
}

// buildDefinition checks the options against the column rules and turns
// them into a definition.
func buildDefinition(opts InitOptions) (*config.ColumnDefinition, error) {
	if opts.Name == "" {
		return nil, errors.New("column name is required")
	}

	b := entities.NewColumnBuilder().
		SetStages(opts.Stages).
		SetDistillateToFeedRatio(opts.Ratio).
		SetRefluxRatio(opts.Reflux).
		SetTemperature(opts.Temperature).
		SetPressure(opts.Pressure)
	for _, pos := range opts.FeedPositions {
		b.AddFeedPosition(pos)
	}

	if violations := b.Validate(); len(violations) > 0 {
		return nil, entities.NewValidationError(violations)
	}
	return config.DefinitionFromParameters(opts.Name, b.Parameters()), nil
}

func saveDefinition(def *config.ColumnDefinition, path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	//nolint:gosec // G304: User-controlled output file path is intentional
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return err
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return config.WriteDefinition(file, def)
}

func promptInitOptions(opts *InitOptions) error {
	stages := formatIntField(opts.Stages)
	feeds := joinIntList(opts.FeedPositions)
	ratio := formatFloatField(opts.Ratio)
	reflux := formatFloatField(opts.Reflux)
	temperature := formatFloatField(opts.Temperature)
	pressure := formatFloatField(opts.Pressure)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Column name").
				Value(&opts.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Number of stages").
				Value(&stages).
				Validate(validateInt),
			huh.NewInput().
				Title("Feed positions (comma-separated)").
				Value(&feeds).
				Validate(func(s string) error {
					_, err := parseIntList(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Distillate to feed ratio").
				Value(&ratio).
				Validate(validateFloat),
			huh.NewInput().
				Title("Reflux ratio").
				Value(&reflux).
				Validate(validateFloat),
			huh.NewInput().
				Title("Starting temperature").
				Value(&temperature).
				Validate(validateFloat),
			huh.NewInput().
				Title("Starting pressure").
				Value(&pressure).
				Validate(validateFloat),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	// Inputs were validated by the form.
	opts.Name = strings.TrimSpace(opts.Name)
	opts.Stages, _ = strconv.Atoi(strings.TrimSpace(stages))
	opts.FeedPositions, _ = parseIntList(feeds)
	opts.Ratio, _ = strconv.ParseFloat(strings.TrimSpace(ratio), 64)
	opts.Reflux, _ = strconv.ParseFloat(strings.TrimSpace(reflux), 64)
	opts.Temperature, _ = strconv.ParseFloat(strings.TrimSpace(temperature), 64)
	opts.Pressure, _ = strconv.ParseFloat(strings.TrimSpace(pressure), 64)
	return nil
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func parseIntList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid position %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func joinIntList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func formatIntField(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func formatFloatField(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
