package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"betterrest-backend/config"
	"betterrest-backend/internal/app"
	"betterrest-backend/internal/estimator"
	"betterrest-backend/internal/logging"
)

const appVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		modelPath  string
		wakeStr    string
		sleepH     float64
		coffee     int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "bedtime",
		Short:         "Estimate when to go to bed",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, modelPath)
			if err != nil {
				return err
			}

			level := "error"
			if verbose {
				level = "debug"
			}
			logger, err := logging.New(level, true)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			a, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			in := estimator.Input{Wake: a.Defaults.Wake, SleepHours: a.Defaults.SleepHours, CoffeeCups: a.Defaults.CoffeeCups}
			if cmd.Flags().Changed("wake") {
				if in.Wake, err = estimator.ParseWakeTime(wakeStr); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("sleep") {
				in.SleepHours = sleepH
			}
			if cmd.Flags().Changed("coffee") {
				in.CoffeeCups = coffee
			}
			// The form clamps silently; flags are rejected instead.
			if err := in.Validate(); err != nil {
				return err
			}

			form := estimator.NewForm(ctx, a.Estimator, estimator.Defaults(in), estimator.TriggerOnDemand)
			outcome := form.Calculate(ctx)
			printOutcome(cmd.OutOrStdout(), form, outcome)
			if !outcome.OK() {
				return fmt.Errorf("estimation failed: %w", outcome.Err)
			}
			return nil
		},
	}

	cmd.SetVersionTemplate("bedtime v{{.Version}}\n")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a config.yaml (default: built-in settings)")
	cmd.Flags().StringVar(&modelPath, "model", "./config/sleep_calculator.yaml", "Model artifact used when no config is given")
	cmd.Flags().StringVar(&wakeStr, "wake", "", "Wake-up time, e.g. 06:32 or 7:15 AM")
	cmd.Flags().Float64Var(&sleepH, "sleep", 0, "Desired amount of sleep in hours (4-12, quarter-hour steps)")
	cmd.Flags().IntVar(&coffee, "coffee", 0, "Daily coffee intake in cups (0-20)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log model loading details to stderr")

	return cmd
}

func loadConfig(configPath, modelPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	cfg := &config.Config{Model: config.ModelConfig{Source: config.SourceFile, Path: modelPath}}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printOutcome(w io.Writer, form *estimator.Form, outcome estimator.Outcome) {
	in := form.Input()
	fmt.Fprintf(w, "Wake up:      %s\n", in.Wake)
	fmt.Fprintf(w, "Sleep:        %s\n", form.SleepLabel())
	fmt.Fprintf(w, "Coffee:       %s\n", form.CoffeeLabel())
	fmt.Fprintln(w)
	fmt.Fprintln(w, outcome.Title)
	fmt.Fprintln(w, outcome.Message)
}
