package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/report"
	"github.com/DjordjeVuckovic/judge-bench/internal/storage/factory"
	"github.com/DjordjeVuckovic/judge-bench/pkg/config/env"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("judge-bench failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg cliConfig

	root := &cobra.Command{
		Use:   "judge-bench",
		Short: "Measure how well simulated LLM judges agree with human experts",
		Long: "judge-bench generates synthetic papers, simulates human and LLM judge ratings, " +
			"correlates them per dimension and validates the structured, subjective and " +
			"improvement hypotheses.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setLogLevel(cfg.LogLevel)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, cfg)
		},
	}

	bindFlags(root, &cfg)
	bindPersistentFlags(root, &cfg)
	root.AddCommand(newShowCmd())

	return root
}

func runRoot(cmd *cobra.Command, cfg cliConfig) error {
	ctx := cmd.Context()

	s, err := resolveSpec(cmd, cfg)
	if err != nil {
		return err
	}
	slog.Info("Loaded experiment spec",
		"experiment_id", s.ExperimentID,
		"seed", *s.Seed,
		"papers", *s.Papers,
		"judges", s.Judges,
		"h3_variant", s.H3Variant,
		"significance", s.Significance,
	)

	doc, err := runExperiment(ctx, s, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	// Sinks open only after the results file is on disk.
	if err := env.LoadDotEnv(cfg.EnvPath); err != nil {
		return err
	}
	sinkCfg := sinkConfig(s).WithFallback(factory.LoadEnv())

	sinks, err := factory.NewSinks(ctx, sinkCfg)
	if err != nil {
		return fmt.Errorf("results written to %s but sinks are unavailable: %w", s.Output.Results, err)
	}
	defer factory.CloseAll(sinks)

	return publish(ctx, doc, sinks)
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <results.json>",
		Short: "Print the console report of a saved results file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := report.ReadJSON(args[0])
			if err != nil {
				return err
			}
			report.WriteTable(doc, cmd.OutOrStdout())
			return nil
		},
	}
}

func setLogLevel(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return err
	}
	slog.SetLogLoggerLevel(l)
	return nil
}
