package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"minerva/internal/adapters/config"
	"minerva/internal/adapters/errors/noop"
	"minerva/internal/adapters/errors/sentry"
	"minerva/internal/demos"
	"minerva/pkg/errors"
	"minerva/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "minerva",
		Short: "Minerva - agent orchestration pattern demos on the Go ADK",
		Long: `Minerva demonstrates four multi-agent orchestration patterns built on the
Agent Development Kit: LLM-delegated tool calling, fixed sequential
pipelines, parallel fan-out with aggregation, and bounded critique loops.

Set GOOGLE_API_KEY (or GEMINI_API_KEY) in the environment or a .env file
before running.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAssistantCommand())
	root.AddCommand(newArchitecturesCommand())

	return root
}

func newAssistantCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assistant",
		Short: "Run a single search-capable assistant against two sample queries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), func(ctx context.Context, d *demos.Demos) error {
				return d.RunAssistant(ctx)
			})
		},
	}
}

func newArchitecturesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "architectures",
		Short: "Interactive menu of the four orchestration pattern demos",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), func(ctx context.Context, d *demos.Demos) error {
				return d.RunArchitectures(ctx)
			})
		},
	}
}

// runDemo performs the shared bootstrap (config, logger, error tracker,
// API-key check) and hands a ready demo environment to the driver.
func runDemo(ctx context.Context, run func(context.Context, *demos.Demos) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		return err
	}
	defer logger.Sync()

	log := logger.Get()
	log.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	errorTracker := initErrorTracker(cfg, log)
	logger.SetErrorTracker(errorTracker)
	defer errorTracker.Flush(ctx)

	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	d, err := demos.New(cfg, os.Stdout)
	if err != nil {
		return err
	}

	runCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return run(runCtx, d)
}

// initErrorTracker initializes error tracking (Sentry or no-op)
func initErrorTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		log.Debug("Error tracking disabled")
		return noop.New()
	}

	tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnf("Failed to initialize Sentry: %v", err)
		return noop.New()
	}

	log.Info("Error tracking initialized (Sentry)")
	return tracker
}
