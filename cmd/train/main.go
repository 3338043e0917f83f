package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/psychopredict/observability"
	"github.com/danielhkuo/psychopredict/survey"
	"github.com/danielhkuo/psychopredict/training"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := training.DefaultConfig()
	var logLevel, logFormat string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Clean the raw survey and train the treatment model",
		Long: `train reads the raw survey CSV, writes the cleaned dataset, fits the
preprocessing and random forest pipeline on every cleaned row and saves
the model artifact the web server loads.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.InitLogger(observability.LogConfig{Level: logLevel, Format: logFormat})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("training started")
			_, err := training.Run(ctx, cfg, logger)
			if errors.Is(err, survey.ErrInputNotFound) {
				logger.Error("raw dataset not found; place it at the --raw path", "path", cfg.RawPath)
				return err
			}
			if err != nil {
				logger.Error("training failed", "error", err)
				return err
			}
			logger.Info("training finished")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.RawPath, "raw", cfg.RawPath, "raw survey CSV")
	f.StringVar(&cfg.ProcessedPath, "processed", cfg.ProcessedPath, "where to write the cleaned CSV")
	f.StringVar(&cfg.ModelPath, "model", cfg.ModelPath, "where to write the model artifact")
	f.StringVar(&cfg.Label, "label", cfg.Label, "label column")
	f.IntVar(&cfg.Forest.Estimators, "estimators", cfg.Forest.Estimators, "number of trees")
	f.IntVar(&cfg.Forest.MaxDepth, "max-depth", cfg.Forest.MaxDepth, "maximum tree depth (0 for unlimited)")
	f.IntVar(&cfg.Forest.MinSamplesLeaf, "min-leaf", cfg.Forest.MinSamplesLeaf, "minimum samples per leaf")
	f.IntVar(&cfg.Forest.MaxFeatures, "max-features", cfg.Forest.MaxFeatures, "features tried per split (0 for sqrt)")
	f.Uint64Var(&cfg.Forest.Seed, "seed", cfg.Forest.Seed, "random seed")
	f.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f.StringVar(&logFormat, "log-format", "text", "log format (text or json)")

	return cmd
}
