// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package training

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/psychopredict/pipeline"
	"github.com/danielhkuo/psychopredict/survey"
)

// Config locates the training inputs and outputs.
type Config struct {
	RawPath       string
	ProcessedPath string
	ModelPath     string
	Label         string
	Forest        pipeline.ForestConfig
}

// DefaultConfig uses the repository layout and the production forest.
func DefaultConfig() Config {
	return Config{
		RawPath:       "data/raw_dataset.csv",
		ProcessedPath: "data/processed_dataset.csv",
		ModelPath:     "ml_model/mental_health_model.gob",
		Label:         survey.ColumnTreatment,
		Forest:        pipeline.DefaultForestConfig(),
	}
}

// Summary describes a completed training run.
type Summary struct {
	Clean            survey.CleanReport
	Features         int
	Classes          []string
	TrainingAccuracy float64
	Duration         time.Duration
}

// Run loads the raw survey, writes the cleaned copy, fits the pipeline on
// every cleaned row and saves it. Nothing is written if the raw file
// cannot be read.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (Summary, error) {
	start := time.Now()
	var sum Summary

	raw, err := survey.LoadCSV(cfg.RawPath)
	if err != nil {
		return sum, err
	}
	logger.Info("data loaded", "path", cfg.RawPath, "rows", raw.Len(), "columns", len(raw.Columns()))

	cleaned, report, err := survey.Clean(raw, survey.CleanOptions{Label: cfg.Label})
	if err != nil {
		return sum, err
	}
	sum.Clean = report
	logger.Info("data cleaned",
		"input_rows", report.InputRows,
		"other_gender_rows", report.OtherGenderRows,
		"filled", report.Filled,
		"fill_values", report.FillValues,
		"dropped_missing_rows", report.DroppedMissingRows,
		"output_rows", report.OutputRows,
	)

	if err := survey.SaveCSV(cfg.ProcessedPath, cleaned); err != nil {
		return sum, err
	}
	logger.Info("processed dataset saved", "path", cfg.ProcessedPath)

	if err := ctx.Err(); err != nil {
		return sum, err
	}

	logger.Info("training model",
		"rows", cleaned.Len(),
		"estimators", cfg.Forest.Estimators,
		"max_depth", cfg.Forest.MaxDepth,
		"min_samples_leaf", cfg.Forest.MinSamplesLeaf,
		"seed", cfg.Forest.Seed,
	)
	p := pipeline.New(cfg.Forest)
	if err := p.Fit(cleaned, cfg.Label); err != nil {
		return sum, fmt.Errorf("fit: %w", err)
	}
	sum.Features = p.Transformer.Width()
	sum.Classes = p.Classes()

	sum.TrainingAccuracy, err = accuracy(p, cleaned, cfg.Label)
	if err != nil {
		return sum, err
	}

	if err := ctx.Err(); err != nil {
		return sum, err
	}
	if err := pipeline.SaveFile(cfg.ModelPath, p); err != nil {
		return sum, err
	}

	sum.Duration = time.Since(start)
	logger.Info("model saved",
		"path", cfg.ModelPath,
		"features", sum.Features,
		"classes", sum.Classes,
		"training_accuracy", sum.TrainingAccuracy,
		"duration_ms", sum.Duration.Milliseconds(),
	)
	return sum, nil
}

// accuracy is the share of rows in t the fitted pipeline labels correctly.
func accuracy(p *pipeline.Pipeline, t *survey.Table, label string) (float64, error) {
	if t.Len() == 0 {
		return 0, nil
	}
	correct := 0
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		got, err := p.Predict(pipeline.Row(rec))
		if err != nil {
			return 0, fmt.Errorf("score row %d: %w", i, err)
		}
		if got == rec[label] {
			correct++
		}
	}
	return float64(correct) / float64(t.Len()), nil
}
