// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package predictor serves predictions from a loaded pipeline artifact.
package predictor

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/danielhkuo/psychopredict/models"
	"github.com/danielhkuo/psychopredict/observability"
	"github.com/danielhkuo/psychopredict/pipeline"
)

// Predictor wraps one fitted pipeline. The pipeline is never modified, so a
// single Predictor is shared by all requests.
type Predictor struct {
	pipeline *pipeline.Pipeline
	positive int
	metrics  *observability.Metrics
}

// New wraps p. positiveClass names the label whose probability is reported
// as the confidence. metrics may be nil.
func New(p *pipeline.Pipeline, positiveClass string, metrics *observability.Metrics) (*Predictor, error) {
	positive := slices.Index(p.Classes(), positiveClass)
	if positive < 0 {
		return nil, fmt.Errorf("predictor: class %q not in model classes %v", positiveClass, p.Classes())
	}
	return &Predictor{pipeline: p, positive: positive, metrics: metrics}, nil
}

// Load reads the artifact at path once and wraps it.
func Load(path, positiveClass string, metrics *observability.Metrics) (*Predictor, error) {
	start := time.Now()
	p, err := pipeline.LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Info("model loaded",
		"path", path,
		"classes", p.Classes(),
		"trees", len(p.Forest.Trees),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return New(p, positiveClass, metrics)
}

// Predict runs the classifier on one form.
func (pr *Predictor) Predict(ctx context.Context, form models.SurveyForm) (models.PredictionResult, error) {
	if err := ctx.Err(); err != nil {
		return models.PredictionResult{}, err
	}

	start := time.Now()
	row := pipeline.Row(form.Values())

	label, err := pr.pipeline.Predict(row)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("predict: %w", err)
	}
	proba, err := pr.pipeline.PredictProba(row)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("predict probability: %w", err)
	}

	pr.metrics.ObservePrediction(label, time.Since(start))

	return models.PredictionResult{
		Label:      label,
		Confidence: proba[pr.positive] * 100,
	}, nil
}

// Options returns the answers the model knows for each categorical field,
// for building the form.
func (pr *Predictor) Options() map[string][]string {
	opts := make(map[string][]string)
	for _, name := range pr.pipeline.Schema.Categorical() {
		opts[name] = pr.pipeline.Categories(name)
	}
	return opts
}
