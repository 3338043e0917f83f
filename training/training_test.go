// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package training_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/psychopredict/pipeline"
	"github.com/danielhkuo/psychopredict/survey"
	"github.com/danielhkuo/psychopredict/testutil"
	"github.com/danielhkuo/psychopredict/training"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T, rawPath string) training.Config {
	dir := t.TempDir()
	cfg := training.DefaultConfig()
	cfg.RawPath = rawPath
	cfg.ProcessedPath = filepath.Join(dir, "data", "processed_dataset.csv")
	cfg.ModelPath = filepath.Join(dir, "ml_model", "mental_health_model.gob")
	cfg.Forest = testutil.TestForestConfig()
	cfg.Forest.Estimators = 10
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := training.DefaultConfig()
	assert.Equal(t, "data/raw_dataset.csv", cfg.RawPath)
	assert.Equal(t, "treatment", cfg.Label)
	assert.Equal(t, 200, cfg.Forest.Estimators)
	assert.Equal(t, 20, cfg.Forest.MaxDepth)
	assert.Equal(t, uint64(42), cfg.Forest.Seed)
}

func TestRun(t *testing.T) {
	cfg := testConfig(t, testutil.WriteSyntheticCSV(t, 200))

	sum, err := training.Run(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 200, sum.Clean.InputRows)
	assert.Equal(t, []string{"No", "Yes"}, sum.Classes)
	assert.Greater(t, sum.TrainingAccuracy, 0.8)

	processed, err := survey.LoadCSV(cfg.ProcessedPath)
	require.NoError(t, err)
	assert.Equal(t, sum.Clean.OutputRows, processed.Len())
	assert.Zero(t, processed.MissingCount())
	assert.False(t, processed.HasColumn("Timestamp"))

	p, err := pipeline.LoadFile(cfg.ModelPath)
	require.NoError(t, err)
	assert.Len(t, p.Forest.Trees, 10)
	assert.Equal(t, sum.Features, p.Transformer.Width())
}

func TestRun_MissingRawFileWritesNothing(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "absent.csv"))

	_, err := training.Run(context.Background(), cfg, discardLogger())
	assert.ErrorIs(t, err, survey.ErrInputNotFound)

	_, statErr := os.Stat(cfg.ProcessedPath)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(cfg.ModelPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_MissingLabelColumn(t *testing.T) {
	raw := filepath.Join(t.TempDir(), "raw.csv")
	require.NoError(t, os.WriteFile(raw, []byte("Age,Gender,self_employed,work_interfere\n30,Male,No,Often\n"), 0o644))

	_, err := training.Run(context.Background(), testConfig(t, raw), discardLogger())
	assert.ErrorIs(t, err, survey.ErrMissingColumn)
}

func TestRun_CancelledBeforeFit(t *testing.T) {
	cfg := testConfig(t, testutil.WriteSyntheticCSV(t, 50))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := training.Run(ctx, cfg, discardLogger())
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(cfg.ModelPath)
	assert.True(t, os.IsNotExist(statErr))
}
