// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package predictor_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/psychopredict/models"
	"github.com/danielhkuo/psychopredict/observability"
	"github.com/danielhkuo/psychopredict/pipeline"
	"github.com/danielhkuo/psychopredict/predictor"
	tu "github.com/danielhkuo/psychopredict/testutil"
)

func TestNew_UnknownPositiveClass(t *testing.T) {
	_, err := predictor.New(tu.TrainedPipeline(t), "Maybe", nil)
	assert.Error(t, err)
}

func TestPredict(t *testing.T) {
	pr, err := predictor.New(tu.TrainedPipeline(t), models.LabelYes, nil)
	require.NoError(t, err)

	got, err := pr.Predict(context.Background(), tu.SampleForm())
	require.NoError(t, err)

	assert.Contains(t, []string{models.LabelYes, models.LabelNo}, got.Label)
	assert.GreaterOrEqual(t, got.Confidence, 0.0)
	assert.LessOrEqual(t, got.Confidence, 100.0)

	// The label is the most probable class, and confidence is P(Yes).
	if got.Label == models.LabelYes {
		assert.GreaterOrEqual(t, got.Confidence, 50.0)
	} else {
		assert.LessOrEqual(t, got.Confidence, 50.0)
	}
}

func TestPredict_Deterministic(t *testing.T) {
	pr, err := predictor.New(tu.TrainedPipeline(t), models.LabelYes, nil)
	require.NoError(t, err)

	a, err := pr.Predict(context.Background(), tu.SampleForm())
	require.NoError(t, err)
	b, err := pr.Predict(context.Background(), tu.SampleForm())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPredict_CancelledContext(t *testing.T) {
	pr, err := predictor.New(tu.TrainedPipeline(t), models.LabelYes, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pr.Predict(ctx, tu.SampleForm())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPredict_RecordsMetrics(t *testing.T) {
	m := observability.NewMetrics()
	pr, err := predictor.New(tu.TrainedPipeline(t), models.LabelYes, m)
	require.NoError(t, err)

	_, err = pr.Predict(context.Background(), tu.SampleForm())
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(m.Registry(), "psychopredict_predictions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, pipeline.SaveFile(path, tu.TrainedPipeline(t)))

	pr, err := predictor.Load(path, models.LabelYes, nil)
	require.NoError(t, err)

	opts := pr.Options()
	assert.Equal(t, []string{"Female", "Male"}, opts[models.FieldGender])
	assert.NotContains(t, opts, models.FieldAge)
	assert.Len(t, opts, 21)
}

func TestLoad_MissingArtifact(t *testing.T) {
	_, err := predictor.Load(filepath.Join(t.TempDir(), "nope.gob"), models.LabelYes, nil)
	assert.Error(t, err)
}
