// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/psychopredict/db"
	"github.com/danielhkuo/psychopredict/models"
	"github.com/danielhkuo/psychopredict/testutil"
)

func newRecord(age int, label string, confidence float64) models.PredictionRecord {
	form := testutil.SampleForm()
	form.Age = age
	return models.PredictionRecord{
		SurveyForm:       form,
		PredictionResult: label,
		ConfidenceScore:  confidence,
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	require.NoError(t, db.CreateSchema(conn))
}

func TestInsertPrediction_AssignsIDAndTimestamp(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	rec := newRecord(29, models.LabelYes, 71.5)
	before := time.Now().UTC().Add(-time.Second)
	require.NoError(t, store.InsertPrediction(ctx, &rec))

	assert.Len(t, rec.ID, 36)
	assert.True(t, rec.CreatedAt.After(before))

	n, err := store.CountPredictions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestListPredictions_RoundTrip(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	rec := newRecord(29, models.LabelYes, 71.5)
	require.NoError(t, store.InsertPrediction(ctx, &rec))

	got, err := store.ListPredictions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, rec.SurveyForm, got[0].SurveyForm)
	assert.Equal(t, models.LabelYes, got[0].PredictionResult)
	assert.InDelta(t, 71.5, got[0].ConfidenceScore, 1e-9)
	assert.WithinDuration(t, rec.CreatedAt, got[0].CreatedAt, time.Millisecond)
}

func TestListPredictions_NewestFirstWithLimit(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, age := range []int{20, 30, 40} {
		rec := newRecord(age, models.LabelNo, 10)
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.InsertPrediction(ctx, &rec))
	}

	got, err := store.ListPredictions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 40, got[0].Age)
	assert.Equal(t, 30, got[1].Age)
}

func TestInsertPrediction_RejectsOutOfRangeConfidence(t *testing.T) {
	store := testutil.SetupTestStore(t)

	rec := newRecord(29, models.LabelYes, 140)
	assert.Error(t, store.InsertPrediction(context.Background(), &rec))
}

func TestOpen_UnknownType(t *testing.T) {
	_, err := db.Open(context.Background(), "mysql", "whatever")
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	store := testutil.SetupTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
