// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/psychopredict/defaults"
	"github.com/danielhkuo/psychopredict/middleware"
	"github.com/danielhkuo/psychopredict/models"
	"github.com/danielhkuo/psychopredict/pipeline"
	"github.com/danielhkuo/psychopredict/views"
)

// Predictor runs the classifier. *predictor.Predictor implements it.
type Predictor interface {
	Predict(ctx context.Context, form models.SurveyForm) (models.PredictionResult, error)
	Options() map[string][]string
}

// PredictionStore persists served predictions. *db.Store implements it.
type PredictionStore interface {
	InsertPrediction(ctx context.Context, rec *models.PredictionRecord) error
	ListPredictions(ctx context.Context, limit int) ([]models.PredictionRecord, error)
}

type PredictionHandler struct {
	predictor Predictor
	store     PredictionStore
	defaults  defaults.FormDefaults
}

func NewPredictionHandler(p Predictor, store PredictionStore, d defaults.FormDefaults) *PredictionHandler {
	return &PredictionHandler{predictor: p, store: store, defaults: d}
}

// ShowForm handles GET / and GET /predict
// Renders the survey form with the configured defaults preselected
func (h *PredictionHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	middleware.HTMLResponse(w, r, http.StatusOK, views.Index(views.FormPage{
		Values:  h.defaults,
		Options: h.predictor.Options(),
	}))
}

// Predict handles POST /predict
// Fields left out of the submission take the configured defaults. Age has
// no default and must be a whole number.
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, r, http.StatusBadRequest, "Could not read the submitted form")
		return
	}

	form, err := models.SurveyFormFromValues(h.defaults.Apply(r.PostForm))
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "Age must be a whole number")
		return
	}

	result, err := h.predictor.Predict(r.Context(), form)
	if errors.Is(err, pipeline.ErrSchemaMismatch) {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("prediction failed", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Prediction failed")
		return
	}

	record := models.PredictionRecord{
		SurveyForm:       form,
		PredictionResult: result.Label,
		ConfidenceScore:  result.Confidence,
	}
	if err := h.store.InsertPrediction(r.Context(), &record); err != nil {
		slog.Error("failed to save prediction", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Could not save the prediction")
		return
	}

	slog.Info("prediction served",
		"id", record.ID,
		"label", result.Label,
		"confidence", result.Confidence,
	)

	middleware.HTMLResponse(w, r, http.StatusOK, views.Result(result))
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	middleware.HTMLResponse(w, r, status, views.Error(status, message))
}
