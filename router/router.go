// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/psychopredict/cliparse"
	"github.com/danielhkuo/psychopredict/defaults"
	"github.com/danielhkuo/psychopredict/handlers"
	"github.com/danielhkuo/psychopredict/middleware"
	"github.com/danielhkuo/psychopredict/observability"
)

// NewRouter wires every endpoint. metrics may be nil, in which case
// /metrics is not registered.
func NewRouter(
	cfg cliparse.Config,
	store handlers.PredictionStore,
	predictor handlers.Predictor,
	formDefaults defaults.FormDefaults,
	metrics *observability.Metrics,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	predictionHandler := handlers.NewPredictionHandler(predictor, store, formDefaults)
	recordsHandler := handlers.NewRecordsHandler(store, cfg)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(metrics, pattern, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if metrics != nil {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	// Survey form and predictions
	handle("GET /{$}", predictionHandler.ShowForm)
	handle("GET /predict", predictionHandler.ShowForm)
	handle("POST /predict", predictionHandler.Predict)

	// Stored records (admin)
	handle("GET /predictions", recordsHandler.ListPredictions)

	return mux
}
