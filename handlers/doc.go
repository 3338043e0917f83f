// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Types

Each handler is a struct built by a constructor:

  - PredictionHandler: the survey form and prediction submission
  - RecordsHandler: admin listing of stored predictions

	predictionHandler := handlers.NewPredictionHandler(predictor, store, formDefaults)
	recordsHandler := handlers.NewRecordsHandler(store, cfg)

Handlers depend on the small Predictor and PredictionStore interfaces;
*predictor.Predictor and *db.Store satisfy them.

# Prediction Flow

	GET  /        → ShowForm
	GET  /predict → ShowForm
	POST /predict → Predict

Predict merges the submitted fields with the form defaults, runs the
model, stores a prediction record and renders the result page. A
non-integer Age or a row the model cannot accept renders a 400 page; a
failed insert renders a 500 page and nothing is shown as a result.

# Records

	GET /predictions?limit=N → ListPredictions

Requires the X-Admin-Key header. Returns 403 when no admin key is
configured. limit defaults to 50 and is capped at 500.
*/
package handlers
