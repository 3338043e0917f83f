// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the psychopredict web server.

psychopredict serves a workplace mental-health survey form and predicts
whether the respondent is likely to seek treatment, using a random forest
trained offline by cmd/train. Every prediction is stored with its answers.

# Starting the Server

Train the model first, then start the server:

	go run ./cmd/train
	go run . -p 3318

# Configuration

All settings have flags and environment fallbacks (a .env file is read
when present):

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Connection string (default: file:psychopredict.db)
  - MODEL_PATH (-model): Trained model (default: ml_model/mental_health_model.gob)
  - FORM_DEFAULTS_PATH (-defaults): YAML overrides for form defaults
  - POSITIVE_CLASS (-positive-class): Label reported as confidence (default: Yes)
  - ADMIN_KEY (-admin-key): Enables GET /predictions
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

# Architecture

  - survey: CSV loading and dataset cleaning
  - pipeline: preprocessing, random forest, model artifact
  - training, cmd/train: the offline training command
  - predictor: serving predictions from a loaded model
  - handlers, router, views, middleware: the HTTP surface
  - db: connection, schema and the prediction store
  - defaults: form defaults
  - observability: logging and Prometheus metrics
  - auth, cliparse, models: admin key checks, configuration, shared types

See package documentation for each component.
*/
package main
