// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(cfg, store, predictor, formDefaults, metrics)

# Endpoints

Health and metrics:

	GET /health  - Liveness check
	GET /metrics - Prometheus metrics

Survey:

	GET  /        - Survey form
	GET  /predict - Survey form
	POST /predict - Submit answers, render the prediction

Records (admin, requires X-Admin-Key):

	GET /predictions?limit=N - Newest prediction records as JSON

Every route except /health and /metrics is wrapped with request logging
and per-route request counting.
*/
package router
