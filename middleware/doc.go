// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs method, path, status, duration_ms and a salted hash of the client
address. Raw IPs are never logged.

# Metrics

WithMetrics counts responses per route pattern and status code:

	h := middleware.WithMetrics(metrics, "POST /predict", handler)

# Responses

JSON:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

HTML, for templ components:

	middleware.HTMLResponse(w, r, http.StatusOK, views.Result(label, confidence))

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
