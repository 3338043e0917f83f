// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/psychopredict/auth"
	"github.com/danielhkuo/psychopredict/cliparse"
	"github.com/danielhkuo/psychopredict/middleware"
	"github.com/danielhkuo/psychopredict/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type RecordsHandler struct {
	store PredictionStore
	cfg   cliparse.Config
}

func NewRecordsHandler(store PredictionStore, cfg cliparse.Config) *RecordsHandler {
	return &RecordsHandler{store: store, cfg: cfg}
}

// ListPredictions handles GET /predictions?limit=N
// Requires X-Admin-Key. Returns the newest records first.
func (h *RecordsHandler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey)
	if errors.Is(err, auth.ErrAdminDisabled) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Admin access is not configured")
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	limit := defaultListLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxListLimit)
	}

	records, err := h.store.ListPredictions(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list predictions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if records == nil {
		records = []models.PredictionRecord{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.PredictionListResponse{
		Predictions: records,
		Count:       len(records),
	})
}
