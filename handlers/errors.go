// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickpoll/metrics"
	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/store"
)

// pathID parses a positive integer path parameter, writing a 400 on failure
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// writeStoreError maps a store error onto a status code
func writeStoreError(w http.ResponseWriter, r *http.Request, op string, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, notFoundMsg)
	default:
		slog.Error("store operation failed",
			"operation", op,
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		metrics.StoreError(op)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
