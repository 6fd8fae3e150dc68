// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/store"
)

type ResultsHandler struct {
	polls *store.PollStore
}

func NewResultsHandler(polls *store.PollStore) *ResultsHandler {
	return &ResultsHandler{polls: polls}
}

// GetResults handles GET /polls/:id/results
// Unknown polls get an empty result list, not a 404
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	results, err := h.polls.GetResults(r.Context(), pollID)
	if err != nil {
		writeStoreError(w, r, "get_results", err, "")
		return
	}

	total := 0
	for _, res := range results {
		total += res.Count
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Results: results,
		Total:   total,
	})
}
