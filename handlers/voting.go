// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickpoll/metrics"
	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/store"
)

type VotingHandler struct {
	polls *store.PollStore
}

func NewVotingHandler(polls *store.PollStore) *VotingHandler {
	return &VotingHandler{polls: polls}
}

// Vote handles POST /polls/:id/vote
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.OptionID == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "optionId is required")
		return
	}

	voteID, err := h.polls.Vote(r.Context(), pollID, *req.OptionID)
	if err != nil {
		writeStoreError(w, r, "vote", err, "Vote option not found")
		return
	}

	metrics.VoteCast()
	slog.Info("vote recorded", "poll_id", pollID, "option_id", *req.OptionID, "vote_id", voteID)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		Success: "Vote recorded successfully",
		VoteID:  voteID,
	})
}
