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

type PollHandler struct {
	polls *store.PollStore
}

func NewPollHandler(polls *store.PollStore) *PollHandler {
	return &PollHandler{polls: polls}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pollID, err := h.polls.CreatePoll(r.Context(), req.Question, req.Options)
	if err != nil {
		writeStoreError(w, r, "create_poll", err, "")
		return
	}

	metrics.PollCreated()
	slog.Info("poll created", "poll_id", pollID, "options", len(req.Options))

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		Success: "Poll created successfully",
		PollID:  pollID,
	})
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.ListPolls(r.Context())
	if err != nil {
		writeStoreError(w, r, "list_polls", err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListPollsResponse{Polls: polls})
}

// GetPoll handles GET /polls/:id
// Returns the poll with its options
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.polls.GetPollDetail(r.Context(), pollID)
	if err != nil {
		writeStoreError(w, r, "get_poll", err, "Poll not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollDetailResponse{Poll: detail})
}

// DeletePoll handles DELETE /polls/:id
// Options and their votes go with the poll
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.polls.DeletePoll(r.Context(), pollID); err != nil {
		writeStoreError(w, r, "delete_poll", err, "Poll not found")
		return
	}

	metrics.PollDeleted()
	slog.Info("poll deleted", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{
		Success: "Poll deleted successfully",
	})
}

// ListOptions handles GET /polls/:id/options
// A poll without options answers 404, same as a missing poll
func (h *PollHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	options, err := h.polls.ListOptions(r.Context(), pollID)
	if err != nil {
		writeStoreError(w, r, "list_options", err, "No options found for this poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListOptionsResponse{Options: options})
}

// AddOption handles POST /polls/:id/options
func (h *PollHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	optionID, err := h.polls.AddOption(r.Context(), pollID, req.Description)
	if err != nil {
		writeStoreError(w, r, "add_option", err, "Poll not found")
		return
	}

	slog.Info("option added", "poll_id", pollID, "option_id", optionID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddOptionResponse{
		Success:  "Option added successfully",
		OptionID: optionID,
	})
}

// DeleteOption handles DELETE /polls/:id/options/:optionId
func (h *PollHandler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	optionID, ok := pathID(w, r, "optionId")
	if !ok {
		return
	}

	if err := h.polls.DeleteOption(r.Context(), pollID, optionID); err != nil {
		writeStoreError(w, r, "delete_option", err, "Poll option not found")
		return
	}

	slog.Info("option deleted", "poll_id", pollID, "option_id", optionID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{
		Success: "Option deleted successfully",
	})
}
