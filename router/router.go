// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickpoll/handlers"
	"github.com/danielhkuo/quickpoll/metrics"
	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/store"
)

func NewRouter(polls *store.PollStore) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(polls)
	votingHandler := handlers.NewVotingHandler(polls)
	resultsHandler := handlers.NewResultsHandler(polls)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Polls
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(pollHandler.DeletePoll))

	// Options
	mux.HandleFunc("GET /polls/{id}/options", middleware.WithLogging(pollHandler.ListOptions))
	mux.HandleFunc("POST /polls/{id}/options", middleware.WithLogging(pollHandler.AddOption))
	mux.HandleFunc("DELETE /polls/{id}/options/{optionId}", middleware.WithLogging(pollHandler.DeleteOption))

	// Voting and results
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickpoll API v1"))
	})

	return mux
}

// NewHandler wraps the router with CORS and request metrics
func NewHandler(polls *store.PollStore) http.Handler {
	return metrics.InstrumentHandler(middleware.CORS(NewRouter(polls)))
}
