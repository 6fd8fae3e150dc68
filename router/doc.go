// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ method routing.

# Usage

	polls := store.New(conn)
	server := http.Server{
		Handler: router.NewHandler(polls),
	}

NewRouter returns the bare mux; NewHandler adds CORS and request metrics.

# Routes

	GET    /health                          Health check
	GET    /metrics                         Prometheus metrics
	GET    /                                API banner

	POST   /polls                           Create poll with options
	GET    /polls                           List polls
	GET    /polls/{id}                      Poll detail with options
	DELETE /polls/{id}                      Delete poll, options and votes

	GET    /polls/{id}/options              List options (404 when none)
	POST   /polls/{id}/options              Add option
	DELETE /polls/{id}/options/{optionId}   Delete option and its votes

	POST   /polls/{id}/vote                 Cast a vote
	GET    /polls/{id}/results              Vote tally per option

Path ids are positive integers; anything else answers 400.

All poll routes are wrapped with middleware.WithLogging.
*/
package router
