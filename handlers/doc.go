// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quickpoll API.

# Handler Types

Each handler is a struct holding the shared *store.PollStore:

  - PollHandler: polls and options (create, list, detail, add, delete)
  - VotingHandler: vote casting
  - ResultsHandler: vote tallies

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(polls)

# Poll Lifecycle

	POST   /polls                         → CreatePoll (question + options)
	POST   /polls/{id}/options            → AddOption
	POST   /polls/{id}/vote               → Vote
	GET    /polls/{id}/results            → GetResults
	DELETE /polls/{id}/options/{optionId} → DeleteOption
	DELETE /polls/{id}                    → DeletePoll

# Error Mapping

Store errors become status codes in one place:

	store.ErrInvalidInput → 400
	store.ErrNotFound     → 404
	anything else         → 500 "Database error" (logged, counted)

Path ids that are not positive integers answer 400 before the store is
called.

# Quirks Kept On Purpose

GetResults answers 200 with an empty list for an unknown poll.
ListOptions answers 404 for a poll that exists but has no options.
*/
package handlers
