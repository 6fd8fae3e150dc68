// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns polls, options, and votes.

# Usage

A PollStore wraps one pooled *sql.DB:

	polls := store.New(conn)
	pollID, err := polls.CreatePoll(ctx, "Best color?", []string{"Red", "Blue"})

# Operations

	CreatePoll    → poll + options, one transaction
	ListPolls     → all polls in insertion order
	GetPollDetail → poll with options
	Vote          → checks the option belongs to the poll, inserts a vote
	GetResults    → per-option tally, zero-vote options included
	ListOptions   → options of a poll
	AddOption     → checks the poll exists, inserts an option
	DeletePoll    → removes votes, options, and the poll
	DeleteOption  → removes one option and its votes

Every mutation runs inside withTx: commit on success, rollback on any
error return.

# Errors

	ErrInvalidInput → missing or empty input, checked before any query
	ErrNotFound     → referenced poll or option does not exist
	*StorageError   → the datastore call failed

Match with errors.Is and errors.As:

	if errors.Is(err, store.ErrNotFound) {
		// 404
	}

GetResults never returns ErrNotFound; an unknown poll has no options and
so an empty tally. ListOptions returns ErrNotFound both for a missing poll
and for a poll without options.
*/
package store
