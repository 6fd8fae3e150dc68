// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickpoll API server.

quickpoll is a small poll service: create a poll with a question and
options, vote for an option, and read back the tally.

# Starting the Server

With no configuration the server stores everything in a local SQLite file:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -t sqlite -d "file:polls.db"

A .env file in the working directory is read if present.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default for sqlite: file:polls.db)

# Architecture

  - store: poll, option and vote persistence and tallies
  - handlers: HTTP request handlers (polls, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus collectors and /metrics
  - models: Request/response and domain types
  - db: Connection pool and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
