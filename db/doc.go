// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database pool and creates the schema.

# Drivers

Two database types are supported:

  - sqlite: embedded, via modernc.org/sqlite (default)
  - postgres: via github.com/lib/pq

Open returns a verified pool:

	conn, err := db.Open(db.TypeSQLite, "file:polls.db")

SQLite pools are capped at one open connection.

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - polls: id, question
  - options: id, poll_id, description
  - votes: id, poll_id, option_id

# Relationships

	polls 1──* options
	options 1──* votes

Ids are never reused. Foreign keys are declared with ON DELETE CASCADE;
the store also deletes dependent rows itself, so SQLite databases without
foreign key enforcement stay consistent.
*/
package db
