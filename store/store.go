// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/danielhkuo/quickpoll/models"
)

type PollStore struct {
	db *sql.DB
}

func New(db *sql.DB) *PollStore {
	return &PollStore{db: db}
}

// withTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back on every other path.
func (s *PollStore) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr(op+": begin", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageErr(op+": commit", err)
	}
	return nil
}

// CreatePoll inserts a poll and its options, in the given order, as one unit
func (s *PollStore) CreatePoll(ctx context.Context, question string, options []string) (int64, error) {
	if strings.TrimSpace(question) == "" {
		return 0, invalid("question is required")
	}
	if len(options) == 0 {
		return 0, invalid("options are required")
	}
	for i, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return 0, invalid("option %d is empty", i)
		}
	}

	var pollID int64
	err := s.withTx(ctx, "create poll", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO polls (question) VALUES ($1) RETURNING id`, question,
		).Scan(&pollID)
		if err != nil {
			return storageErr("insert poll", err)
		}

		for _, opt := range options {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO options (poll_id, description) VALUES ($1, $2)`, pollID, opt)
			if err != nil {
				return storageErr("insert option", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return pollID, nil
}

// ListPolls returns every poll in insertion order
func (s *PollStore) ListPolls(ctx context.Context) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, question FROM polls ORDER BY id`)
	if err != nil {
		return nil, storageErr("list polls", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Question); err != nil {
			return nil, storageErr("scan poll", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list polls", err)
	}

	return polls, nil
}

func (s *PollStore) GetPollDetail(ctx context.Context, pollID int64) (models.PollDetail, error) {
	var detail models.PollDetail
	err := s.db.QueryRowContext(ctx,
		`SELECT id, question FROM polls WHERE id = $1`, pollID,
	).Scan(&detail.ID, &detail.Question)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PollDetail{}, notFound("poll %d", pollID)
	}
	if err != nil {
		return models.PollDetail{}, storageErr("get poll", err)
	}

	detail.Options, err = s.queryOptions(ctx, pollID)
	if err != nil {
		return models.PollDetail{}, err
	}

	return detail, nil
}

// Vote records one vote. The option must belong to the poll.
func (s *PollStore) Vote(ctx context.Context, pollID, optionID int64) (int64, error) {
	var voteID int64
	err := s.withTx(ctx, "vote", func(tx *sql.Tx) error {
		if err := optionExists(ctx, tx, pollID, optionID); err != nil {
			return err
		}

		err := tx.QueryRowContext(ctx,
			`INSERT INTO votes (poll_id, option_id) VALUES ($1, $2) RETURNING id`, pollID, optionID,
		).Scan(&voteID)
		if err != nil {
			return storageErr("insert vote", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return voteID, nil
}

// GetResults tallies votes per option. Options without votes are reported
// with a zero count. An unknown poll yields an empty slice, not ErrNotFound.
func (s *PollStore) GetResults(ctx context.Context, pollID int64) ([]models.OptionResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT o.id, o.description, COUNT(v.id)
		FROM options o
		LEFT JOIN votes v ON v.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id, o.description
		ORDER BY o.id
	`, pollID)
	if err != nil {
		return nil, storageErr("get results", err)
	}
	defer rows.Close()

	results := []models.OptionResult{}
	for rows.Next() {
		var r models.OptionResult
		if err := rows.Scan(&r.OptionID, &r.Description, &r.Count); err != nil {
			return nil, storageErr("scan result", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("get results", err)
	}

	return results, nil
}

// ListOptions returns the poll's options. A poll with no options and a
// missing poll both report ErrNotFound.
func (s *PollStore) ListOptions(ctx context.Context, pollID int64) ([]models.Option, error) {
	options, err := s.queryOptions(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, notFound("no options for poll %d", pollID)
	}
	return options, nil
}

func (s *PollStore) AddOption(ctx context.Context, pollID int64, description string) (int64, error) {
	if strings.TrimSpace(description) == "" {
		return 0, invalid("description is required")
	}

	var optionID int64
	err := s.withTx(ctx, "add option", func(tx *sql.Tx) error {
		if err := pollExists(ctx, tx, pollID); err != nil {
			return err
		}

		err := tx.QueryRowContext(ctx,
			`INSERT INTO options (poll_id, description) VALUES ($1, $2) RETURNING id`, pollID, description,
		).Scan(&optionID)
		if err != nil {
			return storageErr("insert option", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return optionID, nil
}

// DeletePoll removes the poll together with its options and their votes
func (s *PollStore) DeletePoll(ctx context.Context, pollID int64) error {
	return s.withTx(ctx, "delete poll", func(tx *sql.Tx) error {
		if err := pollExists(ctx, tx, pollID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE poll_id = $1`, pollID); err != nil {
			return storageErr("delete votes", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM options WHERE poll_id = $1`, pollID); err != nil {
			return storageErr("delete options", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM polls WHERE id = $1`, pollID); err != nil {
			return storageErr("delete poll", err)
		}
		return nil
	})
}

// DeleteOption removes one option of a poll and the votes cast for it
func (s *PollStore) DeleteOption(ctx context.Context, pollID, optionID int64) error {
	return s.withTx(ctx, "delete option", func(tx *sql.Tx) error {
		if err := optionExists(ctx, tx, pollID, optionID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE option_id = $1`, optionID); err != nil {
			return storageErr("delete votes", err)
		}
		_, err := tx.ExecContext(ctx,
			`DELETE FROM options WHERE poll_id = $1 AND id = $2`, pollID, optionID)
		if err != nil {
			return storageErr("delete option", err)
		}
		return nil
	})
}

func (s *PollStore) queryOptions(ctx context.Context, pollID int64) ([]models.Option, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, description
		FROM options
		WHERE poll_id = $1
		ORDER BY id
	`, pollID)
	if err != nil {
		return nil, storageErr("list options", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Description); err != nil {
			return nil, storageErr("scan option", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list options", err)
	}

	return options, nil
}

func pollExists(ctx context.Context, tx *sql.Tx, pollID int64) error {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM polls WHERE id = $1`, pollID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound("poll %d", pollID)
	}
	if err != nil {
		return storageErr("get poll", err)
	}
	return nil
}

func optionExists(ctx context.Context, tx *sql.Tx, pollID, optionID int64) error {
	var id int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM options WHERE poll_id = $1 AND id = $2`, pollID, optionID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound("option %d in poll %d", optionID, pollID)
	}
	if err != nil {
		return storageErr("get option", err)
	}
	return nil
}
