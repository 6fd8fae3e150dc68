// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/testutil"
)

func newTestStore(t *testing.T) (*PollStore, func() int) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	votes := func() int { return testutil.CountRows(t, conn, "votes") }
	return New(conn), votes
}

func TestCreatePollThenDetail(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	pollID, err := s.CreatePoll(ctx, "Favourite season?", []string{"Spring", "Summer", "Autumn", "Winter"})
	require.NoError(t, err)
	require.NotZero(t, pollID)

	detail, err := s.GetPollDetail(ctx, pollID)
	require.NoError(t, err)
	assert.Equal(t, pollID, detail.ID)
	assert.Equal(t, "Favourite season?", detail.Question)
	require.Len(t, detail.Options, 4)

	seen := map[int64]bool{}
	for i, want := range []string{"Spring", "Summer", "Autumn", "Winter"} {
		assert.Equal(t, want, detail.Options[i].Description)
		assert.Equal(t, pollID, detail.Options[i].PollID)
		assert.False(t, seen[detail.Options[i].ID], "option ids must be distinct")
		seen[detail.Options[i].ID] = true
	}
}

func TestCreatePollDuplicatesAllowed(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreatePoll(ctx, "Same?", []string{"Yes", "Yes"})
	require.NoError(t, err)
	second, err := s.CreatePoll(ctx, "Same?", []string{"Yes"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	detail, err := s.GetPollDetail(ctx, first)
	require.NoError(t, err)
	assert.Len(t, detail.Options, 2)
}

func TestCreatePollValidation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		question string
		options  []string
	}{
		{"missing question", "", []string{"A", "B"}},
		{"blank question", "   ", []string{"A"}},
		{"nil options", "Q?", nil},
		{"empty options", "Q?", []string{}},
		{"empty option entry", "Q?", []string{"A", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreatePoll(ctx, tt.question, tt.options)
			require.ErrorIs(t, err, ErrInvalidInput)

			polls, err := s.ListPolls(ctx)
			require.NoError(t, err)
			assert.Empty(t, polls)
		})
	}
}

func TestListPollsInsertionOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	polls, err := s.ListPolls(ctx)
	require.NoError(t, err)
	assert.Empty(t, polls)
	assert.NotNil(t, polls)

	questions := []string{"First?", "Second?", "Third?"}
	for _, q := range questions {
		_, err := s.CreatePoll(ctx, q, []string{"x"})
		require.NoError(t, err)
	}

	polls, err = s.ListPolls(ctx)
	require.NoError(t, err)
	require.Len(t, polls, 3)
	for i, q := range questions {
		assert.Equal(t, q, polls[i].Question)
	}
}

func TestGetPollDetailNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.GetPollDetail(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVoteRejectsForeignOption(t *testing.T) {
	s, votes := newTestStore(t)
	ctx := context.Background()

	pollA, err := s.CreatePoll(ctx, "A?", []string{"a1"})
	require.NoError(t, err)
	pollB, err := s.CreatePoll(ctx, "B?", []string{"b1"})
	require.NoError(t, err)

	detailB, err := s.GetPollDetail(ctx, pollB)
	require.NoError(t, err)

	_, err = s.Vote(ctx, pollA, detailB.Options[0].ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Vote(ctx, pollA, 9999)
	require.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 0, votes())
}

func TestResultsSumAndZeroCounts(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	pollID, err := s.CreatePoll(ctx, "Lunch?", []string{"Pizza", "Sushi", "Salad"})
	require.NoError(t, err)
	detail, err := s.GetPollDetail(ctx, pollID)
	require.NoError(t, err)

	distribution := []int{3, 0, 5}
	total := 0
	for i, n := range distribution {
		for j := 0; j < n; j++ {
			_, err := s.Vote(ctx, pollID, detail.Options[i].ID)
			require.NoError(t, err)
		}
		total += n
	}

	results, err := s.GetResults(ctx, pollID)
	require.NoError(t, err)
	require.Len(t, results, 3)

	sum := 0
	for i, r := range results {
		assert.Equal(t, detail.Options[i].Description, r.Description)
		assert.Equal(t, distribution[i], r.Count)
		sum += r.Count
	}
	assert.Equal(t, total, sum)
}

func TestResultsUnknownPollIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	results, err := s.GetResults(context.Background(), 12345)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListOptions(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.ListOptions(ctx, 77)
	require.ErrorIs(t, err, ErrNotFound)

	pollID, err := s.CreatePoll(ctx, "Q?", []string{"only"})
	require.NoError(t, err)
	detail, err := s.GetPollDetail(ctx, pollID)
	require.NoError(t, err)

	options, err := s.ListOptions(ctx, pollID)
	require.NoError(t, err)
	require.Len(t, options, 1)

	require.NoError(t, s.DeleteOption(ctx, pollID, detail.Options[0].ID))

	// An existing poll without options reports the same signal as a missing one
	_, err = s.ListOptions(ctx, pollID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddOption(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	pollID, err := s.CreatePoll(ctx, "Pets?", []string{"Cat"})
	require.NoError(t, err)

	optionID, err := s.AddOption(ctx, pollID, "Dog")
	require.NoError(t, err)

	options, err := s.ListOptions(ctx, pollID)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, models.Option{ID: optionID, PollID: pollID, Description: "Dog"}, options[1])

	_, err = s.AddOption(ctx, pollID, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.AddOption(ctx, pollID+100, "Fish")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePollCascades(t *testing.T) {
	s, votes := newTestStore(t)
	ctx := context.Background()

	pollID, err := s.CreatePoll(ctx, "Gone?", []string{"Yes", "No"})
	require.NoError(t, err)
	keepID, err := s.CreatePoll(ctx, "Stays?", []string{"Yes"})
	require.NoError(t, err)

	detail, _ := s.GetPollDetail(ctx, pollID)
	keep, _ := s.GetPollDetail(ctx, keepID)
	_, err = s.Vote(ctx, pollID, detail.Options[0].ID)
	require.NoError(t, err)
	_, err = s.Vote(ctx, keepID, keep.Options[0].ID)
	require.NoError(t, err)

	require.NoError(t, s.DeletePoll(ctx, pollID))

	_, err = s.GetPollDetail(ctx, pollID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.ListOptions(ctx, pollID)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, votes())

	require.ErrorIs(t, s.DeletePoll(ctx, pollID), ErrNotFound)

	// ids are not reused after deletion
	nextID, err := s.CreatePoll(ctx, "New?", []string{"x"})
	require.NoError(t, err)
	assert.Greater(t, nextID, keepID)
}

func TestDeleteOptionLeavesSiblings(t *testing.T) {
	s, votes := newTestStore(t)
	ctx := context.Background()

	pollID, err := s.CreatePoll(ctx, "Keep which?", []string{"A", "B", "C"})
	require.NoError(t, err)
	detail, _ := s.GetPollDetail(ctx, pollID)
	_, err = s.Vote(ctx, pollID, detail.Options[1].ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteOption(ctx, pollID, detail.Options[1].ID))

	options, err := s.ListOptions(ctx, pollID)
	require.NoError(t, err)
	assert.Equal(t, []models.Option{detail.Options[0], detail.Options[2]}, options)
	assert.Equal(t, 0, votes())

	err = s.DeleteOption(ctx, pollID, detail.Options[1].ID)
	require.ErrorIs(t, err, ErrNotFound)

	otherPoll, err := s.CreatePoll(ctx, "Other?", []string{"z"})
	require.NoError(t, err)
	err = s.DeleteOption(ctx, otherPoll, detail.Options[0].ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBestColorScenario(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	pollID, err := s.CreatePoll(ctx, "Best color?", []string{"Red", "Blue"})
	require.NoError(t, err)

	detail, err := s.GetPollDetail(ctx, pollID)
	require.NoError(t, err)
	require.Len(t, detail.Options, 2)
	red, blue := detail.Options[0].ID, detail.Options[1].ID

	for _, opt := range []int64{red, red, blue} {
		_, err := s.Vote(ctx, pollID, opt)
		require.NoError(t, err)
	}

	results, err := s.GetResults(ctx, pollID)
	require.NoError(t, err)
	assert.Equal(t, []models.OptionResult{
		{OptionID: red, Description: "Red", Count: 2},
		{OptionID: blue, Description: "Blue", Count: 1},
	}, results)

	require.NoError(t, s.DeleteOption(ctx, pollID, blue))

	results, err = s.GetResults(ctx, pollID)
	require.NoError(t, err)
	assert.Equal(t, []models.OptionResult{
		{OptionID: red, Description: "Red", Count: 2},
	}, results)
}

func TestConcurrentVotesAllCounted(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	pollID, err := s.CreatePoll(ctx, "Race?", []string{"Only"})
	require.NoError(t, err)
	detail, _ := s.GetPollDetail(ctx, pollID)

	const voters = 25
	var wg sync.WaitGroup
	errs := make(chan error, voters)
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Vote(ctx, pollID, detail.Options[0].ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	results, err := s.GetResults(ctx, pollID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, voters, results[0].Count)
}
