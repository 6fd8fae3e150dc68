// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: question, options ([]string)
  - VoteRequest: optionId
  - AddOptionRequest: description

# Response Types

Types for JSON responses:

  - CreatePollResponse: success, pollId
  - ListPollsResponse: polls
  - PollDetailResponse: poll (with options)
  - VoteResponse: success, voteId
  - ResultsResponse: results, total
  - ListOptionsResponse: options
  - AddOptionResponse: success, optionId
  - SuccessResponse: success
  - ErrorResponse: error, message

# Domain Types

  - Poll: id and question
  - Option: selectable answer belonging to one poll
  - PollDetail: poll with its options in creation order
  - OptionResult: per-option tally, zero-vote options included
*/
package models
