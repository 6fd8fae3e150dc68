package models

// Request types

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// OptionID is a pointer so a missing field can be told apart from zero
type VoteRequest struct {
	OptionID *int64 `json:"optionId"`
}

type AddOptionRequest struct {
	Description string `json:"description"`
}

// Response types

type CreatePollResponse struct {
	Success string `json:"success"`
	PollID  int64  `json:"pollId"`
}

type ListPollsResponse struct {
	Polls []Poll `json:"polls"`
}

type PollDetailResponse struct {
	Poll PollDetail `json:"poll"`
}

type VoteResponse struct {
	Success string `json:"success"`
	VoteID  int64  `json:"voteId"`
}

type ResultsResponse struct {
	Results []OptionResult `json:"results"`
	Total   int            `json:"total"`
}

type ListOptionsResponse struct {
	Options []Option `json:"options"`
}

type AddOptionResponse struct {
	Success  string `json:"success"`
	OptionID int64  `json:"optionId"`
}

type SuccessResponse struct {
	Success string `json:"success"`
}

// Domain types

type Poll struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
}

type Option struct {
	ID          int64  `json:"id"`
	PollID      int64  `json:"-"`
	Description string `json:"description"`
}

type PollDetail struct {
	ID       int64    `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// OptionResult is the tally for one option; Count is zero when nobody voted for it
type OptionResult struct {
	OptionID    int64  `json:"-"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
