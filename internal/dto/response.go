package dto

import "time"

type UserPayload struct {
	UserID     string    `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	DateJoined time.Time `json:"date_joined"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type OptionPayload struct {
	OptionID   string    `json:"option_id"`
	OptionText string    `json:"option_text"`
	VoteCount  int64     `json:"vote_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type PollPayload struct {
	PollID      string          `json:"poll_id"`
	Title       string          `json:"title"`
	Question    string          `json:"question"`
	Description string          `json:"description,omitempty"`
	CreatedBy   UserPayload     `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	ExpiresAt   *time.Time      `json:"expires_at"`
	Options     []OptionPayload `json:"options"`
	TotalVotes  int64           `json:"total_votes"`
	IsActive    bool            `json:"is_active"`
}

type OptionResult struct {
	OptionID   string  `json:"option_id"`
	OptionText string  `json:"option_text"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type PollResults struct {
	PollID     string         `json:"poll_id"`
	Title      string         `json:"title"`
	TotalVotes int64          `json:"total_votes"`
	Results    []OptionResult `json:"results"`
}

type VotePayload struct {
	VoteID     string    `json:"vote_id"`
	PollID     string    `json:"poll_id"`
	PollTitle  string    `json:"poll_title"`
	OptionID   string    `json:"option_id"`
	OptionText string    `json:"option_text"`
	Timestamp  time.Time `json:"timestamp"`
}

// Activity is the message published to the notifier exchange when
// something worth broadcasting happens.
type Activity struct {
	Kind    string    `json:"kind"`
	PollID  string    `json:"poll_id"`
	ActorID string    `json:"actor_id"`
	At      time.Time `json:"at"`
}

const (
	ActivityPollCreated = "poll_created"
	ActivityVoteCast    = "vote_cast"
)
