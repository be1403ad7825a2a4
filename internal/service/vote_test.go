package service

import (
	"errors"
	"testing"

	"github.com/openpolls/backend/internal/dto"
)

func TestVotingHistoryIsUserScoped(t *testing.T) {
	env := newTestEnv(t)
	alice := registerTestUser(t, env, "alice")
	bob := registerTestUser(t, env, "bob")
	poll := createTestPoll(t, env, alice, "Yes", "No")

	if err := env.services.Poll().CastVote(alice, poll.PollID, dto.CastVoteRequest{
		OptionID: optionIDByText(t, poll, "Yes"),
	}); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if err := env.services.Poll().CastVote(bob, poll.PollID, dto.CastVoteRequest{
		OptionID: optionIDByText(t, poll, "No"),
	}); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}

	votes, err := env.services.Vote().ListForUser(alice)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("Expected 1 vote for alice, got %d", len(votes))
	}
	if votes[0].OptionText != "Yes" {
		t.Errorf("Expected vote on Yes, got %s", votes[0].OptionText)
	}
	if votes[0].PollTitle != poll.Title {
		t.Errorf("Expected poll title %q, got %q", poll.Title, votes[0].PollTitle)
	}

	// Bob cannot read alice's vote by ID.
	if _, err := env.services.Vote().GetForUser(bob, votes[0].VoteID); !errors.Is(err, dto.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for foreign vote, got %v", err)
	}

	vote, err := env.services.Vote().GetForUser(alice, votes[0].VoteID)
	if err != nil {
		t.Fatalf("GetForUser failed: %v", err)
	}
	if vote.PollID != poll.PollID {
		t.Errorf("Expected poll %s, got %s", poll.PollID, vote.PollID)
	}
}

func TestVotingHistoryEmpty(t *testing.T) {
	env := newTestEnv(t)
	user := registerTestUser(t, env, "novotes")

	votes, err := env.services.Vote().ListForUser(user)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(votes) != 0 {
		t.Errorf("Expected no votes, got %d", len(votes))
	}
}
