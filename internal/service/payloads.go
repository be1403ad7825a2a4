package service

import (
	"math"
	"time"

	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"github.com/openpolls/backend/internal/repository"
)

func toUserPayload(user model.User) dto.UserPayload {
	return dto.UserPayload{
		UserID:     user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		FullName:   user.FullName(),
		Email:      user.Email,
		Username:   user.Username,
		DateJoined: user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func toOptionPayload(option model.Option, voteCount int64) dto.OptionPayload {
	return dto.OptionPayload{
		OptionID:   option.ID,
		OptionText: option.OptionText,
		VoteCount:  voteCount,
		CreatedAt:  option.CreatedAt,
	}
}

// toPollPayload assembles the full poll representation. Vote counts are
// always derived from vote rows, never stored.
func toPollPayload(poll model.Poll, voteRepository repository.VoteRepository) (dto.PollPayload, error) {
	options := make([]dto.OptionPayload, 0, len(poll.Options))
	var totalVotes int64
	for _, option := range poll.Options {
		count, err := voteRepository.CountByOption(option.ID)
		if err != nil {
			return dto.PollPayload{}, err
		}
		totalVotes += count
		options = append(options, toOptionPayload(option, count))
	}

	return dto.PollPayload{
		PollID:      poll.ID,
		Title:       poll.Title,
		Question:    poll.Question,
		Description: poll.Description,
		CreatedBy:   toUserPayload(poll.CreatedBy),
		CreatedAt:   poll.CreatedAt,
		UpdatedAt:   poll.UpdatedAt,
		ExpiresAt:   poll.ExpiresAt,
		Options:     options,
		TotalVotes:  totalVotes,
		IsActive:    poll.IsActive(time.Now().UTC()),
	}, nil
}

func toVotePayload(vote model.Vote) dto.VotePayload {
	return dto.VotePayload{
		VoteID:     vote.ID,
		PollID:     vote.PollID,
		PollTitle:  vote.Poll.Title,
		OptionID:   vote.OptionID,
		OptionText: vote.Option.OptionText,
		Timestamp:  vote.CreatedAt,
	}
}

func percentage(votes, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(votes)/float64(total)*100*100) / 100
}
