package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"gorm.io/gorm"
)

type VoteRepository interface {
	Create(vote model.Vote) (model.Vote, error)
	ExistsForPollUser(pollID, userID string) (bool, error)
	CountByOption(optionID string) (int64, error)
	CountByPoll(pollID string) (int64, error)
	ListByUser(userID string) ([]model.Vote, error)
	GetByIDForUser(id, userID string) (model.Vote, error)
}

type vote struct {
	db *gorm.DB
}

func newVoteRepository(db *gorm.DB) VoteRepository {
	return &vote{
		db: db,
	}
}

func (v *vote) Create(vote model.Vote) (model.Vote, error) {
	result := v.db.Create(&vote)
	if result.Error != nil {
		// The composite unique index on (poll_id, user_id) is the
		// authoritative duplicate-vote guard; a violation here means the
		// pre-insert check lost a race.
		if isDuplicateKey(result.Error) {
			return model.Vote{}, fmt.Errorf("%w: vote already exists", dto.ErrConflict)
		}
		return model.Vote{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return vote, nil
}

func (v *vote) ExistsForPollUser(pollID, userID string) (bool, error) {
	var count int64
	result := v.db.Model(&model.Vote{}).Where("poll_id = ? AND user_id = ?", pollID, userID).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count > 0, nil
}

func (v *vote) CountByOption(optionID string) (int64, error) {
	var count int64
	result := v.db.Model(&model.Vote{}).Where("option_id = ?", optionID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count, nil
}

func (v *vote) CountByPoll(pollID string) (int64, error) {
	var count int64
	result := v.db.Model(&model.Vote{}).Where("poll_id = ?", pollID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count, nil
}

func (v *vote) ListByUser(userID string) ([]model.Vote, error) {
	var votes []model.Vote
	result := v.db.Preload("Poll").Preload("Option").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&votes)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return votes, nil
}

func (v *vote) GetByIDForUser(id, userID string) (model.Vote, error) {
	var found model.Vote
	result := v.db.Preload("Poll").Preload("Option").
		First(&found, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Vote{}, fmt.Errorf("%w: vote %s", dto.ErrNotFound, id)
		}
		return model.Vote{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
