package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"gorm.io/gorm"
)

type PollRepository interface {
	CreateWithOptions(poll model.Poll, options []model.Option) (model.Poll, error)
	GetByID(id string) (model.Poll, error)
	List() ([]model.Poll, error)
	ListByCreator(userID string) ([]model.Poll, error)
	ListActive(now time.Time) ([]model.Poll, error)
	Save(poll model.Poll) (model.Poll, error)
	Delete(id string) error
}

type poll struct {
	db *gorm.DB
}

func newPollRepository(db *gorm.DB) PollRepository {
	return &poll{
		db: db,
	}
}

// CreateWithOptions inserts the poll and its initial options in one
// transaction so a failed option insert never leaves an empty poll behind.
func (p *poll) CreateWithOptions(poll model.Poll, options []model.Option) (model.Poll, error) {
	err := p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&poll).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].PollID = poll.ID
			if err := tx.Create(&options[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.Poll{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	poll.Options = options
	return poll, nil
}

func (p *poll) GetByID(id string) (model.Poll, error) {
	var found model.Poll
	result := p.db.Preload("Options").Preload("CreatedBy").First(&found, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Poll{}, fmt.Errorf("%w: poll %s", dto.ErrNotFound, id)
		}
		return model.Poll{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (p *poll) List() ([]model.Poll, error) {
	var polls []model.Poll
	result := p.db.Preload("Options").Preload("CreatedBy").Order("created_at DESC").Find(&polls)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return polls, nil
}

func (p *poll) ListByCreator(userID string) ([]model.Poll, error) {
	var polls []model.Poll
	result := p.db.Preload("Options").Preload("CreatedBy").
		Where("created_by_id = ?", userID).
		Order("created_at DESC").
		Find(&polls)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return polls, nil
}

func (p *poll) ListActive(now time.Time) ([]model.Poll, error) {
	var polls []model.Poll
	result := p.db.Preload("Options").Preload("CreatedBy").
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("created_at DESC").
		Find(&polls)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return polls, nil
}

func (p *poll) Save(poll model.Poll) (model.Poll, error) {
	result := p.db.Omit("Options", "CreatedBy").Save(&poll)
	if result.Error != nil {
		return model.Poll{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return poll, nil
}

func (p *poll) Delete(id string) error {
	err := p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Vote{}, "poll_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Option{}, "poll_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Poll{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	return nil
}
