package repository

import (
	"errors"
	"fmt"

	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"gorm.io/gorm"
)

type OptionRepository interface {
	Create(option model.Option) (model.Option, error)
	GetByID(id string) (model.Option, error)
	ListByPoll(pollID string) ([]model.Option, error)
	TextTaken(pollID, text, excludeID string) (bool, error)
	Save(option model.Option) (model.Option, error)
	Delete(id string) error
}

type option struct {
	db *gorm.DB
}

func newOptionRepository(db *gorm.DB) OptionRepository {
	return &option{
		db: db,
	}
}

func (o *option) Create(option model.Option) (model.Option, error) {
	result := o.db.Create(&option)
	if result.Error != nil {
		return model.Option{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return option, nil
}

func (o *option) GetByID(id string) (model.Option, error) {
	var found model.Option
	result := o.db.Preload("Poll").First(&found, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Option{}, fmt.Errorf("%w: option %s", dto.ErrNotFound, id)
		}
		return model.Option{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (o *option) ListByPoll(pollID string) ([]model.Option, error) {
	var options []model.Option
	result := o.db.Where("poll_id = ?", pollID).Order("created_at ASC").Find(&options)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return options, nil
}

func (o *option) TextTaken(pollID, text, excludeID string) (bool, error) {
	var count int64
	query := o.db.Model(&model.Option{}).Where("poll_id = ? AND option_text = ?", pollID, text)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	return count > 0, nil
}

func (o *option) Save(option model.Option) (model.Option, error) {
	result := o.db.Omit("Poll").Save(&option)
	if result.Error != nil {
		return model.Option{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return option, nil
}

func (o *option) Delete(id string) error {
	err := o.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Vote{}, "option_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Option{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	return nil
}
