package repository

import (
	"errors"
	"fmt"

	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"gorm.io/gorm"
)

type TokenRepository interface {
	GetByKey(key string) (model.Token, error)
	GetForUser(userID string) (model.Token, error)
	Create(token model.Token) (model.Token, error)
	DeleteForUser(userID string) error
}

type token struct {
	db *gorm.DB
}

func newTokenRepository(db *gorm.DB) TokenRepository {
	return &token{
		db: db,
	}
}

func (t *token) GetByKey(key string) (model.Token, error) {
	var found model.Token
	result := t.db.Preload("User").First(&found, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Token{}, fmt.Errorf("%w: unknown token", dto.ErrNotAuthorized)
		}
		return model.Token{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (t *token) GetForUser(userID string) (model.Token, error) {
	var found model.Token
	result := t.db.First(&found, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Token{}, fmt.Errorf("%w: no token for user", dto.ErrNotFound)
		}
		return model.Token{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (t *token) Create(token model.Token) (model.Token, error) {
	result := t.db.Create(&token)
	if result.Error != nil {
		return model.Token{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return token, nil
}

func (t *token) DeleteForUser(userID string) error {
	result := t.db.Delete(&model.Token{}, "user_id = ?", userID)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}
