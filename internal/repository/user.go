package repository

import (
	"errors"
	"fmt"

	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user model.User) (model.User, error)
	GetByID(id string) (model.User, error)
	GetActiveByEmail(email string) (model.User, error)
	EmailTaken(email, excludeID string) (bool, error)
	UsernameTaken(username, excludeID string) (bool, error)
	Save(user model.User) (model.User, error)
	List() ([]model.User, error)
	Delete(id string) error
}

type user struct {
	db *gorm.DB
}

func newUserRepository(db *gorm.DB) UserRepository {
	return &user{
		db: db,
	}
}

func (u *user) Create(user model.User) (model.User, error) {
	result := u.db.Create(&user)
	if result.Error != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}

func (u *user) GetByID(id string) (model.User, error) {
	var found model.User
	result := u.db.First(&found, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("%w: user %s", dto.ErrNotFound, id)
		}
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (u *user) GetActiveByEmail(email string) (model.User, error) {
	var found model.User
	result := u.db.First(&found, "email = ? AND is_active = ?", email, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("%w: no active user for email", dto.ErrNotFound)
		}
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (u *user) EmailTaken(email, excludeID string) (bool, error) {
	var count int64
	query := u.db.Model(&model.User{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	return count > 0, nil
}

func (u *user) UsernameTaken(username, excludeID string) (bool, error) {
	var count int64
	query := u.db.Model(&model.User{}).Where("username = ?", username)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	return count > 0, nil
}

func (u *user) Save(user model.User) (model.User, error) {
	result := u.db.Save(&user)
	if result.Error != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}

func (u *user) List() ([]model.User, error) {
	var users []model.User
	result := u.db.Order("created_at DESC").Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return users, nil
}

func (u *user) Delete(id string) error {
	result := u.db.Delete(&model.User{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user %s", dto.ErrNotFound, id)
	}

	return nil
}
