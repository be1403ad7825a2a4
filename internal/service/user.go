package service

import (
	"fmt"

	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"github.com/openpolls/backend/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Profile(user model.User) dto.UserPayload
	UpdateProfile(user model.User, req dto.UpdateProfileRequest) (dto.UserPayload, error)
	ChangePassword(user model.User, req dto.ChangePasswordRequest) error
	Deactivate(user model.User) error
	VotingHistory(user model.User) ([]dto.VotePayload, error)
	ListAll() ([]dto.UserPayload, error)
	DeleteUser(id string) error
}

type userService struct {
	userRepository repository.UserRepository
	voteRepository repository.VoteRepository
	config         dto.Config
}

func newUserService(userRepository repository.UserRepository, voteRepository repository.VoteRepository, config dto.Config) UserService {
	return &userService{
		userRepository: userRepository,
		voteRepository: voteRepository,
		config:         config,
	}
}

func (s *userService) Profile(user model.User) dto.UserPayload {
	return toUserPayload(user)
}

func (s *userService) UpdateProfile(user model.User, req dto.UpdateProfileRequest) (dto.UserPayload, error) {
	validation := &dto.ValidationError{}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepository.EmailTaken(*req.Email, user.ID)
		if err != nil {
			return dto.UserPayload{}, err
		}
		if taken {
			validation.Add("email", "This email address is already registered to another account.")
		}
	}
	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.userRepository.UsernameTaken(*req.Username, user.ID)
		if err != nil {
			return dto.UserPayload{}, err
		}
		if taken {
			validation.Add("username", "This username is already taken.")
		}
	}
	if !validation.Empty() {
		return dto.UserPayload{}, validation
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = *req.Username
	}

	updated, err := s.userRepository.Save(user)
	if err != nil {
		return dto.UserPayload{}, err
	}

	return toUserPayload(updated), nil
}

func (s *userService) ChangePassword(user model.User, req dto.ChangePasswordRequest) error {
	validation := &dto.ValidationError{}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)) != nil {
		validation.Add("old_password", "Current password is incorrect.")
	}
	if msg := passwordStrength(req.NewPassword); msg != "" {
		validation.Add("new_password", msg)
	}
	if req.NewPassword != req.ConfirmPassword {
		validation.Add("confirm_password", "New passwords don't match.")
	}
	if !validation.Empty() {
		return validation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	user.PasswordHash = string(hash)
	if _, err := s.userRepository.Save(user); err != nil {
		return err
	}

	logrus.Infof("User %s changed password", user.Username)
	return nil
}

func (s *userService) Deactivate(user model.User) error {
	user.IsActive = false
	if _, err := s.userRepository.Save(user); err != nil {
		return err
	}

	logrus.Infof("User %s deactivated account", user.Username)
	return nil
}

func (s *userService) VotingHistory(user model.User) ([]dto.VotePayload, error) {
	votes, err := s.voteRepository.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}

	payloads := make([]dto.VotePayload, 0, len(votes))
	for _, vote := range votes {
		payloads = append(payloads, toVotePayload(vote))
	}
	return payloads, nil
}

func (s *userService) ListAll() ([]dto.UserPayload, error) {
	users, err := s.userRepository.List()
	if err != nil {
		return nil, err
	}

	payloads := make([]dto.UserPayload, 0, len(users))
	for _, user := range users {
		payloads = append(payloads, toUserPayload(user))
	}
	return payloads, nil
}

func (s *userService) DeleteUser(id string) error {
	if err := s.userRepository.Delete(id); err != nil {
		return err
	}

	logrus.Infof("User %s deleted by admin", id)
	return nil
}
