package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"unicode"

	"github.com/google/uuid"
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"github.com/openpolls/backend/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentialsMessage = "Invalid credentials or inactive user."

type AuthService interface {
	Register(req dto.RegisterRequest) (dto.UserPayload, string, error)
	Login(req dto.LoginRequest) (dto.UserPayload, string, error)
	Logout(user model.User) error
	ValidateToken(key string) (model.User, error)
}

type authService struct {
	userRepository  repository.UserRepository
	tokenRepository repository.TokenRepository
}

func newAuthService(userRepository repository.UserRepository, tokenRepository repository.TokenRepository) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
	}
}

func (a *authService) Register(req dto.RegisterRequest) (dto.UserPayload, string, error) {
	validation := &dto.ValidationError{}

	if msg := passwordStrength(req.Password); msg != "" {
		validation.Add("password", msg)
	}
	if req.Password != req.PasswordConfirm {
		validation.Add("password_confirm", "Passwords don't match.")
	}

	emailTaken, err := a.userRepository.EmailTaken(req.Email, "")
	if err != nil {
		return dto.UserPayload{}, "", err
	}
	if emailTaken {
		validation.Add("email", "User with this email already exists.")
	}

	usernameTaken, err := a.userRepository.UsernameTaken(req.Username, "")
	if err != nil {
		return dto.UserPayload{}, "", err
	}
	if usernameTaken {
		validation.Add("username", "This username is already taken.")
	}

	if !validation.Empty() {
		return dto.UserPayload{}, "", validation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserPayload{}, "", fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	user, err := a.userRepository.Create(model.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		IsActive:     true,
	})
	if err != nil {
		return dto.UserPayload{}, "", err
	}

	key, err := a.getOrCreateToken(user.ID)
	if err != nil {
		return dto.UserPayload{}, "", err
	}

	logrus.Infof("User %s registered", user.Username)
	return toUserPayload(user), key, nil
}

func (a *authService) Login(req dto.LoginRequest) (dto.UserPayload, string, error) {
	user, err := a.userRepository.GetActiveByEmail(req.Email)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return dto.UserPayload{}, "", dto.NewValidationError("non_field_errors", invalidCredentialsMessage)
		}
		return dto.UserPayload{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return dto.UserPayload{}, "", dto.NewValidationError("non_field_errors", invalidCredentialsMessage)
	}

	key, err := a.getOrCreateToken(user.ID)
	if err != nil {
		return dto.UserPayload{}, "", err
	}

	logrus.Infof("User %s logged in", user.Username)
	return toUserPayload(user), key, nil
}

func (a *authService) Logout(user model.User) error {
	return a.tokenRepository.DeleteForUser(user.ID)
}

func (a *authService) ValidateToken(key string) (model.User, error) {
	token, err := a.tokenRepository.GetByKey(key)
	if err != nil {
		return model.User{}, err
	}

	if !token.User.IsActive {
		return model.User{}, fmt.Errorf("%w: user inactive", dto.ErrNotAuthorized)
	}

	return token.User, nil
}

func (a *authService) getOrCreateToken(userID string) (string, error) {
	token, err := a.tokenRepository.GetForUser(userID)
	if err == nil {
		return token.Key, nil
	}
	if !errors.Is(err, dto.ErrNotFound) {
		return "", err
	}

	key, err := generateTokenKey()
	if err != nil {
		return "", err
	}

	token, err = a.tokenRepository.Create(model.Token{
		Key:    key,
		UserID: userID,
	})
	if err != nil {
		return "", err
	}

	return token.Key, nil
}

// generateTokenKey returns a 40-char hex token, opaque to clients.
func generateTokenKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}
	return hex.EncodeToString(buf), nil
}

// passwordStrength returns an error message for weak passwords, empty
// when the password is acceptable.
func passwordStrength(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long."
	}
	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return "Password cannot be entirely numeric."
	}
	return ""
}
