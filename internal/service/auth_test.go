package service

import (
	"errors"
	"testing"

	"github.com/openpolls/backend/internal/dto"
)

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	base := dto.RegisterRequest{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Username:        "jane",
		Password:        "SecurePass123!",
		PasswordConfirm: "SecurePass123!",
	}

	if _, token, err := env.services.Auth().Register(base); err != nil {
		t.Fatalf("Register failed: %v", err)
	} else if len(token) != 40 {
		t.Errorf("Expected 40-char token, got %d chars", len(token))
	}

	tests := []struct {
		name   string
		mutate func(r *dto.RegisterRequest)
		field  string
	}{
		{
			name:   "duplicate email",
			mutate: func(r *dto.RegisterRequest) { r.Username = "other" },
			field:  "email",
		},
		{
			name:   "duplicate username",
			mutate: func(r *dto.RegisterRequest) { r.Email = "other@example.com" },
			field:  "username",
		},
		{
			name: "weak password",
			mutate: func(r *dto.RegisterRequest) {
				r.Email = "short@example.com"
				r.Username = "short"
				r.Password = "short"
				r.PasswordConfirm = "short"
			},
			field: "password",
		},
		{
			name: "numeric password",
			mutate: func(r *dto.RegisterRequest) {
				r.Email = "numeric@example.com"
				r.Username = "numeric"
				r.Password = "1234567890"
				r.PasswordConfirm = "1234567890"
			},
			field: "password",
		},
		{
			name: "password mismatch",
			mutate: func(r *dto.RegisterRequest) {
				r.Email = "mismatch@example.com"
				r.Username = "mismatch"
				r.PasswordConfirm = "Different123!"
			},
			field: "password_confirm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)

			_, _, err := env.services.Auth().Register(req)
			var validation *dto.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("Expected validation error, got %v", err)
			}
			if _, ok := validation.Fields[tt.field]; !ok {
				t.Errorf("Expected error keyed on %q, got %v", tt.field, validation.Fields)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	user := registerTestUser(t, env, "login")

	payload, token, err := env.services.Auth().Login(dto.LoginRequest{
		Email:    user.Email,
		Password: "SecurePass123!",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if payload.UserID != user.ID {
		t.Errorf("Expected user %s, got %s", user.ID, payload.UserID)
	}
	if token == "" {
		t.Error("Expected a token")
	}

	// Same token on repeat login.
	_, again, err := env.services.Auth().Login(dto.LoginRequest{
		Email:    user.Email,
		Password: "SecurePass123!",
	})
	if err != nil {
		t.Fatalf("Second login failed: %v", err)
	}
	if again != token {
		t.Error("Expected repeat login to return the same token")
	}

	if _, _, err := env.services.Auth().Login(dto.LoginRequest{
		Email:    user.Email,
		Password: "WrongPass123!",
	}); err == nil {
		t.Error("Expected wrong password to fail")
	}

	if _, _, err := env.services.Auth().Login(dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "SecurePass123!",
	}); err == nil {
		t.Error("Expected unknown email to fail")
	}
}

func TestLoginInactiveUser(t *testing.T) {
	env := newTestEnv(t)
	user := registerTestUser(t, env, "inactive")

	if err := env.services.User().Deactivate(user); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	_, _, err := env.services.Auth().Login(dto.LoginRequest{
		Email:    user.Email,
		Password: "SecurePass123!",
	})
	var validation *dto.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Expected validation error for inactive user, got %v", err)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	env := newTestEnv(t)
	user := registerTestUser(t, env, "logout")

	_, token, err := env.services.Auth().Login(dto.LoginRequest{
		Email:    user.Email,
		Password: "SecurePass123!",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if _, err := env.services.Auth().ValidateToken(token); err != nil {
		t.Fatalf("ValidateToken failed before logout: %v", err)
	}

	if err := env.services.Auth().Logout(user); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, err := env.services.Auth().ValidateToken(token); !errors.Is(err, dto.ErrNotAuthorized) {
		t.Errorf("Expected ErrNotAuthorized after logout, got %v", err)
	}
}
