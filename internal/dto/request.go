package dto

import "time"

type RegisterRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=2,max=30"`
	LastName        string `json:"last_name" validate:"required,min=2,max=30"`
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest uses pointers so PATCH can distinguish omitted
// fields from empty ones.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=2,max=30"`
	LastName  *string `json:"last_name" validate:"omitempty,min=2,max=30"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Username  *string `json:"username" validate:"omitempty,min=3,max=50"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type CreatePollRequest struct {
	Title       string              `json:"title" validate:"required,max=200"`
	Question    string              `json:"question" validate:"required"`
	Description string              `json:"description"`
	ExpiresAt   *time.Time          `json:"expires_at"`
	Options     []CreateOptionEntry `json:"options" validate:"required,min=2,dive"`
}

type CreateOptionEntry struct {
	OptionText string `json:"option_text" validate:"required,max=200"`
}

type UpdatePollRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Question    *string    `json:"question" validate:"omitempty"`
	Description *string    `json:"description"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type AddOptionRequest struct {
	OptionText string `json:"option_text" validate:"required,max=200"`
}

type CastVoteRequest struct {
	OptionID string `json:"option_id" validate:"required,uuid4"`
}
