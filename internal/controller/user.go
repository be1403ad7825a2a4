package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/service"
)

type UserController interface {
	Profile(ec echo.Context) error
	UpdateProfile(ec echo.Context) error
	ChangePassword(ec echo.Context) error
	DeactivateAccount(ec echo.Context) error
	VotingHistory(ec echo.Context) error
	AllUsers(ec echo.Context) error
	DeleteUser(ec echo.Context) error
}

type userController struct {
	userService service.UserService
}

func newUserController(userService service.UserService) UserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) Profile(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	return ec.JSON(http.StatusOK, c.userService.Profile(user))
}

func (c *userController) UpdateProfile(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	var req dto.UpdateProfileRequest
	if err := ec.Bind(&req); err != nil {
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON."})
	}
	if err := ec.Validate(&req); err != nil {
		return respondError(ec, err)
	}

	updated, err := c.userService.UpdateProfile(user, req)
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"user":    updated,
	})
}

func (c *userController) ChangePassword(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	var req dto.ChangePasswordRequest
	if err := ec.Bind(&req); err != nil {
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON."})
	}
	if err := ec.Validate(&req); err != nil {
		return respondError(ec, err)
	}

	if err := c.userService.ChangePassword(user, req); err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, echo.Map{"message": "Password changed successfully"})
}

func (c *userController) DeactivateAccount(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	if err := c.userService.Deactivate(user); err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, echo.Map{"message": "Account deactivated successfully"})
}

func (c *userController) VotingHistory(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	history, err := c.userService.VotingHistory(user)
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, history)
}

func (c *userController) AllUsers(ec echo.Context) error {
	users, err := c.userService.ListAll()
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, users)
}

func (c *userController) DeleteUser(ec echo.Context) error {
	if err := c.userService.DeleteUser(ec.Param("id")); err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}
