package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/service"
)

type AuthController interface {
	Register(ec echo.Context) error
	Login(ec echo.Context) error
	Logout(ec echo.Context) error
}

type authController struct {
	authService service.AuthService
}

func newAuthController(authService service.AuthService) AuthController {
	return &authController{
		authService: authService,
	}
}

func (c *authController) Register(ec echo.Context) error {
	var req dto.RegisterRequest
	if err := ec.Bind(&req); err != nil {
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON."})
	}
	if err := ec.Validate(&req); err != nil {
		return respondError(ec, err)
	}

	user, token, err := c.authService.Register(req)
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

func (c *authController) Login(ec echo.Context) error {
	var req dto.LoginRequest
	if err := ec.Bind(&req); err != nil {
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON."})
	}
	if err := ec.Validate(&req); err != nil {
		return respondError(ec, err)
	}

	user, token, err := c.authService.Login(req)
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

func (c *authController) Logout(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	if err := c.authService.Logout(user); err != nil {
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": "Something went wrong during logout"})
	}

	return ec.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}
