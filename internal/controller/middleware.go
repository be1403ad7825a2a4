package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"github.com/openpolls/backend/internal/service"
)

// requireAuth resolves the bearer token and stores the user on the
// request context. Both "Bearer <key>" and "Token <key>" are accepted.
func requireAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			header := ec.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return ec.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication credentials were not provided."})
			}

			key := strings.TrimPrefix(header, "Bearer ")
			key = strings.TrimPrefix(key, "Token ")
			if key == header {
				return ec.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid authorization header format."})
			}

			user, err := authService.ValidateToken(key)
			if err != nil {
				return ec.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token."})
			}

			ec.Set(dto.UserContextKey, user)
			return next(ec)
		}
	}
}

func requireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			user, ok := userFromContext(ec)
			if !ok || !user.IsStaff {
				return ec.JSON(http.StatusForbidden, echo.Map{"error": "Admin access required."})
			}
			return next(ec)
		}
	}
}

func userFromContext(ec echo.Context) (model.User, bool) {
	user, ok := ec.Get(dto.UserContextKey).(model.User)
	return user, ok
}
