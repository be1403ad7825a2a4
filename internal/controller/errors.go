package controller

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/openpolls/backend/internal/dto"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors onto HTTP statuses. Validation errors
// keep their field keys; everything else gets an "error" body.
func respondError(ec echo.Context, err error) error {
	var validation *dto.ValidationError
	if errors.As(err, &validation) {
		return ec.JSON(http.StatusBadRequest, validation.Fields)
	}

	switch {
	case errors.Is(err, dto.ErrPollExpired), errors.Is(err, dto.ErrAlreadyVoted):
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, dto.ErrNotAuthorized):
		return ec.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication credentials were not provided or are invalid."})
	case errors.Is(err, dto.ErrForbidden):
		return ec.JSON(http.StatusForbidden, echo.Map{"error": "You do not have permission to perform this action."})
	case errors.Is(err, dto.ErrNotFound):
		return ec.JSON(http.StatusNotFound, echo.Map{"error": "Not found."})
	case errors.Is(err, dto.ErrConflict):
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		logrus.Errorf("Unhandled error: %v", err)
		return ec.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error."})
	}
}

type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the json field names clients actually sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{validate: v}
}

func (rv *requestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	validation := &dto.ValidationError{}
	for _, fe := range fieldErrors {
		validation.Add(fe.Field(), validationMessage(fe))
	}
	return validation
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Ensure this field has at least %s items.", fe.Param())
		}
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "uuid4":
		return "Must be a valid UUID."
	default:
		return "Invalid value."
	}
}
