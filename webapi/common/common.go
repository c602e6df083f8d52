// Package common holds the shared response helpers for the web API.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/orioninvest/brokerage/pkg/docstore"
	"github.com/orioninvest/brokerage/pkg/identity"
	authsvc "github.com/orioninvest/brokerage/pkg/service/auth"
	"github.com/orioninvest/brokerage/pkg/service/dashboard"
	"github.com/orioninvest/brokerage/pkg/service/onboarding"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes a standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. Trailing
// arguments may supply a detail string and an explicit status; the status
// otherwise derives from err.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, rest ...any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: ErrorToStatusCode(err),
	}
	for _, arg := range rest {
		switch v := arg.(type) {
		case string:
			pd.Detail = v
		case int:
			pd.Status = v
		}
	}
	if err != nil && pd.Detail == "" {
		pd.Detail = err.Error()
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(pd.Status).JSON(pd)
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return fiber.StatusInternalServerError
	case errors.Is(err, authsvc.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, authsvc.ErrProfileMissing):
		return fiber.StatusUnauthorized
	case errors.Is(err, onboarding.ErrMissingFields):
		return fiber.StatusBadRequest
	case errors.Is(err, onboarding.ErrNoSession):
		return fiber.StatusUnauthorized
	case errors.Is(err, dashboard.ErrNoSession):
		return fiber.StatusUnauthorized
	case errors.Is(err, docstore.ErrNotFound):
		return fiber.StatusNotFound
	}
	var perr *identity.Error
	if errors.As(err, &perr) {
		switch perr.Code {
		case identity.CodeEmailInUse:
			return fiber.StatusConflict
		case identity.CodeInvalidEmail, identity.CodeWeakPassword:
			return fiber.StatusBadRequest
		case identity.CodeUserNotFound, identity.CodeWrongPassword:
			return fiber.StatusUnauthorized
		case identity.CodeTooManyRequests:
			return fiber.StatusTooManyRequests
		}
	}
	return fiber.StatusInternalServerError
}

// BindAndValidate parses the request body and validates it. Returns the
// populated struct, or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		_ = ProblemDetailsJSON(c, "Invalid request body", nil, err.Error(), fiber.StatusBadRequest)
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		_ = ProblemDetailsJSON(c, "Validation failed", nil, err.Error(), fiber.StatusBadRequest)
		return nil, err
	}
	return &input, nil
}
