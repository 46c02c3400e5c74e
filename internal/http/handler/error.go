package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/form"
	"resumebuilder/internal/http/middleware"
	"resumebuilder/internal/model"
	"resumebuilder/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func requestIDFromCtx(c *fiber.Ctx) string {
	return middleware.RequestIDFromContext(c.UserContext())
}

// writeError writes a standardized JSON error response. message must be safe
// to show to clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// writeServiceError maps service and domain errors to responses. Validation
// messages are returned as is; anything unexpected is logged and hidden.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidRecord):
		return writeError(c, fiber.StatusBadRequest, "INVALID_RECORD", err.Error())
	case errors.Is(err, form.ErrRequiredField):
		return writeError(c, fiber.StatusBadRequest, "REQUIRED_FIELD", err.Error())
	case errors.Is(err, form.ErrUnknownSection),
		errors.Is(err, form.ErrUnknownField),
		errors.Is(err, form.ErrUnknownOp),
		errors.Is(err, form.ErrIndexRequired),
		errors.Is(err, form.ErrInvalidEntry):
		return writeError(c, fiber.StatusBadRequest, "INVALID_CHANGE", err.Error())
	case errors.Is(err, form.ErrIndexOutOfRange):
		return writeError(c, fiber.StatusUnprocessableEntity, "INDEX_OUT_OF_RANGE", err.Error())
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "export not found")
	case errors.Is(err, form.ErrSessionNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "form session not found")
	case errors.Is(err, service.ErrExportsDisabled):
		return writeError(c, fiber.StatusNotImplemented, "EXPORTS_DISABLED", "exports are disabled")
	}

	slog.ErrorContext(c.UserContext(), "request failed",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "BODY_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
