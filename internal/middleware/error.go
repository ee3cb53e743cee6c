package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// envelopeMessages are the fixed messages of the error envelope, by status.
var envelopeMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// EnvelopeMessage returns the fixed message for status, falling back to the HTTP status text.
func EnvelopeMessage(status int) string {
	if msg, ok := envelopeMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// WriteError renders the error envelope with status.
func WriteError(c *fiber.Ctx, status int) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: EnvelopeMessage(status),
	})
}

// ErrorHandler is a centralized error handler rendering every failure as the error envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := mapDomainErrorToHTTPStatus(domainErr)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
				zap.String("path", c.Path()),
			}
			if status >= http.StatusInternalServerError {
				log.Error("Domain error occurred", append(fields, zap.Error(domainErr.Cause))...)
			} else {
				log.Warn("Domain error occurred", fields...)
			}
			return WriteError(c, status)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
				zap.String("path", c.Path()),
			)
			return WriteError(c, fiberErr.Code)
		}

		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return WriteError(c, http.StatusInternalServerError)
	}
}

func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeUnprocessable:
		return http.StatusUnprocessableEntity
	case domain.CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
