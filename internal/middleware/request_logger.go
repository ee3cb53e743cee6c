package middleware

import (
	"time"

	"trivia-api/internal/logger"
	"trivia-api/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger logs every request and tags it with a ULID request id, reusing a valid
// incoming X-Request-ID.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if !util.IsULID(requestID) {
			requestID = util.NewULID()
		}
		c.Set(RequestIDHeader, requestID)

		err := c.Next()
		if err != nil {
			// render now so the logged status is the one the client sees
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.Get().Info("HTTP Request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		)
		return nil
	}
}
