package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestIDKey is the fiber Locals key under which the requestid middleware
// stores the request ID.
const RequestIDKey = "requestid"

// RequestLogger logs each request with timing, status and request ID. Server
// errors are logged at Error level.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := statusCode(c, err)
		duration := time.Since(start)

		logLevel := zapcore.InfoLevel
		if status >= fiber.StatusInternalServerError {
			logLevel = zapcore.ErrorLevel
		}

		logger.Check(logLevel, "http request").Write(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("route", c.Route().Path),
			zap.String("request_id", RequestID(c)),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.Error(err),
		)

		return err
	}
}

// RequestID returns the ID assigned by the requestid middleware, if any.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// statusCode resolves the status the client will see. Errors returned up the
// chain have not been written yet; the error handler turns them into a
// response later.
func statusCode(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if e, ok := err.(*fiber.Error); ok {
		return e.Code
	}
	return fiber.StatusInternalServerError
}
