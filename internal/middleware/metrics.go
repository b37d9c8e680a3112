package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/observability"
)

// RequestMetrics records request latency labelled by method, matched route
// and status.
func RequestMetrics(metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		metrics.ObserveRequest(c.Method(), c.Route().Path, statusCode(c, err), time.Since(start))
		return err
	}
}
