package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const RootMessage = "Resume Matcher Backend is running..."

type StatusHandler struct {
	now func() time.Time
}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{now: time.Now}
}

// HandleRoot handles GET /
func (h *StatusHandler) HandleRoot(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(RootMessage)
}

// HandleHealth handles GET /health
func (h *StatusHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   h.now(),
	})
}
