package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse writes a failure envelope for errors raised outside the
// service layer: unparseable bodies, unknown routes, panics reaching the
// global handler. Service failures carry their own envelope and do not
// pass through here.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// ErrorResponseStruct defines the schema for error envelopes
type ErrorResponseStruct struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
