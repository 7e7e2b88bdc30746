// Package handlers is the HTTP shell over the service layer. Handlers
// parse requests, call a service, and write the service envelope back;
// the status code is derived from the result kind, the body is the
// envelope itself.
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/socialsync/socialdb/internal/services"
	"github.com/socialsync/socialdb/internal/types"
)

// statusForKind maps a failed service result to an HTTP status code.
func statusForKind(kind services.ErrKind) int {
	switch kind {
	case services.KindValidation, services.KindMalformedID:
		return fiber.StatusBadRequest
	case services.KindDuplicate:
		return fiber.StatusConflict
	case services.KindNotFound:
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// respond writes a service envelope, choosing the status from the outcome.
func respond[T any](c *fiber.Ctx, okStatus int, r services.Result[T]) error {
	if !r.Success {
		return c.Status(statusForKind(r.Kind)).JSON(r)
	}
	return c.Status(okStatus).JSON(r)
}

// queryTime parses an optional date-range bound from a query parameter,
// accepting RFC3339 or unix seconds. A missing parameter yields nil.
func queryTime(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := types.ParseFlexTime(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
