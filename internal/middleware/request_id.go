package middleware

import (
	"FinTrack/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"time"
)

// RequestIDKey is both the header and the Locals key carrying the
// per-request trace identifier.
const RequestIDKey = "X-Request-ID"

// NewRequestIDMiddleware tags every request with a ULID, honoring an id the
// client already sent. The id is echoed back in the response header so
// clients can quote it when reporting a failure.
func NewRequestIDMiddleware() fiber.Handler {
	idGen := utils.New()

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)
		if requestID == "" {
			requestID, _ = idGen.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}
