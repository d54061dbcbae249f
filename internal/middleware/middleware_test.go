package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"FinTrack/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesULID(t *testing.T) {
	app := fiber.New()
	app.Use(NewRequestIDMiddleware())

	var captured string
	app.Get("/", func(c *fiber.Ctx) error {
		captured, _ = c.Locals(RequestIDKey).(string)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.True(t, utils.IsValidID(captured))
	assert.Equal(t, captured, resp.Header.Get(RequestIDKey))
}

func TestRequestIDMiddleware_HonorsClientID(t *testing.T) {
	app := fiber.New()
	app.Use(NewRequestIDMiddleware())

	var captured string
	app.Get("/", func(c *fiber.Ctx) error {
		captured, _ = c.Locals(RequestIDKey).(string)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDKey, "client-supplied-id")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "client-supplied-id", captured)
	assert.Equal(t, "client-supplied-id", resp.Header.Get(RequestIDKey))
}

func TestRateLimiter_DeniesOverBudget(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	m := &middleware{
		rateLimitter: newRateLimiter(0, 1),
		log:          log,
	}

	app := fiber.New()
	app.Get("/", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	limiter := newRateLimiter(1, 1)

	assert.Same(t, limiter.limiterFor("10.0.0.1"), limiter.limiterFor("10.0.0.1"))
	assert.NotSame(t, limiter.limiterFor("10.0.0.1"), limiter.limiterFor("10.0.0.2"))
}
