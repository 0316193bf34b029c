package middleware

import (
	"lumina/internal/session"

	"github.com/gofiber/fiber/v2"
)

// SessionHeader carries the session ID in both directions.
const SessionHeader = "X-Session-ID"

const sessionKey = "session"

// Session attaches the caller's session to the request, starting a new one
// when the header is missing or unknown. The ID in use is echoed back.
func Session(registry *session.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, _ := registry.GetOrCreate(c.Get(SessionHeader))
		c.Locals(sessionKey, s)
		c.Set(SessionHeader, s.ID)
		return c.Next()
	}
}

// CurrentSession returns the session attached by Session.
func CurrentSession(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(sessionKey).(*session.Session)
	return s
}
