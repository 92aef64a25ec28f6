package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName carries the request's RayID back to the client.
const HeaderName = "X-Ray-ID"

// New returns a middleware that tags every request with a RayID. An incoming
// X-Ray-ID header is honored so upstream proxies can correlate; otherwise a
// fresh UUID is generated. The id lands in c.Locals("ray_id") where
// logger.WithRayID picks it up.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
