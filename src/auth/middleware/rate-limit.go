package auth_middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/google/uuid"
	"github.com/nimbusworks/nimbus-server/src/config/env"
)

// GenerationRateLimiter limits generation attempts per user (falling back to
// IP for unauthenticated requests). Must run after UserMiddleware so the
// per-user key is available.
var GenerationRateLimiter = limiter.New(limiter.Config{
	Max:        env.RateLimitGeneration,
	Expiration: 1 * time.Minute,
	KeyGenerator: func(c *fiber.Ctx) string {
		if userID := GetUserID(c); userID != uuid.Nil {
			return "generation:" + userID.String()
		}
		return "generation:" + c.IP()
	},
	LimitReached: func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":   "Too many generation requests",
			"message": "Please try again later",
		})
	},
})
