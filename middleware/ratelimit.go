package middleware

import (
	"time"

	"github.com/MohamedOscar3/booking-service-modules-sub001/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// AuthRateLimiter throttles the register/login endpoints per client IP.
func AuthRateLimiter() fiber.Handler {
	max := config.AppConfig.AuthRateLimit
	if max <= 0 {
		max = 10
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Try again later.",
			})
		},
	})
}
