package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"lostfound_backend/config"
)

var authLimiter *rate.Limiter

// AuthRateLimit throttles credential endpoints (login, register) so password
// guessing stays slow regardless of client count
func AuthRateLimit(c *fiber.Ctx) error {
	if authLimiter == nil {
		authLimiter = rate.NewLimiter(
			rate.Limit(config.Config.AuthRateLimit),
			config.Config.AuthRateBurst,
		)
	}
	if !authLimiter.Allow() {
		return fiber.NewError(fiber.StatusTooManyRequests, "too many requests")
	}
	return c.Next()
}
