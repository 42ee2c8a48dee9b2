package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/oarkflow/zeit/pkg/gate"
	"github.com/oarkflow/zeit/pkg/models"
	"github.com/oarkflow/zeit/pkg/utils"
	"github.com/oarkflow/zeit/pkg/views"
)

const (
	defaultRateLimit  = 30
	defaultRateWindow = time.Minute
)

// RateLimitWithMax creates a rate limiting middleware allowing maxRequests per
// window for each client IP and endpoint. Non-positive values fall back to 30
// requests per minute.
func RateLimitWithMax(maxRequests int, window time.Duration) fiber.Handler {
	if maxRequests <= 0 {
		maxRequests = defaultRateLimit
	}
	if window <= 0 {
		window = defaultRateWindow
	}
	return limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return utils.GetClientIP(c) + ":" + c.Path()
		},
		LimitReached: func(c *fiber.Ctx) error {
			viewID := views.Resolve(c.Params("id")).ID
			Audit(c, viewID, models.OutcomeRateLimited, gate.Snapshot{})
			if utils.WantsJSON(c) {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error":       "Too many requests",
					"message":     "Please wait before making another request",
					"retry_after": int(window.Seconds()),
				})
			}
			return SendError(c, fiber.StatusTooManyRequests, "Demasiadas solicitudes. Espere antes de intentar nuevamente.")
		},
	})
}
