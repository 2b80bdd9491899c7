package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// RateLimitPerIP aplica um token bucket por IP de origem. Usado no /login
// para conter tentativas de forca bruta.
func RateLimitPerIP(rps rate.Limit, burst int) fiber.Handler {
	var mu sync.Mutex
	limiters := map[string]*rate.Limiter{}

	return func(c *fiber.Ctx) error {
		ip := c.IP()

		mu.Lock()
		lim, ok := limiters[ip]
		if !ok {
			lim = rate.NewLimiter(rps, burst)
			limiters[ip] = lim
		}
		mu.Unlock()

		if !lim.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Muitas tentativas. Tente novamente em instantes.",
			})
		}
		return c.Next()
	}
}
