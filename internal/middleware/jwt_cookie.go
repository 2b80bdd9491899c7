package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DevHubCode/DevHub/internal/utils"
)

// CookieName e o cookie HTTPOnly onde o token de sessao e gravado no login.
const CookieName = "devhub_token"

func JWTFromCookie(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(CookieName)
		if tokenStr == "" {
			return fiber.ErrUnauthorized
		}

		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}
