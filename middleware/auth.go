package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"

	"github.com/agropetvet/vetcare-app/services"
)

// CookieName carries the session token. HTTP-only, set on login/signup,
// cleared on logout.
const CookieName = "auth-token"

// Protected verifies the session cookie and resolves it to an Identity once
// per request. Handlers read it back with IdentityFromCtx; 401 policy lives
// here and nowhere else.
func Protected(auth *services.AuthService, secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + CookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			// jwtware verified signature and expiry; ResolveSession also
			// honors the revocation denylist.
			identity := auth.ResolveSession(c.Cookies(CookieName))
			if identity == nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Authentication required",
				})
			}
			c.Locals("identity", identity)
			return c.Next()
		},
	})
}

// IdentityFromCtx returns the identity stored by Protected, or nil.
func IdentityFromCtx(c *fiber.Ctx) *services.Identity {
	identity, _ := c.Locals("identity").(*services.Identity)
	return identity
}
