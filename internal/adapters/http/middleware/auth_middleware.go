package middleware

import (
	"errors"
	"strings"
	"time"

	"tabaro3-api/internal/config"
	"tabaro3-api/internal/core/services"
	"tabaro3-api/internal/pkg/jwt"
	"tabaro3-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware. Claims alone are not
// trusted: the user row is resolved on every request, so sessions held by
// deleted accounts die immediately instead of at token expiry.
func AuthMiddleware(authService *services.AuthService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := extractToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := authService.ValidateAccessToken(accessToken)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		user, err := authService.ResolveUser(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				clearAuthCookies(c, cfg)
				return response.Unauthorized(c, "Session is no longer valid")
			}
			return response.InternalServerError(c, "Failed to authenticate request")
		}

		c.Locals("userID", user.ID)
		c.Locals("username", user.Username)
		c.Locals("isAdmin", user.IsAdmin)

		return c.Next()
	}
}

// AdminOnly middleware allows only administrators
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, ok := c.Locals("isAdmin").(bool)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}
		if !isAdmin {
			return response.Forbidden(c, "Administrator access required")
		}
		return c.Next()
	}
}

// extractToken reads the access token from the cookie first, then the
// Authorization header
func extractToken(c *fiber.Ctx) string {
	accessToken := c.Cookies("access_token")
	if accessToken == "" {
		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	return accessToken
}

// clearAuthCookies expires both auth cookies
func clearAuthCookies(c *fiber.Ctx, cfg *config.Config) {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   cfg.Cookie.Secure,
			SameSite: cfg.Cookie.SameSite,
			Domain:   cfg.Cookie.Domain,
			Path:     "/",
		})
	}
}
