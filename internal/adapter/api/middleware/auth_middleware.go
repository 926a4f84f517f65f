package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"connekt/pkg/errors"
	"connekt/pkg/response"
)

// TokenVerifier turns a bearer token into a uid.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

func bearerToken(c echo.Context) (string, bool) {
	parts := strings.Split(c.Request().Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		token, ok := bearerToken(c)
		if !ok {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		uid, err := m.verifier.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		c.Set("uid", uid)
		return next(c)
	}
}

// OptionalAuth sets uid when a valid token is present and otherwise lets the
// request through anonymously.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		if uid, err := m.verifier.VerifyToken(c.Request().Context(), token); err == nil {
			c.Set("uid", uid)
		}
		return next(c)
	}
}

// UID returns the authenticated user, or "" for anonymous requests.
func UID(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}
