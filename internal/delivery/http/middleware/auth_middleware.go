package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "gameswap/internal/delivery/context"
	"gameswap/internal/domain/service"
)

// AuthMiddleware resolves the caller's identity from the bearer token.
//
// Authentication is optional at the transport: every operation is served
// through the same endpoint, and only some of them need a principal. A
// missing or invalid token therefore never rejects the request here; the
// request simply proceeds unauthenticated and the protected operations
// fail on their own.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header, if present, and stores
// the resulting principal in the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return next(c)
		}

		principal, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return next(c)
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
