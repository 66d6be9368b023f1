package middleware

import (
	"errors"
	"strings"

	"applyflow/internal/domain/identity"
	"applyflow/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const ctxIdentityKey = "identity"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware validates the bearer token and stashes the caller's identity,
// raw token included so downstream calls to the profile collaborator can
// forward it.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(ctxIdentityKey, identity.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Token:  token,
		})

		return c.Next()
	}
}

// IdentityFromCtx retrieves what the auth middleware stored.
func IdentityFromCtx(c fiber.Ctx) (identity.Identity, bool) {
	ident, ok := c.Locals(ctxIdentityKey).(identity.Identity)
	if !ok || ident.IsZero() {
		return identity.Identity{}, false
	}
	return ident, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
