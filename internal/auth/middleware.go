package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vintage-books/internal/domain"
	apperrors "github.com/spec-kit/vintage-books/pkg/util"
)

const principalKey = "auth_principal"

// UserLoader resolves token subjects to users. Satisfied by the store.
type UserLoader interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
}

// AuthMiddleware validates bearer tokens and loads the calling user.
type AuthMiddleware struct {
	tokens *TokenManager
	users  UserLoader
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users UserLoader) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	user, err := m.users.GetUserByID(c.UserContext(), claims.UserID)
	if err != nil {
		return apperrors.NewUnauthorized("user not found")
	}
	if user.Status != domain.UserStatusActive {
		return apperrors.NewInactiveAccount()
	}

	c.Locals(principalKey, user.Sanitized())
	return c.Next()
}

// UserFromContext retrieves the authenticated user.
func UserFromContext(c *fiber.Ctx) (domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return domain.User{}, false
	}
	user, ok := val.(domain.User)
	return user, ok
}
