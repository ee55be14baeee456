package middleware

import (
	"strings"

	"dash/internal/delivery/http/response"
	"dash/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the bearer token and resolves the live user behind
// it. Every failure, from a missing header to a deleted account, yields the
// same 401 body so the response cannot be used to probe token state.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "not authenticated")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "not authenticated")
		}

		user, err := m.authUsecase.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "not authenticated")
		}

		// Set user info on the context for handlers to use
		c.Set("userID", user.ID)
		c.Set("user", user)

		return next(c)
	}
}
