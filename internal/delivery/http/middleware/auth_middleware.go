package middleware

import (
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key under which Authenticate stores
// the caller's user id.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// user id on the context. Missing or invalid tokens end the request with
// 401 before any handler logic runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, errCode, errMsg := m.resolveClaims(c)
		if claims == nil {
			return response.Unauthorized(c, errCode, errMsg)
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

// UserID returns the authenticated user's id stored by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

func (m *AuthMiddleware) resolveClaims(c echo.Context) (*service.Claims, string, string) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, "UNAUTHENTICATED", "Authorization header is missing"
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, "UNAUTHENTICATED", "Invalid token format, must be Bearer token"
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, "UNAUTHENTICATED", "Invalid or expired token"
	}

	return claims, "", ""
}
