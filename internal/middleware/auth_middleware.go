package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshat/marksheet/internal/app/models"
	"github.com/akshat/marksheet/internal/app/models/dto"
	"github.com/akshat/marksheet/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// UserResolver looks up the token subject in the user store
type UserResolver interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthMiddleware resolves bearer tokens to identities and enforces role
// requirements.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      UserResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// Authenticated validates the bearer token and resolves its subject
// against the users collection. A token whose subject no longer exists
// is treated the same as an invalid token.
func (m *AuthMiddleware) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		subject, err := m.jwtService.Validate(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(details)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		user, err := m.users.FindByUsername(c.Request.Context(), subject)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authentication failed")
			errorDetail = errorDetail.WithDetails("Could not validate credentials")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUsername, user.Username)
		c.Set(ContextRole, string(user.Role))

		c.Next()
	}
}

// AdminRequired rejects callers without the admin role. Must run after
// Authenticated.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("User role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != string(models.RoleAdmin) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// CurrentIdentity reads the identity the auth middleware stored on the
// context.
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	username, ok := c.Get(ContextUsername)
	if !ok {
		return models.Identity{}, false
	}
	role, ok := c.Get(ContextRole)
	if !ok {
		return models.Identity{}, false
	}

	usernameStr, uok := username.(string)
	roleStr, rok := role.(string)
	if !uok || !rok {
		return models.Identity{}, false
	}

	return models.Identity{
		Username: usernameStr,
		Role:     models.Role(roleStr),
	}, true
}
