package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/recipe-genie/backend/internal/types"
)

// OwnerIDKey is the context key holding the session owner id
const OwnerIDKey = "owner_id"

// TokenValidator is an interface for validating session tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.SessionClaims, error)
}

// AuthMiddleware creates a middleware that validates session tokens
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid authorization header format"})
			return
		}

		claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			return
		}

		c.Set(OwnerIDKey, claims.OwnerID)
		c.Next()
	}
}

// OwnerID returns the session owner set by AuthMiddleware
func OwnerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(OwnerIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}
