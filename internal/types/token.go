package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims represents the claims in an anonymous session token
type SessionClaims struct {
	jwt.RegisteredClaims
	OwnerID uuid.UUID `json:"owner_id"`
}
