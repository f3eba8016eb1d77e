package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pageza/recipe-genie/backend/internal/types"
)

const sessionIssuer = "recipe-genie"

// DefaultSessionTTL is how long an anonymous session token stays valid.
const DefaultSessionTTL = 30 * 24 * time.Hour

// SessionService issues and validates anonymous session tokens. The owner id
// inside a token scopes favorites and meal plans.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionService creates a new SessionService instance
func NewSessionService(secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueSession creates a token for a new owner.
func (s *SessionService) IssueSession() (*types.SessionResponse, error) {
	owner := uuid.New()
	now := s.now()
	expires := now.Add(s.ttl)

	claims := &types.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   owner.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		OwnerID: owner,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &types.SessionResponse{
		Token:     signed,
		OwnerID:   owner.String(),
		ExpiresAt: expires.Unix(),
	}, nil
}

// ValidateToken parses a session token and returns its claims.
func (s *SessionService) ValidateToken(tokenString string) (*types.SessionClaims, error) {
	claims := &types.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	if claims.OwnerID == uuid.Nil {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
