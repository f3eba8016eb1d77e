package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/recipe-genie/backend/internal/types"
)

type stubValidator struct {
	owner uuid.UUID
}

func (s stubValidator) ValidateToken(token string) (*types.SessionClaims, error) {
	if token != "good" {
		return nil, errors.New("invalid session token")
	}
	return &types.SessionClaims{OwnerID: s.owner}, nil
}

func TestAuthMiddleware(t *testing.T) {
	owner := uuid.New()

	r := gin.New()
	r.GET("/me", AuthMiddleware(stubValidator{owner: owner}), func(c *gin.Context) {
		id, ok := OwnerID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"bad token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, owner.String(), w.Body.String())
			}
		})
	}
}
