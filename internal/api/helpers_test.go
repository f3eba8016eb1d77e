package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-genie/backend/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter builds an engine with the error middleware and, when owner is
// not uuid.Nil, a stand-in for the session middleware.
func newTestRouter(owner uuid.UUID) (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	r.Use(middleware.ErrorHandler(log.New(io.Discard, "", 0)))
	v1 := r.Group("/api/v1")
	if owner != uuid.Nil {
		v1.Use(func(c *gin.Context) {
			c.Set(middleware.OwnerIDKey, owner)
			c.Next()
		})
	}
	return r, v1
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
