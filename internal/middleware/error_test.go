package middleware

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/recipe-genie/backend/internal/service"
	"github.com/pageza/recipe-genie/backend/internal/spoonacular"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing API key",
			err:            spoonacular.ErrMissingAPIKey,
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   spoonacular.ErrMissingAPIKey.Message,
		},
		{
			name:           "wrapped rate limit",
			err:            fmt.Errorf("failed to search recipes: %w", spoonacular.ErrRateLimited),
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   MsgRateLimited,
		},
		{
			name:           "upstream failure",
			err:            &spoonacular.UpstreamError{StatusCode: 500, Status: "500 Internal Server Error"},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   MsgUnavailable,
		},
		{
			name:           "invalid date",
			err:            service.ErrInvalidDate,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   service.ErrInvalidDate.Error(),
		},
		{
			name:           "meal not found",
			err:            service.ErrMealNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   service.ErrMealNotFound.Error(),
		},
		{
			name:           "unknown error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler(log.New(io.Discard, "", 0)))
			r.GET("/", func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.expectedBody), w.Body.String())
		})
	}

	t.Run("should leave written responses alone", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler(log.New(io.Discard, "", 0)))
		r.GET("/", func(c *gin.Context) {
			_ = c.Error(errors.New("logged only"))
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("should map bind errors to bad request", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler(log.New(io.Discard, "", 0)))
		r.GET("/", func(c *gin.Context) {
			_ = c.Error(errors.New("recipe_id is required")).SetType(gin.ErrorTypeBind)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
