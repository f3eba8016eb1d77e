package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-genie/backend/internal/service"
	"github.com/pageza/recipe-genie/backend/internal/spoonacular"
)

// User-facing messages for upstream failures
const (
	MsgRateLimited = "The daily recipe search limit has been reached. Please try again tomorrow!"
	MsgUnavailable = "Failed to fetch recipes. The Spoonacular API might be unavailable."
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler turns the last error a handler attached with c.Error into a
// JSON error response.
func ErrorHandler(logger *log.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		if last.IsType(gin.ErrorTypeBind) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: last.Error()})
			return
		}

		status, message := StatusFor(last.Err)
		if status >= http.StatusInternalServerError {
			logger.Printf("[API] %s %s failed: %v", c.Request.Method, c.FullPath(), last.Err)
		}
		c.JSON(status, ErrorResponse{Error: message})
	}
}

// StatusFor maps an error to an HTTP status and the message shown to clients.
func StatusFor(err error) (int, string) {
	var cfgErr *spoonacular.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		return http.StatusServiceUnavailable, cfgErr.Message
	case errors.Is(err, spoonacular.ErrRateLimited):
		return http.StatusTooManyRequests, MsgRateLimited
	case spoonacular.IsUnavailable(err):
		return http.StatusBadGateway, MsgUnavailable
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidMealType),
		errors.Is(err, service.ErrInvalidRecipeID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrMealNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrInvalidSession):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrExportDisabled):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
