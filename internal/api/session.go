package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-genie/backend/internal/service"
)

// SessionHandler issues anonymous sessions for favorites and the planner
type SessionHandler struct {
	sessions service.ISessionService
}

func NewSessionHandler(sessions service.ISessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/session", h.CreateSession)
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	resp, err := h.sessions.IssueSession()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
