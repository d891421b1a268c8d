package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lotusnegra/storefront/internal/session/app"
	"github.com/lotusnegra/storefront/internal/web"
)

type Handler struct {
	mgr *app.Manager
}

func NewHandler(mgr *app.Manager) *Handler {
	return &Handler{mgr: mgr}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/sessions", h.start)
	r.DELETE("/sessions", h.end)
}

type startRequest struct {
	Email string `json:"email"`
}

type sessionResponse struct {
	SessionID string    `json:"session_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		web.Error(c, app.ErrInvalidInput)
		return
	}

	s, err := h.mgr.Start(c.Request.Context(), req.Email)
	if err != nil {
		web.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, sessionResponse{
		SessionID: s.ID,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	})
}

func (h *Handler) end(c *gin.Context) {
	id := c.GetHeader(HeaderSessionID)
	if err := h.mgr.End(c.Request.Context(), id); err != nil {
		web.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
