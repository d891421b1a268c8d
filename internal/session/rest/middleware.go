package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotusnegra/storefront/internal/session/app"
)

// HeaderSessionID carries the session id on every authenticated request.
const HeaderSessionID = "X-Session-ID"

const contextSessionID = "session_id"

// Middleware gates a route group on an active session. Cart and quote
// operations are only reachable through it.
func Middleware(mgr *app.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderSessionID)
		if id == "" || !mgr.Active(c.Request.Context(), id) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHENTICATED",
					"message": "active session required",
				},
			})
			return
		}
		c.Set(contextSessionID, id)
		c.Next()
	}
}

// SessionID returns the session bound to the request by Middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(contextSessionID)
}
