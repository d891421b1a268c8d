package web

import "github.com/gin-gonic/gin"

// Error writes the error envelope for err and aborts the request.
func Error(c *gin.Context, err error) {
	status, code := Status(err)
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": err.Error(),
		},
	})
}
