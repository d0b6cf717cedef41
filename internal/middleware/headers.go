package middleware

import "github.com/gin-gonic/gin"

// SecureHeaders applies blanket response hardening. Framing is denied
// on every route; there are no per-route exceptions.
func SecureHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Next()
	}
}
