package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS is a middleware that permits cross-origin requests from any
// origin. The endpoint serves read-only public data to browser clients,
// so no origin allowlist exists.
//
// Behavior:
//   - Sets Access-Control-Allow-Origin: * on every response.
//   - Answers OPTIONS preflight requests with 204 No Content.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
