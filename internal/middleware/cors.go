package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsAllowHeaders = "Authorization, X-Refresh-Token, Content-Type, X-Requested-With, Accept, Origin"
	// Authorization and X-Refresh-Token must be readable by browser
	// scripts: token reissue returns the new pair in these headers.
	corsExposeHeaders = "Authorization, X-Refresh-Token"
	corsMaxAge        = "3600" // preflight cache, 1 hour
)

// CORS permits cross-origin requests from the allow-list only.
// Entries may contain a single "*" wildcard, e.g. "https://*.wedit.me".
func CORS(allowed []string) gin.HandlerFunc {
	trim := func(s string) string { return strings.TrimRight(strings.TrimSpace(s), "/") }

	alist := make([]string, len(allowed))
	for i, v := range allowed {
		alist[i] = trim(v)
	}

	return func(c *gin.Context) {
		origin := trim(c.Request.Header.Get("Origin"))

		h := c.Writer.Header()
		h.Add("Vary", "Origin")
		h.Add("Vary", "Access-Control-Request-Method")
		h.Add("Vary", "Access-Control-Request-Headers")

		if origin != "" && originAllowed(alist, origin) {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
			h.Set("Access-Control-Max-Age", corsMaxAge)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, pattern := range allowed {
		if matchOrigin(pattern, origin) {
			return true
		}
	}
	return false
}

func matchOrigin(pattern, origin string) bool {
	star := strings.Index(pattern, "*")
	if star < 0 {
		return strings.EqualFold(pattern, origin)
	}

	prefix := pattern[:star]
	suffix := pattern[star+1:]

	// The wildcard must consume at least one character so that
	// "https://*.wedit.me" does not match "https://.wedit.me".
	if len(origin) <= len(prefix)+len(suffix) {
		return false
	}

	return strings.HasPrefix(origin, prefix) && strings.HasSuffix(origin, suffix)
}
