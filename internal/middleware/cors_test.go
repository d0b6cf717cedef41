package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func corsRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(origins))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestCORS(t *testing.T) {
	t.Parallel()

	origins := []string{"https://*.wedit.me", "http://localhost:3000"}

	t.Run("exact origin allowed", func(t *testing.T) {
		r := corsRouter(origins)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		require.Equal(t, "GET, POST, PUT, PATCH, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		require.Equal(t, "Authorization, X-Refresh-Token", w.Header().Get("Access-Control-Expose-Headers"))
		require.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("wildcard subdomain allowed", func(t *testing.T) {
		r := corsRouter(origins)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://app.wedit.me")
		r.ServeHTTP(w, req)

		require.Equal(t, "https://app.wedit.me", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard must consume a subdomain", func(t *testing.T) {
		r := corsRouter(origins)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://.wedit.me")
		r.ServeHTTP(w, req)

		require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin gets no CORS grant", func(t *testing.T) {
		r := corsRouter(origins)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wrong scheme does not match wildcard", func(t *testing.T) {
		r := corsRouter(origins)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://app.wedit.me")
		r.ServeHTTP(w, req)

		require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits with 204", func(t *testing.T) {
		r := corsRouter(origins)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/health", nil)
		req.Header.Set("Origin", "https://app.wedit.me")
		req.Header.Set("Access-Control-Request-Method", "POST")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, "https://app.wedit.me", w.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, w.Header().Values("Vary"), "Origin")
	})
}
