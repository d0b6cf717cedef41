package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func callbackContext(t *testing.T, pathProvider, referer string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/login/oauth2/code/"+pathProvider, nil)
	if referer != "" {
		c.Request.Header.Set("Referer", referer)
	}
	if pathProvider != "" {
		c.Params = gin.Params{{Key: "provider", Value: pathProvider}}
	}
	return c
}

func TestResolveProvider(t *testing.T) {
	t.Parallel()

	t.Run("path segment wins regardless of referer", func(t *testing.T) {
		c := callbackContext(t, "google", "https://kakao.com/login")
		require.Equal(t, auth.ProviderGoogle, resolveProvider(c))
	})

	t.Run("referer substring when path gives no provider", func(t *testing.T) {
		c := callbackContext(t, "", "https://nid.naver.com/oauth2.0/authorize")
		require.Equal(t, auth.ProviderNaver, resolveProvider(c))
	})

	t.Run("unknown path segment falls through to referer", func(t *testing.T) {
		c := callbackContext(t, "facebook", "https://kauth.kakao.com/oauth")
		require.Equal(t, auth.ProviderKakao, resolveProvider(c))
	})

	t.Run("no signal yields the default provider", func(t *testing.T) {
		c := callbackContext(t, "", "")
		require.Equal(t, auth.DefaultProvider, resolveProvider(c))
	})

	t.Run("unrelated referer yields the default provider", func(t *testing.T) {
		c := callbackContext(t, "", "https://example.com/somewhere")
		require.Equal(t, auth.DefaultProvider, resolveProvider(c))
	})
}
