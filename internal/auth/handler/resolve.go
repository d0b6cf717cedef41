package handler

import (
	"strings"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth"

	"github.com/gin-gonic/gin"
)

// resolveProvider determines which provider schema a callback belongs
// to. In order: the callback path segment, a Referer substring match,
// then the documented default. It always yields a value.
//
// The Referer step is fragile: a crafted header can select the wrong
// schema. The canonical key then simply fails to match any member, so
// the flow fails closed at the lookup, but deriving the provider from
// the recorded authorization context would be the stricter design.
func resolveProvider(c *gin.Context) auth.Provider {
	if p, ok := auth.ParseProvider(c.Param("provider")); ok {
		return p
	}

	referer := c.Request.Header.Get("Referer")
	if referer != "" {
		for _, p := range auth.Providers() {
			if strings.Contains(referer, p.String()) {
				return p
			}
		}
	}

	return auth.DefaultProvider
}
