package handler

import (
	"net/http"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth"

	"github.com/gin-gonic/gin"
)

// login starts the federated flow: it parks state and PKCE material in
// short-lived cookies and redirects the browser to the provider.
func (h *Handler) login(c *gin.Context) {
	providerID, ok := auth.ParseProvider(c.Param("provider"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown oauth provider",
		})
		return
	}

	p, err := h.providers.Get(providerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown oauth provider",
		})
		return
	}

	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	authURL := p.AuthCodeURL(state, codeChallenge)
	c.Redirect(http.StatusFound, authURL)
}
