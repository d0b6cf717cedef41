package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// failRedirect sends the browser to the error-indicating front-end
// destination. Only a coarse error code crosses the boundary; the
// failure itself stays in the server logs.
func (h *Handler) failRedirect(c *gin.Context, code string) {
	query := url.Values{}
	query.Set("error", code)

	c.Redirect(http.StatusFound, h.cfg.FailureRedirectURL+"?"+query.Encode())
}
