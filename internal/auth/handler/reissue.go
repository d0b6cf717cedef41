package handler

import (
	"net/http"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/logger"

	"github.com/gin-gonic/gin"
)

const refreshTokenHeader = "X-Refresh-Token"

// reissue exchanges a valid refresh token for a fresh token pair. The
// presented token must match the recorded one for its member; the new
// pair replaces the record. The pair is returned both in the body and
// in the Authorization / X-Refresh-Token response headers, which the
// CORS policy exposes to browser scripts.
func (h *Handler) reissue(c *gin.Context) {
	raw := c.GetHeader(refreshTokenHeader)
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing refresh token"})
		return
	}

	claims, err := h.tokens.ParseRefresh(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	stored, err := h.refresh.Get(c.Request.Context(), claims.Subject)
	if err != nil || stored != raw {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token not recognized"})
		return
	}

	m, err := h.members.FindByID(c.Request.Context(), claims.Subject)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "member not found"})
		return
	}

	accessToken, err := h.tokens.CreateAccessToken(m)
	if err != nil {
		logger.Error("access token reissue failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}

	refreshToken, err := h.tokens.CreateRefreshToken(m.ID)
	if err != nil {
		logger.Error("refresh token reissue failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}

	err = h.refresh.Save(c.Request.Context(), m.ID, refreshToken, h.tokens.RefreshTTL())
	if err != nil {
		logger.Error("refresh token store failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}

	c.Header("Authorization", "Bearer "+accessToken)
	c.Header(refreshTokenHeader, refreshToken)

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}
