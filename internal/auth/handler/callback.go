package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/logger"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/member"

	"github.com/gin-gonic/gin"
)

// callback completes a federated login. It runs exactly once per
// successful provider round-trip: resolve the provider, normalize the
// identity, look up the member by canonical key (read-only, never
// creating one), evaluate onboarding completeness, mint a token pair
// and redirect the browser to the front-end callback. First redirect
// or first failure is terminal.
func (h *Handler) callback(c *gin.Context) {
	providerID := resolveProvider(c)

	p, err := h.providers.Get(providerID)
	if err != nil {
		h.failRedirect(c, "unknown_provider")
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"provider": providerID.String(),
			"error":    errParam,
			"desc":     c.Query("error_description"),
		})
		h.failRedirect(c, "provider_rejected")
		return
	}

	if !validateState(c) {
		h.failRedirect(c, "invalid_state")
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("oauth callback missing code and error", nil)
		h.failRedirect(c, "missing_code")
		return
	}

	codeVerifier := getPKCEVerifier(c)
	if codeVerifier == "" {
		h.failRedirect(c, "missing_pkce_verifier")
		return
	}

	identity, err := p.ExchangeCode(c.Request.Context(), code, codeVerifier)
	if err != nil {
		logger.Error("oauth code exchange failed", map[string]any{
			"provider": providerID.String(),
			"error":    err.Error(),
		})
		h.failRedirect(c, "authentication_failed")
		return
	}

	oauthID := identity.OauthID()

	// Read-only lookup. Members are provisioned during registration;
	// an unknown canonical key fails before any token is minted.
	m, err := h.members.FindByOauthID(c.Request.Context(), oauthID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			logger.Warn("no member for federated identity", map[string]any{
				"oauth_id": oauthID,
			})
			h.failRedirect(c, "member_not_found")
			return
		}
		logger.Error("member lookup failed", map[string]any{
			"error": err.Error(),
		})
		h.failRedirect(c, "member_lookup_failed")
		return
	}

	profileComplete := m.ProfileComplete()

	accessToken, err := h.tokens.CreateAccessToken(m)
	if err != nil {
		logger.Error("access token issue failed", map[string]any{
			"error": err.Error(),
		})
		h.failRedirect(c, "token_issue_failed")
		return
	}

	refreshToken, err := h.tokens.CreateRefreshToken(m.ID)
	if err != nil {
		logger.Error("refresh token issue failed", map[string]any{
			"error": err.Error(),
		})
		h.failRedirect(c, "token_issue_failed")
		return
	}

	err = h.refresh.Save(c.Request.Context(), m.ID, refreshToken, h.tokens.RefreshTTL())
	if err != nil {
		logger.Error("refresh token store failed", map[string]any{
			"error": err.Error(),
		})
		h.failRedirect(c, "token_issue_failed")
		return
	}

	logger.Info("federated login completed", map[string]any{
		"provider":    providerID.String(),
		"member_id":   m.ID,
		"is_new_user": !profileComplete,
	})

	// Exactly three query params: token, refresh, isNewUser. No other
	// user-derived data enters the URL.
	query := url.Values{}
	query.Set("token", accessToken)
	query.Set("refresh", refreshToken)
	query.Set("isNewUser", strconv.FormatBool(!profileComplete))

	c.Redirect(http.StatusFound, h.cfg.SuccessRedirectURL+"?"+query.Encode())
}
