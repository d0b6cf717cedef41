package handler

import (
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth/provider"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth/token"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/member"

	"github.com/gin-gonic/gin"
)

// Base paths for the federated login flow. Both are public: they
// precede credential issuance.
const (
	AuthorizationBasePath = "/api/oauth2/authorization"
	CallbackBasePath      = "/login/oauth2/code"
)

// Config holds the front-end destinations for callback outcomes.
// SuccessRedirectURL receives the session bootstrap payload;
// FailureRedirectURL receives an error code only.
type Config struct {
	SuccessRedirectURL string
	FailureRedirectURL string
}

type Handler struct {
	providers *provider.Registry
	members   member.Repository
	tokens    *token.Service
	refresh   token.RefreshStore
	cfg       Config
}

func NewHandler(
	registry *provider.Registry,
	members member.Repository,
	tokens *token.Service,
	refresh token.RefreshStore,
	cfg Config,
) *Handler {
	return &Handler{
		providers: registry,
		members:   members,
		tokens:    tokens,
		refresh:   refresh,
		cfg:       cfg,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET(AuthorizationBasePath+"/:provider", h.login)
	r.GET(CallbackBasePath+"/:provider", h.callback)
	r.POST("/api/v1/member/reissue", h.reissue)
}
