package provider

import (
	"context"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth"
)

// OAuthProvider defines the contract every social login provider
// must implement. Implementations return identity facts only and
// must not perform member lookup, token issuance, or redirects.
type OAuthProvider interface {
	// Name returns the provider identifier used by the registry.
	Name() auth.Provider

	// AuthCodeURL returns the OAuth authorization URL.
	// State and PKCE parameters are provided by the caller.
	AuthCodeURL(state string, codeChallenge string) string

	// ExchangeCode exchanges the authorization code for provider
	// credentials and returns a normalized identity. No auth
	// decisions are made here.
	ExchangeCode(
		ctx context.Context,
		code string,
		codeVerifier string,
	) (*auth.Identity, error)
}
