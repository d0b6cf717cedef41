package provider

import (
	"fmt"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth"
)

// Registry holds all configured OAuth providers and allows
// lookup by provider identifier. It performs no auth logic itself.
type Registry struct {
	providers map[auth.Provider]OAuthProvider
}

// NewRegistry registers the given OAuth providers by name.
// Provider names must be unique.
func NewRegistry(list ...OAuthProvider) *Registry {
	m := make(map[auth.Provider]OAuthProvider)
	for _, p := range list {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

// Get returns the OAuth provider or an error if not registered.
func (r *Registry) Get(name auth.Provider) (OAuthProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown oauth provider: %s", name)
	}
	return p, nil
}
