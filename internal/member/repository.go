package member

import (
	"context"
	"errors"
)

var ErrMemberNotFound = errors.New("member not found")

// Repository is the durable lookup of members. The login flow only
// ever reads; provisioning happens in a separate registration step.
type Repository interface {
	// FindByOauthID looks up a member by exact canonical federated key.
	FindByOauthID(ctx context.Context, oauthID string) (*Member, error)

	// FindByID looks up a member by its stable identifier.
	FindByID(ctx context.Context, id string) (*Member, error)
}
