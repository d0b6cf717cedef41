package member

import (
	"database/sql"
	"time"
)

// Member is a local account bound to exactly one federated credential.
// OauthID is the canonical federated key "{provider}_{providerUserId}";
// it is assigned at provisioning and never mutated afterwards.
type Member struct {
	ID      string
	OauthID string
	Email   string

	// Onboarding fields. All nullable until the user finishes the
	// additional-information step; there is no ordering among them.
	PhoneNumber sql.NullString
	BirthDate   sql.NullTime
	WeddingDate sql.NullTime
	Type        sql.NullString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileComplete reports whether onboarding is finished: every
// required profile field must be present.
func (m *Member) ProfileComplete() bool {
	return m.PhoneNumber.Valid &&
		m.BirthDate.Valid &&
		m.WeddingDate.Valid &&
		m.Type.Valid
}
