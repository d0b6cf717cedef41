package member

import (
	"context"
	"database/sql"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/db"

	"github.com/google/uuid"
)

// PostgresRepository is the canonical member store.
type PostgresRepository struct {
	db *db.DB
}

func NewPostgresRepository(db *db.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const memberColumns = `
	id, oauth_id, email,
	phone_number, birth_date, wedding_date, member_type,
	created_at, updated_at
`

func (r *PostgresRepository) FindByOauthID(
	ctx context.Context,
	oauthID string,
) (*Member, error) {

	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+`
		FROM members
		WHERE oauth_id = $1
	`, oauthID)

	return scanMember(row)
}

func (r *PostgresRepository) FindByID(
	ctx context.Context,
	id string,
) (*Member, error) {

	memberID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrMemberNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+`
		FROM members
		WHERE id = $1
	`, memberID)

	return scanMember(row)
}

func scanMember(row *sql.Row) (*Member, error) {
	var (
		m  Member
		id uuid.UUID
	)

	err := row.Scan(
		&id,
		&m.OauthID,
		&m.Email,
		&m.PhoneNumber,
		&m.BirthDate,
		&m.WeddingDate,
		&m.Type,
		&m.CreatedAt,
		&m.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}

	m.ID = id.String()
	return &m, nil
}
