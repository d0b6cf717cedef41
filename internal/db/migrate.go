package db

import (
	"context"
	"database/sql"
)

type DB struct {
	*sql.DB
}

const memberMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS members (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    oauth_id text NOT NULL,
    email text NOT NULL,
    phone_number text,
    birth_date date,
    wedding_date date,
    member_type text,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW(),
    CONSTRAINT members_oauth_id_unique UNIQUE (oauth_id)
);

CREATE INDEX IF NOT EXISTS members_email_idx
ON members (LOWER(email));
`

func RunMemberMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, memberMigration)
	return err
}
