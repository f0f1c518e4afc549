package database

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the tables used by the adapters if they are missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return apperrors.NewInternalError("failed to apply database schema", err)
	}
	return nil
}
