package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

// FeedbackAdapter implements feedback persistence in Postgres.
type FeedbackAdapter struct {
	db *sqlx.DB
	qb goqu.DialectWrapper
}

// NewFeedbackAdapter creates a new feedback adapter.
func NewFeedbackAdapter(db *sqlx.DB) repositories.FeedbackRepository {
	return &FeedbackAdapter{
		db: db,
		qb: goqu.Dialect("postgres"),
	}
}

// Create inserts a feedback record.
func (a *FeedbackAdapter) Create(ctx context.Context, feedback *entities.Feedback) error {
	if feedback == nil {
		return apperrors.NewValidationError("feedback is required")
	}

	record := goqu.Record{
		"id":              feedback.ID,
		"user_id":         feedback.UserID,
		"conversation_id": sql.NullString{String: feedback.ConversationID, Valid: feedback.ConversationID != ""},
		"rating":          feedback.Rating,
		"message":         sql.NullString{String: feedback.Message, Valid: feedback.Message != ""},
		"created_at":      feedback.CreatedAt,
	}

	query, args, err := a.qb.Insert("feedback").Prepared(true).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build feedback insert query", err)
	}

	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create feedback", err)
	}

	return nil
}
