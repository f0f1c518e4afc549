package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/repositories"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

const (
	conversationsTable = "conversations"
	profilesTable      = "user_profiles"
)

var profileColumns = []interface{}{
	"user_id", "name", "age", "email", "phone", "total_conversations",
	"last_conversation_id", "last_active", "created_at", "updated_at",
}

// ConversationAdapter implements ConversationRepository on PostgreSQL. Each
// turn is stored whole as JSONB next to a few indexed columns.
type ConversationAdapter struct {
	db      *sqlx.DB
	qb      goqu.DialectWrapper
	metrics *observability.Metrics
	now     func() time.Time
}

// NewConversationAdapter creates a new conversation adapter. metrics may be nil.
func NewConversationAdapter(db *sqlx.DB, metrics *observability.Metrics) repositories.ConversationRepository {
	return &ConversationAdapter{
		db:      db,
		qb:      goqu.Dialect("postgres"),
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Append inserts a turn.
func (a *ConversationAdapter) Append(ctx context.Context, turn *entities.ConversationTurn) error {
	if turn == nil {
		return apperrors.NewValidationError("turn is required")
	}
	defer a.observe(ctx, "conversation_append", time.Now())

	payload, err := json.Marshal(turn)
	if err != nil {
		return apperrors.NewInternalError("failed to encode conversation turn", err)
	}

	record := goqu.Record{
		"id":                           turn.ID,
		"user_id":                      turn.UserID,
		"created_at":                   turn.Timestamp,
		"message_type":                 string(turn.MessageType),
		"user_message":                 turn.UserMessage,
		"bot_reply":                    turn.BotReply,
		"urgency_level":                string(turn.UrgencyLevel),
		"requires_immediate_attention": turn.RequiresImmediateAttention,
		"condition_label":              sql.NullString{},
		"severity":                     sql.NullString{},
		"payload":                      types.JSONText(payload),
	}
	if p := turn.ConditionPrediction; p != nil {
		record["condition_label"] = sql.NullString{String: p.Label, Valid: true}
		record["severity"] = sql.NullString{String: string(p.Severity), Valid: true}
	}

	query, args, err := a.qb.Insert(conversationsTable).Prepared(true).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build conversation insert query", err)
	}
	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to append conversation turn", err)
	}
	return nil
}

// UpsertProfile creates or updates the profile in a single statement.
func (a *ConversationAdapter) UpsertProfile(ctx context.Context, userID string, patch entities.ProfilePatch) (*entities.UserProfile, error) {
	defer a.observe(ctx, "profile_upsert", time.Now())

	now := a.now()
	inserted := &entities.UserProfile{UserID: userID, LastActive: now}
	patch.Apply(inserted, now)

	record := goqu.Record{
		"user_id":              inserted.UserID,
		"name":                 inserted.Name,
		"age":                  inserted.Age,
		"email":                inserted.Email,
		"phone":                inserted.Phone,
		"total_conversations":  inserted.TotalConversations,
		"last_conversation_id": inserted.LastConversationID,
		"last_active":          inserted.LastActive,
		"created_at":           inserted.CreatedAt,
		"updated_at":           inserted.UpdatedAt,
	}
	update := goqu.Record{
		"name":                 goqu.L("COALESCE(EXCLUDED.name, user_profiles.name)"),
		"age":                  goqu.L("COALESCE(EXCLUDED.age, user_profiles.age)"),
		"email":                goqu.L("COALESCE(EXCLUDED.email, user_profiles.email)"),
		"phone":                goqu.L("COALESCE(EXCLUDED.phone, user_profiles.phone)"),
		"last_conversation_id": goqu.L("COALESCE(EXCLUDED.last_conversation_id, user_profiles.last_conversation_id)"),
		"total_conversations":  goqu.L("user_profiles.total_conversations + EXCLUDED.total_conversations"),
		"updated_at":           goqu.L("EXCLUDED.updated_at"),
	}
	if patch.IncrementConversations {
		update["last_active"] = goqu.L("EXCLUDED.last_active")
	}

	query, args, err := a.qb.Insert(profilesTable).Prepared(true).
		Rows(record).
		OnConflict(goqu.DoUpdate("user_id", update)).
		Returning(profileColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build profile upsert query", err)
	}

	var profile entities.UserProfile
	if err := a.db.QueryRowxContext(ctx, query, args...).StructScan(&profile); err != nil {
		return nil, apperrors.NewInternalError("failed to upsert user profile", err)
	}
	return &profile, nil
}

// GetProfile returns the profile for userID.
func (a *ConversationAdapter) GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	defer a.observe(ctx, "profile_get", time.Now())

	query, args, err := a.qb.From(profilesTable).Prepared(true).
		Select(profileColumns...).
		Where(goqu.Ex{"user_id": userID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build profile query", err)
	}

	var profile entities.UserProfile
	if err := a.db.GetContext(ctx, &profile, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user profile not found")
		}
		return nil, apperrors.NewInternalError("failed to get user profile", err)
	}
	return &profile, nil
}

// QueryHistory returns the most recent turns for userID.
func (a *ConversationAdapter) QueryHistory(ctx context.Context, userID string, limit int) ([]entities.ConversationTurn, error) {
	defer a.observe(ctx, "conversation_history", time.Now())
	ds := a.qb.From(conversationsTable).
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit))
	return a.selectTurns(ctx, ds)
}

// QueryMedicalHistory returns the most recent medical turns with a prediction.
func (a *ConversationAdapter) QueryMedicalHistory(ctx context.Context, userID string, limit int) ([]entities.ConversationTurn, error) {
	defer a.observe(ctx, "conversation_medical_history", time.Now())
	ds := a.qb.From(conversationsTable).
		Where(
			goqu.Ex{"user_id": userID, "message_type": string(entities.MessageTypeMedical)},
			goqu.C("condition_label").IsNotNull(),
		).
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit))
	return a.selectTurns(ctx, ds)
}

// ListSince returns turns created after since, oldest first.
func (a *ConversationAdapter) ListSince(ctx context.Context, since time.Time, limit int) ([]entities.ConversationTurn, error) {
	defer a.observe(ctx, "conversation_list_since", time.Now())
	ds := a.qb.From(conversationsTable).
		Where(goqu.C("created_at").Gt(since)).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Limit(uint(limit))
	return a.selectTurns(ctx, ds)
}

func (a *ConversationAdapter) selectTurns(ctx context.Context, ds *goqu.SelectDataset) ([]entities.ConversationTurn, error) {
	query, args, err := ds.Prepared(true).Select("payload").ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build conversation query", err)
	}

	var payloads []types.JSONText
	if err := a.db.SelectContext(ctx, &payloads, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to query conversations", err)
	}

	turns := make([]entities.ConversationTurn, 0, len(payloads))
	for _, payload := range payloads {
		var turn entities.ConversationTurn
		if err := payload.Unmarshal(&turn); err != nil {
			return nil, apperrors.NewInternalError("failed to decode conversation turn", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (a *ConversationAdapter) observe(ctx context.Context, operation string, start time.Time) {
	observability.RecordDBMetric(ctx, a.metrics, operation, time.Since(start))
}
