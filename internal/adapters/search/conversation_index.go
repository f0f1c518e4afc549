package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	tsclient "github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/typesense"
)

// MaxIndexedSymptoms caps the symptoms stored on one document.
const MaxIndexedSymptoms = 20

const maxSearchResults = 50

// ConversationIndex implements full-text search over conversation turns using Typesense
type ConversationIndex struct {
	client *tsclient.Client
}

var _ providers.ConversationIndex = (*ConversationIndex)(nil)

// NewConversationIndex creates a new Typesense conversation index
func NewConversationIndex(client *tsclient.Client) *ConversationIndex {
	return &ConversationIndex{client: client}
}

// InitSchema ensures the collection exists
func (a *ConversationIndex) InitSchema(ctx context.Context) error {
	return a.client.InitSchema(ctx)
}

// IndexTurn upserts the searchable part of a turn
func (a *ConversationIndex) IndexTurn(ctx context.Context, turn *entities.ConversationTurn) error {
	if turn == nil || turn.ID == "" {
		return fmt.Errorf("cannot index turn without id")
	}
	_, err := a.client.Client().Collection(a.client.Collection()).Documents().Upsert(ctx, BuildTurnDocument(turn))
	if err != nil {
		return fmt.Errorf("failed to index conversation turn: %w", err)
	}
	return nil
}

// Delete removes a turn from the index
func (a *ConversationIndex) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(a.client.Collection()).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete conversation turn from index: %w", err)
	}
	return nil
}

// Search finds the user's turns matching query, best match first
func (a *ConversationIndex) Search(ctx context.Context, userID, query string, limit int) ([]providers.ConversationHit, error) {
	if limit <= 0 || limit > maxSearchResults {
		limit = maxSearchResults
	}
	q := strings.TrimSpace(query)
	if q == "" {
		q = "*"
	}

	searchParams := &api.SearchCollectionParams{
		Q:        pointer.String(q),
		QueryBy:  pointer.String("user_message,bot_reply,symptoms,condition"),
		FilterBy: pointer.String(fmt.Sprintf("user_id:=`%s`", userID)),
		SortBy:   pointer.String("_text_match:desc,created_at:desc"),
		PerPage:  pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(a.client.Collection()).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search conversations: %w", err)
	}

	hits := []providers.ConversationHit{}
	if result.Hits == nil {
		return hits, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		h := hitFromDocument(*hit.Document)
		if hit.TextMatch != nil {
			h.Score = float64(*hit.TextMatch)
		}
		hits = append(hits, h)
	}
	return hits, nil
}

// BuildTurnDocument flattens a turn into the indexed document shape.
func BuildTurnDocument(turn *entities.ConversationTurn) map[string]interface{} {
	doc := map[string]interface{}{
		"id":           turn.ID,
		"user_id":      turn.UserID,
		"user_message": turn.UserMessage,
		"bot_reply":    turn.BotReply,
		"message_type": string(turn.MessageType),
		"created_at":   turn.Timestamp.Unix(),
	}
	if turn.SymptomAnalysis.Language != "" {
		doc["language"] = string(turn.SymptomAnalysis.Language)
	}
	if turn.ConditionPrediction != nil && turn.ConditionPrediction.Label != "" {
		doc["condition"] = turn.ConditionPrediction.Label
	}
	if symptoms := symptomTerms(turn.SymptomAnalysis.Symptoms); len(symptoms) > 0 {
		doc["symptoms"] = symptoms
	}
	return doc
}

func symptomTerms(symptoms []string) []string {
	set := make(map[string]struct{}, len(symptoms))
	for _, s := range symptoms {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	if len(out) > MaxIndexedSymptoms {
		out = out[:MaxIndexedSymptoms]
	}
	return out
}

// Typesense returns map[string]interface{}; missing or mistyped fields read as zero values.
func hitFromDocument(doc map[string]interface{}) providers.ConversationHit {
	hit := providers.ConversationHit{}
	hit.ConversationID, _ = doc["id"].(string)
	hit.UserMessage, _ = doc["user_message"].(string)
	hit.BotReply, _ = doc["bot_reply"].(string)
	hit.MessageType, _ = doc["message_type"].(string)
	hit.Condition, _ = doc["condition"].(string)
	switch ts := doc["created_at"].(type) {
	case float64:
		hit.Timestamp = int64(ts)
	case int64:
		hit.Timestamp = ts
	}
	return hit
}
