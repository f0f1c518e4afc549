package typesense

import (
	"context"
	"fmt"
	"time"

	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
	"github.com/zatekoja/sehatsaathi/backend/pkg/config"
	"github.com/zatekoja/sehatsaathi/backend/pkg/retry"
)

// DefaultCollection is used when no collection name is configured.
const DefaultCollection = "conversations"

// Client represents a Typesense client bound to the conversation collection
type Client struct {
	client     *typesense.Client
	collection string
}

// NewClient creates a new Typesense client with exponential backoff retry
func NewClient(ctx context.Context, cfg *config.TypesenseConfig) (*Client, error) {
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)
	logger := observability.GetLogger()

	err := retry.DoWithLog(
		ctx,
		retry.DefaultConfig(),
		"Typesense",
		func() error {
			healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			healthy, err := client.Health(healthCtx, 2*time.Second)
			if err != nil {
				return err
			}
			if !healthy {
				return fmt.Errorf("typesense reported unhealthy")
			}
			return nil
		},
		func(attempt int, err error, nextDelay time.Duration) {
			logger.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", nextDelay).
				Msg("typesense connection attempt failed")
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Typesense after retries: %w", err)
	}

	logger.Info().Str("url", cfg.URL).Msg("connected to typesense")
	return NewFromClient(client, cfg.Collection), nil
}

// NewFromClient wraps an existing typesense client without a health check.
func NewFromClient(client *typesense.Client, collection string) *Client {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Client{client: client, collection: collection}
}

// Client returns the underlying Typesense client
func (c *Client) Client() *typesense.Client {
	return c.client
}

// Collection is the name of the conversation collection.
func (c *Client) Collection() string {
	return c.collection
}

// ConversationSchema describes the indexed conversation turn document.
func ConversationSchema(name string) *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: name,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "user_id", Type: "string", Facet: pointer.True()},
			{Name: "user_message", Type: "string"},
			{Name: "bot_reply", Type: "string"},
			{Name: "message_type", Type: "string", Facet: pointer.True()},
			{Name: "language", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "condition", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "symptoms", Type: "string[]", Optional: pointer.True()},
			{Name: "created_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("created_at"),
	}
}

// InitSchema ensures the conversation collection exists
func (c *Client) InitSchema(ctx context.Context) error {
	collections, err := c.client.Collections().Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve collections: %w", err)
	}

	logger := observability.LoggerFromContext(ctx)
	for _, col := range collections {
		if col.Name == c.collection {
			logger.Debug().Str("collection", c.collection).Msg("typesense collection already exists")
			return nil
		}
	}

	if _, err := c.client.Collections().Create(ctx, ConversationSchema(c.collection)); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	logger.Info().Str("collection", c.collection).Msg("created typesense collection")
	return nil
}
