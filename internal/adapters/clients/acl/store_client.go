package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/sitekit/internal/adapters/clients/acl/store"
	"github.com/jsamuelsen11/sitekit/internal/domain/dashboard"
	"github.com/jsamuelsen11/sitekit/internal/platform/config"
	"github.com/jsamuelsen11/sitekit/internal/platform/httpclient"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.StoreClient   = (*DocumentStoreClient)(nil)
	_ ports.HealthChecker = (*DocumentStoreClient)(nil)
)

// DocumentStoreClient is the outbound adapter for the document store's REST
// API. Every read is a structured runQuery against one collection; typed
// field values are decoded by [store].
type DocumentStoreClient struct {
	req          *Requester
	runQueryPath string
	defaultLimit int
	logger       *slog.Logger
}

// NewDocumentStoreClient creates a client for the project and database in
// cfg. Queries without a limit use cfg.QueryLimit.
func NewDocumentStoreClient(client *httpclient.Client, cfg *config.StoreConfig, logger *slog.Logger) *DocumentStoreClient {
	return &DocumentStoreClient{
		req: NewRequester(client, logger),
		runQueryPath: "/v1/projects/" + url.PathEscape(cfg.ProjectID) +
			"/databases/" + url.PathEscape(cfg.Database) + "/documents:runQuery",
		defaultLimit: cfg.QueryLimit,
		logger:       logger,
	}
}

// ListDocuments runs q and returns the matching documents in query order.
func (c *DocumentStoreClient) ListDocuments(ctx context.Context, q dashboard.Query) ([]dashboard.Document, error) {
	if q.Limit <= 0 {
		q.Limit = c.defaultLimit
	}

	var items []store.RunQueryResponseItemDTO
	if err := c.req.Do(ctx, http.MethodPost, c.runQueryPath, nil, store.ToRunQueryRequest(q), &items); err != nil {
		return nil, err
	}

	docs := store.ToDocuments(q.Collection, items)
	c.logger.DebugContext(ctx, "store query complete",
		slog.String("collection", q.Collection),
		slog.Int("documents", len(docs)),
	)
	return docs, nil
}

// Name returns "store", the name used for tracing, metrics and health checks.
func (c *DocumentStoreClient) Name() string {
	return c.req.Name()
}

// HealthCheck reports the store's availability from the circuit breaker
// state without a network call.
func (c *DocumentStoreClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
