package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/sitekit/internal/app/fanout"
	"github.com/jsamuelsen11/sitekit/internal/domain/dashboard"
	"github.com/jsamuelsen11/sitekit/internal/platform/config"
	"github.com/jsamuelsen11/sitekit/internal/platform/telemetry"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

// Compile-time check that DashboardService implements ports.DashboardService.
var _ ports.DashboardService = (*DashboardService)(nil)

// DashboardService implements ports.DashboardService. It reads the store
// through ports.StoreClient, maps documents with a dashboard.Mapper anchored
// at the time of the call, and reports the live user count from an
// ports.EventStream.
type DashboardService struct {
	store    ports.StoreClient
	presence ports.EventStream
	cfg      config.DashboardConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// DashboardOption customizes a DashboardService.
type DashboardOption func(*DashboardService)

// WithDashboardClock replaces time.Now as the reference instant for activity
// status and relative times.
func WithDashboardClock(now func() time.Time) DashboardOption {
	return func(s *DashboardService) { s.now = now }
}

// NewDashboardService creates a DashboardService. A nil logger discards logs
// and a nil metrics skips metric recording.
func NewDashboardService(
	store ports.StoreClient,
	presence ports.EventStream,
	cfg *config.DashboardConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	opts ...DashboardOption,
) *DashboardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &DashboardService{
		store:    store,
		presence: presence,
		cfg:      *cfg,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Overview reads users, sessions, resumes and payments concurrently and
// aggregates them. A collection that fails to read counts as empty.
func (s *DashboardService) Overview(ctx context.Context) dashboard.Overview {
	s.logger.InfoContext(ctx, "building dashboard overview")

	docs := s.readAll(ctx,
		dashboard.CollectionUsers,
		dashboard.CollectionSessions,
		dashboard.CollectionResumes,
		dashboard.CollectionPayments,
	)
	return s.mapper().Overview(docs[0], docs[1], docs[2], docs[3], s.cfg.RecentActivity)
}

// Users returns the users table.
func (s *DashboardService) Users(ctx context.Context) []dashboard.UserRow {
	return dashboard.MapAll(s.read(ctx, dashboard.CollectionUsers), s.mapper().User)
}

// Contacts returns the contacts table, built from user records.
func (s *DashboardService) Contacts(ctx context.Context) []dashboard.ContactRow {
	return dashboard.MapAll(s.read(ctx, dashboard.CollectionUsers), s.mapper().Contact)
}

// Tasks returns the tasks board, built from interview sessions.
func (s *DashboardService) Tasks(ctx context.Context) []dashboard.TaskRow {
	return dashboard.MapAll(s.read(ctx, dashboard.CollectionSessions), s.mapper().Task)
}

// Notifications returns the full activity feed.
func (s *DashboardService) Notifications(ctx context.Context) []dashboard.NotificationRow {
	docs := s.readAll(ctx,
		dashboard.CollectionUsers,
		dashboard.CollectionSessions,
		dashboard.CollectionPayments,
	)
	return s.mapper().Notifications(docs[0], docs[1], docs[2], 0)
}

// Payments returns the payments table.
func (s *DashboardService) Payments(ctx context.Context) []dashboard.PaymentRow {
	return dashboard.MapAll(s.read(ctx, dashboard.CollectionPayments), s.mapper().Payment)
}

// Resumes returns the resumes table.
func (s *DashboardService) Resumes(ctx context.Context) []dashboard.ResumeRow {
	return dashboard.MapAll(s.read(ctx, dashboard.CollectionResumes), s.mapper().Resume)
}

// Presence returns the last published online count.
func (s *DashboardService) Presence(ctx context.Context) dashboard.PresenceUpdate {
	update, err := s.presence.Current(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "presence count unavailable",
			slog.String("operation", "Presence"),
			slog.Any("error", err),
		)
		return dashboard.PresenceUpdate{At: s.now().UTC()}
	}
	return update
}

// WatchPresence subscribes fn to live presence updates.
func (s *DashboardService) WatchPresence(ctx context.Context, fn func(dashboard.PresenceUpdate)) (func(), error) {
	unsubscribe, err := s.presence.Subscribe(ctx, fn)
	if err != nil {
		return nil, fmt.Errorf("subscribing to presence: %w", err)
	}
	return unsubscribe, nil
}

func (s *DashboardService) mapper() dashboard.Mapper {
	return dashboard.NewMapper(s.now(), s.cfg.ActiveWindow)
}

// read returns the newest documents of collection, or none when the read
// fails.
func (s *DashboardService) read(ctx context.Context, collection string) []dashboard.Document {
	docs, err := s.store.ListDocuments(ctx, dashboard.Recent(collection, 0))
	if err != nil {
		s.readFailed(ctx, collection, err)
		return []dashboard.Document{}
	}
	return docs
}

// readAll reads the collections concurrently, bounded by the configured
// worker count, and returns their documents in the same order.
func (s *DashboardService) readAll(ctx context.Context, collections ...string) [][]dashboard.Document {
	results := fanout.Run(ctx, s.cfg.Workers, collections,
		func(ctx context.Context, collection string) ([]dashboard.Document, error) {
			return s.store.ListDocuments(ctx, dashboard.Recent(collection, 0))
		})

	for i, r := range results {
		if r.Err != nil {
			s.readFailed(ctx, collections[i], r.Err)
		}
	}
	return fanout.Values(results, []dashboard.Document{})
}

func (s *DashboardService) readFailed(ctx context.Context, collection string, err error) {
	s.logger.ErrorContext(ctx, "store read failed",
		slog.String("operation", "ListDocuments"),
		slog.String("collection", collection),
		slog.Any("error", err),
	)
	if s.metrics != nil {
		s.metrics.StoreReadFailures.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrPeerService.String("store"),
			telemetry.AttrCollection.String(collection),
		))
	}
}
