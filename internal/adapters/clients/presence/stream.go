// Package presence implements the realtime "users online" stream on Redis.
//
// Producers publish {"count":n,"at":"<RFC 3339>"} on the presence channel and
// store the latest count under the count key. Readers subscribe for live
// updates and read the key for an initial value.
package presence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/sitekit/internal/domain/dashboard"
	"github.com/jsamuelsen11/sitekit/internal/platform/config"
	"github.com/jsamuelsen11/sitekit/internal/platform/telemetry"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EventStream   = (*Stream)(nil)
	_ ports.HealthChecker = (*Stream)(nil)
)

// ErrMalformedUpdate is returned for payloads that are neither a JSON update
// nor a bare integer.
var ErrMalformedUpdate = errors.New("malformed presence update")

// message is the wire form of a presence update.
type message struct {
	Count int       `json:"count"`
	At    time.Time `json:"at"`
}

// Stream is the Redis-backed [ports.EventStream].
type Stream struct {
	client   *redis.Client
	channel  string
	countKey string
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// NewStream creates a Stream on client using the channel and key in cfg. A
// nil metrics skips subscriber accounting.
func NewStream(client *redis.Client, cfg *config.RedisConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Stream {
	return &Stream{
		client:   client,
		channel:  cfg.Channel,
		countKey: cfg.CountKey,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Subscribe delivers every update published on the presence channel to fn
// from a single goroutine. The subscription is confirmed before Subscribe
// returns. It ends when ctx is done or the returned function is called; the
// function may be called any number of times and returns once fn has
// stopped being called.
func (s *Stream) Subscribe(ctx context.Context, fn func(dashboard.PresenceUpdate)) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)

	ps := s.client.Subscribe(subCtx, s.channel)
	if _, err := ps.Receive(subCtx); err != nil {
		cancel()
		_ = ps.Close()
		return nil, fmt.Errorf("subscribing to %s: %w", s.channel, err)
	}
	s.trackSubscriber(ctx, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer s.trackSubscriber(context.WithoutCancel(ctx), -1)
		defer func() {
			if err := ps.Close(); err != nil {
				s.logger.Debug("closing presence subscription", slog.Any("error", err))
			}
		}()

		msgs := ps.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				update, err := DecodeUpdate(msg.Payload, s.now())
				if err != nil {
					s.logger.WarnContext(subCtx, "dropping presence update",
						slog.String("channel", msg.Channel),
						slog.Any("error", err),
					)
					continue
				}
				fn(update)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}, nil
}

// Current reads the latest count from the count key. A missing key is a
// count of zero.
func (s *Stream) Current(ctx context.Context) (dashboard.PresenceUpdate, error) {
	now := s.now().UTC()

	raw, err := s.client.Get(ctx, s.countKey).Result()
	if errors.Is(err, redis.Nil) {
		return dashboard.PresenceUpdate{At: now}, nil
	}
	if err != nil {
		return dashboard.PresenceUpdate{}, fmt.Errorf("reading %s: %w", s.countKey, err)
	}

	update, err := DecodeUpdate(raw, now)
	if err != nil {
		return dashboard.PresenceUpdate{}, fmt.Errorf("reading %s: %w", s.countKey, err)
	}
	return update, nil
}

// Name returns "redis".
func (s *Stream) Name() string {
	return "redis"
}

// HealthCheck pings Redis.
func (s *Stream) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

func (s *Stream) trackSubscriber(ctx context.Context, delta int64) {
	if s.metrics == nil {
		return
	}
	s.metrics.PresenceSubscribers.Add(ctx, delta)
}

// DecodeUpdate parses a JSON update or a bare integer count. Negative counts
// clamp to zero and a missing timestamp is replaced by now.
func DecodeUpdate(payload string, now time.Time) (dashboard.PresenceUpdate, error) {
	payload = strings.TrimSpace(payload)

	if n, err := strconv.Atoi(payload); err == nil {
		return dashboard.PresenceUpdate{Count: max(n, 0), At: now.UTC()}, nil
	}

	var msg message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return dashboard.PresenceUpdate{}, fmt.Errorf("%w: %q", ErrMalformedUpdate, payload)
	}
	if msg.At.IsZero() {
		msg.At = now
	}
	return dashboard.PresenceUpdate{Count: max(msg.Count, 0), At: msg.At.UTC()}, nil
}
