package presence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/sitekit/internal/domain/dashboard"
	"github.com/jsamuelsen11/sitekit/internal/platform/config"
)

// publish plays the producer side: it stores count as the current value and
// broadcasts it, the way the presence tracker does.
func (s *Stream) publish(ctx context.Context, count int) error {
	payload, err := json.Marshal(message{Count: count, At: s.now().UTC()})
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.countKey, strconv.Itoa(count), 0)
	pipe.Publish(ctx, s.channel, payload)
	_, err = pipe.Exec(ctx)
	return err
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestStream(t *testing.T) (*Stream, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.RedisConfig{Channel: "presence:users", CountKey: "presence:online_count"}
	s := NewStream(client, cfg, nil, slog.New(slog.DiscardHandler))
	s.now = func() time.Time { return testNow }
	return s, mr
}

func TestDecodeUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    dashboard.PresenceUpdate
		wantErr bool
	}{
		{
			name:    "json with timestamp",
			payload: `{"count":12,"at":"2025-06-15T11:59:30Z"}`,
			want:    dashboard.PresenceUpdate{Count: 12, At: time.Date(2025, 6, 15, 11, 59, 30, 0, time.UTC)},
		},
		{
			name:    "json without timestamp uses now",
			payload: `{"count":3}`,
			want:    dashboard.PresenceUpdate{Count: 3, At: testNow},
		},
		{
			name:    "bare integer",
			payload: " 7 ",
			want:    dashboard.PresenceUpdate{Count: 7, At: testNow},
		},
		{
			name:    "negative clamps to zero",
			payload: "-4",
			want:    dashboard.PresenceUpdate{Count: 0, At: testNow},
		},
		{
			name:    "garbage",
			payload: "lots",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeUpdate(tt.payload, testNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedUpdate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Count, got.Count)
			assert.True(t, tt.want.At.Equal(got.At), "At = %v, want %v", got.At, tt.want.At)
		})
	}
}

func TestStream_Current(t *testing.T) {
	t.Parallel()

	s, mr := newTestStream(t)
	ctx := context.Background()

	got, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Count, "missing key reads as zero")

	require.NoError(t, mr.Set("presence:online_count", "42"))
	got, err = s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Count)

	require.NoError(t, mr.Set("presence:online_count", "not-a-number"))
	_, err = s.Current(ctx)
	assert.ErrorIs(t, err, ErrMalformedUpdate)
}

func TestStream_SubscribeReceivesPublishedUpdates(t *testing.T) {
	t.Parallel()

	s, mr := newTestStream(t)
	ctx := context.Background()

	updates := make(chan dashboard.PresenceUpdate, 4)
	unsubscribe, err := s.Subscribe(ctx, func(u dashboard.PresenceUpdate) { updates <- u })
	require.NoError(t, err)
	defer unsubscribe()

	mr.Publish("presence:users", "not json")
	require.NoError(t, s.publish(ctx, 5))

	select {
	case u := <-updates:
		assert.Equal(t, 5, u.Count)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for presence update")
	}

	got, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Count, "publish also stores the current count")
}

func TestStream_UnsubscribeIsIdempotent(t *testing.T) {
	t.Parallel()

	s, mr := newTestStream(t)

	calls := make(chan dashboard.PresenceUpdate, 4)
	unsubscribe, err := s.Subscribe(context.Background(), func(u dashboard.PresenceUpdate) { calls <- u })
	require.NoError(t, err)

	unsubscribe()
	unsubscribe()

	mr.Publish("presence:users", `{"count":1}`)
	select {
	case u := <-calls:
		t.Fatalf("received %+v after unsubscribe", u)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStream_SubscribeEndsWithContext(t *testing.T) {
	t.Parallel()

	s, _ := newTestStream(t)
	ctx, cancel := context.WithCancel(context.Background())

	unsubscribe, err := s.Subscribe(ctx, func(dashboard.PresenceUpdate) {})
	require.NoError(t, err)

	cancel()

	finished := make(chan struct{})
	go func() {
		unsubscribe()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("unsubscribe did not return after context cancellation")
	}
}

func TestStream_SubscribeFailsWhenRedisIsDown(t *testing.T) {
	t.Parallel()

	s, mr := newTestStream(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := s.Subscribe(ctx, func(dashboard.PresenceUpdate) {})
	assert.Error(t, err)
}

func TestStream_HealthCheck(t *testing.T) {
	t.Parallel()

	s, mr := newTestStream(t)
	assert.Equal(t, "redis", s.Name())
	require.NoError(t, s.HealthCheck(context.Background()))

	mr.Close()
	err := s.HealthCheck(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, redis.Nil))
}
