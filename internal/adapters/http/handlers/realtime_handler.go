package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/domain/dashboard"
	"github.com/jsamuelsen11/sitekit/internal/platform/logging"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

const (
	// ContentTypeEventStream is the media type of server-sent events.
	ContentTypeEventStream = "text/event-stream"

	eventPresence = "presence"

	defaultHeartbeat = 15 * time.Second

)

// RealtimeHandler streams dashboard presence over server-sent events.
type RealtimeHandler struct {
	svc       ports.DashboardService
	heartbeat time.Duration
}

// NewRealtimeHandler creates a new RealtimeHandler. A non-positive heartbeat
// falls back to 15 seconds.
func NewRealtimeHandler(svc ports.DashboardService, heartbeat time.Duration) *RealtimeHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &RealtimeHandler{svc: svc, heartbeat: heartbeat}
}

// Users handles GET /api/admin/v1/realtime/users. It sends the current count
// immediately, then one presence event per update and a comment line every
// heartbeat until the client goes away. If the stream cannot be subscribed
// the client still gets the initial count and heartbeats.
func (h *RealtimeHandler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	rc := http.NewResponseController(w)

	// The stream outlives the server write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	// Holds only the latest update; a slow client skips intermediate counts.
	updates := make(chan dashboard.PresenceUpdate, 1)
	unsubscribe, err := h.svc.WatchPresence(ctx, func(u dashboard.PresenceUpdate) {
		replaceLatest(updates, u)
	})
	if err != nil {
		logger.Warn("presence subscription failed",
			slog.String("operation", "WatchPresence"),
			slog.Any("error", err),
		)
	} else {
		defer unsubscribe()
	}

	header := w.Header()
	header.Set("Content-Type", ContentTypeEventStream)
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := writePresence(w, h.svc.Presence(ctx)); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		logger.Warn("event stream cannot flush", slog.Any("error", err))
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		var err error
		select {
		case <-ctx.Done():
			return
		case u := <-updates:
			err = writePresence(w, u)
		case <-ticker.C:
			_, err = io.WriteString(w, ": heartbeat\n\n")
		}
		if err == nil {
			err = rc.Flush()
		}
		if err != nil {
			logger.Debug("event stream closed", slog.Any("error", err))
			return
		}
	}
}

// replaceLatest puts u into the single-slot channel, discarding any update
// the client has not consumed yet. It is only called from the subscription
// goroutine, so the slot cannot be refilled between the drain and the send.
func replaceLatest(ch chan dashboard.PresenceUpdate, u dashboard.PresenceUpdate) {
	select {
	case <-ch:
	default:
	}
	ch <- u
}

func writePresence(w io.Writer, u dashboard.PresenceUpdate) error {
	data, err := json.Marshal(dto.ToPresenceResponse(u))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventPresence, data)
	return err
}
