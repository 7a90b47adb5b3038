package sse

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/Milestone_Go/internal/logger"
)

// Handler returns an HTTP handler for SSE connections.
// Clients may pass ?types=notification,analytics to filter the stream.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		var eventTypes []string
		if filterParam := r.URL.Query().Get(QueryParamTypes); filterParam != "" {
			for _, t := range strings.Split(filterParam, ",") {
				if t = strings.TrimSpace(t); t != "" {
					eventTypes = append(eventTypes, t)
				}
			}
		}

		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes)

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		connectEvent := hub.newEvent(client.ID, EventTypeConnected, map[string]interface{}{
			"client_id": client.ID,
			"filters":   eventTypes,
		})
		if !writeEvent(r.Context(), w, flusher, connectEvent) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// hub is shutting down
					return
				}
				if !writeEvent(ctx, w, flusher, event) {
					return
				}

			case <-ticker.C:
				if !writeEvent(ctx, w, flusher, hub.newEvent("", EventTypeKeepalive, nil)) {
					return
				}
			}
		}
	}
}

func writeEvent(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, event Event) bool {
	msg, err := FormatSSEMessage(event)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgWriteError, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		return false
	}
	flusher.Flush()
	return true
}
