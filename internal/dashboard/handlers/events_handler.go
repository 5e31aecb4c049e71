package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fitdash/fitdash/internal/middleware"
	"github.com/fitdash/fitdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// handleEvents streams state snapshots to the client as server-sent
// events, one "state" event per confirmed snapshot, until the client
// disconnects.
func (handler *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.events")
	defer span.End()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	userID := middleware.UserIDFromRequest(r)
	snapshots, unsubscribe := handler.service.Watch(userID)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			log.Tracef("dashboard events: client %s disconnected", userID)
			return
		case snapshot, ok := <-snapshots:
			if !ok {
				return
			}
			snapshotJson, err := json.Marshal(snapshot)
			if err != nil {
				log.Errorf("dashboard events, marshal snapshot: %s", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: state\ndata: %s\n\n", snapshotJson); err != nil {
				log.Tracef("dashboard events, write to %s: %s", userID, err)
				return
			}
			flusher.Flush()
		}
	}
}
