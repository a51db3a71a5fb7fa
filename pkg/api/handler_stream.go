package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenroomlab/greenroom/pkg/events"
)

// streamHandler handles GET /sessions/:id/stream. The connection stays
// open until the client disconnects or the bus drops the subscriber for
// falling behind.
func (s *Server) streamHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	// Reject streams for unknown sessions before committing headers.
	if _, err := s.sessions.Get(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	// Disable proxy buffering so deltas reach the client immediately.
	resp.Header().Set("X-Accel-Buffering", "no")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	sub := s.bus.Subscribe(sessionID)
	defer s.bus.Unsubscribe(sub)

	s.logger.Info("SSE stream opened",
		"session_id", sessionID, "subscriber_id", sub.ID)

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-sub.Events():
			if !ok {
				// Dropped by the bus (slow consumer or shutdown).
				return nil
			}
			if err := writeSSE(resp, evt); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}

// writeSSE writes one event in SSE wire format: an event name line and a
// single JSON data line.
func writeSSE(w *echo.Response, evt events.Event) error {
	payload := evt.Data
	if payload == nil {
		payload = map[string]interface{}{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Type, data)
	return err
}
