package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/strandkit/strand/pkg/durable"
)

// IntentResponse is one intent row as returned by the API.
type IntentResponse struct {
	IntentKey         string    `json:"intent_key"`
	OperationType     string    `json:"operation_type"`
	StreamType        string    `json:"stream_type"`
	StreamID          string    `json:"stream_id"`
	Status            string    `json:"status"`
	TimeoutMs         int       `json:"timeout_ms"`
	ExpiresAt         time.Time `json:"expires_at"`
	CompletionEventID string    `json:"completion_event_id,omitempty"`
	ErrorMessage      string    `json:"error_message,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ListIntents handles GET /api/v1/intents.
// Optional query params: status (pending|completed|failed|abandoned), limit.
func (s *Server) ListIntents(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	status := durable.Status(c.Query("status"))
	switch status {
	case "", durable.StatusPending, durable.StatusCompleted, durable.StatusFailed, durable.StatusAbandoned:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown intent status"})
		return
	}

	intents, err := s.intents.List(c.Request.Context(), status, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list intents"})
		return
	}

	out := make([]IntentResponse, len(intents))
	for i, in := range intents {
		out[i] = IntentResponse{
			IntentKey:         in.IntentKey,
			OperationType:     in.OperationType,
			StreamType:        in.StreamType,
			StreamID:          in.StreamID,
			Status:            string(in.Status),
			TimeoutMs:         in.TimeoutMs,
			ExpiresAt:         in.ExpiresAt,
			CompletionEventID: in.CompletionEventID,
			ErrorMessage:      in.ErrorMessage,
			CreatedAt:         in.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"intents": out, "count": len(out)})
}
