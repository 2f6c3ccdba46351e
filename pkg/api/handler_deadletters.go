package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/strandkit/strand/ent"
	"github.com/strandkit/strand/ent/deadletter"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// DeadLetterResponse is one dead-letter row as returned by the API.
type DeadLetterResponse struct {
	ID            int            `json:"id"`
	Subscription  string         `json:"subscription"`
	Event         map[string]any `json:"event"`
	ErrorMessage  string         `json:"error_message"`
	Attempts      int            `json:"attempts"`
	FailedCommand map[string]any `json:"failed_command,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// ListDeadLetters handles GET /api/v1/dead-letters.
// Optional query params: subscription (exact match), limit.
func (s *Server) ListDeadLetters(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	q := s.db.DeadLetter.Query()
	if sub := c.Query("subscription"); sub != "" {
		q = q.Where(deadletter.SubscriptionEQ(sub))
	}

	rows, err := q.
		Order(ent.Desc(deadletter.FieldCreatedAt)).
		Limit(limit).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list dead letters"})
		return
	}

	out := make([]DeadLetterResponse, len(rows))
	for i, row := range rows {
		out[i] = DeadLetterResponse{
			ID:            row.ID,
			Subscription:  row.Subscription,
			Event:         row.Event,
			ErrorMessage:  row.ErrorMessage,
			Attempts:      row.Attempts,
			FailedCommand: row.FailedCommand,
			CreatedAt:     row.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"dead_letters": out, "count": len(out)})
}

// parseLimit reads and bounds the limit query param. Writes the error
// response itself and returns ok=false on a bad value.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("limit", strconv.Itoa(defaultListLimit))
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, true
}
