package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ReadStream handles GET /api/v1/streams/:type/:id/events.
// Returns the stream's events in version order. Optional query param
// from: return only events with stream version greater than it.
func (s *Server) ReadStream(c *gin.Context) {
	streamType := c.Param("type")
	streamID := c.Param("id")

	from := 0
	if raw := c.Query("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a non-negative integer"})
			return
		}
		from = v
	}

	events, err := s.store.ReadStream(c.Request.Context(), streamType, streamID, from)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read stream"})
		return
	}
	if len(events) == 0 && from == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "stream not found"})
		return
	}

	out := make([]map[string]any, len(events))
	for i, e := range events {
		out[i] = e.AsMap()
	}

	c.JSON(http.StatusOK, gin.H{"events": out, "count": len(out)})
}
