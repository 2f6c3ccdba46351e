// Package api exposes the operational HTTP surface: health, dead-letter
// inspection, intent inspection, and raw stream reads. It is an operator
// tool, not a public API; domain commands enter through the orchestrator.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strandkit/strand/pkg/config"
	"github.com/strandkit/strand/pkg/database"
	"github.com/strandkit/strand/pkg/durable"
	"github.com/strandkit/strand/pkg/eventstore"
	"github.com/strandkit/strand/pkg/workpool"
)

// Server holds the dependencies the operational handlers read from.
type Server struct {
	db      *database.Client
	store   eventstore.Store
	pool    *workpool.Pool
	intents durable.IntentStore
}

// NewServer creates the API server. pool may be nil when the process runs
// without workers (e.g. a read-only replica).
func NewServer(db *database.Client, pool *workpool.Pool, intents durable.IntentStore) *Server {
	return &Server{
		db:      db,
		store:   eventstore.NewPGStore(db.Client),
		pool:    pool,
		intents: intents,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/dead-letters", s.ListDeadLetters)
		v1.GET("/intents", s.ListIntents)
		v1.GET("/streams/:type/:id/events", s.ReadStream)
	}

	return r
}

// HTTPServer wraps the router in an http.Server listening on cfg.Addr.
func (s *Server) HTTPServer(cfg *config.APIConfig) *http.Server {
	return &http.Server{
		Addr:    cfg.Addr,
		Handler: s.Router(),
	}
}
