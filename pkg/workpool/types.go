// Package workpool provides the durable work pool backing asynchronous
// delivery: event subscriptions, scheduled retries, process manager commands,
// and timeout mutations all flow through it. Items live in PostgreSQL, are
// claimed with FOR UPDATE SKIP LOCKED, retried with exponential backoff, and
// dead-lettered on exhaustion.
package workpool

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for pool operations.
var (
	// ErrNoWorkAvailable indicates no eligible pending items are in the pool.
	ErrNoWorkAvailable = errors.New("no work available")

	// ErrAtCapacity indicates the global concurrent item limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Delivery is the structured context a handler receives alongside its args.
// It is persisted with the work item, so a retried delivery carries the same
// context plus the current attempt number.
type Delivery struct {
	Subscription   string
	Kind           string
	EventID        string
	GlobalPosition int64
	PartitionKey   string
	CorrelationID  string
	CausationID    string
	WorkID         int64
	Attempt        int
	MaxAttempts    int
}

// DeliveryFromMap rebuilds a Delivery from its stored JSON shape.
func DeliveryFromMap(m map[string]any) Delivery {
	d := Delivery{}
	if m == nil {
		return d
	}
	d.Subscription, _ = m["subscription"].(string)
	d.Kind, _ = m["kind"].(string)
	d.EventID, _ = m["eventId"].(string)
	d.PartitionKey, _ = m["partitionKey"].(string)
	d.CorrelationID, _ = m["correlationId"].(string)
	d.CausationID, _ = m["causationId"].(string)
	d.GlobalPosition = asInt64(m["globalPosition"])
	return d
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	default:
		return 0
	}
}

// MutationHandler is a registered handler that may persist state. It runs
// with the full delivery context; its return value feeds onComplete when one
// is declared.
type MutationHandler func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error)

// ActionHandler performs an external side effect. Actions cannot persist
// state; their outcome is handed to the onComplete mutation.
type ActionHandler func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error)

// Outcome is what an onComplete handler receives.
type Outcome struct {
	Success  bool
	Result   map[string]any
	Error    string
	Attempts int
}

// CompletionHandler is a registered onComplete mutation.
type CompletionHandler func(ctx context.Context, outcome Outcome, d Delivery) error

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// PoolHealth contains health information for the entire pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveItems      int            `json:"active_items"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	DeadItems        int            `json:"dead_items"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRequeued  int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	CurrentItemID  int64     `json:"current_item_id,omitempty"`
	ItemsProcessed int       `json:"items_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
