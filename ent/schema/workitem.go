package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkItem holds the schema definition for the WorkItem entity — one durable
// job on the work pool. Items are claimed with FOR UPDATE SKIP LOCKED,
// retried with backoff, and dead-lettered on exhaustion.
type WorkItem struct {
	ent.Schema
}

// Fields of the WorkItem.
func (WorkItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("ref").
			Immutable().
			Comment("Registered handler name resolved through the function registry"),
		field.JSON("args", map[string]interface{}{}).
			Immutable(),
		field.JSON("delivery", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Structured delivery context (subscription, event_id, global_position, ...)"),
		field.String("partition_key").
			Default("").
			Immutable().
			Comment("Items sharing a non-empty key are processed in enqueue order"),
		field.Int("priority").
			Default(100).
			Immutable(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "dead").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(5).
			Immutable(),
		field.Time("run_after").
			Default(time.Now),
		field.String("on_complete").
			Optional().
			Immutable().
			Comment("Registered mutation invoked with the handler outcome (mandatory for actions)"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the WorkItem.
func (WorkItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "run_after"),
		index.Fields("partition_key", "status"),
		index.Fields("status", "last_heartbeat"),
		index.Fields("pod_id", "status"),
	}
}
