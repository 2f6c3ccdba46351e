package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — the append-only
// event log. The implicit integer primary key doubles as the store-wide
// global position (bigserial, strictly increasing).
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			Immutable().
			Comment("Globally unique event identifier (UUID)"),
		field.String("event_type").
			Immutable().
			Comment("Noun-past-tense event name (e.g. 'OrderSubmitted')"),
		field.String("stream_type").
			Immutable(),
		field.String("stream_id").
			Immutable(),
		field.Int("stream_version").
			Immutable().
			Comment("Monotonic within (stream_type, stream_id), starts at 1"),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
		field.Enum("category").
			Values("domain", "integration", "trigger", "fat").
			Default("domain").
			Immutable(),
		field.Int("schema_version").
			Default(1).
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.String("correlation_id").
			Immutable(),
		field.String("causation_id").
			Immutable().
			Comment("The originating commandId — the idempotency probe key"),
		field.String("user_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("outcome").
			Values("success", "failed").
			Default("success").
			Immutable().
			Comment("Whether the decider recorded a success or a business failure"),
		field.String("bounded_context").
			Optional().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream_type", "stream_id", "stream_version").
			Unique(),
		// At most one event per commandId (command idempotency invariant).
		index.Fields("causation_id").
			Unique(),
		index.Fields("event_type"),
		index.Fields("category"),
		index.Fields("correlation_id"),
	}
}
