package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StreamState holds the schema definition for the StreamState entity — the
// command-model state (CMS) row backing one aggregate stream. A row exists
// iff at least one event has been appended to its stream; version always
// equals the stream version.
type StreamState struct {
	ent.Schema
}

// Fields of the StreamState.
func (StreamState) Fields() []ent.Field {
	return []ent.Field{
		field.String("stream_type").
			Immutable(),
		field.String("stream_id").
			Immutable(),
		field.Int("version").
			Comment("Matches the latest applied event's stream_version"),
		field.JSON("state", map[string]interface{}{}).
			Comment("Reduced projection consumed by the decider"),
		field.Int("state_version").
			Default(1).
			Comment("CMS schema version"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the StreamState.
func (StreamState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream_type", "stream_id").
			Unique(),
	}
}
