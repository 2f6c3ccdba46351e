package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Intent holds the schema definition for the Intent entity — a durable
// record that a command started, used by the durable executor for crash-safe
// intent/completion bracketing. Every intent transitions exactly once out of
// pending.
type Intent struct {
	ent.Schema
}

// Fields of the Intent.
func (Intent) Fields() []ent.Field {
	return []ent.Field{
		field.String("intent_key").
			Unique().
			Immutable(),
		field.String("operation_type").
			Immutable(),
		field.String("stream_type").
			Immutable(),
		field.String("stream_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "completed", "failed", "abandoned").
			Default("pending"),
		field.Int("timeout_ms").
			Immutable(),
		field.Time("expires_at").
			Immutable().
			Comment("Deadline after which a still-pending intent is abandoned"),
		field.String("completion_event_id").
			Optional().
			Nillable(),
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

// Indexes of the Intent.
func (Intent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("intent_key").
			Unique(),
		index.Fields("status", "expires_at"),
	}
}
