package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PMState holds the schema definition for the PMState entity — per-instance
// process manager bookkeeping used for exactly-once-ish event-to-command
// coordination.
type PMState struct {
	ent.Schema
}

// Fields of the PMState.
func (PMState) Fields() []ent.Field {
	return []ent.Field{
		field.String("pm_name").
			Immutable(),
		field.String("instance_id").
			Immutable(),
		field.Enum("status").
			Values("idle", "processing", "completed", "failed").
			Default("idle"),
		field.Int("last_global_position").
			Default(0).
			Comment("Delivery watermark — never decreases"),
		field.Int("commands_emitted").
			Default(0),
		field.Int("commands_failed").
			Default(0),
		field.Int("state_version").
			Default(1),
		field.JSON("custom_state", map[string]interface{}{}).
			Optional(),
		field.String("trigger_event_id").
			Optional().
			Nillable().
			Comment("Event that created this instance"),
		field.String("correlation_id").
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

// Indexes of the PMState.
func (PMState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pm_name", "instance_id").
			Unique(),
		index.Fields("status"),
	}
}
