package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeadLetter holds the schema definition for the DeadLetter entity — an
// append-only diagnostic record written when a subscriber exhausts its
// retries for a delivery.
type DeadLetter struct {
	ent.Schema
}

// Fields of the DeadLetter.
func (DeadLetter) Fields() []ent.Field {
	return []ent.Field{
		field.String("subscription").
			Immutable(),
		field.JSON("event", map[string]interface{}{}).
			Immutable().
			Comment("The failing event as delivered"),
		field.String("error_message").
			Immutable(),
		field.Int("attempts").
			Immutable(),
		field.JSON("failed_command", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Command payload that failed to emit, when applicable"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DeadLetter.
func (DeadLetter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subscription"),
		index.Fields("created_at"),
	}
}
