package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Scope holds the schema definition for the Scope entity — a dynamic
// consistency boundary coordinating multiple streams under one optimistic
// version counter. Created on first successful commit.
type Scope struct {
	ent.Schema
}

// Fields of the Scope.
func (Scope) Fields() []ent.Field {
	return []ent.Field{
		field.String("scope_key").
			Unique().
			Immutable().
			Comment("tenant:{tenantId}:{scopeType}:{scopeId}"),
		field.Int("current_version").
			Default(0),
		field.JSON("streams", []string{}).
			Comment("Stream ids participating in the boundary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Scope.
func (Scope) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope_key").
			Unique(),
	}
}
