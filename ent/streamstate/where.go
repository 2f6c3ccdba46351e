// Code generated by ent, DO NOT EDIT.

package streamstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StreamState {
	return predicate.StreamState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StreamState {
	return predicate.StreamState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StreamState {
	return predicate.StreamState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StreamState {
	return predicate.StreamState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StreamState {
	return predicate.StreamState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StreamState {
	return predicate.StreamState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StreamState {
	return predicate.StreamState(sql.FieldLTE(FieldID, id))
}

// StreamType applies equality check predicate on the "stream_type" field. It's identical to StreamTypeEQ.
func StreamType(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldStreamType, v))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldStreamID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldVersion, v))
}

// StateVersion applies equality check predicate on the "state_version" field. It's identical to StateVersionEQ.
func StateVersion(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldStateVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldUpdatedAt, v))
}

// StreamTypeEQ applies the EQ predicate on the "stream_type" field.
func StreamTypeEQ(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldStreamType, v))
}

// StreamTypeNEQ applies the NEQ predicate on the "stream_type" field.
func StreamTypeNEQ(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldNEQ(FieldStreamType, v))
}

// StreamTypeIn applies the In predicate on the "stream_type" field.
func StreamTypeIn(vs ...string) predicate.StreamState {
	return predicate.StreamState(sql.FieldIn(FieldStreamType, vs...))
}

// StreamTypeNotIn applies the NotIn predicate on the "stream_type" field.
func StreamTypeNotIn(vs ...string) predicate.StreamState {
	return predicate.StreamState(sql.FieldNotIn(FieldStreamType, vs...))
}

// StreamTypeGT applies the GT predicate on the "stream_type" field.
func StreamTypeGT(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldGT(FieldStreamType, v))
}

// StreamTypeGTE applies the GTE predicate on the "stream_type" field.
func StreamTypeGTE(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldGTE(FieldStreamType, v))
}

// StreamTypeLT applies the LT predicate on the "stream_type" field.
func StreamTypeLT(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldLT(FieldStreamType, v))
}

// StreamTypeLTE applies the LTE predicate on the "stream_type" field.
func StreamTypeLTE(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldLTE(FieldStreamType, v))
}

// StreamTypeContains applies the Contains predicate on the "stream_type" field.
func StreamTypeContains(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldContains(FieldStreamType, v))
}

// StreamTypeHasPrefix applies the HasPrefix predicate on the "stream_type" field.
func StreamTypeHasPrefix(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldHasPrefix(FieldStreamType, v))
}

// StreamTypeHasSuffix applies the HasSuffix predicate on the "stream_type" field.
func StreamTypeHasSuffix(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldHasSuffix(FieldStreamType, v))
}

// StreamTypeEqualFold applies the EqualFold predicate on the "stream_type" field.
func StreamTypeEqualFold(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldEqualFold(FieldStreamType, v))
}

// StreamTypeContainsFold applies the ContainsFold predicate on the "stream_type" field.
func StreamTypeContainsFold(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldContainsFold(FieldStreamType, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.StreamState {
	return predicate.StreamState(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.StreamState {
	return predicate.StreamState(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.StreamState {
	return predicate.StreamState(sql.FieldContainsFold(FieldStreamID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.StreamState {
	return predicate.StreamState(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.StreamState {
	return predicate.StreamState(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldLTE(FieldVersion, v))
}

// StateVersionEQ applies the EQ predicate on the "state_version" field.
func StateVersionEQ(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldStateVersion, v))
}

// StateVersionNEQ applies the NEQ predicate on the "state_version" field.
func StateVersionNEQ(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldNEQ(FieldStateVersion, v))
}

// StateVersionIn applies the In predicate on the "state_version" field.
func StateVersionIn(vs ...int) predicate.StreamState {
	return predicate.StreamState(sql.FieldIn(FieldStateVersion, vs...))
}

// StateVersionNotIn applies the NotIn predicate on the "state_version" field.
func StateVersionNotIn(vs ...int) predicate.StreamState {
	return predicate.StreamState(sql.FieldNotIn(FieldStateVersion, vs...))
}

// StateVersionGT applies the GT predicate on the "state_version" field.
func StateVersionGT(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldGT(FieldStateVersion, v))
}

// StateVersionGTE applies the GTE predicate on the "state_version" field.
func StateVersionGTE(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldGTE(FieldStateVersion, v))
}

// StateVersionLT applies the LT predicate on the "state_version" field.
func StateVersionLT(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldLT(FieldStateVersion, v))
}

// StateVersionLTE applies the LTE predicate on the "state_version" field.
func StateVersionLTE(v int) predicate.StreamState {
	return predicate.StreamState(sql.FieldLTE(FieldStateVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StreamState {
	return predicate.StreamState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StreamState) predicate.StreamState {
	return predicate.StreamState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StreamState) predicate.StreamState {
	return predicate.StreamState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StreamState) predicate.StreamState {
	return predicate.StreamState(sql.NotPredicates(p))
}
