// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventType, v))
}

// StreamType applies equality check predicate on the "stream_type" field. It's identical to StreamTypeEQ.
func StreamType(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStreamType, v))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStreamID, v))
}

// StreamVersion applies equality check predicate on the "stream_version" field. It's identical to StreamVersionEQ.
func StreamVersion(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStreamVersion, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldOccurredAt, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSchemaVersion, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCorrelationID, v))
}

// CausationID applies equality check predicate on the "causation_id" field. It's identical to CausationIDEQ.
func CausationID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCausationID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUserID, v))
}

// BoundedContext applies equality check predicate on the "bounded_context" field. It's identical to BoundedContextEQ.
func BoundedContext(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldBoundedContext, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventType, v))
}

// StreamTypeEQ applies the EQ predicate on the "stream_type" field.
func StreamTypeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStreamType, v))
}

// StreamTypeNEQ applies the NEQ predicate on the "stream_type" field.
func StreamTypeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStreamType, v))
}

// StreamTypeIn applies the In predicate on the "stream_type" field.
func StreamTypeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStreamType, vs...))
}

// StreamTypeNotIn applies the NotIn predicate on the "stream_type" field.
func StreamTypeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStreamType, vs...))
}

// StreamTypeGT applies the GT predicate on the "stream_type" field.
func StreamTypeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldStreamType, v))
}

// StreamTypeGTE applies the GTE predicate on the "stream_type" field.
func StreamTypeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldStreamType, v))
}

// StreamTypeLT applies the LT predicate on the "stream_type" field.
func StreamTypeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldStreamType, v))
}

// StreamTypeLTE applies the LTE predicate on the "stream_type" field.
func StreamTypeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldStreamType, v))
}

// StreamTypeContains applies the Contains predicate on the "stream_type" field.
func StreamTypeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldStreamType, v))
}

// StreamTypeHasPrefix applies the HasPrefix predicate on the "stream_type" field.
func StreamTypeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldStreamType, v))
}

// StreamTypeHasSuffix applies the HasSuffix predicate on the "stream_type" field.
func StreamTypeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldStreamType, v))
}

// StreamTypeEqualFold applies the EqualFold predicate on the "stream_type" field.
func StreamTypeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldStreamType, v))
}

// StreamTypeContainsFold applies the ContainsFold predicate on the "stream_type" field.
func StreamTypeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldStreamType, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldStreamID, v))
}

// StreamVersionEQ applies the EQ predicate on the "stream_version" field.
func StreamVersionEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStreamVersion, v))
}

// StreamVersionNEQ applies the NEQ predicate on the "stream_version" field.
func StreamVersionNEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStreamVersion, v))
}

// StreamVersionIn applies the In predicate on the "stream_version" field.
func StreamVersionIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStreamVersion, vs...))
}

// StreamVersionNotIn applies the NotIn predicate on the "stream_version" field.
func StreamVersionNotIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStreamVersion, vs...))
}

// StreamVersionGT applies the GT predicate on the "stream_version" field.
func StreamVersionGT(v int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldStreamVersion, v))
}

// StreamVersionGTE applies the GTE predicate on the "stream_version" field.
func StreamVersionGTE(v int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldStreamVersion, v))
}

// StreamVersionLT applies the LT predicate on the "stream_version" field.
func StreamVersionLT(v int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldStreamVersion, v))
}

// StreamVersionLTE applies the LTE predicate on the "stream_version" field.
func StreamVersionLTE(v int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldStreamVersion, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldOccurredAt, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCategory, vs...))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSchemaVersion, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldCorrelationID, v))
}

// CausationIDEQ applies the EQ predicate on the "causation_id" field.
func CausationIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCausationID, v))
}

// CausationIDNEQ applies the NEQ predicate on the "causation_id" field.
func CausationIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCausationID, v))
}

// CausationIDIn applies the In predicate on the "causation_id" field.
func CausationIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCausationID, vs...))
}

// CausationIDNotIn applies the NotIn predicate on the "causation_id" field.
func CausationIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCausationID, vs...))
}

// CausationIDGT applies the GT predicate on the "causation_id" field.
func CausationIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCausationID, v))
}

// CausationIDGTE applies the GTE predicate on the "causation_id" field.
func CausationIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCausationID, v))
}

// CausationIDLT applies the LT predicate on the "causation_id" field.
func CausationIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCausationID, v))
}

// CausationIDLTE applies the LTE predicate on the "causation_id" field.
func CausationIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCausationID, v))
}

// CausationIDContains applies the Contains predicate on the "causation_id" field.
func CausationIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldCausationID, v))
}

// CausationIDHasPrefix applies the HasPrefix predicate on the "causation_id" field.
func CausationIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldCausationID, v))
}

// CausationIDHasSuffix applies the HasSuffix predicate on the "causation_id" field.
func CausationIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldCausationID, v))
}

// CausationIDEqualFold applies the EqualFold predicate on the "causation_id" field.
func CausationIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldCausationID, v))
}

// CausationIDContainsFold applies the ContainsFold predicate on the "causation_id" field.
func CausationIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldCausationID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldUserID, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldOutcome, vs...))
}

// BoundedContextEQ applies the EQ predicate on the "bounded_context" field.
func BoundedContextEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldBoundedContext, v))
}

// BoundedContextNEQ applies the NEQ predicate on the "bounded_context" field.
func BoundedContextNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldBoundedContext, v))
}

// BoundedContextIn applies the In predicate on the "bounded_context" field.
func BoundedContextIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldBoundedContext, vs...))
}

// BoundedContextNotIn applies the NotIn predicate on the "bounded_context" field.
func BoundedContextNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldBoundedContext, vs...))
}

// BoundedContextGT applies the GT predicate on the "bounded_context" field.
func BoundedContextGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldBoundedContext, v))
}

// BoundedContextGTE applies the GTE predicate on the "bounded_context" field.
func BoundedContextGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldBoundedContext, v))
}

// BoundedContextLT applies the LT predicate on the "bounded_context" field.
func BoundedContextLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldBoundedContext, v))
}

// BoundedContextLTE applies the LTE predicate on the "bounded_context" field.
func BoundedContextLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldBoundedContext, v))
}

// BoundedContextContains applies the Contains predicate on the "bounded_context" field.
func BoundedContextContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldBoundedContext, v))
}

// BoundedContextHasPrefix applies the HasPrefix predicate on the "bounded_context" field.
func BoundedContextHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldBoundedContext, v))
}

// BoundedContextHasSuffix applies the HasSuffix predicate on the "bounded_context" field.
func BoundedContextHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldBoundedContext, v))
}

// BoundedContextIsNil applies the IsNil predicate on the "bounded_context" field.
func BoundedContextIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldBoundedContext))
}

// BoundedContextNotNil applies the NotNil predicate on the "bounded_context" field.
func BoundedContextNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldBoundedContext))
}

// BoundedContextEqualFold applies the EqualFold predicate on the "bounded_context" field.
func BoundedContextEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldBoundedContext, v))
}

// BoundedContextContainsFold applies the ContainsFold predicate on the "bounded_context" field.
func BoundedContextContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldBoundedContext, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
