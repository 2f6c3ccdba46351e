// Code generated by ent, DO NOT EDIT.

package intent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldID, id))
}

// IntentKey applies equality check predicate on the "intent_key" field. It's identical to IntentKeyEQ.
func IntentKey(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldIntentKey, v))
}

// OperationType applies equality check predicate on the "operation_type" field. It's identical to OperationTypeEQ.
func OperationType(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldOperationType, v))
}

// StreamType applies equality check predicate on the "stream_type" field. It's identical to StreamTypeEQ.
func StreamType(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldStreamType, v))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldStreamID, v))
}

// TimeoutMs applies equality check predicate on the "timeout_ms" field. It's identical to TimeoutMsEQ.
func TimeoutMs(v int) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldTimeoutMs, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldExpiresAt, v))
}

// CompletionEventID applies equality check predicate on the "completion_event_id" field. It's identical to CompletionEventIDEQ.
func CompletionEventID(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldCompletionEventID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldUpdatedAt, v))
}

// IntentKeyEQ applies the EQ predicate on the "intent_key" field.
func IntentKeyEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldIntentKey, v))
}

// IntentKeyNEQ applies the NEQ predicate on the "intent_key" field.
func IntentKeyNEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldIntentKey, v))
}

// IntentKeyIn applies the In predicate on the "intent_key" field.
func IntentKeyIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldIntentKey, vs...))
}

// IntentKeyNotIn applies the NotIn predicate on the "intent_key" field.
func IntentKeyNotIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldIntentKey, vs...))
}

// IntentKeyGT applies the GT predicate on the "intent_key" field.
func IntentKeyGT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldIntentKey, v))
}

// IntentKeyGTE applies the GTE predicate on the "intent_key" field.
func IntentKeyGTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldIntentKey, v))
}

// IntentKeyLT applies the LT predicate on the "intent_key" field.
func IntentKeyLT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldIntentKey, v))
}

// IntentKeyLTE applies the LTE predicate on the "intent_key" field.
func IntentKeyLTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldIntentKey, v))
}

// IntentKeyContains applies the Contains predicate on the "intent_key" field.
func IntentKeyContains(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContains(FieldIntentKey, v))
}

// IntentKeyHasPrefix applies the HasPrefix predicate on the "intent_key" field.
func IntentKeyHasPrefix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasPrefix(FieldIntentKey, v))
}

// IntentKeyHasSuffix applies the HasSuffix predicate on the "intent_key" field.
func IntentKeyHasSuffix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasSuffix(FieldIntentKey, v))
}

// IntentKeyEqualFold applies the EqualFold predicate on the "intent_key" field.
func IntentKeyEqualFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEqualFold(FieldIntentKey, v))
}

// IntentKeyContainsFold applies the ContainsFold predicate on the "intent_key" field.
func IntentKeyContainsFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContainsFold(FieldIntentKey, v))
}

// OperationTypeEQ applies the EQ predicate on the "operation_type" field.
func OperationTypeEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldOperationType, v))
}

// OperationTypeNEQ applies the NEQ predicate on the "operation_type" field.
func OperationTypeNEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldOperationType, v))
}

// OperationTypeIn applies the In predicate on the "operation_type" field.
func OperationTypeIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldOperationType, vs...))
}

// OperationTypeNotIn applies the NotIn predicate on the "operation_type" field.
func OperationTypeNotIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldOperationType, vs...))
}

// OperationTypeGT applies the GT predicate on the "operation_type" field.
func OperationTypeGT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldOperationType, v))
}

// OperationTypeGTE applies the GTE predicate on the "operation_type" field.
func OperationTypeGTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldOperationType, v))
}

// OperationTypeLT applies the LT predicate on the "operation_type" field.
func OperationTypeLT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldOperationType, v))
}

// OperationTypeLTE applies the LTE predicate on the "operation_type" field.
func OperationTypeLTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldOperationType, v))
}

// OperationTypeContains applies the Contains predicate on the "operation_type" field.
func OperationTypeContains(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContains(FieldOperationType, v))
}

// OperationTypeHasPrefix applies the HasPrefix predicate on the "operation_type" field.
func OperationTypeHasPrefix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasPrefix(FieldOperationType, v))
}

// OperationTypeHasSuffix applies the HasSuffix predicate on the "operation_type" field.
func OperationTypeHasSuffix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasSuffix(FieldOperationType, v))
}

// OperationTypeEqualFold applies the EqualFold predicate on the "operation_type" field.
func OperationTypeEqualFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEqualFold(FieldOperationType, v))
}

// OperationTypeContainsFold applies the ContainsFold predicate on the "operation_type" field.
func OperationTypeContainsFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContainsFold(FieldOperationType, v))
}

// StreamTypeEQ applies the EQ predicate on the "stream_type" field.
func StreamTypeEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldStreamType, v))
}

// StreamTypeNEQ applies the NEQ predicate on the "stream_type" field.
func StreamTypeNEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldStreamType, v))
}

// StreamTypeIn applies the In predicate on the "stream_type" field.
func StreamTypeIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldStreamType, vs...))
}

// StreamTypeNotIn applies the NotIn predicate on the "stream_type" field.
func StreamTypeNotIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldStreamType, vs...))
}

// StreamTypeGT applies the GT predicate on the "stream_type" field.
func StreamTypeGT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldStreamType, v))
}

// StreamTypeGTE applies the GTE predicate on the "stream_type" field.
func StreamTypeGTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldStreamType, v))
}

// StreamTypeLT applies the LT predicate on the "stream_type" field.
func StreamTypeLT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldStreamType, v))
}

// StreamTypeLTE applies the LTE predicate on the "stream_type" field.
func StreamTypeLTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldStreamType, v))
}

// StreamTypeContains applies the Contains predicate on the "stream_type" field.
func StreamTypeContains(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContains(FieldStreamType, v))
}

// StreamTypeHasPrefix applies the HasPrefix predicate on the "stream_type" field.
func StreamTypeHasPrefix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasPrefix(FieldStreamType, v))
}

// StreamTypeHasSuffix applies the HasSuffix predicate on the "stream_type" field.
func StreamTypeHasSuffix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasSuffix(FieldStreamType, v))
}

// StreamTypeEqualFold applies the EqualFold predicate on the "stream_type" field.
func StreamTypeEqualFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEqualFold(FieldStreamType, v))
}

// StreamTypeContainsFold applies the ContainsFold predicate on the "stream_type" field.
func StreamTypeContainsFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContainsFold(FieldStreamType, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContainsFold(FieldStreamID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldStatus, vs...))
}

// TimeoutMsEQ applies the EQ predicate on the "timeout_ms" field.
func TimeoutMsEQ(v int) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldTimeoutMs, v))
}

// TimeoutMsNEQ applies the NEQ predicate on the "timeout_ms" field.
func TimeoutMsNEQ(v int) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldTimeoutMs, v))
}

// TimeoutMsIn applies the In predicate on the "timeout_ms" field.
func TimeoutMsIn(vs ...int) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldTimeoutMs, vs...))
}

// TimeoutMsNotIn applies the NotIn predicate on the "timeout_ms" field.
func TimeoutMsNotIn(vs ...int) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldTimeoutMs, vs...))
}

// TimeoutMsGT applies the GT predicate on the "timeout_ms" field.
func TimeoutMsGT(v int) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldTimeoutMs, v))
}

// TimeoutMsGTE applies the GTE predicate on the "timeout_ms" field.
func TimeoutMsGTE(v int) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldTimeoutMs, v))
}

// TimeoutMsLT applies the LT predicate on the "timeout_ms" field.
func TimeoutMsLT(v int) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldTimeoutMs, v))
}

// TimeoutMsLTE applies the LTE predicate on the "timeout_ms" field.
func TimeoutMsLTE(v int) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldTimeoutMs, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldExpiresAt, v))
}

// CompletionEventIDEQ applies the EQ predicate on the "completion_event_id" field.
func CompletionEventIDEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldCompletionEventID, v))
}

// CompletionEventIDNEQ applies the NEQ predicate on the "completion_event_id" field.
func CompletionEventIDNEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldCompletionEventID, v))
}

// CompletionEventIDIn applies the In predicate on the "completion_event_id" field.
func CompletionEventIDIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldCompletionEventID, vs...))
}

// CompletionEventIDNotIn applies the NotIn predicate on the "completion_event_id" field.
func CompletionEventIDNotIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldCompletionEventID, vs...))
}

// CompletionEventIDGT applies the GT predicate on the "completion_event_id" field.
func CompletionEventIDGT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldCompletionEventID, v))
}

// CompletionEventIDGTE applies the GTE predicate on the "completion_event_id" field.
func CompletionEventIDGTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldCompletionEventID, v))
}

// CompletionEventIDLT applies the LT predicate on the "completion_event_id" field.
func CompletionEventIDLT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldCompletionEventID, v))
}

// CompletionEventIDLTE applies the LTE predicate on the "completion_event_id" field.
func CompletionEventIDLTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldCompletionEventID, v))
}

// CompletionEventIDContains applies the Contains predicate on the "completion_event_id" field.
func CompletionEventIDContains(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContains(FieldCompletionEventID, v))
}

// CompletionEventIDHasPrefix applies the HasPrefix predicate on the "completion_event_id" field.
func CompletionEventIDHasPrefix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasPrefix(FieldCompletionEventID, v))
}

// CompletionEventIDHasSuffix applies the HasSuffix predicate on the "completion_event_id" field.
func CompletionEventIDHasSuffix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasSuffix(FieldCompletionEventID, v))
}

// CompletionEventIDIsNil applies the IsNil predicate on the "completion_event_id" field.
func CompletionEventIDIsNil() predicate.Intent {
	return predicate.Intent(sql.FieldIsNull(FieldCompletionEventID))
}

// CompletionEventIDNotNil applies the NotNil predicate on the "completion_event_id" field.
func CompletionEventIDNotNil() predicate.Intent {
	return predicate.Intent(sql.FieldNotNull(FieldCompletionEventID))
}

// CompletionEventIDEqualFold applies the EqualFold predicate on the "completion_event_id" field.
func CompletionEventIDEqualFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEqualFold(FieldCompletionEventID, v))
}

// CompletionEventIDContainsFold applies the ContainsFold predicate on the "completion_event_id" field.
func CompletionEventIDContainsFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContainsFold(FieldCompletionEventID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Intent {
	return predicate.Intent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Intent {
	return predicate.Intent(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Intent {
	return predicate.Intent(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Intent {
	return predicate.Intent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Intent {
	return predicate.Intent(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Intent) predicate.Intent {
	return predicate.Intent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Intent) predicate.Intent {
	return predicate.Intent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Intent) predicate.Intent {
	return predicate.Intent(sql.NotPredicates(p))
}
