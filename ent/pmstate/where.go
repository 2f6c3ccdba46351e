// Code generated by ent, DO NOT EDIT.

package pmstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PMState {
	return predicate.PMState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PMState {
	return predicate.PMState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PMState {
	return predicate.PMState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PMState {
	return predicate.PMState(sql.FieldLTE(FieldID, id))
}

// PmName applies equality check predicate on the "pm_name" field. It's identical to PmNameEQ.
func PmName(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldPmName, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldInstanceID, v))
}

// LastGlobalPosition applies equality check predicate on the "last_global_position" field. It's identical to LastGlobalPositionEQ.
func LastGlobalPosition(v int) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldLastGlobalPosition, v))
}

// CommandsEmitted applies equality check predicate on the "commands_emitted" field. It's identical to CommandsEmittedEQ.
func CommandsEmitted(v int) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldCommandsEmitted, v))
}

// CommandsFailed applies equality check predicate on the "commands_failed" field. It's identical to CommandsFailedEQ.
func CommandsFailed(v int) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldCommandsFailed, v))
}

// StateVersion applies equality check predicate on the "state_version" field. It's identical to StateVersionEQ.
func StateVersion(v int) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldStateVersion, v))
}

// TriggerEventID applies equality check predicate on the "trigger_event_id" field. It's identical to TriggerEventIDEQ.
func TriggerEventID(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldTriggerEventID, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldCorrelationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldUpdatedAt, v))
}

// PmNameEQ applies the EQ predicate on the "pm_name" field.
func PmNameEQ(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldPmName, v))
}

// PmNameNEQ applies the NEQ predicate on the "pm_name" field.
func PmNameNEQ(v string) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldPmName, v))
}

// PmNameIn applies the In predicate on the "pm_name" field.
func PmNameIn(vs ...string) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldPmName, vs...))
}

// PmNameNotIn applies the NotIn predicate on the "pm_name" field.
func PmNameNotIn(vs ...string) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldPmName, vs...))
}

// PmNameGT applies the GT predicate on the "pm_name" field.
func PmNameGT(v string) predicate.PMState {
	return predicate.PMState(sql.FieldGT(FieldPmName, v))
}

// PmNameGTE applies the GTE predicate on the "pm_name" field.
func PmNameGTE(v string) predicate.PMState {
	return predicate.PMState(sql.FieldGTE(FieldPmName, v))
}

// PmNameLT applies the LT predicate on the "pm_name" field.
func PmNameLT(v string) predicate.PMState {
	return predicate.PMState(sql.FieldLT(FieldPmName, v))
}

// PmNameLTE applies the LTE predicate on the "pm_name" field.
func PmNameLTE(v string) predicate.PMState {
	return predicate.PMState(sql.FieldLTE(FieldPmName, v))
}

// PmNameContains applies the Contains predicate on the "pm_name" field.
func PmNameContains(v string) predicate.PMState {
	return predicate.PMState(sql.FieldContains(FieldPmName, v))
}

// PmNameHasPrefix applies the HasPrefix predicate on the "pm_name" field.
func PmNameHasPrefix(v string) predicate.PMState {
	return predicate.PMState(sql.FieldHasPrefix(FieldPmName, v))
}

// PmNameHasSuffix applies the HasSuffix predicate on the "pm_name" field.
func PmNameHasSuffix(v string) predicate.PMState {
	return predicate.PMState(sql.FieldHasSuffix(FieldPmName, v))
}

// PmNameEqualFold applies the EqualFold predicate on the "pm_name" field.
func PmNameEqualFold(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEqualFold(FieldPmName, v))
}

// PmNameContainsFold applies the ContainsFold predicate on the "pm_name" field.
func PmNameContainsFold(v string) predicate.PMState {
	return predicate.PMState(sql.FieldContainsFold(FieldPmName, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.PMState {
	return predicate.PMState(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.PMState {
	return predicate.PMState(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.PMState {
	return predicate.PMState(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.PMState {
	return predicate.PMState(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.PMState {
	return predicate.PMState(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.PMState {
	return predicate.PMState(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.PMState {
	return predicate.PMState(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.PMState {
	return predicate.PMState(sql.FieldContainsFold(FieldInstanceID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldStatus, vs...))
}

// LastGlobalPositionEQ applies the EQ predicate on the "last_global_position" field.
func LastGlobalPositionEQ(v int) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldLastGlobalPosition, v))
}

// LastGlobalPositionNEQ applies the NEQ predicate on the "last_global_position" field.
func LastGlobalPositionNEQ(v int) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldLastGlobalPosition, v))
}

// LastGlobalPositionIn applies the In predicate on the "last_global_position" field.
func LastGlobalPositionIn(vs ...int) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldLastGlobalPosition, vs...))
}

// LastGlobalPositionNotIn applies the NotIn predicate on the "last_global_position" field.
func LastGlobalPositionNotIn(vs ...int) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldLastGlobalPosition, vs...))
}

// LastGlobalPositionGT applies the GT predicate on the "last_global_position" field.
func LastGlobalPositionGT(v int) predicate.PMState {
	return predicate.PMState(sql.FieldGT(FieldLastGlobalPosition, v))
}

// LastGlobalPositionGTE applies the GTE predicate on the "last_global_position" field.
func LastGlobalPositionGTE(v int) predicate.PMState {
	return predicate.PMState(sql.FieldGTE(FieldLastGlobalPosition, v))
}

// LastGlobalPositionLT applies the LT predicate on the "last_global_position" field.
func LastGlobalPositionLT(v int) predicate.PMState {
	return predicate.PMState(sql.FieldLT(FieldLastGlobalPosition, v))
}

// LastGlobalPositionLTE applies the LTE predicate on the "last_global_position" field.
func LastGlobalPositionLTE(v int) predicate.PMState {
	return predicate.PMState(sql.FieldLTE(FieldLastGlobalPosition, v))
}

// CommandsEmittedEQ applies the EQ predicate on the "commands_emitted" field.
func CommandsEmittedEQ(v int) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldCommandsEmitted, v))
}

// CommandsEmittedNEQ applies the NEQ predicate on the "commands_emitted" field.
func CommandsEmittedNEQ(v int) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldCommandsEmitted, v))
}

// CommandsEmittedIn applies the In predicate on the "commands_emitted" field.
func CommandsEmittedIn(vs ...int) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldCommandsEmitted, vs...))
}

// CommandsEmittedNotIn applies the NotIn predicate on the "commands_emitted" field.
func CommandsEmittedNotIn(vs ...int) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldCommandsEmitted, vs...))
}

// CommandsEmittedGT applies the GT predicate on the "commands_emitted" field.
func CommandsEmittedGT(v int) predicate.PMState {
	return predicate.PMState(sql.FieldGT(FieldCommandsEmitted, v))
}

// CommandsEmittedGTE applies the GTE predicate on the "commands_emitted" field.
func CommandsEmittedGTE(v int) predicate.PMState {
	return predicate.PMState(sql.FieldGTE(FieldCommandsEmitted, v))
}

// CommandsEmittedLT applies the LT predicate on the "commands_emitted" field.
func CommandsEmittedLT(v int) predicate.PMState {
	return predicate.PMState(sql.FieldLT(FieldCommandsEmitted, v))
}

// CommandsEmittedLTE applies the LTE predicate on the "commands_emitted" field.
func CommandsEmittedLTE(v int) predicate.PMState {
	return predicate.PMState(sql.FieldLTE(FieldCommandsEmitted, v))
}

// CommandsFailedEQ applies the EQ predicate on the "commands_failed" field.
func CommandsFailedEQ(v int) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldCommandsFailed, v))
}

// CommandsFailedNEQ applies the NEQ predicate on the "commands_failed" field.
func CommandsFailedNEQ(v int) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldCommandsFailed, v))
}

// CommandsFailedIn applies the In predicate on the "commands_failed" field.
func CommandsFailedIn(vs ...int) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldCommandsFailed, vs...))
}

// CommandsFailedNotIn applies the NotIn predicate on the "commands_failed" field.
func CommandsFailedNotIn(vs ...int) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldCommandsFailed, vs...))
}

// CommandsFailedGT applies the GT predicate on the "commands_failed" field.
func CommandsFailedGT(v int) predicate.PMState {
	return predicate.PMState(sql.FieldGT(FieldCommandsFailed, v))
}

// CommandsFailedGTE applies the GTE predicate on the "commands_failed" field.
func CommandsFailedGTE(v int) predicate.PMState {
	return predicate.PMState(sql.FieldGTE(FieldCommandsFailed, v))
}

// CommandsFailedLT applies the LT predicate on the "commands_failed" field.
func CommandsFailedLT(v int) predicate.PMState {
	return predicate.PMState(sql.FieldLT(FieldCommandsFailed, v))
}

// CommandsFailedLTE applies the LTE predicate on the "commands_failed" field.
func CommandsFailedLTE(v int) predicate.PMState {
	return predicate.PMState(sql.FieldLTE(FieldCommandsFailed, v))
}

// StateVersionEQ applies the EQ predicate on the "state_version" field.
func StateVersionEQ(v int) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldStateVersion, v))
}

// StateVersionNEQ applies the NEQ predicate on the "state_version" field.
func StateVersionNEQ(v int) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldStateVersion, v))
}

// StateVersionIn applies the In predicate on the "state_version" field.
func StateVersionIn(vs ...int) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldStateVersion, vs...))
}

// StateVersionNotIn applies the NotIn predicate on the "state_version" field.
func StateVersionNotIn(vs ...int) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldStateVersion, vs...))
}

// StateVersionGT applies the GT predicate on the "state_version" field.
func StateVersionGT(v int) predicate.PMState {
	return predicate.PMState(sql.FieldGT(FieldStateVersion, v))
}

// StateVersionGTE applies the GTE predicate on the "state_version" field.
func StateVersionGTE(v int) predicate.PMState {
	return predicate.PMState(sql.FieldGTE(FieldStateVersion, v))
}

// StateVersionLT applies the LT predicate on the "state_version" field.
func StateVersionLT(v int) predicate.PMState {
	return predicate.PMState(sql.FieldLT(FieldStateVersion, v))
}

// StateVersionLTE applies the LTE predicate on the "state_version" field.
func StateVersionLTE(v int) predicate.PMState {
	return predicate.PMState(sql.FieldLTE(FieldStateVersion, v))
}

// CustomStateIsNil applies the IsNil predicate on the "custom_state" field.
func CustomStateIsNil() predicate.PMState {
	return predicate.PMState(sql.FieldIsNull(FieldCustomState))
}

// CustomStateNotNil applies the NotNil predicate on the "custom_state" field.
func CustomStateNotNil() predicate.PMState {
	return predicate.PMState(sql.FieldNotNull(FieldCustomState))
}

// TriggerEventIDEQ applies the EQ predicate on the "trigger_event_id" field.
func TriggerEventIDEQ(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldTriggerEventID, v))
}

// TriggerEventIDNEQ applies the NEQ predicate on the "trigger_event_id" field.
func TriggerEventIDNEQ(v string) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldTriggerEventID, v))
}

// TriggerEventIDIn applies the In predicate on the "trigger_event_id" field.
func TriggerEventIDIn(vs ...string) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldTriggerEventID, vs...))
}

// TriggerEventIDNotIn applies the NotIn predicate on the "trigger_event_id" field.
func TriggerEventIDNotIn(vs ...string) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldTriggerEventID, vs...))
}

// TriggerEventIDGT applies the GT predicate on the "trigger_event_id" field.
func TriggerEventIDGT(v string) predicate.PMState {
	return predicate.PMState(sql.FieldGT(FieldTriggerEventID, v))
}

// TriggerEventIDGTE applies the GTE predicate on the "trigger_event_id" field.
func TriggerEventIDGTE(v string) predicate.PMState {
	return predicate.PMState(sql.FieldGTE(FieldTriggerEventID, v))
}

// TriggerEventIDLT applies the LT predicate on the "trigger_event_id" field.
func TriggerEventIDLT(v string) predicate.PMState {
	return predicate.PMState(sql.FieldLT(FieldTriggerEventID, v))
}

// TriggerEventIDLTE applies the LTE predicate on the "trigger_event_id" field.
func TriggerEventIDLTE(v string) predicate.PMState {
	return predicate.PMState(sql.FieldLTE(FieldTriggerEventID, v))
}

// TriggerEventIDContains applies the Contains predicate on the "trigger_event_id" field.
func TriggerEventIDContains(v string) predicate.PMState {
	return predicate.PMState(sql.FieldContains(FieldTriggerEventID, v))
}

// TriggerEventIDHasPrefix applies the HasPrefix predicate on the "trigger_event_id" field.
func TriggerEventIDHasPrefix(v string) predicate.PMState {
	return predicate.PMState(sql.FieldHasPrefix(FieldTriggerEventID, v))
}

// TriggerEventIDHasSuffix applies the HasSuffix predicate on the "trigger_event_id" field.
func TriggerEventIDHasSuffix(v string) predicate.PMState {
	return predicate.PMState(sql.FieldHasSuffix(FieldTriggerEventID, v))
}

// TriggerEventIDIsNil applies the IsNil predicate on the "trigger_event_id" field.
func TriggerEventIDIsNil() predicate.PMState {
	return predicate.PMState(sql.FieldIsNull(FieldTriggerEventID))
}

// TriggerEventIDNotNil applies the NotNil predicate on the "trigger_event_id" field.
func TriggerEventIDNotNil() predicate.PMState {
	return predicate.PMState(sql.FieldNotNull(FieldTriggerEventID))
}

// TriggerEventIDEqualFold applies the EqualFold predicate on the "trigger_event_id" field.
func TriggerEventIDEqualFold(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEqualFold(FieldTriggerEventID, v))
}

// TriggerEventIDContainsFold applies the ContainsFold predicate on the "trigger_event_id" field.
func TriggerEventIDContainsFold(v string) predicate.PMState {
	return predicate.PMState(sql.FieldContainsFold(FieldTriggerEventID, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.PMState {
	return predicate.PMState(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.PMState {
	return predicate.PMState(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.PMState {
	return predicate.PMState(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.PMState {
	return predicate.PMState(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.PMState {
	return predicate.PMState(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.PMState {
	return predicate.PMState(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.PMState {
	return predicate.PMState(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDIsNil applies the IsNil predicate on the "correlation_id" field.
func CorrelationIDIsNil() predicate.PMState {
	return predicate.PMState(sql.FieldIsNull(FieldCorrelationID))
}

// CorrelationIDNotNil applies the NotNil predicate on the "correlation_id" field.
func CorrelationIDNotNil() predicate.PMState {
	return predicate.PMState(sql.FieldNotNull(FieldCorrelationID))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.PMState {
	return predicate.PMState(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.PMState {
	return predicate.PMState(sql.FieldContainsFold(FieldCorrelationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PMState {
	return predicate.PMState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PMState) predicate.PMState {
	return predicate.PMState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PMState) predicate.PMState {
	return predicate.PMState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PMState) predicate.PMState {
	return predicate.PMState(sql.NotPredicates(p))
}
