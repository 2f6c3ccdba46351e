// Code generated by ent, DO NOT EDIT.

package workitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldID, id))
}

// Ref applies equality check predicate on the "ref" field. It's identical to RefEQ.
func Ref(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldRef, v))
}

// PartitionKey applies equality check predicate on the "partition_key" field. It's identical to PartitionKeyEQ.
func PartitionKey(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPartitionKey, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPriority, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldAttempts, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldMaxAttempts, v))
}

// RunAfter applies equality check predicate on the "run_after" field. It's identical to RunAfterEQ.
func RunAfter(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldRunAfter, v))
}

// OnComplete applies equality check predicate on the "on_complete" field. It's identical to OnCompleteEQ.
func OnComplete(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldOnComplete, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldLastHeartbeat, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// RefEQ applies the EQ predicate on the "ref" field.
func RefEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldRef, v))
}

// RefNEQ applies the NEQ predicate on the "ref" field.
func RefNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldRef, v))
}

// RefIn applies the In predicate on the "ref" field.
func RefIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldRef, vs...))
}

// RefNotIn applies the NotIn predicate on the "ref" field.
func RefNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldRef, vs...))
}

// RefGT applies the GT predicate on the "ref" field.
func RefGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldRef, v))
}

// RefGTE applies the GTE predicate on the "ref" field.
func RefGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldRef, v))
}

// RefLT applies the LT predicate on the "ref" field.
func RefLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldRef, v))
}

// RefLTE applies the LTE predicate on the "ref" field.
func RefLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldRef, v))
}

// RefContains applies the Contains predicate on the "ref" field.
func RefContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldRef, v))
}

// RefHasPrefix applies the HasPrefix predicate on the "ref" field.
func RefHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldRef, v))
}

// RefHasSuffix applies the HasSuffix predicate on the "ref" field.
func RefHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldRef, v))
}

// RefEqualFold applies the EqualFold predicate on the "ref" field.
func RefEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldRef, v))
}

// RefContainsFold applies the ContainsFold predicate on the "ref" field.
func RefContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldRef, v))
}

// DeliveryIsNil applies the IsNil predicate on the "delivery" field.
func DeliveryIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldDelivery))
}

// DeliveryNotNil applies the NotNil predicate on the "delivery" field.
func DeliveryNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldDelivery))
}

// PartitionKeyEQ applies the EQ predicate on the "partition_key" field.
func PartitionKeyEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPartitionKey, v))
}

// PartitionKeyNEQ applies the NEQ predicate on the "partition_key" field.
func PartitionKeyNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldPartitionKey, v))
}

// PartitionKeyIn applies the In predicate on the "partition_key" field.
func PartitionKeyIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldPartitionKey, vs...))
}

// PartitionKeyNotIn applies the NotIn predicate on the "partition_key" field.
func PartitionKeyNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldPartitionKey, vs...))
}

// PartitionKeyGT applies the GT predicate on the "partition_key" field.
func PartitionKeyGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldPartitionKey, v))
}

// PartitionKeyGTE applies the GTE predicate on the "partition_key" field.
func PartitionKeyGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldPartitionKey, v))
}

// PartitionKeyLT applies the LT predicate on the "partition_key" field.
func PartitionKeyLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldPartitionKey, v))
}

// PartitionKeyLTE applies the LTE predicate on the "partition_key" field.
func PartitionKeyLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldPartitionKey, v))
}

// PartitionKeyContains applies the Contains predicate on the "partition_key" field.
func PartitionKeyContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldPartitionKey, v))
}

// PartitionKeyHasPrefix applies the HasPrefix predicate on the "partition_key" field.
func PartitionKeyHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldPartitionKey, v))
}

// PartitionKeyHasSuffix applies the HasSuffix predicate on the "partition_key" field.
func PartitionKeyHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldPartitionKey, v))
}

// PartitionKeyEqualFold applies the EqualFold predicate on the "partition_key" field.
func PartitionKeyEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldPartitionKey, v))
}

// PartitionKeyContainsFold applies the ContainsFold predicate on the "partition_key" field.
func PartitionKeyContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldPartitionKey, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldPriority, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldAttempts, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldMaxAttempts, v))
}

// RunAfterEQ applies the EQ predicate on the "run_after" field.
func RunAfterEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldRunAfter, v))
}

// RunAfterNEQ applies the NEQ predicate on the "run_after" field.
func RunAfterNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldRunAfter, v))
}

// RunAfterIn applies the In predicate on the "run_after" field.
func RunAfterIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldRunAfter, vs...))
}

// RunAfterNotIn applies the NotIn predicate on the "run_after" field.
func RunAfterNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldRunAfter, vs...))
}

// RunAfterGT applies the GT predicate on the "run_after" field.
func RunAfterGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldRunAfter, v))
}

// RunAfterGTE applies the GTE predicate on the "run_after" field.
func RunAfterGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldRunAfter, v))
}

// RunAfterLT applies the LT predicate on the "run_after" field.
func RunAfterLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldRunAfter, v))
}

// RunAfterLTE applies the LTE predicate on the "run_after" field.
func RunAfterLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldRunAfter, v))
}

// OnCompleteEQ applies the EQ predicate on the "on_complete" field.
func OnCompleteEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldOnComplete, v))
}

// OnCompleteNEQ applies the NEQ predicate on the "on_complete" field.
func OnCompleteNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldOnComplete, v))
}

// OnCompleteIn applies the In predicate on the "on_complete" field.
func OnCompleteIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldOnComplete, vs...))
}

// OnCompleteNotIn applies the NotIn predicate on the "on_complete" field.
func OnCompleteNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldOnComplete, vs...))
}

// OnCompleteGT applies the GT predicate on the "on_complete" field.
func OnCompleteGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldOnComplete, v))
}

// OnCompleteGTE applies the GTE predicate on the "on_complete" field.
func OnCompleteGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldOnComplete, v))
}

// OnCompleteLT applies the LT predicate on the "on_complete" field.
func OnCompleteLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldOnComplete, v))
}

// OnCompleteLTE applies the LTE predicate on the "on_complete" field.
func OnCompleteLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldOnComplete, v))
}

// OnCompleteContains applies the Contains predicate on the "on_complete" field.
func OnCompleteContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldOnComplete, v))
}

// OnCompleteHasPrefix applies the HasPrefix predicate on the "on_complete" field.
func OnCompleteHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldOnComplete, v))
}

// OnCompleteHasSuffix applies the HasSuffix predicate on the "on_complete" field.
func OnCompleteHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldOnComplete, v))
}

// OnCompleteIsNil applies the IsNil predicate on the "on_complete" field.
func OnCompleteIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldOnComplete))
}

// OnCompleteNotNil applies the NotNil predicate on the "on_complete" field.
func OnCompleteNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldOnComplete))
}

// OnCompleteEqualFold applies the EqualFold predicate on the "on_complete" field.
func OnCompleteEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldOnComplete, v))
}

// OnCompleteContainsFold applies the ContainsFold predicate on the "on_complete" field.
func OnCompleteContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldOnComplete, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldLastHeartbeat))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkItem) predicate.WorkItem {
	return predicate.WorkItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkItem) predicate.WorkItem {
	return predicate.WorkItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkItem) predicate.WorkItem {
	return predicate.WorkItem(sql.NotPredicates(p))
}
