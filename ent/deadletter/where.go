// Code generated by ent, DO NOT EDIT.

package deadletter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldID, id))
}

// Subscription applies equality check predicate on the "subscription" field. It's identical to SubscriptionEQ.
func Subscription(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldSubscription, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldErrorMessage, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldAttempts, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldCreatedAt, v))
}

// SubscriptionEQ applies the EQ predicate on the "subscription" field.
func SubscriptionEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldSubscription, v))
}

// SubscriptionNEQ applies the NEQ predicate on the "subscription" field.
func SubscriptionNEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldSubscription, v))
}

// SubscriptionIn applies the In predicate on the "subscription" field.
func SubscriptionIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldSubscription, vs...))
}

// SubscriptionNotIn applies the NotIn predicate on the "subscription" field.
func SubscriptionNotIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldSubscription, vs...))
}

// SubscriptionGT applies the GT predicate on the "subscription" field.
func SubscriptionGT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldSubscription, v))
}

// SubscriptionGTE applies the GTE predicate on the "subscription" field.
func SubscriptionGTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldSubscription, v))
}

// SubscriptionLT applies the LT predicate on the "subscription" field.
func SubscriptionLT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldSubscription, v))
}

// SubscriptionLTE applies the LTE predicate on the "subscription" field.
func SubscriptionLTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldSubscription, v))
}

// SubscriptionContains applies the Contains predicate on the "subscription" field.
func SubscriptionContains(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContains(FieldSubscription, v))
}

// SubscriptionHasPrefix applies the HasPrefix predicate on the "subscription" field.
func SubscriptionHasPrefix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasPrefix(FieldSubscription, v))
}

// SubscriptionHasSuffix applies the HasSuffix predicate on the "subscription" field.
func SubscriptionHasSuffix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasSuffix(FieldSubscription, v))
}

// SubscriptionEqualFold applies the EqualFold predicate on the "subscription" field.
func SubscriptionEqualFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEqualFold(FieldSubscription, v))
}

// SubscriptionContainsFold applies the ContainsFold predicate on the "subscription" field.
func SubscriptionContainsFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContainsFold(FieldSubscription, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContainsFold(FieldErrorMessage, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldAttempts, v))
}

// FailedCommandIsNil applies the IsNil predicate on the "failed_command" field.
func FailedCommandIsNil() predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIsNull(FieldFailedCommand))
}

// FailedCommandNotNil applies the NotNil predicate on the "failed_command" field.
func FailedCommandNotNil() predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotNull(FieldFailedCommand))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeadLetter) predicate.DeadLetter {
	return predicate.DeadLetter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeadLetter) predicate.DeadLetter {
	return predicate.DeadLetter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeadLetter) predicate.DeadLetter {
	return predicate.DeadLetter(sql.NotPredicates(p))
}
