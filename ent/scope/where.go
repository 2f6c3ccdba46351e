// Code generated by ent, DO NOT EDIT.

package scope

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Scope {
	return predicate.Scope(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Scope {
	return predicate.Scope(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Scope {
	return predicate.Scope(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Scope {
	return predicate.Scope(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Scope {
	return predicate.Scope(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Scope {
	return predicate.Scope(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Scope {
	return predicate.Scope(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Scope {
	return predicate.Scope(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Scope {
	return predicate.Scope(sql.FieldLTE(FieldID, id))
}

// ScopeKey applies equality check predicate on the "scope_key" field. It's identical to ScopeKeyEQ.
func ScopeKey(v string) predicate.Scope {
	return predicate.Scope(sql.FieldEQ(FieldScopeKey, v))
}

// CurrentVersion applies equality check predicate on the "current_version" field. It's identical to CurrentVersionEQ.
func CurrentVersion(v int) predicate.Scope {
	return predicate.Scope(sql.FieldEQ(FieldCurrentVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldEQ(FieldUpdatedAt, v))
}

// ScopeKeyEQ applies the EQ predicate on the "scope_key" field.
func ScopeKeyEQ(v string) predicate.Scope {
	return predicate.Scope(sql.FieldEQ(FieldScopeKey, v))
}

// ScopeKeyNEQ applies the NEQ predicate on the "scope_key" field.
func ScopeKeyNEQ(v string) predicate.Scope {
	return predicate.Scope(sql.FieldNEQ(FieldScopeKey, v))
}

// ScopeKeyIn applies the In predicate on the "scope_key" field.
func ScopeKeyIn(vs ...string) predicate.Scope {
	return predicate.Scope(sql.FieldIn(FieldScopeKey, vs...))
}

// ScopeKeyNotIn applies the NotIn predicate on the "scope_key" field.
func ScopeKeyNotIn(vs ...string) predicate.Scope {
	return predicate.Scope(sql.FieldNotIn(FieldScopeKey, vs...))
}

// ScopeKeyGT applies the GT predicate on the "scope_key" field.
func ScopeKeyGT(v string) predicate.Scope {
	return predicate.Scope(sql.FieldGT(FieldScopeKey, v))
}

// ScopeKeyGTE applies the GTE predicate on the "scope_key" field.
func ScopeKeyGTE(v string) predicate.Scope {
	return predicate.Scope(sql.FieldGTE(FieldScopeKey, v))
}

// ScopeKeyLT applies the LT predicate on the "scope_key" field.
func ScopeKeyLT(v string) predicate.Scope {
	return predicate.Scope(sql.FieldLT(FieldScopeKey, v))
}

// ScopeKeyLTE applies the LTE predicate on the "scope_key" field.
func ScopeKeyLTE(v string) predicate.Scope {
	return predicate.Scope(sql.FieldLTE(FieldScopeKey, v))
}

// ScopeKeyContains applies the Contains predicate on the "scope_key" field.
func ScopeKeyContains(v string) predicate.Scope {
	return predicate.Scope(sql.FieldContains(FieldScopeKey, v))
}

// ScopeKeyHasPrefix applies the HasPrefix predicate on the "scope_key" field.
func ScopeKeyHasPrefix(v string) predicate.Scope {
	return predicate.Scope(sql.FieldHasPrefix(FieldScopeKey, v))
}

// ScopeKeyHasSuffix applies the HasSuffix predicate on the "scope_key" field.
func ScopeKeyHasSuffix(v string) predicate.Scope {
	return predicate.Scope(sql.FieldHasSuffix(FieldScopeKey, v))
}

// ScopeKeyEqualFold applies the EqualFold predicate on the "scope_key" field.
func ScopeKeyEqualFold(v string) predicate.Scope {
	return predicate.Scope(sql.FieldEqualFold(FieldScopeKey, v))
}

// ScopeKeyContainsFold applies the ContainsFold predicate on the "scope_key" field.
func ScopeKeyContainsFold(v string) predicate.Scope {
	return predicate.Scope(sql.FieldContainsFold(FieldScopeKey, v))
}

// CurrentVersionEQ applies the EQ predicate on the "current_version" field.
func CurrentVersionEQ(v int) predicate.Scope {
	return predicate.Scope(sql.FieldEQ(FieldCurrentVersion, v))
}

// CurrentVersionNEQ applies the NEQ predicate on the "current_version" field.
func CurrentVersionNEQ(v int) predicate.Scope {
	return predicate.Scope(sql.FieldNEQ(FieldCurrentVersion, v))
}

// CurrentVersionIn applies the In predicate on the "current_version" field.
func CurrentVersionIn(vs ...int) predicate.Scope {
	return predicate.Scope(sql.FieldIn(FieldCurrentVersion, vs...))
}

// CurrentVersionNotIn applies the NotIn predicate on the "current_version" field.
func CurrentVersionNotIn(vs ...int) predicate.Scope {
	return predicate.Scope(sql.FieldNotIn(FieldCurrentVersion, vs...))
}

// CurrentVersionGT applies the GT predicate on the "current_version" field.
func CurrentVersionGT(v int) predicate.Scope {
	return predicate.Scope(sql.FieldGT(FieldCurrentVersion, v))
}

// CurrentVersionGTE applies the GTE predicate on the "current_version" field.
func CurrentVersionGTE(v int) predicate.Scope {
	return predicate.Scope(sql.FieldGTE(FieldCurrentVersion, v))
}

// CurrentVersionLT applies the LT predicate on the "current_version" field.
func CurrentVersionLT(v int) predicate.Scope {
	return predicate.Scope(sql.FieldLT(FieldCurrentVersion, v))
}

// CurrentVersionLTE applies the LTE predicate on the "current_version" field.
func CurrentVersionLTE(v int) predicate.Scope {
	return predicate.Scope(sql.FieldLTE(FieldCurrentVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Scope {
	return predicate.Scope(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Scope) predicate.Scope {
	return predicate.Scope(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Scope) predicate.Scope {
	return predicate.Scope(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Scope) predicate.Scope {
	return predicate.Scope(sql.NotPredicates(p))
}
