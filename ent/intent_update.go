// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/strandkit/strand/ent/intent"
	"github.com/strandkit/strand/ent/predicate"
)

// IntentUpdate is the builder for updating Intent entities.
type IntentUpdate struct {
	config
	hooks    []Hook
	mutation *IntentMutation
}

// Where appends a list predicates to the IntentUpdate builder.
func (_u *IntentUpdate) Where(ps ...predicate.Intent) *IntentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntentUpdate) SetStatus(v intent.Status) *IntentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableStatus(v *intent.Status) *IntentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletionEventID sets the "completion_event_id" field.
func (_u *IntentUpdate) SetCompletionEventID(v string) *IntentUpdate {
	_u.mutation.SetCompletionEventID(v)
	return _u
}

// SetNillableCompletionEventID sets the "completion_event_id" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableCompletionEventID(v *string) *IntentUpdate {
	if v != nil {
		_u.SetCompletionEventID(*v)
	}
	return _u
}

// ClearCompletionEventID clears the value of the "completion_event_id" field.
func (_u *IntentUpdate) ClearCompletionEventID() *IntentUpdate {
	_u.mutation.ClearCompletionEventID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IntentUpdate) SetErrorMessage(v string) *IntentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableErrorMessage(v *string) *IntentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IntentUpdate) ClearErrorMessage() *IntentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntentUpdate) SetUpdatedAt(v time.Time) *IntentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IntentMutation object of the builder.
func (_u *IntentUpdate) Mutation() *IntentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := intent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := intent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Intent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intent.Table, intent.Columns, sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletionEventID(); ok {
		_spec.SetField(intent.FieldCompletionEventID, field.TypeString, value)
	}
	if _u.mutation.CompletionEventIDCleared() {
		_spec.ClearField(intent.FieldCompletionEventID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(intent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(intent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(intent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntentUpdateOne is the builder for updating a single Intent entity.
type IntentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntentMutation
}

// SetStatus sets the "status" field.
func (_u *IntentUpdateOne) SetStatus(v intent.Status) *IntentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableStatus(v *intent.Status) *IntentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletionEventID sets the "completion_event_id" field.
func (_u *IntentUpdateOne) SetCompletionEventID(v string) *IntentUpdateOne {
	_u.mutation.SetCompletionEventID(v)
	return _u
}

// SetNillableCompletionEventID sets the "completion_event_id" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableCompletionEventID(v *string) *IntentUpdateOne {
	if v != nil {
		_u.SetCompletionEventID(*v)
	}
	return _u
}

// ClearCompletionEventID clears the value of the "completion_event_id" field.
func (_u *IntentUpdateOne) ClearCompletionEventID() *IntentUpdateOne {
	_u.mutation.ClearCompletionEventID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IntentUpdateOne) SetErrorMessage(v string) *IntentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableErrorMessage(v *string) *IntentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IntentUpdateOne) ClearErrorMessage() *IntentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntentUpdateOne) SetUpdatedAt(v time.Time) *IntentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IntentMutation object of the builder.
func (_u *IntentUpdateOne) Mutation() *IntentMutation {
	return _u.mutation
}

// Where appends a list predicates to the IntentUpdate builder.
func (_u *IntentUpdateOne) Where(ps ...predicate.Intent) *IntentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntentUpdateOne) Select(field string, fields ...string) *IntentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Intent entity.
func (_u *IntentUpdateOne) Save(ctx context.Context) (*Intent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntentUpdateOne) SaveX(ctx context.Context) *Intent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := intent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := intent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Intent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntentUpdateOne) sqlSave(ctx context.Context) (_node *Intent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intent.Table, intent.Columns, sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Intent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intent.FieldID)
		for _, f := range fields {
			if !intent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != intent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletionEventID(); ok {
		_spec.SetField(intent.FieldCompletionEventID, field.TypeString, value)
	}
	if _u.mutation.CompletionEventIDCleared() {
		_spec.ClearField(intent.FieldCompletionEventID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(intent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(intent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(intent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Intent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
