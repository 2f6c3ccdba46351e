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
	"github.com/strandkit/strand/ent/pmstate"
	"github.com/strandkit/strand/ent/predicate"
)

// PMStateUpdate is the builder for updating PMState entities.
type PMStateUpdate struct {
	config
	hooks    []Hook
	mutation *PMStateMutation
}

// Where appends a list predicates to the PMStateUpdate builder.
func (_u *PMStateUpdate) Where(ps ...predicate.PMState) *PMStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PMStateUpdate) SetStatus(v pmstate.Status) *PMStateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PMStateUpdate) SetNillableStatus(v *pmstate.Status) *PMStateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastGlobalPosition sets the "last_global_position" field.
func (_u *PMStateUpdate) SetLastGlobalPosition(v int) *PMStateUpdate {
	_u.mutation.ResetLastGlobalPosition()
	_u.mutation.SetLastGlobalPosition(v)
	return _u
}

// SetNillableLastGlobalPosition sets the "last_global_position" field if the given value is not nil.
func (_u *PMStateUpdate) SetNillableLastGlobalPosition(v *int) *PMStateUpdate {
	if v != nil {
		_u.SetLastGlobalPosition(*v)
	}
	return _u
}

// AddLastGlobalPosition adds value to the "last_global_position" field.
func (_u *PMStateUpdate) AddLastGlobalPosition(v int) *PMStateUpdate {
	_u.mutation.AddLastGlobalPosition(v)
	return _u
}

// SetCommandsEmitted sets the "commands_emitted" field.
func (_u *PMStateUpdate) SetCommandsEmitted(v int) *PMStateUpdate {
	_u.mutation.ResetCommandsEmitted()
	_u.mutation.SetCommandsEmitted(v)
	return _u
}

// SetNillableCommandsEmitted sets the "commands_emitted" field if the given value is not nil.
func (_u *PMStateUpdate) SetNillableCommandsEmitted(v *int) *PMStateUpdate {
	if v != nil {
		_u.SetCommandsEmitted(*v)
	}
	return _u
}

// AddCommandsEmitted adds value to the "commands_emitted" field.
func (_u *PMStateUpdate) AddCommandsEmitted(v int) *PMStateUpdate {
	_u.mutation.AddCommandsEmitted(v)
	return _u
}

// SetCommandsFailed sets the "commands_failed" field.
func (_u *PMStateUpdate) SetCommandsFailed(v int) *PMStateUpdate {
	_u.mutation.ResetCommandsFailed()
	_u.mutation.SetCommandsFailed(v)
	return _u
}

// SetNillableCommandsFailed sets the "commands_failed" field if the given value is not nil.
func (_u *PMStateUpdate) SetNillableCommandsFailed(v *int) *PMStateUpdate {
	if v != nil {
		_u.SetCommandsFailed(*v)
	}
	return _u
}

// AddCommandsFailed adds value to the "commands_failed" field.
func (_u *PMStateUpdate) AddCommandsFailed(v int) *PMStateUpdate {
	_u.mutation.AddCommandsFailed(v)
	return _u
}

// SetStateVersion sets the "state_version" field.
func (_u *PMStateUpdate) SetStateVersion(v int) *PMStateUpdate {
	_u.mutation.ResetStateVersion()
	_u.mutation.SetStateVersion(v)
	return _u
}

// SetNillableStateVersion sets the "state_version" field if the given value is not nil.
func (_u *PMStateUpdate) SetNillableStateVersion(v *int) *PMStateUpdate {
	if v != nil {
		_u.SetStateVersion(*v)
	}
	return _u
}

// AddStateVersion adds value to the "state_version" field.
func (_u *PMStateUpdate) AddStateVersion(v int) *PMStateUpdate {
	_u.mutation.AddStateVersion(v)
	return _u
}

// SetCustomState sets the "custom_state" field.
func (_u *PMStateUpdate) SetCustomState(v map[string]interface{}) *PMStateUpdate {
	_u.mutation.SetCustomState(v)
	return _u
}

// ClearCustomState clears the value of the "custom_state" field.
func (_u *PMStateUpdate) ClearCustomState() *PMStateUpdate {
	_u.mutation.ClearCustomState()
	return _u
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (_u *PMStateUpdate) SetTriggerEventID(v string) *PMStateUpdate {
	_u.mutation.SetTriggerEventID(v)
	return _u
}

// SetNillableTriggerEventID sets the "trigger_event_id" field if the given value is not nil.
func (_u *PMStateUpdate) SetNillableTriggerEventID(v *string) *PMStateUpdate {
	if v != nil {
		_u.SetTriggerEventID(*v)
	}
	return _u
}

// ClearTriggerEventID clears the value of the "trigger_event_id" field.
func (_u *PMStateUpdate) ClearTriggerEventID() *PMStateUpdate {
	_u.mutation.ClearTriggerEventID()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *PMStateUpdate) SetCorrelationID(v string) *PMStateUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *PMStateUpdate) SetNillableCorrelationID(v *string) *PMStateUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *PMStateUpdate) ClearCorrelationID() *PMStateUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PMStateUpdate) SetUpdatedAt(v time.Time) *PMStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PMStateMutation object of the builder.
func (_u *PMStateUpdate) Mutation() *PMStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PMStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PMStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PMStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PMStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PMStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pmstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PMStateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pmstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PMState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PMStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pmstate.Table, pmstate.Columns, sqlgraph.NewFieldSpec(pmstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pmstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastGlobalPosition(); ok {
		_spec.SetField(pmstate.FieldLastGlobalPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastGlobalPosition(); ok {
		_spec.AddField(pmstate.FieldLastGlobalPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommandsEmitted(); ok {
		_spec.SetField(pmstate.FieldCommandsEmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommandsEmitted(); ok {
		_spec.AddField(pmstate.FieldCommandsEmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommandsFailed(); ok {
		_spec.SetField(pmstate.FieldCommandsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommandsFailed(); ok {
		_spec.AddField(pmstate.FieldCommandsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StateVersion(); ok {
		_spec.SetField(pmstate.FieldStateVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStateVersion(); ok {
		_spec.AddField(pmstate.FieldStateVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CustomState(); ok {
		_spec.SetField(pmstate.FieldCustomState, field.TypeJSON, value)
	}
	if _u.mutation.CustomStateCleared() {
		_spec.ClearField(pmstate.FieldCustomState, field.TypeJSON)
	}
	if value, ok := _u.mutation.TriggerEventID(); ok {
		_spec.SetField(pmstate.FieldTriggerEventID, field.TypeString, value)
	}
	if _u.mutation.TriggerEventIDCleared() {
		_spec.ClearField(pmstate.FieldTriggerEventID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(pmstate.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(pmstate.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pmstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pmstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PMStateUpdateOne is the builder for updating a single PMState entity.
type PMStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PMStateMutation
}

// SetStatus sets the "status" field.
func (_u *PMStateUpdateOne) SetStatus(v pmstate.Status) *PMStateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PMStateUpdateOne) SetNillableStatus(v *pmstate.Status) *PMStateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastGlobalPosition sets the "last_global_position" field.
func (_u *PMStateUpdateOne) SetLastGlobalPosition(v int) *PMStateUpdateOne {
	_u.mutation.ResetLastGlobalPosition()
	_u.mutation.SetLastGlobalPosition(v)
	return _u
}

// SetNillableLastGlobalPosition sets the "last_global_position" field if the given value is not nil.
func (_u *PMStateUpdateOne) SetNillableLastGlobalPosition(v *int) *PMStateUpdateOne {
	if v != nil {
		_u.SetLastGlobalPosition(*v)
	}
	return _u
}

// AddLastGlobalPosition adds value to the "last_global_position" field.
func (_u *PMStateUpdateOne) AddLastGlobalPosition(v int) *PMStateUpdateOne {
	_u.mutation.AddLastGlobalPosition(v)
	return _u
}

// SetCommandsEmitted sets the "commands_emitted" field.
func (_u *PMStateUpdateOne) SetCommandsEmitted(v int) *PMStateUpdateOne {
	_u.mutation.ResetCommandsEmitted()
	_u.mutation.SetCommandsEmitted(v)
	return _u
}

// SetNillableCommandsEmitted sets the "commands_emitted" field if the given value is not nil.
func (_u *PMStateUpdateOne) SetNillableCommandsEmitted(v *int) *PMStateUpdateOne {
	if v != nil {
		_u.SetCommandsEmitted(*v)
	}
	return _u
}

// AddCommandsEmitted adds value to the "commands_emitted" field.
func (_u *PMStateUpdateOne) AddCommandsEmitted(v int) *PMStateUpdateOne {
	_u.mutation.AddCommandsEmitted(v)
	return _u
}

// SetCommandsFailed sets the "commands_failed" field.
func (_u *PMStateUpdateOne) SetCommandsFailed(v int) *PMStateUpdateOne {
	_u.mutation.ResetCommandsFailed()
	_u.mutation.SetCommandsFailed(v)
	return _u
}

// SetNillableCommandsFailed sets the "commands_failed" field if the given value is not nil.
func (_u *PMStateUpdateOne) SetNillableCommandsFailed(v *int) *PMStateUpdateOne {
	if v != nil {
		_u.SetCommandsFailed(*v)
	}
	return _u
}

// AddCommandsFailed adds value to the "commands_failed" field.
func (_u *PMStateUpdateOne) AddCommandsFailed(v int) *PMStateUpdateOne {
	_u.mutation.AddCommandsFailed(v)
	return _u
}

// SetStateVersion sets the "state_version" field.
func (_u *PMStateUpdateOne) SetStateVersion(v int) *PMStateUpdateOne {
	_u.mutation.ResetStateVersion()
	_u.mutation.SetStateVersion(v)
	return _u
}

// SetNillableStateVersion sets the "state_version" field if the given value is not nil.
func (_u *PMStateUpdateOne) SetNillableStateVersion(v *int) *PMStateUpdateOne {
	if v != nil {
		_u.SetStateVersion(*v)
	}
	return _u
}

// AddStateVersion adds value to the "state_version" field.
func (_u *PMStateUpdateOne) AddStateVersion(v int) *PMStateUpdateOne {
	_u.mutation.AddStateVersion(v)
	return _u
}

// SetCustomState sets the "custom_state" field.
func (_u *PMStateUpdateOne) SetCustomState(v map[string]interface{}) *PMStateUpdateOne {
	_u.mutation.SetCustomState(v)
	return _u
}

// ClearCustomState clears the value of the "custom_state" field.
func (_u *PMStateUpdateOne) ClearCustomState() *PMStateUpdateOne {
	_u.mutation.ClearCustomState()
	return _u
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (_u *PMStateUpdateOne) SetTriggerEventID(v string) *PMStateUpdateOne {
	_u.mutation.SetTriggerEventID(v)
	return _u
}

// SetNillableTriggerEventID sets the "trigger_event_id" field if the given value is not nil.
func (_u *PMStateUpdateOne) SetNillableTriggerEventID(v *string) *PMStateUpdateOne {
	if v != nil {
		_u.SetTriggerEventID(*v)
	}
	return _u
}

// ClearTriggerEventID clears the value of the "trigger_event_id" field.
func (_u *PMStateUpdateOne) ClearTriggerEventID() *PMStateUpdateOne {
	_u.mutation.ClearTriggerEventID()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *PMStateUpdateOne) SetCorrelationID(v string) *PMStateUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *PMStateUpdateOne) SetNillableCorrelationID(v *string) *PMStateUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *PMStateUpdateOne) ClearCorrelationID() *PMStateUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PMStateUpdateOne) SetUpdatedAt(v time.Time) *PMStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PMStateMutation object of the builder.
func (_u *PMStateUpdateOne) Mutation() *PMStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the PMStateUpdate builder.
func (_u *PMStateUpdateOne) Where(ps ...predicate.PMState) *PMStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PMStateUpdateOne) Select(field string, fields ...string) *PMStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PMState entity.
func (_u *PMStateUpdateOne) Save(ctx context.Context) (*PMState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PMStateUpdateOne) SaveX(ctx context.Context) *PMState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PMStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PMStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PMStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pmstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PMStateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pmstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PMState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PMStateUpdateOne) sqlSave(ctx context.Context) (_node *PMState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pmstate.Table, pmstate.Columns, sqlgraph.NewFieldSpec(pmstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PMState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pmstate.FieldID)
		for _, f := range fields {
			if !pmstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pmstate.FieldID {
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
		_spec.SetField(pmstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastGlobalPosition(); ok {
		_spec.SetField(pmstate.FieldLastGlobalPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastGlobalPosition(); ok {
		_spec.AddField(pmstate.FieldLastGlobalPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommandsEmitted(); ok {
		_spec.SetField(pmstate.FieldCommandsEmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommandsEmitted(); ok {
		_spec.AddField(pmstate.FieldCommandsEmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommandsFailed(); ok {
		_spec.SetField(pmstate.FieldCommandsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommandsFailed(); ok {
		_spec.AddField(pmstate.FieldCommandsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StateVersion(); ok {
		_spec.SetField(pmstate.FieldStateVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStateVersion(); ok {
		_spec.AddField(pmstate.FieldStateVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CustomState(); ok {
		_spec.SetField(pmstate.FieldCustomState, field.TypeJSON, value)
	}
	if _u.mutation.CustomStateCleared() {
		_spec.ClearField(pmstate.FieldCustomState, field.TypeJSON)
	}
	if value, ok := _u.mutation.TriggerEventID(); ok {
		_spec.SetField(pmstate.FieldTriggerEventID, field.TypeString, value)
	}
	if _u.mutation.TriggerEventIDCleared() {
		_spec.ClearField(pmstate.FieldTriggerEventID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(pmstate.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(pmstate.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pmstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PMState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pmstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
