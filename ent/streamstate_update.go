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
	"github.com/strandkit/strand/ent/predicate"
	"github.com/strandkit/strand/ent/streamstate"
)

// StreamStateUpdate is the builder for updating StreamState entities.
type StreamStateUpdate struct {
	config
	hooks    []Hook
	mutation *StreamStateMutation
}

// Where appends a list predicates to the StreamStateUpdate builder.
func (_u *StreamStateUpdate) Where(ps ...predicate.StreamState) *StreamStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *StreamStateUpdate) SetVersion(v int) *StreamStateUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *StreamStateUpdate) SetNillableVersion(v *int) *StreamStateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *StreamStateUpdate) AddVersion(v int) *StreamStateUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetState sets the "state" field.
func (_u *StreamStateUpdate) SetState(v map[string]interface{}) *StreamStateUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetStateVersion sets the "state_version" field.
func (_u *StreamStateUpdate) SetStateVersion(v int) *StreamStateUpdate {
	_u.mutation.ResetStateVersion()
	_u.mutation.SetStateVersion(v)
	return _u
}

// SetNillableStateVersion sets the "state_version" field if the given value is not nil.
func (_u *StreamStateUpdate) SetNillableStateVersion(v *int) *StreamStateUpdate {
	if v != nil {
		_u.SetStateVersion(*v)
	}
	return _u
}

// AddStateVersion adds value to the "state_version" field.
func (_u *StreamStateUpdate) AddStateVersion(v int) *StreamStateUpdate {
	_u.mutation.AddStateVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StreamStateUpdate) SetUpdatedAt(v time.Time) *StreamStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StreamStateMutation object of the builder.
func (_u *StreamStateUpdate) Mutation() *StreamStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StreamStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreamStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StreamStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreamStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StreamStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := streamstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StreamStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(streamstate.Table, streamstate.Columns, sqlgraph.NewFieldSpec(streamstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(streamstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(streamstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(streamstate.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.StateVersion(); ok {
		_spec.SetField(streamstate.FieldStateVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStateVersion(); ok {
		_spec.AddField(streamstate.FieldStateVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(streamstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streamstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StreamStateUpdateOne is the builder for updating a single StreamState entity.
type StreamStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StreamStateMutation
}

// SetVersion sets the "version" field.
func (_u *StreamStateUpdateOne) SetVersion(v int) *StreamStateUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *StreamStateUpdateOne) SetNillableVersion(v *int) *StreamStateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *StreamStateUpdateOne) AddVersion(v int) *StreamStateUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetState sets the "state" field.
func (_u *StreamStateUpdateOne) SetState(v map[string]interface{}) *StreamStateUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetStateVersion sets the "state_version" field.
func (_u *StreamStateUpdateOne) SetStateVersion(v int) *StreamStateUpdateOne {
	_u.mutation.ResetStateVersion()
	_u.mutation.SetStateVersion(v)
	return _u
}

// SetNillableStateVersion sets the "state_version" field if the given value is not nil.
func (_u *StreamStateUpdateOne) SetNillableStateVersion(v *int) *StreamStateUpdateOne {
	if v != nil {
		_u.SetStateVersion(*v)
	}
	return _u
}

// AddStateVersion adds value to the "state_version" field.
func (_u *StreamStateUpdateOne) AddStateVersion(v int) *StreamStateUpdateOne {
	_u.mutation.AddStateVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StreamStateUpdateOne) SetUpdatedAt(v time.Time) *StreamStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StreamStateMutation object of the builder.
func (_u *StreamStateUpdateOne) Mutation() *StreamStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the StreamStateUpdate builder.
func (_u *StreamStateUpdateOne) Where(ps ...predicate.StreamState) *StreamStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StreamStateUpdateOne) Select(field string, fields ...string) *StreamStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StreamState entity.
func (_u *StreamStateUpdateOne) Save(ctx context.Context) (*StreamState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreamStateUpdateOne) SaveX(ctx context.Context) *StreamState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StreamStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreamStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StreamStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := streamstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StreamStateUpdateOne) sqlSave(ctx context.Context) (_node *StreamState, err error) {
	_spec := sqlgraph.NewUpdateSpec(streamstate.Table, streamstate.Columns, sqlgraph.NewFieldSpec(streamstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StreamState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, streamstate.FieldID)
		for _, f := range fields {
			if !streamstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != streamstate.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(streamstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(streamstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(streamstate.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.StateVersion(); ok {
		_spec.SetField(streamstate.FieldStateVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStateVersion(); ok {
		_spec.AddField(streamstate.FieldStateVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(streamstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StreamState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streamstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
