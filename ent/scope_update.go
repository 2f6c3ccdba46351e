// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/strandkit/strand/ent/predicate"
	"github.com/strandkit/strand/ent/scope"
)

// ScopeUpdate is the builder for updating Scope entities.
type ScopeUpdate struct {
	config
	hooks    []Hook
	mutation *ScopeMutation
}

// Where appends a list predicates to the ScopeUpdate builder.
func (_u *ScopeUpdate) Where(ps ...predicate.Scope) *ScopeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentVersion sets the "current_version" field.
func (_u *ScopeUpdate) SetCurrentVersion(v int) *ScopeUpdate {
	_u.mutation.ResetCurrentVersion()
	_u.mutation.SetCurrentVersion(v)
	return _u
}

// SetNillableCurrentVersion sets the "current_version" field if the given value is not nil.
func (_u *ScopeUpdate) SetNillableCurrentVersion(v *int) *ScopeUpdate {
	if v != nil {
		_u.SetCurrentVersion(*v)
	}
	return _u
}

// AddCurrentVersion adds value to the "current_version" field.
func (_u *ScopeUpdate) AddCurrentVersion(v int) *ScopeUpdate {
	_u.mutation.AddCurrentVersion(v)
	return _u
}

// SetStreams sets the "streams" field.
func (_u *ScopeUpdate) SetStreams(v []string) *ScopeUpdate {
	_u.mutation.SetStreams(v)
	return _u
}

// AppendStreams appends value to the "streams" field.
func (_u *ScopeUpdate) AppendStreams(v []string) *ScopeUpdate {
	_u.mutation.AppendStreams(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScopeUpdate) SetUpdatedAt(v time.Time) *ScopeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScopeMutation object of the builder.
func (_u *ScopeUpdate) Mutation() *ScopeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScopeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScopeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScopeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScopeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScopeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scope.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ScopeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(scope.Table, scope.Columns, sqlgraph.NewFieldSpec(scope.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentVersion(); ok {
		_spec.SetField(scope.FieldCurrentVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentVersion(); ok {
		_spec.AddField(scope.FieldCurrentVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streams(); ok {
		_spec.SetField(scope.FieldStreams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStreams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scope.FieldStreams, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scope.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scope.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScopeUpdateOne is the builder for updating a single Scope entity.
type ScopeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScopeMutation
}

// SetCurrentVersion sets the "current_version" field.
func (_u *ScopeUpdateOne) SetCurrentVersion(v int) *ScopeUpdateOne {
	_u.mutation.ResetCurrentVersion()
	_u.mutation.SetCurrentVersion(v)
	return _u
}

// SetNillableCurrentVersion sets the "current_version" field if the given value is not nil.
func (_u *ScopeUpdateOne) SetNillableCurrentVersion(v *int) *ScopeUpdateOne {
	if v != nil {
		_u.SetCurrentVersion(*v)
	}
	return _u
}

// AddCurrentVersion adds value to the "current_version" field.
func (_u *ScopeUpdateOne) AddCurrentVersion(v int) *ScopeUpdateOne {
	_u.mutation.AddCurrentVersion(v)
	return _u
}

// SetStreams sets the "streams" field.
func (_u *ScopeUpdateOne) SetStreams(v []string) *ScopeUpdateOne {
	_u.mutation.SetStreams(v)
	return _u
}

// AppendStreams appends value to the "streams" field.
func (_u *ScopeUpdateOne) AppendStreams(v []string) *ScopeUpdateOne {
	_u.mutation.AppendStreams(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScopeUpdateOne) SetUpdatedAt(v time.Time) *ScopeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScopeMutation object of the builder.
func (_u *ScopeUpdateOne) Mutation() *ScopeMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScopeUpdate builder.
func (_u *ScopeUpdateOne) Where(ps ...predicate.Scope) *ScopeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScopeUpdateOne) Select(field string, fields ...string) *ScopeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Scope entity.
func (_u *ScopeUpdateOne) Save(ctx context.Context) (*Scope, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScopeUpdateOne) SaveX(ctx context.Context) *Scope {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScopeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScopeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScopeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scope.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ScopeUpdateOne) sqlSave(ctx context.Context) (_node *Scope, err error) {
	_spec := sqlgraph.NewUpdateSpec(scope.Table, scope.Columns, sqlgraph.NewFieldSpec(scope.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Scope.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scope.FieldID)
		for _, f := range fields {
			if !scope.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scope.FieldID {
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
	if value, ok := _u.mutation.CurrentVersion(); ok {
		_spec.SetField(scope.FieldCurrentVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentVersion(); ok {
		_spec.AddField(scope.FieldCurrentVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streams(); ok {
		_spec.SetField(scope.FieldStreams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStreams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scope.FieldStreams, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scope.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Scope{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scope.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
