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
	"github.com/strandkit/strand/ent/workitem"
)

// WorkItemUpdate is the builder for updating WorkItem entities.
type WorkItemUpdate struct {
	config
	hooks    []Hook
	mutation *WorkItemMutation
}

// Where appends a list predicates to the WorkItemUpdate builder.
func (_u *WorkItemUpdate) Where(ps ...predicate.WorkItem) *WorkItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkItemUpdate) SetStatus(v workitem.Status) *WorkItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableStatus(v *workitem.Status) *WorkItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WorkItemUpdate) SetAttempts(v int) *WorkItemUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableAttempts(v *int) *WorkItemUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WorkItemUpdate) AddAttempts(v int) *WorkItemUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetRunAfter sets the "run_after" field.
func (_u *WorkItemUpdate) SetRunAfter(v time.Time) *WorkItemUpdate {
	_u.mutation.SetRunAfter(v)
	return _u
}

// SetNillableRunAfter sets the "run_after" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableRunAfter(v *time.Time) *WorkItemUpdate {
	if v != nil {
		_u.SetRunAfter(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkItemUpdate) SetPodID(v string) *WorkItemUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillablePodID(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkItemUpdate) ClearPodID() *WorkItemUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *WorkItemUpdate) SetLastHeartbeat(v time.Time) *WorkItemUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableLastHeartbeat(v *time.Time) *WorkItemUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *WorkItemUpdate) ClearLastHeartbeat() *WorkItemUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkItemUpdate) SetErrorMessage(v string) *WorkItemUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableErrorMessage(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkItemUpdate) ClearErrorMessage() *WorkItemUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkItemUpdate) SetUpdatedAt(v time.Time) *WorkItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkItemMutation object of the builder.
func (_u *WorkItemUpdate) Mutation() *WorkItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workitem.Table, workitem.Columns, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DeliveryCleared() {
		_spec.ClearField(workitem.FieldDelivery, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(workitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(workitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunAfter(); ok {
		_spec.SetField(workitem.FieldRunAfter, field.TypeTime, value)
	}
	if _u.mutation.OnCompleteCleared() {
		_spec.ClearField(workitem.FieldOnComplete, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workitem.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workitem.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(workitem.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(workitem.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkItemUpdateOne is the builder for updating a single WorkItem entity.
type WorkItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkItemMutation
}

// SetStatus sets the "status" field.
func (_u *WorkItemUpdateOne) SetStatus(v workitem.Status) *WorkItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableStatus(v *workitem.Status) *WorkItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WorkItemUpdateOne) SetAttempts(v int) *WorkItemUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableAttempts(v *int) *WorkItemUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WorkItemUpdateOne) AddAttempts(v int) *WorkItemUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetRunAfter sets the "run_after" field.
func (_u *WorkItemUpdateOne) SetRunAfter(v time.Time) *WorkItemUpdateOne {
	_u.mutation.SetRunAfter(v)
	return _u
}

// SetNillableRunAfter sets the "run_after" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableRunAfter(v *time.Time) *WorkItemUpdateOne {
	if v != nil {
		_u.SetRunAfter(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkItemUpdateOne) SetPodID(v string) *WorkItemUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillablePodID(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkItemUpdateOne) ClearPodID() *WorkItemUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *WorkItemUpdateOne) SetLastHeartbeat(v time.Time) *WorkItemUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableLastHeartbeat(v *time.Time) *WorkItemUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *WorkItemUpdateOne) ClearLastHeartbeat() *WorkItemUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkItemUpdateOne) SetErrorMessage(v string) *WorkItemUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableErrorMessage(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkItemUpdateOne) ClearErrorMessage() *WorkItemUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkItemUpdateOne) SetUpdatedAt(v time.Time) *WorkItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkItemMutation object of the builder.
func (_u *WorkItemUpdateOne) Mutation() *WorkItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkItemUpdate builder.
func (_u *WorkItemUpdateOne) Where(ps ...predicate.WorkItem) *WorkItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkItemUpdateOne) Select(field string, fields ...string) *WorkItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkItem entity.
func (_u *WorkItemUpdateOne) Save(ctx context.Context) (*WorkItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkItemUpdateOne) SaveX(ctx context.Context) *WorkItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkItemUpdateOne) sqlSave(ctx context.Context) (_node *WorkItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workitem.Table, workitem.Columns, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workitem.FieldID)
		for _, f := range fields {
			if !workitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workitem.FieldID {
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
	if _u.mutation.DeliveryCleared() {
		_spec.ClearField(workitem.FieldDelivery, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(workitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(workitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunAfter(); ok {
		_spec.SetField(workitem.FieldRunAfter, field.TypeTime, value)
	}
	if _u.mutation.OnCompleteCleared() {
		_spec.ClearField(workitem.FieldOnComplete, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workitem.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workitem.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(workitem.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(workitem.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
