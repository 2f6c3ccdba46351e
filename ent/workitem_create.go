// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/strandkit/strand/ent/workitem"
)

// WorkItemCreate is the builder for creating a WorkItem entity.
type WorkItemCreate struct {
	config
	mutation *WorkItemMutation
	hooks    []Hook
}

// SetRef sets the "ref" field.
func (_c *WorkItemCreate) SetRef(v string) *WorkItemCreate {
	_c.mutation.SetRef(v)
	return _c
}

// SetArgs sets the "args" field.
func (_c *WorkItemCreate) SetArgs(v map[string]interface{}) *WorkItemCreate {
	_c.mutation.SetArgs(v)
	return _c
}

// SetDelivery sets the "delivery" field.
func (_c *WorkItemCreate) SetDelivery(v map[string]interface{}) *WorkItemCreate {
	_c.mutation.SetDelivery(v)
	return _c
}

// SetPartitionKey sets the "partition_key" field.
func (_c *WorkItemCreate) SetPartitionKey(v string) *WorkItemCreate {
	_c.mutation.SetPartitionKey(v)
	return _c
}

// SetNillablePartitionKey sets the "partition_key" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillablePartitionKey(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetPartitionKey(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *WorkItemCreate) SetPriority(v int) *WorkItemCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillablePriority(v *int) *WorkItemCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkItemCreate) SetStatus(v workitem.Status) *WorkItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableStatus(v *workitem.Status) *WorkItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *WorkItemCreate) SetAttempts(v int) *WorkItemCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableAttempts(v *int) *WorkItemCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *WorkItemCreate) SetMaxAttempts(v int) *WorkItemCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableMaxAttempts(v *int) *WorkItemCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetRunAfter sets the "run_after" field.
func (_c *WorkItemCreate) SetRunAfter(v time.Time) *WorkItemCreate {
	_c.mutation.SetRunAfter(v)
	return _c
}

// SetNillableRunAfter sets the "run_after" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableRunAfter(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetRunAfter(*v)
	}
	return _c
}

// SetOnComplete sets the "on_complete" field.
func (_c *WorkItemCreate) SetOnComplete(v string) *WorkItemCreate {
	_c.mutation.SetOnComplete(v)
	return _c
}

// SetNillableOnComplete sets the "on_complete" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableOnComplete(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetOnComplete(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *WorkItemCreate) SetPodID(v string) *WorkItemCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillablePodID(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *WorkItemCreate) SetLastHeartbeat(v time.Time) *WorkItemCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableLastHeartbeat(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkItemCreate) SetErrorMessage(v string) *WorkItemCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableErrorMessage(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkItemCreate) SetCreatedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableCreatedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkItemCreate) SetUpdatedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableUpdatedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the WorkItemMutation object of the builder.
func (_c *WorkItemCreate) Mutation() *WorkItemMutation {
	return _c.mutation
}

// Save creates the WorkItem in the database.
func (_c *WorkItemCreate) Save(ctx context.Context) (*WorkItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkItemCreate) SaveX(ctx context.Context) *WorkItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkItemCreate) defaults() {
	if _, ok := _c.mutation.PartitionKey(); !ok {
		v := workitem.DefaultPartitionKey
		_c.mutation.SetPartitionKey(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := workitem.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := workitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := workitem.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := workitem.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.RunAfter(); !ok {
		v := workitem.DefaultRunAfter()
		_c.mutation.SetRunAfter(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkItemCreate) check() error {
	if _, ok := _c.mutation.Ref(); !ok {
		return &ValidationError{Name: "ref", err: errors.New(`ent: missing required field "WorkItem.ref"`)}
	}
	if _, ok := _c.mutation.Args(); !ok {
		return &ValidationError{Name: "args", err: errors.New(`ent: missing required field "WorkItem.args"`)}
	}
	if _, ok := _c.mutation.PartitionKey(); !ok {
		return &ValidationError{Name: "partition_key", err: errors.New(`ent: missing required field "WorkItem.partition_key"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "WorkItem.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "WorkItem.attempts"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "WorkItem.max_attempts"`)}
	}
	if _, ok := _c.mutation.RunAfter(); !ok {
		return &ValidationError{Name: "run_after", err: errors.New(`ent: missing required field "WorkItem.run_after"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkItem.updated_at"`)}
	}
	return nil
}

func (_c *WorkItemCreate) sqlSave(ctx context.Context) (*WorkItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkItemCreate) createSpec() (*WorkItem, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workitem.Table, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Ref(); ok {
		_spec.SetField(workitem.FieldRef, field.TypeString, value)
		_node.Ref = value
	}
	if value, ok := _c.mutation.Args(); ok {
		_spec.SetField(workitem.FieldArgs, field.TypeJSON, value)
		_node.Args = value
	}
	if value, ok := _c.mutation.Delivery(); ok {
		_spec.SetField(workitem.FieldDelivery, field.TypeJSON, value)
		_node.Delivery = value
	}
	if value, ok := _c.mutation.PartitionKey(); ok {
		_spec.SetField(workitem.FieldPartitionKey, field.TypeString, value)
		_node.PartitionKey = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(workitem.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(workitem.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(workitem.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.RunAfter(); ok {
		_spec.SetField(workitem.FieldRunAfter, field.TypeTime, value)
		_node.RunAfter = value
	}
	if value, ok := _c.mutation.OnComplete(); ok {
		_spec.SetField(workitem.FieldOnComplete, field.TypeString, value)
		_node.OnComplete = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(workitem.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(workitem.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workitem.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WorkItemCreateBulk is the builder for creating many WorkItem entities in bulk.
type WorkItemCreateBulk struct {
	config
	err      error
	builders []*WorkItemCreate
}

// Save creates the WorkItem entities in the database.
func (_c *WorkItemCreateBulk) Save(ctx context.Context) ([]*WorkItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkItemCreateBulk) SaveX(ctx context.Context) []*WorkItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
