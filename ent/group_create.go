// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/greenroomlab/greenroom/ent/group"
)

// GroupCreate is the builder for creating a Group entity.
type GroupCreate struct {
	config
	mutation *GroupMutation
	hooks    []Hook
}

// SetConfigID sets the "config_id" field.
func (_c *GroupCreate) SetConfigID(v string) *GroupCreate {
	_c.mutation.SetConfigID(v)
	return _c
}

// SetPoolID sets the "pool_id" field.
func (_c *GroupCreate) SetPoolID(v string) *GroupCreate {
	_c.mutation.SetPoolID(v)
	return _c
}

// SetMemberSessionIds sets the "member_session_ids" field.
func (_c *GroupCreate) SetMemberSessionIds(v []string) *GroupCreate {
	_c.mutation.SetMemberSessionIds(v)
	return _c
}

// SetTreatment sets the "treatment" field.
func (_c *GroupCreate) SetTreatment(v string) *GroupCreate {
	_c.mutation.SetTreatment(v)
	return _c
}

// SetMatchedAt sets the "matched_at" field.
func (_c *GroupCreate) SetMatchedAt(v time.Time) *GroupCreate {
	_c.mutation.SetMatchedAt(v)
	return _c
}

// SetNillableMatchedAt sets the "matched_at" field if the given value is not nil.
func (_c *GroupCreate) SetNillableMatchedAt(v *time.Time) *GroupCreate {
	if v != nil {
		_c.SetMatchedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GroupCreate) SetStatus(v string) *GroupCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GroupCreate) SetNillableStatus(v *string) *GroupCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GroupCreate) SetID(v string) *GroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GroupMutation object of the builder.
func (_c *GroupCreate) Mutation() *GroupMutation {
	return _c.mutation
}

// Save creates the Group in the database.
func (_c *GroupCreate) Save(ctx context.Context) (*Group, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GroupCreate) SaveX(ctx context.Context) *Group {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GroupCreate) defaults() {
	if _, ok := _c.mutation.MatchedAt(); !ok {
		v := group.DefaultMatchedAt()
		_c.mutation.SetMatchedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := group.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GroupCreate) check() error {
	if _, ok := _c.mutation.ConfigID(); !ok {
		return &ValidationError{Name: "config_id", err: errors.New(`ent: missing required field "Group.config_id"`)}
	}
	if _, ok := _c.mutation.PoolID(); !ok {
		return &ValidationError{Name: "pool_id", err: errors.New(`ent: missing required field "Group.pool_id"`)}
	}
	if _, ok := _c.mutation.MemberSessionIds(); !ok {
		return &ValidationError{Name: "member_session_ids", err: errors.New(`ent: missing required field "Group.member_session_ids"`)}
	}
	if _, ok := _c.mutation.Treatment(); !ok {
		return &ValidationError{Name: "treatment", err: errors.New(`ent: missing required field "Group.treatment"`)}
	}
	if _, ok := _c.mutation.MatchedAt(); !ok {
		return &ValidationError{Name: "matched_at", err: errors.New(`ent: missing required field "Group.matched_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Group.status"`)}
	}
	return nil
}

func (_c *GroupCreate) sqlSave(ctx context.Context) (*Group, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Group.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GroupCreate) createSpec() (*Group, *sqlgraph.CreateSpec) {
	var (
		_node = &Group{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(group.Table, sqlgraph.NewFieldSpec(group.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConfigID(); ok {
		_spec.SetField(group.FieldConfigID, field.TypeString, value)
		_node.ConfigID = value
	}
	if value, ok := _c.mutation.PoolID(); ok {
		_spec.SetField(group.FieldPoolID, field.TypeString, value)
		_node.PoolID = value
	}
	if value, ok := _c.mutation.MemberSessionIds(); ok {
		_spec.SetField(group.FieldMemberSessionIds, field.TypeJSON, value)
		_node.MemberSessionIds = value
	}
	if value, ok := _c.mutation.Treatment(); ok {
		_spec.SetField(group.FieldTreatment, field.TypeString, value)
		_node.Treatment = value
	}
	if value, ok := _c.mutation.MatchedAt(); ok {
		_spec.SetField(group.FieldMatchedAt, field.TypeTime, value)
		_node.MatchedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(group.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// GroupCreateBulk is the builder for creating many Group entities in bulk.
type GroupCreateBulk struct {
	config
	err      error
	builders []*GroupCreate
}

// Save creates the Group entities in the database.
func (_c *GroupCreateBulk) Save(ctx context.Context) ([]*Group, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Group, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupMutation)
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
func (_c *GroupCreateBulk) SaveX(ctx context.Context) []*Group {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
