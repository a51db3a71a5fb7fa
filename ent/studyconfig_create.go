// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/greenroomlab/greenroom/ent/studyconfig"
	"github.com/greenroomlab/greenroom/pkg/models"
)

// StudyConfigCreate is the builder for creating a StudyConfig entity.
type StudyConfigCreate struct {
	config
	mutation *StudyConfigMutation
	hooks    []Hook
}

// SetOwner sets the "owner" field.
func (_c *StudyConfigCreate) SetOwner(v string) *StudyConfigCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *StudyConfigCreate) SetNillableOwner(v *string) *StudyConfigCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetRequireAuth sets the "require_auth" field.
func (_c *StudyConfigCreate) SetRequireAuth(v bool) *StudyConfigCreate {
	_c.mutation.SetRequireAuth(v)
	return _c
}

// SetNillableRequireAuth sets the "require_auth" field if the given value is not nil.
func (_c *StudyConfigCreate) SetNillableRequireAuth(v *bool) *StudyConfigCreate {
	if v != nil {
		_c.SetRequireAuth(*v)
	}
	return _c
}

// SetGraph sets the "graph" field.
func (_c *StudyConfigCreate) SetGraph(v models.Graph) *StudyConfigCreate {
	_c.mutation.SetGraph(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudyConfigCreate) SetCreatedAt(v time.Time) *StudyConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudyConfigCreate) SetNillableCreatedAt(v *time.Time) *StudyConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudyConfigCreate) SetID(v string) *StudyConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StudyConfigMutation object of the builder.
func (_c *StudyConfigCreate) Mutation() *StudyConfigMutation {
	return _c.mutation
}

// Save creates the StudyConfig in the database.
func (_c *StudyConfigCreate) Save(ctx context.Context) (*StudyConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyConfigCreate) SaveX(ctx context.Context) *StudyConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyConfigCreate) defaults() {
	if _, ok := _c.mutation.RequireAuth(); !ok {
		v := studyconfig.DefaultRequireAuth
		_c.mutation.SetRequireAuth(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studyconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyConfigCreate) check() error {
	if _, ok := _c.mutation.RequireAuth(); !ok {
		return &ValidationError{Name: "require_auth", err: errors.New(`ent: missing required field "StudyConfig.require_auth"`)}
	}
	if _, ok := _c.mutation.Graph(); !ok {
		return &ValidationError{Name: "graph", err: errors.New(`ent: missing required field "StudyConfig.graph"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudyConfig.created_at"`)}
	}
	return nil
}

func (_c *StudyConfigCreate) sqlSave(ctx context.Context) (*StudyConfig, error) {
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
			return nil, fmt.Errorf("unexpected StudyConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudyConfigCreate) createSpec() (*StudyConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyconfig.Table, sqlgraph.NewFieldSpec(studyconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(studyconfig.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.RequireAuth(); ok {
		_spec.SetField(studyconfig.FieldRequireAuth, field.TypeBool, value)
		_node.RequireAuth = value
	}
	if value, ok := _c.mutation.Graph(); ok {
		_spec.SetField(studyconfig.FieldGraph, field.TypeJSON, value)
		_node.Graph = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studyconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StudyConfigCreateBulk is the builder for creating many StudyConfig entities in bulk.
type StudyConfigCreateBulk struct {
	config
	err      error
	builders []*StudyConfigCreate
}

// Save creates the StudyConfig entities in the database.
func (_c *StudyConfigCreateBulk) Save(ctx context.Context) ([]*StudyConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyConfigMutation)
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
func (_c *StudyConfigCreateBulk) SaveX(ctx context.Context) []*StudyConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
