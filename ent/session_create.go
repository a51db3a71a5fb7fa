// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/greenroomlab/greenroom/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetConfigID sets the "config_id" field.
func (_c *SessionCreate) SetConfigID(v string) *SessionCreate {
	_c.mutation.SetConfigID(v)
	return _c
}

// SetCurrentPageID sets the "current_page_id" field.
func (_c *SessionCreate) SetCurrentPageID(v string) *SessionCreate {
	_c.mutation.SetCurrentPageID(v)
	return _c
}

// SetUserState sets the "user_state" field.
func (_c *SessionCreate) SetUserState(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetUserState(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SessionCreate) SetUserID(v string) *SessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUserID(v *string) *SessionCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetProlificPid sets the "prolific_pid" field.
func (_c *SessionCreate) SetProlificPid(v string) *SessionCreate {
	_c.mutation.SetProlificPid(v)
	return _c
}

// SetNillableProlificPid sets the "prolific_pid" field if the given value is not nil.
func (_c *SessionCreate) SetNillableProlificPid(v *string) *SessionCreate {
	if v != nil {
		_c.SetProlificPid(*v)
	}
	return _c
}

// SetProlificStudyID sets the "prolific_study_id" field.
func (_c *SessionCreate) SetProlificStudyID(v string) *SessionCreate {
	_c.mutation.SetProlificStudyID(v)
	return _c
}

// SetNillableProlificStudyID sets the "prolific_study_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableProlificStudyID(v *string) *SessionCreate {
	if v != nil {
		_c.SetProlificStudyID(*v)
	}
	return _c
}

// SetProlificSessionID sets the "prolific_session_id" field.
func (_c *SessionCreate) SetProlificSessionID(v string) *SessionCreate {
	_c.mutation.SetProlificSessionID(v)
	return _c
}

// SetNillableProlificSessionID sets the "prolific_session_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableProlificSessionID(v *string) *SessionCreate {
	if v != nil {
		_c.SetProlificSessionID(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *SessionCreate) SetEndedAt(v time.Time) *SessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableEndedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.ConfigID(); !ok {
		return &ValidationError{Name: "config_id", err: errors.New(`ent: missing required field "Session.config_id"`)}
	}
	if _, ok := _c.mutation.CurrentPageID(); !ok {
		return &ValidationError{Name: "current_page_id", err: errors.New(`ent: missing required field "Session.current_page_id"`)}
	}
	if _, ok := _c.mutation.UserState(); !ok {
		return &ValidationError{Name: "user_state", err: errors.New(`ent: missing required field "Session.user_state"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConfigID(); ok {
		_spec.SetField(session.FieldConfigID, field.TypeString, value)
		_node.ConfigID = value
	}
	if value, ok := _c.mutation.CurrentPageID(); ok {
		_spec.SetField(session.FieldCurrentPageID, field.TypeString, value)
		_node.CurrentPageID = value
	}
	if value, ok := _c.mutation.UserState(); ok {
		_spec.SetField(session.FieldUserState, field.TypeJSON, value)
		_node.UserState = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.ProlificPid(); ok {
		_spec.SetField(session.FieldProlificPid, field.TypeString, value)
		_node.ProlificPid = &value
	}
	if value, ok := _c.mutation.ProlificStudyID(); ok {
		_spec.SetField(session.FieldProlificStudyID, field.TypeString, value)
		_node.ProlificStudyID = &value
	}
	if value, ok := _c.mutation.ProlificSessionID(); ok {
		_spec.SetField(session.FieldProlificSessionID, field.TypeString, value)
		_node.ProlificSessionID = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
