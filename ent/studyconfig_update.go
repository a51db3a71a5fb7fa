// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/greenroomlab/greenroom/ent/predicate"
	"github.com/greenroomlab/greenroom/ent/studyconfig"
	"github.com/greenroomlab/greenroom/pkg/models"
)

// StudyConfigUpdate is the builder for updating StudyConfig entities.
type StudyConfigUpdate struct {
	config
	hooks    []Hook
	mutation *StudyConfigMutation
}

// Where appends a list predicates to the StudyConfigUpdate builder.
func (_u *StudyConfigUpdate) Where(ps ...predicate.StudyConfig) *StudyConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *StudyConfigUpdate) SetOwner(v string) *StudyConfigUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *StudyConfigUpdate) SetNillableOwner(v *string) *StudyConfigUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *StudyConfigUpdate) ClearOwner() *StudyConfigUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// SetRequireAuth sets the "require_auth" field.
func (_u *StudyConfigUpdate) SetRequireAuth(v bool) *StudyConfigUpdate {
	_u.mutation.SetRequireAuth(v)
	return _u
}

// SetNillableRequireAuth sets the "require_auth" field if the given value is not nil.
func (_u *StudyConfigUpdate) SetNillableRequireAuth(v *bool) *StudyConfigUpdate {
	if v != nil {
		_u.SetRequireAuth(*v)
	}
	return _u
}

// SetGraph sets the "graph" field.
func (_u *StudyConfigUpdate) SetGraph(v models.Graph) *StudyConfigUpdate {
	_u.mutation.SetGraph(v)
	return _u
}

// SetNillableGraph sets the "graph" field if the given value is not nil.
func (_u *StudyConfigUpdate) SetNillableGraph(v *models.Graph) *StudyConfigUpdate {
	if v != nil {
		_u.SetGraph(*v)
	}
	return _u
}

// Mutation returns the StudyConfigMutation object of the builder.
func (_u *StudyConfigUpdate) Mutation() *StudyConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyConfigUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StudyConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(studyconfig.Table, studyconfig.Columns, sqlgraph.NewFieldSpec(studyconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(studyconfig.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(studyconfig.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.RequireAuth(); ok {
		_spec.SetField(studyconfig.FieldRequireAuth, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Graph(); ok {
		_spec.SetField(studyconfig.FieldGraph, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyConfigUpdateOne is the builder for updating a single StudyConfig entity.
type StudyConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyConfigMutation
}

// SetOwner sets the "owner" field.
func (_u *StudyConfigUpdateOne) SetOwner(v string) *StudyConfigUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *StudyConfigUpdateOne) SetNillableOwner(v *string) *StudyConfigUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *StudyConfigUpdateOne) ClearOwner() *StudyConfigUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// SetRequireAuth sets the "require_auth" field.
func (_u *StudyConfigUpdateOne) SetRequireAuth(v bool) *StudyConfigUpdateOne {
	_u.mutation.SetRequireAuth(v)
	return _u
}

// SetNillableRequireAuth sets the "require_auth" field if the given value is not nil.
func (_u *StudyConfigUpdateOne) SetNillableRequireAuth(v *bool) *StudyConfigUpdateOne {
	if v != nil {
		_u.SetRequireAuth(*v)
	}
	return _u
}

// SetGraph sets the "graph" field.
func (_u *StudyConfigUpdateOne) SetGraph(v models.Graph) *StudyConfigUpdateOne {
	_u.mutation.SetGraph(v)
	return _u
}

// SetNillableGraph sets the "graph" field if the given value is not nil.
func (_u *StudyConfigUpdateOne) SetNillableGraph(v *models.Graph) *StudyConfigUpdateOne {
	if v != nil {
		_u.SetGraph(*v)
	}
	return _u
}

// Mutation returns the StudyConfigMutation object of the builder.
func (_u *StudyConfigUpdateOne) Mutation() *StudyConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudyConfigUpdate builder.
func (_u *StudyConfigUpdateOne) Where(ps ...predicate.StudyConfig) *StudyConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyConfigUpdateOne) Select(field string, fields ...string) *StudyConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyConfig entity.
func (_u *StudyConfigUpdateOne) Save(ctx context.Context) (*StudyConfig, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyConfigUpdateOne) SaveX(ctx context.Context) *StudyConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StudyConfigUpdateOne) sqlSave(ctx context.Context) (_node *StudyConfig, err error) {
	_spec := sqlgraph.NewUpdateSpec(studyconfig.Table, studyconfig.Columns, sqlgraph.NewFieldSpec(studyconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyconfig.FieldID)
		for _, f := range fields {
			if !studyconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyconfig.FieldID {
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
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(studyconfig.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(studyconfig.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.RequireAuth(); ok {
		_spec.SetField(studyconfig.FieldRequireAuth, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Graph(); ok {
		_spec.SetField(studyconfig.FieldGraph, field.TypeJSON, value)
	}
	_node = &StudyConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
