// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/greenroomlab/greenroom/ent/group"
	"github.com/greenroomlab/greenroom/ent/predicate"
)

// GroupUpdate is the builder for updating Group entities.
type GroupUpdate struct {
	config
	hooks    []Hook
	mutation *GroupMutation
}

// Where appends a list predicates to the GroupUpdate builder.
func (_u *GroupUpdate) Where(ps ...predicate.Group) *GroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *GroupUpdate) SetConfigID(v string) *GroupUpdate {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableConfigID(v *string) *GroupUpdate {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetPoolID sets the "pool_id" field.
func (_u *GroupUpdate) SetPoolID(v string) *GroupUpdate {
	_u.mutation.SetPoolID(v)
	return _u
}

// SetNillablePoolID sets the "pool_id" field if the given value is not nil.
func (_u *GroupUpdate) SetNillablePoolID(v *string) *GroupUpdate {
	if v != nil {
		_u.SetPoolID(*v)
	}
	return _u
}

// SetMemberSessionIds sets the "member_session_ids" field.
func (_u *GroupUpdate) SetMemberSessionIds(v []string) *GroupUpdate {
	_u.mutation.SetMemberSessionIds(v)
	return _u
}

// AppendMemberSessionIds appends value to the "member_session_ids" field.
func (_u *GroupUpdate) AppendMemberSessionIds(v []string) *GroupUpdate {
	_u.mutation.AppendMemberSessionIds(v)
	return _u
}

// SetTreatment sets the "treatment" field.
func (_u *GroupUpdate) SetTreatment(v string) *GroupUpdate {
	_u.mutation.SetTreatment(v)
	return _u
}

// SetNillableTreatment sets the "treatment" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableTreatment(v *string) *GroupUpdate {
	if v != nil {
		_u.SetTreatment(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GroupUpdate) SetStatus(v string) *GroupUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableStatus(v *string) *GroupUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the GroupMutation object of the builder.
func (_u *GroupUpdate) Mutation() *GroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConfigID(); ok {
		_spec.SetField(group.FieldConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoolID(); ok {
		_spec.SetField(group.FieldPoolID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemberSessionIds(); ok {
		_spec.SetField(group.FieldMemberSessionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMemberSessionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, group.FieldMemberSessionIds, value)
		})
	}
	if value, ok := _u.mutation.Treatment(); ok {
		_spec.SetField(group.FieldTreatment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(group.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupUpdateOne is the builder for updating a single Group entity.
type GroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupMutation
}

// SetConfigID sets the "config_id" field.
func (_u *GroupUpdateOne) SetConfigID(v string) *GroupUpdateOne {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableConfigID(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetPoolID sets the "pool_id" field.
func (_u *GroupUpdateOne) SetPoolID(v string) *GroupUpdateOne {
	_u.mutation.SetPoolID(v)
	return _u
}

// SetNillablePoolID sets the "pool_id" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillablePoolID(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetPoolID(*v)
	}
	return _u
}

// SetMemberSessionIds sets the "member_session_ids" field.
func (_u *GroupUpdateOne) SetMemberSessionIds(v []string) *GroupUpdateOne {
	_u.mutation.SetMemberSessionIds(v)
	return _u
}

// AppendMemberSessionIds appends value to the "member_session_ids" field.
func (_u *GroupUpdateOne) AppendMemberSessionIds(v []string) *GroupUpdateOne {
	_u.mutation.AppendMemberSessionIds(v)
	return _u
}

// SetTreatment sets the "treatment" field.
func (_u *GroupUpdateOne) SetTreatment(v string) *GroupUpdateOne {
	_u.mutation.SetTreatment(v)
	return _u
}

// SetNillableTreatment sets the "treatment" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableTreatment(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetTreatment(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GroupUpdateOne) SetStatus(v string) *GroupUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableStatus(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the GroupMutation object of the builder.
func (_u *GroupUpdateOne) Mutation() *GroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the GroupUpdate builder.
func (_u *GroupUpdateOne) Where(ps ...predicate.Group) *GroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupUpdateOne) Select(field string, fields ...string) *GroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Group entity.
func (_u *GroupUpdateOne) Save(ctx context.Context) (*Group, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupUpdateOne) SaveX(ctx context.Context) *Group {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GroupUpdateOne) sqlSave(ctx context.Context) (_node *Group, err error) {
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Group.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, group.FieldID)
		for _, f := range fields {
			if !group.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != group.FieldID {
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
	if value, ok := _u.mutation.ConfigID(); ok {
		_spec.SetField(group.FieldConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoolID(); ok {
		_spec.SetField(group.FieldPoolID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemberSessionIds(); ok {
		_spec.SetField(group.FieldMemberSessionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMemberSessionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, group.FieldMemberSessionIds, value)
		})
	}
	if value, ok := _u.mutation.Treatment(); ok {
		_spec.SetField(group.FieldTreatment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(group.FieldStatus, field.TypeString, value)
	}
	_node = &Group{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
