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
	"github.com/greenroomlab/greenroom/ent/predicate"
	"github.com/greenroomlab/greenroom/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *SessionUpdate) SetConfigID(v string) *SessionUpdate {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableConfigID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetCurrentPageID sets the "current_page_id" field.
func (_u *SessionUpdate) SetCurrentPageID(v string) *SessionUpdate {
	_u.mutation.SetCurrentPageID(v)
	return _u
}

// SetNillableCurrentPageID sets the "current_page_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCurrentPageID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetCurrentPageID(*v)
	}
	return _u
}

// SetUserState sets the "user_state" field.
func (_u *SessionUpdate) SetUserState(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetUserState(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdate) SetUserID(v string) *SessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUserID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *SessionUpdate) ClearUserID() *SessionUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetProlificPid sets the "prolific_pid" field.
func (_u *SessionUpdate) SetProlificPid(v string) *SessionUpdate {
	_u.mutation.SetProlificPid(v)
	return _u
}

// SetNillableProlificPid sets the "prolific_pid" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProlificPid(v *string) *SessionUpdate {
	if v != nil {
		_u.SetProlificPid(*v)
	}
	return _u
}

// ClearProlificPid clears the value of the "prolific_pid" field.
func (_u *SessionUpdate) ClearProlificPid() *SessionUpdate {
	_u.mutation.ClearProlificPid()
	return _u
}

// SetProlificStudyID sets the "prolific_study_id" field.
func (_u *SessionUpdate) SetProlificStudyID(v string) *SessionUpdate {
	_u.mutation.SetProlificStudyID(v)
	return _u
}

// SetNillableProlificStudyID sets the "prolific_study_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProlificStudyID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetProlificStudyID(*v)
	}
	return _u
}

// ClearProlificStudyID clears the value of the "prolific_study_id" field.
func (_u *SessionUpdate) ClearProlificStudyID() *SessionUpdate {
	_u.mutation.ClearProlificStudyID()
	return _u
}

// SetProlificSessionID sets the "prolific_session_id" field.
func (_u *SessionUpdate) SetProlificSessionID(v string) *SessionUpdate {
	_u.mutation.SetProlificSessionID(v)
	return _u
}

// SetNillableProlificSessionID sets the "prolific_session_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProlificSessionID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetProlificSessionID(*v)
	}
	return _u
}

// ClearProlificSessionID clears the value of the "prolific_session_id" field.
func (_u *SessionUpdate) ClearProlificSessionID() *SessionUpdate {
	_u.mutation.ClearProlificSessionID()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdate) SetEndedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEndedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdate) ClearEndedAt() *SessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConfigID(); ok {
		_spec.SetField(session.FieldConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentPageID(); ok {
		_spec.SetField(session.FieldCurrentPageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserState(); ok {
		_spec.SetField(session.FieldUserState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(session.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ProlificPid(); ok {
		_spec.SetField(session.FieldProlificPid, field.TypeString, value)
	}
	if _u.mutation.ProlificPidCleared() {
		_spec.ClearField(session.FieldProlificPid, field.TypeString)
	}
	if value, ok := _u.mutation.ProlificStudyID(); ok {
		_spec.SetField(session.FieldProlificStudyID, field.TypeString, value)
	}
	if _u.mutation.ProlificStudyIDCleared() {
		_spec.ClearField(session.FieldProlificStudyID, field.TypeString)
	}
	if value, ok := _u.mutation.ProlificSessionID(); ok {
		_spec.SetField(session.FieldProlificSessionID, field.TypeString, value)
	}
	if _u.mutation.ProlificSessionIDCleared() {
		_spec.ClearField(session.FieldProlificSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetConfigID sets the "config_id" field.
func (_u *SessionUpdateOne) SetConfigID(v string) *SessionUpdateOne {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableConfigID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetCurrentPageID sets the "current_page_id" field.
func (_u *SessionUpdateOne) SetCurrentPageID(v string) *SessionUpdateOne {
	_u.mutation.SetCurrentPageID(v)
	return _u
}

// SetNillableCurrentPageID sets the "current_page_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCurrentPageID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetCurrentPageID(*v)
	}
	return _u
}

// SetUserState sets the "user_state" field.
func (_u *SessionUpdateOne) SetUserState(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetUserState(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdateOne) SetUserID(v string) *SessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUserID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *SessionUpdateOne) ClearUserID() *SessionUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetProlificPid sets the "prolific_pid" field.
func (_u *SessionUpdateOne) SetProlificPid(v string) *SessionUpdateOne {
	_u.mutation.SetProlificPid(v)
	return _u
}

// SetNillableProlificPid sets the "prolific_pid" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProlificPid(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetProlificPid(*v)
	}
	return _u
}

// ClearProlificPid clears the value of the "prolific_pid" field.
func (_u *SessionUpdateOne) ClearProlificPid() *SessionUpdateOne {
	_u.mutation.ClearProlificPid()
	return _u
}

// SetProlificStudyID sets the "prolific_study_id" field.
func (_u *SessionUpdateOne) SetProlificStudyID(v string) *SessionUpdateOne {
	_u.mutation.SetProlificStudyID(v)
	return _u
}

// SetNillableProlificStudyID sets the "prolific_study_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProlificStudyID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetProlificStudyID(*v)
	}
	return _u
}

// ClearProlificStudyID clears the value of the "prolific_study_id" field.
func (_u *SessionUpdateOne) ClearProlificStudyID() *SessionUpdateOne {
	_u.mutation.ClearProlificStudyID()
	return _u
}

// SetProlificSessionID sets the "prolific_session_id" field.
func (_u *SessionUpdateOne) SetProlificSessionID(v string) *SessionUpdateOne {
	_u.mutation.SetProlificSessionID(v)
	return _u
}

// SetNillableProlificSessionID sets the "prolific_session_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProlificSessionID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetProlificSessionID(*v)
	}
	return _u
}

// ClearProlificSessionID clears the value of the "prolific_session_id" field.
func (_u *SessionUpdateOne) ClearProlificSessionID() *SessionUpdateOne {
	_u.mutation.ClearProlificSessionID()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdateOne) SetEndedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEndedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdateOne) ClearEndedAt() *SessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
		_spec.SetField(session.FieldConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentPageID(); ok {
		_spec.SetField(session.FieldCurrentPageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserState(); ok {
		_spec.SetField(session.FieldUserState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(session.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ProlificPid(); ok {
		_spec.SetField(session.FieldProlificPid, field.TypeString, value)
	}
	if _u.mutation.ProlificPidCleared() {
		_spec.ClearField(session.FieldProlificPid, field.TypeString)
	}
	if value, ok := _u.mutation.ProlificStudyID(); ok {
		_spec.SetField(session.FieldProlificStudyID, field.TypeString, value)
	}
	if _u.mutation.ProlificStudyIDCleared() {
		_spec.ClearField(session.FieldProlificStudyID, field.TypeString)
	}
	if value, ok := _u.mutation.ProlificSessionID(); ok {
		_spec.SetField(session.FieldProlificSessionID, field.TypeString, value)
	}
	if _u.mutation.ProlificSessionIDCleared() {
		_spec.ClearField(session.FieldProlificSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
