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
	"github.com/greenroomlab/greenroom/ent/event"
	"github.com/greenroomlab/greenroom/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *EventUpdate) SetType(v string) *EventUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableType(v *string) *EventUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetComponentType sets the "component_type" field.
func (_u *EventUpdate) SetComponentType(v string) *EventUpdate {
	_u.mutation.SetComponentType(v)
	return _u
}

// SetNillableComponentType sets the "component_type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableComponentType(v *string) *EventUpdate {
	if v != nil {
		_u.SetComponentType(*v)
	}
	return _u
}

// ClearComponentType clears the value of the "component_type" field.
func (_u *EventUpdate) ClearComponentType() *EventUpdate {
	_u.mutation.ClearComponentType()
	return _u
}

// SetComponentID sets the "component_id" field.
func (_u *EventUpdate) SetComponentID(v string) *EventUpdate {
	_u.mutation.SetComponentID(v)
	return _u
}

// SetNillableComponentID sets the "component_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableComponentID(v *string) *EventUpdate {
	if v != nil {
		_u.SetComponentID(*v)
	}
	return _u
}

// ClearComponentID clears the value of the "component_id" field.
func (_u *EventUpdate) ClearComponentID() *EventUpdate {
	_u.mutation.ClearComponentID()
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *EventUpdate) SetPageID(v string) *EventUpdate {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillablePageID(v *string) *EventUpdate {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// ClearPageID clears the value of the "page_id" field.
func (_u *EventUpdate) ClearPageID() *EventUpdate {
	_u.mutation.ClearPageID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *EventUpdate) SetSessionID(v string) *EventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSessionID(v *string) *EventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *EventUpdate) SetConfigID(v string) *EventUpdate {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableConfigID(v *string) *EventUpdate {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *EventUpdate) SetData(v map[string]interface{}) *EventUpdate {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *EventUpdate) ClearData() *EventUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *EventUpdate) SetTimestamp(v time.Time) *EventUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *EventUpdate) SetNillableTimestamp(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// ClearTimestamp clears the value of the "timestamp" field.
func (_u *EventUpdate) ClearTimestamp() *EventUpdate {
	_u.mutation.ClearTimestamp()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *EventUpdate) SetIdempotencyKey(v string) *EventUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *EventUpdate) SetNillableIdempotencyKey(v *string) *EventUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *EventUpdate) ClearIdempotencyKey() *EventUpdate {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(event.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ComponentType(); ok {
		_spec.SetField(event.FieldComponentType, field.TypeString, value)
	}
	if _u.mutation.ComponentTypeCleared() {
		_spec.ClearField(event.FieldComponentType, field.TypeString)
	}
	if value, ok := _u.mutation.ComponentID(); ok {
		_spec.SetField(event.FieldComponentID, field.TypeString, value)
	}
	if _u.mutation.ComponentIDCleared() {
		_spec.ClearField(event.FieldComponentID, field.TypeString)
	}
	if value, ok := _u.mutation.PageID(); ok {
		_spec.SetField(event.FieldPageID, field.TypeString, value)
	}
	if _u.mutation.PageIDCleared() {
		_spec.ClearField(event.FieldPageID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(event.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigID(); ok {
		_spec.SetField(event.FieldConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(event.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(event.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(event.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.TimestampCleared() {
		_spec.ClearField(event.FieldTimestamp, field.TypeTime)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(event.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(event.FieldIdempotencyKey, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetType sets the "type" field.
func (_u *EventUpdateOne) SetType(v string) *EventUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableType(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetComponentType sets the "component_type" field.
func (_u *EventUpdateOne) SetComponentType(v string) *EventUpdateOne {
	_u.mutation.SetComponentType(v)
	return _u
}

// SetNillableComponentType sets the "component_type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableComponentType(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetComponentType(*v)
	}
	return _u
}

// ClearComponentType clears the value of the "component_type" field.
func (_u *EventUpdateOne) ClearComponentType() *EventUpdateOne {
	_u.mutation.ClearComponentType()
	return _u
}

// SetComponentID sets the "component_id" field.
func (_u *EventUpdateOne) SetComponentID(v string) *EventUpdateOne {
	_u.mutation.SetComponentID(v)
	return _u
}

// SetNillableComponentID sets the "component_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableComponentID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetComponentID(*v)
	}
	return _u
}

// ClearComponentID clears the value of the "component_id" field.
func (_u *EventUpdateOne) ClearComponentID() *EventUpdateOne {
	_u.mutation.ClearComponentID()
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *EventUpdateOne) SetPageID(v string) *EventUpdateOne {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillablePageID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// ClearPageID clears the value of the "page_id" field.
func (_u *EventUpdateOne) ClearPageID() *EventUpdateOne {
	_u.mutation.ClearPageID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *EventUpdateOne) SetSessionID(v string) *EventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSessionID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *EventUpdateOne) SetConfigID(v string) *EventUpdateOne {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableConfigID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *EventUpdateOne) SetData(v map[string]interface{}) *EventUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *EventUpdateOne) ClearData() *EventUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *EventUpdateOne) SetTimestamp(v time.Time) *EventUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableTimestamp(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// ClearTimestamp clears the value of the "timestamp" field.
func (_u *EventUpdateOne) ClearTimestamp() *EventUpdateOne {
	_u.mutation.ClearTimestamp()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *EventUpdateOne) SetIdempotencyKey(v string) *EventUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableIdempotencyKey(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *EventUpdateOne) ClearIdempotencyKey() *EventUpdateOne {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(event.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ComponentType(); ok {
		_spec.SetField(event.FieldComponentType, field.TypeString, value)
	}
	if _u.mutation.ComponentTypeCleared() {
		_spec.ClearField(event.FieldComponentType, field.TypeString)
	}
	if value, ok := _u.mutation.ComponentID(); ok {
		_spec.SetField(event.FieldComponentID, field.TypeString, value)
	}
	if _u.mutation.ComponentIDCleared() {
		_spec.ClearField(event.FieldComponentID, field.TypeString)
	}
	if value, ok := _u.mutation.PageID(); ok {
		_spec.SetField(event.FieldPageID, field.TypeString, value)
	}
	if _u.mutation.PageIDCleared() {
		_spec.ClearField(event.FieldPageID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(event.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigID(); ok {
		_spec.SetField(event.FieldConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(event.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(event.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(event.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.TimestampCleared() {
		_spec.ClearField(event.FieldTimestamp, field.TypeTime)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(event.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(event.FieldIdempotencyKey, field.TypeString)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
