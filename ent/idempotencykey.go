// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/greenroomlab/greenroom/ent/idempotencykey"
)

// IdempotencyKey is the model entity for the IdempotencyKey schema.
type IdempotencyKey struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IdempotencyKey) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case idempotencykey.FieldID:
			values[i] = new(sql.NullString)
		case idempotencykey.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IdempotencyKey fields.
func (_m *IdempotencyKey) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case idempotencykey.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case idempotencykey.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IdempotencyKey.
// This includes values selected through modifiers, order, etc.
func (_m *IdempotencyKey) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IdempotencyKey.
// Note that you need to call IdempotencyKey.Unwrap() before calling this method if this IdempotencyKey
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IdempotencyKey) Update() *IdempotencyKeyUpdateOne {
	return NewIdempotencyKeyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IdempotencyKey entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IdempotencyKey) Unwrap() *IdempotencyKey {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IdempotencyKey is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IdempotencyKey) String() string {
	var builder strings.Builder
	builder.WriteString("IdempotencyKey(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IdempotencyKeys is a parsable slice of IdempotencyKey.
type IdempotencyKeys []*IdempotencyKey
