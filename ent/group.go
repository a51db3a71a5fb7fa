// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/greenroomlab/greenroom/ent/group"
)

// Group is the model entity for the Group schema.
type Group struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConfigID holds the value of the "config_id" field.
	ConfigID string `json:"config_id,omitempty"`
	// PoolID holds the value of the "pool_id" field.
	PoolID string `json:"pool_id,omitempty"`
	// MemberSessionIds holds the value of the "member_session_ids" field.
	MemberSessionIds []string `json:"member_session_ids,omitempty"`
	// Treatment holds the value of the "treatment" field.
	Treatment string `json:"treatment,omitempty"`
	// MatchedAt holds the value of the "matched_at" field.
	MatchedAt time.Time `json:"matched_at,omitempty"`
	// Status holds the value of the "status" field.
	Status       string `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Group) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case group.FieldMemberSessionIds:
			values[i] = new([]byte)
		case group.FieldID, group.FieldConfigID, group.FieldPoolID, group.FieldTreatment, group.FieldStatus:
			values[i] = new(sql.NullString)
		case group.FieldMatchedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Group fields.
func (_m *Group) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case group.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case group.FieldConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field config_id", values[i])
			} else if value.Valid {
				_m.ConfigID = value.String
			}
		case group.FieldPoolID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pool_id", values[i])
			} else if value.Valid {
				_m.PoolID = value.String
			}
		case group.FieldMemberSessionIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field member_session_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MemberSessionIds); err != nil {
					return fmt.Errorf("unmarshal field member_session_ids: %w", err)
				}
			}
		case group.FieldTreatment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field treatment", values[i])
			} else if value.Valid {
				_m.Treatment = value.String
			}
		case group.FieldMatchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field matched_at", values[i])
			} else if value.Valid {
				_m.MatchedAt = value.Time
			}
		case group.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Group.
// This includes values selected through modifiers, order, etc.
func (_m *Group) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Group.
// Note that you need to call Group.Unwrap() before calling this method if this Group
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Group) Update() *GroupUpdateOne {
	return NewGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Group entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Group) Unwrap() *Group {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Group is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Group) String() string {
	var builder strings.Builder
	builder.WriteString("Group(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("config_id=")
	builder.WriteString(_m.ConfigID)
	builder.WriteString(", ")
	builder.WriteString("pool_id=")
	builder.WriteString(_m.PoolID)
	builder.WriteString(", ")
	builder.WriteString("member_session_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemberSessionIds))
	builder.WriteString(", ")
	builder.WriteString("treatment=")
	builder.WriteString(_m.Treatment)
	builder.WriteString(", ")
	builder.WriteString("matched_at=")
	builder.WriteString(_m.MatchedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// Groups is a parsable slice of Group.
type Groups []*Group
