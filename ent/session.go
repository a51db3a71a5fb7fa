// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/greenroomlab/greenroom/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConfigID holds the value of the "config_id" field.
	ConfigID string `json:"config_id,omitempty"`
	// CurrentPageID holds the value of the "current_page_id" field.
	CurrentPageID string `json:"current_page_id,omitempty"`
	// Unstructured per-config state bag, mutated via dotted paths
	UserState map[string]interface{} `json:"user_state,omitempty"`
	// OAuth user id, set when the participant signed in
	UserID *string `json:"user_id,omitempty"`
	// ProlificPid holds the value of the "prolific_pid" field.
	ProlificPid *string `json:"prolific_pid,omitempty"`
	// ProlificStudyID holds the value of the "prolific_study_id" field.
	ProlificStudyID *string `json:"prolific_study_id,omitempty"`
	// ProlificSessionID holds the value of the "prolific_session_id" field.
	ProlificSessionID *string `json:"prolific_session_id,omitempty"`
	// Set when the participant reaches an end page; blocks re-entry
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldUserState:
			values[i] = new([]byte)
		case session.FieldID, session.FieldConfigID, session.FieldCurrentPageID, session.FieldUserID, session.FieldProlificPid, session.FieldProlificStudyID, session.FieldProlificSessionID:
			values[i] = new(sql.NullString)
		case session.FieldEndedAt, session.FieldCreatedAt, session.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field config_id", values[i])
			} else if value.Valid {
				_m.ConfigID = value.String
			}
		case session.FieldCurrentPageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_page_id", values[i])
			} else if value.Valid {
				_m.CurrentPageID = value.String
			}
		case session.FieldUserState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field user_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UserState); err != nil {
					return fmt.Errorf("unmarshal field user_state: %w", err)
				}
			}
		case session.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case session.FieldProlificPid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prolific_pid", values[i])
			} else if value.Valid {
				_m.ProlificPid = new(string)
				*_m.ProlificPid = value.String
			}
		case session.FieldProlificStudyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prolific_study_id", values[i])
			} else if value.Valid {
				_m.ProlificStudyID = new(string)
				*_m.ProlificStudyID = value.String
			}
		case session.FieldProlificSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prolific_session_id", values[i])
			} else if value.Valid {
				_m.ProlificSessionID = new(string)
				*_m.ProlificSessionID = value.String
			}
		case session.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("config_id=")
	builder.WriteString(_m.ConfigID)
	builder.WriteString(", ")
	builder.WriteString("current_page_id=")
	builder.WriteString(_m.CurrentPageID)
	builder.WriteString(", ")
	builder.WriteString("user_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserState))
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProlificPid; v != nil {
		builder.WriteString("prolific_pid=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProlificStudyID; v != nil {
		builder.WriteString("prolific_study_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProlificSessionID; v != nil {
		builder.WriteString("prolific_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
