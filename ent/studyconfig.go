// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/greenroomlab/greenroom/ent/studyconfig"
	"github.com/greenroomlab/greenroom/pkg/models"
)

// StudyConfig is the model entity for the StudyConfig schema.
type StudyConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owner holds the value of the "owner" field.
	Owner string `json:"owner,omitempty"`
	// RequireAuth holds the value of the "require_auth" field.
	RequireAuth bool `json:"require_auth,omitempty"`
	// Compiled page graph: initial page id plus page map
	Graph models.Graph `json:"graph,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudyConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studyconfig.FieldGraph:
			values[i] = new([]byte)
		case studyconfig.FieldRequireAuth:
			values[i] = new(sql.NullBool)
		case studyconfig.FieldID, studyconfig.FieldOwner:
			values[i] = new(sql.NullString)
		case studyconfig.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudyConfig fields.
func (_m *StudyConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studyconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case studyconfig.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = value.String
			}
		case studyconfig.FieldRequireAuth:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field require_auth", values[i])
			} else if value.Valid {
				_m.RequireAuth = value.Bool
			}
		case studyconfig.FieldGraph:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field graph", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Graph); err != nil {
					return fmt.Errorf("unmarshal field graph: %w", err)
				}
			}
		case studyconfig.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StudyConfig.
// This includes values selected through modifiers, order, etc.
func (_m *StudyConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudyConfig.
// Note that you need to call StudyConfig.Unwrap() before calling this method if this StudyConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudyConfig) Update() *StudyConfigUpdateOne {
	return NewStudyConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudyConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudyConfig) Unwrap() *StudyConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudyConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudyConfig) String() string {
	var builder strings.Builder
	builder.WriteString("StudyConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner=")
	builder.WriteString(_m.Owner)
	builder.WriteString(", ")
	builder.WriteString("require_auth=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequireAuth))
	builder.WriteString(", ")
	builder.WriteString("graph=")
	builder.WriteString(fmt.Sprintf("%v", _m.Graph))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudyConfigs is a parsable slice of StudyConfig.
type StudyConfigs []*StudyConfig
