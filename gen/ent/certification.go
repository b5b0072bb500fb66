// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careerdock/resume-import/gen/ent/certification"
	"github.com/careerdock/resume-import/gen/ent/profile"
	"github.com/google/uuid"
)

// Certification is the model entity for the Certification schema.
type Certification struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// IssuingOrg holds the value of the "issuing_org" field.
	IssuingOrg string `json:"issuing_org,omitempty"`
	// IssueDate holds the value of the "issue_date" field.
	IssueDate *string `json:"issue_date,omitempty"`
	// ExpiryDate holds the value of the "expiry_date" field.
	ExpiryDate *string `json:"expiry_date,omitempty"`
	// CredentialID holds the value of the "credential_id" field.
	CredentialID *string `json:"credential_id,omitempty"`
	// CredentialURL holds the value of the "credential_url" field.
	CredentialURL *string `json:"credential_url,omitempty"`
	// DisplayOrder holds the value of the "display_order" field.
	DisplayOrder int `json:"display_order,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CertificationQuery when eager-loading is set.
	Edges        CertificationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CertificationEdges holds the relations/edges for other nodes in the graph.
type CertificationEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CertificationEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Certification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case certification.FieldDisplayOrder:
			values[i] = new(sql.NullInt64)
		case certification.FieldName, certification.FieldIssuingOrg, certification.FieldIssueDate, certification.FieldExpiryDate, certification.FieldCredentialID, certification.FieldCredentialURL:
			values[i] = new(sql.NullString)
		case certification.FieldCreatedAt, certification.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case certification.FieldID, certification.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Certification fields.
func (_m *Certification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case certification.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case certification.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case certification.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case certification.FieldIssuingOrg:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issuing_org", values[i])
			} else if value.Valid {
				_m.IssuingOrg = value.String
			}
		case certification.FieldIssueDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_date", values[i])
			} else if value.Valid {
				_m.IssueDate = new(string)
				*_m.IssueDate = value.String
			}
		case certification.FieldExpiryDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expiry_date", values[i])
			} else if value.Valid {
				_m.ExpiryDate = new(string)
				*_m.ExpiryDate = value.String
			}
		case certification.FieldCredentialID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credential_id", values[i])
			} else if value.Valid {
				_m.CredentialID = new(string)
				*_m.CredentialID = value.String
			}
		case certification.FieldCredentialURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credential_url", values[i])
			} else if value.Valid {
				_m.CredentialURL = new(string)
				*_m.CredentialURL = value.String
			}
		case certification.FieldDisplayOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_order", values[i])
			} else if value.Valid {
				_m.DisplayOrder = int(value.Int64)
			}
		case certification.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case certification.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Certification.
// This includes values selected through modifiers, order, etc.
func (_m *Certification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the Certification entity.
func (_m *Certification) QueryProfile() *ProfileQuery {
	return NewCertificationClient(_m.config).QueryProfile(_m)
}

// Update returns a builder for updating this Certification.
// Note that you need to call Certification.Unwrap() before calling this method if this Certification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Certification) Update() *CertificationUpdateOne {
	return NewCertificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Certification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Certification) Unwrap() *Certification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Certification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Certification) String() string {
	var builder strings.Builder
	builder.WriteString("Certification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("issuing_org=")
	builder.WriteString(_m.IssuingOrg)
	builder.WriteString(", ")
	if v := _m.IssueDate; v != nil {
		builder.WriteString("issue_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpiryDate; v != nil {
		builder.WriteString("expiry_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CredentialID; v != nil {
		builder.WriteString("credential_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CredentialURL; v != nil {
		builder.WriteString("credential_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("display_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayOrder))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Certifications is a parsable slice of Certification.
type Certifications []*Certification
