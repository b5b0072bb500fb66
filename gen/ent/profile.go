// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careerdock/resume-import/gen/ent/profile"
	"github.com/google/uuid"
)

// Profile is the model entity for the Profile schema.
type Profile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName *string `json:"first_name,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName *string `json:"last_name,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone *string `json:"phone,omitempty"`
	// City holds the value of the "city" field.
	City *string `json:"city,omitempty"`
	// Country holds the value of the "country" field.
	Country *string `json:"country,omitempty"`
	// LinkedinURL holds the value of the "linkedin_url" field.
	LinkedinURL *string `json:"linkedin_url,omitempty"`
	// GithubURL holds the value of the "github_url" field.
	GithubURL *string `json:"github_url,omitempty"`
	// PortfolioURL holds the value of the "portfolio_url" field.
	PortfolioURL *string `json:"portfolio_url,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProfileQuery when eager-loading is set.
	Edges        ProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProfileEdges holds the relations/edges for other nodes in the graph.
type ProfileEdges struct {
	// WorkExperiences holds the value of the work_experiences edge.
	WorkExperiences []*WorkExperience `json:"work_experiences,omitempty"`
	// Educations holds the value of the educations edge.
	Educations []*Education `json:"educations,omitempty"`
	// Skills holds the value of the skills edge.
	Skills []*Skill `json:"skills,omitempty"`
	// Projects holds the value of the projects edge.
	Projects []*Project `json:"projects,omitempty"`
	// Certifications holds the value of the certifications edge.
	Certifications []*Certification `json:"certifications,omitempty"`
	// Achievements holds the value of the achievements edge.
	Achievements []*Achievement `json:"achievements,omitempty"`
	// References holds the value of the references edge.
	References []*Reference `json:"references,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// WorkExperiencesOrErr returns the WorkExperiences value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) WorkExperiencesOrErr() ([]*WorkExperience, error) {
	if e.loadedTypes[0] {
		return e.WorkExperiences, nil
	}
	return nil, &NotLoadedError{edge: "work_experiences"}
}

// EducationsOrErr returns the Educations value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) EducationsOrErr() ([]*Education, error) {
	if e.loadedTypes[1] {
		return e.Educations, nil
	}
	return nil, &NotLoadedError{edge: "educations"}
}

// SkillsOrErr returns the Skills value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) SkillsOrErr() ([]*Skill, error) {
	if e.loadedTypes[2] {
		return e.Skills, nil
	}
	return nil, &NotLoadedError{edge: "skills"}
}

// ProjectsOrErr returns the Projects value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) ProjectsOrErr() ([]*Project, error) {
	if e.loadedTypes[3] {
		return e.Projects, nil
	}
	return nil, &NotLoadedError{edge: "projects"}
}

// CertificationsOrErr returns the Certifications value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) CertificationsOrErr() ([]*Certification, error) {
	if e.loadedTypes[4] {
		return e.Certifications, nil
	}
	return nil, &NotLoadedError{edge: "certifications"}
}

// AchievementsOrErr returns the Achievements value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) AchievementsOrErr() ([]*Achievement, error) {
	if e.loadedTypes[5] {
		return e.Achievements, nil
	}
	return nil, &NotLoadedError{edge: "achievements"}
}

// ReferencesOrErr returns the References value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) ReferencesOrErr() ([]*Reference, error) {
	if e.loadedTypes[6] {
		return e.References, nil
	}
	return nil, &NotLoadedError{edge: "references"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Profile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profile.FieldFirstName, profile.FieldLastName, profile.FieldEmail, profile.FieldPhone, profile.FieldCity, profile.FieldCountry, profile.FieldLinkedinURL, profile.FieldGithubURL, profile.FieldPortfolioURL, profile.FieldSummary:
			values[i] = new(sql.NullString)
		case profile.FieldCreatedAt, profile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case profile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Profile fields.
func (_m *Profile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case profile.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = new(string)
				*_m.FirstName = value.String
			}
		case profile.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = new(string)
				*_m.LastName = value.String
			}
		case profile.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case profile.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case profile.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = new(string)
				*_m.City = value.String
			}
		case profile.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = new(string)
				*_m.Country = value.String
			}
		case profile.FieldLinkedinURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linkedin_url", values[i])
			} else if value.Valid {
				_m.LinkedinURL = new(string)
				*_m.LinkedinURL = value.String
			}
		case profile.FieldGithubURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field github_url", values[i])
			} else if value.Valid {
				_m.GithubURL = new(string)
				*_m.GithubURL = value.String
			}
		case profile.FieldPortfolioURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field portfolio_url", values[i])
			} else if value.Valid {
				_m.PortfolioURL = new(string)
				*_m.PortfolioURL = value.String
			}
		case profile.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case profile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case profile.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Profile.
// This includes values selected through modifiers, order, etc.
func (_m *Profile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkExperiences queries the "work_experiences" edge of the Profile entity.
func (_m *Profile) QueryWorkExperiences() *WorkExperienceQuery {
	return NewProfileClient(_m.config).QueryWorkExperiences(_m)
}

// QueryEducations queries the "educations" edge of the Profile entity.
func (_m *Profile) QueryEducations() *EducationQuery {
	return NewProfileClient(_m.config).QueryEducations(_m)
}

// QuerySkills queries the "skills" edge of the Profile entity.
func (_m *Profile) QuerySkills() *SkillQuery {
	return NewProfileClient(_m.config).QuerySkills(_m)
}

// QueryProjects queries the "projects" edge of the Profile entity.
func (_m *Profile) QueryProjects() *ProjectQuery {
	return NewProfileClient(_m.config).QueryProjects(_m)
}

// QueryCertifications queries the "certifications" edge of the Profile entity.
func (_m *Profile) QueryCertifications() *CertificationQuery {
	return NewProfileClient(_m.config).QueryCertifications(_m)
}

// QueryAchievements queries the "achievements" edge of the Profile entity.
func (_m *Profile) QueryAchievements() *AchievementQuery {
	return NewProfileClient(_m.config).QueryAchievements(_m)
}

// QueryReferences queries the "references" edge of the Profile entity.
func (_m *Profile) QueryReferences() *ReferenceQuery {
	return NewProfileClient(_m.config).QueryReferences(_m)
}

// Update returns a builder for updating this Profile.
// Note that you need to call Profile.Unwrap() before calling this method if this Profile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Profile) Update() *ProfileUpdateOne {
	return NewProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Profile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Profile) Unwrap() *Profile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Profile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Profile) String() string {
	var builder strings.Builder
	builder.WriteString("Profile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.FirstName; v != nil {
		builder.WriteString("first_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastName; v != nil {
		builder.WriteString("last_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.City; v != nil {
		builder.WriteString("city=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Country; v != nil {
		builder.WriteString("country=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LinkedinURL; v != nil {
		builder.WriteString("linkedin_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GithubURL; v != nil {
		builder.WriteString("github_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PortfolioURL; v != nil {
		builder.WriteString("portfolio_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
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

// Profiles is a parsable slice of Profile.
type Profiles []*Profile
