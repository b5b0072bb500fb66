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
	"github.com/careerdock/resume-import/gen/ent/achievement"
	"github.com/careerdock/resume-import/gen/ent/certification"
	"github.com/careerdock/resume-import/gen/ent/education"
	"github.com/careerdock/resume-import/gen/ent/predicate"
	"github.com/careerdock/resume-import/gen/ent/profile"
	"github.com/careerdock/resume-import/gen/ent/project"
	"github.com/careerdock/resume-import/gen/ent/reference"
	"github.com/careerdock/resume-import/gen/ent/skill"
	"github.com/careerdock/resume-import/gen/ent/workexperience"
	"github.com/google/uuid"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *ProfileUpdate) SetFirstName(v string) *ProfileUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableFirstName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *ProfileUpdate) ClearFirstName() *ProfileUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ProfileUpdate) SetLastName(v string) *ProfileUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *ProfileUpdate) ClearLastName() *ProfileUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdate) SetEmail(v string) *ProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableEmail(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProfileUpdate) ClearEmail() *ProfileUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProfileUpdate) SetPhone(v string) *ProfileUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePhone(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ProfileUpdate) ClearPhone() *ProfileUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetCity sets the "city" field.
func (_u *ProfileUpdate) SetCity(v string) *ProfileUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCity(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ProfileUpdate) ClearCity() *ProfileUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ProfileUpdate) SetCountry(v string) *ProfileUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCountry(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *ProfileUpdate) ClearCountry() *ProfileUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *ProfileUpdate) SetLinkedinURL(v string) *ProfileUpdate {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLinkedinURL(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *ProfileUpdate) ClearLinkedinURL() *ProfileUpdate {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetGithubURL sets the "github_url" field.
func (_u *ProfileUpdate) SetGithubURL(v string) *ProfileUpdate {
	_u.mutation.SetGithubURL(v)
	return _u
}

// SetNillableGithubURL sets the "github_url" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableGithubURL(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetGithubURL(*v)
	}
	return _u
}

// ClearGithubURL clears the value of the "github_url" field.
func (_u *ProfileUpdate) ClearGithubURL() *ProfileUpdate {
	_u.mutation.ClearGithubURL()
	return _u
}

// SetPortfolioURL sets the "portfolio_url" field.
func (_u *ProfileUpdate) SetPortfolioURL(v string) *ProfileUpdate {
	_u.mutation.SetPortfolioURL(v)
	return _u
}

// SetNillablePortfolioURL sets the "portfolio_url" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePortfolioURL(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetPortfolioURL(*v)
	}
	return _u
}

// ClearPortfolioURL clears the value of the "portfolio_url" field.
func (_u *ProfileUpdate) ClearPortfolioURL() *ProfileUpdate {
	_u.mutation.ClearPortfolioURL()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ProfileUpdate) SetSummary(v string) *ProfileUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableSummary(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ProfileUpdate) ClearSummary() *ProfileUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProfileUpdate) SetCreatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCreatedAt(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddWorkExperienceIDs adds the "work_experiences" edge to the WorkExperience entity by IDs.
func (_u *ProfileUpdate) AddWorkExperienceIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddWorkExperienceIDs(ids...)
	return _u
}

// AddWorkExperiences adds the "work_experiences" edges to the WorkExperience entity.
func (_u *ProfileUpdate) AddWorkExperiences(v ...*WorkExperience) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkExperienceIDs(ids...)
}

// AddEducationIDs adds the "educations" edge to the Education entity by IDs.
func (_u *ProfileUpdate) AddEducationIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddEducationIDs(ids...)
	return _u
}

// AddEducations adds the "educations" edges to the Education entity.
func (_u *ProfileUpdate) AddEducations(v ...*Education) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEducationIDs(ids...)
}

// AddSkillIDs adds the "skills" edge to the Skill entity by IDs.
func (_u *ProfileUpdate) AddSkillIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddSkillIDs(ids...)
	return _u
}

// AddSkills adds the "skills" edges to the Skill entity.
func (_u *ProfileUpdate) AddSkills(v ...*Skill) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSkillIDs(ids...)
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *ProfileUpdate) AddProjectIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *ProfileUpdate) AddProjects(v ...*Project) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// AddCertificationIDs adds the "certifications" edge to the Certification entity by IDs.
func (_u *ProfileUpdate) AddCertificationIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddCertificationIDs(ids...)
	return _u
}

// AddCertifications adds the "certifications" edges to the Certification entity.
func (_u *ProfileUpdate) AddCertifications(v ...*Certification) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCertificationIDs(ids...)
}

// AddAchievementIDs adds the "achievements" edge to the Achievement entity by IDs.
func (_u *ProfileUpdate) AddAchievementIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddAchievementIDs(ids...)
	return _u
}

// AddAchievements adds the "achievements" edges to the Achievement entity.
func (_u *ProfileUpdate) AddAchievements(v ...*Achievement) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAchievementIDs(ids...)
}

// AddReferenceIDs adds the "references" edge to the Reference entity by IDs.
func (_u *ProfileUpdate) AddReferenceIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddReferenceIDs(ids...)
	return _u
}

// AddReferences adds the "references" edges to the Reference entity.
func (_u *ProfileUpdate) AddReferences(v ...*Reference) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferenceIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// ClearWorkExperiences clears all "work_experiences" edges to the WorkExperience entity.
func (_u *ProfileUpdate) ClearWorkExperiences() *ProfileUpdate {
	_u.mutation.ClearWorkExperiences()
	return _u
}

// RemoveWorkExperienceIDs removes the "work_experiences" edge to WorkExperience entities by IDs.
func (_u *ProfileUpdate) RemoveWorkExperienceIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveWorkExperienceIDs(ids...)
	return _u
}

// RemoveWorkExperiences removes "work_experiences" edges to WorkExperience entities.
func (_u *ProfileUpdate) RemoveWorkExperiences(v ...*WorkExperience) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkExperienceIDs(ids...)
}

// ClearEducations clears all "educations" edges to the Education entity.
func (_u *ProfileUpdate) ClearEducations() *ProfileUpdate {
	_u.mutation.ClearEducations()
	return _u
}

// RemoveEducationIDs removes the "educations" edge to Education entities by IDs.
func (_u *ProfileUpdate) RemoveEducationIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveEducationIDs(ids...)
	return _u
}

// RemoveEducations removes "educations" edges to Education entities.
func (_u *ProfileUpdate) RemoveEducations(v ...*Education) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEducationIDs(ids...)
}

// ClearSkills clears all "skills" edges to the Skill entity.
func (_u *ProfileUpdate) ClearSkills() *ProfileUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// RemoveSkillIDs removes the "skills" edge to Skill entities by IDs.
func (_u *ProfileUpdate) RemoveSkillIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveSkillIDs(ids...)
	return _u
}

// RemoveSkills removes "skills" edges to Skill entities.
func (_u *ProfileUpdate) RemoveSkills(v ...*Skill) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSkillIDs(ids...)
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *ProfileUpdate) ClearProjects() *ProfileUpdate {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *ProfileUpdate) RemoveProjectIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *ProfileUpdate) RemoveProjects(v ...*Project) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// ClearCertifications clears all "certifications" edges to the Certification entity.
func (_u *ProfileUpdate) ClearCertifications() *ProfileUpdate {
	_u.mutation.ClearCertifications()
	return _u
}

// RemoveCertificationIDs removes the "certifications" edge to Certification entities by IDs.
func (_u *ProfileUpdate) RemoveCertificationIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveCertificationIDs(ids...)
	return _u
}

// RemoveCertifications removes "certifications" edges to Certification entities.
func (_u *ProfileUpdate) RemoveCertifications(v ...*Certification) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCertificationIDs(ids...)
}

// ClearAchievements clears all "achievements" edges to the Achievement entity.
func (_u *ProfileUpdate) ClearAchievements() *ProfileUpdate {
	_u.mutation.ClearAchievements()
	return _u
}

// RemoveAchievementIDs removes the "achievements" edge to Achievement entities by IDs.
func (_u *ProfileUpdate) RemoveAchievementIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveAchievementIDs(ids...)
	return _u
}

// RemoveAchievements removes "achievements" edges to Achievement entities.
func (_u *ProfileUpdate) RemoveAchievements(v ...*Achievement) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAchievementIDs(ids...)
}

// ClearReferences clears all "references" edges to the Reference entity.
func (_u *ProfileUpdate) ClearReferences() *ProfileUpdate {
	_u.mutation.ClearReferences()
	return _u
}

// RemoveReferenceIDs removes the "references" edge to Reference entities by IDs.
func (_u *ProfileUpdate) RemoveReferenceIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveReferenceIDs(ids...)
	return _u
}

// RemoveReferences removes "references" edges to Reference entities.
func (_u *ProfileUpdate) RemoveReferences(v ...*Reference) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferenceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(profile.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(profile.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(profile.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(profile.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(profile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(profile.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(profile.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(profile.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(profile.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(profile.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(profile.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(profile.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(profile.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.GithubURL(); ok {
		_spec.SetField(profile.FieldGithubURL, field.TypeString, value)
	}
	if _u.mutation.GithubURLCleared() {
		_spec.ClearField(profile.FieldGithubURL, field.TypeString)
	}
	if value, ok := _u.mutation.PortfolioURL(); ok {
		_spec.SetField(profile.FieldPortfolioURL, field.TypeString, value)
	}
	if _u.mutation.PortfolioURLCleared() {
		_spec.ClearField(profile.FieldPortfolioURL, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(profile.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(profile.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkExperiencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.WorkExperiencesTable,
			Columns: []string{profile.WorkExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workexperience.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkExperiencesIDs(); len(nodes) > 0 && !_u.mutation.WorkExperiencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.WorkExperiencesTable,
			Columns: []string{profile.WorkExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workexperience.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkExperiencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.WorkExperiencesTable,
			Columns: []string{profile.WorkExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workexperience.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EducationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EducationsTable,
			Columns: []string{profile.EducationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(education.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEducationsIDs(); len(nodes) > 0 && !_u.mutation.EducationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EducationsTable,
			Columns: []string{profile.EducationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(education.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EducationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EducationsTable,
			Columns: []string{profile.EducationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(education.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SkillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillsTable,
			Columns: []string{profile.SkillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSkillsIDs(); len(nodes) > 0 && !_u.mutation.SkillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillsTable,
			Columns: []string{profile.SkillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SkillsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillsTable,
			Columns: []string{profile.SkillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ProjectsTable,
			Columns: []string{profile.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProjectsIDs(); len(nodes) > 0 && !_u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ProjectsTable,
			Columns: []string{profile.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ProjectsTable,
			Columns: []string{profile.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CertificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.CertificationsTable,
			Columns: []string{profile.CertificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(certification.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCertificationsIDs(); len(nodes) > 0 && !_u.mutation.CertificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.CertificationsTable,
			Columns: []string{profile.CertificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(certification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CertificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.CertificationsTable,
			Columns: []string{profile.CertificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(certification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AchievementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AchievementsTable,
			Columns: []string{profile.AchievementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAchievementsIDs(); len(nodes) > 0 && !_u.mutation.AchievementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AchievementsTable,
			Columns: []string{profile.AchievementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AchievementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AchievementsTable,
			Columns: []string{profile.AchievementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReferencesTable,
			Columns: []string{profile.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferencesIDs(); len(nodes) > 0 && !_u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReferencesTable,
			Columns: []string{profile.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReferencesTable,
			Columns: []string{profile.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetFirstName sets the "first_name" field.
func (_u *ProfileUpdateOne) SetFirstName(v string) *ProfileUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableFirstName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *ProfileUpdateOne) ClearFirstName() *ProfileUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ProfileUpdateOne) SetLastName(v string) *ProfileUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *ProfileUpdateOne) ClearLastName() *ProfileUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdateOne) SetEmail(v string) *ProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableEmail(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProfileUpdateOne) ClearEmail() *ProfileUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProfileUpdateOne) SetPhone(v string) *ProfileUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePhone(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ProfileUpdateOne) ClearPhone() *ProfileUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetCity sets the "city" field.
func (_u *ProfileUpdateOne) SetCity(v string) *ProfileUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCity(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ProfileUpdateOne) ClearCity() *ProfileUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ProfileUpdateOne) SetCountry(v string) *ProfileUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCountry(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *ProfileUpdateOne) ClearCountry() *ProfileUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *ProfileUpdateOne) SetLinkedinURL(v string) *ProfileUpdateOne {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLinkedinURL(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *ProfileUpdateOne) ClearLinkedinURL() *ProfileUpdateOne {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetGithubURL sets the "github_url" field.
func (_u *ProfileUpdateOne) SetGithubURL(v string) *ProfileUpdateOne {
	_u.mutation.SetGithubURL(v)
	return _u
}

// SetNillableGithubURL sets the "github_url" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableGithubURL(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetGithubURL(*v)
	}
	return _u
}

// ClearGithubURL clears the value of the "github_url" field.
func (_u *ProfileUpdateOne) ClearGithubURL() *ProfileUpdateOne {
	_u.mutation.ClearGithubURL()
	return _u
}

// SetPortfolioURL sets the "portfolio_url" field.
func (_u *ProfileUpdateOne) SetPortfolioURL(v string) *ProfileUpdateOne {
	_u.mutation.SetPortfolioURL(v)
	return _u
}

// SetNillablePortfolioURL sets the "portfolio_url" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePortfolioURL(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetPortfolioURL(*v)
	}
	return _u
}

// ClearPortfolioURL clears the value of the "portfolio_url" field.
func (_u *ProfileUpdateOne) ClearPortfolioURL() *ProfileUpdateOne {
	_u.mutation.ClearPortfolioURL()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ProfileUpdateOne) SetSummary(v string) *ProfileUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableSummary(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ProfileUpdateOne) ClearSummary() *ProfileUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProfileUpdateOne) SetCreatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCreatedAt(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddWorkExperienceIDs adds the "work_experiences" edge to the WorkExperience entity by IDs.
func (_u *ProfileUpdateOne) AddWorkExperienceIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddWorkExperienceIDs(ids...)
	return _u
}

// AddWorkExperiences adds the "work_experiences" edges to the WorkExperience entity.
func (_u *ProfileUpdateOne) AddWorkExperiences(v ...*WorkExperience) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkExperienceIDs(ids...)
}

// AddEducationIDs adds the "educations" edge to the Education entity by IDs.
func (_u *ProfileUpdateOne) AddEducationIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddEducationIDs(ids...)
	return _u
}

// AddEducations adds the "educations" edges to the Education entity.
func (_u *ProfileUpdateOne) AddEducations(v ...*Education) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEducationIDs(ids...)
}

// AddSkillIDs adds the "skills" edge to the Skill entity by IDs.
func (_u *ProfileUpdateOne) AddSkillIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddSkillIDs(ids...)
	return _u
}

// AddSkills adds the "skills" edges to the Skill entity.
func (_u *ProfileUpdateOne) AddSkills(v ...*Skill) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSkillIDs(ids...)
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *ProfileUpdateOne) AddProjectIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *ProfileUpdateOne) AddProjects(v ...*Project) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// AddCertificationIDs adds the "certifications" edge to the Certification entity by IDs.
func (_u *ProfileUpdateOne) AddCertificationIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddCertificationIDs(ids...)
	return _u
}

// AddCertifications adds the "certifications" edges to the Certification entity.
func (_u *ProfileUpdateOne) AddCertifications(v ...*Certification) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCertificationIDs(ids...)
}

// AddAchievementIDs adds the "achievements" edge to the Achievement entity by IDs.
func (_u *ProfileUpdateOne) AddAchievementIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddAchievementIDs(ids...)
	return _u
}

// AddAchievements adds the "achievements" edges to the Achievement entity.
func (_u *ProfileUpdateOne) AddAchievements(v ...*Achievement) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAchievementIDs(ids...)
}

// AddReferenceIDs adds the "references" edge to the Reference entity by IDs.
func (_u *ProfileUpdateOne) AddReferenceIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddReferenceIDs(ids...)
	return _u
}

// AddReferences adds the "references" edges to the Reference entity.
func (_u *ProfileUpdateOne) AddReferences(v ...*Reference) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferenceIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// ClearWorkExperiences clears all "work_experiences" edges to the WorkExperience entity.
func (_u *ProfileUpdateOne) ClearWorkExperiences() *ProfileUpdateOne {
	_u.mutation.ClearWorkExperiences()
	return _u
}

// RemoveWorkExperienceIDs removes the "work_experiences" edge to WorkExperience entities by IDs.
func (_u *ProfileUpdateOne) RemoveWorkExperienceIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveWorkExperienceIDs(ids...)
	return _u
}

// RemoveWorkExperiences removes "work_experiences" edges to WorkExperience entities.
func (_u *ProfileUpdateOne) RemoveWorkExperiences(v ...*WorkExperience) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkExperienceIDs(ids...)
}

// ClearEducations clears all "educations" edges to the Education entity.
func (_u *ProfileUpdateOne) ClearEducations() *ProfileUpdateOne {
	_u.mutation.ClearEducations()
	return _u
}

// RemoveEducationIDs removes the "educations" edge to Education entities by IDs.
func (_u *ProfileUpdateOne) RemoveEducationIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveEducationIDs(ids...)
	return _u
}

// RemoveEducations removes "educations" edges to Education entities.
func (_u *ProfileUpdateOne) RemoveEducations(v ...*Education) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEducationIDs(ids...)
}

// ClearSkills clears all "skills" edges to the Skill entity.
func (_u *ProfileUpdateOne) ClearSkills() *ProfileUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// RemoveSkillIDs removes the "skills" edge to Skill entities by IDs.
func (_u *ProfileUpdateOne) RemoveSkillIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveSkillIDs(ids...)
	return _u
}

// RemoveSkills removes "skills" edges to Skill entities.
func (_u *ProfileUpdateOne) RemoveSkills(v ...*Skill) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSkillIDs(ids...)
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *ProfileUpdateOne) ClearProjects() *ProfileUpdateOne {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *ProfileUpdateOne) RemoveProjectIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *ProfileUpdateOne) RemoveProjects(v ...*Project) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// ClearCertifications clears all "certifications" edges to the Certification entity.
func (_u *ProfileUpdateOne) ClearCertifications() *ProfileUpdateOne {
	_u.mutation.ClearCertifications()
	return _u
}

// RemoveCertificationIDs removes the "certifications" edge to Certification entities by IDs.
func (_u *ProfileUpdateOne) RemoveCertificationIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveCertificationIDs(ids...)
	return _u
}

// RemoveCertifications removes "certifications" edges to Certification entities.
func (_u *ProfileUpdateOne) RemoveCertifications(v ...*Certification) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCertificationIDs(ids...)
}

// ClearAchievements clears all "achievements" edges to the Achievement entity.
func (_u *ProfileUpdateOne) ClearAchievements() *ProfileUpdateOne {
	_u.mutation.ClearAchievements()
	return _u
}

// RemoveAchievementIDs removes the "achievements" edge to Achievement entities by IDs.
func (_u *ProfileUpdateOne) RemoveAchievementIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveAchievementIDs(ids...)
	return _u
}

// RemoveAchievements removes "achievements" edges to Achievement entities.
func (_u *ProfileUpdateOne) RemoveAchievements(v ...*Achievement) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAchievementIDs(ids...)
}

// ClearReferences clears all "references" edges to the Reference entity.
func (_u *ProfileUpdateOne) ClearReferences() *ProfileUpdateOne {
	_u.mutation.ClearReferences()
	return _u
}

// RemoveReferenceIDs removes the "references" edge to Reference entities by IDs.
func (_u *ProfileUpdateOne) RemoveReferenceIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveReferenceIDs(ids...)
	return _u
}

// RemoveReferences removes "references" edges to Reference entities.
func (_u *ProfileUpdateOne) RemoveReferences(v ...*Reference) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferenceIDs(ids...)
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(profile.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(profile.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(profile.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(profile.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(profile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(profile.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(profile.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(profile.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(profile.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(profile.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(profile.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(profile.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(profile.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.GithubURL(); ok {
		_spec.SetField(profile.FieldGithubURL, field.TypeString, value)
	}
	if _u.mutation.GithubURLCleared() {
		_spec.ClearField(profile.FieldGithubURL, field.TypeString)
	}
	if value, ok := _u.mutation.PortfolioURL(); ok {
		_spec.SetField(profile.FieldPortfolioURL, field.TypeString, value)
	}
	if _u.mutation.PortfolioURLCleared() {
		_spec.ClearField(profile.FieldPortfolioURL, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(profile.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(profile.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkExperiencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.WorkExperiencesTable,
			Columns: []string{profile.WorkExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workexperience.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkExperiencesIDs(); len(nodes) > 0 && !_u.mutation.WorkExperiencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.WorkExperiencesTable,
			Columns: []string{profile.WorkExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workexperience.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkExperiencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.WorkExperiencesTable,
			Columns: []string{profile.WorkExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workexperience.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EducationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EducationsTable,
			Columns: []string{profile.EducationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(education.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEducationsIDs(); len(nodes) > 0 && !_u.mutation.EducationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EducationsTable,
			Columns: []string{profile.EducationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(education.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EducationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EducationsTable,
			Columns: []string{profile.EducationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(education.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SkillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillsTable,
			Columns: []string{profile.SkillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSkillsIDs(); len(nodes) > 0 && !_u.mutation.SkillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillsTable,
			Columns: []string{profile.SkillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SkillsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillsTable,
			Columns: []string{profile.SkillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ProjectsTable,
			Columns: []string{profile.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProjectsIDs(); len(nodes) > 0 && !_u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ProjectsTable,
			Columns: []string{profile.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ProjectsTable,
			Columns: []string{profile.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CertificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.CertificationsTable,
			Columns: []string{profile.CertificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(certification.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCertificationsIDs(); len(nodes) > 0 && !_u.mutation.CertificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.CertificationsTable,
			Columns: []string{profile.CertificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(certification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CertificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.CertificationsTable,
			Columns: []string{profile.CertificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(certification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AchievementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AchievementsTable,
			Columns: []string{profile.AchievementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAchievementsIDs(); len(nodes) > 0 && !_u.mutation.AchievementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AchievementsTable,
			Columns: []string{profile.AchievementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AchievementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AchievementsTable,
			Columns: []string{profile.AchievementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReferencesTable,
			Columns: []string{profile.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferencesIDs(); len(nodes) > 0 && !_u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReferencesTable,
			Columns: []string{profile.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReferencesTable,
			Columns: []string{profile.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
