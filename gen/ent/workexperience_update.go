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
	"github.com/careerdock/resume-import/gen/ent/predicate"
	"github.com/careerdock/resume-import/gen/ent/profile"
	"github.com/careerdock/resume-import/gen/ent/workexperience"
	"github.com/google/uuid"
)

// WorkExperienceUpdate is the builder for updating WorkExperience entities.
type WorkExperienceUpdate struct {
	config
	hooks    []Hook
	mutation *WorkExperienceMutation
}

// Where appends a list predicates to the WorkExperienceUpdate builder.
func (_u *WorkExperienceUpdate) Where(ps ...predicate.WorkExperience) *WorkExperienceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *WorkExperienceUpdate) SetProfileID(v uuid.UUID) *WorkExperienceUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *WorkExperienceUpdate) SetNillableProfileID(v *uuid.UUID) *WorkExperienceUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *WorkExperienceUpdate) SetJobTitle(v string) *WorkExperienceUpdate {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *WorkExperienceUpdate) SetNillableJobTitle(v *string) *WorkExperienceUpdate {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *WorkExperienceUpdate) SetCompany(v string) *WorkExperienceUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *WorkExperienceUpdate) SetNillableCompany(v *string) *WorkExperienceUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *WorkExperienceUpdate) SetLocation(v string) *WorkExperienceUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *WorkExperienceUpdate) SetNillableLocation(v *string) *WorkExperienceUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *WorkExperienceUpdate) ClearLocation() *WorkExperienceUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *WorkExperienceUpdate) SetStartDate(v string) *WorkExperienceUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *WorkExperienceUpdate) SetNillableStartDate(v *string) *WorkExperienceUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *WorkExperienceUpdate) SetEndDate(v string) *WorkExperienceUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *WorkExperienceUpdate) SetNillableEndDate(v *string) *WorkExperienceUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *WorkExperienceUpdate) ClearEndDate() *WorkExperienceUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *WorkExperienceUpdate) SetIsCurrent(v bool) *WorkExperienceUpdate {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *WorkExperienceUpdate) SetNillableIsCurrent(v *bool) *WorkExperienceUpdate {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorkExperienceUpdate) SetDescription(v string) *WorkExperienceUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorkExperienceUpdate) SetNillableDescription(v *string) *WorkExperienceUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WorkExperienceUpdate) ClearDescription() *WorkExperienceUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *WorkExperienceUpdate) SetDisplayOrder(v int) *WorkExperienceUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *WorkExperienceUpdate) SetNillableDisplayOrder(v *int) *WorkExperienceUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *WorkExperienceUpdate) AddDisplayOrder(v int) *WorkExperienceUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkExperienceUpdate) SetCreatedAt(v time.Time) *WorkExperienceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkExperienceUpdate) SetNillableCreatedAt(v *time.Time) *WorkExperienceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkExperienceUpdate) SetUpdatedAt(v time.Time) *WorkExperienceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *WorkExperienceUpdate) SetProfile(v *Profile) *WorkExperienceUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the WorkExperienceMutation object of the builder.
func (_u *WorkExperienceUpdate) Mutation() *WorkExperienceMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *WorkExperienceUpdate) ClearProfile() *WorkExperienceUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkExperienceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkExperienceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkExperienceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkExperienceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkExperienceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workexperience.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkExperienceUpdate) check() error {
	if v, ok := _u.mutation.JobTitle(); ok {
		if err := workexperience.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "WorkExperience.job_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Company(); ok {
		if err := workexperience.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`ent: validator failed for field "WorkExperience.company": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartDate(); ok {
		if err := workexperience.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "WorkExperience.start_date": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkExperience.profile"`)
	}
	return nil
}

func (_u *WorkExperienceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workexperience.Table, workexperience.Columns, sqlgraph.NewFieldSpec(workexperience.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(workexperience.FieldJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(workexperience.FieldCompany, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(workexperience.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(workexperience.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(workexperience.FieldStartDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(workexperience.FieldEndDate, field.TypeString, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(workexperience.FieldEndDate, field.TypeString)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(workexperience.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(workexperience.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(workexperience.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(workexperience.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(workexperience.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workexperience.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workexperience.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workexperience.ProfileTable,
			Columns: []string{workexperience.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workexperience.ProfileTable,
			Columns: []string{workexperience.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workexperience.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkExperienceUpdateOne is the builder for updating a single WorkExperience entity.
type WorkExperienceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkExperienceMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *WorkExperienceUpdateOne) SetProfileID(v uuid.UUID) *WorkExperienceUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *WorkExperienceUpdateOne) SetNillableProfileID(v *uuid.UUID) *WorkExperienceUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *WorkExperienceUpdateOne) SetJobTitle(v string) *WorkExperienceUpdateOne {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *WorkExperienceUpdateOne) SetNillableJobTitle(v *string) *WorkExperienceUpdateOne {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *WorkExperienceUpdateOne) SetCompany(v string) *WorkExperienceUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *WorkExperienceUpdateOne) SetNillableCompany(v *string) *WorkExperienceUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *WorkExperienceUpdateOne) SetLocation(v string) *WorkExperienceUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *WorkExperienceUpdateOne) SetNillableLocation(v *string) *WorkExperienceUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *WorkExperienceUpdateOne) ClearLocation() *WorkExperienceUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *WorkExperienceUpdateOne) SetStartDate(v string) *WorkExperienceUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *WorkExperienceUpdateOne) SetNillableStartDate(v *string) *WorkExperienceUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *WorkExperienceUpdateOne) SetEndDate(v string) *WorkExperienceUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *WorkExperienceUpdateOne) SetNillableEndDate(v *string) *WorkExperienceUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *WorkExperienceUpdateOne) ClearEndDate() *WorkExperienceUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *WorkExperienceUpdateOne) SetIsCurrent(v bool) *WorkExperienceUpdateOne {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *WorkExperienceUpdateOne) SetNillableIsCurrent(v *bool) *WorkExperienceUpdateOne {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorkExperienceUpdateOne) SetDescription(v string) *WorkExperienceUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorkExperienceUpdateOne) SetNillableDescription(v *string) *WorkExperienceUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WorkExperienceUpdateOne) ClearDescription() *WorkExperienceUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *WorkExperienceUpdateOne) SetDisplayOrder(v int) *WorkExperienceUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *WorkExperienceUpdateOne) SetNillableDisplayOrder(v *int) *WorkExperienceUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *WorkExperienceUpdateOne) AddDisplayOrder(v int) *WorkExperienceUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkExperienceUpdateOne) SetCreatedAt(v time.Time) *WorkExperienceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkExperienceUpdateOne) SetNillableCreatedAt(v *time.Time) *WorkExperienceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkExperienceUpdateOne) SetUpdatedAt(v time.Time) *WorkExperienceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *WorkExperienceUpdateOne) SetProfile(v *Profile) *WorkExperienceUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the WorkExperienceMutation object of the builder.
func (_u *WorkExperienceUpdateOne) Mutation() *WorkExperienceMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *WorkExperienceUpdateOne) ClearProfile() *WorkExperienceUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the WorkExperienceUpdate builder.
func (_u *WorkExperienceUpdateOne) Where(ps ...predicate.WorkExperience) *WorkExperienceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkExperienceUpdateOne) Select(field string, fields ...string) *WorkExperienceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkExperience entity.
func (_u *WorkExperienceUpdateOne) Save(ctx context.Context) (*WorkExperience, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkExperienceUpdateOne) SaveX(ctx context.Context) *WorkExperience {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkExperienceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkExperienceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkExperienceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workexperience.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkExperienceUpdateOne) check() error {
	if v, ok := _u.mutation.JobTitle(); ok {
		if err := workexperience.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "WorkExperience.job_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Company(); ok {
		if err := workexperience.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`ent: validator failed for field "WorkExperience.company": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartDate(); ok {
		if err := workexperience.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "WorkExperience.start_date": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkExperience.profile"`)
	}
	return nil
}

func (_u *WorkExperienceUpdateOne) sqlSave(ctx context.Context) (_node *WorkExperience, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workexperience.Table, workexperience.Columns, sqlgraph.NewFieldSpec(workexperience.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkExperience.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workexperience.FieldID)
		for _, f := range fields {
			if !workexperience.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workexperience.FieldID {
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
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(workexperience.FieldJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(workexperience.FieldCompany, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(workexperience.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(workexperience.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(workexperience.FieldStartDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(workexperience.FieldEndDate, field.TypeString, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(workexperience.FieldEndDate, field.TypeString)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(workexperience.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(workexperience.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(workexperience.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(workexperience.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(workexperience.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workexperience.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workexperience.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workexperience.ProfileTable,
			Columns: []string{workexperience.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workexperience.ProfileTable,
			Columns: []string{workexperience.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkExperience{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workexperience.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
