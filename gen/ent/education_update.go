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
	"github.com/careerdock/resume-import/gen/ent/education"
	"github.com/careerdock/resume-import/gen/ent/predicate"
	"github.com/careerdock/resume-import/gen/ent/profile"
	"github.com/google/uuid"
)

// EducationUpdate is the builder for updating Education entities.
type EducationUpdate struct {
	config
	hooks    []Hook
	mutation *EducationMutation
}

// Where appends a list predicates to the EducationUpdate builder.
func (_u *EducationUpdate) Where(ps ...predicate.Education) *EducationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *EducationUpdate) SetProfileID(v uuid.UUID) *EducationUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *EducationUpdate) SetNillableProfileID(v *uuid.UUID) *EducationUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetDegree sets the "degree" field.
func (_u *EducationUpdate) SetDegree(v string) *EducationUpdate {
	_u.mutation.SetDegree(v)
	return _u
}

// SetNillableDegree sets the "degree" field if the given value is not nil.
func (_u *EducationUpdate) SetNillableDegree(v *string) *EducationUpdate {
	if v != nil {
		_u.SetDegree(*v)
	}
	return _u
}

// SetInstitution sets the "institution" field.
func (_u *EducationUpdate) SetInstitution(v string) *EducationUpdate {
	_u.mutation.SetInstitution(v)
	return _u
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (_u *EducationUpdate) SetNillableInstitution(v *string) *EducationUpdate {
	if v != nil {
		_u.SetInstitution(*v)
	}
	return _u
}

// SetFieldOfStudy sets the "field_of_study" field.
func (_u *EducationUpdate) SetFieldOfStudy(v string) *EducationUpdate {
	_u.mutation.SetFieldOfStudy(v)
	return _u
}

// SetNillableFieldOfStudy sets the "field_of_study" field if the given value is not nil.
func (_u *EducationUpdate) SetNillableFieldOfStudy(v *string) *EducationUpdate {
	if v != nil {
		_u.SetFieldOfStudy(*v)
	}
	return _u
}

// ClearFieldOfStudy clears the value of the "field_of_study" field.
func (_u *EducationUpdate) ClearFieldOfStudy() *EducationUpdate {
	_u.mutation.ClearFieldOfStudy()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *EducationUpdate) SetStartDate(v string) *EducationUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *EducationUpdate) SetNillableStartDate(v *string) *EducationUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *EducationUpdate) ClearStartDate() *EducationUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *EducationUpdate) SetEndDate(v string) *EducationUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *EducationUpdate) SetNillableEndDate(v *string) *EducationUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *EducationUpdate) ClearEndDate() *EducationUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *EducationUpdate) SetIsCurrent(v bool) *EducationUpdate {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *EducationUpdate) SetNillableIsCurrent(v *bool) *EducationUpdate {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EducationUpdate) SetDescription(v string) *EducationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EducationUpdate) SetNillableDescription(v *string) *EducationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EducationUpdate) ClearDescription() *EducationUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *EducationUpdate) SetDisplayOrder(v int) *EducationUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *EducationUpdate) SetNillableDisplayOrder(v *int) *EducationUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *EducationUpdate) AddDisplayOrder(v int) *EducationUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EducationUpdate) SetCreatedAt(v time.Time) *EducationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EducationUpdate) SetNillableCreatedAt(v *time.Time) *EducationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EducationUpdate) SetUpdatedAt(v time.Time) *EducationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *EducationUpdate) SetProfile(v *Profile) *EducationUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the EducationMutation object of the builder.
func (_u *EducationUpdate) Mutation() *EducationMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *EducationUpdate) ClearProfile() *EducationUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EducationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EducationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EducationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EducationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EducationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := education.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EducationUpdate) check() error {
	if v, ok := _u.mutation.Degree(); ok {
		if err := education.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`ent: validator failed for field "Education.degree": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Institution(); ok {
		if err := education.InstitutionValidator(v); err != nil {
			return &ValidationError{Name: "institution", err: fmt.Errorf(`ent: validator failed for field "Education.institution": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Education.profile"`)
	}
	return nil
}

func (_u *EducationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(education.Table, education.Columns, sqlgraph.NewFieldSpec(education.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Degree(); ok {
		_spec.SetField(education.FieldDegree, field.TypeString, value)
	}
	if value, ok := _u.mutation.Institution(); ok {
		_spec.SetField(education.FieldInstitution, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldOfStudy(); ok {
		_spec.SetField(education.FieldFieldOfStudy, field.TypeString, value)
	}
	if _u.mutation.FieldOfStudyCleared() {
		_spec.ClearField(education.FieldFieldOfStudy, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(education.FieldStartDate, field.TypeString, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(education.FieldStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(education.FieldEndDate, field.TypeString, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(education.FieldEndDate, field.TypeString)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(education.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(education.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(education.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(education.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(education.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(education.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(education.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   education.ProfileTable,
			Columns: []string{education.ProfileColumn},
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
			Table:   education.ProfileTable,
			Columns: []string{education.ProfileColumn},
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
			err = &NotFoundError{education.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EducationUpdateOne is the builder for updating a single Education entity.
type EducationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EducationMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *EducationUpdateOne) SetProfileID(v uuid.UUID) *EducationUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *EducationUpdateOne) SetNillableProfileID(v *uuid.UUID) *EducationUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetDegree sets the "degree" field.
func (_u *EducationUpdateOne) SetDegree(v string) *EducationUpdateOne {
	_u.mutation.SetDegree(v)
	return _u
}

// SetNillableDegree sets the "degree" field if the given value is not nil.
func (_u *EducationUpdateOne) SetNillableDegree(v *string) *EducationUpdateOne {
	if v != nil {
		_u.SetDegree(*v)
	}
	return _u
}

// SetInstitution sets the "institution" field.
func (_u *EducationUpdateOne) SetInstitution(v string) *EducationUpdateOne {
	_u.mutation.SetInstitution(v)
	return _u
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (_u *EducationUpdateOne) SetNillableInstitution(v *string) *EducationUpdateOne {
	if v != nil {
		_u.SetInstitution(*v)
	}
	return _u
}

// SetFieldOfStudy sets the "field_of_study" field.
func (_u *EducationUpdateOne) SetFieldOfStudy(v string) *EducationUpdateOne {
	_u.mutation.SetFieldOfStudy(v)
	return _u
}

// SetNillableFieldOfStudy sets the "field_of_study" field if the given value is not nil.
func (_u *EducationUpdateOne) SetNillableFieldOfStudy(v *string) *EducationUpdateOne {
	if v != nil {
		_u.SetFieldOfStudy(*v)
	}
	return _u
}

// ClearFieldOfStudy clears the value of the "field_of_study" field.
func (_u *EducationUpdateOne) ClearFieldOfStudy() *EducationUpdateOne {
	_u.mutation.ClearFieldOfStudy()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *EducationUpdateOne) SetStartDate(v string) *EducationUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *EducationUpdateOne) SetNillableStartDate(v *string) *EducationUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *EducationUpdateOne) ClearStartDate() *EducationUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *EducationUpdateOne) SetEndDate(v string) *EducationUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *EducationUpdateOne) SetNillableEndDate(v *string) *EducationUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *EducationUpdateOne) ClearEndDate() *EducationUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *EducationUpdateOne) SetIsCurrent(v bool) *EducationUpdateOne {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *EducationUpdateOne) SetNillableIsCurrent(v *bool) *EducationUpdateOne {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EducationUpdateOne) SetDescription(v string) *EducationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EducationUpdateOne) SetNillableDescription(v *string) *EducationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EducationUpdateOne) ClearDescription() *EducationUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *EducationUpdateOne) SetDisplayOrder(v int) *EducationUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *EducationUpdateOne) SetNillableDisplayOrder(v *int) *EducationUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *EducationUpdateOne) AddDisplayOrder(v int) *EducationUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EducationUpdateOne) SetCreatedAt(v time.Time) *EducationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EducationUpdateOne) SetNillableCreatedAt(v *time.Time) *EducationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EducationUpdateOne) SetUpdatedAt(v time.Time) *EducationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *EducationUpdateOne) SetProfile(v *Profile) *EducationUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the EducationMutation object of the builder.
func (_u *EducationUpdateOne) Mutation() *EducationMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *EducationUpdateOne) ClearProfile() *EducationUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the EducationUpdate builder.
func (_u *EducationUpdateOne) Where(ps ...predicate.Education) *EducationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EducationUpdateOne) Select(field string, fields ...string) *EducationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Education entity.
func (_u *EducationUpdateOne) Save(ctx context.Context) (*Education, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EducationUpdateOne) SaveX(ctx context.Context) *Education {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EducationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EducationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EducationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := education.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EducationUpdateOne) check() error {
	if v, ok := _u.mutation.Degree(); ok {
		if err := education.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`ent: validator failed for field "Education.degree": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Institution(); ok {
		if err := education.InstitutionValidator(v); err != nil {
			return &ValidationError{Name: "institution", err: fmt.Errorf(`ent: validator failed for field "Education.institution": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Education.profile"`)
	}
	return nil
}

func (_u *EducationUpdateOne) sqlSave(ctx context.Context) (_node *Education, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(education.Table, education.Columns, sqlgraph.NewFieldSpec(education.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Education.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, education.FieldID)
		for _, f := range fields {
			if !education.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != education.FieldID {
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
	if value, ok := _u.mutation.Degree(); ok {
		_spec.SetField(education.FieldDegree, field.TypeString, value)
	}
	if value, ok := _u.mutation.Institution(); ok {
		_spec.SetField(education.FieldInstitution, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldOfStudy(); ok {
		_spec.SetField(education.FieldFieldOfStudy, field.TypeString, value)
	}
	if _u.mutation.FieldOfStudyCleared() {
		_spec.ClearField(education.FieldFieldOfStudy, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(education.FieldStartDate, field.TypeString, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(education.FieldStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(education.FieldEndDate, field.TypeString, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(education.FieldEndDate, field.TypeString)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(education.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(education.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(education.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(education.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(education.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(education.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(education.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   education.ProfileTable,
			Columns: []string{education.ProfileColumn},
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
			Table:   education.ProfileTable,
			Columns: []string{education.ProfileColumn},
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
	_node = &Education{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{education.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
