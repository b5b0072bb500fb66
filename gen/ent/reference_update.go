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
	"github.com/careerdock/resume-import/gen/ent/reference"
	"github.com/google/uuid"
)

// ReferenceUpdate is the builder for updating Reference entities.
type ReferenceUpdate struct {
	config
	hooks    []Hook
	mutation *ReferenceMutation
}

// Where appends a list predicates to the ReferenceUpdate builder.
func (_u *ReferenceUpdate) Where(ps ...predicate.Reference) *ReferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ReferenceUpdate) SetProfileID(v uuid.UUID) *ReferenceUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ReferenceUpdate) SetNillableProfileID(v *uuid.UUID) *ReferenceUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ReferenceUpdate) SetName(v string) *ReferenceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ReferenceUpdate) SetNillableName(v *string) *ReferenceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *ReferenceUpdate) SetJobTitle(v string) *ReferenceUpdate {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *ReferenceUpdate) SetNillableJobTitle(v *string) *ReferenceUpdate {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// ClearJobTitle clears the value of the "job_title" field.
func (_u *ReferenceUpdate) ClearJobTitle() *ReferenceUpdate {
	_u.mutation.ClearJobTitle()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ReferenceUpdate) SetCompany(v string) *ReferenceUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ReferenceUpdate) SetNillableCompany(v *string) *ReferenceUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ReferenceUpdate) ClearCompany() *ReferenceUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ReferenceUpdate) SetEmail(v string) *ReferenceUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ReferenceUpdate) SetNillableEmail(v *string) *ReferenceUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ReferenceUpdate) ClearEmail() *ReferenceUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ReferenceUpdate) SetPhone(v string) *ReferenceUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ReferenceUpdate) SetNillablePhone(v *string) *ReferenceUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ReferenceUpdate) ClearPhone() *ReferenceUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *ReferenceUpdate) SetRelationship(v string) *ReferenceUpdate {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *ReferenceUpdate) SetNillableRelationship(v *string) *ReferenceUpdate {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// ClearRelationship clears the value of the "relationship" field.
func (_u *ReferenceUpdate) ClearRelationship() *ReferenceUpdate {
	_u.mutation.ClearRelationship()
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *ReferenceUpdate) SetDisplayOrder(v int) *ReferenceUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *ReferenceUpdate) SetNillableDisplayOrder(v *int) *ReferenceUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *ReferenceUpdate) AddDisplayOrder(v int) *ReferenceUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReferenceUpdate) SetCreatedAt(v time.Time) *ReferenceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReferenceUpdate) SetNillableCreatedAt(v *time.Time) *ReferenceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReferenceUpdate) SetUpdatedAt(v time.Time) *ReferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ReferenceUpdate) SetProfile(v *Profile) *ReferenceUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the ReferenceMutation object of the builder.
func (_u *ReferenceUpdate) Mutation() *ReferenceMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ReferenceUpdate) ClearProfile() *ReferenceUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferenceUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := reference.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Reference.name": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reference.profile"`)
	}
	return nil
}

func (_u *ReferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reference.Table, reference.Columns, sqlgraph.NewFieldSpec(reference.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(reference.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(reference.FieldJobTitle, field.TypeString, value)
	}
	if _u.mutation.JobTitleCleared() {
		_spec.ClearField(reference.FieldJobTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(reference.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(reference.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(reference.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(reference.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(reference.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(reference.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(reference.FieldRelationship, field.TypeString, value)
	}
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(reference.FieldRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(reference.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(reference.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reference.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reference.ProfileTable,
			Columns: []string{reference.ProfileColumn},
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
			Table:   reference.ProfileTable,
			Columns: []string{reference.ProfileColumn},
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
			err = &NotFoundError{reference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReferenceUpdateOne is the builder for updating a single Reference entity.
type ReferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReferenceMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *ReferenceUpdateOne) SetProfileID(v uuid.UUID) *ReferenceUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ReferenceUpdateOne) SetNillableProfileID(v *uuid.UUID) *ReferenceUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ReferenceUpdateOne) SetName(v string) *ReferenceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ReferenceUpdateOne) SetNillableName(v *string) *ReferenceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *ReferenceUpdateOne) SetJobTitle(v string) *ReferenceUpdateOne {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *ReferenceUpdateOne) SetNillableJobTitle(v *string) *ReferenceUpdateOne {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// ClearJobTitle clears the value of the "job_title" field.
func (_u *ReferenceUpdateOne) ClearJobTitle() *ReferenceUpdateOne {
	_u.mutation.ClearJobTitle()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ReferenceUpdateOne) SetCompany(v string) *ReferenceUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ReferenceUpdateOne) SetNillableCompany(v *string) *ReferenceUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ReferenceUpdateOne) ClearCompany() *ReferenceUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ReferenceUpdateOne) SetEmail(v string) *ReferenceUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ReferenceUpdateOne) SetNillableEmail(v *string) *ReferenceUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ReferenceUpdateOne) ClearEmail() *ReferenceUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ReferenceUpdateOne) SetPhone(v string) *ReferenceUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ReferenceUpdateOne) SetNillablePhone(v *string) *ReferenceUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ReferenceUpdateOne) ClearPhone() *ReferenceUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *ReferenceUpdateOne) SetRelationship(v string) *ReferenceUpdateOne {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *ReferenceUpdateOne) SetNillableRelationship(v *string) *ReferenceUpdateOne {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// ClearRelationship clears the value of the "relationship" field.
func (_u *ReferenceUpdateOne) ClearRelationship() *ReferenceUpdateOne {
	_u.mutation.ClearRelationship()
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *ReferenceUpdateOne) SetDisplayOrder(v int) *ReferenceUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *ReferenceUpdateOne) SetNillableDisplayOrder(v *int) *ReferenceUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *ReferenceUpdateOne) AddDisplayOrder(v int) *ReferenceUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReferenceUpdateOne) SetCreatedAt(v time.Time) *ReferenceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReferenceUpdateOne) SetNillableCreatedAt(v *time.Time) *ReferenceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReferenceUpdateOne) SetUpdatedAt(v time.Time) *ReferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ReferenceUpdateOne) SetProfile(v *Profile) *ReferenceUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the ReferenceMutation object of the builder.
func (_u *ReferenceUpdateOne) Mutation() *ReferenceMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ReferenceUpdateOne) ClearProfile() *ReferenceUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the ReferenceUpdate builder.
func (_u *ReferenceUpdateOne) Where(ps ...predicate.Reference) *ReferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReferenceUpdateOne) Select(field string, fields ...string) *ReferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reference entity.
func (_u *ReferenceUpdateOne) Save(ctx context.Context) (*Reference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferenceUpdateOne) SaveX(ctx context.Context) *Reference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferenceUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := reference.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Reference.name": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reference.profile"`)
	}
	return nil
}

func (_u *ReferenceUpdateOne) sqlSave(ctx context.Context) (_node *Reference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reference.Table, reference.Columns, sqlgraph.NewFieldSpec(reference.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reference.FieldID)
		for _, f := range fields {
			if !reference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reference.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(reference.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(reference.FieldJobTitle, field.TypeString, value)
	}
	if _u.mutation.JobTitleCleared() {
		_spec.ClearField(reference.FieldJobTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(reference.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(reference.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(reference.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(reference.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(reference.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(reference.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(reference.FieldRelationship, field.TypeString, value)
	}
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(reference.FieldRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(reference.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(reference.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reference.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reference.ProfileTable,
			Columns: []string{reference.ProfileColumn},
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
			Table:   reference.ProfileTable,
			Columns: []string{reference.ProfileColumn},
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
	_node = &Reference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
