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
	"github.com/careerdock/resume-import/gen/ent/certification"
	"github.com/careerdock/resume-import/gen/ent/predicate"
	"github.com/careerdock/resume-import/gen/ent/profile"
	"github.com/google/uuid"
)

// CertificationUpdate is the builder for updating Certification entities.
type CertificationUpdate struct {
	config
	hooks    []Hook
	mutation *CertificationMutation
}

// Where appends a list predicates to the CertificationUpdate builder.
func (_u *CertificationUpdate) Where(ps ...predicate.Certification) *CertificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *CertificationUpdate) SetProfileID(v uuid.UUID) *CertificationUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CertificationUpdate) SetNillableProfileID(v *uuid.UUID) *CertificationUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CertificationUpdate) SetName(v string) *CertificationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CertificationUpdate) SetNillableName(v *string) *CertificationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetIssuingOrg sets the "issuing_org" field.
func (_u *CertificationUpdate) SetIssuingOrg(v string) *CertificationUpdate {
	_u.mutation.SetIssuingOrg(v)
	return _u
}

// SetNillableIssuingOrg sets the "issuing_org" field if the given value is not nil.
func (_u *CertificationUpdate) SetNillableIssuingOrg(v *string) *CertificationUpdate {
	if v != nil {
		_u.SetIssuingOrg(*v)
	}
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *CertificationUpdate) SetIssueDate(v string) *CertificationUpdate {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *CertificationUpdate) SetNillableIssueDate(v *string) *CertificationUpdate {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// ClearIssueDate clears the value of the "issue_date" field.
func (_u *CertificationUpdate) ClearIssueDate() *CertificationUpdate {
	_u.mutation.ClearIssueDate()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *CertificationUpdate) SetExpiryDate(v string) *CertificationUpdate {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *CertificationUpdate) SetNillableExpiryDate(v *string) *CertificationUpdate {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *CertificationUpdate) ClearExpiryDate() *CertificationUpdate {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetCredentialID sets the "credential_id" field.
func (_u *CertificationUpdate) SetCredentialID(v string) *CertificationUpdate {
	_u.mutation.SetCredentialID(v)
	return _u
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_u *CertificationUpdate) SetNillableCredentialID(v *string) *CertificationUpdate {
	if v != nil {
		_u.SetCredentialID(*v)
	}
	return _u
}

// ClearCredentialID clears the value of the "credential_id" field.
func (_u *CertificationUpdate) ClearCredentialID() *CertificationUpdate {
	_u.mutation.ClearCredentialID()
	return _u
}

// SetCredentialURL sets the "credential_url" field.
func (_u *CertificationUpdate) SetCredentialURL(v string) *CertificationUpdate {
	_u.mutation.SetCredentialURL(v)
	return _u
}

// SetNillableCredentialURL sets the "credential_url" field if the given value is not nil.
func (_u *CertificationUpdate) SetNillableCredentialURL(v *string) *CertificationUpdate {
	if v != nil {
		_u.SetCredentialURL(*v)
	}
	return _u
}

// ClearCredentialURL clears the value of the "credential_url" field.
func (_u *CertificationUpdate) ClearCredentialURL() *CertificationUpdate {
	_u.mutation.ClearCredentialURL()
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *CertificationUpdate) SetDisplayOrder(v int) *CertificationUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *CertificationUpdate) SetNillableDisplayOrder(v *int) *CertificationUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *CertificationUpdate) AddDisplayOrder(v int) *CertificationUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CertificationUpdate) SetCreatedAt(v time.Time) *CertificationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CertificationUpdate) SetNillableCreatedAt(v *time.Time) *CertificationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CertificationUpdate) SetUpdatedAt(v time.Time) *CertificationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CertificationUpdate) SetProfile(v *Profile) *CertificationUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the CertificationMutation object of the builder.
func (_u *CertificationUpdate) Mutation() *CertificationMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CertificationUpdate) ClearProfile() *CertificationUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CertificationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CertificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CertificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CertificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CertificationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := certification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CertificationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := certification.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Certification.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IssuingOrg(); ok {
		if err := certification.IssuingOrgValidator(v); err != nil {
			return &ValidationError{Name: "issuing_org", err: fmt.Errorf(`ent: validator failed for field "Certification.issuing_org": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Certification.profile"`)
	}
	return nil
}

func (_u *CertificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(certification.Table, certification.Columns, sqlgraph.NewFieldSpec(certification.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(certification.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuingOrg(); ok {
		_spec.SetField(certification.FieldIssuingOrg, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(certification.FieldIssueDate, field.TypeString, value)
	}
	if _u.mutation.IssueDateCleared() {
		_spec.ClearField(certification.FieldIssueDate, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(certification.FieldExpiryDate, field.TypeString, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(certification.FieldExpiryDate, field.TypeString)
	}
	if value, ok := _u.mutation.CredentialID(); ok {
		_spec.SetField(certification.FieldCredentialID, field.TypeString, value)
	}
	if _u.mutation.CredentialIDCleared() {
		_spec.ClearField(certification.FieldCredentialID, field.TypeString)
	}
	if value, ok := _u.mutation.CredentialURL(); ok {
		_spec.SetField(certification.FieldCredentialURL, field.TypeString, value)
	}
	if _u.mutation.CredentialURLCleared() {
		_spec.ClearField(certification.FieldCredentialURL, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(certification.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(certification.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(certification.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(certification.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   certification.ProfileTable,
			Columns: []string{certification.ProfileColumn},
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
			Table:   certification.ProfileTable,
			Columns: []string{certification.ProfileColumn},
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
			err = &NotFoundError{certification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CertificationUpdateOne is the builder for updating a single Certification entity.
type CertificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CertificationMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *CertificationUpdateOne) SetProfileID(v uuid.UUID) *CertificationUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CertificationUpdateOne) SetNillableProfileID(v *uuid.UUID) *CertificationUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CertificationUpdateOne) SetName(v string) *CertificationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CertificationUpdateOne) SetNillableName(v *string) *CertificationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetIssuingOrg sets the "issuing_org" field.
func (_u *CertificationUpdateOne) SetIssuingOrg(v string) *CertificationUpdateOne {
	_u.mutation.SetIssuingOrg(v)
	return _u
}

// SetNillableIssuingOrg sets the "issuing_org" field if the given value is not nil.
func (_u *CertificationUpdateOne) SetNillableIssuingOrg(v *string) *CertificationUpdateOne {
	if v != nil {
		_u.SetIssuingOrg(*v)
	}
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *CertificationUpdateOne) SetIssueDate(v string) *CertificationUpdateOne {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *CertificationUpdateOne) SetNillableIssueDate(v *string) *CertificationUpdateOne {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// ClearIssueDate clears the value of the "issue_date" field.
func (_u *CertificationUpdateOne) ClearIssueDate() *CertificationUpdateOne {
	_u.mutation.ClearIssueDate()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *CertificationUpdateOne) SetExpiryDate(v string) *CertificationUpdateOne {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *CertificationUpdateOne) SetNillableExpiryDate(v *string) *CertificationUpdateOne {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *CertificationUpdateOne) ClearExpiryDate() *CertificationUpdateOne {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetCredentialID sets the "credential_id" field.
func (_u *CertificationUpdateOne) SetCredentialID(v string) *CertificationUpdateOne {
	_u.mutation.SetCredentialID(v)
	return _u
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_u *CertificationUpdateOne) SetNillableCredentialID(v *string) *CertificationUpdateOne {
	if v != nil {
		_u.SetCredentialID(*v)
	}
	return _u
}

// ClearCredentialID clears the value of the "credential_id" field.
func (_u *CertificationUpdateOne) ClearCredentialID() *CertificationUpdateOne {
	_u.mutation.ClearCredentialID()
	return _u
}

// SetCredentialURL sets the "credential_url" field.
func (_u *CertificationUpdateOne) SetCredentialURL(v string) *CertificationUpdateOne {
	_u.mutation.SetCredentialURL(v)
	return _u
}

// SetNillableCredentialURL sets the "credential_url" field if the given value is not nil.
func (_u *CertificationUpdateOne) SetNillableCredentialURL(v *string) *CertificationUpdateOne {
	if v != nil {
		_u.SetCredentialURL(*v)
	}
	return _u
}

// ClearCredentialURL clears the value of the "credential_url" field.
func (_u *CertificationUpdateOne) ClearCredentialURL() *CertificationUpdateOne {
	_u.mutation.ClearCredentialURL()
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *CertificationUpdateOne) SetDisplayOrder(v int) *CertificationUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *CertificationUpdateOne) SetNillableDisplayOrder(v *int) *CertificationUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *CertificationUpdateOne) AddDisplayOrder(v int) *CertificationUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CertificationUpdateOne) SetCreatedAt(v time.Time) *CertificationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CertificationUpdateOne) SetNillableCreatedAt(v *time.Time) *CertificationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CertificationUpdateOne) SetUpdatedAt(v time.Time) *CertificationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CertificationUpdateOne) SetProfile(v *Profile) *CertificationUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the CertificationMutation object of the builder.
func (_u *CertificationUpdateOne) Mutation() *CertificationMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CertificationUpdateOne) ClearProfile() *CertificationUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the CertificationUpdate builder.
func (_u *CertificationUpdateOne) Where(ps ...predicate.Certification) *CertificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CertificationUpdateOne) Select(field string, fields ...string) *CertificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Certification entity.
func (_u *CertificationUpdateOne) Save(ctx context.Context) (*Certification, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CertificationUpdateOne) SaveX(ctx context.Context) *Certification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CertificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CertificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CertificationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := certification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CertificationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := certification.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Certification.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IssuingOrg(); ok {
		if err := certification.IssuingOrgValidator(v); err != nil {
			return &ValidationError{Name: "issuing_org", err: fmt.Errorf(`ent: validator failed for field "Certification.issuing_org": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Certification.profile"`)
	}
	return nil
}

func (_u *CertificationUpdateOne) sqlSave(ctx context.Context) (_node *Certification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(certification.Table, certification.Columns, sqlgraph.NewFieldSpec(certification.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Certification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, certification.FieldID)
		for _, f := range fields {
			if !certification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != certification.FieldID {
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
		_spec.SetField(certification.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuingOrg(); ok {
		_spec.SetField(certification.FieldIssuingOrg, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(certification.FieldIssueDate, field.TypeString, value)
	}
	if _u.mutation.IssueDateCleared() {
		_spec.ClearField(certification.FieldIssueDate, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(certification.FieldExpiryDate, field.TypeString, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(certification.FieldExpiryDate, field.TypeString)
	}
	if value, ok := _u.mutation.CredentialID(); ok {
		_spec.SetField(certification.FieldCredentialID, field.TypeString, value)
	}
	if _u.mutation.CredentialIDCleared() {
		_spec.ClearField(certification.FieldCredentialID, field.TypeString)
	}
	if value, ok := _u.mutation.CredentialURL(); ok {
		_spec.SetField(certification.FieldCredentialURL, field.TypeString, value)
	}
	if _u.mutation.CredentialURLCleared() {
		_spec.ClearField(certification.FieldCredentialURL, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(certification.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(certification.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(certification.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(certification.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   certification.ProfileTable,
			Columns: []string{certification.ProfileColumn},
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
			Table:   certification.ProfileTable,
			Columns: []string{certification.ProfileColumn},
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
	_node = &Certification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{certification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
