// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerdock/resume-import/gen/ent/certification"
	"github.com/careerdock/resume-import/gen/ent/profile"
	"github.com/google/uuid"
)

// CertificationCreate is the builder for creating a Certification entity.
type CertificationCreate struct {
	config
	mutation *CertificationMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *CertificationCreate) SetProfileID(v uuid.UUID) *CertificationCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CertificationCreate) SetName(v string) *CertificationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetIssuingOrg sets the "issuing_org" field.
func (_c *CertificationCreate) SetIssuingOrg(v string) *CertificationCreate {
	_c.mutation.SetIssuingOrg(v)
	return _c
}

// SetIssueDate sets the "issue_date" field.
func (_c *CertificationCreate) SetIssueDate(v string) *CertificationCreate {
	_c.mutation.SetIssueDate(v)
	return _c
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_c *CertificationCreate) SetNillableIssueDate(v *string) *CertificationCreate {
	if v != nil {
		_c.SetIssueDate(*v)
	}
	return _c
}

// SetExpiryDate sets the "expiry_date" field.
func (_c *CertificationCreate) SetExpiryDate(v string) *CertificationCreate {
	_c.mutation.SetExpiryDate(v)
	return _c
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_c *CertificationCreate) SetNillableExpiryDate(v *string) *CertificationCreate {
	if v != nil {
		_c.SetExpiryDate(*v)
	}
	return _c
}

// SetCredentialID sets the "credential_id" field.
func (_c *CertificationCreate) SetCredentialID(v string) *CertificationCreate {
	_c.mutation.SetCredentialID(v)
	return _c
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_c *CertificationCreate) SetNillableCredentialID(v *string) *CertificationCreate {
	if v != nil {
		_c.SetCredentialID(*v)
	}
	return _c
}

// SetCredentialURL sets the "credential_url" field.
func (_c *CertificationCreate) SetCredentialURL(v string) *CertificationCreate {
	_c.mutation.SetCredentialURL(v)
	return _c
}

// SetNillableCredentialURL sets the "credential_url" field if the given value is not nil.
func (_c *CertificationCreate) SetNillableCredentialURL(v *string) *CertificationCreate {
	if v != nil {
		_c.SetCredentialURL(*v)
	}
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *CertificationCreate) SetDisplayOrder(v int) *CertificationCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *CertificationCreate) SetNillableDisplayOrder(v *int) *CertificationCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CertificationCreate) SetCreatedAt(v time.Time) *CertificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CertificationCreate) SetNillableCreatedAt(v *time.Time) *CertificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CertificationCreate) SetUpdatedAt(v time.Time) *CertificationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CertificationCreate) SetNillableUpdatedAt(v *time.Time) *CertificationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CertificationCreate) SetID(v uuid.UUID) *CertificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CertificationCreate) SetNillableID(v *uuid.UUID) *CertificationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *CertificationCreate) SetProfile(v *Profile) *CertificationCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the CertificationMutation object of the builder.
func (_c *CertificationCreate) Mutation() *CertificationMutation {
	return _c.mutation
}

// Save creates the Certification in the database.
func (_c *CertificationCreate) Save(ctx context.Context) (*Certification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CertificationCreate) SaveX(ctx context.Context) *Certification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CertificationCreate) defaults() {
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := certification.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := certification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := certification.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := certification.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CertificationCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Certification.profile_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Certification.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := certification.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Certification.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssuingOrg(); !ok {
		return &ValidationError{Name: "issuing_org", err: errors.New(`ent: missing required field "Certification.issuing_org"`)}
	}
	if v, ok := _c.mutation.IssuingOrg(); ok {
		if err := certification.IssuingOrgValidator(v); err != nil {
			return &ValidationError{Name: "issuing_org", err: fmt.Errorf(`ent: validator failed for field "Certification.issuing_org": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "Certification.display_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Certification.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Certification.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "Certification.profile"`)}
	}
	return nil
}

func (_c *CertificationCreate) sqlSave(ctx context.Context) (*Certification, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CertificationCreate) createSpec() (*Certification, *sqlgraph.CreateSpec) {
	var (
		_node = &Certification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(certification.Table, sqlgraph.NewFieldSpec(certification.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(certification.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.IssuingOrg(); ok {
		_spec.SetField(certification.FieldIssuingOrg, field.TypeString, value)
		_node.IssuingOrg = value
	}
	if value, ok := _c.mutation.IssueDate(); ok {
		_spec.SetField(certification.FieldIssueDate, field.TypeString, value)
		_node.IssueDate = &value
	}
	if value, ok := _c.mutation.ExpiryDate(); ok {
		_spec.SetField(certification.FieldExpiryDate, field.TypeString, value)
		_node.ExpiryDate = &value
	}
	if value, ok := _c.mutation.CredentialID(); ok {
		_spec.SetField(certification.FieldCredentialID, field.TypeString, value)
		_node.CredentialID = &value
	}
	if value, ok := _c.mutation.CredentialURL(); ok {
		_spec.SetField(certification.FieldCredentialURL, field.TypeString, value)
		_node.CredentialURL = &value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(certification.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(certification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(certification.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CertificationCreateBulk is the builder for creating many Certification entities in bulk.
type CertificationCreateBulk struct {
	config
	err      error
	builders []*CertificationCreate
}

// Save creates the Certification entities in the database.
func (_c *CertificationCreateBulk) Save(ctx context.Context) ([]*Certification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Certification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CertificationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CertificationCreateBulk) SaveX(ctx context.Context) []*Certification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
