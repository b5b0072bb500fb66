// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerdock/resume-import/gen/ent/profile"
	"github.com/careerdock/resume-import/gen/ent/reference"
	"github.com/google/uuid"
)

// ReferenceCreate is the builder for creating a Reference entity.
type ReferenceCreate struct {
	config
	mutation *ReferenceMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *ReferenceCreate) SetProfileID(v uuid.UUID) *ReferenceCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ReferenceCreate) SetName(v string) *ReferenceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetJobTitle sets the "job_title" field.
func (_c *ReferenceCreate) SetJobTitle(v string) *ReferenceCreate {
	_c.mutation.SetJobTitle(v)
	return _c
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_c *ReferenceCreate) SetNillableJobTitle(v *string) *ReferenceCreate {
	if v != nil {
		_c.SetJobTitle(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *ReferenceCreate) SetCompany(v string) *ReferenceCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *ReferenceCreate) SetNillableCompany(v *string) *ReferenceCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ReferenceCreate) SetEmail(v string) *ReferenceCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ReferenceCreate) SetNillableEmail(v *string) *ReferenceCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ReferenceCreate) SetPhone(v string) *ReferenceCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ReferenceCreate) SetNillablePhone(v *string) *ReferenceCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetRelationship sets the "relationship" field.
func (_c *ReferenceCreate) SetRelationship(v string) *ReferenceCreate {
	_c.mutation.SetRelationship(v)
	return _c
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_c *ReferenceCreate) SetNillableRelationship(v *string) *ReferenceCreate {
	if v != nil {
		_c.SetRelationship(*v)
	}
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *ReferenceCreate) SetDisplayOrder(v int) *ReferenceCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *ReferenceCreate) SetNillableDisplayOrder(v *int) *ReferenceCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReferenceCreate) SetCreatedAt(v time.Time) *ReferenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReferenceCreate) SetNillableCreatedAt(v *time.Time) *ReferenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReferenceCreate) SetUpdatedAt(v time.Time) *ReferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReferenceCreate) SetNillableUpdatedAt(v *time.Time) *ReferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReferenceCreate) SetID(v uuid.UUID) *ReferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReferenceCreate) SetNillableID(v *uuid.UUID) *ReferenceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *ReferenceCreate) SetProfile(v *Profile) *ReferenceCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the ReferenceMutation object of the builder.
func (_c *ReferenceCreate) Mutation() *ReferenceMutation {
	return _c.mutation
}

// Save creates the Reference in the database.
func (_c *ReferenceCreate) Save(ctx context.Context) (*Reference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReferenceCreate) SaveX(ctx context.Context) *Reference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReferenceCreate) defaults() {
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := reference.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reference.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reference.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReferenceCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Reference.profile_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Reference.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := reference.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Reference.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "Reference.display_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reference.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Reference.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "Reference.profile"`)}
	}
	return nil
}

func (_c *ReferenceCreate) sqlSave(ctx context.Context) (*Reference, error) {
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

func (_c *ReferenceCreate) createSpec() (*Reference, *sqlgraph.CreateSpec) {
	var (
		_node = &Reference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reference.Table, sqlgraph.NewFieldSpec(reference.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(reference.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.JobTitle(); ok {
		_spec.SetField(reference.FieldJobTitle, field.TypeString, value)
		_node.JobTitle = &value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(reference.FieldCompany, field.TypeString, value)
		_node.Company = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(reference.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(reference.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Relationship(); ok {
		_spec.SetField(reference.FieldRelationship, field.TypeString, value)
		_node.Relationship = &value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(reference.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reference.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReferenceCreateBulk is the builder for creating many Reference entities in bulk.
type ReferenceCreateBulk struct {
	config
	err      error
	builders []*ReferenceCreate
}

// Save creates the Reference entities in the database.
func (_c *ReferenceCreateBulk) Save(ctx context.Context) ([]*Reference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReferenceMutation)
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
func (_c *ReferenceCreateBulk) SaveX(ctx context.Context) []*Reference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
