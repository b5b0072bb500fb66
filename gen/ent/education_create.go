// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careerdock/resume-import/gen/ent/education"
	"github.com/careerdock/resume-import/gen/ent/profile"
	"github.com/google/uuid"
)

// EducationCreate is the builder for creating a Education entity.
type EducationCreate struct {
	config
	mutation *EducationMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *EducationCreate) SetProfileID(v uuid.UUID) *EducationCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetDegree sets the "degree" field.
func (_c *EducationCreate) SetDegree(v string) *EducationCreate {
	_c.mutation.SetDegree(v)
	return _c
}

// SetInstitution sets the "institution" field.
func (_c *EducationCreate) SetInstitution(v string) *EducationCreate {
	_c.mutation.SetInstitution(v)
	return _c
}

// SetFieldOfStudy sets the "field_of_study" field.
func (_c *EducationCreate) SetFieldOfStudy(v string) *EducationCreate {
	_c.mutation.SetFieldOfStudy(v)
	return _c
}

// SetNillableFieldOfStudy sets the "field_of_study" field if the given value is not nil.
func (_c *EducationCreate) SetNillableFieldOfStudy(v *string) *EducationCreate {
	if v != nil {
		_c.SetFieldOfStudy(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *EducationCreate) SetStartDate(v string) *EducationCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *EducationCreate) SetNillableStartDate(v *string) *EducationCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *EducationCreate) SetEndDate(v string) *EducationCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *EducationCreate) SetNillableEndDate(v *string) *EducationCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetIsCurrent sets the "is_current" field.
func (_c *EducationCreate) SetIsCurrent(v bool) *EducationCreate {
	_c.mutation.SetIsCurrent(v)
	return _c
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_c *EducationCreate) SetNillableIsCurrent(v *bool) *EducationCreate {
	if v != nil {
		_c.SetIsCurrent(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *EducationCreate) SetDescription(v string) *EducationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *EducationCreate) SetNillableDescription(v *string) *EducationCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *EducationCreate) SetDisplayOrder(v int) *EducationCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *EducationCreate) SetNillableDisplayOrder(v *int) *EducationCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EducationCreate) SetCreatedAt(v time.Time) *EducationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EducationCreate) SetNillableCreatedAt(v *time.Time) *EducationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EducationCreate) SetUpdatedAt(v time.Time) *EducationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EducationCreate) SetNillableUpdatedAt(v *time.Time) *EducationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EducationCreate) SetID(v uuid.UUID) *EducationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EducationCreate) SetNillableID(v *uuid.UUID) *EducationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *EducationCreate) SetProfile(v *Profile) *EducationCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the EducationMutation object of the builder.
func (_c *EducationCreate) Mutation() *EducationMutation {
	return _c.mutation
}

// Save creates the Education in the database.
func (_c *EducationCreate) Save(ctx context.Context) (*Education, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EducationCreate) SaveX(ctx context.Context) *Education {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EducationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EducationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EducationCreate) defaults() {
	if _, ok := _c.mutation.IsCurrent(); !ok {
		v := education.DefaultIsCurrent
		_c.mutation.SetIsCurrent(v)
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := education.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := education.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := education.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := education.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EducationCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Education.profile_id"`)}
	}
	if _, ok := _c.mutation.Degree(); !ok {
		return &ValidationError{Name: "degree", err: errors.New(`ent: missing required field "Education.degree"`)}
	}
	if v, ok := _c.mutation.Degree(); ok {
		if err := education.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`ent: validator failed for field "Education.degree": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Institution(); !ok {
		return &ValidationError{Name: "institution", err: errors.New(`ent: missing required field "Education.institution"`)}
	}
	if v, ok := _c.mutation.Institution(); ok {
		if err := education.InstitutionValidator(v); err != nil {
			return &ValidationError{Name: "institution", err: fmt.Errorf(`ent: validator failed for field "Education.institution": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		return &ValidationError{Name: "is_current", err: errors.New(`ent: missing required field "Education.is_current"`)}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "Education.display_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Education.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Education.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "Education.profile"`)}
	}
	return nil
}

func (_c *EducationCreate) sqlSave(ctx context.Context) (*Education, error) {
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

func (_c *EducationCreate) createSpec() (*Education, *sqlgraph.CreateSpec) {
	var (
		_node = &Education{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(education.Table, sqlgraph.NewFieldSpec(education.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Degree(); ok {
		_spec.SetField(education.FieldDegree, field.TypeString, value)
		_node.Degree = value
	}
	if value, ok := _c.mutation.Institution(); ok {
		_spec.SetField(education.FieldInstitution, field.TypeString, value)
		_node.Institution = value
	}
	if value, ok := _c.mutation.FieldOfStudy(); ok {
		_spec.SetField(education.FieldFieldOfStudy, field.TypeString, value)
		_node.FieldOfStudy = &value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(education.FieldStartDate, field.TypeString, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(education.FieldEndDate, field.TypeString, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.IsCurrent(); ok {
		_spec.SetField(education.FieldIsCurrent, field.TypeBool, value)
		_node.IsCurrent = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(education.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(education.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(education.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(education.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EducationCreateBulk is the builder for creating many Education entities in bulk.
type EducationCreateBulk struct {
	config
	err      error
	builders []*EducationCreate
}

// Save creates the Education entities in the database.
func (_c *EducationCreateBulk) Save(ctx context.Context) ([]*Education, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Education, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EducationMutation)
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
func (_c *EducationCreateBulk) SaveX(ctx context.Context) []*Education {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EducationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EducationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
