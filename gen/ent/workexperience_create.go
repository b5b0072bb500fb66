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
	"github.com/careerdock/resume-import/gen/ent/workexperience"
	"github.com/google/uuid"
)

// WorkExperienceCreate is the builder for creating a WorkExperience entity.
type WorkExperienceCreate struct {
	config
	mutation *WorkExperienceMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *WorkExperienceCreate) SetProfileID(v uuid.UUID) *WorkExperienceCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetJobTitle sets the "job_title" field.
func (_c *WorkExperienceCreate) SetJobTitle(v string) *WorkExperienceCreate {
	_c.mutation.SetJobTitle(v)
	return _c
}

// SetCompany sets the "company" field.
func (_c *WorkExperienceCreate) SetCompany(v string) *WorkExperienceCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *WorkExperienceCreate) SetLocation(v string) *WorkExperienceCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *WorkExperienceCreate) SetNillableLocation(v *string) *WorkExperienceCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *WorkExperienceCreate) SetStartDate(v string) *WorkExperienceCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *WorkExperienceCreate) SetEndDate(v string) *WorkExperienceCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *WorkExperienceCreate) SetNillableEndDate(v *string) *WorkExperienceCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetIsCurrent sets the "is_current" field.
func (_c *WorkExperienceCreate) SetIsCurrent(v bool) *WorkExperienceCreate {
	_c.mutation.SetIsCurrent(v)
	return _c
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_c *WorkExperienceCreate) SetNillableIsCurrent(v *bool) *WorkExperienceCreate {
	if v != nil {
		_c.SetIsCurrent(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *WorkExperienceCreate) SetDescription(v string) *WorkExperienceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *WorkExperienceCreate) SetNillableDescription(v *string) *WorkExperienceCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *WorkExperienceCreate) SetDisplayOrder(v int) *WorkExperienceCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *WorkExperienceCreate) SetNillableDisplayOrder(v *int) *WorkExperienceCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkExperienceCreate) SetCreatedAt(v time.Time) *WorkExperienceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkExperienceCreate) SetNillableCreatedAt(v *time.Time) *WorkExperienceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkExperienceCreate) SetUpdatedAt(v time.Time) *WorkExperienceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkExperienceCreate) SetNillableUpdatedAt(v *time.Time) *WorkExperienceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkExperienceCreate) SetID(v uuid.UUID) *WorkExperienceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkExperienceCreate) SetNillableID(v *uuid.UUID) *WorkExperienceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *WorkExperienceCreate) SetProfile(v *Profile) *WorkExperienceCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the WorkExperienceMutation object of the builder.
func (_c *WorkExperienceCreate) Mutation() *WorkExperienceMutation {
	return _c.mutation
}

// Save creates the WorkExperience in the database.
func (_c *WorkExperienceCreate) Save(ctx context.Context) (*WorkExperience, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkExperienceCreate) SaveX(ctx context.Context) *WorkExperience {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkExperienceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkExperienceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkExperienceCreate) defaults() {
	if _, ok := _c.mutation.IsCurrent(); !ok {
		v := workexperience.DefaultIsCurrent
		_c.mutation.SetIsCurrent(v)
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := workexperience.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workexperience.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workexperience.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workexperience.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkExperienceCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "WorkExperience.profile_id"`)}
	}
	if _, ok := _c.mutation.JobTitle(); !ok {
		return &ValidationError{Name: "job_title", err: errors.New(`ent: missing required field "WorkExperience.job_title"`)}
	}
	if v, ok := _c.mutation.JobTitle(); ok {
		if err := workexperience.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "WorkExperience.job_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Company(); !ok {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required field "WorkExperience.company"`)}
	}
	if v, ok := _c.mutation.Company(); ok {
		if err := workexperience.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`ent: validator failed for field "WorkExperience.company": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "WorkExperience.start_date"`)}
	}
	if v, ok := _c.mutation.StartDate(); ok {
		if err := workexperience.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "WorkExperience.start_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		return &ValidationError{Name: "is_current", err: errors.New(`ent: missing required field "WorkExperience.is_current"`)}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "WorkExperience.display_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkExperience.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkExperience.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "WorkExperience.profile"`)}
	}
	return nil
}

func (_c *WorkExperienceCreate) sqlSave(ctx context.Context) (*WorkExperience, error) {
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

func (_c *WorkExperienceCreate) createSpec() (*WorkExperience, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkExperience{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workexperience.Table, sqlgraph.NewFieldSpec(workexperience.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobTitle(); ok {
		_spec.SetField(workexperience.FieldJobTitle, field.TypeString, value)
		_node.JobTitle = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(workexperience.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(workexperience.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(workexperience.FieldStartDate, field.TypeString, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(workexperience.FieldEndDate, field.TypeString, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.IsCurrent(); ok {
		_spec.SetField(workexperience.FieldIsCurrent, field.TypeBool, value)
		_node.IsCurrent = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(workexperience.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(workexperience.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workexperience.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workexperience.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkExperienceCreateBulk is the builder for creating many WorkExperience entities in bulk.
type WorkExperienceCreateBulk struct {
	config
	err      error
	builders []*WorkExperienceCreate
}

// Save creates the WorkExperience entities in the database.
func (_c *WorkExperienceCreateBulk) Save(ctx context.Context) ([]*WorkExperience, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkExperience, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkExperienceMutation)
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
func (_c *WorkExperienceCreateBulk) SaveX(ctx context.Context) []*WorkExperience {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkExperienceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkExperienceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
