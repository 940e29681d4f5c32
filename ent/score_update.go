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
	"github.com/balajinix/avani-academy/ent/predicate"
	"github.com/balajinix/avani-academy/ent/score"
)

// ScoreUpdate is the builder for updating Score entities.
type ScoreUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreMutation
}

// Where appends a list predicates to the ScoreUpdate builder.
func (_u *ScoreUpdate) Where(ps ...predicate.Score) *ScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *ScoreUpdate) SetUserName(v string) *ScoreUpdate {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableUserName(v *string) *ScoreUpdate {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ScoreUpdate) SetSubject(v string) *ScoreUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillableSubject(v *string) *ScoreUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *ScoreUpdate) SetPoints(v int) *ScoreUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ScoreUpdate) SetNillablePoints(v *int) *ScoreUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ScoreUpdate) AddPoints(v int) *ScoreUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScoreUpdate) SetUpdatedAt(v time.Time) *ScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScoreMutation object of the builder.
func (_u *ScoreUpdate) Mutation() *ScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScoreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := score.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreUpdate) check() error {
	if v, ok := _u.mutation.UserName(); ok {
		if err := score.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "Score.user_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := score.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Score.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := score.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Score.points": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(score.Table, score.Columns, sqlgraph.NewFieldSpec(score.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(score.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(score.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(score.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(score.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(score.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{score.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreUpdateOne is the builder for updating a single Score entity.
type ScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreMutation
}

// SetUserName sets the "user_name" field.
func (_u *ScoreUpdateOne) SetUserName(v string) *ScoreUpdateOne {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableUserName(v *string) *ScoreUpdateOne {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ScoreUpdateOne) SetSubject(v string) *ScoreUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillableSubject(v *string) *ScoreUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *ScoreUpdateOne) SetPoints(v int) *ScoreUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ScoreUpdateOne) SetNillablePoints(v *int) *ScoreUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ScoreUpdateOne) AddPoints(v int) *ScoreUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScoreUpdateOne) SetUpdatedAt(v time.Time) *ScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScoreMutation object of the builder.
func (_u *ScoreUpdateOne) Mutation() *ScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoreUpdate builder.
func (_u *ScoreUpdateOne) Where(ps ...predicate.Score) *ScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreUpdateOne) Select(field string, fields ...string) *ScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Score entity.
func (_u *ScoreUpdateOne) Save(ctx context.Context) (*Score, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreUpdateOne) SaveX(ctx context.Context) *Score {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := score.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreUpdateOne) check() error {
	if v, ok := _u.mutation.UserName(); ok {
		if err := score.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "Score.user_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := score.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Score.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := score.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Score.points": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreUpdateOne) sqlSave(ctx context.Context) (_node *Score, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(score.Table, score.Columns, sqlgraph.NewFieldSpec(score.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Score.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, score.FieldID)
		for _, f := range fields {
			if !score.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != score.FieldID {
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
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(score.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(score.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(score.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(score.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(score.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Score{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{score.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
