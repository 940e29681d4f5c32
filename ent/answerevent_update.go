// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/balajinix/avani-academy/ent/answerevent"
	"github.com/balajinix/avani-academy/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *AnswerEventUpdate) SetUserName(v string) *AnswerEventUpdate {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableUserName(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *AnswerEventUpdate) SetSubject(v string) *AnswerEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSubject(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetChosen sets the "chosen" field.
func (_u *AnswerEventUpdate) SetChosen(v string) *AnswerEventUpdate {
	_u.mutation.SetChosen(v)
	return _u
}

// SetNillableChosen sets the "chosen" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableChosen(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetChosen(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AnswerEventUpdate) SetAttempt(v int) *AnswerEventUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAttempt(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AnswerEventUpdate) AddAttempt(v int) *AnswerEventUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *AnswerEventUpdate) SetClassification(v string) *AnswerEventUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableClassification(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserName(); ok {
		if err := answerevent.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := answerevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempt(); ok {
		if err := answerevent.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.attempt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := answerevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(answerevent.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(answerevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chosen(); ok {
		_spec.SetField(answerevent.FieldChosen, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(answerevent.FieldClassification, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *AnswerEventUpdateOne) SetUserName(v string) *AnswerEventUpdateOne {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableUserName(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *AnswerEventUpdateOne) SetSubject(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSubject(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetChosen sets the "chosen" field.
func (_u *AnswerEventUpdateOne) SetChosen(v string) *AnswerEventUpdateOne {
	_u.mutation.SetChosen(v)
	return _u
}

// SetNillableChosen sets the "chosen" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableChosen(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetChosen(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AnswerEventUpdateOne) SetAttempt(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAttempt(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AnswerEventUpdateOne) AddAttempt(v int) *AnswerEventUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *AnswerEventUpdateOne) SetClassification(v string) *AnswerEventUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableClassification(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserName(); ok {
		if err := answerevent.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := answerevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempt(); ok {
		if err := answerevent.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.attempt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := answerevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(answerevent.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(answerevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chosen(); ok {
		_spec.SetField(answerevent.FieldChosen, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(answerevent.FieldClassification, field.TypeString, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
