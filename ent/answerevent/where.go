// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/balajinix/avani-academy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserName applies equality check predicate on the "user_name" field. It's identical to UserNameEQ.
func UserName(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldUserName, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSubject, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Chosen applies equality check predicate on the "chosen" field. It's identical to ChosenEQ.
func Chosen(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldChosen, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldAttempt, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// Classification applies equality check predicate on the "classification" field. It's identical to ClassificationEQ.
func Classification(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldClassification, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserNameEQ applies the EQ predicate on the "user_name" field.
func UserNameEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldUserName, v))
}

// UserNameNEQ applies the NEQ predicate on the "user_name" field.
func UserNameNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldUserName, v))
}

// UserNameIn applies the In predicate on the "user_name" field.
func UserNameIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldUserName, vs...))
}

// UserNameNotIn applies the NotIn predicate on the "user_name" field.
func UserNameNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldUserName, vs...))
}

// UserNameGT applies the GT predicate on the "user_name" field.
func UserNameGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldUserName, v))
}

// UserNameGTE applies the GTE predicate on the "user_name" field.
func UserNameGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldUserName, v))
}

// UserNameLT applies the LT predicate on the "user_name" field.
func UserNameLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldUserName, v))
}

// UserNameLTE applies the LTE predicate on the "user_name" field.
func UserNameLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldUserName, v))
}

// UserNameContains applies the Contains predicate on the "user_name" field.
func UserNameContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldUserName, v))
}

// UserNameHasPrefix applies the HasPrefix predicate on the "user_name" field.
func UserNameHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldUserName, v))
}

// UserNameHasSuffix applies the HasSuffix predicate on the "user_name" field.
func UserNameHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldUserName, v))
}

// UserNameEqualFold applies the EqualFold predicate on the "user_name" field.
func UserNameEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldUserName, v))
}

// UserNameContainsFold applies the ContainsFold predicate on the "user_name" field.
func UserNameContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldUserName, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldSubject, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// ChosenEQ applies the EQ predicate on the "chosen" field.
func ChosenEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldChosen, v))
}

// ChosenNEQ applies the NEQ predicate on the "chosen" field.
func ChosenNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldChosen, v))
}

// ChosenIn applies the In predicate on the "chosen" field.
func ChosenIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldChosen, vs...))
}

// ChosenNotIn applies the NotIn predicate on the "chosen" field.
func ChosenNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldChosen, vs...))
}

// ChosenGT applies the GT predicate on the "chosen" field.
func ChosenGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldChosen, v))
}

// ChosenGTE applies the GTE predicate on the "chosen" field.
func ChosenGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldChosen, v))
}

// ChosenLT applies the LT predicate on the "chosen" field.
func ChosenLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldChosen, v))
}

// ChosenLTE applies the LTE predicate on the "chosen" field.
func ChosenLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldChosen, v))
}

// ChosenContains applies the Contains predicate on the "chosen" field.
func ChosenContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldChosen, v))
}

// ChosenHasPrefix applies the HasPrefix predicate on the "chosen" field.
func ChosenHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldChosen, v))
}

// ChosenHasSuffix applies the HasSuffix predicate on the "chosen" field.
func ChosenHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldChosen, v))
}

// ChosenEqualFold applies the EqualFold predicate on the "chosen" field.
func ChosenEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldChosen, v))
}

// ChosenContainsFold applies the ContainsFold predicate on the "chosen" field.
func ChosenContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldChosen, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldAttempt, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldCorrect, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldClassification, vs...))
}

// ClassificationGT applies the GT predicate on the "classification" field.
func ClassificationGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldClassification, v))
}

// ClassificationGTE applies the GTE predicate on the "classification" field.
func ClassificationGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldClassification, v))
}

// ClassificationLT applies the LT predicate on the "classification" field.
func ClassificationLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldClassification, v))
}

// ClassificationLTE applies the LTE predicate on the "classification" field.
func ClassificationLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldClassification, v))
}

// ClassificationContains applies the Contains predicate on the "classification" field.
func ClassificationContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldClassification, v))
}

// ClassificationHasPrefix applies the HasPrefix predicate on the "classification" field.
func ClassificationHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldClassification, v))
}

// ClassificationHasSuffix applies the HasSuffix predicate on the "classification" field.
func ClassificationHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldClassification, v))
}

// ClassificationEqualFold applies the EqualFold predicate on the "classification" field.
func ClassificationEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldClassification, v))
}

// ClassificationContainsFold applies the ContainsFold predicate on the "classification" field.
func ClassificationContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldClassification, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.NotPredicates(p))
}
