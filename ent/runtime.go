// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/balajinix/avani-academy/ent/answerevent"
	"github.com/balajinix/avani-academy/ent/attempt"
	"github.com/balajinix/avani-academy/ent/genevent"
	"github.com/balajinix/avani-academy/ent/schema"
	"github.com/balajinix/avani-academy/ent/score"
	"github.com/balajinix/avani-academy/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescUserName is the schema descriptor for user_name field.
	answereventDescUserName := answereventFields[1].Descriptor()
	// answerevent.UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	answerevent.UserNameValidator = answereventDescUserName.Validators[0].(func(string) error)
	// answereventDescSubject is the schema descriptor for subject field.
	answereventDescSubject := answereventFields[2].Descriptor()
	// answerevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	answerevent.SubjectValidator = answereventDescSubject.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[3].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescAttempt is the schema descriptor for attempt field.
	answereventDescAttempt := answereventFields[5].Descriptor()
	// answerevent.AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	answerevent.AttemptValidator = answereventDescAttempt.Validators[0].(func(int) error)
	// answereventDescClassification is the schema descriptor for classification field.
	answereventDescClassification := answereventFields[7].Descriptor()
	// answerevent.ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	answerevent.ClassificationValidator = answereventDescClassification.Validators[0].(func(string) error)
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescUserName is the schema descriptor for user_name field.
	attemptDescUserName := attemptFields[0].Descriptor()
	// attempt.UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	attempt.UserNameValidator = attemptDescUserName.Validators[0].(func(string) error)
	// attemptDescSubject is the schema descriptor for subject field.
	attemptDescSubject := attemptFields[1].Descriptor()
	// attempt.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	attempt.SubjectValidator = attemptDescSubject.Validators[0].(func(string) error)
	// attemptDescUpdatedAt is the schema descriptor for updated_at field.
	attemptDescUpdatedAt := attemptFields[3].Descriptor()
	// attempt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	attempt.DefaultUpdatedAt = attemptDescUpdatedAt.Default.(func() time.Time)
	// attempt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	attempt.UpdateDefaultUpdatedAt = attemptDescUpdatedAt.UpdateDefault.(func() time.Time)
	geneventMixin := schema.GenEvent{}.Mixin()
	geneventMixinFields0 := geneventMixin[0].Fields()
	_ = geneventMixinFields0
	geneventFields := schema.GenEvent{}.Fields()
	_ = geneventFields
	// geneventDescTimestamp is the schema descriptor for timestamp field.
	geneventDescTimestamp := geneventMixinFields0[1].Descriptor()
	// genevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	genevent.DefaultTimestamp = geneventDescTimestamp.Default.(func() time.Time)
	// geneventDescInputTokens is the schema descriptor for input_tokens field.
	geneventDescInputTokens := geneventFields[3].Descriptor()
	// genevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	genevent.DefaultInputTokens = geneventDescInputTokens.Default.(int)
	// geneventDescOutputTokens is the schema descriptor for output_tokens field.
	geneventDescOutputTokens := geneventFields[4].Descriptor()
	// genevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	genevent.DefaultOutputTokens = geneventDescOutputTokens.Default.(int)
	// geneventDescLatencyMs is the schema descriptor for latency_ms field.
	geneventDescLatencyMs := geneventFields[5].Descriptor()
	// genevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	genevent.DefaultLatencyMs = geneventDescLatencyMs.Default.(int64)
	// geneventDescErrorMessage is the schema descriptor for error_message field.
	geneventDescErrorMessage := geneventFields[7].Descriptor()
	// genevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	genevent.DefaultErrorMessage = geneventDescErrorMessage.Default.(string)
	scoreFields := schema.Score{}.Fields()
	_ = scoreFields
	// scoreDescUserName is the schema descriptor for user_name field.
	scoreDescUserName := scoreFields[0].Descriptor()
	// score.UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	score.UserNameValidator = scoreDescUserName.Validators[0].(func(string) error)
	// scoreDescSubject is the schema descriptor for subject field.
	scoreDescSubject := scoreFields[1].Descriptor()
	// score.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	score.SubjectValidator = scoreDescSubject.Validators[0].(func(string) error)
	// scoreDescPoints is the schema descriptor for points field.
	scoreDescPoints := scoreFields[2].Descriptor()
	// score.DefaultPoints holds the default value on creation for the points field.
	score.DefaultPoints = scoreDescPoints.Default.(int)
	// score.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	score.PointsValidator = scoreDescPoints.Validators[0].(func(int) error)
	// scoreDescUpdatedAt is the schema descriptor for updated_at field.
	scoreDescUpdatedAt := scoreFields[3].Descriptor()
	// score.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	score.DefaultUpdatedAt = scoreDescUpdatedAt.Default.(func() time.Time)
	// score.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	score.UpdateDefaultUpdatedAt = scoreDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
