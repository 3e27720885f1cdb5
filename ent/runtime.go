// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pyquiz/ent/question"
	"github.com/abhisek/pyquiz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescTopic is the schema descriptor for topic field.
	questionDescTopic := questionFields[0].Descriptor()
	// question.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	question.TopicValidator = questionDescTopic.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[1].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[3].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[5].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
}
