// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/bloomtutor/ent/learnerprofile"
	"github.com/abhisek/bloomtutor/ent/lessonplan"
	"github.com/abhisek/bloomtutor/ent/llmrequestevent"
	"github.com/abhisek/bloomtutor/ent/masteryrecord"
	"github.com/abhisek/bloomtutor/ent/message"
	"github.com/abhisek/bloomtutor/ent/schema"
	"github.com/abhisek/bloomtutor/ent/tutorattempt"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learnerprofileFields := schema.LearnerProfile{}.Fields()
	_ = learnerprofileFields
	// learnerprofileDescLearnerID is the schema descriptor for learner_id field.
	learnerprofileDescLearnerID := learnerprofileFields[0].Descriptor()
	// learnerprofile.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learnerprofile.LearnerIDValidator = learnerprofileDescLearnerID.Validators[0].(func(string) error)
	// learnerprofileDescPreferredMode is the schema descriptor for preferred_mode field.
	learnerprofileDescPreferredMode := learnerprofileFields[1].Descriptor()
	// learnerprofile.DefaultPreferredMode holds the default value on creation for the preferred_mode field.
	learnerprofile.DefaultPreferredMode = learnerprofileDescPreferredMode.Default.(string)
	// learnerprofileDescLearningStyle is the schema descriptor for learning_style field.
	learnerprofileDescLearningStyle := learnerprofileFields[2].Descriptor()
	// learnerprofile.DefaultLearningStyle holds the default value on creation for the learning_style field.
	learnerprofile.DefaultLearningStyle = learnerprofileDescLearningStyle.Default.(string)
	// learnerprofileDescSessionCount is the schema descriptor for session_count field.
	learnerprofileDescSessionCount := learnerprofileFields[4].Descriptor()
	// learnerprofile.DefaultSessionCount holds the default value on creation for the session_count field.
	learnerprofile.DefaultSessionCount = learnerprofileDescSessionCount.Default.(int)
	// learnerprofileDescTotalTimeMins is the schema descriptor for total_time_mins field.
	learnerprofileDescTotalTimeMins := learnerprofileFields[5].Descriptor()
	// learnerprofile.DefaultTotalTimeMins holds the default value on creation for the total_time_mins field.
	learnerprofile.DefaultTotalTimeMins = learnerprofileDescTotalTimeMins.Default.(int)
	// learnerprofileDescCreatedAt is the schema descriptor for created_at field.
	learnerprofileDescCreatedAt := learnerprofileFields[6].Descriptor()
	// learnerprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	learnerprofile.DefaultCreatedAt = learnerprofileDescCreatedAt.Default.(func() time.Time)
	// learnerprofileDescUpdatedAt is the schema descriptor for updated_at field.
	learnerprofileDescUpdatedAt := learnerprofileFields[7].Descriptor()
	// learnerprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learnerprofile.DefaultUpdatedAt = learnerprofileDescUpdatedAt.Default.(func() time.Time)
	// learnerprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learnerprofile.UpdateDefaultUpdatedAt = learnerprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	lessonplanFields := schema.LessonPlan{}.Fields()
	_ = lessonplanFields
	// lessonplanDescSessionID is the schema descriptor for session_id field.
	lessonplanDescSessionID := lessonplanFields[0].Descriptor()
	// lessonplan.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonplan.SessionIDValidator = lessonplanDescSessionID.Validators[0].(func(string) error)
	// lessonplanDescLearnerID is the schema descriptor for learner_id field.
	lessonplanDescLearnerID := lessonplanFields[1].Descriptor()
	// lessonplan.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	lessonplan.LearnerIDValidator = lessonplanDescLearnerID.Validators[0].(func(string) error)
	// lessonplanDescSubject is the schema descriptor for subject field.
	lessonplanDescSubject := lessonplanFields[2].Descriptor()
	// lessonplan.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	lessonplan.SubjectValidator = lessonplanDescSubject.Validators[0].(func(string) error)
	// lessonplanDescTopic is the schema descriptor for topic field.
	lessonplanDescTopic := lessonplanFields[3].Descriptor()
	// lessonplan.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	lessonplan.TopicValidator = lessonplanDescTopic.Validators[0].(func(string) error)
	// lessonplanDescGradeLevel is the schema descriptor for grade_level field.
	lessonplanDescGradeLevel := lessonplanFields[4].Descriptor()
	// lessonplan.DefaultGradeLevel holds the default value on creation for the grade_level field.
	lessonplan.DefaultGradeLevel = lessonplanDescGradeLevel.Default.(string)
	// lessonplanDescPriorCheck is the schema descriptor for prior_check field.
	lessonplanDescPriorCheck := lessonplanFields[6].Descriptor()
	// lessonplan.DefaultPriorCheck holds the default value on creation for the prior_check field.
	lessonplan.DefaultPriorCheck = lessonplanDescPriorCheck.Default.(string)
	// lessonplanDescTotalMinutes is the schema descriptor for total_minutes field.
	lessonplanDescTotalMinutes := lessonplanFields[9].Descriptor()
	// lessonplan.DefaultTotalMinutes holds the default value on creation for the total_minutes field.
	lessonplan.DefaultTotalMinutes = lessonplanDescTotalMinutes.Default.(int)
	// lessonplanDescCreatedAt is the schema descriptor for created_at field.
	lessonplanDescCreatedAt := lessonplanFields[10].Descriptor()
	// lessonplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonplan.DefaultCreatedAt = lessonplanDescCreatedAt.Default.(func() time.Time)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescLearnerID is the schema descriptor for learner_id field.
	masteryrecordDescLearnerID := masteryrecordFields[0].Descriptor()
	// masteryrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	masteryrecord.LearnerIDValidator = masteryrecordDescLearnerID.Validators[0].(func(string) error)
	// masteryrecordDescSubject is the schema descriptor for subject field.
	masteryrecordDescSubject := masteryrecordFields[1].Descriptor()
	// masteryrecord.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	masteryrecord.SubjectValidator = masteryrecordDescSubject.Validators[0].(func(string) error)
	// masteryrecordDescTopic is the schema descriptor for topic field.
	masteryrecordDescTopic := masteryrecordFields[2].Descriptor()
	// masteryrecord.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	masteryrecord.TopicValidator = masteryrecordDescTopic.Validators[0].(func(string) error)
	// masteryrecordDescBloomLevel is the schema descriptor for bloom_level field.
	masteryrecordDescBloomLevel := masteryrecordFields[3].Descriptor()
	// masteryrecord.BloomLevelValidator is a validator for the "bloom_level" field. It is called by the builders before save.
	masteryrecord.BloomLevelValidator = masteryrecordDescBloomLevel.Validators[0].(func(string) error)
	// masteryrecordDescScore is the schema descriptor for score field.
	masteryrecordDescScore := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultScore holds the default value on creation for the score field.
	masteryrecord.DefaultScore = masteryrecordDescScore.Default.(float64)
	// masteryrecord.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	masteryrecord.ScoreValidator = func() func(float64) error {
		validators := masteryrecordDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// masteryrecordDescAttempts is the schema descriptor for attempts field.
	masteryrecordDescAttempts := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultAttempts holds the default value on creation for the attempts field.
	masteryrecord.DefaultAttempts = masteryrecordDescAttempts.Default.(int)
	// masteryrecordDescCorrectCount is the schema descriptor for correct_count field.
	masteryrecordDescCorrectCount := masteryrecordFields[6].Descriptor()
	// masteryrecord.DefaultCorrectCount holds the default value on creation for the correct_count field.
	masteryrecord.DefaultCorrectCount = masteryrecordDescCorrectCount.Default.(int)
	// masteryrecordDescIncorrectCount is the schema descriptor for incorrect_count field.
	masteryrecordDescIncorrectCount := masteryrecordFields[7].Descriptor()
	// masteryrecord.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	masteryrecord.DefaultIncorrectCount = masteryrecordDescIncorrectCount.Default.(int)
	// masteryrecordDescLastPracticedAt is the schema descriptor for last_practiced_at field.
	masteryrecordDescLastPracticedAt := masteryrecordFields[8].Descriptor()
	// masteryrecord.DefaultLastPracticedAt holds the default value on creation for the last_practiced_at field.
	masteryrecord.DefaultLastPracticedAt = masteryrecordDescLastPracticedAt.Default.(func() time.Time)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescTimestamp is the schema descriptor for timestamp field.
	messageDescTimestamp := messageMixinFields0[1].Descriptor()
	// message.DefaultTimestamp holds the default value on creation for the timestamp field.
	message.DefaultTimestamp = messageDescTimestamp.Default.(func() time.Time)
	// messageDescSessionID is the schema descriptor for session_id field.
	messageDescSessionID := messageFields[0].Descriptor()
	// message.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	message.SessionIDValidator = messageDescSessionID.Validators[0].(func(string) error)
	// messageDescRole is the schema descriptor for role field.
	messageDescRole := messageFields[1].Descriptor()
	// message.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	message.RoleValidator = messageDescRole.Validators[0].(func(string) error)
	// messageDescMessageType is the schema descriptor for message_type field.
	messageDescMessageType := messageFields[3].Descriptor()
	// message.DefaultMessageType holds the default value on creation for the message_type field.
	message.DefaultMessageType = messageDescMessageType.Default.(string)
	// messageDescAwaitingAnswer is the schema descriptor for awaiting_answer field.
	messageDescAwaitingAnswer := messageFields[4].Descriptor()
	// message.DefaultAwaitingAnswer holds the default value on creation for the awaiting_answer field.
	message.DefaultAwaitingAnswer = messageDescAwaitingAnswer.Default.(bool)
	tutorattemptMixin := schema.TutorAttempt{}.Mixin()
	tutorattemptMixinFields0 := tutorattemptMixin[0].Fields()
	_ = tutorattemptMixinFields0
	tutorattemptFields := schema.TutorAttempt{}.Fields()
	_ = tutorattemptFields
	// tutorattemptDescTimestamp is the schema descriptor for timestamp field.
	tutorattemptDescTimestamp := tutorattemptMixinFields0[1].Descriptor()
	// tutorattempt.DefaultTimestamp holds the default value on creation for the timestamp field.
	tutorattempt.DefaultTimestamp = tutorattemptDescTimestamp.Default.(func() time.Time)
	// tutorattemptDescSessionID is the schema descriptor for session_id field.
	tutorattemptDescSessionID := tutorattemptFields[0].Descriptor()
	// tutorattempt.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	tutorattempt.SessionIDValidator = tutorattemptDescSessionID.Validators[0].(func(string) error)
	// tutorattemptDescLearnerID is the schema descriptor for learner_id field.
	tutorattemptDescLearnerID := tutorattemptFields[1].Descriptor()
	// tutorattempt.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	tutorattempt.LearnerIDValidator = tutorattemptDescLearnerID.Validators[0].(func(string) error)
	// tutorattemptDescSubject is the schema descriptor for subject field.
	tutorattemptDescSubject := tutorattemptFields[2].Descriptor()
	// tutorattempt.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	tutorattempt.SubjectValidator = tutorattemptDescSubject.Validators[0].(func(string) error)
	// tutorattemptDescTopic is the schema descriptor for topic field.
	tutorattemptDescTopic := tutorattemptFields[3].Descriptor()
	// tutorattempt.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	tutorattempt.TopicValidator = tutorattemptDescTopic.Validators[0].(func(string) error)
	// tutorattemptDescBloomLevel is the schema descriptor for bloom_level field.
	tutorattemptDescBloomLevel := tutorattemptFields[4].Descriptor()
	// tutorattempt.BloomLevelValidator is a validator for the "bloom_level" field. It is called by the builders before save.
	tutorattempt.BloomLevelValidator = tutorattemptDescBloomLevel.Validators[0].(func(string) error)
	// tutorattemptDescConfidence is the schema descriptor for confidence field.
	tutorattemptDescConfidence := tutorattemptFields[8].Descriptor()
	// tutorattempt.DefaultConfidence holds the default value on creation for the confidence field.
	tutorattempt.DefaultConfidence = tutorattemptDescConfidence.Default.(float64)
	// tutorattemptDescFeedback is the schema descriptor for feedback field.
	tutorattemptDescFeedback := tutorattemptFields[9].Descriptor()
	// tutorattempt.DefaultFeedback holds the default value on creation for the feedback field.
	tutorattempt.DefaultFeedback = tutorattemptDescFeedback.Default.(string)
	// tutorattemptDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	tutorattemptDescTimeSpentMs := tutorattemptFields[10].Descriptor()
	// tutorattempt.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	tutorattempt.DefaultTimeSpentMs = tutorattemptDescTimeSpentMs.Default.(int)
}
