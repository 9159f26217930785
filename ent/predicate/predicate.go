// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearnerProfile is the predicate function for learnerprofile builders.
type LearnerProfile func(*sql.Selector)

// LessonPlan is the predicate function for lessonplan builders.
type LessonPlan func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// TutorAttempt is the predicate function for tutorattempt builders.
type TutorAttempt func(*sql.Selector)
