// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearnerProfilesColumns holds the columns for the "learner_profiles" table.
	LearnerProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "preferred_mode", Type: field.TypeString, Default: "socratic"},
		{Name: "learning_style", Type: field.TypeString, Default: ""},
		{Name: "tracked_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "session_count", Type: field.TypeInt, Default: 0},
		{Name: "total_time_mins", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnerProfilesTable holds the schema information for the "learner_profiles" table.
	LearnerProfilesTable = &schema.Table{
		Name:       "learner_profiles",
		Columns:    LearnerProfilesColumns,
		PrimaryKey: []*schema.Column{LearnerProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnerprofile_learner_id",
				Unique:  true,
				Columns: []*schema.Column{LearnerProfilesColumns[1]},
			},
		},
	}
	// LessonPlansColumns holds the columns for the "lesson_plans" table.
	LessonPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "grade_level", Type: field.TypeString, Default: ""},
		{Name: "goals", Type: field.TypeJSON},
		{Name: "prior_check", Type: field.TypeString, Default: ""},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "resources", Type: field.TypeJSON, Nullable: true},
		{Name: "total_minutes", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LessonPlansTable holds the schema information for the "lesson_plans" table.
	LessonPlansTable = &schema.Table{
		Name:       "lesson_plans",
		Columns:    LessonPlansColumns,
		PrimaryKey: []*schema.Column{LessonPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonplan_learner_id",
				Unique:  false,
				Columns: []*schema.Column{LessonPlansColumns[2]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "bloom_level", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_count", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_learner_id_subject_topic_bloom_level",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2], MasteryRecordsColumns[3], MasteryRecordsColumns[4]},
			},
			{
				Name:    "masteryrecord_learner_id_subject_topic",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2], MasteryRecordsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "message_type", Type: field.TypeString, Default: ""},
		{Name: "awaiting_answer", Type: field.TypeBool, Default: false},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_sequence",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1]},
			},
			{
				Name:    "message_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2]},
			},
			{
				Name:    "message_session_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3]},
			},
			{
				Name:    "message_session_id_role",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3], MessagesColumns[4]},
			},
		},
	}
	// TutorAttemptsColumns holds the columns for the "tutor_attempts" table.
	TutorAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "bloom_level", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "feedback", Type: field.TypeString, Default: ""},
		{Name: "time_spent_ms", Type: field.TypeInt, Default: 0},
	}
	// TutorAttemptsTable holds the schema information for the "tutor_attempts" table.
	TutorAttemptsTable = &schema.Table{
		Name:       "tutor_attempts",
		Columns:    TutorAttemptsColumns,
		PrimaryKey: []*schema.Column{TutorAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorattempt_sequence",
				Unique:  false,
				Columns: []*schema.Column{TutorAttemptsColumns[1]},
			},
			{
				Name:    "tutorattempt_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TutorAttemptsColumns[2]},
			},
			{
				Name:    "tutorattempt_session_id",
				Unique:  false,
				Columns: []*schema.Column{TutorAttemptsColumns[3]},
			},
			{
				Name:    "tutorattempt_learner_id_subject_topic",
				Unique:  false,
				Columns: []*schema.Column{TutorAttemptsColumns[4], TutorAttemptsColumns[5], TutorAttemptsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LearnerProfilesTable,
		LessonPlansTable,
		MasteryRecordsTable,
		MessagesTable,
		TutorAttemptsTable,
	}
)

func init() {
}
