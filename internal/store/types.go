package store

import (
	"context"
	"time"

	"github.com/abhisek/bloomtutor/internal/bloom"
)

// MaxTrackedErrors bounds the per-learner error history ring buffer.
const MaxTrackedErrors = 50

// LearnerProfile is the per-learner tutoring record. Created lazily on the
// first interaction; mutated by the orchestrator after each turn.
type LearnerProfile struct {
	LearnerID     string
	PreferredMode string
	LearningStyle string
	TrackedErrors []TrackedError
	SessionCount  int
	TotalTimeMins int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TrackedError is one entry in a profile's bounded error history.
type TrackedError struct {
	Type      string
	Context   string
	Timestamp time.Time
}

// AddError appends to the tracked-error ring, evicting the oldest entry
// once the buffer holds MaxTrackedErrors.
func (p *LearnerProfile) AddError(e TrackedError) {
	p.TrackedErrors = append(p.TrackedErrors, e)
	if len(p.TrackedErrors) > MaxTrackedErrors {
		p.TrackedErrors = p.TrackedErrors[len(p.TrackedErrors)-MaxTrackedErrors:]
	}
}

// MasteryRecord is one learner's mastery at one Bloom level of a topic.
type MasteryRecord struct {
	LearnerID       string
	Subject         string
	Topic           string
	BloomLevel      bloom.Level
	Score           float64
	Attempts        int
	CorrectCount    int
	IncorrectCount  int
	LastPracticedAt time.Time
}

// LessonPlan is the persisted multi-step plan for one session.
type LessonPlan struct {
	SessionID    string
	LearnerID    string
	Subject      string
	Topic        string
	GradeLevel   string
	Goals        []string
	PriorCheck   string
	Steps        []LessonStep
	Resources    []string
	TotalMinutes int
	CreatedAt    time.Time
}

// LessonStep is one ordered step of a lesson plan.
type LessonStep struct {
	Type             string // explain, example, practice, reflection, probe
	Content          string
	BloomLevel       bloom.Level
	Checkpoints      []string
	EstimatedMinutes int
}

// TutorAttempt is the append-only record of one graded answer.
type TutorAttempt struct {
	SessionID   string
	LearnerID   string
	Subject     string
	Topic       string
	BloomLevel  bloom.Level
	Question    string
	Answer      string
	Correct     bool
	Confidence  float64
	Feedback    string
	TimeSpentMs int
}

// AttemptStats summarizes a learner's recent graded attempts on a topic.
type AttemptStats struct {
	Total         int
	Correct       int
	AvgConfidence float64
}

// Message is one turn in a session's conversation log.
type Message struct {
	Sequence       int64
	SessionID      string
	Role           string // "tutor" or "learner"
	Content        string
	MessageType    string
	AwaitingAnswer bool
	Timestamp      time.Time
}

// Role values for Message.Role.
const (
	RoleTutor   = "tutor"
	RoleLearner = "learner"
)

// ProfileRepo manages learner profiles.
type ProfileRepo interface {
	// GetOrCreate returns the profile for learnerID, creating a default
	// one if the learner has never been seen.
	GetOrCreate(ctx context.Context, learnerID string) (*LearnerProfile, error)

	// Update persists mutated profile fields.
	Update(ctx context.Context, p *LearnerProfile) error
}

// MasteryRepo manages mastery records.
type MasteryRepo interface {
	// Get returns the record for the full key, or nil if absent.
	Get(ctx context.Context, learnerID, subject, topic string, lvl bloom.Level) (*MasteryRecord, error)

	// List returns all records for (learner, subject, topic) in no
	// particular order.
	List(ctx context.Context, learnerID, subject, topic string) ([]*MasteryRecord, error)

	// Create inserts a new record.
	Create(ctx context.Context, rec *MasteryRecord) error

	// Update persists an existing record's counters and score.
	Update(ctx context.Context, rec *MasteryRecord) error
}

// PlanRepo manages lesson plans, one per session.
type PlanRepo interface {
	// Get returns the plan for sessionID, or nil if none exists.
	Get(ctx context.Context, sessionID string) (*LessonPlan, error)

	// CreateIfAbsent atomically inserts plan unless the session already
	// has one, and returns the plan that is now stored (which may be a
	// previously persisted one under concurrent creation).
	CreateIfAbsent(ctx context.Context, plan *LessonPlan) (*LessonPlan, error)
}

// AttemptRepo manages the append-only tutor attempt log.
type AttemptRepo interface {
	// Append records one graded answer. Rows are never mutated.
	Append(ctx context.Context, a *TutorAttempt) error

	// Stats summarizes the last lastN attempts for (learner, subject,
	// topic), newest first. lastN <= 0 means all.
	Stats(ctx context.Context, learnerID, subject, topic string, lastN int) (AttemptStats, error)

	// ListRecent returns up to n most recent attempts for (learner,
	// subject, topic), newest first. n <= 0 means all.
	ListRecent(ctx context.Context, learnerID, subject, topic string, n int) ([]*TutorAttempt, error)
}

// MessageRepo manages the session conversation log.
type MessageRepo interface {
	// Append records one turn message and assigns its sequence.
	Append(ctx context.Context, m *Message) error

	// LastN returns up to n most recent messages for the session,
	// ordered oldest to newest.
	LastN(ctx context.Context, sessionID string, n int) ([]*Message, error)

	// Last returns the most recent message in the session, or nil if
	// the session has no messages.
	Last(ctx context.Context, sessionID string) (*Message, error)

	// LastTutorMessage returns the most recent tutor-authored message,
	// or nil if there is none.
	LastTutorMessage(ctx context.Context, sessionID string) (*Message, error)

	// ResolveAwaiting clears the awaiting_answer flag on all open tutor
	// messages in the session.
	ResolveAwaiting(ctx context.Context, sessionID string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventRecord is one persisted LLM request event.
type LLMRequestEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStats aggregates LLM usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides access to observability events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first, filtered by opts.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
