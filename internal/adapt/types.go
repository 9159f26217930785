package adapt

import "github.com/abhisek/bloomtutor/internal/bloom"

// Action is the difficulty adjustment chosen for the next activity.
type Action string

const (
	ActionRaiseDifficulty Action = "raise_difficulty"
	ActionLowerDifficulty Action = "lower_difficulty"
	ActionMaintain        Action = "maintain"
	ActionReteach         Action = "reteach"
	ActionAdvanceTopic    Action = "advance_topic"
)

// Scaffolding is the amount of structural support to provide.
type Scaffolding string

const (
	FullSupport    Scaffolding = "full_support"
	PartialSupport Scaffolding = "partial_support"
	MinimalSupport Scaffolding = "minimal_support"
	Independent    Scaffolding = "independent"
)

// Decision is the engine's output for one graded attempt. It is ephemeral:
// computed per turn, returned to the caller, never stored.
type Decision struct {
	Action        Action
	NewBloomLevel bloom.Level
	Rationale     string
	Scaffolding   Scaffolding
}

// Activity is a coarse next-activity recommendation across a topic.
type Activity string

const (
	ActivityReviewGaps      Activity = "review_gaps"
	ActivityAdvanceTopic    Activity = "advance_topic"
	ActivityPracticeCurrent Activity = "practice_current"
	ActivityMixedReview     Activity = "mixed_review"
)

// ActivityRecommendation pairs an activity with an optional focus level.
type ActivityRecommendation struct {
	Activity   Activity
	FocusLevel bloom.Level // set for review_gaps
	Rationale  string
}

// Input carries everything the decision matrix consumes for one attempt.
type Input struct {
	// CurrentLevel is the Bloom level the attempt was made at.
	CurrentLevel bloom.Level

	// Correct is the grading outcome of the latest attempt.
	Correct bool

	// Attempt is the attempt number for this item, starting at 1.
	Attempt int

	// Confidence is the grader's confidence in [0,1], nil when the
	// grading capability reports none.
	Confidence *float64

	// MasteryScore is the learner's current mastery score at
	// CurrentLevel, 0 when no record exists.
	MasteryScore float64
}
