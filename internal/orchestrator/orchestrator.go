// Package orchestrator runs the per-turn tutoring state machine. Each
// learner message is classified, dispatched to the lesson planner,
// probe engine, or answer pipeline, and the resulting mastery and
// adaptation updates flow back into the store before the response is
// returned to the delivery layer.
package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/bloomtutor/internal/adapt"
	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/feedback"
	"github.com/abhisek/bloomtutor/internal/grading"
	"github.com/abhisek/bloomtutor/internal/intent"
	"github.com/abhisek/bloomtutor/internal/knowledge"
	"github.com/abhisek/bloomtutor/internal/lessonplan"
	"github.com/abhisek/bloomtutor/internal/probe"
	"github.com/abhisek/bloomtutor/internal/store"
)

// historyWindow is how many prior turns are loaded for context.
const historyWindow = 5

// MessageType labels what kind of response a turn produced.
const (
	TypeLessonPlan    = "lesson_plan"
	TypeProbe         = "socratic_probe"
	TypeCanned        = "canned_response"
	TypeFeedback      = "feedback"
	TypeReorientation = "reorientation"
)

// Request is one learner turn.
type Request struct {
	LearnerID  string
	SessionID  string
	Message    string
	Subject    string
	Topic      string
	GradeLevel string
}

// Result is what the delivery layer renders and persists for one turn.
type Result struct {
	ResponseText string
	MessageType  string

	// AwaitingAnswer is true when ResponseText ends in a question the
	// learner is expected to answer; the delivery layer must persist the
	// tutor message with this flag so the next turn is graded.
	AwaitingAnswer bool

	LessonPlan     *store.LessonPlan
	Feedback       *feedback.Record
	Probe          *probe.Question
	Adaptation     *adapt.Decision
	MasteryUpdated bool
}

// The collaborator surfaces the orchestrator consumes. Narrow on purpose
// so tests can substitute deterministic fakes.
type classifier interface {
	Classify(ctx context.Context, utterance string, history []*store.Message) intent.Classification
}

type planner interface {
	CreatePlan(ctx context.Context, in lessonplan.PlanInput) (*store.LessonPlan, error)
}

type prober interface {
	GenerateProbe(ctx context.Context, in probe.Input) *probe.Question
}

type feedbacker interface {
	GenerateFeedback(ctx context.Context, in feedback.Input) (*feedback.Record, error)
}

// Deps are the store collaborators, injected so tests can run in memory.
type Deps struct {
	Profiles store.ProfileRepo
	Mastery  store.MasteryRepo
	Plans    store.PlanRepo
	Attempts store.AttemptRepo
	Messages store.MessageRepo
}

// Config tunes orchestrator behavior.
type Config struct {
	// TurnTimeout bounds one full turn including generation calls.
	// Zero means no timeout.
	TurnTimeout time.Duration
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{TurnTimeout: 90 * time.Second}
}

// Orchestrator composes the tutoring components into per-turn handling.
type Orchestrator struct {
	deps      Deps
	tracker   *knowledge.Tracker
	intents   classifier
	plans     planner
	probes    prober
	feedbacks feedbacker
	assessor  grading.Assessor
	cfg       Config

	// Turns within one session are serialized; sessions run in parallel.
	mu       sync.Mutex
	sessions map[string]*sync.Mutex
}

// New wires an orchestrator from its collaborators.
func New(deps Deps, intents classifier, plans planner, probes prober, feedbacks feedbacker, assessor grading.Assessor, cfg Config) *Orchestrator {
	return &Orchestrator{
		deps:      deps,
		tracker:   knowledge.NewTracker(deps.Mastery),
		intents:   intents,
		plans:     plans,
		probes:    probes,
		feedbacks: feedbacks,
		assessor:  assessor,
		cfg:       cfg,
		sessions:  make(map[string]*sync.Mutex),
	}
}

func (o *Orchestrator) sessionLock(sessionID string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()
	l, ok := o.sessions[sessionID]
	if !ok {
		l = &sync.Mutex{}
		o.sessions[sessionID] = l
	}
	return l
}

// Orchestrate processes one learner turn and returns the response plus
// structured metadata. The delivery layer persists both sides of the
// turn as messages and streams ResponseText to the learner.
func (o *Orchestrator) Orchestrate(ctx context.Context, req Request) (*Result, error) {
	lock := o.sessionLock(req.SessionID)
	lock.Lock()
	defer lock.Unlock()

	if o.cfg.TurnTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.TurnTimeout)
		defer cancel()
	}

	history, err := o.deps.Messages.LastN(ctx, req.SessionID, historyWindow)
	if err != nil {
		return nil, fmt.Errorf("load session history: %w", err)
	}

	profile, err := o.deps.Profiles.GetOrCreate(ctx, req.LearnerID)
	if err != nil {
		return nil, fmt.Errorf("ensure learner profile: %w", err)
	}
	if len(history) == 0 {
		profile.SessionCount++
		if err := o.deps.Profiles.Update(ctx, profile); err != nil {
			return nil, fmt.Errorf("update learner profile: %w", err)
		}
	}

	// A turn is an answer attempt only when the session's latest message
	// is a tutor question still awaiting one. The classifier is never
	// asked to detect this.
	if len(history) > 0 {
		last := history[len(history)-1]
		if last.Role == store.RoleTutor && last.AwaitingAnswer {
			return o.processAnswer(ctx, req, profile, last)
		}
	}

	cls := o.intents.Classify(ctx, req.Message, history)

	state, err := o.tracker.State(ctx, req.LearnerID, req.Subject, req.Topic)
	if err != nil {
		return nil, fmt.Errorf("derive knowledge state: %w", err)
	}

	switch cls.Intent {
	case intent.Conceptual:
		return o.handleConceptual(ctx, req, state)
	case intent.Application, intent.Confusion:
		return o.handleProbe(ctx, req, state)
	case intent.Administrative:
		return o.handleAdministrative(req, state), nil
	default:
		// Unclassifiable utterance: a probe is the most courteous way to
		// re-engage, and probe generation cannot fail.
		return o.handleProbe(ctx, req, state)
	}
}

func (o *Orchestrator) handleConceptual(ctx context.Context, req Request, state *knowledge.State) (*Result, error) {
	plan, err := o.deps.Plans.Get(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load lesson plan: %w", err)
	}
	if plan == nil {
		generated, err := o.plans.CreatePlan(ctx, lessonplan.PlanInput{
			SessionID:   req.SessionID,
			LearnerID:   req.LearnerID,
			Subject:     req.Subject,
			Topic:       req.Topic,
			GradeLevel:  req.GradeLevel,
			TargetLevel: state.RecommendedLevel,
		})
		if err != nil {
			return nil, err
		}
		plan, err = o.deps.Plans.CreateIfAbsent(ctx, generated)
		if err != nil {
			return nil, fmt.Errorf("persist lesson plan: %w", err)
		}
	}

	return &Result{
		ResponseText:   formatPlanMessage(plan),
		MessageType:    TypeLessonPlan,
		AwaitingAnswer: true, // the plan message ends with the prior-knowledge check
		LessonPlan:     plan,
	}, nil
}

func (o *Orchestrator) handleProbe(ctx context.Context, req Request, state *knowledge.State) (*Result, error) {
	in := probe.Input{
		Topic:        req.Topic,
		BloomLevel:   state.RecommendedLevel,
		LastResponse: req.Message,
	}
	if plan, err := o.deps.Plans.Get(ctx, req.SessionID); err == nil && plan != nil && len(plan.Goals) > 0 {
		in.LearningGoal = plan.Goals[0]
	}

	q := o.probes.GenerateProbe(ctx, in)
	return &Result{
		ResponseText:   q.Text,
		MessageType:    TypeProbe,
		AwaitingAnswer: true,
		Probe:          q,
	}, nil
}

func (o *Orchestrator) handleAdministrative(req Request, state *knowledge.State) *Result {
	return &Result{
		ResponseText: formatSessionInfo(req, state),
		MessageType:  TypeCanned,
	}
}

// processAnswer grades the learner's reply to the open tutor question
// and runs the full mastery, feedback, and adaptation pipeline.
func (o *Orchestrator) processAnswer(ctx context.Context, req Request, profile *store.LearnerProfile, question *store.Message) (*Result, error) {
	if question == nil || question.Role != store.RoleTutor {
		return &Result{
			ResponseText: reorientationMessage(req.Topic),
			MessageType:  TypeReorientation,
		}, nil
	}

	level := o.attemptLevel(ctx, req)

	grade, err := o.assessor.Assess(ctx, question.Content, "", req.Message)
	if err != nil {
		return nil, fmt.Errorf("assess answer: %w", err)
	}

	rec, err := o.feedbacks.GenerateFeedback(ctx, feedback.Input{
		Question:      question.Content,
		LearnerAnswer: req.Message,
		Correct:       grade.Correct,
		BloomLevel:    level,
	})
	if err != nil {
		return nil, err
	}

	conf := grade.Confidence
	updated, err := o.tracker.UpdateMastery(ctx, req.LearnerID, req.Subject, req.Topic, level, grade.Correct, &conf)
	if err != nil {
		return nil, fmt.Errorf("update mastery: %w", err)
	}

	responseText := rec.Process
	if responseText == "" {
		responseText = rec.Task
	}

	if err := o.deps.Attempts.Append(ctx, &store.TutorAttempt{
		SessionID:  req.SessionID,
		LearnerID:  req.LearnerID,
		Subject:    req.Subject,
		Topic:      req.Topic,
		BloomLevel: level,
		Question:   question.Content,
		Answer:     req.Message,
		Correct:    grade.Correct,
		Confidence: grade.Confidence,
		Feedback:   responseText,
	}); err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	if err := o.deps.Messages.ResolveAwaiting(ctx, req.SessionID); err != nil {
		return nil, fmt.Errorf("resolve open question: %w", err)
	}

	if !grade.Correct {
		profile.AddError(store.TrackedError{
			Type:      "incorrect_answer",
			Context:   req.Subject + "/" + req.Topic + "@" + string(level),
			Timestamp: time.Now(),
		})
		if err := o.deps.Profiles.Update(ctx, profile); err != nil {
			return nil, fmt.Errorf("update learner profile: %w", err)
		}
	}

	attempt, err := o.attemptNumber(ctx, req)
	if err != nil {
		return nil, err
	}
	decision := adapt.AdaptDifficulty(adapt.Input{
		CurrentLevel: level,
		Correct:      grade.Correct,
		Attempt:      attempt,
		Confidence:   &conf,
		MasteryScore: updated.Score,
	})

	return &Result{
		ResponseText:   responseText,
		MessageType:    TypeFeedback,
		Feedback:       rec,
		Adaptation:     &decision,
		MasteryUpdated: true,
	}, nil
}

// attemptLevel is the Bloom level the open question was asked at: the
// recommended level from the state as it stood before this answer.
func (o *Orchestrator) attemptLevel(ctx context.Context, req Request) bloom.Level {
	state, err := o.tracker.State(ctx, req.LearnerID, req.Subject, req.Topic)
	if err != nil {
		return bloom.Remember
	}
	return state.RecommendedLevel
}

// attemptNumber counts how many times in a row the learner has just
// missed on this topic: the current consecutive-incorrect streak plus
// one. A fresh or just-correct item is attempt 1.
func (o *Orchestrator) attemptNumber(ctx context.Context, req Request) (int, error) {
	recent, err := o.deps.Attempts.ListRecent(ctx, req.LearnerID, req.Subject, req.Topic, historyWindow)
	if err != nil {
		return 0, fmt.Errorf("load recent attempts: %w", err)
	}
	n := 1
	// Skip the attempt just recorded, then count the miss streak.
	for i, a := range recent {
		if i == 0 {
			continue
		}
		if a.Correct {
			break
		}
		n++
	}
	return n, nil
}
