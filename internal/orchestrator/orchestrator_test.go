package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/bloomtutor/internal/adapt"
	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/feedback"
	"github.com/abhisek/bloomtutor/internal/grading"
	"github.com/abhisek/bloomtutor/internal/intent"
	"github.com/abhisek/bloomtutor/internal/lessonplan"
	"github.com/abhisek/bloomtutor/internal/probe"
	"github.com/abhisek/bloomtutor/internal/store"
)

// In-memory store fakes. Single-goroutine tests, no locking needed.

type fakeProfiles struct {
	profiles map[string]*store.LearnerProfile
	updates  int
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{profiles: make(map[string]*store.LearnerProfile)}
}

func (f *fakeProfiles) GetOrCreate(_ context.Context, learnerID string) (*store.LearnerProfile, error) {
	if p, ok := f.profiles[learnerID]; ok {
		return p, nil
	}
	p := &store.LearnerProfile{LearnerID: learnerID, PreferredMode: "socratic"}
	f.profiles[learnerID] = p
	return p, nil
}

func (f *fakeProfiles) Update(_ context.Context, p *store.LearnerProfile) error {
	f.profiles[p.LearnerID] = p
	f.updates++
	return nil
}

type masteryKey struct {
	learner, subject, topic string
	lvl                     bloom.Level
}

type fakeMastery struct {
	recs map[masteryKey]*store.MasteryRecord
}

func newFakeMastery() *fakeMastery {
	return &fakeMastery{recs: make(map[masteryKey]*store.MasteryRecord)}
}

func (f *fakeMastery) Get(_ context.Context, learnerID, subject, topic string, lvl bloom.Level) (*store.MasteryRecord, error) {
	return f.recs[masteryKey{learnerID, subject, topic, lvl}], nil
}

func (f *fakeMastery) List(_ context.Context, learnerID, subject, topic string) ([]*store.MasteryRecord, error) {
	var out []*store.MasteryRecord
	for k, r := range f.recs {
		if k.learner == learnerID && k.subject == subject && k.topic == topic {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMastery) Create(_ context.Context, rec *store.MasteryRecord) error {
	f.recs[masteryKey{rec.LearnerID, rec.Subject, rec.Topic, rec.BloomLevel}] = rec
	return nil
}

func (f *fakeMastery) Update(_ context.Context, rec *store.MasteryRecord) error {
	f.recs[masteryKey{rec.LearnerID, rec.Subject, rec.Topic, rec.BloomLevel}] = rec
	return nil
}

type fakePlans struct {
	plans map[string]*store.LessonPlan
}

func newFakePlans() *fakePlans {
	return &fakePlans{plans: make(map[string]*store.LessonPlan)}
}

func (f *fakePlans) Get(_ context.Context, sessionID string) (*store.LessonPlan, error) {
	return f.plans[sessionID], nil
}

func (f *fakePlans) CreateIfAbsent(_ context.Context, plan *store.LessonPlan) (*store.LessonPlan, error) {
	if existing, ok := f.plans[plan.SessionID]; ok {
		return existing, nil
	}
	f.plans[plan.SessionID] = plan
	return plan, nil
}

type fakeAttempts struct {
	attempts []*store.TutorAttempt
}

func (f *fakeAttempts) Append(_ context.Context, a *store.TutorAttempt) error {
	f.attempts = append(f.attempts, a)
	return nil
}

func (f *fakeAttempts) Stats(_ context.Context, learnerID, subject, topic string, lastN int) (store.AttemptStats, error) {
	stats := store.AttemptStats{}
	for _, a := range f.attempts {
		stats.Total++
		if a.Correct {
			stats.Correct++
		}
	}
	return stats, nil
}

func (f *fakeAttempts) ListRecent(_ context.Context, learnerID, subject, topic string, n int) ([]*store.TutorAttempt, error) {
	var out []*store.TutorAttempt
	for i := len(f.attempts) - 1; i >= 0; i-- {
		out = append(out, f.attempts[i])
		if n > 0 && len(out) == n {
			break
		}
	}
	return out, nil
}

type fakeMessages struct {
	msgs     []*store.Message
	resolved int
}

func (f *fakeMessages) Append(_ context.Context, m *store.Message) error {
	m.Sequence = int64(len(f.msgs) + 1)
	f.msgs = append(f.msgs, m)
	return nil
}

func (f *fakeMessages) LastN(_ context.Context, sessionID string, n int) ([]*store.Message, error) {
	var out []*store.Message
	for _, m := range f.msgs {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return out, nil
}

func (f *fakeMessages) Last(_ context.Context, sessionID string) (*store.Message, error) {
	for i := len(f.msgs) - 1; i >= 0; i-- {
		if f.msgs[i].SessionID == sessionID {
			return f.msgs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeMessages) LastTutorMessage(_ context.Context, sessionID string) (*store.Message, error) {
	for i := len(f.msgs) - 1; i >= 0; i-- {
		if f.msgs[i].SessionID == sessionID && f.msgs[i].Role == store.RoleTutor {
			return f.msgs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeMessages) ResolveAwaiting(_ context.Context, sessionID string) error {
	for _, m := range f.msgs {
		if m.SessionID == sessionID {
			m.AwaitingAnswer = false
		}
	}
	f.resolved++
	return nil
}

// Component fakes.

type fakeClassifier struct {
	result intent.Classification
}

func (f *fakeClassifier) Classify(_ context.Context, _ string, _ []*store.Message) intent.Classification {
	return f.result
}

type fakePlanner struct {
	calls int
	err   error
}

func (f *fakePlanner) CreatePlan(_ context.Context, in lessonplan.PlanInput) (*store.LessonPlan, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &store.LessonPlan{
		SessionID:  in.SessionID,
		LearnerID:  in.LearnerID,
		Subject:    in.Subject,
		Topic:      in.Topic,
		Goals:      []string{"define fractions", "compare fractions"},
		PriorCheck: "What does the bottom number tell you?",
		Steps: []store.LessonStep{
			{Type: "explain", Content: "Fractions name parts of a whole.", BloomLevel: bloom.Remember, EstimatedMinutes: 5},
			{Type: "practice", Content: "Shade 2/5 of a grid.", BloomLevel: bloom.Apply, EstimatedMinutes: 10},
		},
		TotalMinutes: 15,
	}, nil
}

type fakeProber struct {
	calls int
}

func (f *fakeProber) GenerateProbe(_ context.Context, in probe.Input) *probe.Question {
	f.calls++
	return &probe.Question{
		Text:       "What do the parts of " + in.Topic + " have in common?",
		BloomLevel: in.BloomLevel,
		Hints:      []string{"h1", "h2", "h3"},
		Category:   probe.Probing,
	}
}

type fakeFeedback struct {
	err error
}

func (f *fakeFeedback) GenerateFeedback(_ context.Context, in feedback.Input) (*feedback.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &feedback.Record{
		Task:           "task layer",
		Process:        "process layer",
		SelfRegulation: "self-regulation layer",
		BloomLevel:     in.BloomLevel,
	}, nil
}

type fakeAssessor struct {
	result grading.Result
}

func (f *fakeAssessor) Assess(_ context.Context, _, _, _ string) (grading.Result, error) {
	return f.result, nil
}

// harness bundles the fakes behind one orchestrator.
type harness struct {
	orch      *Orchestrator
	profiles  *fakeProfiles
	mastery   *fakeMastery
	plans     *fakePlans
	attempts  *fakeAttempts
	messages  *fakeMessages
	planner   *fakePlanner
	prober    *fakeProber
	feedbacks *fakeFeedback
}

func newHarness(cls intent.Classification, grade grading.Result) *harness {
	h := &harness{
		profiles:  newFakeProfiles(),
		mastery:   newFakeMastery(),
		plans:     newFakePlans(),
		attempts:  &fakeAttempts{},
		messages:  &fakeMessages{},
		planner:   &fakePlanner{},
		prober:    &fakeProber{},
		feedbacks: &fakeFeedback{},
	}
	h.orch = New(
		Deps{
			Profiles: h.profiles,
			Mastery:  h.mastery,
			Plans:    h.plans,
			Attempts: h.attempts,
			Messages: h.messages,
		},
		&fakeClassifier{result: cls},
		h.planner,
		h.prober,
		h.feedbacks,
		&fakeAssessor{result: grade},
		Config{},
	)
	return h
}

func turnRequest(msg string) Request {
	return Request{
		LearnerID: "learner-1",
		SessionID: "sess-1",
		Message:   msg,
		Subject:   "math",
		Topic:     "fractions",
	}
}

func TestConceptualGeneratesAndFormatsPlan(t *testing.T) {
	h := newHarness(intent.Classification{Intent: intent.Conceptual, Confidence: 0.9}, grading.Result{})

	res, err := h.orch.Orchestrate(context.Background(), turnRequest("can you teach me fractions?"))
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}

	if res.MessageType != TypeLessonPlan {
		t.Errorf("type = %s, want %s", res.MessageType, TypeLessonPlan)
	}
	if res.LessonPlan == nil {
		t.Fatal("missing plan in result")
	}
	if !res.AwaitingAnswer {
		t.Error("plan message ends with a question, should await an answer")
	}
	for _, want := range []string{"fractions", "1.", "2.", "What does the bottom number tell you?"} {
		if !strings.Contains(res.ResponseText, want) {
			t.Errorf("formatted plan missing %q:\n%s", want, res.ResponseText)
		}
	}
}

func TestPlanCreatedOncePerSession(t *testing.T) {
	h := newHarness(intent.Classification{Intent: intent.Conceptual, Confidence: 0.9}, grading.Result{})

	first, err := h.orch.Orchestrate(context.Background(), turnRequest("teach me"))
	if err != nil {
		t.Fatalf("first turn: %v", err)
	}
	second, err := h.orch.Orchestrate(context.Background(), turnRequest("teach me again"))
	if err != nil {
		t.Fatalf("second turn: %v", err)
	}

	if h.planner.calls != 1 {
		t.Errorf("planner calls = %d, want 1", h.planner.calls)
	}
	if first.LessonPlan != second.LessonPlan {
		t.Error("second turn should return the stored plan")
	}
}

func TestApplicationIntentReturnsProbe(t *testing.T) {
	h := newHarness(intent.Classification{Intent: intent.Application, Confidence: 0.8}, grading.Result{})

	res, err := h.orch.Orchestrate(context.Background(), turnRequest("give me a problem"))
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}

	if res.MessageType != TypeProbe {
		t.Errorf("type = %s, want %s", res.MessageType, TypeProbe)
	}
	if res.Probe == nil || res.Probe.Text == "" {
		t.Fatal("missing probe question")
	}
	if !res.AwaitingAnswer {
		t.Error("probe should await an answer")
	}
}

func TestAdministrativeIsReadOnly(t *testing.T) {
	h := newHarness(intent.Classification{Intent: intent.Administrative, Confidence: 0.9}, grading.Result{})
	// Prior history so the profile's session counter is not touched either.
	h.messages.msgs = []*store.Message{
		{SessionID: "sess-1", Role: store.RoleLearner, Content: "hi"},
	}

	res, err := h.orch.Orchestrate(context.Background(), turnRequest("how long have we been at this?"))
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}

	if res.MessageType != TypeCanned {
		t.Errorf("type = %s, want %s", res.MessageType, TypeCanned)
	}
	if res.AwaitingAnswer {
		t.Error("administrative response is not a question")
	}
	if len(h.attempts.attempts) != 0 || len(h.mastery.recs) != 0 || h.profiles.updates != 0 {
		t.Error("administrative turn must not mutate state")
	}
}

func TestAnswerAttemptRunsFullPipeline(t *testing.T) {
	h := newHarness(intent.Classification{Intent: intent.Conceptual, Confidence: 0.9}, grading.Result{Correct: true, Confidence: 0.9})
	h.messages.msgs = []*store.Message{
		{SessionID: "sess-1", Role: store.RoleLearner, Content: "quiz me"},
		{SessionID: "sess-1", Role: store.RoleTutor, Content: "What is 1/2 + 1/4?", AwaitingAnswer: true},
	}

	res, err := h.orch.Orchestrate(context.Background(), turnRequest("it is 3/4 because quarters"))
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}

	if res.MessageType != TypeFeedback {
		t.Errorf("type = %s, want %s", res.MessageType, TypeFeedback)
	}
	if res.ResponseText != "process layer" {
		t.Errorf("response = %q, want the process-level feedback", res.ResponseText)
	}
	if !res.MasteryUpdated {
		t.Error("mastery should be updated")
	}
	if res.Adaptation == nil {
		t.Fatal("missing adaptation decision")
	}
	if len(h.attempts.attempts) != 1 {
		t.Fatalf("attempts recorded = %d, want 1", len(h.attempts.attempts))
	}
	got := h.attempts.attempts[0]
	if !got.Correct || got.Question != "What is 1/2 + 1/4?" {
		t.Errorf("attempt row mismatch: %+v", got)
	}
	if h.messages.resolved != 1 {
		t.Error("open question flag should be resolved")
	}
	if len(h.mastery.recs) != 1 {
		t.Errorf("mastery records = %d, want 1", len(h.mastery.recs))
	}
}

func TestCorrectConfidentFirstAttemptAtHighMasteryRaises(t *testing.T) {
	h := newHarness(intent.Classification{Intent: intent.Conceptual, Confidence: 0.9}, grading.Result{Correct: true, Confidence: 0.9})
	// remember is mastered but understand is not, so the open question
	// was asked at understand; a clean confident success there blends to
	// a score past the raise threshold.
	h.mastery.recs[masteryKey{"learner-1", "math", "fractions", bloom.Remember}] = &store.MasteryRecord{
		LearnerID: "learner-1", Subject: "math", Topic: "fractions",
		BloomLevel: bloom.Remember, Score: 90, Attempts: 3, CorrectCount: 3,
	}
	h.mastery.recs[masteryKey{"learner-1", "math", "fractions", bloom.Understand}] = &store.MasteryRecord{
		LearnerID: "learner-1", Subject: "math", Topic: "fractions",
		BloomLevel: bloom.Understand, Score: 60, Attempts: 4, CorrectCount: 4,
	}
	h.messages.msgs = []*store.Message{
		{SessionID: "sess-1", Role: store.RoleTutor, Content: "Explain why 2/4 equals 1/2.", AwaitingAnswer: true},
	}

	res, err := h.orch.Orchestrate(context.Background(), turnRequest("because both name the same share of the whole"))
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}

	if res.Adaptation.Action != adapt.ActionRaiseDifficulty {
		t.Errorf("action = %s, want raise_difficulty (updated score pushes past threshold)", res.Adaptation.Action)
	}
	if res.Adaptation.NewBloomLevel != bloom.Apply {
		t.Errorf("new level = %s, want apply", res.Adaptation.NewBloomLevel)
	}
}

func TestIncorrectAnswerTracksError(t *testing.T) {
	h := newHarness(intent.Classification{Intent: intent.Conceptual, Confidence: 0.9}, grading.Result{Correct: false, Confidence: 0.8})
	h.messages.msgs = []*store.Message{
		{SessionID: "sess-1", Role: store.RoleTutor, Content: "What is 1/2 + 1/4?", AwaitingAnswer: true},
	}

	if _, err := h.orch.Orchestrate(context.Background(), turnRequest("2/6")); err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}

	p := h.profiles.profiles["learner-1"]
	if len(p.TrackedErrors) != 1 {
		t.Fatalf("tracked errors = %d, want 1", len(p.TrackedErrors))
	}
	if !strings.Contains(p.TrackedErrors[0].Context, "fractions") {
		t.Errorf("error context should name the topic: %+v", p.TrackedErrors[0])
	}
}

func TestFeedbackFailureIsFatal(t *testing.T) {
	h := newHarness(intent.Classification{Intent: intent.Conceptual, Confidence: 0.9}, grading.Result{Correct: true, Confidence: 0.9})
	h.feedbacks.err = errors.New("provider down")
	h.messages.msgs = []*store.Message{
		{SessionID: "sess-1", Role: store.RoleTutor, Content: "What is 1/2 + 1/4?", AwaitingAnswer: true},
	}

	if _, err := h.orch.Orchestrate(context.Background(), turnRequest("3/4")); err == nil {
		t.Fatal("feedback failure must propagate")
	}
	if len(h.attempts.attempts) != 0 {
		t.Error("no attempt should be recorded when feedback fails")
	}
}

func TestProcessAnswerWithoutQuestionReorients(t *testing.T) {
	h := newHarness(intent.Classification{Intent: intent.Conceptual, Confidence: 0.9}, grading.Result{Correct: true, Confidence: 0.9})

	res, err := h.orch.processAnswer(context.Background(), turnRequest("42"), &store.LearnerProfile{LearnerID: "learner-1"}, nil)
	if err != nil {
		t.Fatalf("processAnswer: %v", err)
	}

	if res.MessageType != TypeReorientation {
		t.Errorf("type = %s, want %s", res.MessageType, TypeReorientation)
	}
	if !strings.Contains(res.ResponseText, "fractions") {
		t.Errorf("re-orientation should name the topic: %q", res.ResponseText)
	}
	if len(h.attempts.attempts) != 0 || len(h.mastery.recs) != 0 {
		t.Error("re-orientation must not mutate state")
	}
}

func TestFirstTurnIncrementsSessionCount(t *testing.T) {
	h := newHarness(intent.Classification{Intent: intent.Administrative, Confidence: 0.9}, grading.Result{})

	if _, err := h.orch.Orchestrate(context.Background(), turnRequest("hello")); err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}

	if got := h.profiles.profiles["learner-1"].SessionCount; got != 1 {
		t.Errorf("session count = %d, want 1", got)
	}
}

func TestUnknownIntentFallsBackToProbe(t *testing.T) {
	h := newHarness(intent.Classification{Intent: intent.Intent("gibberish"), Confidence: 0.2}, grading.Result{})

	res, err := h.orch.Orchestrate(context.Background(), turnRequest("???"))
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}
	if res.MessageType != TypeProbe {
		t.Errorf("type = %s, want fallback probe", res.MessageType)
	}
	if h.prober.calls != 1 {
		t.Errorf("prober calls = %d, want 1", h.prober.calls)
	}
}
