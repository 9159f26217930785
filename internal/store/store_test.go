package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/bloomtutor/internal/bloom"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileGetOrCreate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	p, err := repo.GetOrCreate(ctx, "learner-1")
	if err != nil {
		t.Fatalf("get-or-create: %v", err)
	}
	if p.PreferredMode != "socratic" {
		t.Errorf("default preferred mode = %q, want socratic", p.PreferredMode)
	}

	p.SessionCount = 3
	p.AddError(TrackedError{Type: "misconception", Context: "confused area with perimeter", Timestamp: time.Now()})
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	again, err := repo.GetOrCreate(ctx, "learner-1")
	if err != nil {
		t.Fatalf("second get-or-create: %v", err)
	}
	if again.SessionCount != 3 {
		t.Errorf("session count = %d, want 3", again.SessionCount)
	}
	if len(again.TrackedErrors) != 1 {
		t.Errorf("tracked errors = %d, want 1", len(again.TrackedErrors))
	}
}

func TestTrackedErrorRingBuffer(t *testing.T) {
	p := &LearnerProfile{}
	for i := 0; i < MaxTrackedErrors+10; i++ {
		p.AddError(TrackedError{Type: "slip"})
	}
	if len(p.TrackedErrors) != MaxTrackedErrors {
		t.Errorf("ring size = %d, want %d", len(p.TrackedErrors), MaxTrackedErrors)
	}
}

func TestMasteryRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Mastery()
	ctx := context.Background()

	got, err := repo.Get(ctx, "l1", "math", "fractions", bloom.Apply)
	if err != nil {
		t.Fatalf("get (absent): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for absent record")
	}

	rec := &MasteryRecord{
		LearnerID:       "l1",
		Subject:         "math",
		Topic:           "fractions",
		BloomLevel:      bloom.Apply,
		Score:           100,
		Attempts:        1,
		CorrectCount:    1,
		LastPracticedAt: time.Now(),
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec.Attempts = 2
	rec.IncorrectCount = 1
	rec.Score = 50
	if err := repo.Update(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = repo.Get(ctx, "l1", "math", "fractions", bloom.Apply)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Score != 50 || got.Attempts != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	all, err := repo.List(ctx, "l1", "math", "fractions")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("list returned %d records, want 1", len(all))
	}
}

func TestPlanCreateIfAbsentIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Plans()
	ctx := context.Background()

	first := &LessonPlan{
		SessionID: "sess-1",
		LearnerID: "l1",
		Subject:   "math",
		Topic:     "fractions",
		Goals:     []string{"understand fraction notation"},
		Steps: []LessonStep{
			{Type: "explain", Content: "what a fraction is", BloomLevel: bloom.Understand, EstimatedMinutes: 5},
		},
		TotalMinutes: 5,
	}
	stored, err := repo.CreateIfAbsent(ctx, first)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if stored.Goals[0] != "understand fraction notation" {
		t.Errorf("unexpected stored goals: %v", stored.Goals)
	}

	second := &LessonPlan{
		SessionID: "sess-1",
		LearnerID: "l1",
		Subject:   "math",
		Topic:     "fractions",
		Goals:     []string{"a different plan that must be ignored"},
	}
	stored2, err := repo.CreateIfAbsent(ctx, second)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if stored2.Goals[0] != "understand fraction notation" {
		t.Errorf("second create replaced the plan: %v", stored2.Goals)
	}
}

func TestMessageOrderingAndQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.Messages()
	ctx := context.Background()

	contents := []string{"hi", "welcome", "what is 2/3 + 1/3?", "1"}
	roles := []string{RoleLearner, RoleTutor, RoleTutor, RoleLearner}
	awaiting := []bool{false, false, true, false}
	for i := range contents {
		err := repo.Append(ctx, &Message{
			SessionID:      "sess-1",
			Role:           roles[i],
			Content:        contents[i],
			AwaitingAnswer: awaiting[i],
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	last2, err := repo.LastN(ctx, "sess-1", 2)
	if err != nil {
		t.Fatalf("lastN: %v", err)
	}
	if len(last2) != 2 || last2[0].Content != "what is 2/3 + 1/3?" || last2[1].Content != "1" {
		t.Errorf("lastN order wrong: %+v", last2)
	}

	last, err := repo.Last(ctx, "sess-1")
	if err != nil {
		t.Fatalf("last: %v", err)
	}
	if last == nil || last.Content != "1" {
		t.Errorf("last = %+v", last)
	}

	tutor, err := repo.LastTutorMessage(ctx, "sess-1")
	if err != nil {
		t.Fatalf("last tutor: %v", err)
	}
	if tutor == nil || !tutor.AwaitingAnswer {
		t.Errorf("last tutor message = %+v", tutor)
	}

	if err := repo.ResolveAwaiting(ctx, "sess-1"); err != nil {
		t.Fatalf("resolve awaiting: %v", err)
	}
	tutor, err = repo.LastTutorMessage(ctx, "sess-1")
	if err != nil {
		t.Fatalf("last tutor after resolve: %v", err)
	}
	if tutor.AwaitingAnswer {
		t.Error("awaiting flag should be cleared")
	}

	none, err := repo.Last(ctx, "empty-session")
	if err != nil {
		t.Fatalf("last (empty): %v", err)
	}
	if none != nil {
		t.Error("expected nil for empty session")
	}
}

func TestAttemptStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	correct := []bool{true, true, false, true}
	conf := []float64{0.9, 0.8, 0.3, 0.6}
	for i := range correct {
		err := repo.Append(ctx, &TutorAttempt{
			SessionID:  "sess-1",
			LearnerID:  "l1",
			Subject:    "math",
			Topic:      "fractions",
			BloomLevel: bloom.Apply,
			Question:   "q",
			Answer:     "a",
			Correct:    correct[i],
			Confidence: conf[i],
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.Stats(ctx, "l1", "math", "fractions", 0)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 4 || stats.Correct != 3 {
		t.Errorf("stats = %+v", stats)
	}
	wantAvg := (0.9 + 0.8 + 0.3 + 0.6) / 4
	if stats.AvgConfidence < wantAvg-1e-9 || stats.AvgConfidence > wantAvg+1e-9 {
		t.Errorf("avg confidence = %v, want %v", stats.AvgConfidence, wantAvg)
	}

	last2, err := repo.Stats(ctx, "l1", "math", "fractions", 2)
	if err != nil {
		t.Fatalf("stats lastN: %v", err)
	}
	if last2.Total != 2 || last2.Correct != 1 {
		t.Errorf("lastN stats = %+v", last2)
	}

	recent, err := repo.ListRecent(ctx, "l1", "math", "fractions", 3)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("recent = %d attempts, want 3", len(recent))
	}
	// Newest first: the last appended attempt was correct.
	if !recent[0].Correct || recent[1].Correct {
		t.Errorf("recent order wrong: %+v, %+v", recent[0], recent[1])
	}
}

func TestLLMEventQueriesAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "intent", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "lesson-plan", InputTokens: 400, OutputTokens: 300, LatencyMs: 900, Success: true, RequestBody: "[user]\nplan please", ResponseBody: `{"goals":[]}`},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "intent", InputTokens: 120, OutputTokens: 25, LatencyMs: 500, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("query returned %d events, want 2", len(got))
	}
	// Newest first.
	if got[0].Purpose != "intent" || got[0].Success {
		t.Errorf("newest event = %+v", got[0])
	}

	one, err := repo.GetLLMEvent(ctx, got[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one == nil || one.RequestBody == "" || one.ResponseBody == "" {
		t.Errorf("bodies not captured: %+v", one)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	totals := map[string]LLMUsageStats{}
	for _, u := range byPurpose {
		totals[u.Purpose] = u
	}
	if totals["intent"].Calls != 2 || totals["intent"].InputTokens != 220 {
		t.Errorf("intent usage = %+v", totals["intent"])
	}
	if totals["lesson-plan"].OutputTokens != 300 {
		t.Errorf("lesson-plan usage = %+v", totals["lesson-plan"])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 3 {
		t.Errorf("model usage = %+v", byModel)
	}
}
