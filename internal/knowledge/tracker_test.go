package knowledge

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/store"
)

// fakeMasteryRepo is an in-memory MasteryRepo for tracker tests.
type fakeMasteryRepo struct {
	recs map[string]*store.MasteryRecord
}

func newFakeMasteryRepo() *fakeMasteryRepo {
	return &fakeMasteryRepo{recs: make(map[string]*store.MasteryRecord)}
}

func key(learnerID, subject, topic string, lvl bloom.Level) string {
	return fmt.Sprintf("%s/%s/%s/%s", learnerID, subject, topic, lvl)
}

func (f *fakeMasteryRepo) Get(_ context.Context, learnerID, subject, topic string, lvl bloom.Level) (*store.MasteryRecord, error) {
	if r, ok := f.recs[key(learnerID, subject, topic, lvl)]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeMasteryRepo) List(_ context.Context, learnerID, subject, topic string) ([]*store.MasteryRecord, error) {
	var out []*store.MasteryRecord
	for _, r := range f.recs {
		if r.LearnerID == learnerID && r.Subject == subject && r.Topic == topic {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMasteryRepo) Create(_ context.Context, rec *store.MasteryRecord) error {
	cp := *rec
	f.recs[key(rec.LearnerID, rec.Subject, rec.Topic, rec.BloomLevel)] = &cp
	return nil
}

func (f *fakeMasteryRepo) Update(_ context.Context, rec *store.MasteryRecord) error {
	cp := *rec
	f.recs[key(rec.LearnerID, rec.Subject, rec.Topic, rec.BloomLevel)] = &cp
	return nil
}

func ptr(f float64) *float64 { return &f }

func TestUpdateMasteryFirstObservation(t *testing.T) {
	tests := []struct {
		name       string
		correct    bool
		confidence *float64
		wantScore  float64
	}{
		{"correct no confidence", true, nil, 100},
		{"correct with confidence", true, ptr(0.8), 80},
		{"incorrect no confidence", false, nil, 0},
		{"incorrect with confidence", false, ptr(0.9), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(newFakeMasteryRepo())
			rec, err := tr.UpdateMastery(context.Background(), "l1", "math", "fractions", bloom.Remember, tt.correct, tt.confidence)
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			if rec.Score != tt.wantScore {
				t.Errorf("initial score = %v, want %v", rec.Score, tt.wantScore)
			}
			if rec.Attempts != 1 {
				t.Errorf("attempts = %d, want 1", rec.Attempts)
			}
		})
	}
}

func TestUpdateMasteryBlending(t *testing.T) {
	tr := NewTracker(newFakeMasteryRepo())
	ctx := context.Background()

	// First: correct. Second: correct with confidence 0.5.
	// ratio = 2/2 = 100; blend = 0.7*100 + 0.3*50 = 85.
	if _, err := tr.UpdateMastery(ctx, "l1", "math", "fractions", bloom.Apply, true, nil); err != nil {
		t.Fatal(err)
	}
	rec, err := tr.UpdateMastery(ctx, "l1", "math", "fractions", bloom.Apply, true, ptr(0.5))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rec.Score-85) > 1e-9 {
		t.Errorf("blended score = %v, want 85", rec.Score)
	}

	// Third: incorrect, no confidence. ratio = 2/3*100.
	rec, err = tr.UpdateMastery(ctx, "l1", "math", "fractions", bloom.Apply, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := 2.0 / 3.0 * 100
	if math.Abs(rec.Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", rec.Score, want)
	}
}

func TestUpdateMasteryInvariants(t *testing.T) {
	// For any sequence of updates: score stays in [0,100] and
	// attempts == correctCount + incorrectCount.
	tr := NewTracker(newFakeMasteryRepo())
	ctx := context.Background()

	seq := []struct {
		correct    bool
		confidence *float64
	}{
		{true, nil}, {false, ptr(0.1)}, {true, ptr(1.0)}, {false, nil},
		{true, ptr(0.0)}, {true, ptr(0.33)}, {false, ptr(0.99)}, {true, nil},
	}

	for i, step := range seq {
		rec, err := tr.UpdateMastery(ctx, "l1", "sci", "cells", bloom.Understand, step.correct, step.confidence)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if rec.Score < 0 || rec.Score > 100 {
			t.Errorf("step %d: score %v out of [0,100]", i, rec.Score)
		}
		if rec.Attempts != rec.CorrectCount+rec.IncorrectCount {
			t.Errorf("step %d: attempts %d != correct %d + incorrect %d",
				i, rec.Attempts, rec.CorrectCount, rec.IncorrectCount)
		}
		if rec.Attempts != i+1 {
			t.Errorf("step %d: attempts = %d, want %d", i, rec.Attempts, i+1)
		}
	}
}

func seedRecord(t *testing.T, repo *fakeMasteryRepo, lvl bloom.Level, score float64) {
	t.Helper()
	err := repo.Create(context.Background(), &store.MasteryRecord{
		LearnerID:  "l1",
		Subject:    "math",
		Topic:      "fractions",
		BloomLevel: lvl,
		Score:      score,
		Attempts:   1,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestStateRecommendationEmpty(t *testing.T) {
	tr := NewTracker(newFakeMasteryRepo())
	st, err := tr.State(context.Background(), "l1", "math", "fractions")
	if err != nil {
		t.Fatal(err)
	}
	if st.RecommendedLevel != bloom.Remember {
		t.Errorf("recommendation = %s, want remember", st.RecommendedLevel)
	}
	if st.OverallScore != 0 {
		t.Errorf("overall = %v, want 0", st.OverallScore)
	}
}

func TestStateRecommendationContiguousWalk(t *testing.T) {
	repo := newFakeMasteryRepo()
	seedRecord(t, repo, bloom.Remember, 90)
	seedRecord(t, repo, bloom.Understand, 75)
	seedRecord(t, repo, bloom.Apply, 70)
	seedRecord(t, repo, bloom.Analyze, 50) // below threshold stops the walk

	tr := NewTracker(repo)
	st, err := tr.State(context.Background(), "l1", "math", "fractions")
	if err != nil {
		t.Fatal(err)
	}
	if st.RecommendedLevel != bloom.Analyze {
		t.Errorf("recommendation = %s, want analyze", st.RecommendedLevel)
	}
}

func TestStateRecommendationGapStopsWalk(t *testing.T) {
	repo := newFakeMasteryRepo()
	seedRecord(t, repo, bloom.Remember, 90)
	// understand missing: walk stops even though apply is mastered.
	seedRecord(t, repo, bloom.Apply, 95)

	tr := NewTracker(repo)
	st, err := tr.State(context.Background(), "l1", "math", "fractions")
	if err != nil {
		t.Fatal(err)
	}
	if st.RecommendedLevel != bloom.Understand {
		t.Errorf("recommendation = %s, want understand", st.RecommendedLevel)
	}
}

func TestStateRecommendationCappedAtCreate(t *testing.T) {
	repo := newFakeMasteryRepo()
	for _, lvl := range bloom.Levels {
		seedRecord(t, repo, lvl, 90)
	}
	tr := NewTracker(repo)
	st, err := tr.State(context.Background(), "l1", "math", "fractions")
	if err != nil {
		t.Fatal(err)
	}
	if st.RecommendedLevel != bloom.Create {
		t.Errorf("recommendation = %s, want create", st.RecommendedLevel)
	}
}

func TestStateWeightedOverall(t *testing.T) {
	// remember=100 (weight 1) and create=0 (weight 3.5):
	// overall = 100*1 / (1+3.5) ≈ 22.2
	repo := newFakeMasteryRepo()
	seedRecord(t, repo, bloom.Remember, 100)
	seedRecord(t, repo, bloom.Create, 0)

	tr := NewTracker(repo)
	st, err := tr.State(context.Background(), "l1", "math", "fractions")
	if err != nil {
		t.Fatal(err)
	}
	want := 100.0 / 4.5
	if math.Abs(st.OverallScore-want) > 1e-9 {
		t.Errorf("overall = %v, want %v", st.OverallScore, want)
	}
}

func TestStateWeakStrongPartition(t *testing.T) {
	repo := newFakeMasteryRepo()
	seedRecord(t, repo, bloom.Remember, 95) // strong
	seedRecord(t, repo, bloom.Understand, 70)
	seedRecord(t, repo, bloom.Apply, 40) // weak

	tr := NewTracker(repo)
	st, err := tr.State(context.Background(), "l1", "math", "fractions")
	if err != nil {
		t.Fatal(err)
	}
	if len(st.StrongAreas) != 1 || st.StrongAreas[0].Level != bloom.Remember {
		t.Errorf("strong areas = %+v", st.StrongAreas)
	}
	if len(st.WeakAreas) != 1 || st.WeakAreas[0].Level != bloom.Apply {
		t.Errorf("weak areas = %+v", st.WeakAreas)
	}
}
