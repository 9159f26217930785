package adapt

import (
	"testing"

	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/knowledge"
	"github.com/abhisek/bloomtutor/internal/store"
)

func ptr(f float64) *float64 { return &f }

func TestAdaptDifficultyMatrix(t *testing.T) {
	tests := []struct {
		name            string
		in              Input
		wantAction      Action
		wantLevel       bloom.Level
		wantScaffolding Scaffolding
	}{
		{
			name:            "strong correct answer raises difficulty",
			in:              Input{CurrentLevel: bloom.Apply, Correct: true, Attempt: 1, Confidence: ptr(0.9), MasteryScore: 90},
			wantAction:      ActionRaiseDifficulty,
			wantLevel:       bloom.Analyze,
			wantScaffolding: PartialSupport,
		},
		{
			name:            "correct at top level maintains",
			in:              Input{CurrentLevel: bloom.Create, Correct: true, Attempt: 1, Confidence: ptr(0.9), MasteryScore: 95},
			wantAction:      ActionMaintain,
			wantLevel:       bloom.Create,
			wantScaffolding: MinimalSupport,
		},
		{
			name:            "correct below raise threshold maintains with partial support",
			in:              Input{CurrentLevel: bloom.Apply, Correct: true, Attempt: 1, Confidence: ptr(0.75), MasteryScore: 60},
			wantAction:      ActionMaintain,
			wantLevel:       bloom.Apply,
			wantScaffolding: PartialSupport,
		},
		{
			name:            "correct without confidence signal still qualifies for raise",
			in:              Input{CurrentLevel: bloom.Apply, Correct: true, Attempt: 2, MasteryScore: 90},
			wantAction:      ActionRaiseDifficulty,
			wantLevel:       bloom.Analyze,
			wantScaffolding: PartialSupport,
		},
		{
			name:            "correct with difficulty gets full support",
			in:              Input{CurrentLevel: bloom.Understand, Correct: true, Attempt: 3, MasteryScore: 90},
			wantAction:      ActionMaintain,
			wantLevel:       bloom.Understand,
			wantScaffolding: FullSupport,
		},
		{
			name:            "correct with low confidence gets full support",
			in:              Input{CurrentLevel: bloom.Understand, Correct: true, Attempt: 1, Confidence: ptr(0.4), MasteryScore: 90},
			wantAction:      ActionMaintain,
			wantLevel:       bloom.Understand,
			wantScaffolding: FullSupport,
		},
		{
			name:            "early miss while struggling lowers difficulty",
			in:              Input{CurrentLevel: bloom.Analyze, Correct: false, Attempt: 1, MasteryScore: 30},
			wantAction:      ActionLowerDifficulty,
			wantLevel:       bloom.Apply,
			wantScaffolding: FullSupport,
		},
		{
			name:            "early miss at remember while struggling reteaches",
			in:              Input{CurrentLevel: bloom.Remember, Correct: false, Attempt: 1, MasteryScore: 20},
			wantAction:      ActionReteach,
			wantLevel:       bloom.Remember,
			wantScaffolding: FullSupport,
		},
		{
			name:            "first miss with decent mastery maintains",
			in:              Input{CurrentLevel: bloom.Analyze, Correct: false, Attempt: 1, MasteryScore: 65},
			wantAction:      ActionMaintain,
			wantLevel:       bloom.Analyze,
			wantScaffolding: FullSupport,
		},
		{
			name:            "repeated misses lower difficulty",
			in:              Input{CurrentLevel: bloom.Evaluate, Correct: false, Attempt: 3, MasteryScore: 70},
			wantAction:      ActionLowerDifficulty,
			wantLevel:       bloom.Analyze,
			wantScaffolding: FullSupport,
		},
		{
			name:            "repeated misses at remember reteach",
			in:              Input{CurrentLevel: bloom.Remember, Correct: false, Attempt: 4},
			wantAction:      ActionReteach,
			wantLevel:       bloom.Remember,
			wantScaffolding: FullSupport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdaptDifficulty(tt.in)
			if got.Action != tt.wantAction {
				t.Errorf("action = %s, want %s", got.Action, tt.wantAction)
			}
			if got.NewBloomLevel != tt.wantLevel {
				t.Errorf("level = %s, want %s", got.NewBloomLevel, tt.wantLevel)
			}
			if got.Scaffolding != tt.wantScaffolding {
				t.Errorf("scaffolding = %s, want %s", got.Scaffolding, tt.wantScaffolding)
			}
			if got.Rationale == "" {
				t.Error("rationale must not be empty")
			}
		})
	}
}

func TestAdaptDifficultyIsPure(t *testing.T) {
	in := Input{CurrentLevel: bloom.Apply, Correct: true, Attempt: 1, Confidence: ptr(0.9), MasteryScore: 90}
	first := AdaptDifficulty(in)
	for i := 0; i < 10; i++ {
		if got := AdaptDifficulty(in); got != first {
			t.Fatalf("call %d produced a different decision: %+v vs %+v", i, got, first)
		}
	}
}

func TestDetermineScaffolding(t *testing.T) {
	tests := []struct {
		streak, total int
		avgConfidence float64
		want          Scaffolding
	}{
		{90, 100, 0.8, Independent},
		{89, 100, 0.8, MinimalSupport}, // just under 0.9 falls to minimal
		{9, 10, 0.79, MinimalSupport},  // rate ok but confidence under 0.8
		{7, 10, 0.6, MinimalSupport},
		{7, 10, 0.5, PartialSupport}, // confidence under 0.6
		{5, 10, 0.1, PartialSupport},
		{4, 10, 0.9, FullSupport},
		{0, 0, 1.0, FullSupport}, // zero attempts never divides by zero
	}
	for _, tt := range tests {
		got := DetermineScaffolding(tt.streak, tt.total, tt.avgConfidence)
		if got != tt.want {
			t.Errorf("DetermineScaffolding(%d, %d, %v) = %s, want %s",
				tt.streak, tt.total, tt.avgConfidence, got, tt.want)
		}
	}
}

func stateWith(t *testing.T, recs map[bloom.Level]float64) *knowledge.State {
	t.Helper()
	st := &knowledge.State{Records: make(map[bloom.Level]*store.MasteryRecord)}
	var sum, wsum float64
	for _, lvl := range bloom.Levels {
		score, ok := recs[lvl]
		if !ok {
			continue
		}
		st.Records[lvl] = &store.MasteryRecord{BloomLevel: lvl, Score: score}
		sum += score * bloom.Weight(lvl)
		wsum += bloom.Weight(lvl)
		if score < knowledge.WeakThreshold {
			st.WeakAreas = append(st.WeakAreas, knowledge.Area{Level: lvl, Score: score})
		}
	}
	if wsum > 0 {
		st.OverallScore = sum / wsum
	}
	return st
}

func TestRecommendNextActivity(t *testing.T) {
	weak := stateWith(t, map[bloom.Level]float64{bloom.Remember: 90, bloom.Understand: 30})
	rec := RecommendNextActivity(weak)
	if rec.Activity != ActivityReviewGaps || rec.FocusLevel != bloom.Understand {
		t.Errorf("weak state = %+v", rec)
	}

	strong := stateWith(t, map[bloom.Level]float64{bloom.Remember: 90, bloom.Understand: 85})
	if rec := RecommendNextActivity(strong); rec.Activity != ActivityAdvanceTopic {
		t.Errorf("strong state = %+v", rec)
	}

	middling := stateWith(t, map[bloom.Level]float64{bloom.Remember: 70, bloom.Understand: 65})
	if rec := RecommendNextActivity(middling); rec.Activity != ActivityPracticeCurrent {
		t.Errorf("middling state = %+v", rec)
	}

	if rec := RecommendNextActivity(stateWith(t, nil)); rec.Activity != ActivityMixedReview {
		t.Errorf("empty state = %+v", rec)
	}
	if rec := RecommendNextActivity(nil); rec.Activity != ActivityMixedReview {
		t.Errorf("nil state = %+v", rec)
	}
}
