// Package knowledge tracks a learner's demonstrated mastery per Bloom
// level and derives per-topic knowledge state summaries from it.
package knowledge

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/store"
)

// Blending weights: correctness history dominates, optional confidence
// signal contributes the rest.
const (
	correctnessWeight = 0.7
	confidenceWeight  = 0.3
)

// Tracker maintains mastery records. The scoring rules are total: any
// well-formed update produces a valid record; errors only surface from
// the backing store.
type Tracker struct {
	mastery store.MasteryRepo
}

// NewTracker creates a tracker over the given mastery repository.
func NewTracker(mastery store.MasteryRepo) *Tracker {
	return &Tracker{mastery: mastery}
}

// UpdateMastery applies one graded attempt to the learner's record at the
// given level, creating the record on first observation. confidence may
// be nil when the grading capability reports none; when present it must
// be in [0,1]. Returns the record as persisted.
func (t *Tracker) UpdateMastery(ctx context.Context, learnerID, subject, topic string, lvl bloom.Level, correct bool, confidence *float64) (*store.MasteryRecord, error) {
	rec, err := t.mastery.Get(ctx, learnerID, subject, topic, lvl)
	if err != nil {
		return nil, fmt.Errorf("load mastery record: %w", err)
	}

	now := time.Now()

	if rec == nil {
		rec = &store.MasteryRecord{
			LearnerID:       learnerID,
			Subject:         subject,
			Topic:           topic,
			BloomLevel:      lvl,
			Attempts:        1,
			Score:           initialScore(correct, confidence),
			LastPracticedAt: now,
		}
		if correct {
			rec.CorrectCount = 1
		} else {
			rec.IncorrectCount = 1
		}
		if err := t.mastery.Create(ctx, rec); err != nil {
			return nil, err
		}
		return rec, nil
	}

	rec.Attempts++
	if correct {
		rec.CorrectCount++
	} else {
		rec.IncorrectCount++
	}
	rec.Score = blendScore(rec.CorrectCount, rec.Attempts, confidence)
	rec.LastPracticedAt = now

	if err := t.mastery.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// State loads all records for (learner, subject, topic) and derives the
// knowledge state. Absent levels are treated as unpracticed (score 0).
func (t *Tracker) State(ctx context.Context, learnerID, subject, topic string) (*State, error) {
	recs, err := t.mastery.List(ctx, learnerID, subject, topic)
	if err != nil {
		return nil, fmt.Errorf("list mastery records: %w", err)
	}
	return deriveState(learnerID, subject, topic, recs), nil
}

// initialScore seeds a brand-new record. A correct first attempt scores
// 100 scaled by confidence when one is present; an incorrect first
// attempt scores 0 regardless.
func initialScore(correct bool, confidence *float64) float64 {
	if !correct {
		return 0
	}
	if confidence != nil {
		return clampScore(100 * *confidence)
	}
	return 100
}

// blendScore recomputes the record score from correctness history,
// blended 70/30 with the confidence signal when one is present.
func blendScore(correctCount, attempts int, confidence *float64) float64 {
	if attempts <= 0 {
		return 0
	}
	ratio := float64(correctCount) / float64(attempts) * 100

	if confidence == nil {
		return clampScore(ratio)
	}
	return clampScore(correctnessWeight*ratio + confidenceWeight*(*confidence*100))
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
