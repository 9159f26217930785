package knowledge

import (
	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/store"
)

// Mastery thresholds used when deriving a knowledge state.
const (
	WeakThreshold    = 60.0
	MasteryThreshold = 70.0
	StrongThreshold  = 80.0
)

// Area pairs a Bloom level with its current score for weak/strong lists.
type Area struct {
	Level bloom.Level
	Score float64
}

// State is the derived mastery summary for one (learner, subject, topic).
// It is recomputed on demand and never persisted.
type State struct {
	LearnerID string
	Subject   string
	Topic     string

	// Records holds the existing mastery records keyed by level. Levels
	// the learner has never practiced are absent.
	Records map[bloom.Level]*store.MasteryRecord

	// OverallScore is the weight-blended score across existing records,
	// 0 when no records exist.
	OverallScore float64

	WeakAreas   []Area // score < WeakThreshold
	StrongAreas []Area // score >= StrongThreshold

	// RecommendedLevel is the next Bloom level the learner should work
	// at: one above the highest contiguously mastered level, capped at
	// the top of the taxonomy.
	RecommendedLevel bloom.Level
}

// ScoreAt returns the score at lvl, or 0 when the level has no record.
func (s *State) ScoreAt(lvl bloom.Level) float64 {
	if rec, ok := s.Records[lvl]; ok {
		return rec.Score
	}
	return 0
}

// HasRecord reports whether the learner has practiced at lvl.
func (s *State) HasRecord(lvl bloom.Level) bool {
	_, ok := s.Records[lvl]
	return ok
}

// deriveState computes the full derived state from raw records.
func deriveState(learnerID, subject, topic string, recs []*store.MasteryRecord) *State {
	st := &State{
		LearnerID: learnerID,
		Subject:   subject,
		Topic:     topic,
		Records:   make(map[bloom.Level]*store.MasteryRecord, len(recs)),
	}
	for _, r := range recs {
		st.Records[r.BloomLevel] = r
	}

	var weightedSum, weightTotal float64
	for _, lvl := range bloom.Levels {
		rec, ok := st.Records[lvl]
		if !ok {
			continue
		}
		w := bloom.Weight(lvl)
		weightedSum += rec.Score * w
		weightTotal += w

		switch {
		case rec.Score < WeakThreshold:
			st.WeakAreas = append(st.WeakAreas, Area{Level: lvl, Score: rec.Score})
		case rec.Score >= StrongThreshold:
			st.StrongAreas = append(st.StrongAreas, Area{Level: lvl, Score: rec.Score})
		}
	}
	if weightTotal > 0 {
		st.OverallScore = weightedSum / weightTotal
	}

	st.RecommendedLevel = recommendLevel(st)
	return st
}

// recommendLevel walks the canonical order from remember, tracking the
// highest level mastered contiguously from the start: the walk stops at
// the first level that is missing or below the mastery threshold. The
// recommendation is one level above that, capped at create.
func recommendLevel(st *State) bloom.Level {
	highestMastered := -1
	for i, lvl := range bloom.Levels {
		rec, ok := st.Records[lvl]
		if !ok || rec.Score < MasteryThreshold {
			break
		}
		highestMastered = i
	}

	next := highestMastered + 1
	if next >= len(bloom.Levels) {
		next = len(bloom.Levels) - 1
	}
	return bloom.Levels[next]
}
