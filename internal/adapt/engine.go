// Package adapt implements the deterministic difficulty adaptation
// engine. Every function is pure: identical inputs always produce
// identical decisions, and there are no failure modes.
package adapt

import (
	"fmt"

	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/knowledge"
)

// Decision-matrix thresholds.
const (
	raiseThreshold    = 85.0 // mastery needed to move up a level
	strugglingScore   = 40.0 // mastery below this on a miss drops a level
	confidentAnswer   = 0.7  // confidence under this makes a correct answer shaky
	highConfidence    = 0.8
	easyAttemptsLimit = 2 // attempts beyond this mean the item was hard
)

// AdaptDifficulty evaluates the decision matrix in order and returns the
// difficulty action for the next activity. The rationale names the
// mastery score and chosen level for observability; it carries no
// control semantics.
func AdaptDifficulty(in Input) Decision {
	current := in.CurrentLevel
	score := in.MasteryScore

	confident := in.Confidence == nil || *in.Confidence >= confidentAnswer

	switch {
	// Correct on an early attempt with real confidence: consider
	// moving up.
	case in.Correct && in.Attempt <= easyAttemptsLimit && confident:
		if score >= raiseThreshold && current != bloom.Create {
			next := bloom.Next(current)
			return Decision{
				Action:        ActionRaiseDifficulty,
				NewBloomLevel: next,
				Scaffolding:   PartialSupport,
				Rationale: fmt.Sprintf(
					"mastery %.0f at %s is at or above %.0f; raising to %s",
					score, current, raiseThreshold, next),
			}
		}
		scaffolding := PartialSupport
		if in.Confidence != nil && *in.Confidence >= highConfidence {
			scaffolding = MinimalSupport
		}
		return Decision{
			Action:        ActionMaintain,
			NewBloomLevel: current,
			Scaffolding:   scaffolding,
			Rationale: fmt.Sprintf(
				"correct at %s but mastery %.0f is below %.0f; staying at %s",
				current, score, raiseThreshold, current),
		}

	// Correct, but it took several attempts or confidence was low:
	// the item was hard, keep practicing with heavy support.
	case in.Correct:
		return Decision{
			Action:        ActionMaintain,
			NewBloomLevel: current,
			Scaffolding:   FullSupport,
			Rationale: fmt.Sprintf(
				"correct at %s with difficulty (attempt %d, mastery %.0f); more practice needed at %s",
				current, in.Attempt, score, current),
		}

	// Incorrect on an early attempt: only drop if clearly struggling.
	case in.Attempt <= easyAttemptsLimit:
		if score < strugglingScore {
			if current == bloom.Remember {
				return Decision{
					Action:        ActionReteach,
					NewBloomLevel: bloom.Remember,
					Scaffolding:   FullSupport,
					Rationale: fmt.Sprintf(
						"mastery %.0f at remember is below %.0f with no lower level; reteaching at remember",
						score, strugglingScore),
				}
			}
			prev := bloom.Prev(current)
			return Decision{
				Action:        ActionLowerDifficulty,
				NewBloomLevel: prev,
				Scaffolding:   FullSupport,
				Rationale: fmt.Sprintf(
					"mastery %.0f at %s is below %.0f; lowering to %s",
					score, current, strugglingScore, prev),
			}
		}
		return Decision{
			Action:        ActionMaintain,
			NewBloomLevel: current,
			Scaffolding:   FullSupport,
			Rationale: fmt.Sprintf(
				"first miss at %s with mastery %.0f; staying at %s with full support",
				current, score, current),
		}

	// Incorrect after repeated attempts: always step down.
	case !in.Correct && in.Attempt > easyAttemptsLimit:
		if current == bloom.Remember {
			return Decision{
				Action:        ActionReteach,
				NewBloomLevel: bloom.Remember,
				Scaffolding:   FullSupport,
				Rationale: fmt.Sprintf(
					"repeated misses at remember (attempt %d, mastery %.0f); reteaching at remember",
					in.Attempt, score),
			}
		}
		prev := bloom.Prev(current)
		return Decision{
			Action:        ActionLowerDifficulty,
			NewBloomLevel: prev,
			Scaffolding:   FullSupport,
			Rationale: fmt.Sprintf(
				"repeated misses at %s (attempt %d, mastery %.0f); lowering to %s",
				current, in.Attempt, score, prev),
		}
	}

	return Decision{
		Action:        ActionMaintain,
		NewBloomLevel: current,
		Scaffolding:   PartialSupport,
		Rationale: fmt.Sprintf(
			"no matrix case matched at %s (mastery %.0f); maintaining",
			current, score),
	}
}

// DetermineScaffolding maps recent performance to a support level.
func DetermineScaffolding(correctStreak, totalAttempts int, avgConfidence float64) Scaffolding {
	denom := totalAttempts
	if denom < 1 {
		denom = 1
	}
	successRate := float64(correctStreak) / float64(denom)

	switch {
	case successRate >= 0.9 && avgConfidence >= 0.8:
		return Independent
	case successRate >= 0.7 && avgConfidence >= 0.6:
		return MinimalSupport
	case successRate >= 0.5:
		return PartialSupport
	default:
		return FullSupport
	}
}

// RecommendNextActivity picks the coarse next activity from a derived
// knowledge state: close gaps first, then advance, practice, or mix.
func RecommendNextActivity(st *knowledge.State) ActivityRecommendation {
	if st != nil && len(st.WeakAreas) > 0 {
		focus := st.WeakAreas[0]
		return ActivityRecommendation{
			Activity:   ActivityReviewGaps,
			FocusLevel: focus.Level,
			Rationale: fmt.Sprintf(
				"weak area at %s (score %.0f); reviewing gaps first", focus.Level, focus.Score),
		}
	}

	overall := 0.0
	if st != nil {
		overall = st.OverallScore
	}
	switch {
	case overall >= 80:
		return ActivityRecommendation{
			Activity:  ActivityAdvanceTopic,
			Rationale: fmt.Sprintf("overall score %.0f; ready for the next topic", overall),
		}
	case overall >= 60:
		return ActivityRecommendation{
			Activity:  ActivityPracticeCurrent,
			Rationale: fmt.Sprintf("overall score %.0f; consolidating the current topic", overall),
		}
	default:
		return ActivityRecommendation{
			Activity:  ActivityMixedReview,
			Rationale: fmt.Sprintf("overall score %.0f; mixed review across levels", overall),
		}
	}
}
