// Package bloom defines the six canonical Bloom cognitive levels and the
// ordering and weighting rules shared by the knowledge tracker and the
// adaptation engine.
package bloom

// Level is one of the six ordered cognitive-skill tiers.
type Level string

const (
	Remember   Level = "remember"
	Understand Level = "understand"
	Apply      Level = "apply"
	Analyze    Level = "analyze"
	Evaluate   Level = "evaluate"
	Create     Level = "create"
)

// Levels is the canonical order, lowest to highest.
var Levels = []Level{Remember, Understand, Apply, Analyze, Evaluate, Create}

// weights used when aggregating mastery across levels. Higher cognitive
// levels count more toward the overall score.
var weights = map[Level]float64{
	Remember:   1.0,
	Understand: 1.5,
	Apply:      2.0,
	Analyze:    2.5,
	Evaluate:   3.0,
	Create:     3.5,
}

// Index returns the position of lvl in the canonical order, or -1 if lvl
// is not a known level.
func Index(lvl Level) int {
	for i, l := range Levels {
		if l == lvl {
			return i
		}
	}
	return -1
}

// Valid reports whether lvl is one of the six canonical levels.
func Valid(lvl Level) bool {
	return Index(lvl) >= 0
}

// Weight returns the aggregation weight for lvl. Unknown levels weigh 0.
func Weight(lvl Level) float64 {
	return weights[lvl]
}

// Next returns the level above lvl, or lvl itself when already at the top.
func Next(lvl Level) Level {
	i := Index(lvl)
	if i < 0 || i >= len(Levels)-1 {
		return lvl
	}
	return Levels[i+1]
}

// Prev returns the level below lvl, or lvl itself when already at the bottom.
func Prev(lvl Level) Level {
	i := Index(lvl)
	if i <= 0 {
		return lvl
	}
	return Levels[i-1]
}

// Parse normalizes a string to a Level. Unknown values fall back to
// Remember so callers never operate on an out-of-range level.
func Parse(s string) Level {
	lvl := Level(s)
	if Valid(lvl) {
		return lvl
	}
	return Remember
}
