package lessonplan

// Config holds lesson plan generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for plan generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.5,
	}
}

// Plan shape bounds enforced after parsing.
const (
	minGoals = 2
	maxGoals = 4
	minSteps = 4
	maxSteps = 6
)
