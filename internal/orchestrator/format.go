package orchestrator

import (
	"fmt"
	"strings"

	"github.com/abhisek/bloomtutor/internal/knowledge"
	"github.com/abhisek/bloomtutor/internal/store"
)

// formatPlanMessage renders a lesson plan as the numbered message shown
// to the learner, ending with the prior-knowledge check question.
func formatPlanMessage(plan *store.LessonPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Here's our plan for %s:\n\n", plan.Topic)

	b.WriteString("What you'll be able to do:\n")
	for i, g := range plan.Goals {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, g)
	}

	b.WriteString("\nHow we'll get there:\n")
	for i, s := range plan.Steps {
		fmt.Fprintf(&b, "  %d. [%s] %s", i+1, s.Type, s.Content)
		if s.EstimatedMinutes > 0 {
			fmt.Fprintf(&b, " (~%d min)", s.EstimatedMinutes)
		}
		b.WriteString("\n")
		for _, c := range s.Checkpoints {
			fmt.Fprintf(&b, "     - check: %s\n", c)
		}
	}

	if plan.TotalMinutes > 0 {
		fmt.Fprintf(&b, "\nAbout %d minutes altogether.\n", plan.TotalMinutes)
	}

	fmt.Fprintf(&b, "\nBefore we start: %s", plan.PriorCheck)
	return b.String()
}

// formatSessionInfo is the fixed administrative response, parameterized
// by the session but never mutating state.
func formatSessionInfo(req Request, state *knowledge.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "We're working on %s (%s).\n", req.Topic, req.Subject)
	fmt.Fprintf(&b, "Your current working level is %s", state.RecommendedLevel)
	if state.OverallScore > 0 {
		fmt.Fprintf(&b, ", with an overall score of %.0f/100", state.OverallScore)
	}
	b.WriteString(".\n")
	if len(state.WeakAreas) > 0 {
		levels := make([]string, 0, len(state.WeakAreas))
		for _, a := range state.WeakAreas {
			levels = append(levels, string(a.Level))
		}
		fmt.Fprintf(&b, "Worth revisiting: %s.\n", strings.Join(levels, ", "))
	}
	b.WriteString("Ask me to explain something, or tell me you want to practice, whenever you're ready.")
	return b.String()
}

// reorientationMessage is returned when an answer arrives with no open
// question to grade it against.
func reorientationMessage(topic string) string {
	return fmt.Sprintf("I don't have an open question for that answer. Let's get back on track with %s - would you like me to explain something, or give you a problem to try?", topic)
}
