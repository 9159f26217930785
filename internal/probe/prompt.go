package probe

import (
	"fmt"
	"strings"
)

const probeSystemPrompt = `You are a Socratic tutor. You never state answers; you ask one guiding
question that leads the learner to discover the answer themselves. The
question must match the requested cognitive level. Provide exactly three
hints, ordered from gentle to specific, none of which reveal the answer,
and describe what a correct answer would contain.
Scaffolding categories:
- leading: nudges the learner toward the next step.
- clarifying: asks the learner to restate or define something.
- refocusing: pulls a drifting learner back to the point.
- probing: pushes for deeper reasoning about why or how.`

func buildProbeUserMessage(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", in.Topic)
	fmt.Fprintf(&b, "Cognitive level: %s\n", in.BloomLevel)
	if in.LearningGoal != "" {
		fmt.Fprintf(&b, "Learning goal: %s\n", in.LearningGoal)
	}
	if in.LastResponse != "" {
		fmt.Fprintf(&b, "Learner's last response: %s\n", in.LastResponse)
	}
	b.WriteString("\nGenerate one Socratic question with its hint ladder.")
	return b.String()
}

const evalSystemPrompt = `You evaluate a learner's response to a Socratic question. Judge the
quality of their reasoning, not surface polish. Decide whether they need
another hint (and which one, 0-indexed), whether they have understood
well enough to advance, and what the tutor should do next:
- hint: give the indicated hint and let them retry.
- next_probe: ask a follow-up question at the same level.
- reteach: the gap is too wide, re-explain the concept.
- advance: they have it, move forward.`

func buildEvalUserMessage(question, expectedAnswer, learnerAnswer string, hintsUsed int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", question)
	fmt.Fprintf(&b, "Expected answer: %s\n", expectedAnswer)
	fmt.Fprintf(&b, "Learner's answer: %s\n", learnerAnswer)
	fmt.Fprintf(&b, "Hints already given: %d of %d\n", hintsUsed, hintLadderSize)
	return b.String()
}
