package feedback

import (
	"fmt"
	"strings"

	"github.com/abhisek/bloomtutor/internal/bloom"
)

const feedbackSystemPrompt = `You give a learner feedback on one answer, in three layers:
- task: what was right or wrong in the answer itself, concretely.
- process: the approach they took and how to improve it.
- self_regulation: a strategy for checking their own work next time.
Also give one small concrete next step, one retrieval-practice question
that makes them recall the concept later, and one short genuine line of
encouragement. Be specific to their answer; never generic praise. Never
shame a wrong answer.`

func buildFeedbackUserMessage(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", in.Question)
	fmt.Fprintf(&b, "Expected answer: %s\n", in.ExpectedAnswer)
	fmt.Fprintf(&b, "Learner's answer: %s\n", in.LearnerAnswer)
	fmt.Fprintf(&b, "Graded: %s\n", gradeWord(in.Correct))
	fmt.Fprintf(&b, "Cognitive level: %s\n", in.BloomLevel)
	if in.Context != "" {
		fmt.Fprintf(&b, "Session context: %s\n", in.Context)
	}
	return b.String()
}

func gradeWord(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}

const workedExampleSystemPrompt = `You write a worked example that models how to solve one kind of problem.
Open with a one-sentence framing of the problem, then show the solution
as numbered steps where each step states what is done and why. Close
with the key points to remember and one similar practice problem for
the learner to try on their own. Match the language to the grade level.`

func buildWorkedExampleUserMessage(topic, concept string, lvl bloom.Level, gradeLevel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Concept to model: %s\n", concept)
	fmt.Fprintf(&b, "Cognitive level: %s\n", lvl)
	if gradeLevel != "" {
		fmt.Fprintf(&b, "Grade level: %s\n", gradeLevel)
	}
	return b.String()
}
