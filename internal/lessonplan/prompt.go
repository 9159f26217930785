package lessonplan

import (
	"fmt"
	"strings"
)

const planSystemPrompt = `You are an expert tutor designing a single-session lesson plan. Plans progress through Bloom's taxonomy: start with recall and understanding, build toward application and analysis. Every step must be concrete enough for a tutor to act on.`

func buildPlanUserMessage(in PlanInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Subject: %s\n", in.Subject))
	b.WriteString(fmt.Sprintf("Topic: %s\n", in.Topic))
	if in.GradeLevel != "" {
		b.WriteString(fmt.Sprintf("Grade level: %s\n", in.GradeLevel))
	}
	b.WriteString(fmt.Sprintf("Target Bloom level: %s\n", in.TargetLevel))
	if in.PriorKnowledge != "" {
		b.WriteString(fmt.Sprintf("Known prior knowledge: %s\n", in.PriorKnowledge))
	}

	b.WriteString(`
Instructions:
Create a lesson plan with:
1. 2-4 learning goals, each stating what the learner will be able to do.
2. One prior-knowledge check question to ask before the lesson starts.
3. 4-6 ordered steps. Each step has a type (explain, example, practice, reflection, probe), concrete content, the Bloom level it works at, 1-3 observable checkpoints, and a time estimate in minutes. Step Bloom levels must not decrease, and the final step should reach the target level.
4. Optionally, resource references the tutor can point the learner at.
Use plain language suited to the grade level.`)

	return b.String()
}

const priorKnowledgeSystemPrompt = `You assess what a learner already knows from their answer to a prior-knowledge check question. Be conservative: only credit knowledge the answer actually demonstrates.`

func buildPriorKnowledgeUserMessage(studentResponse, expectedKnowledge string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Expected knowledge: %s\n", expectedKnowledge))
	b.WriteString(fmt.Sprintf("Learner's response: %s\n", studentResponse))
	b.WriteString(`
Instructions:
Classify the learner's prior knowledge as none, partial, or good. List the specific gaps between the expected knowledge and what the response demonstrates. Recommend where the lesson should start given those gaps.`)

	return b.String()
}
