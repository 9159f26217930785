package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/bloomtutor/internal/feedback"
	"github.com/abhisek/bloomtutor/internal/grading"
	"github.com/abhisek/bloomtutor/internal/intent"
	"github.com/abhisek/bloomtutor/internal/lessonplan"
	"github.com/abhisek/bloomtutor/internal/llm"
	"github.com/abhisek/bloomtutor/internal/orchestrator"
	"github.com/abhisek/bloomtutor/internal/probe"
	"github.com/abhisek/bloomtutor/internal/store"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a tutoring session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		learner, _ := cmd.Flags().GetString("learner")
		session, _ := cmd.Flags().GetString("session")
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		grade, _ := cmd.Flags().GetString("grade")

		if topic == "" {
			return fmt.Errorf("--topic is required")
		}
		if session == "" {
			session = uuid.NewString()
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.Events())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		orch := orchestrator.New(
			orchestrator.Deps{
				Profiles: st.Profiles(),
				Mastery:  st.Mastery(),
				Plans:    st.Plans(),
				Attempts: st.Attempts(),
				Messages: st.Messages(),
			},
			intent.NewClassifier(provider),
			lessonplan.NewPlanner(provider, lessonplan.DefaultConfig()),
			probe.NewEngine(provider),
			feedback.NewEngine(provider),
			grading.NewLLMAssessor(provider),
			orchestrator.DefaultConfig(),
		)

		fmt.Printf("Session %s — %s / %s. Type your question, or 'exit' to leave.\n", session, subject, topic)

		messages := st.Messages()
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			res, err := orch.Orchestrate(ctx, orchestrator.Request{
				LearnerID:  learner,
				SessionID:  session,
				Message:    line,
				Subject:    subject,
				Topic:      topic,
				GradeLevel: grade,
			})
			if err != nil {
				fmt.Fprintln(os.Stderr, "turn failed:", err)
				continue
			}

			// The orchestrator only returns content; the delivery loop owns
			// persisting both sides of the turn.
			if err := messages.Append(ctx, &store.Message{
				SessionID:   session,
				Role:        store.RoleLearner,
				Content:     line,
				MessageType: "chat",
			}); err != nil {
				return fmt.Errorf("persist learner message: %w", err)
			}
			if err := messages.Append(ctx, &store.Message{
				SessionID:      session,
				Role:           store.RoleTutor,
				Content:        res.ResponseText,
				MessageType:    res.MessageType,
				AwaitingAnswer: res.AwaitingAnswer,
			}); err != nil {
				return fmt.Errorf("persist tutor message: %w", err)
			}

			fmt.Printf("\ntutor> %s\n\n", res.ResponseText)
			if res.Adaptation != nil {
				fmt.Printf("[%s → %s, %s]\n\n", res.Adaptation.Action, res.Adaptation.NewBloomLevel, res.Adaptation.Scaffolding)
			}
		}
		return scanner.Err()
	},
}

func init() {
	chatCmd.Flags().String("learner", "default", "Learner identifier")
	chatCmd.Flags().String("session", "", "Session identifier (new session when empty)")
	chatCmd.Flags().String("subject", "math", "Subject being tutored")
	chatCmd.Flags().String("topic", "", "Topic within the subject (required)")
	chatCmd.Flags().String("grade", "", "Learner's grade level")
}
