package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bloomtutor/internal/adapt"
	"github.com/abhisek/bloomtutor/internal/bloom"
	"github.com/abhisek/bloomtutor/internal/knowledge"
	"github.com/abhisek/bloomtutor/internal/store"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show a learner's mastery state for a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			return fmt.Errorf("--topic is required")
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

		ctx := context.Background()
		tracker := knowledge.NewTracker(st.Mastery())
		state, err := tracker.State(ctx, learner, subject, topic)
		if err != nil {
			return fmt.Errorf("derive knowledge state: %w", err)
		}

		fmt.Printf("%s — %s / %s\n", learner, subject, topic)
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-12s  %7s  %8s  %8s\n", "Level", "Score", "Attempts", "Correct")
		for _, lvl := range bloom.Levels {
			rec, ok := state.Records[lvl]
			if !ok {
				fmt.Printf("%-12s  %7s\n", lvl, "-")
				continue
			}
			fmt.Printf("%-12s  %7.1f  %8d  %8d\n", lvl, rec.Score, rec.Attempts, rec.CorrectCount)
		}
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("Overall score:      %.1f\n", state.OverallScore)
		fmt.Printf("Recommended level:  %s\n", state.RecommendedLevel)

		rec := adapt.RecommendNextActivity(state)
		fmt.Printf("Next activity:      %s", rec.Activity)
		if rec.Activity == adapt.ActivityReviewGaps {
			fmt.Printf(" (focus on %s)", rec.FocusLevel)
		}
		fmt.Println()

		profile, err := st.Profiles().GetOrCreate(ctx, learner)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		fmt.Printf("Sessions so far:    %d\n", profile.SessionCount)
		if n := len(profile.TrackedErrors); n > 0 {
			fmt.Printf("Recent errors:      %d tracked\n", n)
		}
		return nil
	},
}

func init() {
	stateCmd.Flags().String("learner", "default", "Learner identifier")
	stateCmd.Flags().String("subject", "math", "Subject being tutored")
	stateCmd.Flags().String("topic", "", "Topic within the subject (required)")
}
