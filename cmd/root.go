package cmd

import (
	"github.com/abhisek/bloomtutor/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bloomtutor",
	Short: "Adaptive AI tutor",
	Long:  "Bloomtutor — terminal tutor that adapts lesson difficulty to the learner's demonstrated mastery across Bloom's taxonomy.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BLOOMTUTOR_DB env var)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BLOOMTUTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
