package cmd

import (
	"github.com/abhisek/examforge/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "examforge",
	Short: "Syllabus-aligned practice test assembly",
	Long: "Examforge assembles practice exams from a question corpus: semantic retrieval\n" +
		"over an in-memory vector index, per-user exposure tracking, and LLM fallback\n" +
		"generation when the corpus runs short.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMFORGE_DB env var)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXAMFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
