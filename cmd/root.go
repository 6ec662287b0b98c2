package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LuChatri/j-practice/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "j-practice",
	Short: "Jeopardy!-style trivia drills in your terminal",
	Long:  "J-Practice loads questions from CSV files and runs buzz-in practice sessions, logging every outcome for later review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringSlice("questions", nil, "Question CSV files (overrides JP_QUESTIONS env var)")
	rootCmd.PersistentFlags().String("log", "", "Path to the outcome log (overrides JP_LOG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides JP_DB env var)")
	rootCmd.Flags().Bool("strict", false, "Abort loading on the first malformed row")
	rootCmd.Flags().Bool("weighted", false, "Weight category draws by question count")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then JP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
