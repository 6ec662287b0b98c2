package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuChatri/j-practice/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.OutcomeRepo()

		totals, err := repo.Totals(ctx)
		if err != nil {
			return err
		}
		if totals.Attempted == 0 {
			fmt.Println("No practice history yet.")
			return nil
		}

		fmt.Printf("Sessions:  %d\n", totals.Sessions)
		fmt.Printf("Attempted: %d\n", totals.Attempted)
		fmt.Printf("Correct:   %d (%.0f%%)\n", totals.Correct,
			100*float64(totals.Correct)/float64(totals.Attempted))
		fmt.Printf("Incorrect: %d\n", totals.Incorrect)
		fmt.Printf("Skipped:   %d\n", totals.Skipped)

		cats, err := repo.CategoryStats(ctx)
		if err != nil {
			return err
		}
		if len(cats) > 0 {
			fmt.Println("\nBy category:")
			for _, c := range cats {
				fmt.Printf("  %-24s %3d attempted, %3d correct, %3d skipped\n",
					c.Category, c.Attempted, c.Correct, c.Skipped)
			}
		}
		return nil
	},
}
