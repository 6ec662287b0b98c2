package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/LuChatri/j-practice/internal/bank"
	"github.com/LuChatri/j-practice/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate question files without starting a session",
	Long:  "Check parses each question file, printing how many rows were accepted and listing every malformed row with the line it came from.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		paths := args
		if len(paths) == 0 {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if p, _ := cmd.Flags().GetStringSlice("questions"); len(p) > 0 {
				cfg.QuestionPaths = p
			}
			paths = cfg.QuestionPaths
		}
		if len(paths) == 0 {
			return fmt.Errorf("no question sources given")
		}

		failed := false
		for _, path := range paths {
			if err := checkSource(path); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("some sources had problems")
		}
		return nil
	},
}

// checkSource loads one file into a throwaway bank, counting rows
// either way.
func checkSource(path string) error {
	b := bank.New()
	bad := 0
	err := b.LoadFile(path, func(row []string, reason error) {
		bad++
		fmt.Printf("  bad row %v: %v\n", row, reason)
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d questions in %d categories", path, b.Len(), len(b.Categories()))
	if bad > 0 {
		fmt.Printf(", %d rows skipped", bad)
	}
	fmt.Println()
	return nil
}
