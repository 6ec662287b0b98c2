package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/LuChatri/j-practice/internal/app"
	"github.com/LuChatri/j-practice/internal/bank"
	"github.com/LuChatri/j-practice/internal/config"
	"github.com/LuChatri/j-practice/internal/logging"
	"github.com/LuChatri/j-practice/internal/store"
)

// runApp resolves configuration, loads the question bank, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	// Optional .env file for local runs.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	log := logging.New(cfg.Env)

	b := bank.New()
	if err := b.LoadSources(cfg.QuestionPaths, cfg.Strict, log); err != nil {
		return err
	}
	if b.Len() == 0 {
		return fmt.Errorf("no questions loaded from %v", cfg.QuestionPaths)
	}
	log.Info().
		Int("questions", b.Len()).
		Int("categories", len(b.Categories())).
		Msg("question bank loaded")

	opts := app.Options{
		Bank:               b,
		LogPath:            cfg.LogPath,
		WeightedCategories: cfg.WeightedCategories,
	}

	// History is optional. A broken database should not keep anyone
	// from practicing.
	dbPath := cfg.DBPath
	if dbPath != "" {
		err = store.EnsureDir(dbPath)
	} else {
		dbPath, err = store.DefaultDBPath()
	}
	if err == nil {
		st, openErr := store.Open(dbPath)
		if openErr != nil {
			err = openErr
		} else {
			defer st.Close()
			opts.OutcomeRepo = st.OutcomeRepo()
		}
	}
	if err != nil {
		log.Warn().Err(err).Msg("history unavailable, continuing without it")
	}

	return app.Run(opts)
}

// applyFlagOverrides lets explicit flags win over environment values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.App) {
	if paths, _ := cmd.Flags().GetStringSlice("questions"); len(paths) > 0 {
		cfg.QuestionPaths = paths
	}
	if p, _ := cmd.Flags().GetString("log"); p != "" {
		cfg.LogPath = p
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if cmd.Flags().Changed("weighted") {
		cfg.WeightedCategories, _ = cmd.Flags().GetBool("weighted")
	}
}
