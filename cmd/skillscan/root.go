package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/amishk599/skillscan/internal/config"
	"github.com/amishk599/skillscan/internal/extract"
	"github.com/amishk599/skillscan/internal/matcher"
	"github.com/amishk599/skillscan/internal/model"
	"github.com/amishk599/skillscan/internal/pipeline"
	"github.com/amishk599/skillscan/internal/store"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "skillscan",
	Short: "Resume skill screening",
	Long:  "skillscan extracts text from a resume, checks it against a skill vocabulary, and recommends matching jobs.",
	// Default to `dashboard` so that `skillscan resume.pdf` opens the TUI.
	Args: cobra.MaximumNArgs(1),
	RunE: runDashboard,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; real environment variables still apply.
		_ = godotenv.Load()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: SKILLSCAN_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	addSkillsFlag(rootCmd)
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > SKILLSCAN_CONFIG env var > "./config.yaml" > built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("SKILLSCAN_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat("config.yaml"); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		path = "config.yaml"
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// decisionStore returns the configured decision log. The returned close func
// is always safe to call.
func decisionStore(cfg *config.Config, dryRun bool, logger *slog.Logger) (model.DecisionStore, func(), error) {
	if dryRun || cfg.Decisions.DBPath == "" {
		logger.Debug("decision recording disabled", "dry_run", dryRun)
		return store.NewNopStore(), func() {}, nil
	}
	sqlStore, err := store.NewSQLiteStore(cfg.Decisions.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open decision store: %w", err)
	}
	return sqlStore, func() { sqlStore.Close() }, nil
}

func newScreener(cfg *config.Config, logger *slog.Logger) *pipeline.Screener {
	m := matcher.New(cfg.Skills, cfg.Jobs, cfg.MatchMode)
	return pipeline.NewScreener(extract.NewExtractor(logger), m, cfg.KeywordLimit, logger)
}

// readDocument loads a resume from disk, taking its format from the extension.
func readDocument(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("read document: %w", err)
	}
	return model.Document{
		Name:   path,
		Format: model.FormatFromName(path),
		Data:   data,
	}, nil
}
