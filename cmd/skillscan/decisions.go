package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var decisionsLimit int

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "List recorded hiring decisions",
	Long:  "Prints the decision log, newest first.",
	Args:  cobra.NoArgs,
	RunE:  runDecisions,
}

func init() {
	decisionsCmd.Flags().IntVarP(&decisionsLimit, "limit", "n", 20, "maximum decisions to show (0 = all)")
	rootCmd.AddCommand(decisionsCmd)
}

func runDecisions(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Decisions.DBPath == "" {
		fmt.Println("Decision recording is disabled (decisions.db_path is not set).")
		return nil
	}
	decisions, closeStore, err := decisionStore(cfg, false, logger)
	if err != nil {
		logger.Error("failed to open decision store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	limit := decisionsLimit
	if limit <= 0 {
		limit = -1
	}
	records, err := decisions.List(limit)
	if err != nil {
		logger.Error("failed to list decisions", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%-20s %-8s %-10s %5s %6s  %s\n", "Decided", "Decision", "Role", "Score", "Rating", "Document")
	fmt.Println(strings.Repeat("─", 72))
	for _, rec := range records {
		fmt.Printf("%-20s %-8s %-10s %4d%% %6d  %s\n",
			rec.DecidedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Decision, rec.Role, rec.Score, rec.Rating, rec.Document)
	}
	fmt.Printf("\nTotal: %d decisions\n", len(records))
	return nil
}
