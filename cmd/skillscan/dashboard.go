package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/skillscan/internal/dashboard"
	"github.com/amishk599/skillscan/internal/model"
	"github.com/amishk599/skillscan/internal/pipeline"
	"github.com/amishk599/skillscan/internal/report"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [FILE]",
	Short: "Screen a resume in the interactive dashboard (TUI)",
	Long:  "Shows the role picker, screens FILE (or --skills) behind a spinner, then opens the dashboard.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDashboard,
}

func init() {
	addSkillsFlag(dashboardCmd)
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if len(args) == 0 && skillsText == "" {
		return cmd.Help()
	}

	// The dashboard runs a TUI and any log output before the alt-screen
	// starts corrupts the display.
	silentLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	screener := newScreener(cfg, silentLogger)

	decisions, closeStore, err := decisionStore(cfg, false, silentLogger)
	if err != nil {
		logger.Error("failed to open decision store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	r, ok, err := dashboard.RunRolePicker()
	if err != nil {
		return fmt.Errorf("role picker: %w", err)
	}
	if !ok {
		return nil
	}

	name := documentName(args)
	s, err := dashboard.RunLoader(name, func(ctx context.Context) (model.Screening, error) {
		return screenInput(ctx, screener, args)
	})
	if err != nil {
		fmt.Printf("Error screening %s: %v\n", name, err)
		return nil
	}

	return dashboard.RunDashboard(s, r, dashboard.Options{
		ReportDir: cfg.Report.OutputDir,
		Report:    report.Options{Charts: cfg.Report.Charts},
		Store:     decisions,
	})
}

func documentName(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return pipeline.SkillsDocument
}
