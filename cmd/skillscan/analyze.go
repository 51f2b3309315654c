package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/skillscan/internal/chart"
	"github.com/amishk599/skillscan/internal/matcher"
	"github.com/amishk599/skillscan/internal/model"
	"github.com/amishk599/skillscan/internal/pipeline"
	"github.com/amishk599/skillscan/internal/report"
	"github.com/amishk599/skillscan/internal/role"
)

var (
	skillsText   string
	analyzeRole  string
	reportDir    string
	chartsDir    string
	keywordLimit int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [FILE]",
	Short: "Screen a resume once and print the result",
	Long:  "Extracts text from FILE (pdf, docx or txt), or screens --skills, and prints found and missing skills, the score, recommended jobs and top keywords.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	addSkillsFlag(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", role.Applicant.Name, "role to report for (applicant or evaluator)")
	analyzeCmd.Flags().StringVar(&reportDir, "report", "", "write the PDF report to this directory")
	analyzeCmd.Flags().StringVar(&chartsDir, "charts", "", "write chart PNGs to this directory")
	analyzeCmd.Flags().IntVar(&keywordLimit, "keywords", 0, "number of top keywords (default from config)")
	rootCmd.AddCommand(analyzeCmd)
}

func addSkillsFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&skillsText, "skills", "", `screen a skills list (e.g. "python, sql") instead of a file`)
}

// screenInput runs the screener on FILE or on the --skills text.
func screenInput(ctx context.Context, s *pipeline.Screener, args []string) (model.Screening, error) {
	switch {
	case len(args) == 1 && skillsText != "":
		return model.Screening{}, errors.New("give either FILE or --skills, not both")
	case len(args) == 1:
		doc, err := readDocument(args[0])
		if err != nil {
			return model.Screening{}, err
		}
		return s.Screen(ctx, doc)
	case strings.TrimSpace(skillsText) != "":
		return s.ScreenText(skillsText), nil
	default:
		return model.Screening{}, errors.New("a resume FILE or --skills is required")
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("keywords") {
		cfg.KeywordLimit = keywordLimit
	}
	r, err := role.Parse(analyzeRole)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := screenInput(ctx, newScreener(cfg, logger), args)
	if err != nil {
		logger.Error("screening failed", "error", err)
		os.Exit(1)
	}
	printScreening(os.Stdout, s, r)

	if reportDir != "" {
		path, err := report.Save(reportDir, s, r, report.Options{Charts: cfg.Report.Charts})
		if err != nil {
			logger.Error("failed to write report", "error", err)
			os.Exit(1)
		}
		logger.Info("report written", "path", path)
	}
	if chartsDir != "" {
		if err := writeCharts(chartsDir, s); err != nil {
			logger.Error("failed to write charts", "error", err)
			os.Exit(1)
		}
		logger.Info("charts written", "dir", chartsDir)
	}
	return nil
}

func printScreening(w io.Writer, s model.Screening, r role.Role) {
	fmt.Fprintf(w, "%s: %d%%\n", r.ScoreLabel, s.Result.Score)
	fmt.Fprintf(w, "%s: %s\n", r.FoundLabel, joinOrNone(s.Result.Found))
	fmt.Fprintf(w, "%s: %s\n", r.MissingLabel, joinOrNone(s.Result.Missing))

	fmt.Fprintf(w, "\n%s:\n", r.JobsLabel)
	if len(s.Jobs) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, j := range s.Jobs {
		fmt.Fprintf(w, "  %-30s %d skills matched\n", j.Title, j.MatchCount)
	}

	if r.SuggestQuestions {
		if qs := matcher.InterviewQuestions(s.Result.Found); len(qs) > 0 {
			fmt.Fprintln(w, "\nSuggested Interview Questions:")
			for _, q := range qs {
				fmt.Fprintf(w, "  - %s\n", q)
			}
		}
	}

	fmt.Fprintln(w, "\nTop Keywords:")
	if len(s.Keywords) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, k := range s.Keywords {
		fmt.Fprintf(w, "  %-20s %d\n", k.Word, k.Count)
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

// writeCharts renders skills.png and keywords.png into dir, skipping charts
// that have nothing to show.
func writeCharts(dir string, s model.Screening) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}
	charts := []struct {
		file   string
		render func(io.Writer) error
	}{
		{"skills.png", func(w io.Writer) error { return chart.SkillsPie(w, s.Result) }},
		{"keywords.png", func(w io.Writer) error { return chart.KeywordBars(w, s.Keywords) }},
	}
	for _, c := range charts {
		if err := writeChart(filepath.Join(dir, c.file), c.render); err != nil {
			return err
		}
	}
	return nil
}

func writeChart(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	err = render(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if errors.Is(err, chart.ErrNoData) {
		return os.Remove(path)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
