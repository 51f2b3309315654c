package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/skillscan/internal/model"
	"github.com/amishk599/skillscan/internal/role"
)

var (
	decideRating int
	decideFile   string
	decideScore  int
	decideRole   string
	decideDryRun bool
)

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Turn an interview rating into a hiring decision",
	Long:  "Maps a 1-10 interview rating to accept (7+), hold (5-6) or reject, and records it in the decision log unless --dry-run is set.",
	Args:  cobra.NoArgs,
	RunE:  runDecide,
}

func init() {
	decideCmd.Flags().IntVar(&decideRating, "rating", 0, "interview rating, 1-10")
	decideCmd.Flags().StringVar(&decideFile, "file", "", "resume the decision is about")
	decideCmd.Flags().IntVar(&decideScore, "score", 0, "screening score of the resume")
	decideCmd.Flags().StringVar(&decideRole, "role", role.Evaluator.Name, "role making the decision")
	decideCmd.Flags().BoolVar(&decideDryRun, "dry-run", false, "print the decision without recording it")
	_ = decideCmd.MarkFlagRequired("rating")
	rootCmd.AddCommand(decideCmd)
}

func runDecide(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	r, err := role.Parse(decideRole)
	if err != nil {
		return err
	}
	if !r.CanRate {
		return fmt.Errorf("role %q cannot make decisions", r.Name)
	}
	decision, err := role.Decide(decideRating)
	if err != nil {
		return err
	}
	fmt.Printf("Rating %d/%d: %s\n", decideRating, role.MaxRating, strings.ToUpper(string(decision)))

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	decisions, closeStore, err := decisionStore(cfg, decideDryRun, logger)
	if err != nil {
		logger.Error("failed to open decision store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	rec, err := decisions.Record(model.DecisionRecord{
		Document: decideFile,
		Role:     r.Name,
		Score:    decideScore,
		Rating:   decideRating,
		Decision: decision,
	})
	if err != nil {
		logger.Error("failed to record decision", "error", err)
		os.Exit(1)
	}
	if rec.ID != "" {
		logger.Info("decision recorded", "id", rec.ID, "decision", rec.Decision)
	}
	return nil
}
