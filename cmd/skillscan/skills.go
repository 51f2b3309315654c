package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skill vocabulary and job catalog",
	Long:  "Reads the config and prints the skills that are screened for and the jobs they map to.",
	RunE:  runSkills,
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Skills (%s matching):\n", cfg.MatchMode)
	for _, s := range cfg.Skills {
		fmt.Printf("  %s\n", s)
	}

	fmt.Printf("\n%-30s %s\n", "Job", "Required skills")
	fmt.Println(strings.Repeat("─", 60))
	for _, j := range cfg.Jobs {
		fmt.Printf("%-30s %s\n", j.Title, strings.Join(j.Skills, ", "))
	}

	fmt.Printf("\nTotal: %d skills, %d jobs\n", len(cfg.Skills), len(cfg.Jobs))
	return nil
}
