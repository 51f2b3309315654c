package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/amishk599/skillscan/internal/matcher"
	"github.com/amishk599/skillscan/internal/model"
)

// Config is the root configuration for skillscan.
type Config struct {
	Skills       model.SkillVocabulary
	Jobs         model.JobCatalog
	MatchMode    matcher.Mode
	KeywordLimit int
	Report       ReportConfig
	Decisions    DecisionsConfig
}

// ReportConfig controls PDF report export.
type ReportConfig struct {
	OutputDir string `yaml:"output_dir"` // defaults to the working directory
	Charts    bool   `yaml:"charts"`     // append a chart page
}

// DecisionsConfig controls where evaluator decisions are recorded.
type DecisionsConfig struct {
	DBPath string `yaml:"db_path"` // empty disables recording
}

const maxKeywordLimit = 50

// rawConfig is used for YAML unmarshaling.
type rawConfig struct {
	Skills       *[]string       `yaml:"skills"`
	Jobs         *[]rawJob       `yaml:"jobs"`
	MatchMode    string          `yaml:"match_mode"`
	KeywordLimit *int            `yaml:"keyword_limit"`
	Report       *ReportConfig   `yaml:"report"`
	Decisions    DecisionsConfig `yaml:"decisions"`
}

type rawJob struct {
	Title  string   `yaml:"title"`
	Skills []string `yaml:"skills"`
}

// Default returns the built-in vocabulary and job catalog.
func Default() *Config {
	return &Config{
		Skills: model.SkillVocabulary{"python", "sql", "machine learning", "java", "excel"},
		Jobs: model.JobCatalog{
			{Title: "Data Analyst", Skills: []string{"python", "sql", "excel"}},
			{Title: "Machine Learning Engineer", Skills: []string{"python", "machine learning", "sql"}},
			{Title: "Java Developer", Skills: []string{"java", "sql"}},
			{Title: "Business Analyst", Skills: []string{"excel", "sql"}},
		},
		MatchMode:    matcher.ModeSubstring,
		KeywordLimit: matcher.DefaultKeywordLimit,
		Report:       ReportConfig{OutputDir: ".", Charts: true},
	}
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
// Sections left out of the file fall back to Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.Skills != nil {
		cfg.Skills = make(model.SkillVocabulary, len(*raw.Skills))
		for i, s := range *raw.Skills {
			cfg.Skills[i] = strings.ToLower(strings.TrimSpace(s))
		}
		// A custom vocabulary invalidates the built-in catalog.
		cfg.Jobs = nil
	}
	if raw.Jobs != nil {
		cfg.Jobs = make(model.JobCatalog, len(*raw.Jobs))
		for i, j := range *raw.Jobs {
			skills := make([]string, len(j.Skills))
			for k, s := range j.Skills {
				skills[k] = strings.ToLower(strings.TrimSpace(s))
			}
			cfg.Jobs[i] = model.JobRequirement{Title: strings.TrimSpace(j.Title), Skills: skills}
		}
	}

	cfg.MatchMode, err = matcher.ParseMode(raw.MatchMode)
	if err != nil {
		return nil, fmt.Errorf("parse match_mode: %w", err)
	}

	if raw.KeywordLimit != nil {
		cfg.KeywordLimit = *raw.KeywordLimit
	}

	if raw.Report != nil {
		cfg.Report = *raw.Report
		if cfg.Report.OutputDir == "" {
			cfg.Report.OutputDir = "."
		}
	}
	cfg.Decisions = raw.Decisions

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the vocabulary and catalog invariants.
func Validate(cfg *Config) error {
	if len(cfg.Skills) == 0 {
		return fmt.Errorf("skills must list at least one skill")
	}
	vocab := make(map[string]bool, len(cfg.Skills))
	for i, s := range cfg.Skills {
		if s == "" {
			return fmt.Errorf("skills[%d] is empty", i)
		}
		if s != strings.ToLower(s) {
			return fmt.Errorf("skills[%d] %q must be lowercase", i, s)
		}
		if vocab[s] {
			return fmt.Errorf("skills[%d] %q is a duplicate", i, s)
		}
		vocab[s] = true
	}

	titles := make(map[string]bool, len(cfg.Jobs))
	for i, j := range cfg.Jobs {
		if j.Title == "" {
			return fmt.Errorf("jobs[%d].title is required", i)
		}
		if titles[j.Title] {
			return fmt.Errorf("jobs[%d] duplicate title %q", i, j.Title)
		}
		titles[j.Title] = true
		if len(j.Skills) == 0 {
			return fmt.Errorf("jobs[%d] %q must require at least one skill", i, j.Title)
		}
		for _, s := range j.Skills {
			if !vocab[s] {
				return fmt.Errorf("jobs[%d] %q requires %q, which is not in skills", i, j.Title, s)
			}
		}
	}

	if cfg.KeywordLimit < 1 || cfg.KeywordLimit > maxKeywordLimit {
		return fmt.Errorf("keyword_limit must be between 1 and %d, got %d", maxKeywordLimit, cfg.KeywordLimit)
	}

	return nil
}
