package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amishk599/skillscan/internal/config"
	"github.com/amishk599/skillscan/internal/model"
	"github.com/amishk599/skillscan/internal/role"
)

func TestLoadConfig_FallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SKILLSCAN_CONFIG", "")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Skills) != len(config.Default().Skills) {
		t.Errorf("skills = %v, want defaults", cfg.Skills)
	}
}

func TestLoadConfig_EnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	if err := os.WriteFile(path, []byte("skills: [go, rust]\njobs:\n  - title: Systems Engineer\n    skills: [go, rust]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SKILLSCAN_CONFIG", path)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Skills) != 2 || cfg.Jobs[0].Title != "Systems Engineer" {
		t.Errorf("config not read from SKILLSCAN_CONFIG: %+v", cfg)
	}
}

func TestScreenInput_SkillsText(t *testing.T) {
	t.Cleanup(func() { skillsText = "" })
	skillsText = "Python, SQL, Excel"

	s, err := screenInput(context.Background(), newScreener(config.Default(), setupLogger(false)), nil)
	if err != nil {
		t.Fatalf("screenInput: %v", err)
	}
	if s.Result.Score != 60 || s.Document != "skills" {
		t.Errorf("screening = %+v, want score 60 for the skills document", s)
	}

	if _, err := screenInput(context.Background(), newScreener(config.Default(), setupLogger(false)), []string{"cv.pdf"}); err == nil {
		t.Error("FILE with --skills: expected error")
	}
}

func TestScreenInput_RequiresInput(t *testing.T) {
	if _, err := screenInput(context.Background(), newScreener(config.Default(), setupLogger(false)), nil); err == nil {
		t.Error("expected error without FILE or --skills")
	}
}

func TestPrintScreening(t *testing.T) {
	s := model.Screening{
		Result: model.AnalysisResult{Found: []string{"python"}, Missing: []string{"java"}, Score: 50},
		Jobs:   []model.JobMatch{{Title: "Data Analyst", MatchCount: 1}},
	}

	var buf bytes.Buffer
	printScreening(&buf, s, role.Evaluator)
	out := buf.String()
	for _, want := range []string{"Candidate Suitability: 50%", "Candidate Strengths: python", "Skill Gaps: java", "Ask advanced questions on python"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	printScreening(&buf, s, role.Applicant)
	if strings.Contains(buf.String(), "Interview") {
		t.Error("applicant output includes interview questions")
	}
}

func TestWriteCharts_SkipsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := model.Screening{Result: model.AnalysisResult{Found: []string{"python"}, Missing: []string{"java"}, Score: 50}}

	if err := writeCharts(dir, s); err != nil {
		t.Fatalf("writeCharts: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "skills.png")); err != nil {
		t.Errorf("skills.png: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "keywords.png")); !os.IsNotExist(err) {
		t.Errorf("keywords.png written for no keywords (err=%v)", err)
	}
}
