package matcher

import (
	"slices"
	"strings"
	"testing"

	"github.com/amishk599/skillscan/internal/model"
)

var vocabulary = model.SkillVocabulary{"python", "sql", "machine learning", "java", "excel"}

var catalog = model.JobCatalog{
	{Title: "Data Analyst", Skills: []string{"python", "sql", "excel"}},
	{Title: "Machine Learning Engineer", Skills: []string{"python", "machine learning", "sql"}},
	{Title: "Java Developer", Skills: []string{"java", "sql"}},
	{Title: "Business Analyst", Skills: []string{"excel", "sql"}},
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		mode        Mode
		wantFound   []string
		wantMissing []string
		wantScore   int
	}{
		{
			name:        "partial match",
			text:        "Experienced Python developer skilled in SQL and Excel.",
			wantFound:   []string{"python", "sql", "excel"},
			wantMissing: []string{"machine learning", "java"},
			wantScore:   60,
		},
		{
			name:        "empty text",
			text:        "",
			wantFound:   []string{},
			wantMissing: []string{"python", "sql", "machine learning", "java", "excel"},
			wantScore:   0,
		},
		{
			name:        "all skills",
			text:        "PYTHON, sql, Machine Learning, Java and excel",
			wantFound:   []string{"python", "sql", "machine learning", "java", "excel"},
			wantMissing: []string{},
			wantScore:   100,
		},
		{
			name:        "substring mode matches inside words",
			text:        "JavaScript engineer",
			wantFound:   []string{"java"},
			wantMissing: []string{"python", "sql", "machine learning", "excel"},
			wantScore:   20,
		},
		{
			name:        "word mode requires boundaries",
			text:        "JavaScript engineer, some mysql",
			mode:        ModeWord,
			wantFound:   []string{},
			wantMissing: []string{"python", "sql", "machine learning", "java", "excel"},
			wantScore:   0,
		},
		{
			name:        "word mode at text edges",
			text:        "java/sql (machine learning)",
			mode:        ModeWord,
			wantFound:   []string{"sql", "machine learning", "java"},
			wantMissing: []string{"python", "excel"},
			wantScore:   60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode := tt.mode
			if mode == "" {
				mode = ModeSubstring
			}
			m := New(vocabulary, catalog, mode)
			got := m.Analyze(tt.text)
			if !slices.Equal(got.Found, tt.wantFound) {
				t.Errorf("Found = %v, want %v", got.Found, tt.wantFound)
			}
			if !slices.Equal(got.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tt.wantMissing)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
		})
	}
}

func TestAnalyze_EmptyVocabulary(t *testing.T) {
	m := New(nil, nil, ModeSubstring)
	got := m.Analyze("python everywhere")
	if got.Score != 0 || len(got.Found) != 0 || len(got.Missing) != 0 {
		t.Errorf("Analyze with empty vocabulary = %+v, want zero result", got)
	}
}

func TestAnalyze_ScoreFloors(t *testing.T) {
	m := New(model.SkillVocabulary{"a1", "b2", "c3"}, nil, ModeSubstring)
	if got := m.Analyze("a1 b2").Score; got != 66 {
		t.Errorf("Score = %d, want 66", got)
	}
}

func TestAnalyze_PartitionsVocabulary(t *testing.T) {
	texts := []string{
		"",
		"python",
		"javascript and excel spreadsheets",
		"Machine   Learning",
		"machine learning with SQL, Python, Java, Excel",
		"ünïcödé text with no skills",
	}
	for _, mode := range []Mode{ModeSubstring, ModeWord} {
		m := New(vocabulary, catalog, mode)
		for _, text := range texts {
			got := m.Analyze(text)
			if len(got.Found)+len(got.Missing) != len(vocabulary) {
				t.Fatalf("%s %q: found+missing = %d, want %d", mode, text, len(got.Found)+len(got.Missing), len(vocabulary))
			}
			for _, s := range got.Found {
				if slices.Contains(got.Missing, s) {
					t.Errorf("%s %q: %q both found and missing", mode, text, s)
				}
			}
			merged := append(slices.Clone(got.Found), got.Missing...)
			for _, s := range vocabulary {
				if !slices.Contains(merged, s) {
					t.Errorf("%s %q: %q neither found nor missing", mode, text, s)
				}
			}
			if got.Score < 0 || got.Score > 100 {
				t.Errorf("%s %q: score %d out of range", mode, text, got.Score)
			}
		}
	}
}

func TestRecommendJobs(t *testing.T) {
	m := New(vocabulary, model.JobCatalog{
		{Title: "DataAnalyst", Skills: []string{"python", "sql", "excel"}},
		{Title: "MLEngineer", Skills: []string{"python", "machine learning", "sql"}},
	}, ModeSubstring)

	got := m.RecommendJobs([]string{"python", "sql", "excel"})
	want := []model.JobMatch{{Title: "DataAnalyst", MatchCount: 3}, {Title: "MLEngineer", MatchCount: 2}}
	if !slices.Equal(got, want) {
		t.Errorf("RecommendJobs = %v, want %v", got, want)
	}
}

func TestRecommendJobs_StableTiesAndNoZeros(t *testing.T) {
	m := New(vocabulary, catalog, ModeSubstring)

	got := m.RecommendJobs([]string{"sql"})
	want := []model.JobMatch{
		{Title: "Data Analyst", MatchCount: 1},
		{Title: "Machine Learning Engineer", MatchCount: 1},
		{Title: "Java Developer", MatchCount: 1},
		{Title: "Business Analyst", MatchCount: 1},
	}
	if !slices.Equal(got, want) {
		t.Errorf("RecommendJobs = %v, want %v", got, want)
	}

	got = m.RecommendJobs([]string{"java", "excel"})
	want = []model.JobMatch{{Title: "Data Analyst", MatchCount: 1}, {Title: "Java Developer", MatchCount: 1}, {Title: "Business Analyst", MatchCount: 1}}
	if !slices.Equal(got, want) {
		t.Errorf("RecommendJobs = %v, want %v", got, want)
	}

	got = m.RecommendJobs([]string{"excel", "sql", "java"})
	for i := 1; i < len(got); i++ {
		if got[i].MatchCount > got[i-1].MatchCount {
			t.Errorf("RecommendJobs not sorted: %v", got)
		}
	}
	for _, j := range got {
		if j.MatchCount == 0 {
			t.Errorf("RecommendJobs returned zero-match job %q", j.Title)
		}
	}
}

func TestRecommendJobs_EmptyFound(t *testing.T) {
	m := New(vocabulary, catalog, ModeSubstring)
	if got := m.RecommendJobs(nil); len(got) != 0 {
		t.Errorf("RecommendJobs(nil) = %v, want empty", got)
	}
}

func TestTopKeywords(t *testing.T) {
	got := TopKeywords("Go go GO rust. Rust python; go_lang", 10)
	want := []model.KeywordCount{{Word: "go", Count: 3}, {Word: "rust", Count: 2}, {Word: "python", Count: 1}, {Word: "go_lang", Count: 1}}
	if !slices.Equal(got, want) {
		t.Errorf("TopKeywords = %v, want %v", got, want)
	}
}

func TestTopKeywords_LimitAndOrder(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		b.WriteString(strings.Repeat(string(rune('a'+i))+"x ", i%4+1))
	}
	got := TopKeywords(b.String(), DefaultKeywordLimit)
	if len(got) != DefaultKeywordLimit {
		t.Fatalf("len(TopKeywords) = %d, want %d", len(got), DefaultKeywordLimit)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Errorf("TopKeywords not sorted: %v", got)
		}
	}
	// Count 4 words appear at i = 3, 7, 11 in that order.
	if got[0].Word != "dx" || got[1].Word != "hx" || got[2].Word != "lx" {
		t.Errorf("tie order not first-seen: %v", got[:3])
	}
}

func TestTopKeywords_Unicode(t *testing.T) {
	got := TopKeywords("Résumé résumé naïve", 10)
	want := []model.KeywordCount{{Word: "résumé", Count: 2}, {Word: "naïve", Count: 1}}
	if !slices.Equal(got, want) {
		t.Errorf("TopKeywords = %v, want %v", got, want)
	}
}

func TestTopKeywords_Empty(t *testing.T) {
	if got := TopKeywords("  ... !!", 10); len(got) != 0 {
		t.Errorf("TopKeywords = %v, want empty", got)
	}
	if got := TopKeywords("word", 0); got != nil {
		t.Errorf("TopKeywords limit 0 = %v, want nil", got)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeSubstring, "substring": ModeSubstring, "Word": ModeWord} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseMode("fuzzy"); err == nil {
		t.Error("ParseMode(fuzzy): expected error")
	}
}

func TestInterviewQuestions(t *testing.T) {
	got := InterviewQuestions([]string{"python", "sql"})
	want := []string{"Ask advanced questions on python", "Ask advanced questions on sql"}
	if !slices.Equal(got, want) {
		t.Errorf("InterviewQuestions = %v, want %v", got, want)
	}
}
