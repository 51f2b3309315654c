// Package matcher checks resume text against a fixed skill vocabulary and
// ranks catalog jobs by how many of their required skills were found.
package matcher

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/amishk599/skillscan/internal/model"
)

// Mode selects how a skill is located in the text.
type Mode string

const (
	// ModeSubstring finds a skill anywhere in the text, so "java" also
	// matches inside "javascript".
	ModeSubstring Mode = "substring"
	// ModeWord requires the skill to be bounded by non-word characters.
	ModeWord Mode = "word"
)

// ParseMode validates a configured match mode. Empty means ModeSubstring.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSubstring:
		return ModeSubstring, nil
	case ModeWord:
		return ModeWord, nil
	default:
		return "", fmt.Errorf("unknown match mode %q (want %q or %q)", s, ModeSubstring, ModeWord)
	}
}

// Matcher is immutable after construction and safe to share.
type Matcher struct {
	vocabulary model.SkillVocabulary
	catalog    model.JobCatalog
	mode       Mode
	bounded    map[string]*regexp.Regexp // ModeWord only
}

// New returns a matcher over the given vocabulary and catalog. Skills are
// lowercased; callers are expected to pass a validated, duplicate-free list.
func New(vocabulary model.SkillVocabulary, catalog model.JobCatalog, mode Mode) *Matcher {
	m := &Matcher{
		vocabulary: make(model.SkillVocabulary, len(vocabulary)),
		catalog:    catalog,
		mode:       mode,
	}
	for i, s := range vocabulary {
		m.vocabulary[i] = strings.ToLower(s)
	}
	if mode == ModeWord {
		m.bounded = make(map[string]*regexp.Regexp, len(m.vocabulary))
		for _, s := range m.vocabulary {
			m.bounded[s] = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(s) + `(?:$|[^\p{L}\p{N}_])`)
		}
	}
	return m
}

// Vocabulary returns a copy of the skill vocabulary.
func (m *Matcher) Vocabulary() model.SkillVocabulary {
	return slices.Clone(m.vocabulary)
}

// Catalog returns the job catalog.
func (m *Matcher) Catalog() model.JobCatalog {
	return m.catalog
}

// Analyze partitions the vocabulary into found and missing skills and scores
// coverage as floor(100 * found / vocabulary). An empty vocabulary scores 0.
func (m *Matcher) Analyze(text string) model.AnalysisResult {
	normalized := strings.ToLower(text)

	found := make([]string, 0, len(m.vocabulary))
	missing := make([]string, 0, len(m.vocabulary))
	for _, skill := range m.vocabulary {
		if m.contains(normalized, skill) {
			found = append(found, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := 0
	if len(m.vocabulary) > 0 {
		score = 100 * len(found) / len(m.vocabulary)
	}
	return model.AnalysisResult{Found: found, Missing: missing, Score: score}
}

func (m *Matcher) contains(text, skill string) bool {
	if m.mode == ModeWord {
		return m.bounded[skill].MatchString(text)
	}
	return strings.Contains(text, skill)
}

// RecommendJobs ranks catalog jobs by the number of their required skills in
// found. Jobs with no match are dropped; ties keep catalog order.
func (m *Matcher) RecommendJobs(found []string) []model.JobMatch {
	have := make(map[string]bool, len(found))
	for _, s := range found {
		have[s] = true
	}

	matches := make([]model.JobMatch, 0, len(m.catalog))
	for _, job := range m.catalog {
		count := 0
		for _, s := range job.Skills {
			if have[s] {
				count++
			}
		}
		if count > 0 {
			matches = append(matches, model.JobMatch{Title: job.Title, MatchCount: count})
		}
	}

	slices.SortStableFunc(matches, func(a, b model.JobMatch) int {
		return b.MatchCount - a.MatchCount
	})
	return matches
}

// InterviewQuestions suggests one probing question per found skill.
func InterviewQuestions(found []string) []string {
	questions := make([]string, 0, len(found))
	for _, s := range found {
		questions = append(questions, "Ask advanced questions on "+s)
	}
	return questions
}
