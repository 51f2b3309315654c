// Package pipeline runs one synchronous screening pass over a document.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amishk599/skillscan/internal/matcher"
	"github.com/amishk599/skillscan/internal/model"
)

// SkillsDocument names screenings of typed-in skills rather than a file.
const SkillsDocument = "skills"

// Screener owns the full pipeline for a single document:
// extract → analyze → recommend → summarize keywords.
type Screener struct {
	extractor    model.TextExtractor
	matcher      *matcher.Matcher
	keywordLimit int
	logger       *slog.Logger
}

// NewScreener creates a screener wired with all its dependencies.
func NewScreener(
	extractor model.TextExtractor,
	m *matcher.Matcher,
	keywordLimit int,
	logger *slog.Logger,
) *Screener {
	return &Screener{
		extractor:    extractor,
		matcher:      m,
		keywordLimit: keywordLimit,
		logger:       logger,
	}
}

// Screen extracts the document's text and screens it. Extraction is the only
// step that can fail; no partial screening is returned.
func (s *Screener) Screen(ctx context.Context, doc model.Document) (model.Screening, error) {
	text, err := s.extractor.Extract(ctx, doc)
	if err != nil {
		return model.Screening{}, fmt.Errorf("screening %s: %w", doc.Name, err)
	}
	return s.screen(doc.Name, doc.Format, text), nil
}

// ScreenText screens free text, such as a comma-separated list of skills.
func (s *Screener) ScreenText(text string) model.Screening {
	return s.screen(SkillsDocument, model.FormatText, text)
}

func (s *Screener) screen(name string, format model.Format, text string) model.Screening {
	result := s.matcher.Analyze(text)
	jobs := s.matcher.RecommendJobs(result.Found)
	keywords := matcher.TopKeywords(text, s.keywordLimit)

	s.logger.Info("screened document",
		"document", name,
		"format", string(format),
		"found", len(result.Found),
		"missing", len(result.Missing),
		"score", result.Score,
		"jobs", len(jobs),
	)

	return model.Screening{
		Document: name,
		Format:   format,
		Text:     text,
		Result:   result,
		Jobs:     jobs,
		Keywords: keywords,
	}
}
