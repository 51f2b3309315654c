package model

import (
	"context"
	"time"
)

// SkillVocabulary is the ordered list of canonical, lowercase skill names
// checked against resume text.
type SkillVocabulary []string

// JobRequirement is a single catalog entry: a job title and the skills it needs.
type JobRequirement struct {
	Title  string
	Skills []string
}

// JobCatalog maps job titles to required skills. Order is the display order
// used to break ties between equally matched jobs.
type JobCatalog []JobRequirement

// AnalysisResult partitions the vocabulary into skills present in and absent
// from a resume. Found and Missing keep vocabulary order.
type AnalysisResult struct {
	Found   []string
	Missing []string
	Score   int // percentage of the vocabulary found, 0-100
}

// JobMatch is a catalog job and how many of its required skills were found.
type JobMatch struct {
	Title      string
	MatchCount int
}

// KeywordCount is one entry of the keyword-frequency summary.
type KeywordCount struct {
	Word  string
	Count int
}

// Screening is everything produced by one pass over a document.
type Screening struct {
	Document string // file name, or "skills" for free-text input
	Format   Format
	Text     string
	Result   AnalysisResult
	Jobs     []JobMatch
	Keywords []KeywordCount
}

// JobTitles returns the titles of the recommended jobs in ranking order.
func (s Screening) JobTitles() []string {
	titles := make([]string, 0, len(s.Jobs))
	for _, j := range s.Jobs {
		titles = append(titles, j.Title)
	}
	return titles
}

// TextExtractor turns a document into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, doc Document) (string, error)
}

// Decision is the outcome of an evaluator's rating.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionHold   Decision = "hold"
	DecisionReject Decision = "reject"
)

// DecisionRecord is a finalized evaluator decision. It never carries the
// document content.
type DecisionRecord struct {
	ID        string
	Document  string
	Role      string
	Score     int
	Rating    int
	Decision  Decision
	DecidedAt time.Time
}

// DecisionStore keeps finalized evaluator decisions.
type DecisionStore interface {
	Record(rec DecisionRecord) (DecisionRecord, error)
	List(limit int) ([]DecisionRecord, error)
}
