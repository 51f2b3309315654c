package matcher

import (
	"regexp"
	"slices"
	"strings"

	"github.com/amishk599/skillscan/internal/model"
)

// DefaultKeywordLimit is the size of the keyword-frequency summary.
const DefaultKeywordLimit = 10

var wordToken = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// TopKeywords counts word tokens in the lowercased text and returns the limit
// most frequent ones. Ties keep the order in which words were first seen.
func TopKeywords(text string, limit int) []model.KeywordCount {
	if limit <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, w := range wordToken.FindAllString(strings.ToLower(text), -1) {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	keywords := make([]model.KeywordCount, len(order))
	for i, w := range order {
		keywords[i] = model.KeywordCount{Word: w, Count: counts[w]}
	}
	slices.SortStableFunc(keywords, func(a, b model.KeywordCount) int {
		return b.Count - a.Count
	})

	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}
