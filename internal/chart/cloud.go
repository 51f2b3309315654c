package chart

import (
	"sort"

	"github.com/amishk599/skillscan/internal/model"
)

// MaxWeight is the heaviest word-cloud weight.
const MaxWeight = 5

// CloudWord is a word and its display weight, 1 (lightest) to MaxWeight.
type CloudWord struct {
	Word   string
	Weight int
}

// Cloud scales keyword counts to weights and returns the words alphabetically,
// so that position in the cloud carries no meaning and only weight does.
func Cloud(keywords []model.KeywordCount) []CloudWord {
	if len(keywords) == 0 {
		return nil
	}

	lo, hi := keywords[0].Count, keywords[0].Count
	for _, k := range keywords[1:] {
		lo = min(lo, k.Count)
		hi = max(hi, k.Count)
	}

	words := make([]CloudWord, len(keywords))
	for i, k := range keywords {
		weight := MaxWeight
		if hi > lo {
			weight = 1 + (k.Count-lo)*(MaxWeight-1)/(hi-lo)
		}
		words[i] = CloudWord{Word: k.Word, Weight: weight}
	}
	sort.Slice(words, func(i, j int) bool { return words[i].Word < words[j].Word })
	return words
}
