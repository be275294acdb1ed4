package terminal

import (
	"strings"
	"unicode"
)

const (
	// AskThreshold is the minimum keyword overlap needed to answer.
	AskThreshold = 4

	FallbackAnswer = "Sorry, my program doesn't know the question you are asking"
)

func keywords(text string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Match returns the entry sharing the most distinct keywords with question
// and that overlap. The earliest entry wins ties. It returns nil when no
// entry shares a keyword.
func Match(items []QnA, question string) (*QnA, int) {
	query := keywords(question)

	var best *QnA
	bestScore := 0
	for i := range items {
		score := 0
		for w := range keywords(items[i].Question) {
			if _, ok := query[w]; ok {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = &items[i], score
		}
	}
	return best, bestScore
}

// Answer returns the matched answer, or FallbackAnswer below AskThreshold.
func Answer(items []QnA, question string) string {
	best, score := Match(items, question)
	if best == nil || score < AskThreshold {
		return FallbackAnswer
	}
	return best.Answer
}
