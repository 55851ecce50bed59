// Package composer turns ranked corpus sentences into a bounded reply.
package composer

import (
	"strings"

	"visab/internal/ranker"
)

// Fallback is returned when no corpus sentence relates to the query.
const Fallback = "I apologize, I don't understand. Can you please ask something else?"

const (
	DefaultMaxWords     = 80
	DefaultMaxSentences = 3
)

// Composer accumulates ranked sentences into a reply within a word budget.
type Composer struct {
	maxWords     int
	maxSentences int
}

// New creates a composer; non-positive limits fall back to the defaults.
func New(maxWords, maxSentences int) *Composer {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}
	return &Composer{maxWords: maxWords, maxSentences: maxSentences}
}

// Compose walks candidates in order, skipping zero scores. A sentence that
// would overflow the word budget is cut to the words that still fit and
// ends the reply. The second return value is false when nothing was
// accepted and the reply is Fallback.
func (c *Composer) Compose(candidates []ranker.Candidate, sentences []string) (string, bool) {
	var words []string
	accepted := 0
	for _, cand := range candidates {
		if accepted >= c.maxSentences {
			break
		}
		if cand.Score == 0 || cand.Index < 0 || cand.Index >= len(sentences) {
			continue
		}
		sentWords := strings.Fields(sentences[cand.Index])
		if len(sentWords) == 0 {
			continue
		}
		remaining := c.maxWords - len(words)
		if len(sentWords) > remaining {
			words = append(words, sentWords[:remaining]...)
			if remaining > 0 {
				accepted++
			}
			break
		}
		words = append(words, sentWords...)
		accepted++
	}
	if accepted == 0 {
		return Fallback, false
	}
	return strings.Join(words, " "), true
}
