// Package matcher holds the short-circuit matchers consulted before
// similarity ranking: salutations and the canned prompt table.
package matcher

import (
	"math/rand"
	"strings"
	"sync"
)

// GreetingMatcher recognises salutation words and answers with a random
// bot greeting.
type GreetingMatcher struct {
	phrases [][]string
	replies []string

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGreetingMatcher builds a matcher from the recognised user greetings
// and the bot's candidate replies. rnd may be nil, in which case a
// time-seeded source is used. Entries of more than one word match as
// consecutive whole tokens.
func NewGreetingMatcher(userGreetings, botReplies []string, rnd *rand.Rand) *GreetingMatcher {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	phrases := make([][]string, 0, len(userGreetings))
	for _, g := range userGreetings {
		if words := strings.Fields(strings.ToLower(g)); len(words) > 0 {
			phrases = append(phrases, words)
		}
	}
	return &GreetingMatcher{
		phrases: phrases,
		replies: append([]string(nil), botReplies...),
		rnd:     rnd,
	}
}

// Match reports whether text contains a recognised greeting and, if so,
// returns a reply drawn uniformly from the bot greetings.
func (g *GreetingMatcher) Match(text string) (string, bool) {
	if len(g.replies) == 0 {
		return "", false
	}
	tokens := strings.Fields(strings.ToLower(text))
	for i := range tokens {
		for _, phrase := range g.phrases {
			if hasPhraseAt(tokens, i, phrase) {
				return g.pick(), true
			}
		}
	}
	return "", false
}

// Replies returns the bot greeting set.
func (g *GreetingMatcher) Replies() []string {
	return append([]string(nil), g.replies...)
}

func (g *GreetingMatcher) pick() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.replies[g.rnd.Intn(len(g.replies))]
}

func hasPhraseAt(tokens []string, at int, phrase []string) bool {
	if at+len(phrase) > len(tokens) {
		return false
	}
	for j, w := range phrase {
		if tokens[at+j] != w {
			return false
		}
	}
	return true
}
