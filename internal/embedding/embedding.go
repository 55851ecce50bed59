// Package embedding holds the tokenizer and vocabulary shared by the
// lexical vectorizers.
package embedding

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// ErrEmptyVocabulary is returned when no text in a batch yields a token.
var ErrEmptyVocabulary = errors.New("empty vocabulary: no tokens found in any text")

// Runs of two or more letters, digits or underscores; single characters are dropped.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize lowercases text and returns its tokens in order.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Vocabulary maps each distinct term to a column. Terms are sorted so
// the column layout does not depend on map iteration order.
type Vocabulary struct {
	index map[string]int
	terms []string
}

// BuildVocabulary collects the distinct tokens of every tokenized text,
// skipping any term in stop.
func BuildVocabulary(tokenized [][]string, stop map[string]struct{}) (*Vocabulary, error) {
	seen := make(map[string]struct{})
	for _, tokens := range tokenized {
		for _, tok := range tokens {
			if _, isStop := stop[tok]; isStop {
				continue
			}
			seen[tok] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, ErrEmptyVocabulary
	}
	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}
	return &Vocabulary{index: index, terms: terms}, nil
}

// Size returns the number of columns.
func (v *Vocabulary) Size() int { return len(v.terms) }

// Lookup returns the column of term.
func (v *Vocabulary) Lookup(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Terms returns the terms in column order.
func (v *Vocabulary) Terms() []string { return v.terms }
