package composer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"visab/internal/ranker"
)

func cands(pairs ...float64) []ranker.Candidate {
	out := make([]ranker.Candidate, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, ranker.Candidate{Index: int(pairs[i]), Score: pairs[i+1]})
	}
	return out
}

func TestComposeJoinsInRankOrder(t *testing.T) {
	sentences := []string{"First one.", "Second  one.", "Third one."}
	got, ok := New(80, 3).Compose(cands(2, 0.9, 0, 0.5), sentences)
	assert.True(t, ok)
	assert.Equal(t, "Third one. First one.", got)
}

func TestComposeSkipsZeroScores(t *testing.T) {
	sentences := []string{"Unrelated.", "Related."}
	got, ok := New(80, 3).Compose(cands(1, 0.2, 0, 0), sentences)
	assert.True(t, ok)
	assert.Equal(t, "Related.", got)
}

func TestComposeAllZeroIsFallback(t *testing.T) {
	got, ok := New(80, 3).Compose(cands(0, 0, 1, 0), []string{"a b", "c d"})
	assert.False(t, ok)
	assert.Equal(t, Fallback, got)
}

func TestComposeNoCandidatesIsFallback(t *testing.T) {
	got, ok := New(0, 0).Compose(nil, nil)
	assert.False(t, ok)
	assert.Equal(t, Fallback, got)
}

func TestComposeCapsSentenceCount(t *testing.T) {
	sentences := []string{"a.", "b.", "c.", "d.", "e."}
	got, _ := New(80, 3).Compose(cands(0, 0.9, 1, 0.8, 2, 0.7, 3, 0.6, 4, 0.5), sentences)
	assert.Equal(t, "a. b. c.", got)
}

func TestComposeTruncatesAtBudget(t *testing.T) {
	sentences := []string{"one two three four", "five six seven eight", "nine ten"}
	got, ok := New(6, 3).Compose(cands(0, 0.9, 1, 0.8, 2, 0.7), sentences)
	assert.True(t, ok)
	assert.Equal(t, "one two three four five six", got)
}

func TestComposeTruncatesFirstSentence(t *testing.T) {
	long := strings.Repeat("word ", 100)
	got, ok := New(80, 3).Compose(cands(0, 0.4), []string{long})
	assert.True(t, ok)
	assert.Len(t, strings.Fields(got), 80)
}

func TestComposeStopsWhenBudgetExhausted(t *testing.T) {
	sentences := []string{"one two", "three"}
	got, ok := New(2, 3).Compose(cands(0, 0.9, 1, 0.8), sentences)
	assert.True(t, ok)
	assert.Equal(t, "one two", got)
}

func TestComposeNeverExceedsBudget(t *testing.T) {
	sentences := []string{
		strings.Repeat("alpha ", 30),
		strings.Repeat("beta ", 45),
		strings.Repeat("gamma ", 12),
		strings.Repeat("delta ", 70),
	}
	for budget := 1; budget <= 120; budget++ {
		got, _ := New(budget, 3).Compose(cands(0, 0.9, 1, 0.8, 2, 0.7, 3, 0.6), sentences)
		assert.LessOrEqual(t, len(strings.Fields(got)), budget, "budget %d", budget)
	}
}

func TestComposeIgnoresOutOfRangeIndex(t *testing.T) {
	got, ok := New(80, 3).Compose(cands(5, 0.9, 0, 0.1), []string{"kept."})
	assert.True(t, ok)
	assert.Equal(t, "kept.", got)
}
