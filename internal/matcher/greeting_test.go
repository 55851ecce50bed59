package matcher

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGreeter() *GreetingMatcher {
	return NewGreetingMatcher(DefaultUserGreetings(), DefaultBotGreetings(), rand.New(rand.NewSource(7)))
}

func TestGreetingMatch(t *testing.T) {
	g := newTestGreeter()
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"single word", "hello", true},
		{"uppercase", "HeLLo", true},
		{"inside sentence", "well hey there bot", true},
		{"multi-word greeting", "Good morning to you", true},
		{"substring only", "this is about kidneys", false},
		{"punctuation attached", "hello!", false},
		{"half a phrase", "good news", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, ok := g.Match(tt.input)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Contains(t, DefaultBotGreetings(), reply)
			} else {
				assert.Empty(t, reply)
			}
		})
	}
}

func TestGreetingReproducibleWithSeed(t *testing.T) {
	a := newTestGreeter()
	b := newTestGreeter()
	for i := 0; i < 10; i++ {
		ra, _ := a.Match("hi")
		rb, _ := b.Match("hi")
		require.Equal(t, ra, rb)
	}
}

func TestGreetingCoversReplySet(t *testing.T) {
	g := newTestGreeter()
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		r, ok := g.Match("hey")
		require.True(t, ok)
		seen[r] = true
	}
	assert.Len(t, seen, len(DefaultBotGreetings()))
}

func TestGreetingNoReplies(t *testing.T) {
	g := NewGreetingMatcher([]string{"hi"}, nil, nil)
	_, ok := g.Match("hi")
	assert.False(t, ok)
}
