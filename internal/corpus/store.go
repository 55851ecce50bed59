// Package corpus owns the ordered sentence list the bot answers from.
//
// A Store is built once from the ingested document and shared by every
// request. The only mutation during serving is the transient append of
// the current query inside WithQuery, which holds the store lock for the
// whole append-score-remove sequence.
package corpus

import (
	"sync"
)

// Store is an ordered, lock-guarded sequence of corpus sentences.
type Store struct {
	mu        sync.Mutex
	sentences []string
}

// NewStore copies sentences into a new store.
func NewStore(sentences []string) *Store {
	return &Store{sentences: cloneSentences(sentences)}
}

// Len returns the number of corpus sentences.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sentences)
}

// Sentences returns a copy of the corpus in document order.
func (s *Store) Sentences() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSentences(s.sentences)
}

// Replace swaps the corpus for a new sentence list.
func (s *Store) Replace(sentences []string) {
	next := cloneSentences(sentences)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentences = next
}

// WithQuery appends query as the last sentence, calls fn with the
// augmented sequence and removes the query again before returning, even
// if fn panics. fn must not retain the slice.
func (s *Store) WithQuery(query string, fn func(augmented []string) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.sentences)
	s.sentences = append(s.sentences, query)
	defer func() {
		s.sentences[n] = ""
		s.sentences = s.sentences[:n]
	}()
	return fn(s.sentences)
}

func cloneSentences(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
