package corpus

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithQueryRestoresCorpus(t *testing.T) {
	s := NewStore([]string{"one.", "two."})
	var seen []string
	err := s.WithQuery("query", func(augmented []string) error {
		seen = append([]string(nil), augmented...)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"one.", "two.", "query"}, seen)
	assert.Equal(t, []string{"one.", "two."}, s.Sentences())
}

func TestWithQueryRestoresOnError(t *testing.T) {
	s := NewStore([]string{"one."})
	boom := errors.New("boom")
	err := s.WithQuery("query", func([]string) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"one."}, s.Sentences())
}

func TestWithQueryRestoresOnPanic(t *testing.T) {
	s := NewStore([]string{"one."})
	assert.Panics(t, func() {
		_ = s.WithQuery("query", func([]string) error { panic("scoring failed") })
	})
	assert.Equal(t, 1, s.Len())
}

func TestWithQueryEmptyCorpus(t *testing.T) {
	s := NewStore(nil)
	err := s.WithQuery("query", func(augmented []string) error {
		assert.Equal(t, []string{"query"}, augmented)
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestQueryDuplicatingSentenceRemovesOnlyQuery(t *testing.T) {
	s := NewStore([]string{"same", "other", "same"})
	require.NoError(t, s.WithQuery("same", func([]string) error { return nil }))
	assert.Equal(t, []string{"same", "other", "same"}, s.Sentences())
}

func TestStoreCopiesInput(t *testing.T) {
	in := []string{"a"}
	s := NewStore(in)
	in[0] = "changed"
	out := s.Sentences()
	out[0] = "changed too"
	assert.Equal(t, []string{"a"}, s.Sentences())
}

func TestReplace(t *testing.T) {
	s := NewStore([]string{"old"})
	s.Replace([]string{"new", "corpus"})
	assert.Equal(t, []string{"new", "corpus"}, s.Sentences())
}

func TestConcurrentQueries(t *testing.T) {
	s := NewStore([]string{"a", "b", "c"})
	errs := make(chan error, 50)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.WithQuery("q", func(augmented []string) error {
				if len(augmented) != 4 || augmented[3] != "q" {
					return errors.New("unexpected augmented corpus")
				}
				return nil
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a", "b", "c"}, s.Sentences())
}
