// Package ranker scores a query against the corpus by lexical overlap.
package ranker

import (
	"math"
	"sort"

	"visab/internal/domain"
)

// Candidate is a corpus position with its similarity to the query.
type Candidate struct {
	Index int
	Score float64
}

// Ranker vectorizes the corpus together with the query and orders corpus
// sentences by cosine similarity to it.
//
// The vocabulary and every vector are rebuilt on each call, which keeps
// the ranker stateless but grows linearly with corpus size per query.
type Ranker struct {
	vectorizer domain.Vectorizer
}

func New(vectorizer domain.Vectorizer) *Ranker {
	return &Ranker{vectorizer: vectorizer}
}

// Rank expects the query as the last element of augmented and returns the
// other positions ordered by descending similarity. Equal scores keep
// document order. The query's own position is never returned.
func (r *Ranker) Rank(augmented []string) ([]Candidate, error) {
	if len(augmented) < 2 {
		return nil, nil
	}
	vectors, err := r.vectorizer.FitTransform(augmented)
	if err != nil {
		return nil, err
	}
	scores := Scores(vectors)
	self := len(augmented) - 1
	candidates := make([]Candidate, 0, self)
	for i := 0; i < self; i++ {
		candidates = append(candidates, Candidate{Index: i, Score: scores[i]})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates, nil
}

// Scores returns the cosine similarity of the last vector against every
// vector, itself included.
func Scores(vectors [][]float64) []float64 {
	if len(vectors) == 0 {
		return nil
	}
	query := vectors[len(vectors)-1]
	scores := make([]float64, len(vectors))
	for i, v := range vectors {
		scores[i] = CosineSimilarity(query, v)
	}
	return scores
}

// CosineSimilarity returns the cosine of the angle between a and b, or 0
// when either has zero length or their sizes differ.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
