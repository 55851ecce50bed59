package countvec

import (
	"visab/internal/embedding"
)

// Vectorizer produces raw term-frequency vectors over a vocabulary fitted
// on the batch being transformed. No stopwords, no weighting.
type Vectorizer struct{}

// NewVectorizer creates a bag-of-words count vectorizer.
func NewVectorizer() *Vectorizer { return &Vectorizer{} }

// Name returns the identifier of this vectorizer implementation.
func (v *Vectorizer) Name() string { return "count" }

// FitTransform builds the vocabulary from texts and returns one count
// vector per text, in input order.
func (v *Vectorizer) FitTransform(texts []string) ([][]float64, error) {
	tokenized := make([][]string, len(texts))
	for i, text := range texts {
		tokenized[i] = embedding.Tokenize(text)
	}
	vocab, err := embedding.BuildVocabulary(tokenized, nil)
	if err != nil {
		return nil, err
	}
	vectors := make([][]float64, len(texts))
	for i, tokens := range tokenized {
		vec := make([]float64, vocab.Size())
		for _, tok := range tokens {
			if col, ok := vocab.Lookup(tok); ok {
				vec[col]++
			}
		}
		vectors[i] = vec
	}
	return vectors, nil
}
