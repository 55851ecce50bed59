package tfidf

import (
	"math"

	"visab/internal/embedding"
)

// Vectorizer implements a TF-IDF vectorizer with English stopwords removed.
// Each FitTransform call fits its own vocabulary and IDF values.
type Vectorizer struct {
	stopwords map[string]struct{}
}

// NewVectorizer creates a TF-IDF vectorizer.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{stopwords: defaultStopwords()}
}

// Name returns the identifier of this vectorizer implementation.
func (v *Vectorizer) Name() string { return "tfidf" }

// FitTransform builds the vocabulary and IDF values from texts and returns
// one L2-normalised TF-IDF vector per text.
func (v *Vectorizer) FitTransform(texts []string) ([][]float64, error) {
	tokenized := make([][]string, len(texts))
	for i, text := range texts {
		tokenized[i] = v.tokenize(text)
	}
	m, err := v.prepare(tokenized)
	if err != nil {
		return nil, err
	}
	vectors := make([][]float64, len(tokenized))
	for i, tokens := range tokenized {
		vectors[i] = m.embed(tokens)
	}
	return vectors, nil
}

type model struct {
	vocab *embedding.Vocabulary
	idf   []float64
}

func (v *Vectorizer) prepare(tokenized [][]string) (*model, error) {
	vocab, err := embedding.BuildVocabulary(tokenized, v.stopwords)
	if err != nil {
		return nil, err
	}
	// Document frequencies
	df := make([]int, vocab.Size())
	for _, tokens := range tokenized {
		seen := make(map[int]struct{})
		for _, tok := range tokens {
			col, ok := vocab.Lookup(tok)
			if !ok {
				continue
			}
			if _, dup := seen[col]; dup {
				continue
			}
			seen[col] = struct{}{}
			df[col]++
		}
	}
	idf := make([]float64, vocab.Size())
	n := float64(len(tokenized))
	for col := range idf {
		// Smoothed IDF
		idf[col] = math.Log((1+n)/(1+float64(df[col]))) + 1.0
	}
	return &model{vocab: vocab, idf: idf}, nil
}

func (m *model) embed(tokens []string) []float64 {
	vec := make([]float64, m.vocab.Size())
	tf := make(map[int]int)
	total := 0
	for _, tok := range tokens {
		if col, ok := m.vocab.Lookup(tok); ok {
			tf[col]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for col, count := range tf {
		vec[col] = float64(count) / float64(total) * m.idf[col]
	}
	// L2 normalize
	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func (v *Vectorizer) tokenize(text string) []string {
	raw := embedding.Tokenize(text)
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := v.stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now", "what", "which", "who", "how", "do", "does", "you", "your", "my", "me",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
