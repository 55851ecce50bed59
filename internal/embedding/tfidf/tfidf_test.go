package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visab/internal/embedding"
)

func TestFitTransformNormalised(t *testing.T) {
	vecs, err := NewVectorizer().FitTransform([]string{
		"Chronic kidney disease damages the kidneys.",
		"High blood pressure is a common cause.",
	})
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	for _, v := range vecs {
		norm := 0.0
		for _, x := range v {
			norm += x * x
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
	}
}

func TestRareTermsWeighMore(t *testing.T) {
	vecs, err := NewVectorizer().FitTransform([]string{"kidney dialysis", "kidney diet", "kidney"})
	require.NoError(t, err)
	// vocabulary: dialysis, diet, kidney
	assert.Greater(t, vecs[0][0], vecs[0][2])
	assert.Greater(t, vecs[1][1], vecs[1][2])
	assert.Zero(t, vecs[0][1])
}

func TestStopwordOnlyBatch(t *testing.T) {
	_, err := NewVectorizer().FitTransform([]string{"what is the", "it is"})
	assert.ErrorIs(t, err, embedding.ErrEmptyVocabulary)
}

func TestStopwordOnlyTextIsZeroVector(t *testing.T) {
	vecs, err := NewVectorizer().FitTransform([]string{"kidney failure", "what is this"})
	require.NoError(t, err)
	for _, x := range vecs[1] {
		assert.Zero(t, x)
	}
}
