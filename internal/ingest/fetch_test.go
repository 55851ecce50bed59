package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visab/internal/chunker"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Chronic kidney disease</title></head>
<body>
<article>
<h1>Chronic kidney disease</h1>
<p>Chronic kidney disease is a gradual loss of kidney function over months or years.
Your kidneys filter wastes and excess fluids from your blood, which are then removed in your urine.</p>
<p>Advanced chronic kidney disease can cause dangerous levels of fluid, electrolytes and wastes to build up in your body.
In the early stages you might have few signs or symptoms, and you might not realize that you have kidney disease until the condition is advanced.</p>
<p>Treatment for chronic kidney disease focuses on slowing the progression of kidney damage, usually by controlling the cause.
Kidney disease can progress to end-stage kidney failure, which is fatal without dialysis or a kidney transplant.</p>
</article>
</body>
</html>`

func TestFetchCorpusExtractsArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articlePage))
	}))
	defer srv.Close()

	sentences, err := FetchCorpus(context.Background(), srv.Client(), srv.URL+"/ckd", chunker.NewSentenceChunker(1, 0))
	require.NoError(t, err)
	assert.Contains(t, sentences, "Your kidneys filter wastes and excess fluids from your blood, which are then removed in your urine.")
	assert.Contains(t, sentences, "Kidney disease can progress to end-stage kidney failure, which is fatal without dialysis or a kidney transplant.")
	for _, s := range sentences {
		assert.NotContains(t, s, "<p>")
	}
}

func TestFetchDocumentID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(articlePage))
	}))
	defer srv.Close()

	doc, err := Fetch(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, doc.Path)
	assert.Len(t, doc.ID, 16)
}

func TestFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.Client(), srv.URL+"/missing")
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetchRejectsNonHTTPScheme(t *testing.T) {
	_, err := Fetch(context.Background(), nil, "file:///etc/passwd")
	assert.ErrorIs(t, err, ErrUnsupportedDocument)
}
