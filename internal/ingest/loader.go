// Package ingest turns a reference document on disk into corpus sentences.
package ingest

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"visab/internal/domain"
)

var (
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrNoExtractableText   = errors.New("no extractable text found in document")
)

// Load reads a plain text, markdown or PDF document.
func Load(path string) (domain.Document, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", "":
		var data []byte
		data, err = os.ReadFile(path)
		text = string(data)
	case ".pdf":
		text, err = extractPDF(path)
	default:
		return domain.Document{}, fmt.Errorf("%w: %s", ErrUnsupportedDocument, path)
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("load %s: %w", path, err)
	}
	text = SanitizeText(text)
	if text == "" {
		return domain.Document{}, fmt.Errorf("load %s: %w", path, ErrNoExtractableText)
	}
	return domain.Document{ID: hashString(path), Path: path, Content: text}, nil
}

// BuildCorpus chunks document and returns the chunk texts in order.
func BuildCorpus(document domain.Document, chunker domain.Chunker) ([]string, error) {
	chunks, err := chunker.Chunk(document)
	if err != nil {
		return nil, fmt.Errorf("chunk %s: %w", document.Path, err)
	}
	sentences := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		sentences = append(sentences, ch.Text)
	}
	return sentences, nil
}

// LoadCorpus loads the document at path and builds its corpus.
func LoadCorpus(path string, chunker domain.Chunker) ([]string, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return BuildCorpus(doc, chunker)
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		return "", fmt.Errorf("read extracted text: %w", err)
	}
	return buf.String(), nil
}

// SanitizeText drops NUL bytes and other non-printing control characters
// except common whitespace, then trims the result.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	r := make([]rune, 0, len(s))
	for _, ch := range s {
		if ch == '\n' || ch == '\r' || ch == '\t' {
			r = append(r, ch)
			continue
		}
		if ch < 0x20 || ch == 0x7f {
			continue
		}
		r = append(r, ch)
	}
	return strings.TrimSpace(string(r))
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
