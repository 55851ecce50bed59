package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"visab/internal/domain"
)

// ErrFetchFailed is returned when a document URL answers with a non-2xx status.
var ErrFetchFailed = errors.New("document fetch failed")

// Fetch downloads the web page at rawURL and extracts its readable article text.
func Fetch(ctx context.Context, client *http.Client, rawURL string) (domain.Document, error) {
	if client == nil {
		client = http.DefaultClient
	}
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return domain.Document{}, fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	if pageURL.Scheme != "http" && pageURL.Scheme != "https" {
		return domain.Document{}, fmt.Errorf("%w: %s", ErrUnsupportedDocument, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return domain.Document{}, err
	}
	req.Header.Set("User-Agent", "visab/1.0")
	resp, err := client.Do(req)
	if err != nil {
		return domain.Document{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Document{}, fmt.Errorf("%w: %s: status %d", ErrFetchFailed, rawURL, resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return domain.Document{}, fmt.Errorf("extract article %s: %w", rawURL, err)
	}
	text := SanitizeText(article.TextContent)
	if text == "" {
		return domain.Document{}, fmt.Errorf("load %s: %w", rawURL, ErrNoExtractableText)
	}
	return domain.Document{ID: hashString(rawURL), Path: rawURL, Content: text}, nil
}

// FetchCorpus fetches the article at rawURL and builds its corpus.
func FetchCorpus(ctx context.Context, client *http.Client, rawURL string, chunker domain.Chunker) ([]string, error) {
	doc, err := Fetch(ctx, client, strings.TrimSpace(rawURL))
	if err != nil {
		return nil, err
	}
	return BuildCorpus(doc, chunker)
}
