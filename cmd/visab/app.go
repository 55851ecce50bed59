package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"visab/internal/chunker"
	"visab/internal/composer"
	"visab/internal/config"
	"visab/internal/corpus"
	"visab/internal/domain"
	"visab/internal/embedding/countvec"
	"visab/internal/embedding/tfidf"
	"visab/internal/ingest"
	"visab/internal/matcher"
	"visab/internal/service"
	"visab/internal/summarizer"
)

// app holds the assembled components shared by every subcommand.
type app struct {
	cfg        *config.AppConfig
	log        *zap.Logger
	chunker    domain.Chunker
	summarizer domain.Summarizer
	bot        *service.Bot
}

func loadConfig(cfgPath string) (*config.AppConfig, error) {
	if cfgPath == "" {
		cfg, _, err := config.LoadDefault()
		return cfg, err
	}
	return config.Load(cfgPath)
}

// newApp assembles components via interfaces, switching on the configured
// implementation names.
func newApp(cfg *config.AppConfig, log *zap.Logger) (*app, error) {
	var vec domain.Vectorizer
	switch cfg.Ranker.Vectorizer {
	case "count", "":
		vec = countvec.NewVectorizer()
	case "tfidf":
		vec = tfidf.NewVectorizer()
	default:
		return nil, fmt.Errorf("unknown vectorizer: %s", cfg.Ranker.Vectorizer)
	}

	var ch domain.Chunker
	switch cfg.Chunker.Type {
	case "sentence", "":
		ch = chunker.NewSentenceChunker(cfg.Chunker.SentencesPerChunk, cfg.Chunker.OverlapSentences)
	default:
		return nil, fmt.Errorf("unknown chunker: %s", cfg.Chunker.Type)
	}

	var sum domain.Summarizer
	switch cfg.Summarizer.Type {
	case "frequency", "":
		sum = summarizer.NewFrequencySummarizer()
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	sentences, err := loadSentences(cfg.Document, ch)
	if err != nil {
		return nil, fmt.Errorf("ingest failed: %w", err)
	}
	log.Info("corpus loaded",
		zap.String("document", documentSource(cfg.Document)),
		zap.Int("sentences", len(sentences)),
		zap.String("vectorizer", vec.Name()),
	)

	bot := service.NewBot(service.Options{
		Greeter:    matcher.NewGreetingMatcher(cfg.Greetings.User, cfg.Greetings.Bot, nil),
		Prompts:    matcher.NewPromptMatcher(cfg.Prompts),
		Corpus:     corpus.NewStore(sentences),
		Vectorizer: vec,
		Composer:   composer.New(cfg.Composer.MaxWords, cfg.Composer.MaxSentences),
		Logger:     log,
	})
	return &app{cfg: cfg, log: log, chunker: ch, summarizer: sum, bot: bot}, nil
}

const fetchTimeout = 30 * time.Second

func loadSentences(doc config.DocumentConfig, ch domain.Chunker) ([]string, error) {
	if doc.URL == "" {
		return ingest.LoadCorpus(doc.Path, ch)
	}
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	return ingest.FetchCorpus(ctx, &http.Client{Timeout: fetchTimeout}, doc.URL, ch)
}

func documentSource(doc config.DocumentConfig) string {
	if doc.URL != "" {
		return doc.URL
	}
	return doc.Path
}

// watchDocument starts hot reload of the corpus when enabled. Handlers in
// extra run after the corpus has been swapped. The returned stop function
// is always safe to call.
func (a *app) watchDocument(extra ...ingest.ReloadHandler) (func(), error) {
	if !a.cfg.Document.Watch {
		return func() {}, nil
	}
	if a.cfg.Document.URL != "" {
		a.log.Warn("document.watch ignored for url documents", zap.String("url", a.cfg.Document.URL))
		return func() {}, nil
	}
	w, err := ingest.NewWatcher(a.cfg.Document.Path, a.chunker, a.log)
	if err != nil {
		return nil, err
	}
	w.OnReload(a.bot.Corpus().Replace)
	for _, h := range extra {
		w.OnReload(h)
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return nil, err
	}
	return w.Stop, nil
}

func (a *app) summary() string {
	s, err := a.summarizer.Summarize(a.bot.Corpus().Sentences(), a.cfg.Summarizer.MaxSentences)
	if err != nil {
		a.log.Warn("summary failed", zap.Error(err))
		return ""
	}
	return s
}
