package service

import (
	"strings"

	"go.uber.org/zap"

	"visab/internal/composer"
	"visab/internal/corpus"
	"visab/internal/domain"
	"visab/internal/embedding/countvec"
	"visab/internal/ranker"
)

// Bot answers user utterances from a sentence corpus. It tries the
// greeting matcher, then the prompt table, then falls back to similarity
// ranking over the corpus. Only one path ever contributes to a reply.
type Bot struct {
	greeter  domain.Matcher
	prompts  domain.Matcher
	corpus   *corpus.Store
	ranker   *ranker.Ranker
	composer *composer.Composer
	log      *zap.Logger
}

// Options wires the collaborators of a Bot.
type Options struct {
	Greeter    domain.Matcher
	Prompts    domain.Matcher
	Corpus     *corpus.Store
	Vectorizer domain.Vectorizer
	Composer   *composer.Composer
	Logger     *zap.Logger
}

func NewBot(opts Options) *Bot {
	if opts.Composer == nil {
		opts.Composer = composer.New(composer.DefaultMaxWords, composer.DefaultMaxSentences)
	}
	if opts.Corpus == nil {
		opts.Corpus = corpus.NewStore(nil)
	}
	if opts.Vectorizer == nil {
		opts.Vectorizer = countvec.NewVectorizer()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Bot{
		greeter:  opts.Greeter,
		prompts:  opts.Prompts,
		corpus:   opts.Corpus,
		ranker:   ranker.New(opts.Vectorizer),
		composer: opts.Composer,
		log:      opts.Logger.Named("bot"),
	}
}

// Corpus returns the store the bot ranks against.
func (b *Bot) Corpus() *corpus.Store { return b.corpus }

// Respond returns the reply text for text.
func (b *Bot) Respond(text string) string {
	return b.Answer(text).Text
}

// Answer returns the reply for text along with the path that produced it.
func (b *Bot) Answer(text string) domain.Reply {
	if b.greeter != nil {
		if reply, ok := b.greeter.Match(text); ok {
			b.log.Debug("greeting matched")
			return domain.Reply{Text: reply, Kind: domain.ReplyGreeting}
		}
	}
	if b.prompts != nil {
		if reply, ok := b.prompts.Match(text); ok {
			b.log.Debug("prompt matched")
			return domain.Reply{Text: reply, Kind: domain.ReplyPrompt}
		}
	}
	return b.retrieve(strings.ToLower(text))
}

func (b *Bot) retrieve(query string) domain.Reply {
	var (
		reply string
		found bool
	)
	err := b.corpus.WithQuery(query, func(augmented []string) error {
		candidates, err := b.ranker.Rank(augmented)
		if err != nil {
			return err
		}
		reply, found = b.composer.Compose(candidates, augmented[:len(augmented)-1])
		return nil
	})
	if err != nil {
		// Vectorisation failures mean nothing in the corpus relates to the query.
		b.log.Debug("ranking degraded to fallback", zap.Error(err))
		return domain.Reply{Text: composer.Fallback, Kind: domain.ReplyFallback}
	}
	if !found {
		return domain.Reply{Text: reply, Kind: domain.ReplyFallback}
	}
	return domain.Reply{Text: reply, Kind: domain.ReplyRetrieval}
}
