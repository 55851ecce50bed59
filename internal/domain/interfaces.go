package domain

// Document represents the reference text the bot answers from.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Chunk is a run of consecutive sentences taken from a document.
// With one sentence per chunk it is a single corpus entry.
type Chunk struct {
	DocumentID string
	ChunkID    string
	Text       string
	Index      int
}

// ReplyKind names the path that produced a reply.
type ReplyKind string

const (
	ReplyGreeting  ReplyKind = "greeting"
	ReplyPrompt    ReplyKind = "prompt"
	ReplyRetrieval ReplyKind = "retrieval"
	ReplyFallback  ReplyKind = "fallback"
)

// Reply is the bot's answer together with the path that produced it.
type Reply struct {
	Text string
	Kind ReplyKind
}

// Vectorizer turns a batch of texts into vectors over a vocabulary fitted
// on that same batch. Implementations must not keep state between calls.
type Vectorizer interface {
	Name() string
	FitTransform(texts []string) ([][]float64, error)
}

// Chunker splits documents into chunks suitable for the corpus.
type Chunker interface {
	Chunk(document Document) ([]Chunk, error)
}

// Matcher short-circuits a user utterance to a canned reply.
type Matcher interface {
	Match(text string) (string, bool)
}

// Summarizer produces a brief summary of the corpus sentences.
type Summarizer interface {
	Summarize(sentences []string, maxSentences int) (string, error)
}

// Responder defines the operations exposed by the application core.
type Responder interface {
	Respond(text string) string
	Answer(text string) Reply
}
