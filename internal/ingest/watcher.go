package ingest

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"visab/internal/domain"
)

// ReloadHandler receives the rebuilt corpus after the document changes.
type ReloadHandler func(sentences []string)

// Watcher rebuilds the corpus when the reference document changes.
// Changes are debounced so editors that write in several steps trigger a
// single reload.
type Watcher struct {
	path     string
	chunker  domain.Chunker
	watcher  *fsnotify.Watcher
	handlers []ReloadHandler
	debounce time.Duration
	log      *zap.Logger
	stopChan chan struct{}
	mu       sync.Mutex
}

// NewWatcher creates a document watcher. The parent directory is watched
// so that rename-and-replace saves are seen too.
func NewWatcher(path string, chunker domain.Chunker, log *zap.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		chunker:  chunker,
		watcher:  w,
		debounce: 300 * time.Millisecond,
		log:      log.Named("watcher"),
	}, nil
}

// OnReload registers a handler to be called with each rebuilt corpus.
func (dw *Watcher) OnReload(handler ReloadHandler) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.handlers = append(dw.handlers, handler)
}

// Start begins watching the document.
func (dw *Watcher) Start() error {
	if err := dw.watcher.Add(filepath.Dir(dw.path)); err != nil {
		return err
	}
	dw.stopChan = make(chan struct{})
	go dw.watchLoop()

	dw.log.Info("document watcher started", zap.String("path", dw.path))
	return nil
}

// Stop halts the watcher.
func (dw *Watcher) Stop() {
	if dw.stopChan != nil {
		close(dw.stopChan)
	}
	dw.watcher.Close()
	dw.log.Info("document watcher stopped")
}

func (dw *Watcher) watchLoop() {
	var debounceTimer *time.Timer

	for {
		select {
		case <-dw.stopChan:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != dw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(dw.debounce, dw.reload)

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.log.Error("document watcher error", zap.Error(err))
		}
	}
}

func (dw *Watcher) reload() {
	sentences, err := LoadCorpus(dw.path, dw.chunker)
	if err != nil {
		// Keep serving the previous corpus.
		dw.log.Error("document reload failed", zap.Error(err))
		return
	}

	dw.mu.Lock()
	handlers := make([]ReloadHandler, len(dw.handlers))
	copy(handlers, dw.handlers)
	dw.mu.Unlock()

	for _, h := range handlers {
		h(sentences)
	}
	dw.log.Info("document reloaded", zap.String("path", dw.path), zap.Int("sentences", len(sentences)))
}
