package xltex

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"
)

// DefaultWatchInterval is how often the watched file is checked for changes.
const DefaultWatchInterval = time.Second

// Watcher re-renders a workbook selection whenever the file changes.
// Only the most recent render is reported: a render that finishes after
// a newer one has started is discarded.
type Watcher struct {
	Path     string
	Options  Options
	Interval time.Duration
	Logger   *slog.Logger

	// OnRender is called after each successful render.
	OnRender func(*Result)
	// OnError is called when a render fails. The watcher keeps running.
	OnError func(error)

	// render is replaced in tests.
	render func(path string, opts Options) (*Result, error)

	mu         sync.Mutex
	generation uint64
}

type fileState struct {
	modTime time.Time
	size    int64
	exists  bool
}

func statFile(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{modTime: info.ModTime(), size: info.Size(), exists: true}
}

// Run renders once, then polls the file until ctx is done. It returns
// ctx.Err() after in-flight renders have finished.
func (w *Watcher) Run(ctx context.Context) error {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	logger := w.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	var wg sync.WaitGroup
	defer wg.Wait()

	last := statFile(w.Path)
	w.trigger(&wg, logger)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			current := statFile(w.Path)
			if current == last {
				continue
			}
			last = current
			logger.Debug("workbook changed", "path", w.Path, "size", current.size)
			w.trigger(&wg, logger)
		}
	}
}

// trigger starts a render tagged with a new generation.
func (w *Watcher) trigger(wg *sync.WaitGroup, logger *slog.Logger) {
	w.mu.Lock()
	w.generation++
	gen := w.generation
	w.mu.Unlock()

	render := w.render
	if render == nil {
		render = Render
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		logger.Debug("render started", "generation", gen)
		result, err := render(w.Path, w.Options)

		w.mu.Lock()
		defer w.mu.Unlock()
		if gen != w.generation {
			logger.Debug("render discarded", "generation", gen, "latest", w.generation)
			return
		}

		if err != nil {
			logger.Warn("render failed", "path", w.Path, "error", err)
			if w.OnError != nil {
				w.OnError(err)
			}
			return
		}
		logger.Debug("render complete", "generation", gen, "rows", len(result.Document.Rows))
		if w.OnRender != nil {
			w.OnRender(result)
		}
	}()
}
