// Package navigation re-runs the pipeline when the page location changes
// without a full page load.
package navigation

import (
	"context"
	"sync"
	"time"

	"gotofork-core/internal/logger"

	"go.uber.org/zap"
)

// DefaultSettleDelay lets the host page finish its own dynamic loading
const DefaultSettleDelay = 300 * time.Millisecond

// RunFunc runs the pipeline for a page URL
type RunFunc func(ctx context.Context, url string)

// Watcher tracks the last seen location for the lifetime of a page. Every
// change schedules a fresh run after the settle delay. In-flight runs are
// never cancelled, so runs may overlap when navigations outpace responses.
type Watcher struct {
	mu      sync.Mutex
	lastURL string
	settle  time.Duration
	run     RunFunc
	ctx     context.Context

	// afterFunc is time.AfterFunc, swapped in tests
	afterFunc func(d time.Duration, f func()) *time.Timer
	wg        sync.WaitGroup
	log       *zap.Logger
}

// NewWatcher creates a watcher positioned at initialURL
func NewWatcher(ctx context.Context, initialURL string, settle time.Duration, run RunFunc) *Watcher {
	if settle < 0 {
		settle = DefaultSettleDelay
	}
	return &Watcher{
		lastURL:   initialURL,
		settle:    settle,
		run:       run,
		ctx:       ctx,
		afterFunc: time.AfterFunc,
		log:       logger.Named("navigation"),
	}
}

// Start schedules the run for the initial location
func (w *Watcher) Start() {
	w.mu.Lock()
	url := w.lastURL
	w.mu.Unlock()
	w.schedule(url)
}

// Observe is called on every DOM mutation with the current location. It
// reports whether the location changed and a run was scheduled.
func (w *Watcher) Observe(url string) bool {
	w.mu.Lock()
	if url == w.lastURL {
		w.mu.Unlock()
		return false
	}
	w.lastURL = url
	w.mu.Unlock()

	w.log.Debug("location changed", logger.URL(url))
	w.schedule(url)
	return true
}

// LastURL returns the last observed location
func (w *Watcher) LastURL() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastURL
}

// Wait blocks until every scheduled run has finished
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) schedule(url string) {
	w.wg.Add(1)
	w.afterFunc(w.settle, func() {
		defer w.wg.Done()
		w.run(w.ctx, url)
	})
}
