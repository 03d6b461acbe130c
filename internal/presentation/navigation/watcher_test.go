package navigation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	urls []string
}

func (r *recorder) run(ctx context.Context, url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

// immediate runs scheduled callbacks synchronously and records the delays
func immediate(delays *[]time.Duration) func(time.Duration, func()) *time.Timer {
	return func(d time.Duration, f func()) *time.Timer {
		*delays = append(*delays, d)
		f()
		return nil
	}
}

func TestWatcherRunsOnStartAndOnChange(t *testing.T) {
	rec := &recorder{}
	var delays []time.Duration
	w := NewWatcher(context.Background(), "https://github.com/a/b", DefaultSettleDelay, rec.run)
	w.afterFunc = immediate(&delays)

	w.Start()
	assert.False(t, w.Observe("https://github.com/a/b"), "same location is ignored")
	assert.True(t, w.Observe("https://github.com/a/b/issues"))
	assert.False(t, w.Observe("https://github.com/a/b/issues"))
	assert.True(t, w.Observe("https://github.com/c/d"))
	w.Wait()

	assert.Equal(t, []string{
		"https://github.com/a/b",
		"https://github.com/a/b/issues",
		"https://github.com/c/d",
	}, rec.seen())
	assert.Equal(t, []time.Duration{300 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond}, delays)
	assert.Equal(t, "https://github.com/c/d", w.LastURL())
}

func TestWatcherWaitsForSettleDelay(t *testing.T) {
	done := make(chan string, 1)
	w := NewWatcher(context.Background(), "https://github.com/a/b", 20*time.Millisecond, func(ctx context.Context, url string) {
		done <- url
	})

	start := time.Now()
	w.Start()

	select {
	case url := <-done:
		assert.Equal(t, "https://github.com/a/b", url)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "run was never triggered")
	}
	w.Wait()
}

func TestWatcherNegativeSettleUsesDefault(t *testing.T) {
	w := NewWatcher(context.Background(), "", -1, func(ctx context.Context, url string) {})
	assert.Equal(t, DefaultSettleDelay, w.settle)
}
