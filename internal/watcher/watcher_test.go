package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type batchCollector struct {
	mu      sync.Mutex
	batches [][]string
	notify  chan struct{}
}

func newBatchCollector() *batchCollector {
	return &batchCollector{notify: make(chan struct{}, 16)}
}

func (c *batchCollector) callback(files []string) {
	c.mu.Lock()
	c.batches = append(c.batches, files)
	c.mu.Unlock()
	c.notify <- struct{}{}
}

func (c *batchCollector) snapshot() [][]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]string, len(c.batches))
	copy(out, c.batches)
	return out
}

func (c *batchCollector) waitForBatch(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case <-c.notify:
	case <-time.After(timeout):
		t.Fatal("timed out waiting for watcher callback")
	}
}

func startWatcher(t *testing.T, dir string, debounce time.Duration) (*Watcher, *batchCollector) {
	t.Helper()

	w, err := New([]string{dir}, []string{".go"}, debounce)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	collector := newBatchCollector()
	require.NoError(t, w.Start(context.Background(), collector.callback))
	return w, collector
}

func TestWatcher_ReportsWrittenFile(t *testing.T) {
	dir := t.TempDir()
	_, collector := startWatcher(t, dir, 50*time.Millisecond)

	target := filepath.Join(dir, "model.go")
	require.NoError(t, os.WriteFile(target, []byte("type A struct {}\n"), 0o644))

	collector.waitForBatch(t, 5*time.Second)

	batches := collector.snapshot()
	require.NotEmpty(t, batches)
	assert.Contains(t, batches[0], target)
}

func TestWatcher_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	_, collector := startWatcher(t, dir, 50*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-collector.notify:
		t.Fatal("callback fired for unmonitored extension")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_DebounceCollapsesBurst(t *testing.T) {
	dir := t.TempDir()
	_, collector := startWatcher(t, dir, 200*time.Millisecond)

	first := filepath.Join(dir, "a.go")
	second := filepath.Join(dir, "b.go")
	require.NoError(t, os.WriteFile(first, []byte("type A struct {}\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("type B struct {}\n"), 0o644))

	collector.waitForBatch(t, 5*time.Second)

	batches := collector.snapshot()
	require.Len(t, batches, 1)
	assert.Contains(t, batches[0], first)
	assert.Contains(t, batches[0], second)
}

func TestWatcher_PicksUpNewSubdirectory(t *testing.T) {
	dir := t.TempDir()
	_, collector := startWatcher(t, dir, 50*time.Millisecond)

	sub := filepath.Join(dir, "pkg")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// Give the watcher a moment to register the new directory.
	time.Sleep(200 * time.Millisecond)

	target := filepath.Join(sub, "model.go")
	require.NoError(t, os.WriteFile(target, []byte("type A struct {}\n"), 0o644))

	collector.waitForBatch(t, 5*time.Second)

	found := false
	for _, batch := range collector.snapshot() {
		for _, f := range batch {
			if f == target {
				found = true
			}
		}
	}
	assert.True(t, found, "expected change in new subdirectory to be reported")
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, _ := startWatcher(t, dir, 50*time.Millisecond)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
