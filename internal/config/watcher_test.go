package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcherInitialLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cluster.yaml"),
		[]byte("topology.workers: 4\nstorm.cluster.mode: distributed\n"), 0o644))

	w, err := NewWatcher(dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	conf, ok := w.Config("cluster.yaml")
	require.True(t, ok)
	assert.True(t, conf.Sealed())

	v, _ := conf.Get(TopologyWorkers)
	assert.Equal(t, 4, v)
}

func TestWatcherRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topology.workers: 4\n"), 0o644))

	w, err := NewWatcher(dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	// break the file and force a reload; the old snapshot must survive
	require.NoError(t, os.WriteFile(path, []byte("topology.workers: four\n"), 0o644))
	err = w.Reload("cluster.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), TopologyWorkers)

	conf, ok := w.Config("cluster.yaml")
	require.True(t, ok)
	v, _ := conf.Get(TopologyWorkers)
	assert.Equal(t, 4, v)
}

func TestWatcherManualReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topology.workers: 4\n"), 0o644))

	w, err := NewWatcher(dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	// the filesystem write below may also fire a watch event, so buffer
	// enough room that the handler never blocks
	events := make(chan ChangeEvent, 4)
	w.RegisterHandler("cluster.yaml", func(e ChangeEvent) error {
		events <- e
		return nil
	})

	require.NoError(t, os.WriteFile(path, []byte("topology.workers: 8\n"), 0o644))
	require.NoError(t, w.Reload("cluster.yaml"))

	var event ChangeEvent
	select {
	case event = <-events:
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}

	v, _ := event.Config.Get(TopologyWorkers)
	assert.Equal(t, 8, v)

	conf, _ := w.Config("cluster.yaml")
	v, _ = conf.Get(TopologyWorkers)
	assert.Equal(t, 8, v)
}

func TestWatcherIgnoresUnknownExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cluster.yaml"), []byte("ui.port: 8080\n"), 0o644))

	w, err := NewWatcher(dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	_, ok := w.Config("notes.txt")
	assert.False(t, ok)
	_, ok = w.Config("cluster.yaml")
	assert.True(t, ok)
}

func TestNewWatcherRequiresDir(t *testing.T) {
	_, err := NewWatcher("", zap.NewNop())
	assert.Error(t, err)
}
