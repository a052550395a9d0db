package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/xunyunliu/uniroma2-storm/internal/metrics"
)

// ChangeEvent describes one configuration file change seen by a Watcher.
type ChangeEvent struct {
	File      string
	Action    string // create, modify, delete
	Config    *ConfigMap
	Timestamp time.Time
}

// ChangeHandler is called with the sealed snapshot after a file reloads.
type ChangeHandler func(event ChangeEvent) error

// Watcher keeps the cluster-operator layer fresh on long-running daemons:
// it watches a directory of YAML/JSON documents, revalidates each file
// against the schema registry on change, and hands sealed snapshots to
// registered handlers. A file that fails validation is logged and
// counted, and the previous good snapshot stays in place.
type Watcher struct {
	dir      string
	configs  map[string]*ConfigMap
	handlers map[string][]ChangeHandler
	watcher  *fsnotify.Watcher
	started  bool
	stopCh   chan struct{}
	logger   *zap.Logger
	mu       sync.RWMutex
}

// NewWatcher creates a watcher over dir. Start must be called before any
// snapshot is available.
func NewWatcher(dir string, logger *zap.Logger) (*Watcher, error) {
	if dir == "" {
		return nil, fmt.Errorf("config directory cannot be empty")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	return &Watcher{
		dir:      dir,
		configs:  make(map[string]*ConfigMap),
		handlers: make(map[string][]ChangeHandler),
		watcher:  fsw,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}, nil
}

// Start loads every config file under the directory and begins watching
// for changes. Calling Start twice is a no-op.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil
	}
	w.started = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch config directory: %w", err)
	}
	if err := w.loadAll(); err != nil {
		return fmt.Errorf("load initial configs: %w", err)
	}

	go w.watchLoop()

	w.mu.RLock()
	loaded := len(w.configs)
	w.mu.RUnlock()
	w.logger.Info("Configuration watcher started",
		zap.String("config_dir", w.dir),
		zap.Int("loaded_configs", loaded),
	)
	return nil
}

// Stop stops watching. Snapshots already handed out stay valid.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		return nil
	}
	w.started = false
	close(w.stopCh)
	return w.watcher.Close()
}

// RegisterHandler subscribes to changes of one file.
func (w *Watcher) RegisterHandler(filename string, handler ChangeHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers[filename] = append(w.handlers[filename], handler)
}

// Config returns the latest sealed snapshot for filename. The snapshot is
// immutable; callers needing a mutable copy should Clone it.
func (w *Watcher) Config(filename string) (*ConfigMap, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.configs[filename]
	return c, ok
}

// Reload forces a reload of one file, bypassing the filesystem events.
func (w *Watcher) Reload(filename string) error {
	return w.loadFile(filepath.Join(w.dir, filename), "manual_reload")
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !isConfigFile(event.Name) {
		return
	}
	filename := filepath.Base(event.Name)

	var action string
	switch {
	case event.Op&fsnotify.Create != 0:
		action = "create"
	case event.Op&fsnotify.Write != 0:
		action = "modify"
	case event.Op&fsnotify.Remove != 0, event.Op&fsnotify.Rename != 0:
		w.handleRemoval(filename)
		return
	default:
		return
	}

	// Editors often produce several writes in quick succession.
	time.Sleep(50 * time.Millisecond)

	if err := w.loadFile(event.Name, action); err != nil {
		w.logger.Error("Failed to load config file",
			zap.String("file", filename),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func (w *Watcher) loadAll() error {
	return filepath.WalkDir(w.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isConfigFile(path) {
			return nil
		}
		return w.loadFile(path, "initial_load")
	})
}

func (w *Watcher) loadFile(path, action string) error {
	filename := filepath.Base(path)

	conf, err := ReadFile(path)
	if err != nil {
		metrics.ConfigReloadErrors.WithLabelValues(filename).Inc()
		return err
	}
	if err := conf.Seal(); err != nil {
		metrics.ConfigReloadErrors.WithLabelValues(filename).Inc()
		var violation *SchemaViolation
		for _, e := range multierr.Errors(err) {
			if errors.As(e, &violation) {
				metrics.ConfigValidationFailures.WithLabelValues(violation.Key).Inc()
			}
		}
		return fmt.Errorf("validate %s: %w", filename, err)
	}

	w.mu.Lock()
	w.configs[filename] = conf
	handlers := make([]ChangeHandler, len(w.handlers[filename]))
	copy(handlers, w.handlers[filename])
	w.mu.Unlock()

	metrics.ConfigReloads.WithLabelValues(filename, action).Inc()
	w.logger.Info("Configuration loaded",
		zap.String("file", filename),
		zap.String("action", action),
		zap.Int("keys", conf.Len()),
	)

	event := ChangeEvent{File: filename, Action: action, Config: conf, Timestamp: time.Now()}
	for _, handler := range handlers {
		if err := handler(event); err != nil {
			w.logger.Error("Configuration handler error",
				zap.String("file", filename),
				zap.String("action", action),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (w *Watcher) handleRemoval(filename string) {
	w.mu.Lock()
	last := w.configs[filename]
	delete(w.configs, filename)
	handlers := make([]ChangeHandler, len(w.handlers[filename]))
	copy(handlers, w.handlers[filename])
	w.mu.Unlock()

	w.logger.Info("Configuration file removed", zap.String("file", filename))

	event := ChangeEvent{File: filename, Action: "delete", Config: last, Timestamp: time.Now()}
	for _, handler := range handlers {
		if err := handler(event); err != nil {
			w.logger.Error("Configuration handler error on deletion",
				zap.String("file", filename),
				zap.Error(err),
			)
		}
	}
}

func isConfigFile(path string) bool {
	switch filepath.Ext(path) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
