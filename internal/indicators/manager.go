package indicators

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Manager owns the cleaned indicator table and provides read-only access to
// it. The table itself is immutable; when file watching is enabled a fresh
// table is built off to the side and swapped in atomically, so readers never
// observe a partially cleaned dataset.
type Manager struct {
	config Config
	logger *slog.Logger

	table       atomic.Pointer[Table]
	lastUpdated atomic.Pointer[time.Time]

	watcher      *fsnotify.Watcher
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager loads the dataset from config.DataPath and, when watching is
// enabled, starts a goroutine that rebuilds the table on source-file
// changes. A load failure here is fatal to the caller: there is nothing to
// serve without the table.
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	table, err := LoadTable(config.DataPath)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		config:       config,
		logger:       logger,
		shutdownChan: make(chan struct{}),
	}
	manager.setTable(table)

	if config.Watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("creating dataset watcher: %w", err)
		}
		// Watch the directory rather than the file: editors and atomic
		// writers replace the file, which drops a file-level watch.
		if err := watcher.Add(filepath.Dir(config.DataPath)); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("watching dataset directory: %w", err)
		}
		manager.watcher = watcher
		manager.wg.Add(1)
		go manager.watchSource()
	}

	return manager, nil
}

// Shutdown stops the watcher goroutine, if any, and waits for it to exit.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		if manager.watcher != nil {
			_ = manager.watcher.Close()
		}
		manager.wg.Wait()
	})
}

// Table returns the current cleaned table.
func (manager *Manager) Table() *Table {
	return manager.table.Load()
}

// LastUpdated returns when the current table was built.
func (manager *Manager) LastUpdated() time.Time {
	return *manager.lastUpdated.Load()
}

// Reload rebuilds the table from the source file. When the rebuild fails
// the previous table stays in place: a broken upload must not take down the
// running views.
func (manager *Manager) Reload() error {
	table, err := LoadTable(manager.config.DataPath)
	if err != nil {
		manager.logger.Error("failed to reload indicator dataset",
			"path", manager.config.DataPath, "error", err)
		return err
	}
	manager.setTable(table)
	manager.logger.Info("indicator dataset reloaded",
		"path", manager.config.DataPath, "rows", table.NumRows())
	return nil
}

// LogStatistics logs a one-line summary of the loaded dataset.
func (manager *Manager) LogStatistics() {
	table := manager.Table()
	manager.logger.Info("indicator dataset loaded",
		"path", manager.config.DataPath,
		"rows", table.NumRows(),
		"indicators", len(table.Indicators()),
		"minYear", table.MinYear(),
		"maxYear", table.MaxYear(),
		"lastUpdated", manager.LastUpdated())
}

func (manager *Manager) setTable(table *Table) {
	now := time.Now()
	manager.table.Store(table)
	manager.lastUpdated.Store(&now)

	if manager.config.Verbose {
		manager.logger.Debug("indicator table updated", "path", manager.config.DataPath)
	}
}

func (manager *Manager) watchSource() {
	defer manager.wg.Done()

	target := filepath.Clean(manager.config.DataPath)
	for {
		select {
		case event, ok := <-manager.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			_ = manager.Reload()
		case err, ok := <-manager.watcher.Errors:
			if !ok {
				return
			}
			manager.logger.Error("dataset watcher error", "error", err)
		case <-manager.shutdownChan:
			return
		}
	}
}
