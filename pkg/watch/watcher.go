package watch

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/marktriggs/globby/pkg/glob"
	"github.com/marktriggs/globby/pkg/lister"
	"github.com/marktriggs/globby/pkg/logging"
)

// SnapshotHandler receives the paths produced by each completed sync.
type SnapshotHandler func(paths []string)

// Watcher keeps a glob's match set current by re-listing it on a timer and
// whenever the pattern's base directory reports a change.
type Watcher struct {
	logger  logging.Interface
	config  Config
	lister  lister.Factory
	metrics *Metrics
	handler SnapshotHandler

	mu   sync.Mutex
	last []string
}

// NewWatcher constructs a new watcher from the given configuration.
func NewWatcher(config *Config, factory lister.Factory, metrics *Metrics, handler SnapshotHandler) (*Watcher, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid watch configuration")
	}

	logger := config.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &Watcher{
		logger:  logger,
		config:  *config,
		lister:  factory,
		metrics: metrics,
		handler: handler,
	}, nil
}

// Run syncs once, then keeps syncing on every tick and on every filesystem
// event until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.WithField("pattern", w.config.Pattern).Info("Starting watch")

	w.sync()

	events, cleanup := w.changeEvents()
	defer cleanup()

	ticker := time.NewTicker(w.config.SyncPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Watch stopped")
			return nil
		case <-ticker.C:
			w.sync()
		case event := <-events:
			w.logger.WithField("op", event.Op.String()).WithField("name", event.Name).Debug("Filesystem event")
			w.sync()
		}
	}
}

// Paths returns the snapshot produced by the most recent successful sync.
func (w *Watcher) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.last...)
}

// sync re-lists the pattern and publishes the fresh snapshot.
func (w *Watcher) sync() {
	start := time.Now()

	l, err := w.lister.ListFiles(w.config.Pattern)
	if err != nil {
		w.metrics.RecordSyncFailure()
		w.logger.WithError(err).Error("Sync failed")
		return
	}

	var paths []string
	for l.Next() {
		paths = append(paths, l.Path())
	}
	err = l.Err()
	stats := l.Stats()
	_ = l.Close()
	if err != nil {
		w.metrics.RecordSyncFailure()
		w.logger.WithError(err).Error("Sync failed")
		return
	}

	w.metrics.RecordSync(len(paths), stats.SoftFailures, time.Since(start))
	w.logger.WithField("paths", len(paths)).
		WithField("soft_failures", stats.SoftFailures).
		Debug("Sync complete")

	w.mu.Lock()
	w.last = paths
	w.mu.Unlock()

	if w.handler != nil {
		w.handler(paths)
	}
}

// changeEvents watches the pattern's base directory and forwards interesting
// events. A nil channel comes back when notifications are off or unavailable;
// the periodic sync still runs either way.
func (w *Watcher) changeEvents() (<-chan fsnotify.Event, func()) {
	if w.config.DisableFsnotify {
		return nil, func() {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.WithError(err).Warn("Filesystem notifications unavailable, relying on periodic sync")
		return nil, func() {}
	}

	events := make(chan fsnotify.Event, 1)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				// coalesce bursts; a pending event already forces a sync
				select {
				case events <- event:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.logger.WithError(err).Warn("Filesystem notification error")
			}
		}
	}()

	base := glob.Parse(w.config.Pattern).BaseDir()
	if err := watcher.Add(base); err != nil {
		w.logger.WithError(err).WithField("dir", base).Warn("Cannot watch base directory, relying on periodic sync")
		_ = watcher.Close()
		return nil, func() {}
	}

	return events, func() { _ = watcher.Close() }
}
