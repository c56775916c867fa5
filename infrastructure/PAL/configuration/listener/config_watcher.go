package listener

import (
	"context"
	"path/filepath"
	"rudp/application/logging"
	"time"

	"github.com/fsnotify/fsnotify"
)

// CapacityUpdater applies a new connection capacity at runtime.
// Implemented by udp_listener.Controller.
type CapacityUpdater interface {
	SetMaxConnections(maxConnections int) error
}

// ConfigWatcher pushes MaxConnections changes from the configuration file to a
// running listener. Other settings need a restart and are only reported.
//
// Uses fsnotify for instant updates, with polling as fallback.
type ConfigWatcher struct {
	configManager ConfigurationManager
	updater       CapacityUpdater
	interval      time.Duration
	logger        logging.Logger

	prev *Configuration
}

func NewConfigWatcher(
	configManager ConfigurationManager,
	updater CapacityUpdater,
	interval time.Duration,
	logger logging.Logger,
) *ConfigWatcher {
	return &ConfigWatcher{
		configManager: configManager,
		updater:       updater,
		interval:      interval,
		logger:        logger,
	}
}

// Watch blocks until ctx is cancelled.
func (w *ConfigWatcher) Watch(ctx context.Context) error {
	w.loadCurrentState()

	// The directory is watched: atomic writes replace the file inode.
	var fsEvents <-chan fsnotify.Event
	var fsErrors <-chan error
	configPath := w.configManager.Path()
	dir, configFileName := filepath.Split(configPath)
	if dir == "" {
		dir = "."
	}
	watcher, watcherErr := fsnotify.NewWatcher()
	if watcherErr != nil {
		w.logger.Printf("config watcher: fsnotify unavailable: %v (using polling)", watcherErr)
	} else {
		defer func() {
			_ = watcher.Close()
		}()
		if addErr := watcher.Add(dir); addErr != nil {
			w.logger.Printf("config watcher: fsnotify watch failed: %v (using polling)", addErr)
		} else {
			fsEvents = watcher.Events
			fsErrors = watcher.Errors
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsEvents:
			if !ok {
				fsEvents = nil
				continue
			}
			if filepath.Base(event.Name) != configFileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.configManager.InvalidateCache()
				w.check()
			}
		case fsErr, ok := <-fsErrors:
			if !ok {
				fsErrors = nil
				continue
			}
			w.logger.Printf("config watcher: fsnotify error: %v", fsErr)
		case <-ticker.C:
			w.ForceCheck()
		}
	}
}

// ForceCheck drops the cached configuration and re-reads it immediately.
func (w *ConfigWatcher) ForceCheck() {
	w.configManager.InvalidateCache()
	w.check()
}

func (w *ConfigWatcher) loadCurrentState() {
	conf, err := w.configManager.Configuration()
	if err != nil {
		w.logger.Printf("config watcher: failed to load initial config: %v", err)
		return
	}
	w.prev = conf
}

func (w *ConfigWatcher) check() {
	conf, err := w.configManager.Configuration()
	if err != nil {
		w.logger.Printf("config watcher: failed to load config: %v", err)
		return
	}
	if w.prev == nil {
		w.prev = conf
		return
	}

	prev := w.prev.Listener
	next := conf.Listener
	if next.MaxConnections != prev.MaxConnections {
		if updateErr := w.updater.SetMaxConnections(next.MaxConnections); updateErr != nil {
			w.logger.Printf("config watcher: failed to apply MaxConnections %d: %v", next.MaxConnections, updateErr)
			return
		}
		w.logger.Printf("config watcher: MaxConnections changed (%d -> %d)", prev.MaxConnections, next.MaxConnections)
	}
	if next.Host != prev.Host || next.Port != prev.Port || next.MTU != prev.MTU ||
		next.IdleWaitMs != prev.IdleWaitMs || next.QueueCapacity != prev.QueueCapacity {
		w.logger.Printf("config watcher: listener settings changed, restart to apply")
	}
	w.prev = conf
}
