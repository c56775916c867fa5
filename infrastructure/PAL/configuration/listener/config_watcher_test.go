package listener

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"rudp/infrastructure/PAL/stat"
	"strings"
	"sync"
	"testing"
	"time"
)

type watcherMockManager struct {
	mu          sync.Mutex
	config      *Configuration
	err         error
	invalidated int
}

func (m *watcherMockManager) Configuration() (*Configuration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	copied := *m.config
	return &copied, nil
}

func (m *watcherMockManager) Path() string {
	return ""
}

func (m *watcherMockManager) InvalidateCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated++
}

func (m *watcherMockManager) setMaxConnections(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config.Listener.MaxConnections = n
}

type watcherMockUpdater struct {
	mu      sync.Mutex
	applied []int
	err     error
}

func (u *watcherMockUpdater) SetMaxConnections(n int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.err != nil {
		return u.err
	}
	u.applied = append(u.applied, n)
	return nil
}

func (u *watcherMockUpdater) snapshot() []int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]int(nil), u.applied...)
}

type watcherMockLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *watcherMockLogger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *watcherMockLogger) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

func TestConfigWatcher_AppliesCapacityChange(t *testing.T) {
	manager := &watcherMockManager{config: NewDefaultConfiguration()}
	updater := &watcherMockUpdater{}
	logger := &watcherMockLogger{}
	w := NewConfigWatcher(manager, updater, time.Hour, logger)
	w.loadCurrentState()

	manager.setMaxConnections(42)
	w.ForceCheck()

	if got := updater.snapshot(); len(got) != 1 || got[0] != 42 {
		t.Fatalf("expected capacity 42 to be applied once, got %v", got)
	}
	if !logger.contains("MaxConnections changed (10 -> 42)") {
		t.Fatal("expected change to be logged")
	}
	if manager.invalidated == 0 {
		t.Fatal("ForceCheck must invalidate the cache")
	}
}

func TestConfigWatcher_NoChangeNoUpdate(t *testing.T) {
	manager := &watcherMockManager{config: NewDefaultConfiguration()}
	updater := &watcherMockUpdater{}
	w := NewConfigWatcher(manager, updater, time.Hour, &watcherMockLogger{})
	w.loadCurrentState()

	w.ForceCheck()
	if got := updater.snapshot(); len(got) != 0 {
		t.Fatalf("expected no updates, got %v", got)
	}
}

func TestConfigWatcher_UpdaterErrorKeepsPreviousState(t *testing.T) {
	manager := &watcherMockManager{config: NewDefaultConfiguration()}
	updater := &watcherMockUpdater{err: errors.New("rejected")}
	logger := &watcherMockLogger{}
	w := NewConfigWatcher(manager, updater, time.Hour, logger)
	w.loadCurrentState()

	manager.setMaxConnections(5)
	w.ForceCheck()
	if !logger.contains("failed to apply MaxConnections 5") {
		t.Fatal("expected failure to be logged")
	}

	updater.mu.Lock()
	updater.err = nil
	updater.mu.Unlock()
	w.ForceCheck()
	if got := updater.snapshot(); len(got) != 1 || got[0] != 5 {
		t.Fatalf("expected retry to apply 5, got %v", got)
	}
}

func TestConfigWatcher_ReportsRestartOnlySettings(t *testing.T) {
	manager := &watcherMockManager{config: NewDefaultConfiguration()}
	logger := &watcherMockLogger{}
	w := NewConfigWatcher(manager, &watcherMockUpdater{}, time.Hour, logger)
	w.loadCurrentState()

	manager.mu.Lock()
	manager.config.Listener.Port = 20000
	manager.mu.Unlock()
	w.ForceCheck()

	if !logger.contains("restart to apply") {
		t.Fatal("expected restart hint")
	}
}

func TestConfigWatcher_LoadErrorIsLogged(t *testing.T) {
	manager := &watcherMockManager{err: errors.New("broken file")}
	logger := &watcherMockLogger{}
	w := NewConfigWatcher(manager, &watcherMockUpdater{}, time.Hour, logger)

	w.loadCurrentState()
	w.ForceCheck()
	if !logger.contains("broken file") {
		t.Fatal("expected load error to be logged")
	}
}

func TestConfigWatcher_Watch_FileChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listener.json")
	manager, err := NewManager(resolverMockResolver{path: path}, stat.NewDefaultStat())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	initial, confErr := manager.Configuration()
	if confErr != nil {
		t.Fatalf("Configuration: %v", confErr)
	}

	updater := &watcherMockUpdater{}
	w := NewConfigWatcher(manager, updater, 50*time.Millisecond, &watcherMockLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// let the watcher take its initial snapshot
	time.Sleep(50 * time.Millisecond)
	updated := *initial
	updated.Listener.MaxConnections = 3
	if err := newDefaultWriter(path).Write(updated); err != nil {
		t.Fatalf("Write: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && len(updater.snapshot()) == 0 {
		time.Sleep(10 * time.Millisecond)
	}
	if got := updater.snapshot(); len(got) == 0 || got[0] != 3 {
		t.Fatalf("expected capacity 3 to be applied, got %v", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch did not stop on cancellation")
	}
}
