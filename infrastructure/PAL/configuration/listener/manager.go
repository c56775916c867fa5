package listener

import (
	"fmt"
	"rudp/infrastructure/PAL/configuration"
	"rudp/infrastructure/PAL/stat"
	"time"
)

const defaultCacheTTL = 15 * time.Minute

type ConfigurationManager interface {
	Configuration() (*Configuration, error)
	Path() string
	InvalidateCache()
}

type Manager struct {
	path   string
	reader Reader
	writer Writer
	stat   stat.Stat
}

func NewManager(resolver configuration.Resolver, stat stat.Stat) (*Manager, error) {
	path, pathErr := resolver.Resolve()
	if pathErr != nil {
		return nil, fmt.Errorf("failed to resolve listener configuration path: %w", pathErr)
	}
	return newManager(path, NewTTLReader(newDefaultReader(path, stat), defaultCacheTTL), stat), nil
}

func newManager(path string, reader Reader, stat stat.Stat) *Manager {
	return &Manager{
		path:   path,
		reader: reader,
		writer: newDefaultWriter(path),
		stat:   stat,
	}
}

// Configuration returns the validated configuration, writing the defaults first
// when the file does not exist yet.
func (m *Manager) Configuration() (*Configuration, error) {
	exists, existsErr := stat.Exists(m.stat, m.path)
	if existsErr != nil {
		return nil, existsErr
	}
	if !exists {
		if writeErr := m.writer.Write(*NewDefaultConfiguration()); writeErr != nil {
			return nil, fmt.Errorf("could not write default configuration: %w", writeErr)
		}
	}

	conf, readErr := m.reader.read()
	if readErr != nil {
		return nil, readErr
	}
	if validateErr := conf.Validate(); validateErr != nil {
		return nil, fmt.Errorf("configuration %s: %w", m.path, validateErr)
	}
	return conf, nil
}

func (m *Manager) Path() string {
	return m.path
}

func (m *Manager) InvalidateCache() {
	if ttlReader, ok := m.reader.(*TTLReader); ok {
		ttlReader.InvalidateCache()
	}
}
