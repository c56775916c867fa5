package listener

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"rudp/infrastructure/PAL/stat"
	"strconv"
)

const (
	EnvHost           = "RUDP_HOST"
	EnvPort           = "RUDP_PORT"
	EnvMaxConnections = "RUDP_MAX_CONNECTIONS"
)

type Reader interface {
	read() (*Configuration, error)
}

type defaultReader struct {
	path string
	stat stat.Stat
}

func newDefaultReader(path string, stat stat.Stat) *defaultReader {
	return &defaultReader{
		path: path,
		stat: stat,
	}
}

func (r *defaultReader) read() (*Configuration, error) {
	if _, statErr := r.stat.Stat(r.path); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file does not exist: %s", r.path)
		}
		return nil, fmt.Errorf("configuration file (%s) is inaccessible: %w", r.path, statErr)
	}

	fileBytes, readFileErr := os.ReadFile(r.path)
	if readFileErr != nil {
		return nil, fmt.Errorf("configuration file (%s) is unreadable: %w", r.path, readFileErr)
	}

	var configuration Configuration
	if deserializationErr := json.Unmarshal(fileBytes, &configuration); deserializationErr != nil {
		return nil, fmt.Errorf("configuration file (%s) is invalid: %w", r.path, deserializationErr)
	}

	configuration.EnsureDefaults()
	if envErr := applyEnvOverrides(&configuration); envErr != nil {
		return nil, envErr
	}
	return &configuration, nil
}

func applyEnvOverrides(conf *Configuration) error {
	if host := os.Getenv(EnvHost); host != "" {
		conf.Listener.Host = host
	}
	if value := os.Getenv(EnvPort); value != "" {
		port, parseErr := strconv.Atoi(value)
		if parseErr != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, value, parseErr)
		}
		conf.Listener.Port = port
	}
	if value := os.Getenv(EnvMaxConnections); value != "" {
		maxConnections, parseErr := strconv.Atoi(value)
		if parseErr != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaxConnections, value, parseErr)
		}
		conf.Listener.MaxConnections = maxConnections
	}
	return nil
}
