package listener

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Writer interface {
	Write(configuration Configuration) error
}

type defaultWriter struct {
	path string
}

func newDefaultWriter(path string) *defaultWriter {
	return &defaultWriter{
		path: path,
	}
}

// Write replaces the file atomically so watchers never observe a partial document.
func (w *defaultWriter) Write(configuration Configuration) error {
	jsonContent, jsonContentErr := json.MarshalIndent(configuration, "", "\t")
	if jsonContentErr != nil {
		return jsonContentErr
	}

	dir := filepath.Dir(w.path)
	if mkdirErr := os.MkdirAll(dir, 0700); mkdirErr != nil {
		return mkdirErr
	}

	tmp, tmpErr := os.CreateTemp(dir, filepath.Base(w.path)+".*.tmp")
	if tmpErr != nil {
		return tmpErr
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, writeErr := tmp.Write(jsonContent); writeErr != nil {
		_ = tmp.Close()
		return writeErr
	}
	if closeErr := tmp.Close(); closeErr != nil {
		return closeErr
	}
	return os.Rename(tmp.Name(), w.path)
}
