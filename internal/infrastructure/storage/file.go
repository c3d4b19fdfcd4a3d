// Package storage provides the durable key-value backends for session and
// preference state. The file backend is the default and mirrors the
// single-device local storage the web client used; redis and mongo backends
// exist for deployments that want the state off-box.
package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists each key as one file inside a data directory. Writes
// are synchronous and the store is not shared across processes, so no
// locking beyond the filesystem's own is needed.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(raw), true, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
