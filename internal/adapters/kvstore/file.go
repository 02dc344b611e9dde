package kvstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	portsrepo "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/repositories"
	"github.com/pkg/errors"
)

// FileStore persists all keys as one JSON object. Every Set rewrites the file
// atomically via a temp file.
type FileStore struct {
	path string

	mu   sync.Mutex
	data map[string]string
}

// NewFileStore opens the store at path, creating parent directories. A missing
// or empty file yields an empty store; an unreadable one is an error.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create store dir")
	}

	s := &FileStore{path: path, data: make(map[string]string)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

var _ portsrepo.KeyValueStore = (*FileStore)(nil)

func (s *FileStore) load() error {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Wrap(err, "read store file")
	}
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, &s.data); err != nil {
		return errors.Wrapf(err, "decode store file %s", s.path)
	}
	if s.data == nil {
		s.data = make(map[string]string)
	}
	return nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]string, len(s.data)+1)
	for k, v := range s.data {
		next[k] = v
	}
	next[key] = value

	if err := s.save(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *FileStore) save(data map[string]string) error {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode store")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return errors.Wrap(err, "write store temp file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "persist store")
	}
	return nil
}
