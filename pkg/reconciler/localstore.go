// pkg/reconciler/localstore.go
package reconciler

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Fixed local storage keys. Both payloads are JSON arrays and are opaque
// to every other subsystem.
const (
	LocalCartKey     = "cart"
	LocalWishlistKey = "wishlist"
)

// LocalStore is the client-side persistent storage port (the browser
// localStorage analog). Writes are synchronous: when Set returns, the
// value is durable for the next session.
type LocalStore interface {
	// Get returns (value, true, nil) when the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// ----------------------------
// FileStore
// ----------------------------

// FileStore persists each key as one JSON file under a directory,
// typically the per-profile config dir of the storefront app.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a FileStore.
func NewFileStore(dir string) (*FileStore, error) {
	d := strings.TrimSpace(dir)
	if d == "" {
		return nil, errors.New("reconciler: file store dir is empty")
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: d}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	if s == nil {
		return nil, false, errors.New("reconciler: file store is nil")
	}
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	if s == nil {
		return errors.New("reconciler: file store is nil")
	}
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s *FileStore) Delete(key string) error {
	if s == nil {
		return errors.New("reconciler: file store is nil")
	}
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ----------------------------
// MemStore
// ----------------------------

// MemStore is an in-memory LocalStore, used in tests and as a throwaway
// store for sessions that opt out of persistence.
type MemStore struct {
	mu sync.Mutex
	m  map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[string][]byte{}}
}

func (s *MemStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (s *MemStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.m[key] = cp
	return nil
}

func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
