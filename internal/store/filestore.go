// Package store implements the flat-file record store: each collection is one JSON
// array rewritten wholesale on every mutation.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection names. Each maps to <name>.json under the data directory.
const (
	Users        = "users"
	Referrals    = "referrals"
	Withdraws    = "withdraws"
	Transactions = "transactions"
)

var collections = []string{Users, Referrals, Withdraws, Transactions}

// FileStore reads and writes whole collections as JSON array files. There is no
// indexing and no partial write; callers read the full array, mutate in memory and
// save it back. Lock hands out a per-collection mutex so a read-modify-write cycle
// within this process can be made exclusive — cross-collection operations are still
// not transactional.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates the data directory and empty collection files on first run.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	for _, name := range collections {
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("init collection %s: %w", name, err)
			}
		}
	}
	return &FileStore{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

// Lock returns the mutex guarding one collection. Every read-modify-write on a
// collection must hold its mutex for the whole cycle.
func (s *FileStore) Lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// Load reads an entire collection into out, which must be a pointer to a slice.
// A missing or empty file reads as an empty array.
func (s *FileStore) Load(collection string, out any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			data = []byte("[]")
		} else {
			return fmt.Errorf("read %s: %w", collection, err)
		}
	}
	if len(data) == 0 {
		data = []byte("[]")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// Save replaces an entire collection with records.
func (s *FileStore) Save(collection string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
