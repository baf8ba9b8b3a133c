package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is a whole-collection JSON snapshot store keyed by fixed string keys.
// Each key maps to one file under the data directory; values are always read
// and written as complete snapshots, never patched in place. It backs every
// locally persisted collection (cart, listings, orders, wishlist, messages,
// the offline voting roster, and the client's vote reference).
type Store struct {
	dataDir string
	mu      sync.RWMutex
}

func New(dataDir string) (*Store, error) {
	if strings.TrimSpace(dataDir) == "" {
		return nil, fmt.Errorf("localstore: data directory is required")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create data directory: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

// Load reads the snapshot under key into out. The second return is false when
// no snapshot exists yet, which callers treat as an empty collection.
func (s *Store) Load(key string, out any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("localstore: read %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("localstore: decode %q: %w", key, err)
	}
	return true, nil
}

// Save replaces the snapshot under key. The write goes through a temp file
// and rename so a crash mid-write never leaves a truncated snapshot.
func (s *Store) Save(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: encode %q: %w", key, err)
	}

	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("localstore: write %q: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("localstore: commit %q: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot under key. Missing snapshots are not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}
