package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ProcessedSet records the fullnames of every post the watcher has already
// handled, in the order they were first seen. Membership only ever grows; the
// set is the restart-durability guarantee against double replies.
type ProcessedSet struct {
	ids  []string
	seen map[string]struct{}
}

// NewProcessedSet returns an empty set.
func NewProcessedSet() *ProcessedSet {
	return &ProcessedSet{seen: make(map[string]struct{})}
}

// FilePath returns the deterministic on-disk location of a subreddit's set.
func FilePath(dir, subreddit string) string {
	return filepath.Join(dir, fmt.Sprintf("processed_%s.json", subreddit))
}

// Load reads a persisted set from path. A missing or malformed file yields an
// empty set rather than an error: starting fresh is always safe, losing the
// process over a bad state file is not.
func Load(path string) *ProcessedSet {
	s := NewProcessedSet()
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return s
	}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Contains reports whether id has already been handled.
func (s *ProcessedSet) Contains(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// Add marks id as handled. Adding an id twice is a no-op.
func (s *ProcessedSet) Add(id string) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

// Len returns the number of distinct ids in the set.
func (s *ProcessedSet) Len() int {
	return len(s.ids)
}

// Flush rewrites the whole set to path as a JSON array, write-temp-then-rename
// so a crash mid-write never corrupts the previous snapshot. Errors propagate:
// the caller treats a failed flush as fatal, since running on without durable
// dedup state risks duplicate replies.
func (s *ProcessedSet) Flush(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.Marshal(s.ids)
	if err != nil {
		return fmt.Errorf("marshal processed set: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write processed set: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace processed set: %w", err)
	}
	return nil
}
