package seen

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

// Store tracks recently alerted tokens with concurrency safety so repeat
// detections stay quiet for the cooldown window. Keys are
// "{address}_{chain}", values are last-seen epoch milliseconds.
type Store struct {
	mu       sync.Mutex
	entries  map[string]int64
	filePath string
	cooldown time.Duration
}

// NewStore loads the seen-token file, dropping entries older than the
// cooldown. A missing file starts empty; an unreadable or malformed one is
// reset to empty with a warning rather than treated as fatal, so a bad state
// file can never block an analysis run.
func NewStore(filePath string, cooldown time.Duration) *Store {
	s := &Store{
		entries:  make(map[string]int64),
		filePath: filePath,
		cooldown: cooldown,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] seen-token file %s is unreadable, resetting: %v", filePath, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		log.Printf("[WARN] seen-token file %s is malformed, resetting: %v", filePath, err)
		s.entries = make(map[string]int64)
		return s
	}

	s.prune(time.Now())
	return s
}

// Seen reports whether the token was already alerted within the cooldown.
func (s *Store) Seen(address string, chain model.Chain) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, ok := s.entries[key(address, chain)]
	if !ok {
		return false
	}
	return time.Since(time.UnixMilli(ts)) < s.cooldown
}

// Mark records the token as seen now and rewrites the file.
func (s *Store) Mark(address string, chain model.Chain) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key(address, chain)] = time.Now().UnixMilli()
	if err := s.save(); err != nil {
		log.Printf("[ERROR] failed to save seen-token file: %v", err)
	}
}

// Len returns the number of tracked tokens.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func key(address string, chain model.Chain) string {
	return address + "_" + string(chain)
}

func (s *Store) prune(now time.Time) {
	cutoff := now.Add(-s.cooldown).UnixMilli()
	for k, ts := range s.entries {
		if ts < cutoff {
			delete(s.entries, k)
		}
	}
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.filePath, data, 0644)
}
