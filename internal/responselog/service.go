// Package responselog keeps a short, newest first history of dispatch
// attempts for human inspection.
package responselog

import (
	"strings"
	"sync"
	"time"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/entropy"
)

// entrySeparator is placed between rendered entries.
const entrySeparator = "\n\n\n"

type service struct {
	mu       sync.Mutex
	capacity int
	now      func() time.Time
	ids      *entropy.Generator
	entries  []console.LogEntry
}

// Record prepends an entry and drops anything beyond the capacity.
func (s *service) Record(entry console.LogEntry) console.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}
	if entry.ID == "" {
		if id, err := s.ids.ID(entry.Timestamp); err == nil {
			entry.ID = id
		}
	}

	s.entries = append([]console.LogEntry{entry}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}

	return entry
}

// Entries returns a copy of the retained entries, newest first.
func (s *service) Entries() []console.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]console.LogEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Failed reports whether the most recent entry was an error.
func (s *service) Failed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries) > 0 && s.entries[0].IsError
}

// String renders the retained entries, newest first.
func (s *service) String() string {
	entries := s.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, entrySeparator)
}
