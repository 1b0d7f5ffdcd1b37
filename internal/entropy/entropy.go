// Package entropy generates sortable unique identifiers that are safe
// to request from concurrent goroutines.
package entropy

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator creates ULIDs. IDs created within the same millisecond
// sort in creation order.
type Generator struct {
	mu     sync.Mutex
	reader ulid.MonotonicReader
}

// New returns a new Generator.
func New() *Generator {
	// nolint:gosec // crypto/rand not necessary for ULID generation
	reader := ulid.Monotonic(rand.New(
		rand.NewSource(time.Now().UnixNano()),
	), 0)

	return &Generator{reader: reader}
}

// ID returns a new ULID string timestamped at t.
func (g *Generator) ID(t time.Time) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(t), g.reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
