// Package store persists analysis runs so a consultation's results can
// be reloaded without recomputing them.
package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Run is one archived analysis: the full result serialized as JSON plus
// enough metadata to list runs without decoding payloads.
type Run struct {
	ID           string
	CreatedAt    time.Time
	CommentCount int
	Payload      []byte
}

// Store is the interface for persisting and querying analysis runs
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewRunID returns a fresh, lexicographically sortable run identifier.
func NewRunID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}
