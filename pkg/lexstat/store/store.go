// Package store persists aggregation runs: the two count tables plus run
// metadata, as an alternative to loose TSV files.
package store

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/lexstat/pkg/lexstat/pair"
)

// Run is the metadata of one corpus aggregation pass.
type Run struct {
	ID         string // ULID
	CorpusPath string
	Window     int
	UnigramN   int64
	CooccurN   int64
	CreatedAt  time.Time
}

// Store is the interface for persisting and loading run data.
type Store interface {
	Close() error

	// SaveRun stores a run's metadata and both count tables atomically.
	SaveRun(ctx context.Context, run Run, unigram map[string]int64, cooccur map[pair.Pair]int64) error

	// GetRun returns a run's metadata. internalerr.ErrNotFound if absent.
	GetRun(ctx context.Context, id string) (Run, error)

	// LatestRun returns the most recently created run.
	// internalerr.ErrNotFound if the store is empty.
	LatestRun(ctx context.Context) (Run, error)

	// LoadUnigram and LoadCooccur reconstruct a run's tables.
	LoadUnigram(ctx context.Context, runID string) (map[string]int64, error)
	LoadCooccur(ctx context.Context, runID string) (map[pair.Pair]int64, error)
}

// NewRunID returns a fresh ULID run identifier.
func NewRunID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
