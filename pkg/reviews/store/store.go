// Package store persists analysis runs so past insight reports can be
// listed and re-rendered. The analysis pipeline itself never touches a
// store; persistence is strictly a front-end concern.
package store

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/platoba/reviewmine/pkg/reviews"
)

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = errors.New("run not found")

// Run is one persisted analysis: which product was analyzed, when, and the
// full insights produced.
type Run struct {
	ID        string           `json:"id"`
	Product   string           `json:"product"`
	CreatedAt time.Time        `json:"created_at"`
	Insights  reviews.Insights `json:"insights"`
}

// Store is the persistence interface for analysis runs.
type Store interface {
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	// ListRuns returns runs newest-first, up to limit (<=0 for all).
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	Close() error
}

var entropy = ulid.Monotonic(rand.Reader, 0)

// NewRunID generates a lexicographically sortable run ID.
func NewRunID() string {
	return ulid.MustNew(ulid.Now(), entropy).String()
}
