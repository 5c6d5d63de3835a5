// Package history records completed calculations so clients can list
// and replay recent work.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/calcsuite/calcsuite/internal/calc"
)

// ErrNotFound is returned when no record exists for an ID.
var ErrNotFound = errors.New("history: record not found")

// Record is one completed calculation.
type Record struct {
	ID         string         `json:"id"`
	Slug       string         `json:"slug"`
	Category   calc.Category  `json:"category"`
	Input      map[string]any `json:"input"`
	Result     *calc.Result   `json:"result"`
	ComputedAt time.Time      `json:"computed_at"`
}

// NewRecord builds a record for a just-computed result.
func NewRecord(info calc.Info, input map[string]any, result *calc.Result) Record {
	return Record{
		ID:         uuid.NewString(),
		Slug:       info.Slug,
		Category:   info.Category,
		Input:      input,
		Result:     result,
		ComputedAt: time.Now().UTC(),
	}
}

// Store persists calculation records. Implementations bound their own
// retention; Add may evict the oldest records.
type Store interface {
	Add(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (Record, error)
	// List returns records newest first, at most limit (0 means all retained).
	List(ctx context.Context, limit int) ([]Record, error)
	Close() error
}
