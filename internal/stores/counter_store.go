package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usage-analytics/internal/models"
)

var (
	// ErrNotProvisioned is returned when a counter table is used before
	// Provision created it. The fix is to provision at startup, not to retry.
	ErrNotProvisioned = errors.New("counter table not provisioned")

	// ErrUpdateConflict is returned by optimistic backends when an increment
	// kept losing the write race after the bounded number of retries.
	ErrUpdateConflict = errors.New("concurrent counter update conflict")
)

// DefaultQueryLimit is the page size used when a query does not set one.
const DefaultQueryLimit = 500

// CounterQuery selects counter rows with bucket times in [Start, End]
// inclusive, ordered by bucket time descending, paginated by Limit/Page
// (1-indexed). A nil Target returns all dimension values; otherwise only rows
// whose dimension value equals *Target.
type CounterQuery struct {
	Start  time.Time
	End    time.Time
	Limit  int
	Page   int
	Target *string
}

func (q CounterQuery) normalized() CounterQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultQueryLimit
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.End.IsZero() {
		q.End = time.Now().UTC()
	}
	return q
}

func (q CounterQuery) offset() int {
	return q.Limit * (q.Page - 1)
}

// CounterStore is the write side of a summary counter backend. Increment must
// be implemented as a backend-native atomic upsert: concurrent increments of
// the same (bucket, value) row from any number of processes must all be
// counted.
//
//go:generate mockgen -source=counter_store.go -destination=./mocks/counter_store_mock.go -package=mocks
type CounterStore interface {
	// Provision idempotently creates the backing table for (dimension,
	// period), or reflects it if it already exists. Existing rows are never
	// dropped or altered.
	Provision(ctx context.Context, dimension models.Dimension, period models.Period) error

	// Increment upserts the row for (bucketTime, dimensionValue): a missing
	// row is created with hits=1 and transfer=deltaTransfer, an existing row
	// has 1 added to hits and deltaTransfer added to transfer.
	Increment(ctx context.Context, dimension models.Dimension, period models.Period, bucketTime time.Time, dimensionValue string, deltaTransfer int64) error
}

// CounterQuerier is the optional read side of a counter backend. Backends
// that can serve summaries implement it in addition to CounterStore; callers
// discover the capability by type assertion.
type CounterQuerier interface {
	Query(ctx context.Context, dimension models.Dimension, period models.Period, query CounterQuery) ([]models.CounterRow, error)
}

// DimensionSupporter is an optional interface for backends that cannot count
// every dimension. Dispatching an unsupported dimension is a no-op, not an
// error. Backends that do not implement it support all dimensions.
type DimensionSupporter interface {
	SupportsDimension(dimension models.Dimension) bool
}

// TableName builds the backing table name for a (dimension, period) pair,
// e.g. usage_url_hourly.
func TableName(prefix string, dimension models.Dimension, period models.Period) string {
	return fmt.Sprintf("%s_%s_%s", prefix, dimension, period.TableSuffix())
}
