package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction.
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultOwnershipCacheTTL bounds how long a cached ownership snapshot lives
	// when the cache cannot be invalidated, e.g. while redis is unreachable.
	DefaultOwnershipCacheTTL = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// DefaultPageSize is used when a list request names no limit.
	DefaultPageSize = 20
	// MaxPageSize caps the limit of any list request.
	MaxPageSize = 100

	maxBatchSize = 500
)

// ClampPage returns the limit and offset a list query actually runs with.
func ClampPage(limit, offset int) (int, int) {
	switch {
	case limit <= 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
