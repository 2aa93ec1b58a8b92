package usecase

import (
	"context"
	"time"

	"github.com/iho/blockview/internal/domain"
)

// BlockRepository defines data access for network blocks.
type BlockRepository interface {
	CreateTx(ctx context.Context, tx Transaction, block *domain.NetworkBlock) error
	GetByID(ctx context.Context, id string) (*domain.NetworkBlock, error)
	// ListByAccounts returns blocks sent or received by any of accountNumbers,
	// newest first. A nil networkID matches every network.
	ListByAccounts(ctx context.Context, accountNumbers []string, networkID *string, limit, offset int) ([]*domain.NetworkBlock, error)
}

// HoldingAccountRepository defines data access for delegated holding accounts.
type HoldingAccountRepository interface {
	Create(ctx context.Context, account *domain.HoldingAccount) error
	Delete(ctx context.Context, ownerAccountNumber, id string) error
	ListByOwner(ctx context.Context, ownerAccountNumber string) ([]*domain.HoldingAccount, error)
}

// NetworkRepository defines data access for networks.
type NetworkRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Network, error)
	List(ctx context.Context) ([]*domain.Network, error)
	Upsert(ctx context.Context, network *domain.Network) error
}

// OwnershipSource supplies the ownership snapshot for a viewer.
type OwnershipSource interface {
	Snapshot(ctx context.Context, selfAccountNumber string) (domain.AccountOwnership, error)
}

// OwnershipCache stores ownership snapshots between requests. Every
// invalidation bumps a per-owner generation; a snapshot read from storage is
// only stored if the generation is unchanged since before the read.
type OwnershipCache interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context, ownerAccountNumber string) (*domain.AccountOwnership, error)
	// Generation returns the owner's current invalidation generation.
	Generation(ctx context.Context, ownerAccountNumber string) (int64, error)
	// Set stores ownership unless the owner was invalidated after generation was read.
	Set(ctx context.Context, ownerAccountNumber string, generation int64, ownership domain.AccountOwnership, ttl time.Duration) error
	// Invalidate drops the snapshot and bumps the generation.
	Invalidate(ctx context.Context, ownerAccountNumber string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotentResponse is a response replayed for a repeated Idempotency-Key.
type IdempotentResponse struct {
	StatusCode int    `json:"status_code"`
	Body       []byte `json:"body"`
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// Reserve claims key for an in-flight request. It returns (nil, true, nil) when
	// the caller now owns the key, (resp, false, nil) when a response is stored, and
	// (nil, false, nil) while another request still holds the key.
	Reserve(ctx context.Context, key string, ttl time.Duration) (*IdempotentResponse, bool, error)
	// Complete stores the final response for key.
	Complete(ctx context.Context, key string, resp IdempotentResponse, ttl time.Duration) error
	// Release drops a reservation so the request can be retried.
	Release(ctx context.Context, key string) error
}

// Observer receives use case events for metrics.
type Observer interface {
	BlockProjected(status domain.Status, placeholders int)
	BlocksRecorded(n int)
	HoldingAccountRegistered()
	OwnershipCacheLookup(hit bool)
}
