package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iho/blockview/internal/domain"
)

// OwnershipUseCase manages holding accounts and builds ownership snapshots.
type OwnershipUseCase struct {
	holdingRepo HoldingAccountRepository
	cache       OwnershipCache
	idGen       IDGenerator
	observer    Observer
	cacheTTL    time.Duration
}

// NewOwnershipUseCase creates a new OwnershipUseCase. cache may be nil.
func NewOwnershipUseCase(
	holdingRepo HoldingAccountRepository,
	cache OwnershipCache,
	idGen IDGenerator,
	observer Observer,
	cacheTTL time.Duration,
) *OwnershipUseCase {
	if observer == nil {
		observer = NopObserver{}
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultOwnershipCacheTTL
	}

	return &OwnershipUseCase{
		holdingRepo: holdingRepo,
		cache:       cache,
		idGen:       idGen,
		observer:    observer,
		cacheTTL:    cacheTTL,
	}
}

// Snapshot returns every identity selfAccountNumber owns. The cache is best
// effort: a cache failure falls through to the repository.
func (uc *OwnershipUseCase) Snapshot(ctx context.Context, selfAccountNumber string) (domain.AccountOwnership, error) {
	selfAccountNumber = strings.TrimSpace(selfAccountNumber)
	if selfAccountNumber == "" {
		return domain.AccountOwnership{}, domain.ErrMissingViewer
	}

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, selfAccountNumber)
		if err != nil {
			log.Warn().Err(err).Str("owner", selfAccountNumber).Msg("ownership cache read failed")
		}
		uc.observer.OwnershipCacheLookup(cached != nil)
		if cached != nil {
			return *cached, nil
		}
	}

	// The generation is read before storage so a concurrent invalidation
	// makes the Set below a no-op instead of caching a stale snapshot.
	var generation int64
	cacheable := uc.cache != nil
	if cacheable {
		var err error
		generation, err = uc.cache.Generation(ctx, selfAccountNumber)
		if err != nil {
			log.Warn().Err(err).Str("owner", selfAccountNumber).Msg("ownership cache generation read failed")
			cacheable = false
		}
	}

	accounts, err := uc.holdingRepo.ListByOwner(ctx, selfAccountNumber)
	if err != nil {
		return domain.AccountOwnership{}, err
	}

	holdings := make([]domain.HoldingAccount, 0, len(accounts))
	for _, ha := range accounts {
		holdings = append(holdings, *ha)
	}
	ownership := domain.NewAccountOwnership(selfAccountNumber, holdings)

	if cacheable {
		if err := uc.cache.Set(ctx, selfAccountNumber, generation, ownership, uc.cacheTTL); err != nil {
			log.Warn().Err(err).Str("owner", selfAccountNumber).Msg("ownership cache write failed")
		}
	}

	return ownership, nil
}

// RegisterHoldingAccountInput represents input for registering a holding account.
type RegisterHoldingAccountInput struct {
	OwnerAccountNumber string
	NetworkID          string
	AccountNumber      string
}

// RegisterHoldingAccount records a delegated account for the owner.
func (uc *OwnershipUseCase) RegisterHoldingAccount(ctx context.Context, input RegisterHoldingAccountInput) (*domain.HoldingAccount, error) {
	account := &domain.HoldingAccount{
		ID:                 uc.idGen.Generate(),
		OwnerAccountNumber: strings.TrimSpace(input.OwnerAccountNumber),
		NetworkID:          strings.TrimSpace(input.NetworkID),
		AccountNumber:      strings.TrimSpace(input.AccountNumber),
		CreatedAt:          time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := uc.holdingRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, account.OwnerAccountNumber)
	uc.observer.HoldingAccountRegistered()

	return account, nil
}

// RemoveHoldingAccount deletes one of the owner's holding accounts.
func (uc *OwnershipUseCase) RemoveHoldingAccount(ctx context.Context, ownerAccountNumber, id string) error {
	if strings.TrimSpace(ownerAccountNumber) == "" {
		return domain.ErrMissingViewer
	}

	if err := uc.holdingRepo.Delete(ctx, ownerAccountNumber, id); err != nil {
		return err
	}

	uc.invalidate(ctx, ownerAccountNumber)
	return nil
}

// ListHoldingAccounts lists the owner's holding accounts.
func (uc *OwnershipUseCase) ListHoldingAccounts(ctx context.Context, ownerAccountNumber string) ([]*domain.HoldingAccount, error) {
	if strings.TrimSpace(ownerAccountNumber) == "" {
		return nil, domain.ErrMissingViewer
	}
	return uc.holdingRepo.ListByOwner(ctx, ownerAccountNumber)
}

func (uc *OwnershipUseCase) invalidate(ctx context.Context, ownerAccountNumber string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, ownerAccountNumber); err != nil {
		log.Error().Err(err).Str("owner", ownerAccountNumber).Msg("ownership cache invalidation failed")
	}
}
