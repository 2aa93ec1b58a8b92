package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/iho/blockview/internal/domain"
	"github.com/iho/blockview/internal/usecase"
	"github.com/iho/blockview/internal/usecase/mocks"
)

func TestOwnershipUseCase_Snapshot_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	holdingRepo := mocks.NewMockHoldingAccountRepository(ctrl)
	cache := mocks.NewMockOwnershipCache(ctrl)

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), "acct-self").Return(nil, nil),
		cache.EXPECT().Generation(gomock.Any(), "acct-self").Return(int64(3), nil),
		holdingRepo.EXPECT().ListByOwner(gomock.Any(), "acct-self").Return([]*domain.HoldingAccount{
			{ID: "h1", OwnerAccountNumber: "acct-self", NetworkID: "net-a", AccountNumber: "hold-a1"},
		}, nil),
		cache.EXPECT().Set(gomock.Any(), "acct-self", int64(3), gomock.Any(), time.Minute).Return(nil),
	)

	uc := usecase.NewOwnershipUseCase(holdingRepo, cache, nil, nil, time.Minute)

	ownership, err := uc.Snapshot(context.Background(), "acct-self")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ownership.SelfAccountNumber != "acct-self" {
		t.Errorf("expected self acct-self, got %s", ownership.SelfAccountNumber)
	}
	if got := ownership.HoldingAccountNumbers("net-a"); len(got) != 1 || got[0] != "hold-a1" {
		t.Errorf("expected [hold-a1], got %v", got)
	}
}

func TestOwnershipUseCase_Snapshot_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	holdingRepo := mocks.NewMockHoldingAccountRepository(ctrl)
	cache := mocks.NewMockOwnershipCache(ctrl)
	observer := mocks.NewMockObserver(ctrl)

	cached := domain.AccountOwnership{SelfAccountNumber: "acct-self"}
	cache.EXPECT().Get(gomock.Any(), "acct-self").Return(&cached, nil)
	observer.EXPECT().OwnershipCacheLookup(true)

	uc := usecase.NewOwnershipUseCase(holdingRepo, cache, nil, observer, 0)

	ownership, err := uc.Snapshot(context.Background(), "acct-self")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ownership.SelfAccountNumber != "acct-self" {
		t.Errorf("expected cached snapshot, got %+v", ownership)
	}
}

func TestOwnershipUseCase_Snapshot_CacheErrorFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	holdingRepo := mocks.NewMockHoldingAccountRepository(ctrl)
	cache := mocks.NewMockOwnershipCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), "acct-self").Return(nil, errors.New("redis down"))
	cache.EXPECT().Generation(gomock.Any(), "acct-self").Return(int64(0), nil)
	holdingRepo.EXPECT().ListByOwner(gomock.Any(), "acct-self").Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), "acct-self", int64(0), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	uc := usecase.NewOwnershipUseCase(holdingRepo, cache, nil, nil, 0)

	ownership, err := uc.Snapshot(context.Background(), "acct-self")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ownership.HoldingAccountNumbers("net-a")) != 0 {
		t.Errorf("expected no holding accounts, got %+v", ownership)
	}
}

func TestOwnershipUseCase_Snapshot_SkipsCacheWriteWithoutGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	holdingRepo := mocks.NewMockHoldingAccountRepository(ctrl)
	cache := mocks.NewMockOwnershipCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), "acct-self").Return(nil, nil)
	cache.EXPECT().Generation(gomock.Any(), "acct-self").Return(int64(0), errors.New("redis down"))
	holdingRepo.EXPECT().ListByOwner(gomock.Any(), "acct-self").Return(nil, nil)

	uc := usecase.NewOwnershipUseCase(holdingRepo, cache, nil, nil, 0)

	if _, err := uc.Snapshot(context.Background(), "acct-self"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOwnershipUseCase_Snapshot_MissingViewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewOwnershipUseCase(mocks.NewMockHoldingAccountRepository(ctrl), nil, nil, nil, 0)

	if _, err := uc.Snapshot(context.Background(), "  "); !errors.Is(err, domain.ErrMissingViewer) {
		t.Fatalf("expected ErrMissingViewer, got %v", err)
	}
}

func TestOwnershipUseCase_RegisterHoldingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	holdingRepo := mocks.NewMockHoldingAccountRepository(ctrl)
	cache := mocks.NewMockOwnershipCache(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	observer := mocks.NewMockObserver(ctrl)

	idGen.EXPECT().Generate().Return("h-new")
	holdingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, account *domain.HoldingAccount) error {
			if account.ID != "h-new" || account.NetworkID != "net-a" || account.AccountNumber != "hold-a1" {
				t.Errorf("unexpected account: %+v", account)
			}
			return nil
		})
	cache.EXPECT().Invalidate(gomock.Any(), "acct-self").Return(nil)
	observer.EXPECT().HoldingAccountRegistered()

	uc := usecase.NewOwnershipUseCase(holdingRepo, cache, idGen, observer, 0)

	account, err := uc.RegisterHoldingAccount(context.Background(), usecase.RegisterHoldingAccountInput{
		OwnerAccountNumber: "acct-self",
		NetworkID:          " net-a ",
		AccountNumber:      "hold-a1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.OwnerAccountNumber != "acct-self" {
		t.Errorf("expected owner acct-self, got %s", account.OwnerAccountNumber)
	}
}

func TestOwnershipUseCase_RegisterHoldingAccount_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idGen := mocks.NewMockIDGenerator(ctrl)
	idGen.EXPECT().Generate().Return("h-new")

	uc := usecase.NewOwnershipUseCase(mocks.NewMockHoldingAccountRepository(ctrl), nil, idGen, nil, 0)

	_, err := uc.RegisterHoldingAccount(context.Background(), usecase.RegisterHoldingAccountInput{
		OwnerAccountNumber: "acct-self",
		AccountNumber:      "hold-a1",
	})
	if !errors.Is(err, domain.ErrMissingNetwork) {
		t.Fatalf("expected ErrMissingNetwork, got %v", err)
	}
}

func TestOwnershipUseCase_RemoveHoldingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	holdingRepo := mocks.NewMockHoldingAccountRepository(ctrl)
	cache := mocks.NewMockOwnershipCache(ctrl)

	holdingRepo.EXPECT().Delete(gomock.Any(), "acct-self", "h1").Return(nil)
	cache.EXPECT().Invalidate(gomock.Any(), "acct-self").Return(nil)

	uc := usecase.NewOwnershipUseCase(holdingRepo, cache, nil, nil, 0)

	if err := uc.RemoveHoldingAccount(context.Background(), "acct-self", "h1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOwnershipUseCase_RemoveHoldingAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	holdingRepo := mocks.NewMockHoldingAccountRepository(ctrl)
	holdingRepo.EXPECT().Delete(gomock.Any(), "acct-self", "missing").Return(domain.ErrHoldingAccountNotFound)

	uc := usecase.NewOwnershipUseCase(holdingRepo, mocks.NewMockOwnershipCache(ctrl), nil, nil, 0)

	err := uc.RemoveHoldingAccount(context.Background(), "acct-self", "missing")
	if !errors.Is(err, domain.ErrHoldingAccountNotFound) {
		t.Fatalf("expected ErrHoldingAccountNotFound, got %v", err)
	}
}
