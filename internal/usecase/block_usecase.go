package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/blockview/internal/domain"
)

var (
	// ErrEmptyBatch is returned when there is nothing to record.
	ErrEmptyBatch = errors.New("no blocks to record")
	// ErrBatchTooLarge is returned when a batch exceeds maxBatchSize.
	ErrBatchTooLarge = errors.New("too many blocks in batch")
)

// BlockUseCase records network blocks and projects them for a viewer.
type BlockUseCase struct {
	txManager TransactionManager
	blockRepo BlockRepository
	networks  *NetworkUseCase
	ownership OwnershipSource
	idGen     IDGenerator
	retrier   Retrier
	formatter domain.PayloadFormatter
	observer  Observer
}

// BlockUseCaseConfig holds BlockUseCase dependencies.
type BlockUseCaseConfig struct {
	TxManager   TransactionManager
	BlockRepo   BlockRepository
	NetworkRepo NetworkRepository
	Ownership   OwnershipSource
	IDGen       IDGenerator
	Retrier     Retrier
	Formatter   domain.PayloadFormatter
	Observer    Observer
}

// NewBlockUseCase creates a new BlockUseCase.
func NewBlockUseCase(cfg BlockUseCaseConfig) *BlockUseCase {
	if cfg.Formatter == nil {
		cfg.Formatter = domain.IndentedJSONFormatter{}
	}
	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}

	return &BlockUseCase{
		txManager: cfg.TxManager,
		blockRepo: cfg.BlockRepo,
		networks:  NewNetworkUseCase(cfg.NetworkRepo),
		ownership: cfg.Ownership,
		idGen:     cfg.IDGen,
		retrier:   cfg.Retrier,
		formatter: cfg.Formatter,
		observer:  cfg.Observer,
	}
}

// RecordBlockInput represents input for recording a block.
type RecordBlockInput struct {
	Date           time.Time
	Payload        any
	NetworkID      *string
	ID             string
	Sender         string
	Recipient      string
	Signature      string
	Amount         decimal.Decimal
	TransactionFee decimal.Decimal
}

// RecordBlock records a single block.
func (uc *BlockUseCase) RecordBlock(ctx context.Context, input RecordBlockInput) (*domain.NetworkBlock, error) {
	blocks, err := uc.RecordBlocks(ctx, []RecordBlockInput{input})
	if err != nil {
		return nil, err
	}

	return blocks[0], nil
}

// RecordBlocks records blocks atomically. Every block is validated before the
// transaction starts.
func (uc *BlockUseCase) RecordBlocks(ctx context.Context, inputs []RecordBlockInput) ([]*domain.NetworkBlock, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(inputs) > maxBatchSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(inputs), maxBatchSize)
	}

	now := time.Now().UTC()
	checkedNetworks := make(map[string]bool)

	blocks := make([]*domain.NetworkBlock, 0, len(inputs))
	for i, in := range inputs {
		block := &domain.NetworkBlock{
			ID:             in.ID,
			Amount:         in.Amount,
			TransactionFee: in.TransactionFee,
			Sender:         in.Sender,
			Recipient:      in.Recipient,
			Signature:      in.Signature,
			Payload:        in.Payload,
			Date:           in.Date,
			NetworkID:      in.NetworkID,
		}
		if block.ID == "" {
			block.ID = uc.idGen.Generate()
		}
		if block.Date.IsZero() {
			block.Date = now
		}

		if err := block.Validate(); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}

		if block.HasNetwork() && !checkedNetworks[*block.NetworkID] {
			if _, err := uc.networks.GetNetwork(ctx, *block.NetworkID); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			checkedNetworks[*block.NetworkID] = true
		}

		blocks = append(blocks, block)
	}

	err := uc.retrier.Retry(ctx, func() error {
		return uc.insert(ctx, blocks)
	})
	if err != nil {
		return nil, err
	}

	uc.observer.BlocksRecorded(len(blocks))
	return blocks, nil
}

func (uc *BlockUseCase) insert(ctx context.Context, blocks []*domain.NetworkBlock) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, block := range blocks {
		if err := uc.blockRepo.CreateTx(ctx, tx, block); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetBlockViewInput represents input for viewing one block.
type GetBlockViewInput struct {
	Viewer  string
	BlockID string
	Expand  bool
}

// GetBlockView projects a single block from the viewer's perspective.
func (uc *BlockUseCase) GetBlockView(ctx context.Context, input GetBlockViewInput) (*domain.BlockView, error) {
	ownership, err := uc.ownership.Snapshot(ctx, input.Viewer)
	if err != nil {
		return nil, err
	}

	block, err := uc.blockRepo.GetByID(ctx, input.BlockID)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	view, err := uc.project(ctx, *block, ownership, names, input.Expand)
	if err != nil {
		return nil, err
	}

	return &view, nil
}

// ListBlockViewsInput represents input for listing a viewer's blocks.
type ListBlockViewsInput struct {
	NetworkID *string
	Viewer    string
	Limit     int
	Offset    int
	Expand    bool
}

// ListBlockViews lists blocks the viewer took part in through any owned
// identity, projected from the viewer's perspective.
func (uc *BlockUseCase) ListBlockViews(ctx context.Context, input ListBlockViewsInput) ([]domain.BlockView, error) {
	ownership, err := uc.ownership.Snapshot(ctx, input.Viewer)
	if err != nil {
		return nil, err
	}

	limit, offset := ClampPage(input.Limit, input.Offset)

	blocks, err := uc.blockRepo.ListByAccounts(ctx, ownership.AccountNumbers(), input.NetworkID, limit, offset)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	views := make([]domain.BlockView, 0, len(blocks))
	for _, block := range blocks {
		view, err := uc.project(ctx, *block, ownership, names, input.Expand)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// project looks up the network name (memoised in names for the duration of one
// request) and runs the projection.
func (uc *BlockUseCase) project(
	ctx context.Context,
	block domain.NetworkBlock,
	ownership domain.AccountOwnership,
	names map[string]string,
	expand bool,
) (domain.BlockView, error) {
	var networkName string
	if block.HasNetwork() {
		id := *block.NetworkID
		name, ok := names[id]
		if !ok {
			var err error
			name, err = uc.networks.DisplayName(ctx, id)
			if err != nil {
				return domain.BlockView{}, err
			}
			names[id] = name
		}
		networkName = name
	}

	view := domain.ProjectBlock(block, ownership, networkName, uc.formatter, expand)
	uc.observer.BlockProjected(view.Status, domain.PlaceholderCount(view.Details))

	return view, nil
}
