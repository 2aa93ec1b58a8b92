package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/blockview/internal/domain"
	"github.com/iho/blockview/internal/usecase"
)

const blockColumns = `id, network_id, sender, recipient, amount::text, transaction_fee::text, signature, payload, date`

// BlockRepository implements usecase.BlockRepository.
type BlockRepository struct {
	db DBTX
}

// NewBlockRepository creates a new BlockRepository.
func NewBlockRepository(pool *pgxpool.Pool) *BlockRepository {
	return newBlockRepository(pool)
}

func newBlockRepository(db DBTX) *BlockRepository {
	return &BlockRepository{db: db}
}

// CreateTx inserts a block inside tx.
func (r *BlockRepository) CreateTx(ctx context.Context, tx usecase.Transaction, block *domain.NetworkBlock) error {
	payload, err := encodePayload(block.Payload)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO blocks (id, network_id, sender, recipient, amount, transaction_fee, signature, payload, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.(*Tx).PgxTx().Exec(ctx, query,
		block.ID,
		block.NetworkID,
		block.Sender,
		block.Recipient,
		block.Amount,
		block.TransactionFee,
		block.Signature,
		payload,
		block.Date,
	)

	switch pgErrorCode(err) {
	case pgErrUniqueViolation:
		return fmt.Errorf("%w: %s", domain.ErrBlockExists, block.ID)
	case pgErrForeignKeyViolation:
		return domain.ErrNetworkNotFound
	case pgErrNumericOutOfRange:
		return fmt.Errorf("%w: %s", domain.ErrAmountOutOfRange, block.ID)
	}

	return err
}

// GetByID retrieves a block by ID.
func (r *BlockRepository) GetByID(ctx context.Context, id string) (*domain.NetworkBlock, error) {
	query := `SELECT ` + blockColumns + ` FROM blocks WHERE id = $1`

	block, err := scanBlock(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBlockNotFound
	}
	if err != nil {
		return nil, err
	}

	return block, nil
}

// ListByAccounts lists blocks sent or received by any of accountNumbers.
func (r *BlockRepository) ListByAccounts(ctx context.Context, accountNumbers []string, networkID *string, limit, offset int) ([]*domain.NetworkBlock, error) {
	query := `
		SELECT ` + blockColumns + `
		FROM blocks
		WHERE (sender = ANY($1) OR recipient = ANY($1))
		  AND ($2::text IS NULL OR network_id = $2)
		ORDER BY date DESC, id DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, accountNumbers, networkID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocks := make([]*domain.NetworkBlock, 0, limit)
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return blocks, rows.Err()
}

func scanBlock(row pgx.Row) (*domain.NetworkBlock, error) {
	var (
		block     domain.NetworkBlock
		networkID *string
		amount    string
		fee       string
		payload   []byte
		date      time.Time
	)

	err := row.Scan(
		&block.ID,
		&networkID,
		&block.Sender,
		&block.Recipient,
		&amount,
		&fee,
		&block.Signature,
		&payload,
		&date,
	)
	if err != nil {
		return nil, err
	}

	if block.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("block %s: invalid amount %q: %w", block.ID, amount, err)
	}
	if block.TransactionFee, err = decimal.NewFromString(fee); err != nil {
		return nil, fmt.Errorf("block %s: invalid fee %q: %w", block.ID, fee, err)
	}

	block.NetworkID = networkID
	block.Date = date.UTC()
	if len(payload) > 0 {
		block.Payload = json.RawMessage(payload)
	}

	return &block, nil
}

// encodePayload returns nil for a missing payload so the column stays NULL.
func encodePayload(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		if !json.Valid(p) {
			return nil, errors.New("payload is not valid JSON")
		}
		return p, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return data, nil
}
