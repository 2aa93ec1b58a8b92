package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/blockview/internal/domain"
)

// HoldingAccountRepository implements usecase.HoldingAccountRepository.
type HoldingAccountRepository struct {
	db DBTX
}

// NewHoldingAccountRepository creates a new HoldingAccountRepository.
func NewHoldingAccountRepository(pool *pgxpool.Pool) *HoldingAccountRepository {
	return newHoldingAccountRepository(pool)
}

func newHoldingAccountRepository(db DBTX) *HoldingAccountRepository {
	return &HoldingAccountRepository{db: db}
}

// Create inserts a holding account.
func (r *HoldingAccountRepository) Create(ctx context.Context, account *domain.HoldingAccount) error {
	query := `
		INSERT INTO holding_accounts (id, owner_account_number, network_id, account_number, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		account.ID,
		account.OwnerAccountNumber,
		account.NetworkID,
		account.AccountNumber,
		account.CreatedAt,
	)

	switch pgErrorCode(err) {
	case pgErrUniqueViolation:
		return domain.ErrHoldingAccountExists
	case pgErrForeignKeyViolation:
		return domain.ErrNetworkNotFound
	}

	return err
}

// Delete removes one of the owner's holding accounts.
func (r *HoldingAccountRepository) Delete(ctx context.Context, ownerAccountNumber, id string) error {
	query := `DELETE FROM holding_accounts WHERE id = $1 AND owner_account_number = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerAccountNumber)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrHoldingAccountNotFound
	}

	return nil
}

// ListByOwner lists the owner's holding accounts grouped by network.
func (r *HoldingAccountRepository) ListByOwner(ctx context.Context, ownerAccountNumber string) ([]*domain.HoldingAccount, error) {
	query := `
		SELECT id, owner_account_number, network_id, account_number, created_at
		FROM holding_accounts
		WHERE owner_account_number = $1
		ORDER BY network_id, created_at
	`

	rows, err := r.db.Query(ctx, query, ownerAccountNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.HoldingAccount
	for rows.Next() {
		var ha domain.HoldingAccount
		if err := rows.Scan(&ha.ID, &ha.OwnerAccountNumber, &ha.NetworkID, &ha.AccountNumber, &ha.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, &ha)
	}

	return accounts, rows.Err()
}
