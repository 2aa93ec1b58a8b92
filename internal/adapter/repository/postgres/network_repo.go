package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/blockview/internal/domain"
)

// NetworkRepository implements usecase.NetworkRepository.
type NetworkRepository struct {
	db DBTX
}

// NewNetworkRepository creates a new NetworkRepository.
func NewNetworkRepository(pool *pgxpool.Pool) *NetworkRepository {
	return newNetworkRepository(pool)
}

func newNetworkRepository(db DBTX) *NetworkRepository {
	return &NetworkRepository{db: db}
}

// GetByID retrieves a network by ID.
func (r *NetworkRepository) GetByID(ctx context.Context, id string) (*domain.Network, error) {
	var n domain.Network
	err := r.db.QueryRow(ctx, `SELECT id, display_name FROM networks WHERE id = $1`, id).Scan(&n.ID, &n.DisplayName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNetworkNotFound
	}
	if err != nil {
		return nil, err
	}

	return &n, nil
}

// List lists every network by display name.
func (r *NetworkRepository) List(ctx context.Context) ([]*domain.Network, error) {
	rows, err := r.db.Query(ctx, `SELECT id, display_name FROM networks ORDER BY display_name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var networks []*domain.Network
	for rows.Next() {
		var n domain.Network
		if err := rows.Scan(&n.ID, &n.DisplayName); err != nil {
			return nil, err
		}
		networks = append(networks, &n)
	}

	return networks, rows.Err()
}

// Upsert creates the network or renames it.
func (r *NetworkRepository) Upsert(ctx context.Context, network *domain.Network) error {
	query := `
		INSERT INTO networks (id, display_name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET display_name = EXCLUDED.display_name
	`

	_, err := r.db.Exec(ctx, query, network.ID, network.DisplayName)
	return err
}
