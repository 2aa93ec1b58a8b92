package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/blockview/internal/domain"
)

func TestNetworkRepository_GetByID(t *testing.T) {
	pool := newMockPool(t)
	repo := newNetworkRepository(pool)

	pool.ExpectQuery(`SELECT id, display_name FROM networks WHERE id = \$1`).
		WithArgs("eth").
		WillReturnRows(pgxmock.NewRows([]string{"id", "display_name"}).AddRow("eth", "Ethereum"))
	pool.ExpectQuery(`SELECT id, display_name FROM networks WHERE id = \$1`).
		WithArgs("nope").
		WillReturnError(pgx.ErrNoRows)

	n, err := repo.GetByID(context.Background(), "eth")
	require.NoError(t, err)
	assert.Equal(t, "Ethereum", n.DisplayName)

	_, err = repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
	assertExpectations(t, pool)
}

func TestNetworkRepository_List(t *testing.T) {
	pool := newMockPool(t)
	repo := newNetworkRepository(pool)

	pool.ExpectQuery(`SELECT id, display_name FROM networks ORDER BY`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "display_name"}).
			AddRow("btc", "Bitcoin").
			AddRow("eth", "Ethereum"))

	networks, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, networks, 2)
	assert.Equal(t, "btc", networks[0].ID)
	assertExpectations(t, pool)
}

func TestNetworkRepository_Upsert(t *testing.T) {
	pool := newMockPool(t)
	repo := newNetworkRepository(pool)

	pool.ExpectExec(`(?s)INSERT INTO networks .+ ON CONFLICT \(id\) DO UPDATE`).
		WithArgs("eth", "Ethereum").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Upsert(context.Background(), &domain.Network{ID: "eth", DisplayName: "Ethereum"}))
	assertExpectations(t, pool)
}
