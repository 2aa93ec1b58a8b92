package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/iho/blockview/internal/domain"
)

// NetworkUseCase handles network lookups.
type NetworkUseCase struct {
	networkRepo NetworkRepository
}

// NewNetworkUseCase creates a new NetworkUseCase.
func NewNetworkUseCase(networkRepo NetworkRepository) *NetworkUseCase {
	return &NetworkUseCase{networkRepo: networkRepo}
}

// ListNetworks lists every known network.
func (uc *NetworkUseCase) ListNetworks(ctx context.Context) ([]*domain.Network, error) {
	return uc.networkRepo.List(ctx)
}

// GetNetwork retrieves a network by ID.
func (uc *NetworkUseCase) GetNetwork(ctx context.Context, id string) (*domain.Network, error) {
	return uc.networkRepo.GetByID(ctx, id)
}

// DisplayName returns the network's display name, or the ID itself for an
// unknown network.
func (uc *NetworkUseCase) DisplayName(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", nil
	}

	network, err := uc.networkRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNetworkNotFound) {
		return id, nil
	}
	if err != nil {
		return "", err
	}

	if network.DisplayName == "" {
		return id, nil
	}
	return network.DisplayName, nil
}

// SaveNetworkInput represents input for creating or renaming a network.
type SaveNetworkInput struct {
	ID          string
	DisplayName string
}

// SaveNetwork creates the network or updates its display name.
func (uc *NetworkUseCase) SaveNetwork(ctx context.Context, input SaveNetworkInput) (*domain.Network, error) {
	network := &domain.Network{
		ID:          strings.TrimSpace(input.ID),
		DisplayName: strings.TrimSpace(input.DisplayName),
	}

	if network.ID == "" {
		return nil, domain.ErrMissingNetwork
	}
	if network.DisplayName == "" {
		return nil, domain.ErrInvalidNetworkName
	}

	if err := uc.networkRepo.Upsert(ctx, network); err != nil {
		return nil, err
	}

	return network, nil
}
