package handler

import (
	"context"
	"net/http"

	"github.com/iho/blockview/internal/adapter/http/dto"
	"github.com/iho/blockview/internal/domain"
	"github.com/iho/blockview/internal/usecase"
)

// NetworkService is the network use case surface used by NetworkHandler.
type NetworkService interface {
	ListNetworks(ctx context.Context) ([]*domain.Network, error)
	SaveNetwork(ctx context.Context, input usecase.SaveNetworkInput) (*domain.Network, error)
}

// NetworkHandler serves the network registry.
type NetworkHandler struct {
	networkUC NetworkService
}

// NewNetworkHandler creates a new NetworkHandler.
func NewNetworkHandler(networkUC NetworkService) *NetworkHandler {
	return &NetworkHandler{networkUC: networkUC}
}

// List lists known networks.
func (h *NetworkHandler) List(w http.ResponseWriter, r *http.Request) {
	networks, err := h.networkUC.ListNetworks(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list networks", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NetworksFromDomain(networks))
}

// Save creates or renames a network.
func (h *NetworkHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveNetworkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	network, err := h.networkUC.SaveNetwork(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to save network", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NetworkResponse{ID: network.ID, DisplayName: network.DisplayName})
}
