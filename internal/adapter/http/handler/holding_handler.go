package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/blockview/internal/adapter/http/dto"
	"github.com/iho/blockview/internal/adapter/http/middleware"
	"github.com/iho/blockview/internal/domain"
	"github.com/iho/blockview/internal/usecase"
)

// HoldingService is the ownership use case surface used by HoldingHandler.
type HoldingService interface {
	RegisterHoldingAccount(ctx context.Context, input usecase.RegisterHoldingAccountInput) (*domain.HoldingAccount, error)
	RemoveHoldingAccount(ctx context.Context, ownerAccountNumber, id string) error
	ListHoldingAccounts(ctx context.Context, ownerAccountNumber string) ([]*domain.HoldingAccount, error)
}

// HoldingHandler manages the viewer's holding accounts.
type HoldingHandler struct {
	ownershipUC HoldingService
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(ownershipUC HoldingService) *HoldingHandler {
	return &HoldingHandler{ownershipUC: ownershipUC}
}

// Create registers a holding account for the viewer.
func (h *HoldingHandler) Create(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.ViewerFromContext(r.Context())

	var req dto.RegisterHoldingAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.ownershipUC.RegisterHoldingAccount(r.Context(), req.ToUseCaseInput(viewer))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register holding account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.HoldingAccountFromDomain(account))
}

// List returns the viewer's holding accounts grouped by network.
func (h *HoldingHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.ViewerFromContext(r.Context())

	accounts, err := h.ownershipUC.ListHoldingAccounts(r.Context(), viewer)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list holding accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OwnershipFromDomain(viewer, accounts))
}

// Delete removes one of the viewer's holding accounts.
func (h *HoldingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.ViewerFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing holding account ID", "")
		return
	}

	if err := h.ownershipUC.RemoveHoldingAccount(r.Context(), viewer, id); err != nil {
		writeError(w, mapDomainError(err), "failed to remove holding account", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
