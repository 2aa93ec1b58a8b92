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

// BlockService is the block use case surface used by BlockHandler.
type BlockService interface {
	RecordBlock(ctx context.Context, input usecase.RecordBlockInput) (*domain.NetworkBlock, error)
	RecordBlocks(ctx context.Context, inputs []usecase.RecordBlockInput) ([]*domain.NetworkBlock, error)
	GetBlockView(ctx context.Context, input usecase.GetBlockViewInput) (*domain.BlockView, error)
	ListBlockViews(ctx context.Context, input usecase.ListBlockViewsInput) ([]domain.BlockView, error)
}

// BlockHandler handles block-related HTTP requests.
type BlockHandler struct {
	blockUC BlockService
}

// NewBlockHandler creates a new BlockHandler.
func NewBlockHandler(blockUC BlockService) *BlockHandler {
	return &BlockHandler{blockUC: blockUC}
}

// Create records a single block.
func (h *BlockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordBlockRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	block, err := h.blockUC.RecordBlock(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record block", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BlockFromDomain(block))
}

// CreateBatch records several blocks atomically.
func (h *BlockHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordBlocksRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	blocks, err := h.blockUC.RecordBlocks(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record blocks", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BlocksFromDomain(blocks))
}

// Get projects one block for the viewer.
func (h *BlockHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing block ID", "")
		return
	}

	viewer, _ := middleware.ViewerFromContext(r.Context())

	view, err := h.blockUC.GetBlockView(r.Context(), usecase.GetBlockViewInput{
		Viewer:  viewer,
		BlockID: id,
		Expand:  parseBoolQuery(r, "expand"),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get block", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// List projects the viewer's blocks, newest first.
func (h *BlockHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.ViewerFromContext(r.Context())

	limit, offset := usecase.ClampPage(
		parseIntQuery(r, "limit", usecase.DefaultPageSize),
		parseIntQuery(r, "offset", 0),
	)

	views, err := h.blockUC.ListBlockViews(r.Context(), usecase.ListBlockViewsInput{
		NetworkID: optionalQuery(r, "network"),
		Viewer:    viewer,
		Limit:     limit,
		Offset:    offset,
		Expand:    parseBoolQuery(r, "expand"),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list blocks", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BlockViewListResponse{
		Blocks: views,
		Limit:  limit,
		Offset: offset,
	})
}
