package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/blockview/internal/adapter/http/dto"
	"github.com/iho/blockview/internal/domain"
	"github.com/iho/blockview/internal/usecase"
)

type holdingServiceStub struct {
	registerFn func(ctx context.Context, input usecase.RegisterHoldingAccountInput) (*domain.HoldingAccount, error)
	removeFn   func(ctx context.Context, owner, id string) error
	listFn     func(ctx context.Context, owner string) ([]*domain.HoldingAccount, error)
}

func (s *holdingServiceStub) RegisterHoldingAccount(ctx context.Context, input usecase.RegisterHoldingAccountInput) (*domain.HoldingAccount, error) {
	return s.registerFn(ctx, input)
}

func (s *holdingServiceStub) RemoveHoldingAccount(ctx context.Context, owner, id string) error {
	return s.removeFn(ctx, owner, id)
}

func (s *holdingServiceStub) ListHoldingAccounts(ctx context.Context, owner string) ([]*domain.HoldingAccount, error) {
	return s.listFn(ctx, owner)
}

func TestHoldingHandler_Create(t *testing.T) {
	var captured usecase.RegisterHoldingAccountInput

	handler := NewHoldingHandler(&holdingServiceStub{
		registerFn: func(ctx context.Context, input usecase.RegisterHoldingAccountInput) (*domain.HoldingAccount, error) {
			captured = input
			return &domain.HoldingAccount{ID: "hld_1", NetworkID: input.NetworkID, AccountNumber: input.AccountNumber}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/holdings", bytes.NewBufferString(`{"network_id":"eth","account_number":"H1"}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, withViewer(req, "SELF"))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.OwnerAccountNumber != "SELF" || captured.NetworkID != "eth" || captured.AccountNumber != "H1" {
		t.Fatalf("unexpected input: %+v", captured)
	}
}

func TestHoldingHandler_Create_Duplicate(t *testing.T) {
	handler := NewHoldingHandler(&holdingServiceStub{
		registerFn: func(ctx context.Context, input usecase.RegisterHoldingAccountInput) (*domain.HoldingAccount, error) {
			return nil, domain.ErrHoldingAccountExists
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/holdings", bytes.NewBufferString(`{"network_id":"eth","account_number":"H1"}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, withViewer(req, "SELF"))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestHoldingHandler_List(t *testing.T) {
	handler := NewHoldingHandler(&holdingServiceStub{
		listFn: func(ctx context.Context, owner string) ([]*domain.HoldingAccount, error) {
			return []*domain.HoldingAccount{
				{ID: "hld_1", OwnerAccountNumber: owner, NetworkID: "eth", AccountNumber: "E1"},
				{ID: "hld_2", OwnerAccountNumber: owner, NetworkID: "btc", AccountNumber: "B1"},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.List(rec, withViewer(httptest.NewRequest(http.MethodGet, "/api/v1/holdings", nil), "SELF"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.OwnershipResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SelfAccountNumber != "SELF" || len(resp.HoldingAccounts["eth"]) != 1 || len(resp.HoldingAccounts["btc"]) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHoldingHandler_Delete(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"removed", nil, http.StatusNoContent},
		{"not found", domain.ErrHoldingAccountNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotOwner, gotID string
			handler := NewHoldingHandler(&holdingServiceStub{
				removeFn: func(ctx context.Context, owner, id string) error {
					gotOwner, gotID = owner, id
					return tt.err
				},
			})

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/holdings/hld_1", nil)
			req = withURLParam(withViewer(req, "SELF"), "id", "hld_1")
			rec := httptest.NewRecorder()

			handler.Delete(rec, req)

			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rec.Code)
			}
			if gotOwner != "SELF" || gotID != "hld_1" {
				t.Fatalf("unexpected call owner=%s id=%s", gotOwner, gotID)
			}
		})
	}
}
