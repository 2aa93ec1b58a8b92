package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/blockview/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// BlockResponse represents an ingested block.
type BlockResponse struct {
	ID             string          `json:"id"`
	NetworkID      *string         `json:"network_id,omitempty"`
	Sender         string          `json:"sender"`
	Recipient      string          `json:"recipient"`
	Amount         decimal.Decimal `json:"amount"`
	TransactionFee decimal.Decimal `json:"transaction_fee"`
	Signature      string          `json:"signature"`
	Payload        any             `json:"payload,omitempty"`
	Date           time.Time       `json:"date"`
}

// BlockFromDomain converts a domain block to a response.
func BlockFromDomain(b *domain.NetworkBlock) *BlockResponse {
	return &BlockResponse{
		ID:             b.ID,
		NetworkID:      b.NetworkID,
		Sender:         b.Sender,
		Recipient:      b.Recipient,
		Amount:         b.Amount,
		TransactionFee: b.TransactionFee,
		Signature:      b.Signature,
		Payload:        b.Payload,
		Date:           b.Date,
	}
}

// BlocksFromDomain converts domain blocks to responses.
func BlocksFromDomain(blocks []*domain.NetworkBlock) []*BlockResponse {
	result := make([]*BlockResponse, len(blocks))
	for i, b := range blocks {
		result[i] = BlockFromDomain(b)
	}
	return result
}

// BlockViewListResponse is a page of projected blocks.
type BlockViewListResponse struct {
	Blocks []domain.BlockView `json:"blocks"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// HoldingAccountResponse represents a holding account.
type HoldingAccountResponse struct {
	ID            string    `json:"id"`
	NetworkID     string    `json:"network_id"`
	AccountNumber string    `json:"account_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// HoldingAccountFromDomain converts a domain holding account to a response.
func HoldingAccountFromDomain(h *domain.HoldingAccount) *HoldingAccountResponse {
	return &HoldingAccountResponse{
		ID:            h.ID,
		NetworkID:     h.NetworkID,
		AccountNumber: h.AccountNumber,
		CreatedAt:     h.CreatedAt,
	}
}

// OwnershipResponse lists the viewer's holding accounts grouped by network.
type OwnershipResponse struct {
	SelfAccountNumber string                               `json:"self_account_number"`
	HoldingAccounts   map[string][]*HoldingAccountResponse `json:"holding_accounts"`
}

// OwnershipFromDomain groups holding accounts by network.
func OwnershipFromDomain(self string, accounts []*domain.HoldingAccount) *OwnershipResponse {
	grouped := make(map[string][]*HoldingAccountResponse)
	for _, a := range accounts {
		grouped[a.NetworkID] = append(grouped[a.NetworkID], HoldingAccountFromDomain(a))
	}

	return &OwnershipResponse{
		SelfAccountNumber: self,
		HoldingAccounts:   grouped,
	}
}

// NetworkResponse represents a network.
type NetworkResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// NetworksFromDomain converts domain networks to responses.
func NetworksFromDomain(networks []*domain.Network) []NetworkResponse {
	result := make([]NetworkResponse, len(networks))
	for i, n := range networks {
		result[i] = NetworkResponse{ID: n.ID, DisplayName: n.DisplayName}
	}
	return result
}
