package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/blockview/internal/usecase"
)

// RecordBlockRequest represents a request to ingest a block.
type RecordBlockRequest struct {
	ID             string          `json:"id,omitempty"`
	NetworkID      *string         `json:"network_id,omitempty"`
	Sender         string          `json:"sender"`
	Recipient      string          `json:"recipient"`
	Amount         decimal.Decimal `json:"amount"`
	TransactionFee decimal.Decimal `json:"transaction_fee"`
	Signature      string          `json:"signature"`
	Payload        json.RawMessage `json:"payload,omitempty"`
	Date           *time.Time      `json:"date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordBlockRequest) ToUseCaseInput() usecase.RecordBlockInput {
	input := usecase.RecordBlockInput{
		ID:             r.ID,
		NetworkID:      r.NetworkID,
		Sender:         r.Sender,
		Recipient:      r.Recipient,
		Amount:         r.Amount,
		TransactionFee: r.TransactionFee,
		Signature:      r.Signature,
	}

	if r.Date != nil {
		input.Date = *r.Date
	}

	if payload := bytes.TrimSpace(r.Payload); len(payload) > 0 && !bytes.Equal(payload, []byte("null")) {
		input.Payload = json.RawMessage(payload)
	}

	return input
}

// RecordBlocksRequest represents a batch ingestion request.
type RecordBlocksRequest struct {
	Blocks []RecordBlockRequest `json:"blocks"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordBlocksRequest) ToUseCaseInput() []usecase.RecordBlockInput {
	inputs := make([]usecase.RecordBlockInput, len(r.Blocks))
	for i := range r.Blocks {
		inputs[i] = r.Blocks[i].ToUseCaseInput()
	}
	return inputs
}

// RegisterHoldingAccountRequest registers a delegated account for the viewer.
type RegisterHoldingAccountRequest struct {
	NetworkID     string `json:"network_id"`
	AccountNumber string `json:"account_number"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterHoldingAccountRequest) ToUseCaseInput(owner string) usecase.RegisterHoldingAccountInput {
	return usecase.RegisterHoldingAccountInput{
		OwnerAccountNumber: owner,
		NetworkID:          r.NetworkID,
		AccountNumber:      r.AccountNumber,
	}
}

// SaveNetworkRequest creates or renames a network.
type SaveNetworkRequest struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// ToUseCaseInput converts to use case input.
func (r *SaveNetworkRequest) ToUseCaseInput() usecase.SaveNetworkInput {
	return usecase.SaveNetworkInput{
		ID:          r.ID,
		DisplayName: r.DisplayName,
	}
}
