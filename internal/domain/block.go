package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetworkBlock is a single ledger transaction as recorded on a network.
type NetworkBlock struct {
	Date           time.Time
	Payload        any
	NetworkID      *string
	ID             string
	Sender         string
	Recipient      string
	Signature      string
	Amount         decimal.Decimal
	TransactionFee decimal.Decimal
}

// HasNetwork reports whether the block is scoped to a network.
func (b *NetworkBlock) HasNetwork() bool {
	return b.NetworkID != nil && *b.NetworkID != ""
}

// Network is a ledger network a block can belong to.
type Network struct {
	ID          string
	DisplayName string
}
