package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxAccountNumberLength = 128
	MaxSignatureLength     = 1024

	// Amounts are stored as NUMERIC(38, 18).
	MaxAmountScale         = 18
	MaxAmountIntegerDigits = 20
)

var maxAmount = decimal.New(1, MaxAmountIntegerDigits)

// ValidateAmountRange rejects values the amount columns cannot hold exactly.
func ValidateAmountRange(d decimal.Decimal) error {
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: more than %d integer digits", ErrAmountOutOfRange, MaxAmountIntegerDigits)
	}
	if !d.Equal(d.Truncate(MaxAmountScale)) {
		return fmt.Errorf("%w: more than %d decimal places", ErrAmountOutOfRange, MaxAmountScale)
	}
	return nil
}

// Validate checks a block before it is recorded. Projection never calls this;
// it must render whatever made it into storage.
func (b *NetworkBlock) Validate() error {
	if b.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	if b.TransactionFee.IsNegative() {
		return ErrInvalidFee
	}

	if err := ValidateAmountRange(b.Amount); err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	if err := ValidateAmountRange(b.TransactionFee); err != nil {
		return fmt.Errorf("transaction fee: %w", err)
	}

	if strings.TrimSpace(b.Sender) == "" {
		return ErrMissingSender
	}

	if strings.TrimSpace(b.Recipient) == "" {
		return ErrMissingRecipient
	}

	if err := ValidateAccountNumber(b.Sender); err != nil {
		return fmt.Errorf("sender: %w", err)
	}

	if err := ValidateAccountNumber(b.Recipient); err != nil {
		return fmt.Errorf("recipient: %w", err)
	}

	if len(b.Signature) > MaxSignatureLength {
		return fmt.Errorf("%w: signature exceeds %d characters", ErrValueTooLong, MaxSignatureLength)
	}

	return nil
}

// ValidateAccountNumber rejects blank or oversized account numbers.
func ValidateAccountNumber(accountNumber string) error {
	accountNumber = strings.TrimSpace(accountNumber)

	if accountNumber == "" {
		return ErrMissingAccountNumber
	}

	if len(accountNumber) > MaxAccountNumberLength {
		return fmt.Errorf("%w: account number exceeds %d characters", ErrValueTooLong, MaxAccountNumberLength)
	}

	return nil
}

// Validate checks a holding account registration.
func (h *HoldingAccount) Validate() error {
	if err := ValidateAccountNumber(h.OwnerAccountNumber); err != nil {
		return fmt.Errorf("owner: %w", err)
	}

	if strings.TrimSpace(h.NetworkID) == "" {
		return ErrMissingNetwork
	}

	if err := ValidateAccountNumber(h.AccountNumber); err != nil {
		return fmt.Errorf("account: %w", err)
	}

	return nil
}
