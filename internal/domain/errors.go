package domain

import "errors"

var (
	// Block errors
	ErrBlockNotFound    = errors.New("block not found")
	ErrBlockExists      = errors.New("block already recorded")
	ErrInvalidAmount    = errors.New("amount must not be negative")
	ErrInvalidFee       = errors.New("transaction fee must not be negative")
	ErrMissingSender    = errors.New("sender is required")
	ErrMissingRecipient = errors.New("recipient is required")
	ErrValueTooLong     = errors.New("value too long")
	ErrAmountOutOfRange = errors.New("amount out of range")

	// Ownership errors
	ErrMissingViewer          = errors.New("viewer account number is required")
	ErrMissingAccountNumber   = errors.New("account number is required")
	ErrHoldingAccountNotFound = errors.New("holding account not found")
	ErrHoldingAccountExists   = errors.New("holding account already registered")
	ErrMissingNetwork         = errors.New("network ID is required")

	// Network errors
	ErrNetworkNotFound    = errors.New("network not found")
	ErrInvalidNetworkName = errors.New("network display name is required")
)
