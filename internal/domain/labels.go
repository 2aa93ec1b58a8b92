package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Block field identifiers in detail order.
const (
	FieldID             = "id"
	FieldAmount         = "amount"
	FieldTransactionFee = "transaction_fee"
	FieldSender         = "sender"
	FieldRecipient      = "recipient"
	FieldSignature      = "signature"
	FieldPayload        = "payload"
	FieldDate           = "date"
)

var labelOverrides = map[string]string{
	FieldID:             "Block ID",
	FieldTransactionFee: "Transaction Fee",
}

// FieldLabel returns the human-readable label for a block field.
func FieldLabel(field string) string {
	if label, ok := labelOverrides[field]; ok {
		return label
	}
	return IdentifierToTitle(field)
}

// IdentifierToTitle turns snake_case or camelCase identifiers into title case,
// e.g. "transactionFee" and "transaction_fee" both become "Transaction Fee".
func IdentifierToTitle(identifier string) string {
	var b strings.Builder
	prevLower := false

	for _, r := range identifier {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			b.WriteRune(' ')
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}

	words := strings.Fields(b.String())

	// Casers keep state, so each call gets its own.
	return cases.Title(language.English).String(strings.Join(words, " "))
}
