package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldLabel(t *testing.T) {
	tests := map[string]string{
		FieldID:             "Block ID",
		FieldTransactionFee: "Transaction Fee",
		FieldAmount:         "Amount",
		FieldSender:         "Sender",
		FieldRecipient:      "Recipient",
		FieldSignature:      "Signature",
		FieldPayload:        "Payload",
	}

	for field, want := range tests {
		assert.Equal(t, want, FieldLabel(field), field)
	}
}

func TestIdentifierToTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sender", "Sender"},
		{"transactionFee", "Transaction Fee"},
		{"network_id", "Network Id"},
		{"balanceV2", "Balance V2"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IdentifierToTitle(tt.in), tt.in)
	}
}
