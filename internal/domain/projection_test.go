package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBlock() NetworkBlock {
	return NetworkBlock{
		ID:             "b1",
		Amount:         decimal.RequireFromString("10.25"),
		TransactionFee: decimal.NewFromInt(1),
		Sender:         "acct-self",
		Recipient:      "acct-x",
		Signature:      "sig",
		Payload:        map[string]any{"a": 1},
		Date:           time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		NetworkID:      strPtr("net-a"),
	}
}

func TestProjectSummary(t *testing.T) {
	block := sampleBlock()

	sent := ProjectSummary(block, StatusSent)
	assert.Equal(t, Summary{Sign: "-", DisplayAmount: "-10.25", Color: ColorNeutral, Icon: IconArrowUp}, sent)

	received := ProjectSummary(block, StatusReceived)
	assert.Equal(t, Summary{Sign: "+", DisplayAmount: "+10.25", Color: ColorPositive, Icon: IconArrowDown}, received)

	assert.True(t, block.Amount.Equal(decimal.RequireFromString("10.25")), "amount must not be mutated")
}

func TestProjectSummary_ZeroAmount(t *testing.T) {
	block := NetworkBlock{}
	assert.Equal(t, "+0", ProjectSummary(block, StatusReceived).DisplayAmount)
}

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "Sent Bank", ActionLabel(StatusSent, "Bank"))
	assert.Equal(t, "Received Bank", ActionLabel(StatusReceived, "Bank"))
	assert.Equal(t, "Received", ActionLabel(StatusReceived, ""))
}

func TestProjectDetails_OrderAndLabels(t *testing.T) {
	rows := ProjectDetails(sampleBlock(), IndentedJSONFormatter{})

	require.Len(t, rows, 7)

	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{
		"Block ID",
		"Amount",
		"Transaction Fee",
		"Sender",
		"Recipient",
		"Signature",
		"Payload",
	}, labels)

	for _, r := range rows {
		assert.NotEqual(t, "Date", r.Label)
	}
}

func TestProjectDetails_PassThroughValues(t *testing.T) {
	block := sampleBlock()
	rows := ProjectDetails(block, nil)

	assert.Equal(t, "b1", rows[0].Value)
	assert.Equal(t, block.Amount, rows[1].Value)
	assert.Equal(t, block.TransactionFee, rows[2].Value)
	assert.Equal(t, "acct-self", rows[3].Value)
	assert.Equal(t, "acct-x", rows[4].Value)
	assert.Equal(t, "sig", rows[5].Value)
}

func TestProjectDetails_PayloadIndented(t *testing.T) {
	rows := ProjectDetails(sampleBlock(), IndentedJSONFormatter{})
	payload := rows[6]

	assert.Equal(t, "{\n    \"a\": 1\n}", payload.Value)
	assert.False(t, payload.Placeholder)
}

func TestProjectDetails_PayloadKeepsHTMLCharacters(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{"map", map[string]any{"note": "a<b & c>"}},
		{"raw json", json.RawMessage(`{"note":"a<b & c>"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := sampleBlock()
			block.Payload = tt.payload

			rows := ProjectDetails(block, nil)

			assert.Equal(t, "{\n    \"note\": \"a<b & c>\"\n}", rows[6].Value)
			assert.False(t, rows[6].Placeholder)
		})
	}
}

type failingFormatter struct{}

func (failingFormatter) FormatPayload(any) (string, error) { return "", errors.New("boom") }

type panickingFormatter struct{}

func (panickingFormatter) FormatPayload(any) (string, error) { panic("renderer bug") }

func TestProjectDetails_PayloadPlaceholder(t *testing.T) {
	tests := []struct {
		name      string
		payload   any
		formatter PayloadFormatter
	}{
		{name: "nil payload", payload: nil, formatter: IndentedJSONFormatter{}},
		{name: "unserialisable payload", payload: map[string]any{"ch": make(chan int)}, formatter: IndentedJSONFormatter{}},
		{name: "formatter error", payload: map[string]any{"a": 1}, formatter: failingFormatter{}},
		{name: "formatter panic", payload: map[string]any{"a": 1}, formatter: panickingFormatter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := sampleBlock()
			block.Payload = tt.payload

			rows := ProjectDetails(block, tt.formatter)

			require.Len(t, rows, 7)
			assert.Equal(t, PayloadPlaceholder, rows[6].Value)
			assert.True(t, rows[6].Placeholder)
			assert.Equal(t, 1, PlaceholderCount(rows))
			assert.Equal(t, "sig", rows[5].Value, "other rows are unaffected")
		})
	}
}

func TestProjectBlock(t *testing.T) {
	block := sampleBlock()
	block.Sender, block.Recipient = "acct-x", "hold-a1"

	collapsed := ProjectBlock(block, testOwnership(), "Bank", nil, false)
	assert.Equal(t, PerspectiveReceiver, collapsed.Perspective)
	assert.Equal(t, StatusReceived, collapsed.Status)
	assert.Equal(t, "Received Bank", collapsed.Action)
	assert.Equal(t, "+10.25", collapsed.Summary.DisplayAmount)
	assert.Equal(t, block.Date, collapsed.Date)
	assert.Nil(t, collapsed.Details)

	expanded := ProjectBlock(block, testOwnership(), "Bank", nil, true)
	assert.Len(t, expanded.Details, 7)
}
