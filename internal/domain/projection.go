package domain

import (
	"time"
)

// ColorToken is an opaque color selector consumed by the presentation layer.
type ColorToken string

// IconToken is an opaque icon selector consumed by the presentation layer.
type IconToken string

const (
	ColorPositive ColorToken = "positive"
	ColorNeutral  ColorToken = "neutral"

	IconArrowDown IconToken = "arrow-down-circle-outline"
	IconArrowUp   IconToken = "arrow-up-circle-outline"
)

// Summary is the one-line view of a block.
type Summary struct {
	Sign          string     `json:"sign"`
	DisplayAmount string     `json:"display_amount"`
	Color         ColorToken `json:"color"`
	Icon          IconToken  `json:"icon"`
}

// DetailRow is one labelled field of the expanded block view.
type DetailRow struct {
	Value       any    `json:"value"`
	Label       string `json:"label"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// BlockView is everything the presentation layer needs to render a block.
type BlockView struct {
	Date        time.Time   `json:"date"`
	NetworkID   *string     `json:"network_id,omitempty"`
	ID          string      `json:"id"`
	Perspective Perspective `json:"perspective"`
	Status      Status      `json:"status"`
	Action      string      `json:"action"`
	Summary     Summary     `json:"summary"`
	Details     []DetailRow `json:"details,omitempty"`
}

type presentation struct {
	sign   string
	action string
	color  ColorToken
	icon   IconToken
}

// presentationFor is the only place a status maps to display tokens.
// Unknown values render as sent, matching StatusFor.
func presentationFor(status Status) presentation {
	switch status {
	case StatusReceived:
		return presentation{sign: "+", action: "Received", color: ColorPositive, icon: IconArrowDown}
	case StatusSent:
		return presentation{sign: "-", action: "Sent", color: ColorNeutral, icon: IconArrowUp}
	default:
		return presentationFor(StatusSent)
	}
}

// ProjectSummary builds the signed amount and status tokens for block.
func ProjectSummary(block NetworkBlock, status Status) Summary {
	p := presentationFor(status)

	return Summary{
		Sign:          p.sign,
		DisplayAmount: p.sign + block.Amount.String(),
		Color:         p.color,
		Icon:          p.icon,
	}
}

// ActionLabel returns e.g. "Sent Bank Network". An empty network name yields
// just the verb.
func ActionLabel(status Status, networkDisplayName string) string {
	action := presentationFor(status).action
	if networkDisplayName == "" {
		return action
	}
	return action + " " + networkDisplayName
}

type field struct {
	name  string
	value any
}

// ProjectDetails returns the labelled detail rows for block in fixed order.
// The date is left out since the summary already shows it. A payload the
// formatter cannot render is replaced with PayloadPlaceholder.
func ProjectDetails(block NetworkBlock, formatter PayloadFormatter) []DetailRow {
	if formatter == nil {
		formatter = IndentedJSONFormatter{}
	}

	ordered := []field{
		{FieldID, block.ID},
		{FieldAmount, block.Amount},
		{FieldTransactionFee, block.TransactionFee},
		{FieldSender, block.Sender},
		{FieldRecipient, block.Recipient},
		{FieldSignature, block.Signature},
		{FieldPayload, block.Payload},
		{FieldDate, block.Date},
	}

	rows := make([]DetailRow, 0, len(ordered)-1)
	for _, f := range ordered {
		if f.name == FieldDate {
			continue
		}

		row := DetailRow{Label: FieldLabel(f.name), Value: f.value}
		if f.name == FieldPayload {
			row.Value, row.Placeholder = formatPayload(formatter, f.value)
		}
		rows = append(rows, row)
	}

	return rows
}

func formatPayload(formatter PayloadFormatter, payload any) (rendered string, placeholder bool) {
	defer func() {
		if recover() != nil {
			rendered, placeholder = PayloadPlaceholder, true
		}
	}()

	out, err := formatter.FormatPayload(payload)
	if err != nil {
		return PayloadPlaceholder, true
	}
	return out, false
}

// ProjectBlock resolves the viewer's perspective on block and projects it.
// Details are only built when expanded is set.
func ProjectBlock(block NetworkBlock, ownership AccountOwnership, networkDisplayName string, formatter PayloadFormatter, expanded bool) BlockView {
	perspective := ResolvePerspective(block, ownership)
	status := StatusFor(perspective)

	view := BlockView{
		ID:          block.ID,
		NetworkID:   block.NetworkID,
		Date:        block.Date,
		Perspective: perspective,
		Status:      status,
		Action:      ActionLabel(status, networkDisplayName),
		Summary:     ProjectSummary(block, status),
	}

	if expanded {
		view.Details = ProjectDetails(block, formatter)
	}

	return view
}

// PlaceholderCount reports how many rows fell back to a placeholder.
func PlaceholderCount(rows []DetailRow) int {
	n := 0
	for _, r := range rows {
		if r.Placeholder {
			n++
		}
	}
	return n
}
