package domain

// Perspective is the role the viewer plays in a block.
type Perspective string

const (
	PerspectiveSender   Perspective = "sender"
	PerspectiveReceiver Perspective = "receiver"
)

// Status is the display-facing classification of a block.
type Status string

const (
	StatusSent     Status = "sent"
	StatusReceived Status = "received"
)

// ResolvePerspective decides whether the viewer sent or received block.
//
// The viewer's own account always counts as a sender identity. When the block
// belongs to a network, every holding account registered for that network counts
// as well. A match on any of them makes the viewer the sender; there is no
// precedence between identity sources.
func ResolvePerspective(block NetworkBlock, ownership AccountOwnership) Perspective {
	candidates := []string{ownership.SelfAccountNumber}

	if block.HasNetwork() {
		candidates = append(candidates, ownership.HoldingAccountNumbers(*block.NetworkID)...)
	}

	for _, accountNumber := range candidates {
		if accountNumber != "" && accountNumber == block.Sender {
			return PerspectiveSender
		}
	}

	return PerspectiveReceiver
}

// StatusFor maps a perspective to its status.
func StatusFor(p Perspective) Status {
	if p == PerspectiveReceiver {
		return StatusReceived
	}
	return StatusSent
}
