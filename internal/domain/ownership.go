package domain

import "time"

// HoldingAccount is an account the owner controls by delegation on one network.
type HoldingAccount struct {
	CreatedAt          time.Time
	ID                 string
	OwnerAccountNumber string
	NetworkID          string
	AccountNumber      string
}

// AccountOwnership is a read-only snapshot of every identity a viewer owns.
type AccountOwnership struct {
	HoldingAccounts   map[string][]HoldingAccount `json:"holding_accounts"`
	SelfAccountNumber string                      `json:"self_account_number"`
}

// NewAccountOwnership groups holding accounts by network.
func NewAccountOwnership(self string, holdingAccounts []HoldingAccount) AccountOwnership {
	grouped := make(map[string][]HoldingAccount)
	for _, ha := range holdingAccounts {
		grouped[ha.NetworkID] = append(grouped[ha.NetworkID], ha)
	}

	return AccountOwnership{
		SelfAccountNumber: self,
		HoldingAccounts:   grouped,
	}
}

// HoldingAccountNumbers returns the account numbers held on networkID.
// A network with no entry yields an empty slice.
func (o AccountOwnership) HoldingAccountNumbers(networkID string) []string {
	accounts := o.HoldingAccounts[networkID]
	if len(accounts) == 0 {
		return nil
	}

	numbers := make([]string, 0, len(accounts))
	for _, ha := range accounts {
		numbers = append(numbers, ha.AccountNumber)
	}
	return numbers
}

// AccountNumbers returns the self account followed by every holding account on
// every network. Used to select blocks a viewer took part in.
func (o AccountOwnership) AccountNumbers() []string {
	numbers := []string{o.SelfAccountNumber}
	seen := map[string]bool{o.SelfAccountNumber: true}

	for _, accounts := range o.HoldingAccounts {
		for _, ha := range accounts {
			if ha.AccountNumber == "" || seen[ha.AccountNumber] {
				continue
			}
			seen[ha.AccountNumber] = true
			numbers = append(numbers, ha.AccountNumber)
		}
	}
	return numbers
}
