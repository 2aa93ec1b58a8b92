package usecase

import "github.com/iho/blockview/internal/domain"

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) BlockProjected(domain.Status, int) {}
func (NopObserver) BlocksRecorded(int)                {}
func (NopObserver) HoldingAccountRegistered()         {}
func (NopObserver) OwnershipCacheLookup(bool)         {}
