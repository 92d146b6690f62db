package domain

// AvailabilityEffect is what a status transition does to the availability
// of every clothing item referenced by a rental (main item and line items).
type AvailabilityEffect int

const (
	// AvailabilityUnchanged leaves item availability alone.
	AvailabilityUnchanged AvailabilityEffect = iota
	// MarkItemsUnavailable sets available=false on all referenced items.
	MarkItemsUnavailable
	// MarkItemsAvailable sets available=true on all referenced items.
	MarkItemsAvailable
)

// TransitionEffect returns the availability cascade for a transition into
// newStatus. Only two statuses carry a cascade: ready takes the garments
// off the shelf, completed puts them back. Every other status, including
// cancelled, leaves availability untouched.
func TransitionEffect(newStatus RentalStatus) AvailabilityEffect {
	switch newStatus {
	case RentalStatusReady:
		return MarkItemsUnavailable
	case RentalStatusCompleted:
		return MarkItemsAvailable
	default:
		return AvailabilityUnchanged
	}
}

// CreationEffect returns the availability cascade applied right after a
// rental is created with the given initial status. This is deliberately
// asymmetric with TransitionEffect: only an active creation reserves the
// garments; pending_creation and pending_adjustment orders do not touch
// availability until they are later moved to ready.
func CreationEffect(initial RentalStatus) AvailabilityEffect {
	if initial == RentalStatusActive {
		return MarkItemsUnavailable
	}
	return AvailabilityUnchanged
}

// InitialStatus determines the status a new rental starts in. The two
// flags are mutually exclusive; customOrder wins if both are set, matching
// the order the creation form resolves them in.
func InitialStatus(needsAdjustment, customOrder bool) RentalStatus {
	switch {
	case customOrder:
		return RentalStatusPendingCreation
	case needsAdjustment:
		return RentalStatusPendingAdjustment
	default:
		return RentalStatusActive
	}
}
