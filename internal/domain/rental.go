package domain

import "time"

type RentalStatus string

const (
	RentalStatusPendingCreation   RentalStatus = "pending_creation"
	RentalStatusPendingAdjustment RentalStatus = "pending_adjustment"
	RentalStatusActive            RentalStatus = "active"
	RentalStatusReady             RentalStatus = "ready"
	RentalStatusCompleted         RentalStatus = "completed"
	RentalStatusCancelled         RentalStatus = "cancelled"
)

// ValidStatus reports whether s is one of the six rental statuses. Any
// status may follow any other; there is no transition graph beyond the
// availability cascades in TransitionEffect.
func ValidStatus(s RentalStatus) bool {
	switch s {
	case RentalStatusPendingCreation, RentalStatusPendingAdjustment,
		RentalStatusActive, RentalStatusReady,
		RentalStatusCompleted, RentalStatusCancelled:
		return true
	}
	return false
}

type ReturnCondition string

const (
	ReturnConditionExcellent       ReturnCondition = "excellent"
	ReturnConditionGood            ReturnCondition = "good"
	ReturnConditionFair            ReturnCondition = "fair"
	ReturnConditionDamaged         ReturnCondition = "damaged"
	ReturnConditionSeverelyDamaged ReturnCondition = "severely_damaged"
)

func ValidReturnCondition(c ReturnCondition) bool {
	switch c {
	case ReturnConditionExcellent, ReturnConditionGood, ReturnConditionFair,
		ReturnConditionDamaged, ReturnConditionSeverelyDamaged:
		return true
	}
	return false
}

// Rental ties a customer to one mandatory main item plus zero or more line
// items. TotalPrice is the computed (or operator-overridden) total at
// creation time; after a return it additionally carries AdditionalFees.
type Rental struct {
	ID              string           `json:"id"`
	CustomerID      string           `json:"customer_id"`
	ClothingItemID  string           `json:"clothing_item_id"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	Status          RentalStatus     `json:"status"`
	TotalPrice      float64          `json:"total_price"`
	Notes           string           `json:"notes,omitempty"`
	ReturnCondition *ReturnCondition `json:"return_condition,omitempty"`
	ReturnNotes     *string          `json:"return_notes,omitempty"`
	AdditionalFees  float64          `json:"additional_fees"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	// Populated when fetching rentals with relations.
	Customer     *Customer     `json:"customer,omitempty"`
	ClothingItem *ClothingItem `json:"clothing_item,omitempty"`
	Items        []RentalItem  `json:"rental_items,omitempty"`
}

// RentalItem is an additional garment attached to a rental beyond the main
// item. Price is a flat amount set by the operator, not derived from the
// item's daily rate.
type RentalItem struct {
	ID             string    `json:"id"`
	RentalID       string    `json:"rental_id"`
	ClothingItemID string    `json:"clothing_item_id"`
	Price          float64   `json:"price"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	ClothingItem *ClothingItem `json:"clothing_item,omitempty"`
}

// ItemIDs returns the main item id followed by every line-item id. This is
// the set of items an availability cascade touches.
func (r *Rental) ItemIDs() []string {
	ids := make([]string, 0, 1+len(r.Items))
	ids = append(ids, r.ClothingItemID)
	for _, it := range r.Items {
		ids = append(ids, it.ClothingItemID)
	}
	return ids
}
