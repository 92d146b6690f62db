package domain

import "time"

type ItemCondition string

const (
	ItemConditionExcellent ItemCondition = "Excellent"
	ItemConditionGood      ItemCondition = "Good"
	ItemConditionFair      ItemCondition = "Fair"
	ItemConditionPoor      ItemCondition = "Poor"
)

// ClothingItem is a single garment in the rental inventory. RentalPrice is
// the daily rate in currency units. Available is maintained by the rental
// lifecycle cascades, not by a database constraint.
type ClothingItem struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Size        string        `json:"size"`
	Category    string        `json:"category"`
	Condition   ItemCondition `json:"condition"`
	RentalPrice float64       `json:"rental_price"`
	Available   bool          `json:"available"`
	ImageURL    *string       `json:"image_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
