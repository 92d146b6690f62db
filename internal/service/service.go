package service

import (
	"context"

	"wardrobe-rental-backend/internal/domain"
)

// NewCustomerInput is the payload for creating a customer inline during
// rental creation, or through the customer endpoints.
type NewCustomerInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address *string `json:"address,omitempty"`
}

// LineItemInput is an additional garment attached to a new rental. Price is
// a flat amount entered by the operator.
type LineItemInput struct {
	ClothingItemID string  `json:"clothing_item_id"`
	Price          float64 `json:"price"`
	Notes          *string `json:"notes,omitempty"`
}

// CreateRentalInput carries everything the rental creation workflow needs.
// Exactly one of CustomerID or NewCustomer must be set. ManualTotal, when
// non-nil, replaces the computed total verbatim.
type CreateRentalInput struct {
	CustomerID      string            `json:"customer_id,omitempty"`
	NewCustomer     *NewCustomerInput `json:"new_customer,omitempty"`
	ClothingItemID  string            `json:"clothing_item_id"`
	LineItems       []LineItemInput   `json:"line_items,omitempty"`
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
	Notes           string            `json:"notes,omitempty"`
	Discount        float64           `json:"discount,omitempty"`
	ManualTotal     *float64          `json:"manual_total,omitempty"`
	NeedsAdjustment bool              `json:"needs_adjustment,omitempty"`
	CustomOrder     bool              `json:"custom_order,omitempty"`
}

// ReturnRentalInput carries the return workflow bookkeeping.
type ReturnRentalInput struct {
	Condition      domain.ReturnCondition `json:"return_condition"`
	Notes          *string                `json:"return_notes,omitempty"`
	AdditionalFees float64                `json:"additional_fees,omitempty"`
}

type RentalService interface {
	// CreateRental runs the full creation workflow: optional inline customer
	// creation (stamped with userID as owner), pricing, initial status, line
	// items, and the availability cascade for active rentals.
	CreateRental(ctx context.Context, userID string, input CreateRentalInput) (*domain.Rental, error)
	// ChangeStatus persists the new status and applies the availability
	// cascade for transitions into ready or completed.
	ChangeStatus(ctx context.Context, rentalID string, newStatus domain.RentalStatus) (*domain.Rental, error)
	// ReturnRental completes a rental with return condition, notes, and
	// additional fees folded into the total.
	ReturnRental(ctx context.Context, rentalID string, input ReturnRentalInput) (*domain.Rental, error)
	// DeleteRental removes the rental and its line items. It does not
	// restore item availability.
	DeleteRental(ctx context.Context, rentalID string) error
	GetRental(ctx context.Context, rentalID string) (*domain.Rental, error)
	ListRentals(ctx context.Context, page, pageSize int) ([]domain.Rental, int, error)
	// CustomerRentals returns a customer's rental history, newest first.
	CustomerRentals(ctx context.Context, customerID string) ([]domain.Rental, error)
}

type NewItemInput struct {
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Size        string               `json:"size"`
	Category    string               `json:"category"`
	Condition   domain.ItemCondition `json:"condition"`
	RentalPrice float64              `json:"rental_price"`
	ImageURL    *string              `json:"image_url,omitempty"`
}

type InventoryService interface {
	AddItem(ctx context.Context, input NewItemInput) (*domain.ClothingItem, error)
	GetItem(ctx context.Context, id string) (*domain.ClothingItem, error)
	UpdateItem(ctx context.Context, item *domain.ClothingItem) error
	// DeleteItem is unconditional even if historical rentals reference the item.
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context, onlyAvailable bool, page, pageSize int) ([]domain.ClothingItem, int, error)
}

type CustomerService interface {
	AddCustomer(ctx context.Context, userID string, input NewCustomerInput) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context, page, pageSize int) ([]domain.Customer, int, error)
}

type StatsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	MonthlyRevenue(ctx context.Context, year int) ([]domain.MonthlyRevenue, error)
	TopCustomers(ctx context.Context, limit int) ([]domain.TopCustomer, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type EmailService interface {
	SendPasswordReset(ctx context.Context, email, name, token string) error
	SendDueRentalsDigest(ctx context.Context, email string, rentals []domain.Rental) error
}
