package repository

import (
	"context"
	"time"

	"wardrobe-rental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type ClothingItemRepository interface {
	Create(ctx context.Context, item *domain.ClothingItem) error
	GetByID(ctx context.Context, id string) (*domain.ClothingItem, error)
	Update(ctx context.Context, item *domain.ClothingItem) error
	UpdateAvailability(ctx context.Context, id string, available bool) error
	// Delete is unconditional; historical rentals may still reference the item.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, onlyAvailable bool, page, pageSize int) ([]domain.ClothingItem, int, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, pageSize int) ([]domain.Customer, int, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	// GetByID loads the rental together with its line items.
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	CreateItems(ctx context.Context, rentalID string, items []domain.RentalItem) error
	UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error
	UpdateOnReturn(ctx context.Context, rental *domain.Rental) error
	// Delete removes the rental and, by cascade, its line items. It does not
	// touch clothing item availability.
	Delete(ctx context.Context, id string) error
	// ListWithRelations returns rentals newest first with customer, main
	// item, and line items populated, plus the total row count.
	ListWithRelations(ctx context.Context, page, pageSize int) ([]domain.Rental, int, error)
	// ListByCustomer returns a customer's rentals newest first, with line
	// items populated.
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Rental, error)
	// ListDue returns rentals whose end date is on or before the cutoff and
	// that are still in an open status (active or ready).
	ListDue(ctx context.Context, cutoff time.Time) ([]domain.Rental, error)
}

type StatsRepository interface {
	CountRentalsByStatus(ctx context.Context, status domain.RentalStatus) (int, error)
	CountClothingItems(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	CountRentalsCreatedSince(ctx context.Context, since time.Time) (int, error)
	MonthlyRevenue(ctx context.Context, year int) ([]domain.MonthlyRevenue, error)
	TopCustomers(ctx context.Context, limit int) ([]domain.TopCustomer, error)
}
