package http

import (
	"context"

	"wardrobe-rental-backend/internal/domain"
	"wardrobe-rental-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, userID string, input service.CreateRentalInput) (*domain.Rental, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ChangeStatus(ctx context.Context, rentalID string, newStatus domain.RentalStatus) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, newStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ReturnRental(ctx context.Context, rentalID string, input service.ReturnRentalInput) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) DeleteRental(ctx context.Context, rentalID string) error {
	args := m.Called(ctx, rentalID)
	return args.Error(0)
}
func (m *MockRentalService) GetRental(ctx context.Context, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListRentals(ctx context.Context, page, pageSize int) ([]domain.Rental, int, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Int(1), args.Error(2)
}
func (m *MockRentalService) CustomerRentals(ctx context.Context, customerID string) ([]domain.Rental, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockInventoryService
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) AddItem(ctx context.Context, input service.NewItemInput) (*domain.ClothingItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClothingItem), args.Error(1)
}
func (m *MockInventoryService) GetItem(ctx context.Context, id string) (*domain.ClothingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClothingItem), args.Error(1)
}
func (m *MockInventoryService) UpdateItem(ctx context.Context, item *domain.ClothingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockInventoryService) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockInventoryService) ListItems(ctx context.Context, onlyAvailable bool, page, pageSize int) ([]domain.ClothingItem, int, error) {
	args := m.Called(ctx, onlyAvailable, page, pageSize)
	return args.Get(0).([]domain.ClothingItem), args.Int(1), args.Error(2)
}
