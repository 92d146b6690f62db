package service

import (
	"context"

	"wardrobe-rental-backend/internal/domain"
	"wardrobe-rental-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) AddCustomer(ctx context.Context, userID string, input NewCustomerInput) (*domain.Customer, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" {
		return nil, ErrMissingCustomerFields
	}
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	customer := &domain.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		UserID:  userID,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.Name == "" || customer.Email == "" || customer.Phone == "" {
		return ErrMissingCustomerFields
	}
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, page, pageSize int) ([]domain.Customer, int, error) {
	return s.customerRepo.List(ctx, page, pageSize)
}
