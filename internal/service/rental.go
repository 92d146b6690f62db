package service

import (
	"context"
	"errors"
	"fmt"

	"wardrobe-rental-backend/internal/domain"
	"wardrobe-rental-backend/internal/repository"
	"wardrobe-rental-backend/internal/utils"
)

var (
	ErrMissingCustomer       = errors.New("a customer selection or a new customer payload is required")
	ErrMissingCustomerFields = errors.New("name, email and phone are required for a new customer")
	ErrMissingItem           = errors.New("a main clothing item is required")
	ErrMissingDates          = errors.New("start and end dates are required")
	ErrInvalidLineItemPrice  = errors.New("line item price must be greater than zero")
	ErrNegativeTotal         = errors.New("total price must not be negative")
	ErrNegativeFees          = errors.New("additional fees must not be negative")
	ErrInvalidStatus         = errors.New("unknown rental status")
	ErrInvalidCondition      = errors.New("unknown return condition")
	ErrNotAuthenticated      = errors.New("an authenticated user is required")
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	itemRepo     repository.ClothingItemRepository
	customerRepo repository.CustomerRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	itemRepo repository.ClothingItemRepository,
	customerRepo repository.CustomerRepository,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, userID string, input CreateRentalInput) (*domain.Rental, error) {
	// All validation happens before the first write.
	if input.ClothingItemID == "" {
		return nil, ErrMissingItem
	}
	if input.StartDate == "" || input.EndDate == "" {
		return nil, ErrMissingDates
	}
	start, err := utils.ParseDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDate(input.EndDate)
	if err != nil {
		return nil, err
	}
	if input.CustomerID == "" && input.NewCustomer == nil {
		return nil, ErrMissingCustomer
	}
	if input.NewCustomer != nil {
		nc := input.NewCustomer
		if nc.Name == "" || nc.Email == "" || nc.Phone == "" {
			return nil, ErrMissingCustomerFields
		}
		if userID == "" {
			return nil, ErrNotAuthenticated
		}
	}
	for i, li := range input.LineItems {
		if li.ClothingItemID == "" {
			return nil, fmt.Errorf("line item %d: %w", i+1, ErrMissingItem)
		}
		if li.Price <= 0 {
			return nil, fmt.Errorf("line item %d: %w", i+1, ErrInvalidLineItemPrice)
		}
	}
	if input.ManualTotal != nil && *input.ManualTotal < 0 {
		return nil, ErrNegativeTotal
	}

	customerID := input.CustomerID
	if input.NewCustomer != nil {
		customer := &domain.Customer{
			Name:    input.NewCustomer.Name,
			Email:   input.NewCustomer.Email,
			Phone:   input.NewCustomer.Phone,
			Address: input.NewCustomer.Address,
			UserID:  userID,
		}
		if err := s.customerRepo.Create(ctx, customer); err != nil {
			return nil, err
		}
		customerID = customer.ID
	}

	mainItem, err := s.itemRepo.GetByID(ctx, input.ClothingItemID)
	if err != nil {
		return nil, err
	}

	days := utils.RentalDays(start, end)
	var lineSubtotal float64
	for _, li := range input.LineItems {
		lineSubtotal += li.Price
	}
	total := utils.ComputeRentalTotal(mainItem.RentalPrice, days, lineSubtotal, input.Discount)
	if input.ManualTotal != nil {
		total = *input.ManualTotal
	}

	rental := &domain.Rental{
		CustomerID:     customerID,
		ClothingItemID: input.ClothingItemID,
		StartDate:      start,
		EndDate:        end,
		Status:         domain.InitialStatus(input.NeedsAdjustment, input.CustomOrder),
		TotalPrice:     total,
		Notes:          input.Notes,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	items := make([]domain.RentalItem, len(input.LineItems))
	for i, li := range input.LineItems {
		items[i] = domain.RentalItem{
			ClothingItemID: li.ClothingItemID,
			Price:          li.Price,
			Notes:          li.Notes,
		}
	}
	if err := s.rentalRepo.CreateItems(ctx, rental.ID, items); err != nil {
		return nil, fmt.Errorf("partial failure after rental creation: %w", err)
	}
	rental.Items = items

	// Only a rental that starts out active reserves its garments right away.
	if err := s.cascadeAvailability(ctx, rental, domain.CreationEffect(rental.Status)); err != nil {
		return nil, fmt.Errorf("partial failure after rental creation: %w", err)
	}
	return rental, nil
}

func (s *rentalService) ChangeStatus(ctx context.Context, rentalID string, newStatus domain.RentalStatus) (*domain.Rental, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if err := s.rentalRepo.UpdateStatus(ctx, rentalID, newStatus); err != nil {
		return nil, err
	}
	rental.Status = newStatus

	if err := s.cascadeAvailability(ctx, rental, domain.TransitionEffect(newStatus)); err != nil {
		return nil, fmt.Errorf("partial failure after status update: %w", err)
	}
	return rental, nil
}

func (s *rentalService) ReturnRental(ctx context.Context, rentalID string, input ReturnRentalInput) (*domain.Rental, error) {
	if !domain.ValidReturnCondition(input.Condition) {
		return nil, ErrInvalidCondition
	}
	if input.AdditionalFees < 0 {
		return nil, ErrNegativeFees
	}
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	rental.Status = domain.RentalStatusCompleted
	rental.ReturnCondition = &input.Condition
	rental.ReturnNotes = input.Notes
	rental.AdditionalFees = input.AdditionalFees
	rental.TotalPrice += input.AdditionalFees
	if err := s.rentalRepo.UpdateOnReturn(ctx, rental); err != nil {
		return nil, err
	}

	if err := s.cascadeAvailability(ctx, rental, domain.TransitionEffect(rental.Status)); err != nil {
		return nil, fmt.Errorf("partial failure after status update: %w", err)
	}
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, rentalID string) error {
	// Deliberately no availability cascade here; see the repository note.
	return s.rentalRepo.Delete(ctx, rentalID)
}

func (s *rentalService) GetRental(ctx context.Context, rentalID string) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) ListRentals(ctx context.Context, page, pageSize int) ([]domain.Rental, int, error) {
	return s.rentalRepo.ListWithRelations(ctx, page, pageSize)
}

func (s *rentalService) CustomerRentals(ctx context.Context, customerID string) ([]domain.Rental, error) {
	return s.rentalRepo.ListByCustomer(ctx, customerID)
}

// cascadeAvailability applies one availability effect to the rental's main
// item and every line item. Re-applying the same value is harmless, so a
// retried operation simply repeats the cascade. Errors abort mid-cascade
// without rollback; the caller wraps them so operators can reconcile.
func (s *rentalService) cascadeAvailability(ctx context.Context, rental *domain.Rental, effect domain.AvailabilityEffect) error {
	if effect == domain.AvailabilityUnchanged {
		return nil
	}
	available := effect == domain.MarkItemsAvailable
	for _, id := range rental.ItemIDs() {
		if err := s.itemRepo.UpdateAvailability(ctx, id, available); err != nil {
			return fmt.Errorf("updating availability of item %s: %w", id, err)
		}
	}
	return nil
}
