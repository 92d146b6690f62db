package service

import (
	"context"
	"errors"

	"wardrobe-rental-backend/internal/domain"
	"wardrobe-rental-backend/internal/repository"
)

var (
	ErrInvalidRentalPrice = errors.New("rental price must be greater than zero")
	ErrMissingItemFields  = errors.New("name, size, category and condition are required")
	ErrUnknownCondition   = errors.New("unknown item condition")
)

type inventoryService struct {
	itemRepo repository.ClothingItemRepository
}

func NewInventoryService(itemRepo repository.ClothingItemRepository) InventoryService {
	return &inventoryService{itemRepo: itemRepo}
}

func validCondition(c domain.ItemCondition) bool {
	switch c {
	case domain.ItemConditionExcellent, domain.ItemConditionGood,
		domain.ItemConditionFair, domain.ItemConditionPoor:
		return true
	}
	return false
}

func (s *inventoryService) AddItem(ctx context.Context, input NewItemInput) (*domain.ClothingItem, error) {
	if input.Name == "" || input.Size == "" || input.Category == "" || input.Condition == "" {
		return nil, ErrMissingItemFields
	}
	if !validCondition(input.Condition) {
		return nil, ErrUnknownCondition
	}
	if input.RentalPrice <= 0 {
		return nil, ErrInvalidRentalPrice
	}

	item := &domain.ClothingItem{
		Name:        input.Name,
		Description: input.Description,
		Size:        input.Size,
		Category:    input.Category,
		Condition:   input.Condition,
		RentalPrice: input.RentalPrice,
		Available:   true,
		ImageURL:    input.ImageURL,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (*domain.ClothingItem, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *inventoryService) UpdateItem(ctx context.Context, item *domain.ClothingItem) error {
	if item.RentalPrice <= 0 {
		return ErrInvalidRentalPrice
	}
	if !validCondition(item.Condition) {
		return ErrUnknownCondition
	}
	return s.itemRepo.Update(ctx, item)
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	return s.itemRepo.Delete(ctx, id)
}

func (s *inventoryService) ListItems(ctx context.Context, onlyAvailable bool, page, pageSize int) ([]domain.ClothingItem, int, error) {
	return s.itemRepo.List(ctx, onlyAvailable, page, pageSize)
}
