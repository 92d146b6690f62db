package service

import (
	"context"
	"testing"

	"wardrobe-rental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInventoryService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		itemRepo := new(MockClothingItemRepo)
		svc := NewInventoryService(itemRepo)
		itemRepo.On("Create", ctx, mock.AnythingOfType("*domain.ClothingItem")).Return(nil)

		item, err := svc.AddItem(ctx, NewItemInput{
			Name:        "Evening Gown",
			Size:        "M",
			Category:    "Dresses",
			Condition:   domain.ItemConditionExcellent,
			RentalPrice: 49.99,
		})
		assert.NoError(t, err)
		// New items always start available.
		assert.True(t, item.Available)
	})

	t.Run("Invalid Price", func(t *testing.T) {
		svc := NewInventoryService(new(MockClothingItemRepo))
		_, err := svc.AddItem(ctx, NewItemInput{
			Name: "Gown", Size: "M", Category: "Dresses",
			Condition: domain.ItemConditionGood, RentalPrice: 0,
		})
		assert.ErrorIs(t, err, ErrInvalidRentalPrice)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		svc := NewInventoryService(new(MockClothingItemRepo))
		_, err := svc.AddItem(ctx, NewItemInput{Name: "Gown", RentalPrice: 10})
		assert.ErrorIs(t, err, ErrMissingItemFields)
	})

	t.Run("Unknown Condition", func(t *testing.T) {
		svc := NewInventoryService(new(MockClothingItemRepo))
		_, err := svc.AddItem(ctx, NewItemInput{
			Name: "Gown", Size: "M", Category: "Dresses",
			Condition: "Mint", RentalPrice: 10,
		})
		assert.ErrorIs(t, err, ErrUnknownCondition)
	})
}

func TestInventoryService_DeleteItem(t *testing.T) {
	ctx := context.Background()
	itemRepo := new(MockClothingItemRepo)
	svc := NewInventoryService(itemRepo)

	// Deletion is unconditional; the repository is not consulted about
	// rentals that may still reference the item.
	itemRepo.On("Delete", ctx, "item-1").Return(nil)
	assert.NoError(t, svc.DeleteItem(ctx, "item-1"))
	itemRepo.AssertCalled(t, "Delete", ctx, "item-1")
}

func TestInventoryService_ListItems(t *testing.T) {
	ctx := context.Background()
	itemRepo := new(MockClothingItemRepo)
	svc := NewInventoryService(itemRepo)

	items := []domain.ClothingItem{{ID: "item-1", Available: true}}
	itemRepo.On("List", ctx, true, 1, 20).Return(items, 1, nil)

	got, total, err := svc.ListItems(ctx, true, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, got, 1)
}
