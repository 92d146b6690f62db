package service

import (
	"context"
	"time"

	"wardrobe-rental-backend/internal/domain"
	"wardrobe-rental-backend/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	var err error

	if stats.ActiveRentals, err = s.statsRepo.CountRentalsByStatus(ctx, domain.RentalStatusActive); err != nil {
		return nil, err
	}
	if stats.TotalInventory, err = s.statsRepo.CountClothingItems(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.statsRepo.CountCustomers(ctx); err != nil {
		return nil, err
	}
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if stats.RentalsThisMonth, err = s.statsRepo.CountRentalsCreatedSince(ctx, firstOfMonth); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *statsService) MonthlyRevenue(ctx context.Context, year int) ([]domain.MonthlyRevenue, error) {
	return s.statsRepo.MonthlyRevenue(ctx, year)
}

func (s *statsService) TopCustomers(ctx context.Context, limit int) ([]domain.TopCustomer, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.statsRepo.TopCustomers(ctx, limit)
}
