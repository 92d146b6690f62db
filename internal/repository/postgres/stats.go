package postgres

import (
	"context"
	"database/sql"
	"time"

	"wardrobe-rental-backend/internal/domain"
	"wardrobe-rental-backend/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountRentalsByStatus(ctx context.Context, status domain.RentalStatus) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *statsRepository) CountClothingItems(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM clothing_items`).Scan(&count)
	return count, err
}

func (r *statsRepository) CountCustomers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customers`).Scan(&count)
	return count, err
}

func (r *statsRepository) CountRentalsCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}

func (r *statsRepository) MonthlyRevenue(ctx context.Context, year int) ([]domain.MonthlyRevenue, error) {
	query := `SELECT EXTRACT(MONTH FROM created_at)::int AS month, COALESCE(SUM(total_price), 0)
	          FROM rentals
	          WHERE EXTRACT(YEAR FROM created_at) = $1 AND status <> $2
	          GROUP BY month ORDER BY month`
	rows, err := r.db.QueryContext(ctx, query, year, domain.RentalStatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MonthlyRevenue
	for rows.Next() {
		mr := domain.MonthlyRevenue{Year: year}
		if err := rows.Scan(&mr.Month, &mr.Revenue); err != nil {
			return nil, err
		}
		result = append(result, mr)
	}
	return result, rows.Err()
}

func (r *statsRepository) TopCustomers(ctx context.Context, limit int) ([]domain.TopCustomer, error) {
	query := `SELECT c.id, c.name, count(r.id), COALESCE(SUM(r.total_price), 0)
	          FROM customers c
	          JOIN rentals r ON r.customer_id = c.id
	          GROUP BY c.id, c.name
	          ORDER BY count(r.id) DESC, SUM(r.total_price) DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TopCustomer
	for rows.Next() {
		var tc domain.TopCustomer
		if err := rows.Scan(&tc.CustomerID, &tc.CustomerName, &tc.RentalCount, &tc.TotalSpent); err != nil {
			return nil, err
		}
		result = append(result, tc)
	}
	return result, rows.Err()
}
