package postgres

import (
	"context"
	"database/sql"
	"time"

	"wardrobe-rental-backend/internal/domain"
	"wardrobe-rental-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, clothing_item_id, start_date, end_date, status, total_price, notes, return_condition, return_notes, additional_fees, created_at, updated_at`

func scanRental(row interface{ Scan(...interface{}) error }, rt *domain.Rental) error {
	var fees sql.NullFloat64
	err := row.Scan(&rt.ID, &rt.CustomerID, &rt.ClothingItemID, &rt.StartDate, &rt.EndDate,
		&rt.Status, &rt.TotalPrice, &rt.Notes, &rt.ReturnCondition, &rt.ReturnNotes,
		&fees, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return err
	}
	rt.AdditionalFees = fees.Float64
	return nil
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	now := time.Now()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	query := `INSERT INTO rentals (id, customer_id, clothing_item_id, start_date, end_date, status, total_price, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.CustomerID, rt.ClothingItemID,
		rt.StartDate, rt.EndDate, rt.Status, rt.TotalPrice, rt.Notes, rt.CreatedAt, rt.UpdatedAt)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	if err := scanRental(r.db.QueryRowContext(ctx, query, id), rt); err != nil {
		return nil, err
	}
	items, err := r.itemsForRentals(ctx, []string{rt.ID})
	if err != nil {
		return nil, err
	}
	rt.Items = items[rt.ID]
	return rt, nil
}

func (r *rentalRepository) CreateItems(ctx context.Context, rentalID string, items []domain.RentalItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO rental_items (id, rental_id, clothing_item_id, price, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now()
	for i := range items {
		it := &items[i]
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		it.RentalID = rentalID
		it.CreatedAt = now
		it.UpdatedAt = now
		if _, err := r.db.ExecContext(ctx, query, it.ID, it.RentalID, it.ClothingItemID, it.Price, it.Notes, it.CreatedAt, it.UpdatedAt); err != nil {
			return err
		}
	}
	return nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error {
	query := `UPDATE rentals SET status=$1, updated_at=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *rentalRepository) UpdateOnReturn(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals
	          SET status=$1, return_condition=$2, return_notes=$3, additional_fees=$4, total_price=$5, updated_at=$6
	          WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, rt.Status, rt.ReturnCondition, rt.ReturnNotes,
		rt.AdditionalFees, rt.TotalPrice, time.Now(), rt.ID)
	return err
}

func (r *rentalRepository) Delete(ctx context.Context, id string) error {
	// Line items go with the rental via ON DELETE CASCADE. Item availability
	// is deliberately left alone.
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id=$1`, id)
	return err
}

func (r *rentalRepository) ListWithRelations(ctx context.Context, page, pageSize int) ([]domain.Rental, int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT r.id, r.customer_id, r.clothing_item_id, r.start_date, r.end_date, r.status,
	                 r.total_price, r.notes, r.return_condition, r.return_notes, r.additional_fees,
	                 r.created_at, r.updated_at,
	                 c.name, COALESCE(i.name, ''), COALESCE(i.size, '')
	          FROM rentals r
	          JOIN customers c ON c.id = r.customer_id
	          LEFT JOIN clothing_items i ON i.id = r.clothing_item_id
	          ORDER BY r.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	var ids []string
	for rows.Next() {
		var rt domain.Rental
		var fees sql.NullFloat64
		cust := &domain.Customer{}
		item := &domain.ClothingItem{}
		err := rows.Scan(&rt.ID, &rt.CustomerID, &rt.ClothingItemID, &rt.StartDate, &rt.EndDate,
			&rt.Status, &rt.TotalPrice, &rt.Notes, &rt.ReturnCondition, &rt.ReturnNotes,
			&fees, &rt.CreatedAt, &rt.UpdatedAt,
			&cust.Name, &item.Name, &item.Size)
		if err != nil {
			return nil, 0, err
		}
		rt.AdditionalFees = fees.Float64
		cust.ID = rt.CustomerID
		item.ID = rt.ClothingItemID
		rt.Customer = cust
		rt.ClothingItem = item
		rentals = append(rentals, rt)
		ids = append(ids, rt.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	itemsByRental, err := r.itemsForRentals(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range rentals {
		rentals[i].Items = itemsByRental[rentals[i].ID]
	}
	return rentals, count, nil
}

func (r *rentalRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	var ids []string
	for rows.Next() {
		var rt domain.Rental
		if err := scanRental(rows, &rt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
		ids = append(ids, rt.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemsByRental, err := r.itemsForRentals(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range rentals {
		rentals[i].Items = itemsByRental[rentals[i].ID]
	}
	return rentals, nil
}

func (r *rentalRepository) ListDue(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	query := `SELECT r.id, r.customer_id, r.clothing_item_id, r.start_date, r.end_date, r.status,
	                 r.total_price, c.name, COALESCE(i.name, '')
	          FROM rentals r
	          JOIN customers c ON c.id = r.customer_id
	          LEFT JOIN clothing_items i ON i.id = r.clothing_item_id
	          WHERE r.end_date <= $1 AND r.status IN ($2, $3)
	          ORDER BY r.end_date`
	rows, err := r.db.QueryContext(ctx, query, cutoff, domain.RentalStatusActive, domain.RentalStatusReady)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		cust := &domain.Customer{}
		item := &domain.ClothingItem{}
		err := rows.Scan(&rt.ID, &rt.CustomerID, &rt.ClothingItemID, &rt.StartDate, &rt.EndDate,
			&rt.Status, &rt.TotalPrice, &cust.Name, &item.Name)
		if err != nil {
			return nil, err
		}
		cust.ID = rt.CustomerID
		item.ID = rt.ClothingItemID
		rt.Customer = cust
		rt.ClothingItem = item
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

// itemsForRentals loads line items (with their garments) for a set of
// rentals, keyed by rental id.
func (r *rentalRepository) itemsForRentals(ctx context.Context, rentalIDs []string) (map[string][]domain.RentalItem, error) {
	result := make(map[string][]domain.RentalItem)
	if len(rentalIDs) == 0 {
		return result, nil
	}
	query := `SELECT ri.id, ri.rental_id, ri.clothing_item_id, ri.price, ri.notes, ri.created_at, ri.updated_at,
	                 COALESCE(i.name, ''), COALESCE(i.size, '')
	          FROM rental_items ri
	          LEFT JOIN clothing_items i ON i.id = ri.clothing_item_id
	          WHERE ri.rental_id = ANY($1)
	          ORDER BY ri.created_at`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(rentalIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.RentalItem
		garment := &domain.ClothingItem{}
		err := rows.Scan(&it.ID, &it.RentalID, &it.ClothingItemID, &it.Price, &it.Notes,
			&it.CreatedAt, &it.UpdatedAt, &garment.Name, &garment.Size)
		if err != nil {
			return nil, err
		}
		garment.ID = it.ClothingItemID
		it.ClothingItem = garment
		result[it.RentalID] = append(result[it.RentalID], it)
	}
	return result, rows.Err()
}
