package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wardrobe-rental-backend/internal/domain"
	"wardrobe-rental-backend/internal/repository"

	"github.com/google/uuid"
)

type clothingItemRepository struct {
	db *sql.DB
}

func NewClothingItemRepository(db *sql.DB) repository.ClothingItemRepository {
	return &clothingItemRepository{db: db}
}

const clothingItemColumns = `id, name, description, size, category, condition, rental_price, available, image_url, created_at, updated_at`

func scanClothingItem(row interface{ Scan(...interface{}) error }, it *domain.ClothingItem) error {
	return row.Scan(&it.ID, &it.Name, &it.Description, &it.Size, &it.Category, &it.Condition,
		&it.RentalPrice, &it.Available, &it.ImageURL, &it.CreatedAt, &it.UpdatedAt)
}

func (r *clothingItemRepository) Create(ctx context.Context, it *domain.ClothingItem) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	now := time.Now()
	it.CreatedAt = now
	it.UpdatedAt = now
	query := `INSERT INTO clothing_items (id, name, description, size, category, condition, rental_price, available, image_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query, it.ID, it.Name, it.Description, it.Size, it.Category,
		it.Condition, it.RentalPrice, it.Available, it.ImageURL, it.CreatedAt, it.UpdatedAt)
	return err
}

func (r *clothingItemRepository) GetByID(ctx context.Context, id string) (*domain.ClothingItem, error) {
	it := &domain.ClothingItem{}
	query := `SELECT ` + clothingItemColumns + ` FROM clothing_items WHERE id = $1`
	if err := scanClothingItem(r.db.QueryRowContext(ctx, query, id), it); err != nil {
		return nil, err
	}
	return it, nil
}

func (r *clothingItemRepository) Update(ctx context.Context, it *domain.ClothingItem) error {
	query := `UPDATE clothing_items
	          SET name=$1, description=$2, size=$3, category=$4, condition=$5, rental_price=$6, image_url=$7, updated_at=$8
	          WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, it.Name, it.Description, it.Size, it.Category,
		it.Condition, it.RentalPrice, it.ImageURL, time.Now(), it.ID)
	return err
}

func (r *clothingItemRepository) UpdateAvailability(ctx context.Context, id string, available bool) error {
	query := `UPDATE clothing_items SET available=$1, updated_at=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, available, time.Now(), id)
	return err
}

func (r *clothingItemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clothing_items WHERE id=$1`, id)
	return err
}

func (r *clothingItemRepository) List(ctx context.Context, onlyAvailable bool, page, pageSize int) ([]domain.ClothingItem, int, error) {
	where := ""
	if onlyAvailable {
		where = " WHERE available = TRUE"
	}

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM clothing_items`+where).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM clothing_items%s ORDER BY name LIMIT $1 OFFSET $2`, clothingItemColumns, where)
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.ClothingItem
	for rows.Next() {
		var it domain.ClothingItem
		if err := scanClothingItem(rows, &it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	return items, count, rows.Err()
}
