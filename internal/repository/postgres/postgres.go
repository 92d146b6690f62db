package postgres

import (
	"database/sql"

	"wardrobe-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ClothingItemRepository
	repository.CustomerRepository
	repository.RentalRepository
	repository.StatsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		ClothingItemRepository: NewClothingItemRepository(db),
		CustomerRepository:     NewCustomerRepository(db),
		RentalRepository:       NewRentalRepository(db),
		StatsRepository:        NewStatsRepository(db),
	}
}
