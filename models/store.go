package models

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one database handle.
type Store struct {
	db *gorm.DB

	Products     *ProductsRepository
	Meals        *MealsRepository
	MealProducts *MealProductsRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		Products:     NewProductsRepository(db),
		Meals:        NewMealsRepository(db),
		MealProducts: NewMealProductsRepository(db),
	}
}

// Transaction runs fn with a Store bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
