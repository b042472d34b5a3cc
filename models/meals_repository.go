package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MealsRepository struct {
	db *gorm.DB
}

func NewMealsRepository(db *gorm.DB) *MealsRepository {
	return &MealsRepository{db: db}
}

func (r *MealsRepository) Save(ctx context.Context, meal *Meal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(meal).Error
}

func (r *MealsRepository) FindByID(ctx context.Context, id uint) (*Meal, error) {
	var meal Meal
	if err := r.db.WithContext(ctx).First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *MealsRepository) FindAll(ctx context.Context) ([]Meal, error) {
	var meals []Meal
	if err := r.db.WithContext(ctx).Order("id").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *MealsRepository) Delete(ctx context.Context, meal *Meal) error {
	return r.db.WithContext(ctx).Delete(meal).Error
}
