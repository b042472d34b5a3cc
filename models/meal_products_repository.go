package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MealProductsRepository struct {
	db *gorm.DB
}

func NewMealProductsRepository(db *gorm.DB) *MealProductsRepository {
	return &MealProductsRepository{db: db}
}

// Save writes the join row only. Loaded Meal and Product values are never
// written back through it.
func (r *MealProductsRepository) Save(ctx context.Context, mp *MealProduct) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(mp).Error
}

func (r *MealProductsRepository) FindByID(ctx context.Context, id uint) (*MealProduct, error) {
	var mp MealProduct
	if err := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Product").
		First(&mp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealProductNotFound
		}
		return nil, err
	}
	return &mp, nil
}

func (r *MealProductsRepository) FindAll(ctx context.Context) ([]MealProduct, error) {
	var mps []MealProduct
	if err := r.db.WithContext(ctx).Order("id").Find(&mps).Error; err != nil {
		return nil, err
	}
	return mps, nil
}

// FindByMeal returns the items of a meal with their products loaded.
func (r *MealProductsRepository) FindByMeal(ctx context.Context, mealID uint) ([]MealProduct, error) {
	var mps []MealProduct
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("meal_id = ?", mealID).
		Order("id").
		Find(&mps).Error; err != nil {
		return nil, err
	}
	return mps, nil
}

func (r *MealProductsRepository) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&MealProduct{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MealProductsRepository) Delete(ctx context.Context, mp *MealProduct) error {
	return r.db.WithContext(ctx).Delete(&MealProduct{}, mp.ID).Error
}

func (r *MealProductsRepository) DeleteByMeal(ctx context.Context, mealID uint) error {
	return r.db.WithContext(ctx).
		Where("meal_id = ?", mealID).
		Delete(&MealProduct{}).Error
}
