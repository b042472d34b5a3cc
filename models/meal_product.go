package models

import "fmt"

// MealProduct records that Grams of a Product were eaten as part of a Meal.
// Meal and Product are only populated when the row is loaded for display.
type MealProduct struct {
	ID        uint     `gorm:"primaryKey"`
	Grams     int      `gorm:"not null"`
	MealID    uint     `gorm:"index;not null"`
	Meal      *Meal    `gorm:"foreignKey:MealID"`
	ProductID uint     `gorm:"index;not null"`
	Product   *Product `gorm:"foreignKey:ProductID"`
}

func (mp *MealProduct) TableName() string {
	return "meal_products"
}

// NewMealProduct links grams of product to meal. Both must already be stored.
func NewMealProduct(grams int, meal *Meal, product *Product) (*MealProduct, error) {
	if meal == nil || product == nil {
		return nil, fmt.Errorf("meal product needs a meal and a product: %w", ErrInvalidInput)
	}
	return &MealProduct{
		Grams:     grams,
		MealID:    meal.ID,
		ProductID: product.ID,
	}, nil
}
