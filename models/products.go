package models

// Product represents a food item in the catalog.
// CaloriesPer100g is the energy density in kcal per 100 grams.
type Product struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"index;not null"`
	CaloriesPer100g int    `gorm:"column:calories_per_100g;not null"`
}

func (p *Product) TableName() string {
	return "products"
}

// Calories returns the energy of the given grams of a product with
// caloriesPer100g kcal per 100g. Fractions are truncated.
func Calories(caloriesPer100g, grams int) int {
	return caloriesPer100g * grams / 100
}
