package models

// Meal represents a named collection of consumed products.
// Its items are the MealProduct rows pointing at it.
type Meal struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (m *Meal) TableName() string {
	return "meals"
}
