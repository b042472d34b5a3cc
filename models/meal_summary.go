package models

// MealItem is one product of a meal together with its energy.
type MealItem struct {
	MealProductID uint
	ProductID     uint
	ProductName   string
	Grams         int
	Calories      int
}

// MealSummary is a meal with its items and their total energy.
type MealSummary struct {
	Meal          Meal
	Items         []MealItem
	TotalCalories int
}

// SummarizeMeal expects every MealProduct to have its Product loaded.
func SummarizeMeal(meal Meal, mps []MealProduct) MealSummary {
	summary := MealSummary{
		Meal:  meal,
		Items: make([]MealItem, 0, len(mps)),
	}
	for _, mp := range mps {
		item := MealItem{
			MealProductID: mp.ID,
			ProductID:     mp.ProductID,
			Grams:         mp.Grams,
		}
		if mp.Product != nil {
			item.ProductName = mp.Product.Name
			item.Calories = Calories(mp.Product.CaloriesPer100g, mp.Grams)
		}
		summary.TotalCalories += item.Calories
		summary.Items = append(summary.Items, item)
	}
	return summary
}
