package models_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytheresa/go-calorie-service/database/dbtest"
	"github.com/mytheresa/go-calorie-service/models"
)

func seedProducts(t *testing.T, repo *models.ProductsRepository, names ...string) []models.Product {
	t.Helper()
	products := make([]models.Product, 0, len(names))
	for i, name := range names {
		p := models.Product{Name: name, CaloriesPer100g: 10 * (i + 1)}
		require.NoError(t, repo.Save(context.Background(), &p))
		products = append(products, p)
	}
	return products
}

func TestProductsRepository_FindByNameContaining(t *testing.T) {
	ctx := context.Background()
	repo := models.NewProductsRepository(dbtest.New(t))
	seedProducts(t, repo, "Green Apple", "Bread", "apple pie", "100% juice", "rye_bread", "яблоко печёное", "Яблоко")

	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{"Case-insensitive substring, oldest first", "APPLE", []string{"Green Apple", "apple pie"}},
		{"No match", "durian", nil},
		{"Percent sign is literal", "%", []string{"100% juice"}},
		{"Underscore is literal", "_", []string{"rye_bread"}},
		{"Empty text matches everything", "", []string{"Green Apple", "Bread", "apple pie", "100% juice", "rye_bread", "яблоко печёное", "Яблоко"}},
		{"Upper-case Cyrillic query matches a lower-case name", "ЯБЛОКО", []string{"яблоко печёное"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products, err := repo.FindByNameContaining(ctx, tc.text)
			require.NoError(t, err)

			var names []string
			for _, p := range products {
				names = append(names, p.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestProductsRepository_FindByNameContainingFoldsCyrillic(t *testing.T) {
	db := dbtest.New(t)
	if db.Name() != "postgres" {
		t.Skip("only postgres ILIKE folds non-ASCII case")
	}
	repo := models.NewProductsRepository(db)
	seedProducts(t, repo, "Яблоко", "Хлеб")

	products, err := repo.FindByNameContaining(context.Background(), "яблоко")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Яблоко", products[0].Name)
}

func TestProductsRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := models.NewProductsRepository(dbtest.New(t))

	product := &models.Product{Name: "Apple", CaloriesPer100g: 52}
	require.NoError(t, repo.Save(ctx, product))
	assert.NotZero(t, product.ID)

	product.CaloriesPer100g = 54
	require.NoError(t, repo.Save(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, *product, *found)

	require.NoError(t, repo.Delete(ctx, found))
	_, err = repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestMealsRepository(t *testing.T) {
	ctx := context.Background()
	repo := models.NewMealsRepository(dbtest.New(t))

	_, err := repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, models.ErrMealNotFound)

	for _, name := range []string{"Breakfast", "Breakfast"} {
		require.NoError(t, repo.Save(ctx, &models.Meal{Name: name}))
	}
	meals, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, meals, 2, "meal names are not unique")
}

func TestMealProductsRepository(t *testing.T) {
	ctx := context.Background()
	store := models.NewStore(dbtest.New(t))

	meal := &models.Meal{Name: "Lunch"}
	require.NoError(t, store.Meals.Save(ctx, meal))
	products := seedProducts(t, store.Products, "Rice", "Beans")

	for _, p := range products {
		mp, err := models.NewMealProduct(150, meal, &p)
		require.NoError(t, err)
		require.NoError(t, store.MealProducts.Save(ctx, mp))
	}

	t.Run("FindByID loads meal and product", func(t *testing.T) {
		mp, err := store.MealProducts.FindByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, mp.Meal)
		require.NotNil(t, mp.Product)
		assert.Equal(t, "Lunch", mp.Meal.Name)
		assert.Equal(t, "Rice", mp.Product.Name)
	})

	t.Run("Saving a loaded row leaves its parents alone", func(t *testing.T) {
		mp, err := store.MealProducts.FindByID(ctx, 1)
		require.NoError(t, err)
		mp.Grams = 75
		mp.Product.Name = "changed"
		require.NoError(t, store.MealProducts.Save(ctx, mp))

		product, err := store.Products.FindByID(ctx, mp.ProductID)
		require.NoError(t, err)
		assert.Equal(t, "Rice", product.Name)
	})

	t.Run("FindByMeal and CountByProduct", func(t *testing.T) {
		items, err := store.MealProducts.FindByMeal(ctx, meal.ID)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, 75, items[0].Grams)
		assert.Equal(t, "Beans", items[1].Product.Name)

		count, err := store.MealProducts.CountByProduct(ctx, products[1].ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("DeleteByMeal", func(t *testing.T) {
		require.NoError(t, store.MealProducts.DeleteByMeal(ctx, meal.ID))
		all, err := store.MealProducts.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestStore_TransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := models.NewStore(dbtest.New(t))

	err := store.Transaction(ctx, func(tx *models.Store) error {
		require.NoError(t, tx.Meals.Save(ctx, &models.Meal{Name: "Doomed"}))
		return models.ErrInvalidInput
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	meals, err := store.Meals.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestNewMealProduct(t *testing.T) {
	_, err := models.NewMealProduct(10, nil, &models.Product{ID: 1})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	_, err = models.NewMealProduct(10, &models.Meal{ID: 1}, nil)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	mp, err := models.NewMealProduct(10, &models.Meal{ID: 2}, &models.Product{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, models.MealProduct{Grams: 10, MealID: 2, ProductID: 3}, *mp)
}

func TestCalories(t *testing.T) {
	assert.Equal(t, 16, models.Calories(33, 50))
	assert.Equal(t, 52, models.Calories(52, 100))
	assert.Equal(t, 132, models.Calories(265, 50))
	assert.Equal(t, 0, models.Calories(0, 500))
}

func TestSummarizeMeal(t *testing.T) {
	summary := models.SummarizeMeal(models.Meal{ID: 1, Name: "Lunch"}, []models.MealProduct{
		{ID: 1, Grams: 100, ProductID: 1, Product: &models.Product{ID: 1, Name: "Apple", CaloriesPer100g: 52}},
		{ID: 2, Grams: 50, ProductID: 2, Product: &models.Product{ID: 2, Name: "Bread", CaloriesPer100g: 265}},
	})
	assert.Equal(t, 184, summary.TotalCalories)
	assert.Len(t, summary.Items, 2)
	assert.Equal(t, "Bread", summary.Items[1].ProductName)
}
