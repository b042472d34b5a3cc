package calories

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mytheresa/go-calorie-service/lookup"
	"github.com/mytheresa/go-calorie-service/models"
)

// ProductNotFoundMessage is returned by AddProductToMeal when no product
// matches the requested name. It is a normal result, not an error.
const ProductNotFoundMessage = "Product not found. Please add it first using the calculate endpoint."

type Lookuper interface {
	Lookup(ctx context.Context, query string) (lookup.Result, error)
}

type Service struct {
	store  *models.Store
	lookup Lookuper
	now    func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now as the source of generated meal names.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store *models.Store, l Lookuper, opts ...Option) *Service {
	s := &Service{
		store:  store,
		lookup: l,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateCalories looks up every food, stores each match as a new
// product, and records all of them in a new meal. It returns one line per
// item followed by the total. Nothing is stored unless every item succeeds.
func (s *Service) CalculateCalories(ctx context.Context, count int, foods []string, grams []int) ([]string, error) {
	if count != len(foods) || count != len(grams) {
		return nil, fmt.Errorf("count %d does not match %d foods and %d gram amounts: %w",
			count, len(foods), len(grams), models.ErrInvalidInput)
	}

	// No transaction is open while the lookups run.
	results := make([]lookup.Result, count)
	for i, food := range foods {
		res, err := s.lookup.Lookup(ctx, food)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %q: %w", food, err)
		}
		results[i] = res
	}

	total := 0
	lines := make([]string, 0, count+1)
	for i, res := range results {
		total += models.Calories(res.CaloriesPer100g, grams[i])
		lines = append(lines, fmt.Sprintf("%dg. %s / cal/100g: %s", grams[i], res.Text, res.Cal.String()))
	}
	lines = append(lines, fmt.Sprintf("Total calories: %d", total))

	var mealID uint
	err := s.store.Transaction(ctx, func(tx *models.Store) error {
		meal := &models.Meal{Name: "Meal " + s.now().Format(time.UnixDate)}
		if err := tx.Meals.Save(ctx, meal); err != nil {
			return fmt.Errorf("failed to create meal: %w", err)
		}
		mealID = meal.ID

		for i, res := range results {
			created := &models.Product{Name: res.Text, CaloriesPer100g: res.CaloriesPer100g}
			if err := tx.Products.Save(ctx, created); err != nil {
				return fmt.Errorf("failed to store product %q: %w", res.Text, err)
			}

			product, err := firstByName(ctx, tx, foods[i])
			if err != nil {
				return err
			}
			if product == nil {
				// The matched name does not contain the query text.
				product = created
			}

			mp, err := models.NewMealProduct(grams[i], meal, product)
			if err != nil {
				return err
			}
			if err := tx.MealProducts.Save(ctx, mp); err != nil {
				return fmt.Errorf("failed to add %q to meal: %w", product.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.S().Infow("calories calculated", "meal_id", mealID, "items", count, "total", total)
	return lines, nil
}

func (s *Service) CreateMeal(ctx context.Context, name string) (string, error) {
	meal := &models.Meal{Name: name}
	if err := s.store.Meals.Save(ctx, meal); err != nil {
		return "", fmt.Errorf("failed to create meal: %w", err)
	}
	zap.S().Infow("meal created", "meal_id", meal.ID)
	return fmt.Sprintf("Meal '%s' created with ID: %d", name, meal.ID), nil
}

// AddProductToMeal adds grams of the first product whose name contains
// productName. When nothing matches it returns ProductNotFoundMessage and
// stores nothing.
func (s *Service) AddProductToMeal(ctx context.Context, mealID uint, productName string, grams int) (string, error) {
	meal, err := s.store.Meals.FindByID(ctx, mealID)
	if err != nil {
		return "", err
	}

	product, err := firstByName(ctx, s.store, productName)
	if err != nil {
		return "", err
	}
	if product == nil {
		return ProductNotFoundMessage, nil
	}

	mp, err := models.NewMealProduct(grams, meal, product)
	if err != nil {
		return "", err
	}
	if err := s.store.MealProducts.Save(ctx, mp); err != nil {
		return "", fmt.Errorf("failed to add product to meal: %w", err)
	}

	calories := models.Calories(product.CaloriesPer100g, grams)
	return fmt.Sprintf("Added %dg of %s (%d kcal) to meal '%s'", grams, product.Name, calories, meal.Name), nil
}

func (s *Service) GetMeal(ctx context.Context, id uint) (*models.Meal, error) {
	return s.store.Meals.FindByID(ctx, id)
}

func (s *Service) GetAllMeals(ctx context.Context) ([]models.Meal, error) {
	return s.store.Meals.FindAll(ctx)
}

func (s *Service) GetMealSummary(ctx context.Context, id uint) (*models.MealSummary, error) {
	meal, err := s.store.Meals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	mps, err := s.store.MealProducts.FindByMeal(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load meal items: %w", err)
	}
	summary := models.SummarizeMeal(*meal, mps)
	return &summary, nil
}

func (s *Service) UpdateMeal(ctx context.Context, id uint, newName string) (string, error) {
	meal, err := s.store.Meals.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	meal.Name = newName
	if err := s.store.Meals.Save(ctx, meal); err != nil {
		return "", fmt.Errorf("failed to update meal: %w", err)
	}
	return fmt.Sprintf("Meal updated to '%s'", newName), nil
}

// DeleteMeal removes the meal together with its items.
func (s *Service) DeleteMeal(ctx context.Context, id uint) (string, error) {
	err := s.store.Transaction(ctx, func(tx *models.Store) error {
		meal, err := tx.Meals.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.MealProducts.DeleteByMeal(ctx, meal.ID); err != nil {
			return fmt.Errorf("failed to delete meal items: %w", err)
		}
		if err := tx.Meals.Delete(ctx, meal); err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	zap.S().Infow("meal deleted", "meal_id", id)
	return "Meal deleted", nil
}

func (s *Service) CreateMealProduct(ctx context.Context, grams int, mealID, productID uint) (string, error) {
	meal, err := s.store.Meals.FindByID(ctx, mealID)
	if err != nil {
		return "", err
	}
	product, err := s.store.Products.FindByID(ctx, productID)
	if err != nil {
		return "", err
	}

	mp, err := models.NewMealProduct(grams, meal, product)
	if err != nil {
		return "", err
	}
	if err := s.store.MealProducts.Save(ctx, mp); err != nil {
		return "", fmt.Errorf("failed to create meal product: %w", err)
	}
	return fmt.Sprintf("MealProduct created with ID: %d", mp.ID), nil
}

func (s *Service) GetMealProduct(ctx context.Context, id uint) (*models.MealProduct, error) {
	return s.store.MealProducts.FindByID(ctx, id)
}

func (s *Service) GetAllMealProducts(ctx context.Context) ([]models.MealProduct, error) {
	return s.store.MealProducts.FindAll(ctx)
}

func (s *Service) UpdateMealProduct(ctx context.Context, id uint, grams int) (string, error) {
	mp, err := s.store.MealProducts.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	mp.Grams = grams
	if err := s.store.MealProducts.Save(ctx, mp); err != nil {
		return "", fmt.Errorf("failed to update meal product: %w", err)
	}
	return "MealProduct updated", nil
}

func (s *Service) DeleteMealProduct(ctx context.Context, id uint) (string, error) {
	mp, err := s.store.MealProducts.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.store.MealProducts.Delete(ctx, mp); err != nil {
		return "", fmt.Errorf("failed to delete meal product: %w", err)
	}
	return "MealProduct deleted", nil
}

func (s *Service) CreateProduct(ctx context.Context, name string, caloriesPer100g int) (string, error) {
	product := &models.Product{Name: name, CaloriesPer100g: caloriesPer100g}
	if err := s.store.Products.Save(ctx, product); err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}
	zap.S().Infow("product created", "product_id", product.ID)
	return fmt.Sprintf("Product created with ID: %d", product.ID), nil
}

func (s *Service) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.store.Products.FindByID(ctx, id)
}

func (s *Service) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.Products.FindAll(ctx)
}

// SearchProducts returns every product whose name contains text, ignoring case.
func (s *Service) SearchProducts(ctx context.Context, text string) ([]models.Product, error) {
	return s.store.Products.FindByNameContaining(ctx, text)
}

func (s *Service) UpdateProduct(ctx context.Context, id uint, name string, caloriesPer100g int) (string, error) {
	product, err := s.store.Products.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	product.Name = name
	product.CaloriesPer100g = caloriesPer100g
	if err := s.store.Products.Save(ctx, product); err != nil {
		return "", fmt.Errorf("failed to update product: %w", err)
	}
	return "Product updated", nil
}

// DeleteProduct refuses to delete a product that is still part of a meal.
func (s *Service) DeleteProduct(ctx context.Context, id uint) (string, error) {
	err := s.store.Transaction(ctx, func(tx *models.Store) error {
		product, err := tx.Products.FindByID(ctx, id)
		if err != nil {
			return err
		}
		refs, err := tx.MealProducts.CountByProduct(ctx, product.ID)
		if err != nil {
			return fmt.Errorf("failed to check product usage: %w", err)
		}
		if refs > 0 {
			return fmt.Errorf("product %d is used by %d meal products: %w", product.ID, refs, models.ErrConflict)
		}
		if err := tx.Products.Delete(ctx, product); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	zap.S().Infow("product deleted", "product_id", id)
	return "Product deleted", nil
}

// firstByName returns the oldest product whose name contains text, or nil.
func firstByName(ctx context.Context, store *models.Store, text string) (*models.Product, error) {
	products, err := store.Products.FindByNameContaining(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}
