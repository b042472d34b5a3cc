package meals

import (
	"context"
	"net/http"

	"github.com/mytheresa/go-calorie-service/app/api"
	"github.com/mytheresa/go-calorie-service/models"
)

type MealResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type MealItemResponse struct {
	MealProductID uint   `json:"meal_product_id"`
	ProductID     uint   `json:"product_id"`
	ProductName   string `json:"product_name"`
	Grams         int    `json:"grams"`
	Calories      int    `json:"calories"`
}

type SummaryResponse struct {
	ID            uint               `json:"id"`
	Name          string             `json:"name"`
	Items         []MealItemResponse `json:"items"`
	TotalCalories int                `json:"total_calories"`
}

type MealProvider interface {
	CreateMeal(ctx context.Context, name string) (string, error)
	GetMeal(ctx context.Context, id uint) (*models.Meal, error)
	GetAllMeals(ctx context.Context) ([]models.Meal, error)
	GetMealSummary(ctx context.Context, id uint) (*models.MealSummary, error)
	UpdateMeal(ctx context.Context, id uint, newName string) (string, error)
	DeleteMeal(ctx context.Context, id uint) (string, error)
	AddProductToMeal(ctx context.Context, mealID uint, productName string, grams int) (string, error)
}

type MealHandler struct {
	svc MealProvider
}

func NewMealHandler(s MealProvider) *MealHandler {
	return &MealHandler{svc: s}
}

func (h *MealHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	meals, err := h.svc.GetAllMeals(r.Context())
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	response := make([]MealResponse, len(meals))
	for i, m := range meals {
		response[i] = MealResponse{
			ID:   m.ID,
			Name: m.Name,
		}
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *MealHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	meal, err := h.svc.GetMeal(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, MealResponse{ID: meal.ID, Name: meal.Name})
}

func (h *MealHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	summary, err := h.svc.GetMealSummary(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	items := make([]MealItemResponse, len(summary.Items))
	for i, it := range summary.Items {
		items[i] = MealItemResponse{
			MealProductID: it.MealProductID,
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			Grams:         it.Grams,
			Calories:      it.Calories,
		}
	}
	api.WriteJSON(w, http.StatusOK, SummaryResponse{
		ID:            summary.Meal.ID,
		Name:          summary.Meal.Name,
		Items:         items,
		TotalCalories: summary.TotalCalories,
	})
}

func (h *MealHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteServiceError(w, err)
		return
	}

	msg, err := h.svc.CreateMeal(r.Context(), input.Name)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteMessage(w, http.StatusCreated, msg)
}

func (h *MealHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	var input struct {
		Name string `json:"name"`
	}
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteServiceError(w, err)
		return
	}

	msg, err := h.svc.UpdateMeal(r.Context(), id, input.Name)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteMessage(w, http.StatusOK, msg)
}

func (h *MealHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	msg, err := h.svc.DeleteMeal(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteMessage(w, http.StatusOK, msg)
}

// HandleAddProduct adds a product, found by name, to the meal. An unknown
// product name is answered with a message, not an error status.
func (h *MealHandler) HandleAddProduct(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	var input struct {
		ProductName string `json:"product_name"`
		Grams       int    `json:"grams"`
	}
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteServiceError(w, err)
		return
	}

	msg, err := h.svc.AddProductToMeal(r.Context(), id, input.ProductName, input.Grams)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteMessage(w, http.StatusOK, msg)
}
