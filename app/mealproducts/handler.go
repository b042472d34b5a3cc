package mealproducts

import (
	"context"
	"net/http"

	"github.com/mytheresa/go-calorie-service/app/api"
	"github.com/mytheresa/go-calorie-service/models"
)

type MealProduct struct {
	ID          uint   `json:"id"`
	Grams       int    `json:"grams"`
	MealID      uint   `json:"meal_id"`
	MealName    string `json:"meal_name,omitempty"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Calories    *int   `json:"calories,omitempty"`
}

type MealProductProvider interface {
	CreateMealProduct(ctx context.Context, grams int, mealID, productID uint) (string, error)
	GetMealProduct(ctx context.Context, id uint) (*models.MealProduct, error)
	GetAllMealProducts(ctx context.Context) ([]models.MealProduct, error)
	UpdateMealProduct(ctx context.Context, id uint, grams int) (string, error)
	DeleteMealProduct(ctx context.Context, id uint) (string, error)
}

type MealProductHandler struct {
	svc MealProductProvider
}

func NewMealProductHandler(s MealProductProvider) *MealProductHandler {
	return &MealProductHandler{svc: s}
}

// toMealProduct fills the meal and product details only when they are loaded.
func toMealProduct(mp models.MealProduct) MealProduct {
	res := MealProduct{
		ID:        mp.ID,
		Grams:     mp.Grams,
		MealID:    mp.MealID,
		ProductID: mp.ProductID,
	}
	if mp.Meal != nil {
		res.MealName = mp.Meal.Name
	}
	if mp.Product != nil {
		res.ProductName = mp.Product.Name
		calories := models.Calories(mp.Product.CaloriesPer100g, mp.Grams)
		res.Calories = &calories
	}
	return res
}

func (h *MealProductHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.GetAllMealProducts(r.Context())
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	mps := make([]MealProduct, len(res))
	for i, mp := range res {
		mps[i] = toMealProduct(mp)
	}
	api.WriteJSON(w, http.StatusOK, mps)
}

func (h *MealProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	mp, err := h.svc.GetMealProduct(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, toMealProduct(*mp))
}

func (h *MealProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Grams     int  `json:"grams"`
		MealID    uint `json:"meal_id"`
		ProductID uint `json:"product_id"`
	}
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteServiceError(w, err)
		return
	}

	msg, err := h.svc.CreateMealProduct(r.Context(), input.Grams, input.MealID, input.ProductID)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteMessage(w, http.StatusCreated, msg)
}

func (h *MealProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	var input struct {
		Grams int `json:"grams"`
	}
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteServiceError(w, err)
		return
	}

	msg, err := h.svc.UpdateMealProduct(r.Context(), id, input.Grams)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteMessage(w, http.StatusOK, msg)
}

func (h *MealProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	msg, err := h.svc.DeleteMealProduct(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteMessage(w, http.StatusOK, msg)
}
