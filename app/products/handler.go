package products

import (
	"context"
	"net/http"

	"github.com/mytheresa/go-calorie-service/app/api"
	"github.com/mytheresa/go-calorie-service/models"
)

type Product struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	CaloriesPer100g int    `json:"calories_per_100g"`
}

type ProductRequest struct {
	Name            string `json:"name"`
	CaloriesPer100g int    `json:"calories_per_100g"`
}

type ProductProvider interface {
	CreateProduct(ctx context.Context, name string, caloriesPer100g int) (string, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	SearchProducts(ctx context.Context, text string) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id uint, name string, caloriesPer100g int) (string, error)
	DeleteProduct(ctx context.Context, id uint) (string, error)
}

type ProductHandler struct {
	svc ProductProvider
}

func NewProductHandler(s ProductProvider) *ProductHandler {
	return &ProductHandler{
		svc: s,
	}
}

func toProduct(p models.Product) Product {
	return Product{
		ID:              p.ID,
		Name:            p.Name,
		CaloriesPer100g: p.CaloriesPer100g,
	}
}

// HandleGetAll lists every product, or only those whose name contains
// the "name" query parameter.
func (h *ProductHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	var (
		res []models.Product
		err error
	)
	if name := r.URL.Query().Get("name"); name != "" {
		res, err = h.svc.SearchProducts(r.Context(), name)
	} else {
		res, err = h.svc.GetAllProducts(r.Context())
	}
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	products := make([]Product, len(res))
	for i, p := range res {
		products[i] = toProduct(p)
	}
	api.WriteJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, toProduct(*product))
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input ProductRequest
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteServiceError(w, err)
		return
	}

	msg, err := h.svc.CreateProduct(r.Context(), input.Name, input.CaloriesPer100g)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteMessage(w, http.StatusCreated, msg)
}

func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	var input ProductRequest
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteServiceError(w, err)
		return
	}

	msg, err := h.svc.UpdateProduct(r.Context(), id, input.Name, input.CaloriesPer100g)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteMessage(w, http.StatusOK, msg)
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	msg, err := h.svc.DeleteProduct(r.Context(), id)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteMessage(w, http.StatusOK, msg)
}
