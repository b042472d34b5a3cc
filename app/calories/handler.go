package calories

import (
	"context"
	"net/http"

	"github.com/mytheresa/go-calorie-service/app/api"
)

type CalculateRequest struct {
	Count int      `json:"count"`
	Foods []string `json:"foods"`
	Grams []int    `json:"grams"`
}

type CalculateResponse struct {
	Items []string `json:"items"`
}

type CalculateProvider interface {
	CalculateCalories(ctx context.Context, count int, foods []string, grams []int) ([]string, error)
}

type CalculateHandler struct {
	svc CalculateProvider
}

func NewCalculateHandler(s CalculateProvider) *CalculateHandler {
	return &CalculateHandler{svc: s}
}

// HandleCalculate records a meal from free-text food names. When count is
// omitted it defaults to the number of foods.
func (h *CalculateHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var input CalculateRequest
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteServiceError(w, err)
		return
	}
	if input.Count == 0 {
		input.Count = len(input.Foods)
	}

	items, err := h.svc.CalculateCalories(r.Context(), input.Count, input.Foods, input.Grams)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, CalculateResponse{Items: items})
}
