// Package api holds the JSON plumbing shared by the HTTP handlers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/mytheresa/go-calorie-service/models"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Warnw("failed to encode response", "error", err)
	}
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, MessageResponse{Message: message})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteServiceError maps an error returned by the service to its HTTP status.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrMealNotFound):
		WriteError(w, http.StatusNotFound, "Meal not found")
	case errors.Is(err, models.ErrProductNotFound):
		WriteError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, models.ErrMealProductNotFound):
		WriteError(w, http.StatusNotFound, "MealProduct not found")
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, models.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrConflict):
		WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrLookupFailed):
		zap.S().Warnw("lookup failed", "error", err)
		WriteError(w, http.StatusBadGateway, err.Error())
	default:
		zap.S().Errorw("request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// PathID parses the named path value as a positive id.
func PathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, r.PathValue(name), models.ErrInvalidInput)
	}
	return uint(id), nil
}

func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", models.ErrInvalidInput)
	}
	return nil
}
