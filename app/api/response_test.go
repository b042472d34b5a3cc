package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytheresa/go-calorie-service/models"
)

func TestWriteServiceError(t *testing.T) {
	testCases := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedMessage    string
	}{
		{"Meal not found", fmt.Errorf("load: %w", models.ErrMealNotFound), http.StatusNotFound, "Meal not found"},
		{"Product not found", models.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{"MealProduct not found", models.ErrMealProductNotFound, http.StatusNotFound, "MealProduct not found"},
		{"Invalid input", fmt.Errorf("bad count: %w", models.ErrInvalidInput), http.StatusBadRequest, "bad count: invalid input"},
		{"Conflict", models.ErrConflict, http.StatusConflict, "conflict"},
		{"Lookup failed", models.ErrLookupFailed, http.StatusBadGateway, "lookup failed"},
		{"Unknown error", errors.New("db connection lost"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteServiceError(rec, tc.err)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.expectedMessage, resp.Error)
		})
	}
}

func TestPathID(t *testing.T) {
	testCases := []struct {
		value    string
		expected uint
		valid    bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/meals/x", nil)
			req.SetPathValue("id", tc.value)

			id, err := PathID(req, "id")
			if !tc.valid {
				assert.ErrorIs(t, err, models.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}
