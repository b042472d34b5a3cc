package routes

import (
	"net/http"

	"github.com/mytheresa/go-calorie-service/app/calories"
	"github.com/mytheresa/go-calorie-service/app/mealproducts"
	"github.com/mytheresa/go-calorie-service/app/meals"
	"github.com/mytheresa/go-calorie-service/app/products"
)

// Service is everything the HTTP API needs from the calorie service.
type Service interface {
	calories.CalculateProvider
	meals.MealProvider
	products.ProductProvider
	mealproducts.MealProductProvider
}

func SetupRouter(svc Service) *http.ServeMux {
	mux := http.NewServeMux()

	calc := calories.NewCalculateHandler(svc)
	mux.HandleFunc("POST /calculate", calc.HandleCalculate)

	mealHandler := meals.NewMealHandler(svc)
	mux.HandleFunc("GET /meals", mealHandler.HandleGetAll)
	mux.HandleFunc("POST /meals", mealHandler.HandleCreate)
	mux.HandleFunc("GET /meals/{id}", mealHandler.HandleGet)
	mux.HandleFunc("PUT /meals/{id}", mealHandler.HandleUpdate)
	mux.HandleFunc("DELETE /meals/{id}", mealHandler.HandleDelete)
	mux.HandleFunc("GET /meals/{id}/summary", mealHandler.HandleSummary)
	mux.HandleFunc("POST /meals/{id}/products", mealHandler.HandleAddProduct)

	productHandler := products.NewProductHandler(svc)
	mux.HandleFunc("GET /products", productHandler.HandleGetAll)
	mux.HandleFunc("POST /products", productHandler.HandleCreate)
	mux.HandleFunc("GET /products/{id}", productHandler.HandleGet)
	mux.HandleFunc("PUT /products/{id}", productHandler.HandleUpdate)
	mux.HandleFunc("DELETE /products/{id}", productHandler.HandleDelete)

	mpHandler := mealproducts.NewMealProductHandler(svc)
	mux.HandleFunc("GET /meal-products", mpHandler.HandleGetAll)
	mux.HandleFunc("POST /meal-products", mpHandler.HandleCreate)
	mux.HandleFunc("GET /meal-products/{id}", mpHandler.HandleGet)
	mux.HandleFunc("PUT /meal-products/{id}", mpHandler.HandleUpdate)
	mux.HandleFunc("DELETE /meal-products/{id}", mpHandler.HandleDelete)

	return mux
}
