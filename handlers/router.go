package handlers

import (
	"net/http"

	"restaurant-menu/services"

	"github.com/rs/cors"
)

// NewRouter wires the web UI and the read-only JSON API. CORS applies to the
// API only.
func NewRouter(repo *services.Repository, v *Views, corsOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", ShowRestaurantsHandler(repo, v))
	mux.HandleFunc("GET /restaurants/{$}", ShowRestaurantsHandler(repo, v))
	mux.HandleFunc("GET /restaurants/new/{$}", NewRestaurantFormHandler(v))
	mux.HandleFunc("POST /restaurants/new/{$}", CreateRestaurantHandler(repo, v))
	mux.HandleFunc("GET /restaurants/{restaurant_id}/edit/{$}", EditRestaurantFormHandler(repo, v))
	mux.HandleFunc("POST /restaurants/{restaurant_id}/edit/{$}", UpdateRestaurantHandler(repo, v))
	mux.HandleFunc("GET /restaurants/{restaurant_id}/delete/{$}", DeleteRestaurantFormHandler(repo, v))
	mux.HandleFunc("POST /restaurants/{restaurant_id}/delete/{$}", DeleteRestaurantHandler(repo, v))

	mux.HandleFunc("GET /restaurants/{restaurant_id}/{$}", ShowMenuHandler(repo, v))
	mux.HandleFunc("GET /restaurants/{restaurant_id}/menu/{$}", ShowMenuHandler(repo, v))
	mux.HandleFunc("GET /restaurants/{restaurant_id}/menu.pdf", MenuPDFHandler(repo))
	mux.HandleFunc("GET /restaurants/{restaurant_id}/menu/new/{$}", NewMenuItemFormHandler(repo, v))
	mux.HandleFunc("POST /restaurants/{restaurant_id}/menu/new/{$}", CreateMenuItemHandler(repo, v))
	mux.HandleFunc("GET /restaurants/{restaurant_id}/menu/{menu_item_id}/edit/{$}", EditMenuItemFormHandler(repo, v))
	mux.HandleFunc("POST /restaurants/{restaurant_id}/menu/{menu_item_id}/edit/{$}", UpdateMenuItemHandler(repo, v))
	mux.HandleFunc("GET /restaurants/{restaurant_id}/menu/{menu_item_id}/delete/{$}", DeleteMenuItemFormHandler(repo, v))
	mux.HandleFunc("POST /restaurants/{restaurant_id}/menu/{menu_item_id}/delete/{$}", DeleteMenuItemHandler(repo, v))

	api := http.NewServeMux()
	api.HandleFunc("GET /api/restaurants/{$}", RestaurantsAPIHandler(repo))
	api.HandleFunc("GET /api/restaurants/{restaurant_id}/{$}", MenuItemsAPIHandler(repo))
	api.HandleFunc("GET /api/restaurants/{restaurant_id}/menu/{$}", MenuItemsAPIHandler(repo))
	api.HandleFunc("GET /api/restaurants/{restaurant_id}/menu/{menu_id}/{$}", MenuItemAPIHandler(repo))

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	})
	mux.Handle("/api/", c.Handler(api))

	return RequestLogger(mux)
}
