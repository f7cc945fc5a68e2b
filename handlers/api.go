package handlers

import (
	"net/http"

	"restaurant-menu/models"
	"restaurant-menu/services"
)

// RestaurantsAPIHandler returns {"restaurants": [...]}.
func RestaurantsAPIHandler(repo *services.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurants, err := repo.ListRestaurants(r.Context())
		if err != nil {
			writeJSONError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.SerializeRestaurants(restaurants))
	}
}

// MenuItemsAPIHandler returns {"menu_items": [...]} for one restaurant.
func MenuItemsAPIHandler(repo *services.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "restaurant_id")
		if !ok {
			http.NotFound(w, r)
			return
		}
		if _, err := repo.GetRestaurant(r.Context(), id); err != nil {
			writeJSONError(w, err)
			return
		}
		items, err := repo.ListMenuItemsByRestaurant(r.Context(), id)
		if err != nil {
			writeJSONError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.SerializeMenuItems(items))
	}
}

// MenuItemAPIHandler returns {"menu_item": {...}}.
func MenuItemAPIHandler(repo *services.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurantID, ok := pathID(r, "restaurant_id")
		if !ok {
			http.NotFound(w, r)
			return
		}
		itemID, ok := pathID(r, "menu_id")
		if !ok {
			http.NotFound(w, r)
			return
		}
		item, err := repo.GetMenuItemForRestaurant(r.Context(), restaurantID, itemID)
		if err != nil {
			writeJSONError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.MenuItemResponse{MenuItem: item.Serialize()})
	}
}
