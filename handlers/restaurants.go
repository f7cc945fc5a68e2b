package handlers

import (
	"errors"
	"net/http"

	"restaurant-menu/models"
	"restaurant-menu/services"
)

// ShowRestaurantsHandler lists every restaurant.
func ShowRestaurantsHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurants, err := repo.ListRestaurants(r.Context())
		if err != nil {
			httpError(w, err)
			return
		}
		v.Render(w, r, http.StatusOK, "restaurants", restaurants)
	}
}

// NewRestaurantFormHandler shows the create form.
func NewRestaurantFormHandler(v *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, r, http.StatusOK, "new_restaurant", nil)
	}
}

// CreateRestaurantHandler creates a restaurant from the submitted form.
func CreateRestaurantHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := formValues(r)
		if err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		fields := models.RestaurantFieldsFrom(values)
		if _, err := repo.CreateRestaurant(r.Context(), fields.Name); err != nil {
			if errors.Is(err, services.ErrValidation) {
				v.RenderError(w, r, http.StatusBadRequest, "new_restaurant", err.Error(), nil)
				return
			}
			httpError(w, err)
			return
		}
		v.Redirect(w, r, "/restaurants/", "New Restaurant Created!")
	}
}

// EditRestaurantFormHandler shows the edit form for one restaurant.
func EditRestaurantFormHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return restaurantPage(repo, v, "edit_restaurant")
}

// UpdateRestaurantHandler applies the non-empty submitted fields.
func UpdateRestaurantHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "restaurant_id")
		if !ok {
			http.NotFound(w, r)
			return
		}
		values, err := formValues(r)
		if err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		_, err = repo.UpdateRestaurant(r.Context(), id, models.RestaurantFieldsFrom(values))
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				rest, getErr := repo.GetRestaurant(r.Context(), id)
				if getErr != nil {
					httpError(w, getErr)
					return
				}
				v.RenderError(w, r, http.StatusBadRequest, "edit_restaurant", err.Error(), rest)
				return
			}
			httpError(w, err)
			return
		}
		v.Redirect(w, r, "/restaurants/", "Restaurant Updated!")
	}
}

// DeleteRestaurantFormHandler asks for confirmation.
func DeleteRestaurantFormHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return restaurantPage(repo, v, "delete_restaurant")
}

// DeleteRestaurantHandler deletes a restaurant together with its menu.
func DeleteRestaurantHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "restaurant_id")
		if !ok {
			http.NotFound(w, r)
			return
		}
		if err := repo.DeleteRestaurant(r.Context(), id); err != nil {
			httpError(w, err)
			return
		}
		v.Redirect(w, r, "/restaurants/", "Restaurant Deleted!")
	}
}

func restaurantPage(repo *services.Repository, v *Views, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "restaurant_id")
		if !ok {
			http.NotFound(w, r)
			return
		}
		rest, err := repo.GetRestaurant(r.Context(), id)
		if err != nil {
			httpError(w, err)
			return
		}
		v.Render(w, r, http.StatusOK, name, rest)
	}
}
