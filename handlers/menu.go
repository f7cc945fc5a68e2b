package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	"restaurant-menu/menupdf"
	"restaurant-menu/models"
	"restaurant-menu/services"
)

type menuPage struct {
	Restaurant *models.Restaurant
	HasItems   bool
	Menu       services.Menu
}

type menuItemPage struct {
	RestaurantID int64
	Item         *models.MenuItem
	Fields       models.MenuItemFields
	Courses      []string
}

func menuURL(restaurantID int64) string {
	return fmt.Sprintf("/restaurants/%d/menu/", restaurantID)
}

// loadMenu fetches a restaurant and its categorized items.
func loadMenu(r *http.Request, repo *services.Repository, restaurantID int64) (*models.Restaurant, services.Menu, error) {
	rest, err := repo.GetRestaurant(r.Context(), restaurantID)
	if err != nil {
		return nil, services.Menu{}, err
	}
	items, err := repo.ListMenuItemsByRestaurant(r.Context(), restaurantID)
	if err != nil {
		return nil, services.Menu{}, err
	}
	return rest, services.Categorize(items), nil
}

// ShowMenuHandler renders a restaurant's menu grouped by course.
func ShowMenuHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "restaurant_id")
		if !ok {
			http.NotFound(w, r)
			return
		}
		rest, menu, err := loadMenu(r, repo, id)
		if err != nil {
			httpError(w, err)
			return
		}
		v.Render(w, r, http.StatusOK, "menu_items", menuPage{Restaurant: rest, HasItems: !menu.Empty(), Menu: menu})
	}
}

// MenuPDFHandler serves a printable copy of a restaurant's menu.
func MenuPDFHandler(repo *services.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "restaurant_id")
		if !ok {
			http.NotFound(w, r)
			return
		}
		rest, menu, err := loadMenu(r, repo, id)
		if err != nil {
			httpError(w, err)
			return
		}
		var buf bytes.Buffer
		if err := menupdf.Render(&buf, *rest, menu); err != nil {
			log.Println("menu pdf:", err)
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=menu-%d.pdf", id))
		buf.WriteTo(w)
	}
}

// NewMenuItemFormHandler shows the create form for a restaurant's menu.
func NewMenuItemFormHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "restaurant_id")
		if !ok {
			http.NotFound(w, r)
			return
		}
		if _, err := repo.GetRestaurant(r.Context(), id); err != nil {
			httpError(w, err)
			return
		}
		v.Render(w, r, http.StatusOK, "new_menu_item", menuItemPage{RestaurantID: id, Courses: models.Courses})
	}
}

// CreateMenuItemHandler adds an item to a restaurant's menu.
func CreateMenuItemHandler(repo *services.Repository, v *Views) http.HandlerFunc {
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
		fields := models.MenuItemFieldsFrom(values)
		if _, err := repo.CreateMenuItem(r.Context(), id, fields); err != nil {
			if errors.Is(err, services.ErrValidation) {
				v.RenderError(w, r, http.StatusBadRequest, "new_menu_item", err.Error(),
					menuItemPage{RestaurantID: id, Fields: fields, Courses: models.Courses})
				return
			}
			httpError(w, err)
			return
		}
		v.Redirect(w, r, menuURL(id), "New Menu Item Created!")
	}
}

// EditMenuItemFormHandler shows the edit form for one item.
func EditMenuItemFormHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return menuItemForm(repo, v, "edit_menu_item")
}

// UpdateMenuItemHandler applies the non-empty submitted fields to an item.
func UpdateMenuItemHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurantID, item, ok := lookupMenuItem(w, r, repo)
		if !ok {
			return
		}
		values, err := formValues(r)
		if err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		if _, err := repo.UpdateMenuItem(r.Context(), item.ID, models.MenuItemFieldsFrom(values)); err != nil {
			if errors.Is(err, services.ErrValidation) {
				v.RenderError(w, r, http.StatusBadRequest, "edit_menu_item", err.Error(),
					menuItemPage{RestaurantID: restaurantID, Item: item, Courses: models.Courses})
				return
			}
			httpError(w, err)
			return
		}
		v.Redirect(w, r, menuURL(restaurantID), "Menu Item Updated!")
	}
}

// DeleteMenuItemFormHandler asks for confirmation.
func DeleteMenuItemFormHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return menuItemForm(repo, v, "delete_menu_item")
}

// DeleteMenuItemHandler removes one item from a restaurant's menu.
func DeleteMenuItemHandler(repo *services.Repository, v *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurantID, item, ok := lookupMenuItem(w, r, repo)
		if !ok {
			return
		}
		if err := repo.DeleteMenuItem(r.Context(), item.ID); err != nil {
			httpError(w, err)
			return
		}
		v.Redirect(w, r, menuURL(restaurantID), "Menu Item Deleted!")
	}
}

func menuItemForm(repo *services.Repository, v *Views, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurantID, item, ok := lookupMenuItem(w, r, repo)
		if !ok {
			return
		}
		v.Render(w, r, http.StatusOK, name, menuItemPage{RestaurantID: restaurantID, Item: item, Courses: models.Courses})
	}
}

// lookupMenuItem resolves the item named by the path, writing the error
// response itself when it cannot.
func lookupMenuItem(w http.ResponseWriter, r *http.Request, repo *services.Repository) (int64, *models.MenuItem, bool) {
	restaurantID, ok := pathID(r, "restaurant_id")
	if !ok {
		http.NotFound(w, r)
		return 0, nil, false
	}
	itemID, ok := pathID(r, "menu_item_id")
	if !ok {
		http.NotFound(w, r)
		return 0, nil, false
	}
	item, err := repo.GetMenuItemForRestaurant(r.Context(), restaurantID, itemID)
	if err != nil {
		httpError(w, err)
		return 0, nil, false
	}
	return restaurantID, item, true
}
