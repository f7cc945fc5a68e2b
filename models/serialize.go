package models

// SerializedRestaurant is the public JSON form of a restaurant.
type SerializedRestaurant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SerializedMenuItem is the public JSON form of a menu item. The owning
// restaurant id is intentionally absent.
type SerializedMenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Course      string `json:"course"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func (r Restaurant) Serialize() SerializedRestaurant {
	return SerializedRestaurant{ID: r.ID, Name: r.Name}
}

func (m MenuItem) Serialize() SerializedMenuItem {
	return SerializedMenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Course:      m.Course,
		Description: m.Description,
		Price:       m.Price,
	}
}

// Restaurant rebuilds the entity from its public form.
func (s SerializedRestaurant) Restaurant() Restaurant {
	return Restaurant{ID: s.ID, Name: s.Name}
}

// RestaurantsResponse is the body of GET /api/restaurants/.
type RestaurantsResponse struct {
	Restaurants []SerializedRestaurant `json:"restaurants"`
}

// MenuItemsResponse is the body of GET /api/restaurants/{id}/menu/.
type MenuItemsResponse struct {
	MenuItems []SerializedMenuItem `json:"menu_items"`
}

// MenuItemResponse is the body of GET /api/restaurants/{id}/menu/{menu_id}/.
type MenuItemResponse struct {
	MenuItem SerializedMenuItem `json:"menu_item"`
}

// SerializeRestaurants keeps input order and never returns nil, so an empty
// list encodes as [] rather than null.
func SerializeRestaurants(rs []Restaurant) RestaurantsResponse {
	out := make([]SerializedRestaurant, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Serialize())
	}
	return RestaurantsResponse{Restaurants: out}
}

func SerializeMenuItems(items []MenuItem) MenuItemsResponse {
	out := make([]SerializedMenuItem, 0, len(items))
	for _, m := range items {
		out = append(out, m.Serialize())
	}
	return MenuItemsResponse{MenuItems: out}
}

// Hydrate turns a decoded restaurants body back into entities, in order.
func (r RestaurantsResponse) Hydrate() []Restaurant {
	out := make([]Restaurant, 0, len(r.Restaurants))
	for _, s := range r.Restaurants {
		out = append(out, s.Restaurant())
	}
	return out
}
