package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantApply_SkipsEmpty(t *testing.T) {
	r := Restaurant{ID: 1, Name: "Urban Burger"}

	assert.False(t, r.Apply(RestaurantFields{Name: ""}))
	assert.Equal(t, "Urban Burger", r.Name)

	assert.True(t, r.Apply(RestaurantFields{Name: "Super Stir Fry"}))
	assert.Equal(t, "Super Stir Fry", r.Name)
	assert.Equal(t, int64(1), r.ID)
}

func TestMenuItemApply_FieldByField(t *testing.T) {
	m := MenuItem{ID: 3, Name: "Veggie Burger", Course: "Entree", Description: "old", Price: "$7.50", RestaurantID: 9}

	changed := m.Apply(MenuItemFields{Price: "$8.00", Description: ""})

	assert.True(t, changed)
	assert.Equal(t, MenuItem{ID: 3, Name: "Veggie Burger", Course: "Entree", Description: "old", Price: "$8.00", RestaurantID: 9}, m)
	assert.False(t, m.Apply(MenuItemFields{}))
}

func TestFieldsFrom_IgnoresUnknownKeys(t *testing.T) {
	values := map[string]string{
		"name":          "Chocolate Cake",
		"course":        "Dessert",
		"price":         "$3.99",
		"restaurant_id": "42",
		"id":            "7",
	}

	assert.Equal(t, MenuItemFields{Name: "Chocolate Cake", Course: "Dessert", Price: "$3.99"}, MenuItemFieldsFrom(values))
	assert.Equal(t, RestaurantFields{Name: "Chocolate Cake"}, RestaurantFieldsFrom(values))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		field string
	}{
		{"empty restaurant name", (&Restaurant{}).Validate(), "name"},
		{"blank restaurant name", (&Restaurant{Name: "   "}).Validate(), "name"},
		{"long restaurant name", (&Restaurant{Name: strings.Repeat("a", MaxNameLen+1)}).Validate(), "name"},
		{"empty item name", (&MenuItem{Price: "$1"}).Validate(), "name"},
		{"long price", (&MenuItem{Name: "Tea", Price: "$1,000,000"}).Validate(), "price"},
		{"long course", (&MenuItem{Name: "Tea", Course: strings.Repeat("c", MaxCourseLen+1)}).Validate(), "course"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fe *FieldError
			require.True(t, errors.As(tt.err, &fe), "got %v", tt.err)
			assert.Equal(t, tt.field, fe.Field)
		})
	}

	assert.NoError(t, (&Restaurant{Name: strings.Repeat("a", MaxNameLen)}).Validate())
	assert.NoError(t, (&MenuItem{Name: "Cheese Pizza", Price: "$5.99"}).Validate())
}

func TestMenuItemSerialize_OmitsRestaurantID(t *testing.T) {
	m := MenuItem{ID: 1, Name: "Cheese Pizza", Course: "Entree", Description: "made with fresh cheese", Price: "$5.99", RestaurantID: 1}

	b, err := json.Marshal(m.Serialize())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1,"name":"Cheese Pizza","course":"Entree","description":"made with fresh cheese","price":"$5.99"}`, string(b))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.NotContains(t, raw, "restaurant_id")
}

func TestSerializeRestaurants_RoundTrip(t *testing.T) {
	in := []Restaurant{{ID: 3, Name: "Panda Garden"}, {ID: 1, Name: "Urban Burger"}, {ID: 2, Name: "Thyme for That"}}

	b, err := json.Marshal(SerializeRestaurants(in))
	require.NoError(t, err)

	var decoded RestaurantsResponse
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, in, decoded.Hydrate())
}

func TestSerialize_EmptyListsEncodeAsArrays(t *testing.T) {
	b, err := json.Marshal(SerializeRestaurants(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"restaurants":[]}`, string(b))

	b, err = json.Marshal(SerializeMenuItems(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"menu_items":[]}`, string(b))
}
