package services

import (
	"context"
	"errors"
	"testing"

	"restaurant-menu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurant_ThenGet(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	seen := map[int64]bool{}
	for _, name := range []string{"Urban Burger", "Super Stir Fry", "Panda Garden", "Urban Burger"} {
		created, err := repo.CreateRestaurant(ctx, name)
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "id %d reused", created.ID)
		seen[created.ID] = true

		got, err := repo.GetRestaurant(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
		assert.Equal(t, created.ID, got.ID)
	}
}

func TestCreateRestaurant_EmptyName(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.CreateRestaurant(context.Background(), "")

	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "got %v", err)
	assert.Equal(t, "name", ve.Field)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetRestaurant_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetRestaurant(context.Background(), 404)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(404), nf.ID)
	assert.Equal(t, "restaurant", nf.Entity)
}

func TestListRestaurants_OrderedByID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	empty, err := repo.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	var want []models.Restaurant
	for _, name := range []string{"Thyme for That", "Andala's", "Auntie Ann's Diner"} {
		r, err := repo.CreateRestaurant(ctx, name)
		require.NoError(t, err)
		want = append(want, *r)
	}

	got, err := repo.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdateRestaurant(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	r, err := repo.CreateRestaurant(ctx, "Urban Burger")
	require.NoError(t, err)

	t.Run("empty value is a no-op", func(t *testing.T) {
		updated, err := repo.UpdateRestaurant(ctx, r.ID, models.RestaurantFields{Name: ""})
		require.NoError(t, err)
		assert.Equal(t, "Urban Burger", updated.Name)

		got, err := repo.GetRestaurant(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "Urban Burger", got.Name)
	})

	t.Run("non-empty value overwrites", func(t *testing.T) {
		updated, err := repo.UpdateRestaurant(ctx, r.ID, models.RestaurantFields{Name: "Urban Burger & Fries"})
		require.NoError(t, err)
		assert.Equal(t, "Urban Burger & Fries", updated.Name)

		got, err := repo.GetRestaurant(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "Urban Burger & Fries", got.Name)
	})

	t.Run("invalid value leaves row unchanged", func(t *testing.T) {
		_, err := repo.UpdateRestaurant(ctx, r.ID, models.RestaurantFields{Name: "   "})
		assert.ErrorIs(t, err, ErrValidation)

		got, err := repo.GetRestaurant(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "Urban Burger & Fries", got.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.UpdateRestaurant(ctx, 999, models.RestaurantFields{Name: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteRestaurant(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	r, err := repo.CreateRestaurant(ctx, "Panda Garden")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRestaurant(ctx, r.ID))

	_, err = repo.GetRestaurant(ctx, r.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting twice is an ordinary not-found, not a crash.
	err = repo.DeleteRestaurant(ctx, r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRestaurant_CascadesToMenuItems(t *testing.T) {
	repo, d := newTestRepo(t)
	ctx := context.Background()

	keep, err := repo.CreateRestaurant(ctx, "Keep")
	require.NoError(t, err)
	gone, err := repo.CreateRestaurant(ctx, "Gone")
	require.NoError(t, err)

	kept, err := repo.CreateMenuItem(ctx, keep.ID, models.MenuItemFields{Name: "Soda", Course: "Beverage"})
	require.NoError(t, err)
	doomed, err := repo.CreateMenuItem(ctx, gone.ID, models.MenuItemFields{Name: "Fries", Course: "Appetizer"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRestaurant(ctx, gone.ID))

	_, err = repo.GetMenuItem(ctx, doomed.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetMenuItem(ctx, kept.ID)
	assert.NoError(t, err)

	var n int
	require.NoError(t, d.QueryRow(`SELECT COUNT(*) FROM menu_items WHERE restaurant_id = ?`, gone.ID).Scan(&n))
	assert.Zero(t, n)
}

func TestStorageError_WrapsDriverError(t *testing.T) {
	repo, d := newTestRepo(t)
	ctx := context.Background()

	_, err := d.Exec(`DROP TABLE menu_items`)
	require.NoError(t, err)
	_, err = d.Exec(`DROP TABLE restaurants`)
	require.NoError(t, err)

	_, err = repo.ListRestaurants(ctx)

	var se *StorageError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, "list restaurants", se.Op)
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrNotFound)
}
