package services

import (
	"context"
	"os"
	"testing"

	"restaurant-menu/config"
	"restaurant-menu/db"
	"restaurant-menu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration test against Postgres. Skipped unless TEST_DATABASE_URL points
// at a disposable database.
func TestRepository_PostgresIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("skipping postgres integration test: TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	for _, driver := range []string{"pgx", "postgres"} {
		t.Run(driver, func(t *testing.T) {
			d, err := db.Open(ctx, config.DBConfig{Driver: driver, URL: url})
			require.NoError(t, err)
			defer d.Close()
			require.Equal(t, db.DialectPostgres, d.Dialect)
			require.NoError(t, d.Migrate(ctx, false))

			repo := NewRepository(d)
			r, err := repo.CreateRestaurant(ctx, "Integration Diner")
			require.NoError(t, err)
			defer repo.DeleteRestaurant(ctx, r.ID)

			item, err := repo.CreateMenuItem(ctx, r.ID, models.MenuItemFields{Name: "Pie", Course: "Dessert", Price: "$2.00"})
			require.NoError(t, err)

			updated, err := repo.UpdateMenuItem(ctx, item.ID, models.MenuItemFields{Price: "$2.50"})
			require.NoError(t, err)
			assert.Equal(t, "Pie", updated.Name)
			assert.Equal(t, "$2.50", updated.Price)

			require.NoError(t, repo.DeleteRestaurant(ctx, r.ID))
			_, err = repo.GetMenuItem(ctx, item.ID)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}
