package services

import (
	"context"
	"path/filepath"
	"testing"

	"restaurant-menu/db"

	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Repository, *db.DB) {
	t.Helper()
	ctx := context.Background()

	d, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "menu.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	require.NoError(t, d.Migrate(ctx, false))
	return NewRepository(d), d
}
