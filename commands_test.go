package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"restaurant-menu/db"
	"restaurant-menu/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrateAndSeedCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.db")

	_, err := run(t, "--db", path, "migrate")
	require.NoError(t, err)

	out, err := run(t, "--db", path, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 6 restaurants and 27 menu items.")

	d, err := db.OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	defer d.Close()

	restaurants, err := services.NewRepository(d).ListRestaurants(context.Background())
	require.NoError(t, err)
	assert.Len(t, restaurants, 6)
}

func TestSeedCommand_MissingFile(t *testing.T) {
	_, err := run(t, "--db", filepath.Join(t.TempDir(), "cli.db"), "seed", "does-not-exist.yaml")
	assert.Error(t, err)
}

func TestBotCommand_RequiresToken(t *testing.T) {
	t.Setenv("TOKEN", "")
	_, err := run(t, "--db", filepath.Join(t.TempDir(), "cli.db"), "bot")
	assert.EqualError(t, err, "TOKEN not set")
}
