package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"DB_DRIVER", "DATABASE_URL", "DB_PATH", "PORT", "CORS_ORIGINS", "TOKEN"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite3", cfg.DB.Driver)
	assert.Equal(t, "restaurant_menu.db", cfg.DB.DSN())
	assert.Equal(t, ":5000", cfg.HTTP.Addr)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.HTTP.CORSOrigins)
	assert.Empty(t, cfg.Telegram.Token)
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DBConfig
		want string
	}{
		{"url wins", DBConfig{Driver: "pgx", URL: "postgres://x/y", Host: "h"}, "postgres://x/y"},
		{"sqlite path", DBConfig{Driver: "sqlite3", Path: "/tmp/menu.db"}, "/tmp/menu.db"},
		{"postgres parts", DBConfig{Driver: "postgres", User: "u", Password: "p", Host: "h", Port: 5433, Database: "d"}, "postgres://u:p@h:5433/d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a , ,b,"))
	assert.Nil(t, splitList(""))
}

func TestAutoMigrate(t *testing.T) {
	t.Setenv("AUTO_MIGRATE", "TRUE")
	assert.True(t, AutoMigrate())
	t.Setenv("AUTO_MIGRATE", "0")
	assert.False(t, AutoMigrate())
}
