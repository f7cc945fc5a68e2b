package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	HTTP     HTTPConfig
	Telegram TelegramConfig
}

type DBConfig struct {
	Driver   string // "sqlite3", "pgx" or "postgres"
	URL      string // full DSN, overrides the discrete fields below
	Path     string // sqlite database file
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type HTTPConfig struct {
	Addr          string
	CORSOrigins   []string
	SessionSecret string
}

type TelegramConfig struct {
	Token string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return &Config{
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite3"),
			URL:      getEnv("DATABASE_URL", ""),
			Path:     getEnv("DB_PATH", "restaurant_menu.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "restaurant_menu"),
		},
		HTTP: HTTPConfig{
			Addr:          ":" + getEnv("PORT", "5000"),
			CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
			SessionSecret: getEnv("SESSION_SECRET", "super_secret_key"),
		},
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
	}, nil
}

// AutoMigrate reports whether AUTO_MIGRATE is set to 1 or true.
func AutoMigrate() bool {
	v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE"))
	return v == "1" || strings.EqualFold(v, "true")
}

// DSN builds the connection string for the configured driver.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	if c.Driver == "sqlite3" {
		return c.Path
	}
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.Database
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
