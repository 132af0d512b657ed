package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Simplici0/producequote/internal/pricing"
	"github.com/Simplici0/producequote/internal/preferences"
)

const (
	defaultDBPath = "./dev.db"
	defaultPort   = "8080"
	defaultEnv    = "development"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath        string
	Port          string
	Env           string
	DefaultMethod pricing.Method
	DefaultTheme  preferences.Theme
}

// IsDev reports whether the server runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == "" || c.Env == defaultEnv || c.Env == "dev"
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: local .env files never override the real environment.
	// .env.local is loaded first so it wins over .env.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	cfg := Config{
		DBPath:        os.Getenv("DB_PATH"),
		Port:          os.Getenv("PORT"),
		Env:           strings.ToLower(os.Getenv("APP_ENV")),
		DefaultMethod: pricing.ParseMethod(os.Getenv("DEFAULT_METHOD")),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}

	if raw := os.Getenv("DEFAULT_THEME"); raw != "" {
		theme, ok := preferences.ParseTheme(raw)
		if !ok {
			log.Printf("warning: DEFAULT_THEME %q is not light or dark, ignoring", raw)
		} else {
			cfg.DefaultTheme = theme
		}
	}

	if m := os.Getenv("DEFAULT_METHOD"); m != "" && string(cfg.DefaultMethod) != strings.ToLower(strings.TrimSpace(m)) {
		log.Printf("warning: DEFAULT_METHOD %q is unknown, using %s", m, cfg.DefaultMethod)
	}

	return cfg
}
