package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Simplici0/producequote/internal/pricing"
	"github.com/Simplici0/producequote/internal/preferences"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// unsetenv removes k for the duration of the test. An empty value would
// still count as set and stop .env files from filling it.
func unsetenv(t *testing.T, k string) {
	t.Helper()
	t.Setenv(k, "")
	_ = os.Unsetenv(k)
}

var configKeys = []string{"DB_PATH", "PORT", "APP_ENV", "DEFAULT_METHOD", "DEFAULT_THEME"}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range configKeys {
		unsetenv(t, k)
	}

	cfg := Load()

	if cfg.DBPath != defaultDBPath || cfg.Port != defaultPort {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.IsDev() {
		t.Fatalf("expected development mode by default")
	}
	if cfg.DefaultMethod != pricing.MethodGross {
		t.Fatalf("DefaultMethod = %q, want gross", cfg.DefaultMethod)
	}
	if cfg.DefaultTheme != "" {
		t.Fatalf("DefaultTheme = %q, want unset", cfg.DefaultTheme)
	}
}

func TestLoad_ReadsDotEnvWithoutOverwriting(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	for _, k := range configKeys {
		unsetenv(t, k)
	}
	t.Setenv("PORT", "9000")

	content := []byte(`
# comment
PORT=7000
DB_PATH="/tmp/quotes.db"
export APP_ENV=production
DEFAULT_METHOD=markup
DEFAULT_THEME=dark
`)
	if err := os.WriteFile(filepath.Join(dir, ".env"), content, 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	cfg := Load()

	if cfg.Port != "9000" {
		t.Fatalf("Port = %q, want existing env 9000", cfg.Port)
	}
	if cfg.DBPath != "/tmp/quotes.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.IsDev() {
		t.Fatalf("expected production mode")
	}
	if cfg.DefaultMethod != pricing.MethodMarkup {
		t.Fatalf("DefaultMethod = %q, want markup", cfg.DefaultMethod)
	}
	if cfg.DefaultTheme != preferences.ThemeDark {
		t.Fatalf("DefaultTheme = %q, want dark", cfg.DefaultTheme)
	}
}

func TestLoad_IgnoresUnknownTheme(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range configKeys {
		unsetenv(t, k)
	}
	t.Setenv("DEFAULT_THEME", "sepia")

	if cfg := Load(); cfg.DefaultTheme != "" {
		t.Fatalf("DefaultTheme = %q, want unset", cfg.DefaultTheme)
	}
}
