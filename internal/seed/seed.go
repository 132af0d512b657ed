package seed

import (
	"database/sql"
	"fmt"

	"github.com/Simplici0/producequote/internal/preferences"
)

// Config contains the values required by startup seed.
type Config struct {
	// DefaultTheme is saved when no theme was chosen yet. Empty leaves the
	// system preference in charge.
	DefaultTheme preferences.Theme
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way.
func Run(db *sql.DB, cfg Config) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureTheme(tx, cfg.DefaultTheme, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureTheme(tx *sql.Tx, theme preferences.Theme, stats *Stats) error {
	if theme == "" {
		return nil
	}
	if _, ok := preferences.ParseTheme(string(theme)); !ok {
		return fmt.Errorf("seed theme %q is not light or dark", theme)
	}

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM preferences WHERE key = ? LIMIT 1)`, preferences.ThemeKey).Scan(&exists); err != nil {
		return fmt.Errorf("check theme preference existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`INSERT INTO preferences (key, value) VALUES (?, ?)`, preferences.ThemeKey, string(theme)); err != nil {
		return fmt.Errorf("insert default theme: %w", err)
	}
	stats.Inserts++
	return nil
}
