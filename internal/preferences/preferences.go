// Package preferences persists the user's display theme.
package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Theme is the colour scheme of the calculator UI.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeKey is the preferences row holding the theme.
const ThemeKey = "produce-calc-theme"

// ParseTheme returns the theme named by s and whether s named one.
func ParseTheme(s string) (Theme, bool) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark:
		return t, true
	default:
		return ThemeLight, false
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Resolve picks the saved theme when there is one, else the system theme.
func Resolve(saved Theme, ok bool, system Theme) Theme {
	if ok {
		return saved
	}
	if system == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Store reads and writes preferences in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store backed by db. The preferences table must exist.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Theme returns the saved theme. ok is false when none was saved.
func (s *Store) Theme(ctx context.Context) (theme Theme, ok bool, err error) {
	var value string
	err = s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, ThemeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ThemeLight, false, nil
	}
	if err != nil {
		return ThemeLight, false, fmt.Errorf("query theme preference: %w", err)
	}

	theme, ok = ParseTheme(value)
	return theme, ok, nil
}

// SetTheme saves theme, replacing any previous choice.
func (s *Store) SetTheme(ctx context.Context, theme Theme) error {
	if _, ok := ParseTheme(string(theme)); !ok {
		return fmt.Errorf("unknown theme %q", theme)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, ThemeKey, string(theme))
	if err != nil {
		return fmt.Errorf("save theme preference: %w", err)
	}
	return nil
}

// ClearTheme forgets the saved theme so the system preference applies again.
func (s *Store) ClearTheme(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, ThemeKey); err != nil {
		return fmt.Errorf("clear theme preference: %w", err)
	}
	return nil
}
