package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/Simplici0/producequote/internal/preferences"
)

const systemThemeHeader = "Sec-CH-Prefers-Color-Scheme"

// currentTheme resolves the theme for r: the saved choice, else the
// browser's colour scheme hint.
func (s *server) currentTheme(r *http.Request) preferences.Theme {
	saved, ok, err := s.prefs.Theme(r.Context())
	if err != nil {
		log.Printf("load theme preference: %v", err)
	}
	// The hint is a structured header string: "dark".
	system, _ := preferences.ParseTheme(strings.Trim(r.Header.Get(systemThemeHeader), `"`))
	return preferences.Resolve(saved, ok, system)
}

// handleThemeToggle flips and saves the theme, then redraws the posted
// worksheet so no entered data is lost.
func (s *server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	next := s.currentTheme(r).Toggle()
	if err := s.prefs.SetTheme(r.Context(), next); err != nil {
		log.Printf("save theme preference: %v", err)
		http.Error(w, "failed to save theme", http.StatusInternalServerError)
		return
	}

	ws, method := s.parseWorksheetForm(r)
	s.renderTemplate(w, http.StatusOK, "quote.html", s.newQuoteView(r, ws, method))
}

// handleThemeReset forgets the saved theme so the browser's colour scheme
// applies again, then redraws the posted worksheet.
func (s *server) handleThemeReset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if err := s.prefs.ClearTheme(r.Context()); err != nil {
		log.Printf("clear theme preference: %v", err)
		http.Error(w, "failed to reset theme", http.StatusInternalServerError)
		return
	}

	ws, method := s.parseWorksheetForm(r)
	s.renderTemplate(w, http.StatusOK, "quote.html", s.newQuoteView(r, ws, method))
}
