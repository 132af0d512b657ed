package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/producequote/internal/config"
	"github.com/Simplici0/producequote/internal/db"
	"github.com/Simplici0/producequote/internal/migrations"
	"github.com/Simplici0/producequote/internal/preferences"
	"github.com/Simplici0/producequote/internal/pricing"
	"github.com/Simplici0/producequote/internal/seed"
)

//go:embed templates/*.html
var templatesFS embed.FS

type server struct {
	db            *sql.DB
	prefs         *preferences.Store
	defaultMethod pricing.Method
	now           func() time.Time
}

type baseViewData struct {
	ErrorMessage   string
	SuccessMessage string
	Theme          preferences.Theme
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}
	if version, err := migrations.Version(database); err == nil {
		log.Printf("database schema at version %d", version)
	}

	stats, err := seed.Run(database, seed.Config{DefaultTheme: cfg.DefaultTheme})
	if err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("seeded %d preference(s)", stats.Inserts)
	}

	srv := newServer(database, cfg.DefaultMethod)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(cfg.IsDev()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()
	log.Printf("listening on %s (%s)", httpServer.Addr, cfg.Env)

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}

func newServer(database *sql.DB, defaultMethod pricing.Method) *server {
	return &server{
		db:            database,
		prefs:         preferences.NewStore(database),
		defaultMethod: defaultMethod,
		now:           time.Now,
	}
}

func (s *server) routes(requestLogging bool) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if requestLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(colorSchemeHint)

	r.Get("/", s.handleHome)
	r.Post("/quote", s.handleQuote)
	r.Post("/quote/import", s.handleImport)
	r.Post("/quote/export/{format}", s.handleExport)
	r.Post("/theme", s.handleThemeToggle)
	r.Post("/theme/reset", s.handleThemeReset)
	r.Post("/api/quote", s.handleAPIQuote)
	r.Get("/healthz", s.handleHealth)

	return r
}

// colorSchemeHint asks browsers to send their preferred colour scheme.
func colorSchemeHint(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", systemThemeHeader)
		w.Header().Add("Vary", systemThemeHeader)
		next.ServeHTTP(w, r)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *server) renderTemplate(w http.ResponseWriter, status int, page string, data any) {
	templates, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
	if err != nil {
		log.Printf("parse template %s: %v", page, err)
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Printf("render template %s: %v", page, err)
		return
	}
}
