// Package ui exposes the scoring engine over HTTP for the benchmark
// harness: single-case scoring, batch aggregation, taxonomy inspection and a
// rendered run summary.
package ui

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cryptobench/app"
	"cryptobench/domain/taxonomy"
	"cryptobench/internal"
)

// App represents the HTTP application
type App struct {
	router  *chi.Mux
	reg     *taxonomy.Registry
	service *app.BenchmarkService
	repo    app.RunRepository // nil when running without a database
	logger  *internal.Logger

	mu      sync.RWMutex
	lastRun *app.RunResult
}

// NewApp creates the HTTP application and mounts its routes. repo may be nil;
// the stored-run endpoints then answer 404.
func NewApp(reg *taxonomy.Registry, service *app.BenchmarkService, repo app.RunRepository, logger *internal.Logger) *App {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	a := &App{
		router:  chi.NewRouter(),
		reg:     reg,
		service: service,
		repo:    repo,
		logger:  logger,
	}
	a.routes()
	return a
}

func (a *App) routes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Recoverer)

	a.router.Route("/api", func(r chi.Router) {
		r.Post("/score", a.handleScore)
		r.Post("/aggregate", a.handleAggregate)
		r.Post("/run", a.handleRun)
		r.Get("/runs", a.handleListRuns)
		r.Get("/taxonomy", a.handleTaxonomy)
		r.Get("/taxonomy/domestic", a.handleDomestic)
	})
	a.router.Get("/report", a.handleReport)
	a.router.Get("/report/{runID}", a.handleReportByID)
}

// Router returns the mounted handler
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) setLastRun(result *app.RunResult) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastRun = result
}

func (a *App) getLastRun() *app.RunResult {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastRun
}
