// Package server provides the JSON API HTTP server
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/homecook/cookbook/internal/infrastructure/config"
	"github.com/homecook/cookbook/internal/infrastructure/http/middleware"
	"github.com/homecook/cookbook/internal/ports/inbound"
)

// Server represents the HTTP server
type Server struct {
	config          *config.Config
	logger          *zap.Logger
	router          *chi.Mux
	server          *http.Server
	validate        *validator.Validate
	recipeService   inbound.RecipeService
	categoryService inbound.CategoryService
	transferService inbound.TransferService
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	recipeService inbound.RecipeService,
	categoryService inbound.CategoryService,
	transferService inbound.TransferService,
) *Server {
	s := &Server{
		config:          cfg,
		logger:          logger,
		validate:        validator.New(),
		recipeService:   recipeService,
		categoryService: categoryService,
		transferService: transferService,
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return s
}

// setupRoutes configures the JSON API routes
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	if s.config.Metrics.Enabled {
		metrics := middleware.NewMetrics()
		r.Use(metrics.Handler())
		r.Handle(s.config.Metrics.Path, promhttp.Handler())
	}

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", s.handleListRecipes)
			r.Post("/", s.handleCreateRecipe)
			r.Get("/export", s.handleExportCSV)
			r.Post("/import", s.handleImportCSV)
			r.Get("/import/template", s.handleImportTemplate)
			r.Get("/{id}", s.handleGetRecipe)
			r.Put("/{id}", s.handleUpdateRecipe)
			r.Delete("/{id}", s.handleDeleteRecipe)
			r.Post("/{id}/favorite", s.handleToggleFavorite)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.handleListCategories)
			r.Post("/", s.handleCreateCategory)
			r.Put("/{id}", s.handleRenameCategory)
			r.Delete("/{id}", s.handleDeleteCategory)
		})

		r.Post("/convert", s.handleConvert)
		r.Post("/ingredients/parse", s.handleParseIngredients)
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting API server", zap.String("address", s.server.Addr))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// Handler returns the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleHealth provides the health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   s.config.App.Name,
		"version":   s.config.App.Version,
		"timestamp": time.Now().Unix(),
	})
}
