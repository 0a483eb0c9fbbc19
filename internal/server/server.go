// Package server wires the HTTP surface over the services.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/foodieapp/backend/config"
	"github.com/foodieapp/backend/internal/api"
	"github.com/foodieapp/backend/internal/middleware"
	"github.com/foodieapp/backend/internal/service"
)

// Server is the HTTP server over the recipe engine.
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    zerolog.Logger
}

// New assembles the router and handlers.
func New(cfg *config.Config, recipes *service.RecipeService, notifications *service.NotificationService, auth *service.AuthService, log zerolog.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "state": recipes.State()})
	})

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(auth).RegisterRoutes(v1)
	api.NewRecipeHandler(recipes, auth).RegisterRoutes(v1)
	api.NewMetaHandler().RegisterRoutes(v1)
	api.NewSettingsHandler(recipes).RegisterRoutes(v1)
	api.NewNotificationHandler(notifications).RegisterRoutes(v1)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerAddr(),
			Handler: router,
		},
		log: log.With().Str("component", "server").Logger(),
	}
}

// Router returns the underlying gin engine, for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.http.Addr).Msg("listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
