package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Xvidddd/AI-Travel-Planner/internal/config"
	"github.com/Xvidddd/AI-Travel-Planner/internal/handler"
	"github.com/Xvidddd/AI-Travel-Planner/internal/middleware"
	"github.com/Xvidddd/AI-Travel-Planner/internal/model"
)

// Handlers bundles the route handlers the server exposes
type Handlers struct {
	Planner *handler.PlannerHandler
	Expense *handler.ExpenseHandler
	Voice   *handler.VoiceHandler
	Geocode *handler.GeocodeHandler
}

// Server represents the HTTP server for the travel-planning service
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
}

// NewServer creates and configures a new server instance
func NewServer(cfg *config.Config, handlers Handlers) *Server {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg))
	router.Use(middleware.RequestResponseLogger(middleware.LoggerConfig{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
	}))

	server := &Server{
		router: router,
		config: cfg,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	server.setupRoutes(handlers)

	return server
}

// corsMiddleware builds the CORS policy from configuration
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cors.New(corsConfig)
}

// GetRouter returns the gin router instance
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// setupRoutes configures all application routes
func (s *Server) setupRoutes(handlers Handlers) {
	// Health check endpoint
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.HealthResponse{
			Service:   "AuroraVoyage",
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	// API documentation endpoints
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)
	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})

	v1 := s.router.Group("/v1")
	{
		v1.POST("/plan", handlers.Planner.GeneratePlan)

		v1.POST("/itineraries/draft", handlers.Planner.DraftItinerary)
		v1.POST("/itineraries", handlers.Planner.SaveItinerary)
		v1.GET("/itineraries", handlers.Planner.GetItineraries)
		v1.DELETE("/itineraries/:id", handlers.Planner.DeleteItinerary)

		v1.POST("/expenses", handlers.Expense.CreateExpense)
		v1.GET("/expenses", handlers.Expense.GetExpenses)
		v1.DELETE("/expenses/:id", handlers.Expense.DeleteExpense)

		v1.POST("/voice/parse", handlers.Voice.ParsePlanner)
		v1.POST("/voice/expense", handlers.Voice.ParseExpense)

		v1.POST("/geocode", handlers.Geocode.GeocodeBatch)
	}
}

// Start begins listening for requests and handles graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server listening on port %d", s.config.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exited gracefully")
	return nil
}
