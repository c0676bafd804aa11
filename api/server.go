package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/CristiGvl/antecDisplay/internal/monitor"
)

// Server exposes the monitor's last readings over HTTP. It only reads
// the loop's status snapshot; the display path never depends on it.
type Server struct {
	app     *fiber.App
	status  *monitor.Status
	started time.Time
}

// NewServer creates the status API server
func NewServer(status *monitor.Status) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ServerHeader: "antecDisplay",
		AppName:      "antecDisplay v1.0",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "*",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:     app,
		status:  status,
		started: time.Now(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	api.Get("/status", s.getStatus)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
