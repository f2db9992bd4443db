// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server assembles the research-hub fiber application: the
// paper-search proxy route, a health endpoint, and optional static serving
// of the frontend.
package server

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/research-hub/internal/proxy"
	"github.com/pdiddy/research-hub/pkg/types"
)

// PapersPath is the single proxy route the frontend calls.
const PapersPath = "/api/papers"

// Server wraps the fiber app and its configuration.
type Server struct {
	cfg types.Config
	log *logrus.Logger
	app *fiber.App
}

// New builds the application. The Fetcher is injected so tests can spy on
// outbound calls without a network.
func New(cfg types.Config, log *logrus.Logger, fetch proxy.Fetcher) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
	})

	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Registered for all methods: the handler itself answers 405 for
	// non-GET so the browser gets the JSON body it expects.
	app.All(PapersPath, proxy.Handler(fetch, log))

	// The frontend is a static page served next to the API. Serving is
	// skipped when the directory is absent.
	if cfg.Server.WebDir != "" {
		if info, err := os.Stat(cfg.Server.WebDir); err == nil && info.IsDir() {
			app.Static("/", cfg.Server.WebDir)
		} else {
			log.WithField("dir", cfg.Server.WebDir).Warn("web directory not found, static serving disabled")
		}
	}

	return &Server{cfg: cfg, log: log, app: app}
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App { return s.app }

// Run listens on the configured address until Shutdown or a listener error.
func (s *Server) Run() error {
	s.log.WithField("addr", s.cfg.Server.Addr).Info("research-hub listening")
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown drains in-flight requests and closes the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
