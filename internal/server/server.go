// Package server wires the solver into a Fiber HTTP application.
package server

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog/log"

	"github.com/solvik-labs/leetsolve/internal/config"
	"github.com/solvik-labs/leetsolve/internal/solver"
)

// Server hosts the solve endpoint.
type Server struct {
	App    *fiber.App
	cfg    *config.ServerEnvConfig
	solver *solver.Solver
}

// NewServer builds the Fiber app. Cross-origin policy lives here, not in the
// solver: all origins, GET/POST/OPTIONS, all headers.
func NewServer(cfg *config.ServerEnvConfig, s *solver.Solver) *Server {
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		BodyLimit:   cfg.BodySizeLimit,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "*",
	}))

	srv := &Server{
		App:    app,
		cfg:    cfg,
		solver: s,
	}
	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.App.Post("/api/solve", s.handleSolve)
}

// handleSolve always answers 200; failures travel inside the envelope.
func (s *Server) handleSolve(c *fiber.Ctx) error {
	var req solver.SolveRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().Err(err).Msg("failed to parse solve request body")
		msg := "Internal Server Error: " + err.Error()
		return c.JSON(solver.SolveResponse{Error: &msg})
	}
	return c.JSON(s.solver.Solve(c.UserContext(), req))
}

// Start serves HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)
	log.Info().Str("addr", addr).Msg("starting http server")
	return s.App.Listen(addr)
}

// Shutdown gracefully stops the server, waiting for in-flight requests up to
// the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.App.ShutdownWithContext(ctx)
}
