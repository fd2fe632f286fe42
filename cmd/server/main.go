package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/solvik-labs/leetsolve/internal/config"
	"github.com/solvik-labs/leetsolve/internal/gemini"
	"github.com/solvik-labs/leetsolve/internal/leetcode"
	"github.com/solvik-labs/leetsolve/internal/server"
	"github.com/solvik-labs/leetsolve/internal/solver"
	"github.com/solvik-labs/leetsolve/internal/utils/logger"
)

func main() {
	logger.Init()
	log.Info().Msg("Starting solve service...")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not loaded; continuing with existing environment")
	}

	cfg, err := config.LoadConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}
	if cfg.GeminiEnvConfig.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set; solve requests will fail at generation")
	}

	fetcher, err := leetcode.NewClient(&cfg.LeetCodeEnvConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init leetcode client")
	}

	generator, err := gemini.NewGenerator(&cfg.GeminiEnvConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init gemini client")
	}

	s := solver.NewSolver(fetcher, generator)
	srv := server.NewServer(&cfg.ServerEnvConfig, s)

	// setup signal handling for graceful shutdown before starting the server
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("shutdown signal received, stopping server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}
