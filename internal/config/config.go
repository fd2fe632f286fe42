// Package config defines environment configuration structs and loaders.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type AppConfig struct {
	ServerEnvConfig
	LeetCodeEnvConfig
	GeminiEnvConfig
}

func LoadConfig(ctx context.Context) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ServerEnvConfig configures the HTTP server.
type ServerEnvConfig struct {
	Address       string `env:"SERVER_ADDRESS, default=0.0.0.0"`
	Port          int    `env:"SERVER_PORT, default=8080"`
	BodySizeLimit int    `env:"SERVER_BODY_LIMIT, default=1048576"`
}

// LeetCodeEnvConfig configures access to the LeetCode GraphQL API.
// The URL is overridable so tests can point the client at a local server.
type LeetCodeEnvConfig struct {
	GraphQLURL    string        `env:"LEETCODE_GRAPHQL_URL, default=https://leetcode.com/graphql"`
	ClientTimeout time.Duration `env:"LEETCODE_CLIENT_TIMEOUT, default=30s"`
}

// GeminiEnvConfig configures access to the Gemini generation endpoint.
// An empty APIKey is a valid startup state; generation requests fail until
// the key is provided.
type GeminiEnvConfig struct {
	APIKey        string        `env:"GEMINI_API_KEY"`
	BaseURL       string        `env:"GEMINI_BASE_URL, default=https://generativelanguage.googleapis.com"`
	Model         string        `env:"GEMINI_MODEL, default=gemini-2.0-flash"`
	ClientTimeout time.Duration `env:"GEMINI_CLIENT_TIMEOUT, default=90s"`
}
