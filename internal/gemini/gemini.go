// Package gemini provides a client wrapper for the Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"

	"github.com/solvik-labs/leetsolve/internal/config"
)

// ErrCredentialNotSet is returned when no API key is configured. Starting
// without a key is valid; every generation attempt fails with this error
// until one is provided.
var ErrCredentialNotSet = errors.New("gemini credential not set")

const connectTimeout = 10 * time.Second

const promptTemplate = `Write a solution in %s for the following programming problem.

Problem description (HTML):
%s

Sample test case:
%s

Return only the raw source code. Do not wrap it in markdown code fences. Do not add any explanation. Make sure the solution handles the sample test case.`

// SolutionGenerator is the interface for the client methods used by the solver.
type SolutionGenerator interface {
	GenerateSolution(ctx context.Context, language, problemContent, sampleTestCase string) (string, error)
}

// Generator is an HTTP client wrapper for the Gemini generation endpoint.
type Generator struct {
	cfg        *config.GeminiEnvConfig
	httpClient *retryablehttp.Client
}

// NewGenerator constructs a new Gemini client. Every upstream failure must
// surface to the caller on the same request, so retries are disabled.
func NewGenerator(cfg *config.GeminiEnvConfig) (*Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("gemini env configuration cannot be nil")
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 0
	// The default policy would still classify 429/5xx as retryable and eat
	// the response on the way out; the status and body must reach the caller.
	client.CheckRetry = func(_ context.Context, _ *http.Response, err error) (bool, error) {
		return false, err
	}
	client.HTTPClient.Timeout = cfg.ClientTimeout
	client.HTTPClient.Transport = &http.Transport{
		DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
	}
	client.Logger = nil

	return &Generator{
		cfg:        cfg,
		httpClient: client,
	}, nil
}

// GenerateSolution asks the model for a solution in the given language and
// returns the raw generated text. The credential is checked before any
// network call is made.
func (g *Generator) GenerateSolution(ctx context.Context, language, problemContent, sampleTestCase string) (string, error) {
	if g.cfg.APIKey == "" {
		return "", ErrCredentialNotSet
	}

	prompt := fmt.Sprintf(promptTemplate, language, problemContent, sampleTestCase)
	body, err := sonic.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.cfg.BaseURL, g.cfg.Model, url.QueryEscape(g.cfg.APIKey))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("generate-content request failed")
		return "", fmt.Errorf("generate solution: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("body", string(respBody)).Msg("generate-content non-2xx")
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var out generateContentResponse
	if err := sonic.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	// A 200 without candidate text is a hard failure, never an empty string.
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response missing candidate text")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
