// Package leetcode provides a client wrapper for the LeetCode GraphQL API.
package leetcode

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/solvik-labs/leetsolve/internal/config"
)

// ErrProblemNotFound is returned when the API answers 200 but carries no
// question node for the requested slug.
var ErrProblemNotFound = errors.New("problem not found")

// The API rejects requests lacking a recognizable client signature, so the
// client always sends a browser-like User-Agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

const connectTimeout = 10 * time.Second

const questionQuery = `query getQuestion($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    content
    sampleTestCase
  }
}`

// ProblemFetcher is the interface for the client methods used by the solver.
type ProblemFetcher interface {
	FetchProblem(ctx context.Context, slug string) (Problem, error)
}

// Client is a GraphQL client wrapper for the LeetCode API.
type Client struct {
	cfg    *config.LeetCodeEnvConfig
	client *resty.Client
}

// NewClient constructs a new LeetCode client.
func NewClient(cfg *config.LeetCodeEnvConfig) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("leetcode env configuration cannot be nil")
	}

	client := resty.New().
		SetBaseURL(cfg.GraphQLURL).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetTimeout(cfg.ClientTimeout).
		SetTransport(&http.Transport{
			DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", browserUserAgent)

	return &Client{
		cfg:    cfg,
		client: client,
	}, nil
}

// FetchProblem retrieves the problem statement and sample test case for the
// given slug. One attempt per call; failures surface to the caller.
func (c *Client) FetchProblem(ctx context.Context, slug string) (Problem, error) {
	var out questionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(graphQLRequest{
			Query:     questionQuery,
			Variables: map[string]string{"titleSlug": slug},
		}).
		SetResult(&out).
		Post("")
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("question request failed")
		return Problem{}, fmt.Errorf("fetch problem: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Str("slug", slug).Msg("question non-2xx")
		return Problem{}, fmt.Errorf("leetcode returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if out.Data.Question == nil {
		return Problem{}, ErrProblemNotFound
	}
	return Problem{
		Content:        out.Data.Question.Content,
		SampleTestCase: out.Data.Question.SampleTestCase,
	}, nil
}
