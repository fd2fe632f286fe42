// Package solver orchestrates the solve flow: request validation, problem
// fetch, solution generation, and output cleanup.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/solvik-labs/leetsolve/internal/gemini"
	"github.com/solvik-labs/leetsolve/internal/leetcode"
)

// SupportedPlatform is the only judge platform this service talks to.
const SupportedPlatform = "leetcode"

// Solver sequences the two upstream calls for one request. It holds no
// per-request state; a single instance serves concurrent requests.
type Solver struct {
	fetcher   leetcode.ProblemFetcher
	generator gemini.SolutionGenerator
}

// NewSolver constructs a solver from the two upstream clients.
func NewSolver(fetcher leetcode.ProblemFetcher, generator gemini.SolutionGenerator) *Solver {
	return &Solver{
		fetcher:   fetcher,
		generator: generator,
	}
}

// Solve runs the full flow for one request. Every failure is normalized into
// the response envelope; the transport status is always 200.
func (s *Solver) Solve(ctx context.Context, req SolveRequest) SolveResponse {
	if resp, ok := validate(req); !ok {
		return resp
	}

	slug := strings.TrimSpace(req.Slug)

	problem, err := s.fetcher.FetchProblem(ctx, slug)
	if errors.Is(err, leetcode.ErrProblemNotFound) {
		return errorResponse(fmt.Sprintf("Could not find problem with slug: %s", slug))
	}
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("problem fetch failed")
		return errorResponse("Internal Server Error: " + err.Error())
	}

	raw, err := s.generator.GenerateSolution(ctx, req.Language, problem.Content, problem.SampleTestCase)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("solution generation failed")
		return errorResponse("Internal Server Error: " + err.Error())
	}

	return codeResponse(CleanCode(raw))
}

// validate applies the pre-flight checks in order, before any I/O. The bool
// is false when the returned response is terminal.
func validate(req SolveRequest) (SolveResponse, bool) {
	if !strings.EqualFold(req.Platform, SupportedPlatform) {
		return errorResponse(fmt.Sprintf("Only '%s' platform is currently supported.", SupportedPlatform)), false
	}
	if strings.TrimSpace(req.Slug) == "" {
		return errorResponse("Problem slug is required."), false
	}
	return SolveResponse{}, true
}
