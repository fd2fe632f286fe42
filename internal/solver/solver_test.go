package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvik-labs/leetsolve/internal/gemini"
	"github.com/solvik-labs/leetsolve/internal/leetcode"
)

type fakeFetcher struct {
	calls   int
	problem leetcode.Problem
	err     error
}

func (f *fakeFetcher) FetchProblem(_ context.Context, _ string) (leetcode.Problem, error) {
	f.calls++
	return f.problem, f.err
}

type fakeGenerator struct {
	calls    int
	lastLang string
	text     string
	err      error
}

func (g *fakeGenerator) GenerateSolution(_ context.Context, language, _, _ string) (string, error) {
	g.calls++
	g.lastLang = language
	return g.text, g.err
}

func TestSolve_UnsupportedPlatform(t *testing.T) {
	fetcher := &fakeFetcher{}
	generator := &fakeGenerator{}
	s := NewSolver(fetcher, generator)

	resp := s.Solve(context.Background(), SolveRequest{Platform: "codeforces", Slug: "two-sum", Language: "python"})

	require.NotNil(t, resp.Error)
	assert.Equal(t, "Only 'leetcode' platform is currently supported.", *resp.Error)
	assert.Nil(t, resp.Code)
	assert.Zero(t, fetcher.calls, "validation failures must not reach the network")
	assert.Zero(t, generator.calls)
}

func TestSolve_PlatformCaseInsensitive(t *testing.T) {
	fetcher := &fakeFetcher{problem: leetcode.Problem{Content: "<p>x</p>", SampleTestCase: "[1]"}}
	generator := &fakeGenerator{text: "print(1)"}
	s := NewSolver(fetcher, generator)

	for _, platform := range []string{"leetcode", "LeetCode", "LEETCODE"} {
		resp := s.Solve(context.Background(), SolveRequest{Platform: platform, Slug: "two-sum", Language: "python"})
		require.Nil(t, resp.Error, "platform %q should be accepted", platform)
		require.NotNil(t, resp.Code)
	}
}

func TestSolve_BlankSlug(t *testing.T) {
	for _, slug := range []string{"", "   ", "\t\n"} {
		fetcher := &fakeFetcher{}
		generator := &fakeGenerator{}
		s := NewSolver(fetcher, generator)

		resp := s.Solve(context.Background(), SolveRequest{Platform: "leetcode", Slug: slug, Language: "python"})

		require.NotNil(t, resp.Error)
		assert.Equal(t, "Problem slug is required.", *resp.Error)
		assert.Nil(t, resp.Code)
		assert.Zero(t, fetcher.calls)
		assert.Zero(t, generator.calls)
	}
}

func TestSolve_ProblemNotFound(t *testing.T) {
	fetcher := &fakeFetcher{err: leetcode.ErrProblemNotFound}
	generator := &fakeGenerator{}
	s := NewSolver(fetcher, generator)

	resp := s.Solve(context.Background(), SolveRequest{Platform: "leetcode", Slug: "no-such-problem", Language: "python"})

	require.NotNil(t, resp.Error)
	assert.Equal(t, "Could not find problem with slug: no-such-problem", *resp.Error)
	assert.Nil(t, resp.Code)
	assert.Zero(t, generator.calls, "generation must not run after a failed fetch")
}

func TestSolve_FetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("leetcode returned status 500: boom")}
	generator := &fakeGenerator{}
	s := NewSolver(fetcher, generator)

	resp := s.Solve(context.Background(), SolveRequest{Platform: "leetcode", Slug: "two-sum", Language: "python"})

	require.NotNil(t, resp.Error)
	assert.Equal(t, "Internal Server Error: leetcode returned status 500: boom", *resp.Error)
	assert.Nil(t, resp.Code)
	assert.Zero(t, generator.calls)
}

func TestSolve_MissingCredential(t *testing.T) {
	fetcher := &fakeFetcher{problem: leetcode.Problem{Content: "<p>x</p>"}}
	generator := &fakeGenerator{err: gemini.ErrCredentialNotSet}
	s := NewSolver(fetcher, generator)

	resp := s.Solve(context.Background(), SolveRequest{Platform: "leetcode", Slug: "two-sum", Language: "python"})

	require.NotNil(t, resp.Error)
	assert.Contains(t, *resp.Error, "Internal Server Error:")
	assert.Contains(t, *resp.Error, "credential not set")
	assert.Equal(t, 1, fetcher.calls, "the fetch still happens before the credential check fires")
}

func TestSolve_Success(t *testing.T) {
	fetcher := &fakeFetcher{problem: leetcode.Problem{Content: "<p>x</p>", SampleTestCase: "[1]"}}
	generator := &fakeGenerator{text: "```python\nprint(1)\n```"}
	s := NewSolver(fetcher, generator)

	resp := s.Solve(context.Background(), SolveRequest{Platform: "leetcode", Slug: " two-sum ", Language: "python"})

	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Code)
	assert.Equal(t, "print(1)", *resp.Code, "fences are stripped before responding")
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 1, generator.calls)
	assert.Equal(t, "python", generator.lastLang)
}
