package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gooze.dev/pkg/preflight/internal/adapter"
	m "gooze.dev/pkg/preflight/internal/model"
)

// maxListedFailures bounds how many failing tests an error message names.
const maxListedFailures = 20

// InitialTestProcess runs the unmutated test suite once to validate it and
// calibrate mutant timeouts.
type InitialTestProcess interface {
	InitialTest(ctx context.Context, cfg m.RunConfiguration, engine adapter.TestEngine) (m.BaselineRunResult, error)
}

type initialTestProcess struct{}

// NewInitialTestProcess constructs an InitialTestProcess.
func NewInitialTestProcess() InitialTestProcess {
	return &initialTestProcess{}
}

func (p *initialTestProcess) InitialTest(ctx context.Context, cfg m.RunConfiguration, engine adapter.TestEngine) (m.BaselineRunResult, error) {
	tests, err := engine.DiscoverTests(ctx)
	if err != nil {
		slog.Error("Failed to discover tests", "error", err)
		return m.BaselineRunResult{}, failure(ctx, err, "Failed to discover the tests of the test projects")
	}

	if tests.Count() == 0 {
		return m.BaselineRunResult{}, m.NewInputError(
			"No tests were found. Mutation testing needs a test suite to validate mutants against",
			"Make sure the test projects contain Test functions and were built.",
		)
	}

	slog.Info("Running the initial test run", "tests", tests.Count())

	result, err := engine.RunAll(ctx, nil, nil, nil)
	if err != nil {
		slog.Error("Initial test run failed to execute", "error", err)
		return m.BaselineRunResult{}, failure(ctx, err, "Failed to execute the initial test run")
	}

	if !result.Success() {
		return m.BaselineRunResult{}, baselineFailure(result)
	}

	timeouts := m.NewTimeoutValueCalculator(result.Duration, cfg.EffectiveAdditionalTimeout())

	slog.Info("Initial test run succeeded",
		"tests", len(result.Results),
		"duration", result.Duration,
		"mutantTimeout", timeouts.DefaultTimeout(),
	)

	return m.BaselineRunResult{
		Result:   result,
		Timeouts: timeouts,
		Tests:    tests,
	}, nil
}

func baselineFailure(result m.RunResult) error {
	failing := append(result.Filter(m.OutcomeFailed), result.Filter(m.OutcomeTimedOut)...)

	lines := make([]string, 0, len(failing)+len(result.FailedProjects)+1)

	for i, test := range failing {
		if i == maxListedFailures {
			lines = append(lines, fmt.Sprintf("... and %d more", len(failing)-maxListedFailures))
			break
		}

		lines = append(lines, "  "+test.ID)
	}

	for _, project := range result.FailedProjects {
		lines = append(lines, fmt.Sprintf("  %s (failed outside of a test)", project))
	}

	slog.Error("Initial test run failed", "failed", len(failing), "failedProjects", len(result.FailedProjects))

	return m.NewInputError(
		"Initial test run failed. Mutation testing requires a passing test suite",
		"Failing tests:\n"+strings.Join(lines, "\n"),
	)
}
