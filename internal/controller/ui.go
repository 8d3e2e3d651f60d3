// Package controller provides output adapters for displaying initialization progress and results.
package controller

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/preflight/internal/model"
)

// InitializationSummary is what the UI shows once initialization succeeded.
type InitializationSummary struct {
	RunID          string
	ModulePath     string
	ProjectName    string
	ProjectVersion string
	TestProjects   int
	Sources        int
	References     int
	BuildSkipped   bool
}

// BaselineSummary is what the UI shows after the initial test run.
type BaselineSummary struct {
	Baseline m.BaselineRunResult
	// Path is where the baseline was saved, empty when it was not.
	Path m.Path
}

// UI defines how the CLI reports pipeline progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayStage(ctx context.Context, stage m.Stage)
	DisplayInitialization(ctx context.Context, summary InitializationSummary)
	DisplayBaseline(ctx context.Context, summary BaselineSummary)
	DisplayError(ctx context.Context, err error)
}

// NewUI returns the TUI when output is an interactive terminal and the
// plain text UI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func outcomeCounts(result m.RunResult) [][]string {
	outcomes := []m.TestOutcome{m.OutcomePassed, m.OutcomeFailed, m.OutcomeSkipped, m.OutcomeTimedOut}

	rows := make([][]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		rows = append(rows, []string{outcome.String(), itoa(len(result.Filter(outcome)))})
	}

	return rows
}

func unsuccessfulTests(result m.RunResult) []m.TestResult {
	var tests []m.TestResult

	for _, r := range result.Results {
		if r.Outcome == m.OutcomeFailed || r.Outcome == m.OutcomeTimedOut {
			tests = append(tests, r)
		}
	}

	return tests
}

func roundDuration(d time.Duration) time.Duration {
	if d < time.Second {
		return d.Round(time.Millisecond)
	}

	return d.Round(10 * time.Millisecond)
}

func valueOrDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
