package model

import (
	"fmt"
	"time"
)

// TestCase identifies a single test function inside a test project.
type TestCase struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Package string `yaml:"package"`
	Project Path   `yaml:"project"`
}

// TestSet is the collection of tests discovered by the test engine.
type TestSet struct {
	Tests []TestCase
}

// Count returns the number of discovered tests.
func (s TestSet) Count() int {
	return len(s.Tests)
}

// TestOutcome is the result of running a single test.
type TestOutcome int

// Available TestOutcome values.
const (
	OutcomePassed TestOutcome = iota
	OutcomeFailed
	OutcomeSkipped
	OutcomeTimedOut
)

func (o TestOutcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome by name.
func (o TestOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name written by MarshalText.
func (o *TestOutcome) UnmarshalText(text []byte) error {
	for _, outcome := range []TestOutcome{OutcomePassed, OutcomeFailed, OutcomeSkipped, OutcomeTimedOut} {
		if outcome.String() == string(text) {
			*o = outcome
			return nil
		}
	}

	return fmt.Errorf("unknown test outcome %q", text)
}

// TestResult records the outcome of one executed test.
type TestResult struct {
	Test    TestCase      `yaml:"test"`
	Outcome TestOutcome   `yaml:"outcome"`
	Elapsed time.Duration `yaml:"elapsed"`
	Output  string        `yaml:"output,omitempty"`
}

// RunResult aggregates a test engine run.
type RunResult struct {
	Results        []TestResult  `yaml:"results"`
	FailedProjects []Path        `yaml:"failed_projects,omitempty"`
	Duration       time.Duration `yaml:"duration"`
	Message        string        `yaml:"message,omitempty"`
}

// Filter returns the tests whose outcome is outcome.
func (r RunResult) Filter(outcome TestOutcome) []TestCase {
	var tests []TestCase

	for _, result := range r.Results {
		if result.Outcome == outcome {
			tests = append(tests, result.Test)
		}
	}

	return tests
}

// Success reports whether every executed test passed or was skipped and no
// project failed outside of a test.
func (r RunResult) Success() bool {
	if len(r.FailedProjects) > 0 {
		return false
	}

	for _, result := range r.Results {
		if result.Outcome == OutcomeFailed || result.Outcome == OutcomeTimedOut {
			return false
		}
	}

	return true
}

const timeoutRatio = 1.5

// TimeoutValueCalculator derives mutant test timeouts from the baseline duration.
type TimeoutValueCalculator struct {
	BaseTime time.Duration `yaml:"base_time"`
	Extra    time.Duration `yaml:"extra"`
}

// NewTimeoutValueCalculator creates a calculator for a baseline that took baseTime.
func NewTimeoutValueCalculator(baseTime, extra time.Duration) TimeoutValueCalculator {
	return TimeoutValueCalculator{BaseTime: baseTime, Extra: extra}
}

// CalculateTimeout returns the timeout for a run expected to take estimated.
func (c TimeoutValueCalculator) CalculateTimeout(estimated time.Duration) time.Duration {
	return time.Duration(float64(estimated)*timeoutRatio) + c.Extra
}

// DefaultTimeout returns the timeout for a run as long as the baseline.
func (c TimeoutValueCalculator) DefaultTimeout() time.Duration {
	return c.CalculateTimeout(c.BaseTime)
}

// BaselineRunResult is the outcome of the initial, unmutated test run.
type BaselineRunResult struct {
	Result   RunResult              `yaml:"result"`
	Timeouts TimeoutValueCalculator `yaml:"timeouts"`
	Tests    TestSet                `yaml:"-"`
}

// Stage is a step of the initialization pipeline.
type Stage int

// Pipeline stages in execution order.
const (
	StageUninitialized Stage = iota
	StageProjectResolved
	StageTestProjectsBuilt
	StageIdentityResolved
	StageRunnerProvisioned
	StageInitialized
	StageBaseline
)

func (s Stage) String() string {
	switch s {
	case StageUninitialized:
		return "uninitialized"
	case StageProjectResolved:
		return "project resolved"
	case StageTestProjectsBuilt:
		return "test projects built"
	case StageIdentityResolved:
		return "identity resolved"
	case StageRunnerProvisioned:
		return "runner provisioned"
	case StageInitialized:
		return "initialized"
	case StageBaseline:
		return "baseline"
	default:
		return "unknown"
	}
}
