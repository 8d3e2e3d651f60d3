package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeoutValueCalculator(t *testing.T) {
	calculator := NewTimeoutValueCalculator(2*time.Second, 5*time.Second)

	assert.Equal(t, 8*time.Second, calculator.DefaultTimeout())
	assert.Equal(t, 20*time.Second, calculator.CalculateTimeout(10*time.Second))
	assert.Equal(t, 5*time.Second, calculator.CalculateTimeout(0))
}

func TestRunResult_Success(t *testing.T) {
	passed := TestResult{Test: TestCase{ID: "a"}, Outcome: OutcomePassed}
	skipped := TestResult{Test: TestCase{ID: "b"}, Outcome: OutcomeSkipped}
	failed := TestResult{Test: TestCase{ID: "c"}, Outcome: OutcomeFailed}
	timedOut := TestResult{Test: TestCase{ID: "d"}, Outcome: OutcomeTimedOut}

	assert.True(t, RunResult{}.Success())
	assert.True(t, RunResult{Results: []TestResult{passed, skipped}}.Success())
	assert.False(t, RunResult{Results: []TestResult{passed, failed}}.Success())
	assert.False(t, RunResult{Results: []TestResult{timedOut}}.Success())
	assert.False(t, RunResult{Results: []TestResult{passed}, FailedProjects: []Path{"/app"}}.Success())

	result := RunResult{Results: []TestResult{passed, failed, skipped, timedOut}}
	assert.Equal(t, []TestCase{{ID: "c"}}, result.Filter(OutcomeFailed))
	assert.Empty(t, RunResult{Results: []TestResult{passed}}.Filter(OutcomeFailed))
}

func TestTestOutcome_Text(t *testing.T) {
	for _, outcome := range []TestOutcome{OutcomePassed, OutcomeFailed, OutcomeSkipped, OutcomeTimedOut} {
		text, err := outcome.MarshalText()
		require.NoError(t, err)

		var decoded TestOutcome
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, outcome, decoded)
	}

	var outcome TestOutcome
	assert.EqualError(t, outcome.UnmarshalText([]byte("exploded")), `unknown test outcome "exploded"`)
	assert.Equal(t, "unknown", TestOutcome(42).String())
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "uninitialized", StageUninitialized.String())
	assert.Equal(t, "runner provisioned", StageRunnerProvisioned.String())
	assert.Equal(t, "initialized", StageInitialized.String())
	assert.Equal(t, "unknown", Stage(99).String())
}
