package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/preflight/internal/model"
)

func TestYAMLBaselineStore_RoundTrip(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports", "preflight"))
	store := NewYAMLBaselineStore()

	baseline := m.BaselineRunResult{
		Result: m.RunResult{
			Results: []m.TestResult{
				{
					Test:    m.TestCase{ID: "example.com/app.TestAdd", Name: "TestAdd", Package: "example.com/app", Project: "/app"},
					Outcome: m.OutcomePassed,
					Elapsed: 120 * time.Millisecond,
				},
				{
					Test:    m.TestCase{ID: "example.com/app.TestSlow", Name: "TestSlow", Package: "example.com/app", Project: "/app"},
					Outcome: m.OutcomeTimedOut,
					Elapsed: 3 * time.Second,
					Output:  "=== RUN   TestSlow\n",
				},
			},
			FailedProjects: []m.Path{"/app/broken"},
			Duration:       4 * time.Second,
			Message:        "1 passed, 0 failed, 0 skipped, 1 timed out",
		},
		Timeouts: m.NewTimeoutValueCalculator(4*time.Second, 5*time.Second),
	}

	path, err := store.SaveBaseline(dir, baseline)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(string(dir), BaselineFileName)), path)

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "outcome: timed out")
	assert.Contains(t, string(raw), "extra: 5s")

	loaded, err := store.LoadBaseline(dir)
	require.NoError(t, err)
	assert.Equal(t, baseline, loaded)
	assert.Equal(t, 11*time.Second, loaded.Timeouts.DefaultTimeout())
}

func TestYAMLBaselineStore_LoadFailures(t *testing.T) {
	store := NewYAMLBaselineStore()

	_, err := store.LoadBaseline(m.Path(t.TempDir()))
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, BaselineFileName), "result:\n  results:\n    - outcome: exploded\n")

	_, err = store.LoadBaseline(m.Path(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown test outcome")
}
