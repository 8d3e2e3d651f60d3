package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/preflight/internal/adapter"
	adaptermocks "gooze.dev/pkg/preflight/internal/adapter/mocks"
	"gooze.dev/pkg/preflight/internal/domain"
	domainmocks "gooze.dev/pkg/preflight/internal/domain/mocks"
	m "gooze.dev/pkg/preflight/internal/model"
)

func sampleInitialization(cfg m.RunConfiguration) domain.InitializationResult {
	contents := m.NewFolder("")
	contents.Add(m.Source{Origin: &m.File{FullPath: "/app/calc.go", ShortPath: "calc.go"}, Package: "calc"})
	contents.Add(m.Source{Origin: &m.File{FullPath: "/app/store/store.go", ShortPath: "store/store.go"}, Package: "store"})

	return domain.InitializationResult{
		RunID:         "run-1",
		Configuration: cfg,
		Project: m.ResolvedProjectModel{
			ProjectUnderTest: m.AnalysisResult{
				ProjectFilePath: "/app/go.mod",
				Properties:      map[string]string{m.PropertyModulePath: "example.com/app"},
			},
			TestProjects: []m.AnalysisResult{{ProjectFilePath: "/app/go.mod"}},
			Contents:     contents,
		},
		References: []m.Reference{{Identifier: "github.com/spf13/cobra", Path: "/mod/cobra", Version: "v1.10.2"}},
	}
}

func sampleRunBaseline() m.BaselineRunResult {
	return m.BaselineRunResult{
		Result: m.RunResult{
			Results: []m.TestResult{
				{Test: m.TestCase{ID: "example.com/app.TestAdd", Name: "TestAdd"}, Outcome: m.OutcomePassed, Elapsed: time.Second},
			},
			Duration: 2 * time.Second,
			Message:  "1 passed, 0 failed, 0 skipped, 0 timed out",
		},
		Timeouts: m.NewTimeoutValueCalculator(2*time.Second, 5*time.Second),
	}
}

func useOrchestrator(t *testing.T) *domainmocks.MockOrchestrator {
	t.Helper()

	mockOrchestrator := domainmocks.NewMockOrchestrator(t)

	original := orchestrator
	orchestrator = mockOrchestrator
	t.Cleanup(func() { orchestrator = original })

	return mockOrchestrator
}

func TestRunCmd_WritesBaseline(t *testing.T) {
	mockOrchestrator := useOrchestrator(t)
	projectDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	mockOrchestrator.EXPECT().Initialize(mock.Anything, mock.MatchedBy(func(cfg m.RunConfiguration) bool {
		return cfg.ProjectPath == m.Path(projectDir) &&
			cfg.Concurrency == 2 &&
			cfg.AdditionalTimeout == 7*time.Second &&
			cfg.SkipBuild &&
			cfg.ReferencePolicy == m.ReferencePolicyFail &&
			len(cfg.TestProjects) == 1 && cfg.TestProjects[0] == m.Path("./store")
	})).RunAndReturn(func(_ context.Context, cfg m.RunConfiguration) (domain.InitializationResult, error) {
		return sampleInitialization(cfg), nil
	})
	mockOrchestrator.EXPECT().RunInitialTest(mock.Anything, mock.Anything).Return(sampleRunBaseline(), nil)
	mockOrchestrator.EXPECT().Close().Return(nil)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())

	stdout, _, err := executeCommand(t, cmd, "run", projectDir,
		"--output", outputDir,
		"--concurrency", "2",
		"--additional-timeout", "7s",
		"--skip-build",
		"--reference-policy", "fail",
		"--test-project", "./store",
	)
	require.NoError(t, err)

	baselinePath := filepath.Join(outputDir, adapter.BaselineFileName)
	_, statErr := os.Stat(baselinePath)
	require.NoError(t, statErr)

	assert.Contains(t, stdout, "example.com/app")
	assert.Contains(t, stdout, "Baseline written to "+baselinePath)
	assert.Contains(t, stdout, "mutant timeout 8s")
}

func TestRunCmd_InitializationInputError(t *testing.T) {
	mockOrchestrator := useOrchestrator(t)

	inputErr := m.NewInputError("No test projects found", "Add a _test.go file to the module.")
	mockOrchestrator.EXPECT().Initialize(mock.Anything, mock.Anything).Return(domain.InitializationResult{}, inputErr)
	mockOrchestrator.EXPECT().Close().Return(nil)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())

	_, stderr, err := executeCommand(t, cmd, "run", t.TempDir(), "--output", t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, inputErr)
	assert.Equal(t, inputErr.Error()+"\n", stderr)
}

func TestRunCmd_InitialTestFailure(t *testing.T) {
	mockOrchestrator := useOrchestrator(t)
	outputDir := t.TempDir()

	mockOrchestrator.EXPECT().Initialize(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, cfg m.RunConfiguration) (domain.InitializationResult, error) {
		return sampleInitialization(cfg), nil
	})
	mockOrchestrator.EXPECT().RunInitialTest(mock.Anything, mock.Anything).
		Return(m.BaselineRunResult{}, m.NewInputError("Initial test run failed. Mutation testing requires all tests to pass."))
	mockOrchestrator.EXPECT().Close().Return(errors.New("already closed"))

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())

	_, stderr, err := executeCommand(t, cmd, "run", t.TempDir(), "--output", outputDir)

	require.Error(t, err)
	assert.True(t, m.IsInputError(err))
	assert.Contains(t, stderr, "Initial test run failed")

	_, statErr := os.Stat(filepath.Join(outputDir, adapter.BaselineFileName))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRunCmd_SaveFailure(t *testing.T) {
	mockOrchestrator := useOrchestrator(t)
	mockStore := adaptermocks.NewMockBaselineStore(t)

	originalStore := baselineStore
	baselineStore = mockStore
	defer func() { baselineStore = originalStore }()

	outputDir := t.TempDir()

	mockOrchestrator.EXPECT().Initialize(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, cfg m.RunConfiguration) (domain.InitializationResult, error) {
		return sampleInitialization(cfg), nil
	})
	mockOrchestrator.EXPECT().RunInitialTest(mock.Anything, mock.Anything).Return(sampleRunBaseline(), nil)
	mockOrchestrator.EXPECT().Close().Return(nil)
	mockStore.EXPECT().SaveBaseline(m.Path(outputDir), sampleRunBaseline()).Return("", errors.New("disk full"))

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())

	_, stderr, err := executeCommand(t, cmd, "run", t.TempDir(), "--output", outputDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "Error: failed to save baseline: disk full\n", stderr)
}

func TestRunCmd_RejectsExtraArgs(t *testing.T) {
	useOrchestrator(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())

	_, _, err := executeCommand(t, cmd, "run", "./a", "./b")
	require.Error(t, err)
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run [path]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)

	for _, name := range []string{
		skipBuildFlagName, solutionFlagName, goToolFlagName, projectNameFlagName, projectVersionFlagName,
		targetPathFlagName, testProjectFlagName, reporterFlagName, withBaselineFlagName, baselineProviderFlagName,
		concurrencyFlagName, additionalTimeoutFlagName, timeoutFlagName, referencePolicyFlagName,
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestInitializationSummary(t *testing.T) {
	cfg := m.RunConfiguration{ProjectName: "github.com/acme/app", ProjectVersion: "main", SkipBuild: true}

	summary := initializationSummary(sampleInitialization(cfg))

	assert.Equal(t, "run-1", summary.RunID)
	assert.Equal(t, "example.com/app", summary.ModulePath)
	assert.Equal(t, "github.com/acme/app", summary.ProjectName)
	assert.Equal(t, "main", summary.ProjectVersion)
	assert.Equal(t, 1, summary.TestProjects)
	assert.Equal(t, 2, summary.Sources)
	assert.Equal(t, 1, summary.References)
	assert.True(t, summary.BuildSkipped)
}
