package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/preflight/internal/model"
)

// scriptedRunner answers each command from a function and records requests.
type scriptedRunner struct {
	mu       sync.Mutex
	requests []CommandRequest
	respond  func(ctx context.Context, req CommandRequest) (CommandResult, error)
}

func (r *scriptedRunner) Run(ctx context.Context, req CommandRequest) (CommandResult, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()

	return r.respond(ctx, req)
}

func (r *scriptedRunner) recorded() []CommandRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]CommandRequest(nil), r.requests...)
}

func engineProject(dir, importPath string) m.AnalysisResult {
	return m.AnalysisResult{
		ProjectFilePath: m.Path(dir),
		Properties: map[string]string{
			m.PropertyDir:        dir,
			m.PropertyImportPath: importPath,
			m.PropertyTargetPath: dir + "/pkg.test",
		},
	}
}

func engineModel(projects ...m.AnalysisResult) m.ResolvedProjectModel {
	return m.ResolvedProjectModel{TestProjects: projects}
}

func event(action, pkg, test string, elapsed float64) string {
	return fmt.Sprintf(`{"Action":%q,"Package":%q,"Test":%q,"Elapsed":%g}`, action, pkg, test, elapsed) + "\n"
}

func output(pkg, test, text string) string {
	return fmt.Sprintf(`{"Action":"output","Package":%q,"Test":%q,"Output":%q}`, pkg, test, text) + "\n"
}

// writeEvents streams events to req.Stdout in small chunks to exercise
// partial line handling.
func writeEvents(t *testing.T, req CommandRequest, events ...string) {
	t.Helper()

	if !assert.NotNil(t, req.Stdout) {
		return
	}

	data := strings.Join(events, "")
	for len(data) > 0 {
		n := min(7, len(data))

		_, err := io.WriteString(req.Stdout, data[:n])
		assert.NoError(t, err)

		data = data[n:]
	}
}

func isListRequest(req CommandRequest) bool {
	return len(req.Args) > 0 && req.Args[0] == "-test.list"
}

func TestTestEnginePool_DiscoverTests(t *testing.T) {
	runner := &scriptedRunner{respond: func(_ context.Context, req CommandRequest) (CommandResult, error) {
		switch req.Dir {
		case "/app":
			return CommandResult{Stdout: "TestAdd\nBenchmarkAdd\nExampleAdd\nFuzzAdd\n"}, nil
		default:
			return CommandResult{Stdout: "TestStore\n"}, nil
		}
	}}

	engine := NewTestEnginePool(m.RunConfiguration{Concurrency: 2},
		engineModel(engineProject("/app", "example.com/app"), engineProject("/app/store", "example.com/app/store")), runner)

	set, err := engine.DiscoverTests(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []m.TestCase{
		{ID: "example.com/app.TestAdd", Name: "TestAdd", Package: "example.com/app", Project: "/app"},
		{ID: "example.com/app.ExampleAdd", Name: "ExampleAdd", Package: "example.com/app", Project: "/app"},
		{ID: "example.com/app/store.TestStore", Name: "TestStore", Package: "example.com/app/store", Project: "/app/store"},
	}, set.Tests)

	for _, req := range runner.recorded() {
		assert.Equal(t, req.Dir+"/pkg.test", req.Name)
		assert.Equal(t, []string{"-test.list", "."}, req.Args)
	}
}

func TestTestEnginePool_DiscoverTestsFailures(t *testing.T) {
	project := engineModel(engineProject("/app", "example.com/app"))

	t.Run("binary exits non-zero", func(t *testing.T) {
		runner := &scriptedRunner{respond: func(context.Context, CommandRequest) (CommandResult, error) {
			return CommandResult{Stderr: "exec format error", ExitCode: 1}, nil
		}}

		_, err := NewTestEnginePool(m.RunConfiguration{}, project, runner).DiscoverTests(context.Background())
		require.Error(t, err)

		var inputErr *m.InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Contains(t, inputErr.Details, "exec format error")
	})

	t.Run("binary cannot start", func(t *testing.T) {
		boom := errors.New("permission denied")
		runner := &scriptedRunner{respond: func(context.Context, CommandRequest) (CommandResult, error) {
			return CommandResult{ExitCode: -1}, boom
		}}

		_, err := NewTestEnginePool(m.RunConfiguration{}, project, runner).DiscoverTests(context.Background())
		require.ErrorIs(t, err, boom)
		assert.False(t, m.IsInputError(err))
	})

	t.Run("binary was never built", func(t *testing.T) {
		dir := t.TempDir()
		missing := engineModel(engineProject(dir, "example.com/app"))

		_, err := NewTestEnginePool(m.RunConfiguration{SkipBuild: true}, missing, NewLocalCommandRunner()).DiscoverTests(context.Background())
		require.Error(t, err)

		var inputErr *m.InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "The test binary "+dir+"/pkg.test was not found", inputErr.Message)
		assert.Contains(t, inputErr.Details, "--skip-build")
	})
}

func TestTestEnginePool_RunAll(t *testing.T) {
	const pkg = "example.com/app"

	runner := &scriptedRunner{}
	runner.respond = func(_ context.Context, req CommandRequest) (CommandResult, error) {
		writeEvents(t, req,
			event("run", pkg, "TestB", 0),
			output(pkg, "TestB", "=== RUN   TestB\n"),
			event("run", pkg, "TestB/sub", 0),
			event("fail", pkg, "TestB/sub", 0.1),
			output(pkg, "TestB", "    b_test.go:9: boom\n"),
			event("fail", pkg, "TestB", 0.25),
			event("run", pkg, "TestA", 0),
			event("pass", pkg, "TestA", 0.5),
			event("run", pkg, "TestC", 0),
			event("skip", pkg, "TestC", 0),
			`{"Action":"fail","Package":"example.com/app","Elapsed":1}`,
		)

		return CommandResult{ExitCode: 1}, nil
	}

	engine := NewTestEnginePool(m.RunConfiguration{BuildToolPath: "/usr/local/go/bin/go"}, engineModel(engineProject("/app", pkg)), runner)

	var updates []string

	result, err := engine.RunAll(context.Background(), nil, nil, func(r m.TestResult) {
		updates = append(updates, r.Test.Name+" "+r.Outcome.String())
	})
	require.NoError(t, err)

	require.Len(t, runner.recorded(), 1)
	req := runner.recorded()[0]
	assert.Equal(t, "/usr/local/go/bin/go", req.Name)
	assert.Equal(t, "/app", req.Dir)
	assert.Equal(t, []string{"tool", "test2json", "-t", "-p", pkg, "/app/pkg.test", "-test.v=test2json"}, req.Args)

	require.Len(t, result.Results, 3)
	assert.Equal(t, "TestA", result.Results[0].Test.Name)
	assert.Equal(t, m.OutcomePassed, result.Results[0].Outcome)
	assert.Equal(t, 500*time.Millisecond, result.Results[0].Elapsed)

	assert.Equal(t, pkg+".TestB", result.Results[1].Test.ID)
	assert.Equal(t, m.OutcomeFailed, result.Results[1].Outcome)
	assert.Equal(t, 250*time.Millisecond, result.Results[1].Elapsed)
	assert.Equal(t, "=== RUN   TestB\n    b_test.go:9: boom\n", result.Results[1].Output)

	assert.Equal(t, m.OutcomeSkipped, result.Results[2].Outcome)

	assert.Empty(t, result.FailedProjects)
	assert.False(t, result.Success())
	assert.Equal(t, "1 passed, 1 failed, 1 skipped, 0 timed out", result.Message)
	assert.Equal(t, []string{"TestB failed", "TestA passed", "TestC skipped"}, updates)
}

func TestTestEnginePool_RunAllWithFilter(t *testing.T) {
	runner := &scriptedRunner{}
	runner.respond = func(_ context.Context, req CommandRequest) (CommandResult, error) {
		if isListRequest(req) {
			if req.Dir == "/app" {
				return CommandResult{Stdout: "TestKeep\nTestDrop\nTestKeep.Dot\n"}, nil
			}

			return CommandResult{Stdout: "TestOther\n"}, nil
		}

		writeEvents(t, req, event("run", "example.com/app", "TestKeep", 0), event("pass", "example.com/app", "TestKeep", 0.01))

		return CommandResult{}, nil
	}

	engine := NewTestEnginePool(m.RunConfiguration{Concurrency: 1},
		engineModel(engineProject("/app", "example.com/app"), engineProject("/other", "example.com/other")), runner)

	result, err := engine.RunAll(context.Background(), nil, func(test m.TestCase) bool {
		return strings.HasPrefix(test.Name, "TestKeep")
	}, nil)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)

	var runs []CommandRequest
	for _, req := range runner.recorded() {
		if !isListRequest(req) {
			runs = append(runs, req)
		}
	}

	// The project without selected tests is not run at all.
	require.Len(t, runs, 1)
	assert.Equal(t, "/app", runs[0].Dir)
	assert.Equal(t, []string{"-test.run", `^(TestKeep|TestKeep\.Dot)$`}, runs[0].Args[len(runs[0].Args)-2:])
}

func TestTestEnginePool_RunAllTimeout(t *testing.T) {
	const pkg = "example.com/app"

	runner := &scriptedRunner{}
	runner.respond = func(ctx context.Context, req CommandRequest) (CommandResult, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(3500*time.Millisecond), deadline, time.Second)

		writeEvents(t, req,
			event("run", pkg, "TestFast", 0),
			event("pass", pkg, "TestFast", 0.01),
			event("run", pkg, "TestSlow", 0),
			output(pkg, "TestSlow", "=== RUN   TestSlow\n"),
		)

		return CommandResult{ExitCode: -1}, context.DeadlineExceeded
	}

	engine := NewTestEnginePool(m.RunConfiguration{}, engineModel(engineProject("/app", pkg)), runner)
	timeouts := m.NewTimeoutValueCalculator(time.Second, 2*time.Second)

	var updates []m.TestOutcome

	result, err := engine.RunAll(context.Background(), &timeouts, nil, func(r m.TestResult) {
		updates = append(updates, r.Outcome)
	})
	require.NoError(t, err)

	require.Len(t, result.Results, 2)
	assert.Equal(t, m.OutcomePassed, result.Results[0].Outcome)
	assert.Equal(t, "TestSlow", result.Results[1].Test.Name)
	assert.Equal(t, m.OutcomeTimedOut, result.Results[1].Outcome)
	assert.Equal(t, "=== RUN   TestSlow\n", result.Results[1].Output)
	assert.Empty(t, result.FailedProjects)
	assert.Equal(t, []m.TestOutcome{m.OutcomePassed, m.OutcomeTimedOut}, updates)
}

func TestTestEnginePool_RunAllProjectFailure(t *testing.T) {
	runner := &scriptedRunner{respond: func(_ context.Context, req CommandRequest) (CommandResult, error) {
		_, _ = io.WriteString(req.Stdout, "panic: init failed\n")
		return CommandResult{Stderr: "panic: init failed", ExitCode: 2}, nil
	}}

	engine := NewTestEnginePool(m.RunConfiguration{}, engineModel(engineProject("/app", "example.com/app")), runner)

	result, err := engine.RunAll(context.Background(), nil, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, result.Results)
	assert.Equal(t, []m.Path{"/app"}, result.FailedProjects)
	assert.False(t, result.Success())
}

func TestTestEnginePool_RunAllRunnerError(t *testing.T) {
	boom := errors.New("fork/exec: no such file")
	runner := &scriptedRunner{respond: func(context.Context, CommandRequest) (CommandResult, error) {
		return CommandResult{ExitCode: -1}, boom
	}}

	engine := NewTestEnginePool(m.RunConfiguration{}, engineModel(engineProject("/app", "example.com/app")), runner)

	_, err := engine.RunAll(context.Background(), nil, nil, nil)
	assert.ErrorIs(t, err, boom)
}

func TestTestEnginePool_RunAllMissingGoTool(t *testing.T) {
	runner := &scriptedRunner{respond: func(_ context.Context, req CommandRequest) (CommandResult, error) {
		return CommandResult{ExitCode: -1}, fmt.Errorf("exec %s: %w", req.Name, exec.ErrNotFound)
	}}

	engine := NewTestEnginePool(m.RunConfiguration{BuildToolPath: "go1.99"}, engineModel(engineProject("/app", "example.com/app")), runner)

	_, err := engine.RunAll(context.Background(), nil, nil, nil)
	require.Error(t, err)

	var inputErr *m.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "The go tool go1.99 was not found", inputErr.Message)
}

func TestTestEnginePool_Close(t *testing.T) {
	started := make(chan struct{})

	runner := &scriptedRunner{respond: func(ctx context.Context, _ CommandRequest) (CommandResult, error) {
		close(started)
		<-ctx.Done()

		return CommandResult{ExitCode: -1}, ctx.Err()
	}}

	engine := NewTestEnginePool(m.RunConfiguration{}, engineModel(engineProject("/app", "example.com/app")), runner)

	done := make(chan error, 1)

	go func() {
		_, err := engine.RunAll(context.Background(), nil, nil, nil)
		done <- err
	}()

	<-started
	require.NoError(t, engine.Close())
	require.NoError(t, engine.Close())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("RunAll did not return after Close")
	}

	_, err := engine.DiscoverTests(context.Background())
	assert.ErrorIs(t, err, ErrEngineClosed)

	_, err = engine.RunAll(context.Background(), nil, nil, nil)
	assert.ErrorIs(t, err, ErrEngineClosed)
}

func TestEventCollector_UnfinishedWithoutDeadlineFails(t *testing.T) {
	var emitted []m.TestResult

	collector := newEventCollector("example.com/app", "/app", func(r m.TestResult) {
		emitted = append(emitted, r)
	})

	_, err := io.WriteString(collector, "not json\n"+event("run", "example.com/app", "TestCrash", 0))
	require.NoError(t, err)

	// A trailing line without newline is decoded on Flush.
	_, err = io.WriteString(collector, strings.TrimSuffix(event("run", "example.com/app", "TestOther", 0), "\n"))
	require.NoError(t, err)
	collector.Flush()

	assert.False(t, collector.HasFailedTest())
	assert.Empty(t, emitted)

	unfinished := collector.Unfinished(false)
	require.Len(t, unfinished, 2)
	assert.Equal(t, "TestCrash", unfinished[0].Test.Name)
	assert.Equal(t, m.OutcomeFailed, unfinished[0].Outcome)
	assert.True(t, collector.HasFailedTest())
	assert.Len(t, collector.Results(), 2)
	assert.Empty(t, collector.Unfinished(false))
}

func TestRunPattern(t *testing.T) {
	assert.Equal(t, "^(TestA)$", runPattern([]string{"TestA"}))
	assert.Equal(t, `^(TestA|Example_x\.y)$`, runPattern([]string{"TestA", "Example_x.y"}))
}
