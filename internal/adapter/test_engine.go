package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	m "gooze.dev/pkg/preflight/internal/model"
)

// ErrEngineClosed is returned by a TestEngine after Close.
var ErrEngineClosed = errors.New("test engine is closed")

// TestFilter selects the tests a run executes. A nil filter selects every test.
type TestFilter func(test m.TestCase) bool

// UpdateHandler receives each test result as soon as it is known.
type UpdateHandler func(result m.TestResult)

// TestEngine executes the test projects of a resolved project.
type TestEngine interface {
	// DiscoverTests lists the tests of every test project.
	DiscoverTests(ctx context.Context) (m.TestSet, error)

	// RunAll runs the selected tests. When timeouts is set, every test
	// project is bounded by timeouts.DefaultTimeout().
	RunAll(ctx context.Context, timeouts *m.TimeoutValueCalculator, filter TestFilter, update UpdateHandler) (m.RunResult, error)

	// Close cancels in-flight runs. Later calls fail with ErrEngineClosed.
	Close() error
}

// TestEnginePool runs compiled test binaries through `go tool test2json`
// with a bounded number of concurrent workers.
type TestEnginePool struct {
	runner      CommandRunner
	goTool      string
	projects    []m.AnalysisResult
	concurrency int

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	closed   bool
	updateMu sync.Mutex
}

// NewTestEnginePool creates an engine for the test projects of project.
func NewTestEnginePool(cfg m.RunConfiguration, project m.ResolvedProjectModel, runner CommandRunner) *TestEnginePool {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &TestEnginePool{
		runner:      runner,
		goTool:      goTool(cfg.BuildToolPath),
		projects:    project.TestProjects,
		concurrency: concurrency,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Close cancels every in-flight run.
func (p *TestEnginePool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	p.cancel()

	slog.Debug("Closed test engine")

	return nil
}

// DiscoverTests runs `<binary> -test.list .` for each test project.
func (p *TestEnginePool) DiscoverTests(ctx context.Context) (m.TestSet, error) {
	ctx, release, err := p.runContext(ctx)
	if err != nil {
		return m.TestSet{}, err
	}
	defer release()

	perProject := make([][]m.TestCase, len(p.projects))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.concurrency)

	for i, project := range p.projects {
		group.Go(func() error {
			tests, err := p.listTests(groupCtx, project)
			if err != nil {
				return err
			}

			perProject[i] = tests

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.TestSet{}, err
	}

	var set m.TestSet
	for _, tests := range perProject {
		set.Tests = append(set.Tests, tests...)
	}

	slog.Debug("Discovered tests", "projects", len(p.projects), "tests", set.Count())

	return set, nil
}

func (p *TestEnginePool) listTests(ctx context.Context, project m.AnalysisResult) ([]m.TestCase, error) {
	binary := testBinary(project)

	result, err := p.runner.Run(ctx, CommandRequest{
		Dir:  string(project.Dir()),
		Name: binary,
		Args: []string{"-test.list", "."},
	})
	if err != nil {
		slog.Error("Failed to list tests", "binary", binary, "error", err)

		if missingExecutable(err) {
			return nil, m.NewInputError(
				fmt.Sprintf("The test binary %s was not found", binary),
				"Build the test projects or run without --skip-build.",
			)
		}

		return nil, fmt.Errorf("list tests of %s: %w", binary, err)
	}

	if result.ExitCode != 0 {
		return nil, m.NewInputError(
			fmt.Sprintf("Failed to list the tests of %s", binary),
			strings.TrimSpace(result.Output()),
		)
	}

	pkg := importPath(project)

	var tests []m.TestCase

	scanner := bufio.NewScanner(strings.NewReader(result.Stdout))
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if !isRunnableTest(name) {
			continue
		}

		tests = append(tests, m.TestCase{
			ID:      pkg + "." + name,
			Name:    name,
			Package: pkg,
			Project: project.Dir(),
		})
	}

	return tests, scanner.Err()
}

// RunAll runs the selected tests of every test project.
func (p *TestEnginePool) RunAll(ctx context.Context, timeouts *m.TimeoutValueCalculator, filter TestFilter, update UpdateHandler) (m.RunResult, error) {
	ctx, release, err := p.runContext(ctx)
	if err != nil {
		return m.RunResult{}, err
	}
	defer release()

	start := time.Now()

	selected, err := p.selectTests(ctx, filter)
	if err != nil {
		return m.RunResult{}, err
	}

	var (
		mu     sync.Mutex
		result m.RunResult
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.concurrency)

	for _, project := range p.projects {
		pattern := ""

		if selected != nil {
			names := selected[project.Dir()]
			if len(names) == 0 {
				continue
			}

			pattern = runPattern(names)
		}

		group.Go(func() error {
			run, err := p.runProject(groupCtx, project, pattern, timeouts, update)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()

			result.Results = append(result.Results, run.results...)
			if run.failed {
				result.FailedProjects = append(result.FailedProjects, project.Dir())
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.RunResult{}, err
	}

	sort.Slice(result.Results, func(i, j int) bool {
		return result.Results[i].Test.ID < result.Results[j].Test.ID
	})

	result.Duration = time.Since(start)
	result.Message = summarize(result)

	slog.Debug("Test run finished", "tests", len(result.Results), "duration", result.Duration, "summary", result.Message)

	return result, nil
}

// selectTests returns the names of the tests filter selects, keyed by project
// directory, or nil when every test runs.
func (p *TestEnginePool) selectTests(ctx context.Context, filter TestFilter) (map[m.Path][]string, error) {
	if filter == nil {
		return nil, nil
	}

	set, err := p.DiscoverTests(ctx)
	if err != nil {
		return nil, err
	}

	selected := map[m.Path][]string{}

	for _, test := range set.Tests {
		if filter(test) {
			selected[test.Project] = append(selected[test.Project], test.Name)
		}
	}

	return selected, nil
}

type projectRun struct {
	results []m.TestResult
	failed  bool
}

func (p *TestEnginePool) runProject(ctx context.Context, project m.AnalysisResult, pattern string, timeouts *m.TimeoutValueCalculator, update UpdateHandler) (projectRun, error) {
	runCtx := ctx

	var timeout time.Duration

	if timeouts != nil {
		var cancel context.CancelFunc

		timeout = timeouts.DefaultTimeout()
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	pkg := importPath(project)
	binary := testBinary(project)

	args := []string{"tool", "test2json", "-t", "-p", pkg, binary, "-test.v=test2json"}
	if pattern != "" {
		args = append(args, "-test.run", pattern)
	}

	collector := newEventCollector(pkg, project.Dir(), func(result m.TestResult) {
		p.notify(update, result)
	})

	cmdResult, err := p.runner.Run(runCtx, CommandRequest{
		Dir:    string(project.Dir()),
		Name:   p.goTool,
		Args:   args,
		Stdout: collector,
	})
	collector.Flush()

	timedOut := false

	if err != nil {
		if ctx.Err() != nil {
			return projectRun{}, ctx.Err()
		}

		if !errors.Is(err, context.DeadlineExceeded) {
			slog.Error("Failed to run tests", "package", pkg, "error", err)

			if missingExecutable(err) {
				return projectRun{}, m.NewInputError(
					fmt.Sprintf("The go tool %s was not found", p.goTool),
					"Install Go or point build.tool (--go) at a go binary.",
				)
			}

			return projectRun{}, fmt.Errorf("run tests of %s: %w", pkg, err)
		}

		timedOut = true

		slog.Warn("Test run timed out", "package", pkg, "timeout", timeout)
	}

	for _, result := range collector.Unfinished(timedOut) {
		p.notify(update, result)
	}

	run := projectRun{results: collector.Results()}

	if !timedOut && cmdResult.ExitCode != 0 && !collector.HasFailedTest() {
		run.failed = true

		slog.Warn("Test project failed outside of a test", "package", pkg, "exitCode", cmdResult.ExitCode, "stderr", cmdResult.Stderr)
	}

	return run, nil
}

func (p *TestEnginePool) notify(update UpdateHandler, result m.TestResult) {
	if update == nil {
		return
	}

	p.updateMu.Lock()
	defer p.updateMu.Unlock()

	update(result)
}

// runContext derives a context cancelled by either ctx or Close.
func (p *TestEnginePool) runContext(ctx context.Context) (context.Context, func(), error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()

	if closed {
		return nil, nil, ErrEngineClosed
	}

	runCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(p.ctx, cancel)

	return runCtx, func() {
		stop()
		cancel()
	}, nil
}

func missingExecutable(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, exec.ErrNotFound)
}

func testBinary(project m.AnalysisResult) string {
	if target, ok := project.Property(m.PropertyTargetPath); ok {
		return target
	}

	return string(m.TestBinaryPath(project.Dir()))
}

func importPath(project m.AnalysisResult) string {
	if pkg, ok := project.Property(m.PropertyImportPath); ok {
		return pkg
	}

	return string(project.Dir())
}

// isRunnableTest keeps the names -test.run can select: tests and examples.
func isRunnableTest(name string) bool {
	return strings.HasPrefix(name, "Test") || strings.HasPrefix(name, "Example")
}

func runPattern(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, regexp.QuoteMeta(name))
	}

	return "^(" + strings.Join(quoted, "|") + ")$"
}

func summarize(result m.RunResult) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped, %d timed out",
		len(result.Filter(m.OutcomePassed)),
		len(result.Filter(m.OutcomeFailed)),
		len(result.Filter(m.OutcomeSkipped)),
		len(result.Filter(m.OutcomeTimedOut)),
	)
}

// testEvent is one line of `go tool test2json` output.
type testEvent struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`
}

// eventCollector decodes test2json events written to it line by line and
// tracks the outcome of every top-level test.
type eventCollector struct {
	pkg     string
	project m.Path
	emit    func(m.TestResult)

	buf      bytes.Buffer
	order    []string
	running  map[string]*strings.Builder
	started  map[string]time.Time
	results  map[string]m.TestResult
	anyFails bool
}

func newEventCollector(pkg string, project m.Path, emit func(m.TestResult)) *eventCollector {
	return &eventCollector{
		pkg:     pkg,
		project: project,
		emit:    emit,
		running: map[string]*strings.Builder{},
		started: map[string]time.Time{},
		results: map[string]m.TestResult{},
	}
}

// Write implements io.Writer.
func (c *eventCollector) Write(data []byte) (int, error) {
	c.buf.Write(data)

	for {
		line, err := c.buf.ReadBytes('\n')
		if err != nil {
			// Keep the partial line for the next write.
			c.buf.Reset()
			c.buf.Write(line)

			break
		}

		c.handleLine(line)
	}

	return len(data), nil
}

// Flush decodes a trailing line without newline.
func (c *eventCollector) Flush() {
	if c.buf.Len() == 0 {
		return
	}

	line := c.buf.Bytes()
	c.buf.Reset()
	c.handleLine(line)
}

func (c *eventCollector) handleLine(line []byte) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	var event testEvent
	if err := json.Unmarshal(line, &event); err != nil {
		slog.Debug("Ignoring non-JSON test output", "package", c.pkg, "line", string(line))
		return
	}

	c.handle(event)
}

func (c *eventCollector) handle(event testEvent) {
	name := event.Test
	if name == "" {
		return
	}

	// Subtest output belongs to its top-level test.
	topLevel, _, isSubtest := strings.Cut(name, "/")

	switch event.Action {
	case "run":
		if isSubtest {
			return
		}

		if _, ok := c.running[name]; !ok {
			c.order = append(c.order, name)
		}

		c.running[name] = &strings.Builder{}
		c.started[name] = event.Time
	case "output":
		if out, ok := c.running[topLevel]; ok {
			out.WriteString(event.Output)
		}
	case "pass", "fail", "skip":
		if isSubtest {
			return
		}

		c.finish(name, outcomeOf(event.Action), time.Duration(event.Elapsed*float64(time.Second)))
	}
}

func (c *eventCollector) finish(name string, outcome m.TestOutcome, elapsed time.Duration) {
	output := ""
	if out, ok := c.running[name]; ok {
		output = out.String()
		delete(c.running, name)
	} else {
		c.order = append(c.order, name)
	}

	if outcome == m.OutcomeFailed {
		c.anyFails = true
	}

	result := m.TestResult{
		Test: m.TestCase{
			ID:      c.pkg + "." + name,
			Name:    name,
			Package: c.pkg,
			Project: c.project,
		},
		Outcome: outcome,
		Elapsed: elapsed,
		Output:  output,
	}

	c.results[name] = result
	c.emit(result)
}

// Unfinished closes tests that started but never reported an outcome: timed
// out when the run hit its deadline, failed otherwise.
func (c *eventCollector) Unfinished(timedOut bool) []m.TestResult {
	outcome := m.OutcomeFailed
	if timedOut {
		outcome = m.OutcomeTimedOut
	}

	var results []m.TestResult

	for _, name := range c.order {
		out, ok := c.running[name]
		if !ok {
			continue
		}

		if outcome == m.OutcomeFailed {
			c.anyFails = true
		}

		result := m.TestResult{
			Test: m.TestCase{
				ID:      c.pkg + "." + name,
				Name:    name,
				Package: c.pkg,
				Project: c.project,
			},
			Outcome: outcome,
			Output:  out.String(),
		}

		if started, ok := c.started[name]; ok && !started.IsZero() {
			result.Elapsed = time.Since(started)
		}

		delete(c.running, name)
		c.results[name] = result
		results = append(results, result)
	}

	return results
}

// Results returns the recorded results in start order.
func (c *eventCollector) Results() []m.TestResult {
	results := make([]m.TestResult, 0, len(c.results))

	for _, name := range c.order {
		if result, ok := c.results[name]; ok {
			results = append(results, result)
		}
	}

	return results
}

// HasFailedTest reports whether any test failed.
func (c *eventCollector) HasFailedTest() bool {
	return c.anyFails
}

func outcomeOf(action string) m.TestOutcome {
	switch action {
	case "pass":
		return m.OutcomePassed
	case "skip":
		return m.OutcomeSkipped
	default:
		return m.OutcomeFailed
	}
}
