package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"gooze.dev/pkg/preflight/internal/adapter"
	m "gooze.dev/pkg/preflight/internal/model"
)

// InitializationResult is the prepared execution context of a mutation run.
type InitializationResult struct {
	RunID         string
	Configuration m.RunConfiguration
	Project       m.ResolvedProjectModel
	References    []m.Reference
	Engine        adapter.TestEngine
}

// Orchestrator turns a run configuration into an InitializationResult and
// runs the baseline test suite.
//
// An Orchestrator is scoped to one run and is not safe for concurrent use.
type Orchestrator interface {
	// Initialize resolves and builds the project, resolves the dashboard
	// identity when needed, provisions the test engine and loads references.
	Initialize(ctx context.Context, cfg m.RunConfiguration) (InitializationResult, error)

	// RunInitialTest runs the complete test suite once. It requires a
	// successful Initialize and re-runs the suite on every call.
	RunInitialTest(ctx context.Context, cfg m.RunConfiguration) (m.BaselineRunResult, error)

	// Stage returns the last stage reached.
	Stage() m.Stage

	// Close releases the test engine when the orchestrator created it.
	Close() error
}

// EngineFactory creates the test engine for a resolved project.
type EngineFactory func(cfg m.RunConfiguration, project m.ResolvedProjectModel) adapter.TestEngine

// StageObserver is notified whenever the orchestrator reaches a stage.
type StageObserver func(stage m.Stage)

// Option configures an Orchestrator.
type Option func(*orchestrator)

// WithProjectResolver replaces the project resolver.
func WithProjectResolver(resolver adapter.ProjectResolver) Option {
	return func(o *orchestrator) {
		o.resolver = resolver
	}
}

// WithBuilder replaces the builder used for test projects.
func WithBuilder(builder adapter.ExternalBuilder) Option {
	return func(o *orchestrator) {
		o.builder = builder
	}
}

// WithMetadataReader replaces the compiled binary metadata reader.
func WithMetadataReader(reader adapter.BinaryMetadataReader) Option {
	return func(o *orchestrator) {
		o.reader = reader
	}
}

// WithReferenceLoader replaces the reference loader.
func WithReferenceLoader(loader adapter.ReferenceLoader) Option {
	return func(o *orchestrator) {
		o.loader = loader
	}
}

// WithBuildCoordinator replaces the build step. The builder option is then unused.
func WithBuildCoordinator(coordinator BuildCoordinator) Option {
	return func(o *orchestrator) {
		o.buildCoordinator = coordinator
	}
}

// WithMetadataResolver replaces the identity step. The metadata reader option is then unused.
func WithMetadataResolver(resolver MetadataResolver) Option {
	return func(o *orchestrator) {
		o.metadataResolver = resolver
	}
}

// WithReferenceResolver replaces the reference step. The configured
// reference policy is then up to resolver.
func WithReferenceResolver(resolver ReferenceResolver) Option {
	return func(o *orchestrator) {
		o.referenceResolver = resolver
	}
}

// WithTestEngine supplies an externally owned test engine. It is used as is
// and never closed by the orchestrator.
func WithTestEngine(engine adapter.TestEngine) Option {
	return func(o *orchestrator) {
		o.engine = engine
		o.ownsEngine = false
	}
}

// WithEngineFactory replaces how the orchestrator creates its own engine.
func WithEngineFactory(factory EngineFactory) Option {
	return func(o *orchestrator) {
		o.engineFactory = factory
	}
}

// WithInitialTestProcess replaces the baseline test process.
func WithInitialTestProcess(process InitialTestProcess) Option {
	return func(o *orchestrator) {
		o.initialTest = process
	}
}

// WithCommandRunner replaces the process runner of the default builder and engine.
func WithCommandRunner(runner adapter.CommandRunner) Option {
	return func(o *orchestrator) {
		o.runner = runner
	}
}

// WithStageObserver registers observer for stage transitions.
func WithStageObserver(observer StageObserver) Option {
	return func(o *orchestrator) {
		o.observer = observer
	}
}

type orchestrator struct {
	runner        adapter.CommandRunner
	resolver      adapter.ProjectResolver
	builder       adapter.ExternalBuilder
	reader        adapter.BinaryMetadataReader
	loader        adapter.ReferenceLoader
	initialTest   InitialTestProcess
	engineFactory EngineFactory
	observer      StageObserver

	buildCoordinator  BuildCoordinator
	metadataResolver  MetadataResolver
	referenceResolver ReferenceResolver

	engine     adapter.TestEngine
	ownsEngine bool
	closed     bool
	stage      m.Stage
}

// NewOrchestrator constructs an Orchestrator. Collaborators that are not
// supplied through options default to the production adapters.
func NewOrchestrator(options ...Option) Orchestrator {
	o := &orchestrator{}

	for _, option := range options {
		option(o)
	}

	if o.runner == nil {
		o.runner = adapter.NewLocalCommandRunner()
	}

	if o.resolver == nil || o.loader == nil {
		fs := adapter.NewLocalSourceFSAdapter()

		if o.resolver == nil {
			o.resolver = adapter.NewGoProjectResolver(fs, adapter.NewLocalGoFileAdapter())
		}

		if o.loader == nil {
			o.loader = adapter.NewModuleCacheLoader(fs)
		}
	}

	if o.builder == nil {
		o.builder = adapter.NewGoBuilder(o.runner)
	}

	if o.reader == nil {
		o.reader = adapter.NewBuildInfoReader()
	}

	if o.buildCoordinator == nil {
		o.buildCoordinator = NewBuildCoordinator(o.builder)
	}

	if o.metadataResolver == nil {
		o.metadataResolver = NewMetadataResolver(o.reader)
	}

	if o.initialTest == nil {
		o.initialTest = NewInitialTestProcess()
	}

	if o.engineFactory == nil {
		runner := o.runner
		o.engineFactory = func(cfg m.RunConfiguration, project m.ResolvedProjectModel) adapter.TestEngine {
			return adapter.NewTestEnginePool(cfg, project, runner)
		}
	}

	return o
}

func (o *orchestrator) Stage() m.Stage {
	return o.stage
}

func (o *orchestrator) Initialize(ctx context.Context, cfg m.RunConfiguration) (result InitializationResult, err error) {
	metrics.init()

	runID := uuid.NewString()

	ctx, span := tracer.Start(ctx, "preflight.Initialize",
		trace.WithAttributes(
			attribute.String("preflight.run_id", runID),
			attribute.String("preflight.project_path", string(cfg.ProjectPath)),
			attribute.Bool("preflight.skip_build", cfg.SkipBuild),
		),
	)
	defer span.End()

	defer func() {
		metrics.recordRun(ctx, err)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}()

	if o.closed {
		return InitializationResult{}, m.NewUsageError("Initialize called on a closed orchestrator")
	}

	o.transition(m.StageUninitialized)

	if err := cfg.Validate(); err != nil {
		return InitializationResult{}, err
	}

	slog.Info("Initializing mutation run", "runID", runID, "path", cfg.ProjectPath)

	var project m.ResolvedProjectModel

	err = traceStage(ctx, "resolve_project", func(ctx context.Context) error {
		resolved, resolveErr := o.resolver.Resolve(ctx, cfg)
		if resolveErr != nil {
			return failure(ctx, resolveErr, "Failed to resolve the project under test")
		}

		project = resolved

		return nil
	})
	if err != nil {
		slog.Error("Failed to resolve project", "error", err)
		return InitializationResult{}, err
	}

	span.SetAttributes(attribute.Int("preflight.test_projects", len(project.TestProjects)))
	o.transition(m.StageProjectResolved)

	err = traceStage(ctx, "build_test_projects", func(ctx context.Context) error {
		return o.buildCoordinator.BuildTestProjects(ctx, cfg, project)
	})
	if err != nil {
		return InitializationResult{}, err
	}

	o.transition(m.StageTestProjectsBuilt)

	enriched := cfg

	err = traceStage(ctx, "resolve_identity", func(ctx context.Context) error {
		resolved, resolveErr := o.metadataResolver.Resolve(ctx, cfg, project)
		if resolveErr != nil {
			return resolveErr
		}

		enriched = resolved

		return nil
	})
	if err != nil {
		slog.Error("Failed to resolve dashboard identity", "error", err)
		return InitializationResult{}, err
	}

	o.transition(m.StageIdentityResolved)

	engine := o.provisionEngine(enriched, project)
	o.transition(m.StageRunnerProvisioned)

	var references []m.Reference

	err = traceStage(ctx, "load_references", func(ctx context.Context) error {
		loaded, loadErr := o.references(enriched).LoadProjectReferences(ctx, project.ProjectUnderTest.References)
		if loadErr != nil {
			return loadErr
		}

		references = loaded

		return nil
	})
	if err != nil {
		return InitializationResult{}, err
	}

	o.transition(m.StageInitialized)

	slog.Info("Initialization complete",
		"runID", runID,
		"testProjects", len(project.TestProjects),
		"references", len(references),
		"projectName", enriched.ProjectName,
		"projectVersion", enriched.ProjectVersion,
	)

	return InitializationResult{
		RunID:         runID,
		Configuration: enriched,
		Project:       project,
		References:    references,
		Engine:        engine,
	}, nil
}

func (o *orchestrator) RunInitialTest(ctx context.Context, cfg m.RunConfiguration) (m.BaselineRunResult, error) {
	if o.stage != m.StageInitialized || o.engine == nil {
		return m.BaselineRunResult{}, m.NewUsageError("RunInitialTest requires a successful Initialize on the same orchestrator")
	}

	metrics.init()

	var baseline m.BaselineRunResult

	err := traceStage(ctx, "initial_test", func(ctx context.Context) error {
		result, testErr := o.initialTest.InitialTest(ctx, cfg, o.engine)
		if testErr != nil {
			return testErr
		}

		baseline = result

		return nil
	})
	if err != nil {
		slog.Error("Initial test run failed", "error", err)
		return m.BaselineRunResult{}, err
	}

	metrics.recordTests(ctx, m.OutcomePassed.String(), len(baseline.Result.Filter(m.OutcomePassed)))
	metrics.recordTests(ctx, m.OutcomeSkipped.String(), len(baseline.Result.Filter(m.OutcomeSkipped)))

	o.notify(m.StageBaseline)

	return baseline, nil
}

func (o *orchestrator) Close() error {
	if o.closed {
		return nil
	}

	o.closed = true

	if !o.ownsEngine || o.engine == nil {
		return nil
	}

	if err := o.engine.Close(); err != nil {
		return fmt.Errorf("close test engine: %w", err)
	}

	return nil
}

// provisionEngine creates the owned engine on first use and reuses it afterwards.
func (o *orchestrator) provisionEngine(cfg m.RunConfiguration, project m.ResolvedProjectModel) adapter.TestEngine {
	if o.engine != nil {
		return o.engine
	}

	o.engine = o.engineFactory(cfg, project)
	o.ownsEngine = true

	slog.Debug("Provisioned test engine", "testProjects", len(project.TestProjects))

	return o.engine
}

func (o *orchestrator) references(cfg m.RunConfiguration) ReferenceResolver {
	if o.referenceResolver != nil {
		return o.referenceResolver
	}

	return NewReferenceResolver(o.loader, cfg.EffectiveReferencePolicy())
}

func (o *orchestrator) transition(stage m.Stage) {
	o.stage = stage
	o.notify(stage)
}

func (o *orchestrator) notify(stage m.Stage) {
	slog.Debug("Reached stage", "stage", stage)

	if o.observer != nil {
		o.observer(stage)
	}
}

// failure keeps cancellation errors intact and turns everything else into an
// input error.
func failure(ctx context.Context, err error, message string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	return m.AsInputError(err, message)
}
