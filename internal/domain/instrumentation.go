package domain

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "gooze.dev/pkg/preflight/domain"

var (
	tracer = otel.Tracer(instrumentationName)
	meter  = otel.Meter(instrumentationName)
)

// pipelineMetrics are created lazily so the global meter provider installed
// by the CLI is picked up.
type pipelineMetrics struct {
	once          sync.Once
	stageLatency  metric.Float64Histogram
	stageFailures metric.Int64Counter
	runs          metric.Int64Counter
	testsRun      metric.Int64Counter
}

var metrics pipelineMetrics

func (p *pipelineMetrics) init() {
	p.once.Do(func() {
		var initErrors []string

		var err error
		p.stageLatency, err = meter.Float64Histogram("preflight_stage_duration_seconds",
			metric.WithDescription("Time spent in each initialization stage"),
			metric.WithUnit("s"),
		)
		if err != nil {
			initErrors = append(initErrors, "stage_latency: "+err.Error())
		}

		p.stageFailures, err = meter.Int64Counter("preflight_stage_failure_total",
			metric.WithDescription("Number of failed initialization stages"),
		)
		if err != nil {
			initErrors = append(initErrors, "stage_failures: "+err.Error())
		}

		p.runs, err = meter.Int64Counter("preflight_initialization_total",
			metric.WithDescription("Number of initialization runs by outcome"),
		)
		if err != nil {
			initErrors = append(initErrors, "runs: "+err.Error())
		}

		p.testsRun, err = meter.Int64Counter("preflight_baseline_tests_total",
			metric.WithDescription("Number of tests executed by baseline runs, by outcome"),
		)
		if err != nil {
			initErrors = append(initErrors, "tests_run: "+err.Error())
		}

		if len(initErrors) > 0 {
			slog.Error("Failed to create pipeline metrics", "errors", strings.Join(initErrors, "; "))
		}
	})
}

func (p *pipelineMetrics) recordStage(ctx context.Context, stage string, elapsed time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("stage", stage))

	if p.stageLatency != nil {
		p.stageLatency.Record(ctx, elapsed.Seconds(), attrs)
	}

	if err != nil && p.stageFailures != nil {
		p.stageFailures.Add(ctx, 1, attrs)
	}
}

func (p *pipelineMetrics) recordRun(ctx context.Context, err error) {
	if p.runs == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	p.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (p *pipelineMetrics) recordTests(ctx context.Context, outcome string, count int) {
	if p.testsRun == nil || count == 0 {
		return
	}

	p.testsRun.Add(ctx, int64(count), metric.WithAttributes(attribute.String("outcome", outcome)))
}

// traceStage runs fn inside a child span and records its duration.
func traceStage(ctx context.Context, stage string, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, "preflight."+stage,
		trace.WithAttributes(attribute.String("preflight.stage", stage)),
	)
	defer span.End()

	start := time.Now()
	err := fn(ctx)

	metrics.recordStage(ctx, stage, time.Since(start), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	span.SetStatus(codes.Ok, "")

	return nil
}
