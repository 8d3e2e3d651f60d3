package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	m "gooze.dev/pkg/preflight/internal/model"
	"gooze.dev/pkg/preflight/internal/telemetry"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "preflight", configBaseName)
	assert.Equal(t, "preflight.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, ".preflight", defaultOutputDir)
	assert.Equal(t, "PREFLIGHT", envPrefix)
	assert.Equal(t, 5*time.Second, defaultAdditionalTimeout)
	assert.Equal(t, "skip", defaultReferencePolicy)
	assert.Equal(t, "Disk", defaultBaselineProvider)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestRunConfiguration_Defaults(t *testing.T) {
	cfg := runConfiguration("./service")

	assert.Equal(t, m.Path("./service"), cfg.ProjectPath)
	assert.Equal(t, []m.Reporter{m.ReporterProgress, m.ReporterClearText}, cfg.Reporters)
	assert.Equal(t, m.BaselineProviderDisk, cfg.BaselineProvider)
	assert.Equal(t, m.ReferencePolicySkip, cfg.ReferencePolicy)
	assert.Equal(t, 5*time.Second, cfg.AdditionalTimeout)
	assert.Empty(t, cfg.TestProjects)
	assert.False(t, cfg.SkipBuild)
}

func TestRunConfiguration_FromViper(t *testing.T) {
	viper.Set(projectNameKey, "github.com/acme/app")
	viper.Set(projectVersionKey, "feature/x")
	viper.Set(testProjectsKey, []string{"./a", " ", "./b"})
	viper.Set(reportersKey, []string{"Dashboard", ""})
	viper.Set(additionalTimeoutKey, "250ms")
	t.Cleanup(func() {
		for _, key := range []string{projectNameKey, projectVersionKey, testProjectsKey, reportersKey, additionalTimeoutKey} {
			viper.Set(key, nil)
		}
	})

	cfg := runConfiguration(".")

	assert.Equal(t, "github.com/acme/app", cfg.ProjectName)
	assert.Equal(t, "feature/x", cfg.ProjectVersion)
	assert.Equal(t, []m.Path{"./a", "./b"}, cfg.TestProjects)
	assert.Equal(t, []m.Reporter{m.ReporterDashboard}, cfg.Reporters)
	assert.Equal(t, 250*time.Millisecond, cfg.AdditionalTimeout)
}

func TestTelemetryConfig(t *testing.T) {
	cfg := telemetryConfig("v1.2.3")

	assert.Equal(t, "v1.2.3", cfg.ServiceVersion)
	assert.Equal(t, telemetry.ExporterNone, cfg.TraceExporter)
	assert.Equal(t, telemetry.ExporterNone, cfg.MetricExporter)
	assert.Equal(t, defaultTelemetryEndpoint, cfg.OTLPEndpoint)
	assert.True(t, cfg.OTLPInsecure)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}
