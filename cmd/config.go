package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "gooze.dev/pkg/preflight/internal/model"
	"gooze.dev/pkg/preflight/internal/telemetry"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "preflight"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName  = "output"
	verboseFlagName = "verbose"
	logFileFlagName = "log-file"

	skipBuildFlagName         = "skip-build"
	solutionFlagName          = "solution"
	goToolFlagName            = "go"
	projectNameFlagName       = "project-name"
	projectVersionFlagName    = "project-version"
	targetPathFlagName        = "target-path"
	testProjectFlagName       = "test-project"
	reporterFlagName          = "reporter"
	withBaselineFlagName      = "with-baseline"
	baselineProviderFlagName  = "baseline-provider"
	concurrencyFlagName       = "concurrency"
	additionalTimeoutFlagName = "additional-timeout"
	timeoutFlagName           = "timeout"
	referencePolicyFlagName   = "reference-policy"

	projectNameKey       = "project.name"
	projectVersionKey    = "project.version"
	targetPathKey        = "project.target_path"
	testProjectsKey      = "project.test_projects"
	skipBuildKey         = "build.skip"
	solutionKey          = "build.solution"
	goToolKey            = "build.tool"
	reportersKey         = "reporters"
	baselineEnabledKey   = "baseline.enabled"
	baselineProviderKey  = "baseline.provider"
	concurrencyKey       = "run.concurrency"
	additionalTimeoutKey = "run.additional_timeout"
	runTimeoutKey        = "run.timeout"
	referencePolicyKey   = "references.policy"

	telemetryTracesKey       = "telemetry.traces"
	telemetryMetricsKey      = "telemetry.metrics"
	telemetryEndpointKey     = "telemetry.otlp_endpoint"
	telemetryInsecureKey     = "telemetry.otlp_insecure"
	telemetryMetricsFileKey  = "telemetry.metrics_file"
	defaultTelemetryEndpoint = "localhost:4317"

	defaultOutputDir         = ".preflight"
	defaultBaselineProvider  = string(m.BaselineProviderDisk)
	defaultConcurrency       = 0
	defaultAdditionalTimeout = m.DefaultAdditionalTimeout
	defaultRunTimeout        = time.Duration(0)
	defaultReferencePolicy   = string(m.ReferencePolicySkip)

	envPrefix = "PREFLIGHT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".preflight.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultReporters = []string{string(m.ReporterProgress), string(m.ReporterClearText)}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutputDir)

	viper.SetDefault(projectNameKey, "")
	viper.SetDefault(projectVersionKey, "")
	viper.SetDefault(targetPathKey, "")
	viper.SetDefault(testProjectsKey, []string{})
	viper.SetDefault(skipBuildKey, false)
	viper.SetDefault(solutionKey, "")
	viper.SetDefault(goToolKey, "")
	viper.SetDefault(reportersKey, defaultReporters)
	viper.SetDefault(baselineEnabledKey, false)
	viper.SetDefault(baselineProviderKey, defaultBaselineProvider)
	viper.SetDefault(concurrencyKey, defaultConcurrency)
	viper.SetDefault(additionalTimeoutKey, defaultAdditionalTimeout.String())
	viper.SetDefault(runTimeoutKey, defaultRunTimeout.String())
	viper.SetDefault(referencePolicyKey, defaultReferencePolicy)

	viper.SetDefault(telemetryTracesKey, telemetry.ExporterNone)
	viper.SetDefault(telemetryMetricsKey, telemetry.ExporterNone)
	viper.SetDefault(telemetryEndpointKey, defaultTelemetryEndpoint)
	viper.SetDefault(telemetryInsecureKey, true)
	viper.SetDefault(telemetryMetricsFileKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// runConfiguration assembles the run configuration from flags, environment
// and the configuration file.
func runConfiguration(projectPath string) m.RunConfiguration {
	return m.RunConfiguration{
		ProjectName:       viper.GetString(projectNameKey),
		ProjectVersion:    viper.GetString(projectVersionKey),
		ProjectPath:       m.Path(projectPath),
		TestProjects:      toPaths(viper.GetStringSlice(testProjectsKey)),
		TargetPath:        m.Path(viper.GetString(targetPathKey)),
		SkipBuild:         viper.GetBool(skipBuildKey),
		SolutionPath:      m.Path(viper.GetString(solutionKey)),
		BuildToolPath:     viper.GetString(goToolKey),
		Reporters:         toReporters(viper.GetStringSlice(reportersKey)),
		WithBaseline:      viper.GetBool(baselineEnabledKey),
		BaselineProvider:  m.BaselineProvider(viper.GetString(baselineProviderKey)),
		Concurrency:       viper.GetInt(concurrencyKey),
		AdditionalTimeout: viper.GetDuration(additionalTimeoutKey),
		ReferencePolicy:   m.ReferencePolicy(viper.GetString(referencePolicyKey)),
	}
}

func telemetryConfig(version string) telemetry.Config {
	cfg := telemetry.DefaultConfig()
	cfg.ServiceVersion = version
	cfg.TraceExporter = viper.GetString(telemetryTracesKey)
	cfg.MetricExporter = viper.GetString(telemetryMetricsKey)
	cfg.OTLPEndpoint = viper.GetString(telemetryEndpointKey)
	cfg.OTLPInsecure = viper.GetBool(telemetryInsecureKey)
	cfg.MetricsFile = viper.GetString(telemetryMetricsFileKey)

	return cfg
}

func toPaths(values []string) []m.Path {
	paths := make([]m.Path, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}

		paths = append(paths, m.Path(value))
	}

	return paths
}

func toReporters(values []string) []m.Reporter {
	reporters := make([]m.Reporter, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}

		reporters = append(reporters, m.Reporter(value))
	}

	return reporters
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
