package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/preflight/internal/controller"
	"gooze.dev/pkg/preflight/internal/domain"
	m "gooze.dev/pkg/preflight/internal/model"
	"gooze.dev/pkg/preflight/internal/telemetry"
)

var (
	skipBuildFlag         bool
	solutionFlag          string
	goToolFlag            string
	projectNameFlag       string
	projectVersionFlag    string
	targetPathFlag        string
	testProjectFlags      []string
	reporterFlags         []string
	withBaselineFlag      bool
	baselineProviderFlag  string
	concurrencyFlag       int
	additionalTimeoutFlag time.Duration
	timeoutFlag           time.Duration
	referencePolicyFlag   string
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Initialize the module and run the initial test suite",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if timeout := viper.GetDuration(runTimeoutKey); timeout > 0 {
				var cancel context.CancelFunc

				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			shutdown, err := telemetry.Init(ctx, telemetryConfig(toolVersion()))
			if err != nil {
				return fmt.Errorf("failed to initialize telemetry: %w", err)
			}

			defer func() {
				if err := shutdown(context.Background()); err != nil {
					slog.Warn("Failed to flush telemetry", "error", err)
				}
			}()

			return runPreflight(ctx, runConfiguration(projectPathArg(args)), m.Path(viper.GetString(outputFlagName)))
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.BoolVar(&skipBuildFlag, skipBuildFlagName, viper.GetBool(skipBuildKey), "use the existing test binaries instead of building them")
	bindFlagToConfig(flags.Lookup(skipBuildFlagName), skipBuildKey)

	flags.StringVar(&solutionFlag, solutionFlagName, viper.GetString(solutionKey), "go.work file applied to builds")
	bindFlagToConfig(flags.Lookup(solutionFlagName), solutionKey)

	flags.StringVar(&goToolFlag, goToolFlagName, viper.GetString(goToolKey), "go binary used to build and run tests")
	bindFlagToConfig(flags.Lookup(goToolFlagName), goToolKey)

	flags.StringVar(&projectNameFlag, projectNameFlagName, viper.GetString(projectNameKey), "dashboard project name")
	bindFlagToConfig(flags.Lookup(projectNameFlagName), projectNameKey)

	flags.StringVar(&projectVersionFlag, projectVersionFlagName, viper.GetString(projectVersionKey), "dashboard project version")
	bindFlagToConfig(flags.Lookup(projectVersionFlagName), projectVersionKey)

	flags.StringVar(&targetPathFlag, targetPathFlagName, viper.GetString(targetPathKey), "compiled binary the dashboard identity is read from")
	bindFlagToConfig(flags.Lookup(targetPathFlagName), targetPathKey)

	flags.StringArrayVar(&testProjectFlags, testProjectFlagName, viper.GetStringSlice(testProjectsKey), "test package directory (can be repeated, default: all)")
	bindFlagToConfig(flags.Lookup(testProjectFlagName), testProjectsKey)

	flags.StringArrayVarP(&reporterFlags, reporterFlagName, "r", viper.GetStringSlice(reportersKey), "reporter enabled for the run (can be repeated)")
	bindFlagToConfig(flags.Lookup(reporterFlagName), reportersKey)

	flags.BoolVar(&withBaselineFlag, withBaselineFlagName, viper.GetBool(baselineEnabledKey), "compare against a stored baseline report")
	bindFlagToConfig(flags.Lookup(withBaselineFlagName), baselineEnabledKey)

	flags.StringVar(&baselineProviderFlag, baselineProviderFlagName, viper.GetString(baselineProviderKey), "where baseline reports are stored (Disk, Dashboard, AzureFileStorage)")
	bindFlagToConfig(flags.Lookup(baselineProviderFlagName), baselineProviderKey)

	flags.IntVarP(&concurrencyFlag, concurrencyFlagName, "c", viper.GetInt(concurrencyKey), "number of test packages run in parallel (0: number of CPUs)")
	bindFlagToConfig(flags.Lookup(concurrencyFlagName), concurrencyKey)

	flags.DurationVar(&additionalTimeoutFlag, additionalTimeoutFlagName, viper.GetDuration(additionalTimeoutKey), "margin added to mutant timeouts")
	bindFlagToConfig(flags.Lookup(additionalTimeoutFlagName), additionalTimeoutKey)

	flags.DurationVar(&timeoutFlag, timeoutFlagName, viper.GetDuration(runTimeoutKey), "bound on the whole run (0: none)")
	bindFlagToConfig(flags.Lookup(timeoutFlagName), runTimeoutKey)

	flags.StringVar(&referencePolicyFlag, referencePolicyFlagName, viper.GetString(referencePolicyKey), "what to do when a reference cannot be loaded (skip, fail)")
	bindFlagToConfig(flags.Lookup(referencePolicyFlagName), referencePolicyKey)
}

func runPreflight(ctx context.Context, cfg m.RunConfiguration, outputDir m.Path) error {
	if err := ui.Start(ctx); err != nil {
		return err
	}
	defer ui.Close(ctx)

	defer func() {
		if err := orchestrator.Close(); err != nil {
			slog.Warn("Failed to close the orchestrator", "error", err)
		}
	}()

	result, err := orchestrator.Initialize(ctx, cfg)
	if err != nil {
		slog.Error("Initialization failed", "error", err)
		return displayed(ctx, err)
	}

	ui.DisplayInitialization(ctx, initializationSummary(result))

	baseline, err := orchestrator.RunInitialTest(ctx, result.Configuration)
	if err != nil {
		slog.Error("Initial test run failed", "error", err)
		return displayed(ctx, err)
	}

	path, err := baselineStore.SaveBaseline(outputDir, baseline)
	if err != nil {
		slog.Error("Failed to save the baseline", "dir", outputDir, "error", err)
		return displayed(ctx, fmt.Errorf("failed to save baseline: %w", err))
	}

	slog.Info("Saved baseline", "path", path, "run", result.RunID)

	ui.DisplayBaseline(ctx, controller.BaselineSummary{Baseline: baseline, Path: path})

	return nil
}

func initializationSummary(result domain.InitializationResult) controller.InitializationSummary {
	modulePath, _ := result.Project.ProjectUnderTest.Property(m.PropertyModulePath)

	return controller.InitializationSummary{
		RunID:          result.RunID,
		ModulePath:     modulePath,
		ProjectName:    result.Configuration.ProjectName,
		ProjectVersion: result.Configuration.ProjectVersion,
		TestProjects:   len(result.Project.TestProjects),
		Sources:        result.Project.Contents.Count(),
		References:     len(result.References),
		BuildSkipped:   result.Configuration.SkipBuild,
	}
}

func toolVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "unknown"
	}

	return info.Main.Version
}
