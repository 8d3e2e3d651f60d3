// Package cmd provides the root command and CLI setup for preflight.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/preflight/internal/adapter"
	"gooze.dev/pkg/preflight/internal/controller"
	"gooze.dev/pkg/preflight/internal/domain"
	m "gooze.dev/pkg/preflight/internal/model"
)

var projectResolver adapter.ProjectResolver
var metadataReader adapter.BinaryMetadataReader
var baselineStore adapter.BaselineStore
var orchestrator domain.Orchestrator
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that read/write the baseline.
var outputDirFlag string

var verboseFlag bool

var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	projectResolver = adapter.NewGoProjectResolver(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalGoFileAdapter())
	metadataReader = adapter.NewBuildInfoReader()
	baselineStore = adapter.NewYAMLBaselineStore()
	orchestrator = domain.NewOrchestrator(
		domain.WithProjectResolver(projectResolver),
		domain.WithMetadataReader(metadataReader),
		domain.WithStageObserver(displayStage),
	)
}

const rootLongDescription = `Preflight prepares a Go module for mutation testing: it resolves the module
and its test packages, builds the test binaries, resolves the dashboard
identity when a reporter needs it, and runs the test suite once to make sure
it passes and to calibrate mutant timeouts.`

const runLongDescription = `Initialize the module at path (default: current directory) and run the
initial test suite. The baseline is written to <output>/baseline.yaml.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "preflight",
		Short:         "Initialization pipeline for Go mutation testing",
		Long:          rootLongDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for the baseline",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// displayedError marks an error the UI already showed to the user.
type displayedError struct {
	err error
}

func (e *displayedError) Error() string {
	return e.err.Error()
}

func (e *displayedError) Unwrap() error {
	return e.err
}

func displayed(ctx context.Context, err error) error {
	ui.DisplayError(ctx, err)
	return &displayedError{err: err}
}

func displayStage(stage m.Stage) {
	ui.DisplayStage(context.Background(), stage)
}

// printError writes err unless it was already displayed. Input errors are
// printed verbatim.
func printError(w io.Writer, err error) {
	var shown *displayedError
	if errors.As(err, &shown) {
		return
	}

	if m.IsInputError(err) {
		_, _ = fmt.Fprintln(w, err.Error())
		return
	}

	_, _ = fmt.Fprintln(w, "Error:", err)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func projectPathArg(args []string) string {
	if len(args) == 0 {
		return "."
	}

	return args[0]
}
