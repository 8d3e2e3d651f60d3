package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/preflight/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayStage prints the stage the pipeline reached.
func (s *SimpleUI) DisplayStage(ctx context.Context, stage m.Stage) {
	if err := ctx.Err(); err != nil {
		return
	}

	if stage == m.StageUninitialized {
		return
	}

	s.printf("» %s\n", stage)
}

// DisplayInitialization prints the prepared run as a table.
func (s *SimpleUI) DisplayInitialization(ctx context.Context, summary InitializationSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderInitializationTable(summary))
}

func renderInitializationTable(summary InitializationSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	build := "built"
	if summary.BuildSkipped {
		build = "skipped"
	}

	table.AppendBulk([][]string{
		{"Run", summary.RunID},
		{"Module", valueOrDash(summary.ModulePath)},
		{"Project", valueOrDash(summary.ProjectName)},
		{"Version", valueOrDash(summary.ProjectVersion)},
		{"Test projects", fmt.Sprintf("%d (%s)", summary.TestProjects, build)},
		{"Source files", itoa(summary.Sources)},
		{"References", itoa(summary.References)},
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayBaseline prints the outcome counts of the initial test run and the
// calibrated timeout.
func (s *SimpleUI) DisplayBaseline(ctx context.Context, summary BaselineSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderBaselineTable(summary.Baseline.Result))

	for _, test := range unsuccessfulTests(summary.Baseline.Result) {
		s.printf("  %s %s\n", test.Outcome, test.Test.ID)
	}

	s.printf("Initial test run took %s, mutant timeout %s\n",
		roundDuration(summary.Baseline.Result.Duration),
		roundDuration(summary.Baseline.Timeouts.DefaultTimeout()))

	if summary.Path != "" {
		s.printf("Baseline written to %s\n", summary.Path)
	}
}

func renderBaselineTable(result m.RunResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Tests"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})
	table.AppendBulk(outcomeCounts(result))
	table.SetFooter([]string{"Total", itoa(len(result.Results))})
	table.Render()

	return tableBuffer.String()
}

// DisplayError prints err. Input errors are printed verbatim.
func (s *SimpleUI) DisplayError(_ context.Context, err error) {
	if err == nil {
		return
	}

	var inputErr *m.InputError
	if errors.As(err, &inputErr) {
		s.errorf("%s\n", inputErr.Error())
		return
	}

	s.errorf("Error: %v\n", err)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
