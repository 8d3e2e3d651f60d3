package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "gooze.dev/pkg/preflight/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	faintStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in the background.
func (p *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.program != nil {
		return nil
	}

	p.program = tea.NewProgram(newProgressModel(), tea.WithOutput(p.output), tea.WithInput(nil), tea.WithContext(ctx))
	p.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = program.Run()
	}(p.program, p.done)

	return nil
}

// Close stops the program and waits until its final frame is rendered.
func (p *TUI) Close(_ context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program = nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(quitMsg{})
	<-done
}

// DisplayStage marks stage as reached.
func (p *TUI) DisplayStage(_ context.Context, stage m.Stage) {
	p.send(stageMsg(stage))
}

// DisplayInitialization appends the initialization summary.
func (p *TUI) DisplayInitialization(_ context.Context, summary InitializationSummary) {
	p.send(linesMsg(initializationLines(summary)))
}

// DisplayBaseline appends the baseline summary.
func (p *TUI) DisplayBaseline(_ context.Context, summary BaselineSummary) {
	p.send(linesMsg(baselineLines(summary)))
}

// DisplayError appends err. Input errors are shown verbatim.
func (p *TUI) DisplayError(_ context.Context, err error) {
	if err == nil {
		return
	}

	p.send(linesMsg(errorLines(err)))
}

func (p *TUI) send(msg tea.Msg) {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program != nil {
		program.Send(msg)
		return
	}

	// Without a running program the lines are printed directly.
	if lines, ok := msg.(linesMsg); ok {
		_, _ = fmt.Fprintln(p.output, strings.Join(lines, "\n"))
	}
}

type stageMsg m.Stage

type linesMsg []string

type quitMsg struct{}

// progressModel is the Bubble Tea model showing the pipeline stages.
type progressModel struct {
	spinner  spinner.Model
	stages   []m.Stage
	lines    []string
	quitting bool
}

func newProgressModel() progressModel {
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle)),
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		stage := m.Stage(msg)
		if stage == m.StageUninitialized {
			pm.stages = nil
			return pm, nil
		}

		pm.stages = append(pm.stages, stage)

		return pm, nil
	case linesMsg:
		pm.lines = append(pm.lines, msg...)
		return pm, nil
	case quitMsg:
		pm.quitting = true
		return pm, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			pm.quitting = true
			return pm, tea.Quit
		}

		return pm, nil
	case spinner.TickMsg:
		var cmd tea.Cmd

		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("preflight"))
	b.WriteString("\n\n")

	for _, stage := range pm.stages {
		fmt.Fprintf(&b, "  %s %s\n", doneStyle.Render("✓"), stage)
	}

	if !pm.quitting {
		fmt.Fprintf(&b, "  %s %s\n", pm.spinner.View(), faintStyle.Render(nextStageLabel(pm.current())))
	}

	if len(pm.lines) > 0 {
		b.WriteString("\n")

		for _, line := range pm.lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (pm progressModel) current() m.Stage {
	if len(pm.stages) == 0 {
		return m.StageUninitialized
	}

	return pm.stages[len(pm.stages)-1]
}

func nextStageLabel(stage m.Stage) string {
	switch stage {
	case m.StageUninitialized:
		return "resolving project"
	case m.StageProjectResolved:
		return "building test projects"
	case m.StageTestProjectsBuilt:
		return "resolving identity"
	case m.StageIdentityResolved:
		return "provisioning test runner"
	case m.StageRunnerProvisioned:
		return "loading references"
	case m.StageInitialized:
		return "running initial tests"
	default:
		return "finishing"
	}
}

func initializationLines(summary InitializationSummary) []string {
	build := "built"
	if summary.BuildSkipped {
		build = "build skipped"
	}

	lines := []string{
		fmt.Sprintf("  Run %s", faintStyle.Render(summary.RunID)),
		fmt.Sprintf("  Module %s", valueOrDash(summary.ModulePath)),
	}

	if summary.ProjectName != "" || summary.ProjectVersion != "" {
		lines = append(lines, fmt.Sprintf("  Project %s @ %s", valueOrDash(summary.ProjectName), valueOrDash(summary.ProjectVersion)))
	}

	return append(lines,
		fmt.Sprintf("  %d test project(s), %s", summary.TestProjects, build),
		fmt.Sprintf("  %d source file(s), %d reference(s)", summary.Sources, summary.References),
	)
}

func baselineLines(summary BaselineSummary) []string {
	result := summary.Baseline.Result

	counts := make([]string, 0, 4)
	for _, row := range outcomeCounts(result) {
		counts = append(counts, row[1]+" "+row[0])
	}

	lines := []string{"  📊 " + strings.Join(counts, " | ")}

	for _, test := range unsuccessfulTests(result) {
		lines = append(lines, "    "+errorStyle.Render("✗")+" "+test.Test.ID+" "+faintStyle.Render(test.Outcome.String()))
	}

	for _, project := range result.FailedProjects {
		lines = append(lines, "    "+warnStyle.Render("!")+" "+string(project)+" failed outside of a test")
	}

	lines = append(lines, fmt.Sprintf("  Took %s, mutant timeout %s",
		roundDuration(result.Duration), roundDuration(summary.Baseline.Timeouts.DefaultTimeout())))

	if summary.Path != "" {
		lines = append(lines, "  Baseline written to "+string(summary.Path))
	}

	return lines
}

func errorLines(err error) []string {
	var inputErr *m.InputError
	if errors.As(err, &inputErr) {
		lines := []string{errorStyle.Render(inputErr.Message)}
		if inputErr.Details != "" {
			lines = append(lines, inputErr.Details)
		}

		return lines
	}

	return []string{errorStyle.Render("Error: " + err.Error())}
}
