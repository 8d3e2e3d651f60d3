package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "gooze.dev/pkg/preflight/internal/model"
)

const defaultGoTool = "go"

// ExternalBuilder compiles one test project.
type ExternalBuilder interface {
	// Build compiles the test binary of the project at projectFilePath. An
	// empty solutionPath or buildToolPath selects the defaults.
	Build(ctx context.Context, legacyToolchain bool, projectFilePath m.Path, solutionPath m.Path, buildToolPath string) error
}

// GoBuilder builds test binaries with `go test -c`.
type GoBuilder struct {
	runner CommandRunner
}

// NewGoBuilder constructs a GoBuilder that runs the toolchain through runner.
func NewGoBuilder(runner CommandRunner) *GoBuilder {
	return &GoBuilder{runner: runner}
}

// Build runs `go test -c -o <dir>/<base>.test .` inside the project directory.
func (b *GoBuilder) Build(ctx context.Context, legacyToolchain bool, projectFilePath m.Path, solutionPath m.Path, buildToolPath string) error {
	dir := projectDir(projectFilePath)
	output := m.TestBinaryPath(dir)

	req := CommandRequest{
		Dir:  string(dir),
		Name: goTool(buildToolPath),
		Args: []string{"test", "-c", "-o", string(output), "."},
		Env:  buildEnv(legacyToolchain, solutionPath),
	}

	slog.Debug("Running build", "dir", req.Dir, "tool", req.Name, "args", req.Args, "env", req.Env)

	result, err := b.runner.Run(ctx, req)
	if err != nil {
		slog.Error("Failed to run build", "project", projectFilePath, "error", err)
		return fmt.Errorf("run %s test -c in %s: %w", req.Name, dir, err)
	}

	if result.ExitCode != 0 {
		slog.Error("Build failed", "project", projectFilePath, "exitCode", result.ExitCode, "output", result.Output())

		return m.NewInputError(
			fmt.Sprintf("Initial build of the targeted project %s failed. Please make sure it builds before running mutation tests.", projectFilePath),
			strings.TrimSpace(result.Output()),
		)
	}

	slog.Debug("Build succeeded", "project", projectFilePath, "output", output, "duration", result.Duration)

	return nil
}

func goTool(buildToolPath string) string {
	if strings.TrimSpace(buildToolPath) == "" {
		return defaultGoTool
	}

	return buildToolPath
}

func buildEnv(legacyToolchain bool, solutionPath m.Path) []string {
	var env []string

	if legacyToolchain {
		env = append(env, "GO111MODULE=off")
	}

	if solutionPath != "" {
		workFile, err := filepath.Abs(string(solutionPath))
		if err != nil {
			workFile = string(solutionPath)
		}

		env = append(env, "GOWORK="+workFile)
	}

	return env
}

// projectDir returns the directory of a project path that may name a go.mod
// file or the package directory itself.
func projectDir(projectFilePath m.Path) m.Path {
	path := string(projectFilePath)

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return m.Path(filepath.Dir(path))
	}

	if filepath.Base(path) == "go.mod" {
		return m.Path(filepath.Dir(path))
	}

	return projectFilePath
}
