// Package domain implements the initialization pipeline of a mutation testing run.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/preflight/internal/adapter"
	m "gooze.dev/pkg/preflight/internal/model"
)

// BuildCoordinator builds every test project of a resolved project before
// tests can be discovered.
type BuildCoordinator interface {
	BuildTestProjects(ctx context.Context, cfg m.RunConfiguration, project m.ResolvedProjectModel) error
}

type buildCoordinator struct {
	builder adapter.ExternalBuilder
}

// NewBuildCoordinator constructs a BuildCoordinator backed by builder.
func NewBuildCoordinator(builder adapter.ExternalBuilder) BuildCoordinator {
	return &buildCoordinator{builder: builder}
}

func (b *buildCoordinator) BuildTestProjects(ctx context.Context, cfg m.RunConfiguration, project m.ResolvedProjectModel) error {
	total := len(project.TestProjects)

	if cfg.SkipBuild {
		slog.Warn("Skipping the initial build, the test projects are assumed to be pre-built", "testProjects", total)
		return nil
	}

	for i, testProject := range project.TestProjects {
		slog.Info("Building test project",
			"project", testProject.ProjectFilePath,
			"progress", progress(i+1, total),
			"toolchain", testProject.Toolchain,
		)

		err := b.builder.Build(ctx,
			testProject.IsLegacyToolchain(),
			testProject.ProjectFilePath,
			cfg.SolutionPath,
			cfg.BuildToolPath,
		)
		if err != nil {
			slog.Error("Failed to build test project", "project", testProject.ProjectFilePath, "error", err)

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			return m.AsInputError(err, "Initial build of the targeted project "+string(testProject.ProjectFilePath)+" failed")
		}
	}

	return nil
}

func progress(current, total int) string {
	return fmt.Sprintf("%d/%d", current, total)
}
