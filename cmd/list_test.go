package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "gooze.dev/pkg/preflight/internal/adapter/mocks"
	m "gooze.dev/pkg/preflight/internal/model"
)

func useProjectResolver(t *testing.T) *adaptermocks.MockProjectResolver {
	t.Helper()

	mockResolver := adaptermocks.NewMockProjectResolver(t)

	original := projectResolver
	projectResolver = mockResolver
	t.Cleanup(func() { projectResolver = original })

	return mockResolver
}

func TestListCmd_PrintsTestProjects(t *testing.T) {
	mockResolver := useProjectResolver(t)

	contents := m.NewFolder("")
	contents.Add(m.Source{Origin: &m.File{FullPath: "/app/main.go", ShortPath: "main.go"}})
	contents.Add(m.Source{Origin: &m.File{FullPath: "/app/store/store.go", ShortPath: "store/store.go"}})
	contents.Add(m.Source{Origin: &m.File{FullPath: "/app/store/cache.go", ShortPath: "store/cache.go"}})

	project := m.ResolvedProjectModel{
		ProjectUnderTest: m.AnalysisResult{
			ProjectFilePath: "/app/go.mod",
			Properties:      map[string]string{m.PropertyModulePath: "example.com/app", m.PropertyDir: "/app"},
		},
		TestProjects: []m.AnalysisResult{
			{ProjectFilePath: "/app/go.mod", Properties: map[string]string{m.PropertyDir: "/app", m.PropertyImportPath: "example.com/app"}},
			{ProjectFilePath: "/app/go.mod", Properties: map[string]string{m.PropertyDir: "/app/store", m.PropertyImportPath: "example.com/app/store"}},
		},
		Contents: contents,
	}

	mockResolver.EXPECT().Resolve(mock.Anything, mock.MatchedBy(func(cfg m.RunConfiguration) bool {
		return cfg.ProjectPath == m.Path("./app")
	})).Return(project, nil)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())

	stdout, _, err := executeCommand(t, cmd, "list", "./app")
	require.NoError(t, err)

	assert.Contains(t, stdout, "module example.com/app (modules)")
	assert.Contains(t, stdout, "example.com/app/store")
	assert.Contains(t, stdout, " store\n")
	assert.Contains(t, stdout, "2 test package(s), 3 source file(s)")
}

func TestListCmd_ResolveError(t *testing.T) {
	mockResolver := useProjectResolver(t)
	resolveErr := m.NewInputError("No test projects found")
	mockResolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(m.ResolvedProjectModel{}, resolveErr)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())

	_, _, err := executeCommand(t, cmd, "list")

	require.Error(t, err)
	assert.True(t, errors.Is(err, resolveErr))
}

func TestRelativeTo(t *testing.T) {
	assert.Equal(t, ".", relativeTo("/app", "/app"))
	assert.Equal(t, "store", relativeTo("/app", "/app/store"))
	assert.Equal(t, "rel", relativeTo("/app", "rel"))
}
