package adapter_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/preflight/internal/adapter"
	adaptermocks "gooze.dev/pkg/preflight/internal/adapter/mocks"
	m "gooze.dev/pkg/preflight/internal/model"
)

func TestGoBuilder_Build(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "store")
	workFile := filepath.Join(dir, "go.work")

	tests := []struct {
		name      string
		legacy    bool
		solution  m.Path
		tool      string
		wantTool  string
		wantEnv   []string
		projectFP m.Path
	}{
		{
			name:      "module package",
			projectFP: m.Path(pkgDir),
			wantTool:  "go",
		},
		{
			name:      "legacy toolchain with custom go",
			legacy:    true,
			tool:      "/opt/go1.15/bin/go",
			projectFP: m.Path(pkgDir),
			wantTool:  "/opt/go1.15/bin/go",
			wantEnv:   []string{"GO111MODULE=off"},
		},
		{
			name:      "workspace",
			solution:  m.Path(workFile),
			projectFP: m.Path(filepath.Join(pkgDir, "go.mod")),
			wantTool:  "go",
			wantEnv:   []string{"GOWORK=" + workFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := adaptermocks.NewMockCommandRunner(t)
			builder := adapter.NewGoBuilder(runner)

			runner.EXPECT().Run(mock.Anything, mock.Anything).
				Run(func(_ context.Context, req adapter.CommandRequest) {
					assert.Equal(t, pkgDir, req.Dir)
					assert.Equal(t, tt.wantTool, req.Name)
					assert.Equal(t, []string{"test", "-c", "-o", filepath.Join(pkgDir, "store.test"), "."}, req.Args)
					assert.Equal(t, tt.wantEnv, req.Env)
				}).
				Return(adapter.CommandResult{}, nil).Once()

			err := builder.Build(context.Background(), tt.legacy, tt.projectFP, tt.solution, tt.tool)
			require.NoError(t, err)
		})
	}
}

func TestGoBuilder_BuildFailureIsInputError(t *testing.T) {
	runner := adaptermocks.NewMockCommandRunner(t)
	builder := adapter.NewGoBuilder(runner)

	runner.EXPECT().Run(mock.Anything, mock.Anything).Return(adapter.CommandResult{
		Stderr:   "./store.go:12:2: undefined: missing\n",
		ExitCode: 1,
	}, nil).Once()

	err := builder.Build(context.Background(), false, "/src/app/store", "", "")

	var inputErr *m.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "Initial build of the targeted project /src/app/store failed. Please make sure it builds before running mutation tests.", inputErr.Message)
	assert.Equal(t, "./store.go:12:2: undefined: missing", inputErr.Details)
}

func TestGoBuilder_RunnerErrorIsWrapped(t *testing.T) {
	runner := adaptermocks.NewMockCommandRunner(t)
	builder := adapter.NewGoBuilder(runner)
	runErr := errors.New("exec: \"go\": executable file not found in $PATH")

	runner.EXPECT().Run(mock.Anything, mock.Anything).Return(adapter.CommandResult{ExitCode: -1}, runErr).Once()

	err := builder.Build(context.Background(), false, "/src/app", "", "")

	require.ErrorIs(t, err, runErr)
	assert.False(t, m.IsInputError(err))
}
