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

func useMetadataReader(t *testing.T) *adaptermocks.MockBinaryMetadataReader {
	t.Helper()

	mockReader := adaptermocks.NewMockBinaryMetadataReader(t)

	original := metadataReader
	metadataReader = mockReader
	t.Cleanup(func() { metadataReader = original })

	return mockReader
}

func TestInspectCmd_PrintsIdentity(t *testing.T) {
	mockReader := useMetadataReader(t)
	module := adaptermocks.NewMockBinaryModule(t)

	mockReader.EXPECT().Open(mock.Anything, m.Path("bin/app")).Return(module, nil)
	module.EXPECT().FileName().Return("app")
	module.EXPECT().Attributes().Return([]m.BinaryAttribute{
		m.NewMetadataAttribute(m.MetadataKeyRepositoryURL, "https://github.com/acme/app"),
		m.NewInformationalVersionAttribute("v1.4.0"),
	}, nil)
	module.EXPECT().Close().Return(nil)

	cmd := newRootCmd()
	cmd.AddCommand(newInspectCmd())

	stdout, _, err := executeCommand(t, cmd, "inspect", "bin/app")
	require.NoError(t, err)

	assert.Contains(t, stdout, "project name\t github.com/acme/app")
	assert.Contains(t, stdout, "project version\t v1.4.0")
}

func TestInspectCmd_MissingAttributes(t *testing.T) {
	mockReader := useMetadataReader(t)
	module := adaptermocks.NewMockBinaryModule(t)

	mockReader.EXPECT().Open(mock.Anything, m.Path("bin/app")).Return(module, nil)
	module.EXPECT().FileName().Return("app")
	module.EXPECT().Attributes().Return(nil, nil)
	module.EXPECT().Close().Return(nil)

	cmd := newRootCmd()
	cmd.AddCommand(newInspectCmd())

	stdout, _, err := executeCommand(t, cmd, "inspect", "bin/app")
	require.NoError(t, err)

	assert.Contains(t, stdout, "project name\t (Failed to retrieve the RepositoryUrl")
	assert.Contains(t, stdout, "project version\t (Failed to retrieve the AssemblyInformationalVersionAttribute of app)")
}

func TestInspectCmd_OpenFailure(t *testing.T) {
	mockReader := useMetadataReader(t)
	mockReader.EXPECT().Open(mock.Anything, m.Path("missing")).Return(nil, errors.New("no such file"))

	cmd := newRootCmd()
	cmd.AddCommand(newInspectCmd())

	_, _, err := executeCommand(t, cmd, "inspect", "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open missing: no such file")
}

func TestInspectCmd_RequiresBinary(t *testing.T) {
	useMetadataReader(t)

	cmd := newRootCmd()
	cmd.AddCommand(newInspectCmd())

	_, _, err := executeCommand(t, cmd, "inspect")
	require.Error(t, err)
}
