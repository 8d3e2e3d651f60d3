package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func source(shortPath string) Source {
	return Source{Origin: &File{FullPath: Path("/app/" + shortPath), ShortPath: Path(shortPath)}}
}

func TestFolder_Add(t *testing.T) {
	root := NewFolder("")
	root.Add(source("main.go"))
	root.Add(source("store/sql/query.go"))
	root.Add(source("store/store.go"))
	root.Add(source("api/api.go"))
	root.Add(Source{})

	assert.Equal(t, 4, root.Count())
	require.Len(t, root.Sources, 1)
	require.Len(t, root.Children, 2)

	assert.Equal(t, Path("api"), root.Children[0].Path)
	assert.Equal(t, Path("store"), root.Children[1].Path)

	store := root.Children[1]
	require.Len(t, store.Sources, 1)
	require.Len(t, store.Children, 1)
	assert.Equal(t, Path("store/sql"), store.Children[0].Path)

	shortPaths := make([]Path, 0)
	for _, s := range root.AllSources() {
		shortPaths = append(shortPaths, s.Origin.ShortPath)
	}

	assert.Equal(t, []Path{"main.go", "api/api.go", "store/store.go", "store/sql/query.go"}, shortPaths)
}

func TestFolder_NilCount(t *testing.T) {
	var folder *Folder

	assert.Equal(t, 0, folder.Count())
	assert.Empty(t, folder.AllSources())
}

func TestAnalysisResult(t *testing.T) {
	project := AnalysisResult{
		ProjectFilePath: "/app/go.mod",
		Properties:      map[string]string{PropertyModulePath: "example.com/app", PropertyTargetPath: ""},
		Toolchain:       ToolchainGOPATH,
	}

	modulePath, ok := project.Property(PropertyModulePath)
	assert.True(t, ok)
	assert.Equal(t, "example.com/app", modulePath)

	_, ok = project.Property(PropertyTargetPath)
	assert.False(t, ok)

	targetPath, ok := project.LookupProperty(PropertyTargetPath)
	assert.True(t, ok)
	assert.Empty(t, targetPath)

	_, ok = project.LookupProperty(PropertyGoVersion)
	assert.False(t, ok)

	assert.Equal(t, Path("/app"), project.Dir())
	assert.True(t, project.IsLegacyToolchain())
	assert.Equal(t, "gopath", project.Toolchain.String())
	assert.Equal(t, Path("/app/store/store.test"), TestBinaryPath("/app/store"))
}
