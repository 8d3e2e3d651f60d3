package model

import (
	"path/filepath"
)

// Property keys carried in AnalysisResult.Properties.
const (
	PropertyTargetPath = "TargetPath"
	PropertyModulePath = "ModulePath"
	PropertyGoVersion  = "GoVersion"
	PropertyDir        = "Dir"
	PropertyImportPath = "ImportPath"
)

// Toolchain classifies how a project has to be built.
type Toolchain int

const (
	// ToolchainModules is a module-aware project with a go.mod file.
	ToolchainModules Toolchain = iota
	// ToolchainGOPATH is a legacy project living under GOPATH/src without go.mod.
	ToolchainGOPATH
)

func (t Toolchain) String() string {
	switch t {
	case ToolchainModules:
		return "modules"
	case ToolchainGOPATH:
		return "gopath"
	default:
		return "unknown"
	}
}

// AnalysisResult describes one analyzed project (the module under test or a test package).
type AnalysisResult struct {
	ProjectFilePath Path
	Properties      map[string]string
	References      []string
	Toolchain       Toolchain
}

// IsLegacyToolchain reports whether the project must be built in GOPATH mode.
func (a AnalysisResult) IsLegacyToolchain() bool {
	return a.Toolchain == ToolchainGOPATH
}

// Property returns the property named key and whether it is set.
func (a AnalysisResult) Property(key string) (string, bool) {
	value, ok := a.Properties[key]
	if !ok || value == "" {
		return "", false
	}

	return value, true
}

// LookupProperty returns the property named key and whether it is present,
// even when its value is empty.
func (a AnalysisResult) LookupProperty(key string) (string, bool) {
	value, ok := a.Properties[key]
	return value, ok
}

// Dir returns the project directory, falling back to the directory of the project file.
func (a AnalysisResult) Dir() Path {
	if dir, ok := a.Property(PropertyDir); ok {
		return Path(dir)
	}

	return Path(filepath.Dir(string(a.ProjectFilePath)))
}

// ResolvedProjectModel is the output of project resolution.
type ResolvedProjectModel struct {
	ProjectUnderTest AnalysisResult
	TestProjects     []AnalysisResult
	Contents         *Folder
}

// Reference is a compilation reference located on disk.
type Reference struct {
	Identifier string
	Path       string
	Version    string
	Dir        Path
}

// TestBinaryPath returns where the compiled test binary of the package in dir is written.
func TestBinaryPath(dir Path) Path {
	base := filepath.Base(string(dir))
	return Path(filepath.Join(string(dir), base+".test"))
}
