package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"

	m "gooze.dev/pkg/preflight/internal/model"
)

const goModFileName = "go.mod"

// ProjectResolver turns a run configuration into a resolved project model.
type ProjectResolver interface {
	Resolve(ctx context.Context, cfg m.RunConfiguration) (m.ResolvedProjectModel, error)
}

// GoProjectResolver resolves Go modules (and legacy GOPATH projects) from disk.
type GoProjectResolver struct {
	fs      SourceFSAdapter
	goFiles GoFileAdapter
	gopaths []string
}

// NewGoProjectResolver constructs a GoProjectResolver.
func NewGoProjectResolver(fs SourceFSAdapter, goFiles GoFileAdapter) *GoProjectResolver {
	return &GoProjectResolver{
		fs:      fs,
		goFiles: goFiles,
		gopaths: gopathEntries(),
	}
}

type moduleInfo struct {
	root       m.Path
	goMod      m.Path
	path       string
	goVersion  string
	references []string
	toolchain  m.Toolchain
}

type scanResult struct {
	contents *m.Folder
	testDirs []m.Path
}

// Resolve locates the module containing cfg.ProjectPath, discovers its test
// packages and builds the in-memory content tree.
func (r *GoProjectResolver) Resolve(ctx context.Context, cfg m.RunConfiguration) (m.ResolvedProjectModel, error) {
	start := string(cfg.ProjectPath)
	if strings.TrimSpace(start) == "" {
		start = "."
	}

	absStart, err := filepath.Abs(start)
	if err != nil {
		return m.ResolvedProjectModel{}, fmt.Errorf("resolve project path %s: %w", start, err)
	}

	if _, err := r.fs.FileInfo(ctx, m.Path(absStart)); err != nil {
		return m.ResolvedProjectModel{}, m.NewInputError(
			fmt.Sprintf("The project path %s could not be found", absStart),
			err.Error(),
		)
	}

	mod, err := r.locateModule(ctx, m.Path(absStart))
	if err != nil {
		return m.ResolvedProjectModel{}, err
	}

	slog.Debug("Located project", "root", mod.root, "module", mod.path, "toolchain", mod.toolchain)

	scan, err := r.scan(ctx, mod.root)
	if err != nil {
		return m.ResolvedProjectModel{}, fmt.Errorf("scan %s: %w", mod.root, err)
	}

	testDirs, err := r.testProjectDirs(ctx, cfg, mod.root, scan.testDirs)
	if err != nil {
		return m.ResolvedProjectModel{}, err
	}

	if len(testDirs) == 0 {
		return m.ResolvedProjectModel{}, m.NewInputError(
			fmt.Sprintf("No test projects found in %s", mod.root),
			"Mutation testing needs at least one package with _test.go files.",
		)
	}

	testProjects := make([]m.AnalysisResult, 0, len(testDirs))
	for _, dir := range testDirs {
		testProjects = append(testProjects, r.testProject(ctx, mod, dir))
	}

	slog.Info("Resolved project", "module", mod.path, "testProjects", len(testProjects), "sources", scan.contents.Count())

	return m.ResolvedProjectModel{
		ProjectUnderTest: r.projectUnderTest(cfg, mod, testDirs),
		TestProjects:     testProjects,
		Contents:         scan.contents,
	}, nil
}

func (r *GoProjectResolver) locateModule(ctx context.Context, start m.Path) (moduleInfo, error) {
	root, err := r.fs.FindProjectRoot(ctx, start)
	if err == nil {
		return r.readModule(ctx, root)
	}

	if !errors.Is(err, ErrProjectRootNotFound) {
		return moduleInfo{}, fmt.Errorf("find project root: %w", err)
	}

	dir := start
	if info, statErr := r.fs.FileInfo(ctx, start); statErr == nil && !info.IsDir() {
		dir = m.Path(filepath.Dir(string(start)))
	}

	importPath, ok := r.gopathImportPath(dir)
	if !ok {
		return moduleInfo{}, m.NewInputError(
			fmt.Sprintf("No go.mod found in %s or any parent directory, and it is not inside GOPATH", start),
			"Run from inside a Go module or point the project path at one.",
		)
	}

	slog.Warn("No go.mod found, using the legacy GOPATH toolchain", "dir", dir, "importPath", importPath)

	return moduleInfo{
		root:      dir,
		goMod:     dir,
		path:      importPath,
		toolchain: m.ToolchainGOPATH,
	}, nil
}

func (r *GoProjectResolver) readModule(ctx context.Context, root m.Path) (moduleInfo, error) {
	goModPath := r.fs.JoinPath(ctx, string(root), goModFileName)

	content, err := r.fs.ReadFile(ctx, goModPath)
	if err != nil {
		return moduleInfo{}, fmt.Errorf("read %s: %w", goModPath, err)
	}

	file, err := modfile.Parse(string(goModPath), content, nil)
	if err != nil {
		return moduleInfo{}, m.NewInputError(fmt.Sprintf("Failed to parse %s", goModPath), err.Error())
	}

	if file.Module == nil || file.Module.Mod.Path == "" {
		return moduleInfo{}, m.NewInputError(fmt.Sprintf("%s does not declare a module path", goModPath))
	}

	info := moduleInfo{
		root:       root,
		goMod:      goModPath,
		path:       file.Module.Mod.Path,
		references: moduleReferences(root, file),
		toolchain:  m.ToolchainModules,
	}

	if file.Go != nil {
		info.goVersion = file.Go.Version
	}

	return info, nil
}

// moduleReferences lists required modules as path@version identifiers,
// applying replace directives. Local replacements become directory paths.
func moduleReferences(root m.Path, file *modfile.File) []string {
	references := make([]string, 0, len(file.Require))

	for _, req := range file.Require {
		identifier := req.Mod.Path + "@" + req.Mod.Version

		if rep := findReplace(file.Replace, req.Mod.Path, req.Mod.Version); rep != nil {
			if rep.New.Version == "" {
				dir := rep.New.Path
				if !filepath.IsAbs(dir) {
					dir = filepath.Join(string(root), dir)
				}

				identifier = dir
			} else {
				identifier = rep.New.Path + "@" + rep.New.Version
			}
		}

		references = append(references, identifier)
	}

	return references
}

func findReplace(replaces []*modfile.Replace, modulePath, version string) *modfile.Replace {
	var wildcard *modfile.Replace

	for _, rep := range replaces {
		if rep.Old.Path != modulePath {
			continue
		}

		if rep.Old.Version == version {
			return rep
		}

		if rep.Old.Version == "" {
			wildcard = rep
		}
	}

	return wildcard
}

func (r *GoProjectResolver) scan(ctx context.Context, root m.Path) (scanResult, error) {
	result := scanResult{contents: m.NewFolder(".")}
	testDirs := map[m.Path]struct{}{}

	err := r.fs.Walk(ctx, root, true, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if r.skipDir(ctx, root, m.Path(filePath), info.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(filePath) != ".go" {
			return nil
		}

		if strings.HasSuffix(filePath, "_test.go") {
			testDirs[m.Path(filepath.Dir(filePath))] = struct{}{}
			return nil
		}

		return r.addSource(ctx, root, m.Path(filePath), result.contents)
	})
	if err != nil {
		return scanResult{}, err
	}

	for dir := range testDirs {
		result.testDirs = append(result.testDirs, dir)
	}

	sort.Slice(result.testDirs, func(i, j int) bool {
		return result.testDirs[i] < result.testDirs[j]
	})

	return result, nil
}

func (r *GoProjectResolver) skipDir(ctx context.Context, root, dir m.Path, name string) bool {
	if dir == root {
		return false
	}

	if name == "vendor" || name == "testdata" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}

	// Nested modules are separate projects.
	if _, err := r.fs.FileInfo(ctx, r.fs.JoinPath(ctx, string(dir), goModFileName)); err == nil {
		slog.Debug("Skipping nested module", "dir", dir)
		return true
	}

	return false
}

func (r *GoProjectResolver) addSource(ctx context.Context, root, filePath m.Path, contents *m.Folder) error {
	content, err := r.fs.ReadFile(ctx, filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}

	if r.goFiles.IsBuildIgnored(ctx, string(filePath), content) {
		return nil
	}

	pkg, err := r.goFiles.PackageName(ctx, string(filePath), content)
	if err != nil {
		slog.Warn("Skipping unparsable source file", "path", filePath, "error", err)
		return nil
	}

	hash, err := r.fs.HashFile(ctx, filePath)
	if err != nil {
		return fmt.Errorf("hash %s: %w", filePath, err)
	}

	shortPath, err := r.fs.RelPath(ctx, root, filePath)
	if err != nil {
		return fmt.Errorf("relative path of %s: %w", filePath, err)
	}

	source := m.Source{
		Origin:  &m.File{FullPath: filePath, ShortPath: shortPath, Hash: hash},
		Package: pkg,
	}

	testPath, err := r.fs.DetectTestFile(ctx, filePath)
	if err != nil {
		return fmt.Errorf("detect test file for %s: %w", filePath, err)
	}

	if testPath != "" {
		testShort, _ := r.fs.RelPath(ctx, root, testPath)
		source.Test = &m.File{FullPath: testPath, ShortPath: testShort}
	}

	contents.Add(source)

	return nil
}

func (r *GoProjectResolver) testProjectDirs(ctx context.Context, cfg m.RunConfiguration, root m.Path, discovered []m.Path) ([]m.Path, error) {
	if len(cfg.TestProjects) == 0 {
		return discovered, nil
	}

	dirs := make([]m.Path, 0, len(cfg.TestProjects))

	for _, project := range cfg.TestProjects {
		dir := string(project)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(string(root), dir)
		}

		info, err := r.fs.FileInfo(ctx, m.Path(dir))
		if err != nil || !info.IsDir() {
			return nil, m.NewInputError(
				fmt.Sprintf("The test project %s could not be found", project),
				fmt.Sprintf("Test projects are package directories relative to %s.", root),
			)
		}

		dirs = append(dirs, m.Path(filepath.Clean(dir)))
	}

	return dirs, nil
}

func (r *GoProjectResolver) testProject(ctx context.Context, mod moduleInfo, dir m.Path) m.AnalysisResult {
	return m.AnalysisResult{
		ProjectFilePath: dir,
		Properties: map[string]string{
			m.PropertyDir:        string(dir),
			m.PropertyImportPath: r.importPath(ctx, mod, dir),
			m.PropertyModulePath: mod.path,
			m.PropertyTargetPath: string(m.TestBinaryPath(dir)),
		},
		References: mod.references,
		Toolchain:  mod.toolchain,
	}
}

func (r *GoProjectResolver) projectUnderTest(cfg m.RunConfiguration, mod moduleInfo, testDirs []m.Path) m.AnalysisResult {
	properties := map[string]string{
		m.PropertyDir:        string(mod.root),
		m.PropertyModulePath: mod.path,
		m.PropertyImportPath: mod.path,
	}

	if mod.goVersion != "" {
		properties[m.PropertyGoVersion] = mod.goVersion
	}

	switch {
	case cfg.TargetPath != "":
		target, err := filepath.Abs(string(cfg.TargetPath))
		if err != nil {
			target = string(cfg.TargetPath)
		}

		properties[m.PropertyTargetPath] = target
	case containsPath(testDirs, mod.root):
		properties[m.PropertyTargetPath] = string(m.TestBinaryPath(mod.root))
	}

	return m.AnalysisResult{
		ProjectFilePath: mod.goMod,
		Properties:      properties,
		References:      mod.references,
		Toolchain:       mod.toolchain,
	}
}

func (r *GoProjectResolver) importPath(ctx context.Context, mod moduleInfo, dir m.Path) string {
	rel, err := r.fs.RelPath(ctx, mod.root, dir)
	if err != nil || rel == "." {
		return mod.path
	}

	return path.Join(mod.path, filepath.ToSlash(string(rel)))
}

func (r *GoProjectResolver) gopathImportPath(dir m.Path) (string, bool) {
	for _, gopath := range r.gopaths {
		src := filepath.Join(gopath, "src")

		rel, err := filepath.Rel(src, string(dir))
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}

		return filepath.ToSlash(rel), true
	}

	return "", false
}

func gopathEntries() []string {
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		return filepath.SplitList(gopath)
	}

	if gopath := firstGOPATH(); gopath != "" {
		return []string{gopath}
	}

	return nil
}

func containsPath(paths []m.Path, target m.Path) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
