package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/module"

	m "gooze.dev/pkg/preflight/internal/model"
)

var (
	// ErrModuleNotCached is returned when a required module is missing from the module cache.
	ErrModuleNotCached = errors.New("module not found in module cache")
	// ErrInvalidReference is returned for identifiers that are neither module versions nor paths.
	ErrInvalidReference = errors.New("invalid reference identifier")
)

// ReferenceLoader turns a raw reference identifier into a usable reference.
type ReferenceLoader interface {
	Load(ctx context.Context, identifier string) (m.Reference, error)
}

// ModuleCacheLoader locates `path@version` references in the Go module cache
// and filesystem references (local replacements) on disk.
type ModuleCacheLoader struct {
	fs       SourceFSAdapter
	modCache string
}

// NewModuleCacheLoader constructs a loader rooted at the module cache of the
// current environment.
func NewModuleCacheLoader(fs SourceFSAdapter) *ModuleCacheLoader {
	return &ModuleCacheLoader{fs: fs, modCache: ModuleCacheDir()}
}

// NewModuleCacheLoaderAt constructs a loader rooted at modCache.
func NewModuleCacheLoaderAt(fs SourceFSAdapter, modCache string) *ModuleCacheLoader {
	return &ModuleCacheLoader{fs: fs, modCache: modCache}
}

// ModuleCacheDir returns GOMODCACHE, falling back to GOPATH/pkg/mod and ~/go/pkg/mod.
func ModuleCacheDir() string {
	if dir := os.Getenv("GOMODCACHE"); dir != "" {
		return dir
	}

	gopath := firstGOPATH()
	if gopath == "" {
		return ""
	}

	return filepath.Join(gopath, "pkg", "mod")
}

func firstGOPATH() string {
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		return filepath.SplitList(gopath)[0]
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, "go")
}

// Load resolves identifier to a directory on disk.
func (l *ModuleCacheLoader) Load(ctx context.Context, identifier string) (m.Reference, error) {
	if err := ctx.Err(); err != nil {
		return m.Reference{}, err
	}

	if isFilesystemReference(identifier) {
		return l.loadDirectory(ctx, identifier)
	}

	modulePath, version, ok := strings.Cut(identifier, "@")
	if !ok || modulePath == "" || version == "" {
		return m.Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, identifier)
	}

	if err := module.Check(modulePath, version); err != nil {
		return m.Reference{}, fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}

	escapedPath, err := module.EscapePath(modulePath)
	if err != nil {
		return m.Reference{}, fmt.Errorf("escape module path: %w", err)
	}

	escapedVersion, err := module.EscapeVersion(version)
	if err != nil {
		return m.Reference{}, fmt.Errorf("escape version: %w", err)
	}

	dir := l.fs.JoinPath(ctx, l.modCache, escapedPath+"@"+escapedVersion)

	info, err := l.fs.FileInfo(ctx, dir)
	if err != nil || !info.IsDir() {
		return m.Reference{}, fmt.Errorf("%w: %s@%s", ErrModuleNotCached, modulePath, version)
	}

	return m.Reference{
		Identifier: identifier,
		Path:       modulePath,
		Version:    version,
		Dir:        dir,
	}, nil
}

func (l *ModuleCacheLoader) loadDirectory(ctx context.Context, identifier string) (m.Reference, error) {
	info, err := l.fs.FileInfo(ctx, m.Path(identifier))
	if err != nil {
		return m.Reference{}, fmt.Errorf("stat %s: %w", identifier, err)
	}

	if !info.IsDir() {
		return m.Reference{}, fmt.Errorf("%w: %s is not a directory", ErrInvalidReference, identifier)
	}

	return m.Reference{
		Identifier: identifier,
		Path:       filepath.Base(identifier),
		Dir:        m.Path(identifier),
	}, nil
}

// isFilesystemReference mirrors the go.mod rule for replacement targets:
// a path beginning with ./ ../ or / is a directory, anything else is a module.
func isFilesystemReference(identifier string) bool {
	return filepath.IsAbs(identifier) ||
		strings.HasPrefix(identifier, "./") ||
		strings.HasPrefix(identifier, "../") ||
		identifier == "." || identifier == ".."
}
