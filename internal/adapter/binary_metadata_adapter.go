package adapter

import (
	"context"
	"debug/buildinfo"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	m "gooze.dev/pkg/preflight/internal/model"
)

const (
	develVersion      = "(devel)"
	testBinarySuffix  = ".test"
	vcsRevisionKey    = "vcs.revision"
	httpsSchemePrefix = "https://"
)

// BinaryModule is an open, read-only view of a compiled binary's metadata.
// It must be closed after use.
type BinaryModule interface {
	FileName() string
	Attributes() ([]m.BinaryAttribute, error)
	Close() error
}

// BinaryMetadataReader opens compiled binaries for metadata inspection.
type BinaryMetadataReader interface {
	Open(ctx context.Context, path m.Path) (BinaryModule, error)
}

// BuildInfoReader reads the build information the Go linker embeds in every
// module-aware binary and exposes it as attributes.
type BuildInfoReader struct{}

// NewBuildInfoReader constructs a BuildInfoReader.
func NewBuildInfoReader() *BuildInfoReader {
	return &BuildInfoReader{}
}

// Open opens the binary at path and parses its build information.
func (r *BuildInfoReader) Open(ctx context.Context, path m.Path) (BinaryModule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path is the build output of the project under test
	file, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	info, err := buildinfo.Read(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("read build info: %w", err)
	}

	slog.Debug("Opened binary metadata", "path", path, "module", info.Main.Path, "goVersion", info.GoVersion)

	return &buildInfoModule{
		file:       file,
		fileName:   filepath.Base(string(path)),
		attributes: AttributesFromBuildInfo(info),
	}, nil
}

type buildInfoModule struct {
	file       *os.File
	fileName   string
	attributes []m.BinaryAttribute
}

func (b *buildInfoModule) FileName() string {
	return b.fileName
}

func (b *buildInfoModule) Attributes() ([]m.BinaryAttribute, error) {
	if b.file == nil {
		return nil, os.ErrClosed
	}

	return b.attributes, nil
}

func (b *buildInfoModule) Close() error {
	if b.file == nil {
		return nil
	}

	err := b.file.Close()
	b.file = nil

	return err
}

// AttributesFromBuildInfo maps Go build information onto metadata attributes:
//   - every build setting k=v becomes AssemblyMetadataAttribute(k, v)
//   - a host-qualified module path becomes AssemblyMetadataAttribute("RepositoryUrl", "https://<path>")
//   - the module version, or the VCS revision for development builds, becomes
//     AssemblyInformationalVersionAttribute(version)
func AttributesFromBuildInfo(info *debug.BuildInfo) []m.BinaryAttribute {
	if info == nil {
		return nil
	}

	attributes := make([]m.BinaryAttribute, 0, len(info.Settings)+2)
	revision := ""

	for _, setting := range info.Settings {
		attributes = append(attributes, m.NewMetadataAttribute(setting.Key, setting.Value))

		if setting.Key == vcsRevisionKey {
			revision = setting.Value
		}
	}

	if modulePath := mainModulePath(info); isHostQualified(modulePath) {
		attributes = append(attributes, m.NewMetadataAttribute(m.MetadataKeyRepositoryURL, httpsSchemePrefix+modulePath))
	}

	switch version := info.Main.Version; {
	case version != "" && version != develVersion:
		attributes = append(attributes, m.NewInformationalVersionAttribute(version))
	case revision != "":
		attributes = append(attributes, m.NewInformationalVersionAttribute(revision))
	}

	return attributes
}

// mainModulePath returns the main module path. Test binaries may only carry
// the package path, suffixed with ".test".
func mainModulePath(info *debug.BuildInfo) string {
	if info.Main.Path != "" {
		return info.Main.Path
	}

	return strings.TrimSuffix(info.Path, testBinarySuffix)
}

func isHostQualified(modulePath string) bool {
	if modulePath == "" || modulePath == "command-line-arguments" {
		return false
	}

	host, _, _ := strings.Cut(modulePath, "/")

	return strings.Contains(host, ".")
}
