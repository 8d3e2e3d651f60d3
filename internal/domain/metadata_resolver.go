package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"gooze.dev/pkg/preflight/internal/adapter"
	m "gooze.dev/pkg/preflight/internal/model"
)

const schemeSeparator = "://"

// MetadataResolver fills in the dashboard identity (project name and
// version) from the compiled binary of the project under test.
type MetadataResolver interface {
	// Resolve returns cfg enriched with the missing name and version. cfg
	// itself is never modified.
	Resolve(ctx context.Context, cfg m.RunConfiguration, project m.ResolvedProjectModel) (m.RunConfiguration, error)
}

type metadataResolver struct {
	reader adapter.BinaryMetadataReader
}

// NewMetadataResolver constructs a MetadataResolver that reads binaries through reader.
func NewMetadataResolver(reader adapter.BinaryMetadataReader) MetadataResolver {
	return &metadataResolver{reader: reader}
}

func (r *metadataResolver) Resolve(ctx context.Context, cfg m.RunConfiguration, project m.ResolvedProjectModel) (m.RunConfiguration, error) {
	if !cfg.RequiresDashboardIdentity() {
		return cfg, nil
	}

	missingName := cfg.ProjectName == ""
	missingVersion := cfg.ProjectVersion == ""

	if !missingName && !missingVersion {
		return cfg, nil
	}

	subject := identitySubject(missingName, missingVersion)
	lowerSubject := strings.ToLower(subject)
	projectFilePath := project.ProjectUnderTest.ProjectFilePath
	details := remediationHint(lowerSubject, projectFilePath)

	targetPath, ok := project.ProjectUnderTest.LookupProperty(m.PropertyTargetPath)
	if !ok {
		return cfg, m.NewInputError(
			fmt.Sprintf("Can't read %s because the %s property was not found in %s", lowerSubject, m.PropertyTargetPath, projectFilePath),
			details,
		)
	}

	slog.Debug(subject+" missing for the dashboard reporter, reading it from the compiled binary. This requires the module path and VCS information to be stamped into the build",
		"target", targetPath,
		"project", projectFilePath,
	)

	enriched, err := r.readIdentity(ctx, cfg, m.Path(targetPath), missingName, missingVersion, details)
	if err != nil {
		if m.IsInputError(err) {
			return cfg, err
		}

		return cfg, m.NewInputError(
			fmt.Sprintf("Failed to read %s from %s because of error %s", lowerSubject, targetPath, err.Error()),
			details,
		)
	}

	return enriched, nil
}

func (r *metadataResolver) readIdentity(ctx context.Context, cfg m.RunConfiguration, targetPath m.Path, missingName, missingVersion bool, details string) (m.RunConfiguration, error) {
	module, err := r.reader.Open(ctx, targetPath)
	if err != nil {
		return cfg, err
	}

	defer func() {
		if closeErr := module.Close(); closeErr != nil {
			slog.Warn("Failed to close binary", "path", targetPath, "error", closeErr)
		}
	}()

	attributes, err := module.Attributes()
	if err != nil {
		return cfg, err
	}

	targetName := filepath.Base(string(targetPath))

	if missingName {
		name, err := ReadProjectName(attributes, module.FileName(), details)
		if err != nil {
			return cfg, err
		}

		cfg.ProjectName = name

		slog.Debug("Using project name for the dashboard reporter, read from the RepositoryUrl metadata attribute",
			"projectName", name,
			"target", targetName,
		)
	}

	if missingVersion {
		version, err := ReadProjectVersion(attributes, module.FileName(), details)
		if err != nil {
			return cfg, err
		}

		cfg.ProjectVersion = version

		slog.Debug("Using project version for the dashboard reporter, read from the informational version attribute",
			"projectVersion", version,
			"target", targetName,
		)
	}

	return cfg, nil
}

// FindAttribute returns the first attribute declared as typeName with exactly
// arity constructor arguments that satisfies match. A nil match accepts any.
func FindAttribute(attributes []m.BinaryAttribute, typeName string, arity int, match func(args []any) bool) (m.BinaryAttribute, bool) {
	for _, attribute := range attributes {
		if attribute.TypeName != typeName || len(attribute.Arguments) != arity {
			continue
		}

		if match == nil || match(attribute.Arguments) {
			return attribute, true
		}
	}

	return m.BinaryAttribute{}, false
}

// ReadProjectName derives the project name from the RepositoryUrl metadata
// attribute by stripping the URL scheme.
func ReadProjectName(attributes []m.BinaryAttribute, fileName, details string) (string, error) {
	attribute, ok := FindAttribute(attributes, m.AttributeAssemblyMetadata, 2, func(args []any) bool {
		key, isString := args[0].(string)
		return isString && key == m.MetadataKeyRepositoryURL
	})

	repositoryURL, isString := "", false
	if ok {
		repositoryURL, isString = attribute.Arguments[1].(string)
	}

	if !isString {
		return "", m.NewInputError(
			fmt.Sprintf("Failed to retrieve the %s from the %s of %s", m.MetadataKeyRepositoryURL, m.AttributeAssemblyMetadata, fileName),
			details,
		)
	}

	index := strings.Index(repositoryURL, schemeSeparator)
	if index < 0 {
		return "", m.NewInputError(
			fmt.Sprintf("Failed to compute the project name from the repository URL (%s) because it doesn't contain a scheme (%s)", repositoryURL, schemeSeparator),
			details,
		)
	}

	return repositoryURL[index+len(schemeSeparator):], nil
}

// ReadProjectVersion reads the informational version attribute.
func ReadProjectVersion(attributes []m.BinaryAttribute, fileName, details string) (string, error) {
	attribute, ok := FindAttribute(attributes, m.AttributeInformationalVersion, 1, nil)

	version, isString := "", false
	if ok {
		version, isString = attribute.Arguments[0].(string)
	}

	if !isString {
		return "", m.NewInputError(
			fmt.Sprintf("Failed to retrieve the %s of %s", m.AttributeInformationalVersion, fileName),
			details,
		)
	}

	return version, nil
}

func identitySubject(missingName, missingVersion bool) string {
	switch {
	case missingName && missingVersion:
		return "Project name and project version"
	case missingName:
		return "Project name"
	default:
		return "Project version"
	}
}

func remediationHint(subject string, projectFilePath m.Path) string {
	return fmt.Sprintf(
		"To solve this issue, either specify the %s in the preflight configuration (project.name, project.version) "+
			"or build %s from a host-qualified module path with VCS stamping enabled (-buildvcs=true) so the binary carries repository metadata",
		subject, projectFilePath,
	)
}
