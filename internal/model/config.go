package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Reporter names an output reporter requested by the user.
type Reporter string

// Supported reporters.
const (
	ReporterAll       Reporter = "All"
	ReporterDashboard Reporter = "Dashboard"
	ReporterProgress  Reporter = "Progress"
	ReporterClearText Reporter = "ClearText"
	ReporterJSON      Reporter = "Json"
	ReporterHTML      Reporter = "Html"
	ReporterMarkdown  Reporter = "Markdown"
)

// BaselineProvider names where baseline reports are stored.
type BaselineProvider string

// Supported baseline providers.
const (
	BaselineProviderDisk      BaselineProvider = "Disk"
	BaselineProviderDashboard BaselineProvider = "Dashboard"
	BaselineProviderAzure     BaselineProvider = "AzureFileStorage"
)

// ReferencePolicy controls what happens when a single reference cannot be loaded.
type ReferencePolicy string

const (
	// ReferencePolicySkip logs the failure and continues with the remaining references.
	ReferencePolicySkip ReferencePolicy = "skip"
	// ReferencePolicyFail aborts initialization on the first failure.
	ReferencePolicyFail ReferencePolicy = "fail"
)

// DefaultAdditionalTimeout is the margin added to baseline-derived timeouts.
const DefaultAdditionalTimeout = 5 * time.Second

// RunConfiguration holds the settings of a single invocation.
//
// The pipeline treats it as read-only: steps that fill in missing values
// return an enriched copy instead of mutating the caller's value.
type RunConfiguration struct {
	ProjectName    string
	ProjectVersion string

	ProjectPath  Path
	TestProjects []Path
	TargetPath   Path

	SkipBuild     bool
	SolutionPath  Path   // go.work file applied to builds
	BuildToolPath string // replaces the go binary when set

	Reporters        []Reporter       `validate:"dive,oneof=All Dashboard Progress ClearText Json Html Markdown"`
	WithBaseline     bool
	BaselineProvider BaselineProvider `validate:"omitempty,oneof=Disk Dashboard AzureFileStorage"`

	Concurrency       int             `validate:"gte=0,lte=256"`
	AdditionalTimeout time.Duration   `validate:"gte=0"`
	ReferencePolicy   ReferencePolicy `validate:"omitempty,oneof=skip fail"`
}

var configValidate = validator.New()

// Validate checks the configuration for values no pipeline step can work with.
func (c RunConfiguration) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validate configuration: %w", err)
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		problems = append(problems, fmt.Sprintf("%s: invalid value %q (%s)", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag()))
	}

	return NewInputError("The run configuration is invalid", strings.Join(problems, "\n"))
}

// HasReporter reports whether reporter was requested.
func (c RunConfiguration) HasReporter(reporter Reporter) bool {
	return slices.Contains(c.Reporters, reporter)
}

// RequiresDashboardIdentity reports whether downstream reporting needs a
// project name and version.
func (c RunConfiguration) RequiresDashboardIdentity() bool {
	dashboardReporter := c.HasReporter(ReporterDashboard) || c.HasReporter(ReporterAll)
	dashboardBaseline := c.WithBaseline && c.BaselineProvider == BaselineProviderDashboard

	return dashboardReporter || dashboardBaseline
}

// EffectiveReferencePolicy returns the configured policy, defaulting to skip.
func (c RunConfiguration) EffectiveReferencePolicy() ReferencePolicy {
	if c.ReferencePolicy == "" {
		return ReferencePolicySkip
	}

	return c.ReferencePolicy
}

// EffectiveAdditionalTimeout returns the timeout margin, defaulting to DefaultAdditionalTimeout.
func (c RunConfiguration) EffectiveAdditionalTimeout() time.Duration {
	if c.AdditionalTimeout <= 0 {
		return DefaultAdditionalTimeout
	}

	return c.AdditionalTimeout
}
