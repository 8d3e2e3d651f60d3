package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/preflight/internal/adapter"
	m "gooze.dev/pkg/preflight/internal/model"
)

// ReferenceResolver loads the compilation references of the project under test.
type ReferenceResolver interface {
	// LoadProjectReferences returns one reference per identifier that could
	// be loaded. The output order is not guaranteed to follow the input.
	LoadProjectReferences(ctx context.Context, identifiers []string) ([]m.Reference, error)
}

type referenceResolver struct {
	loader adapter.ReferenceLoader
	policy m.ReferencePolicy
}

// NewReferenceResolver constructs a ReferenceResolver. With
// m.ReferencePolicySkip failed loads are logged and skipped, with
// m.ReferencePolicyFail the first failure aborts.
func NewReferenceResolver(loader adapter.ReferenceLoader, policy m.ReferencePolicy) ReferenceResolver {
	if policy == "" {
		policy = m.ReferencePolicySkip
	}

	return &referenceResolver{loader: loader, policy: policy}
}

func (r *referenceResolver) LoadProjectReferences(ctx context.Context, identifiers []string) ([]m.Reference, error) {
	references := make([]m.Reference, 0, len(identifiers))
	skipped := 0

	for _, identifier := range identifiers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		reference, err := r.loader.Load(ctx, identifier)
		if err != nil {
			if r.policy == m.ReferencePolicyFail {
				slog.Error("Failed to load reference", "reference", identifier, "error", err)

				return nil, m.NewInputError(
					fmt.Sprintf("Failed to load the reference %s", identifier),
					fmt.Sprintf("%s. Run `go mod download` or use the skip reference policy.", err),
				)
			}

			skipped++

			slog.Warn("Skipping reference that could not be loaded", "reference", identifier, "error", err)

			continue
		}

		references = append(references, reference)
	}

	slog.Debug("Loaded project references", "loaded", len(references), "skipped", skipped)

	return references, nil
}
