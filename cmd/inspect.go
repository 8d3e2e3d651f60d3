package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/preflight/internal/domain"
	m "gooze.dev/pkg/preflight/internal/model"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <binary>",
		Short: "Show the dashboard identity embedded in a compiled binary",
		Long: `Read the metadata of a compiled binary and print the project name and
project version a dashboard reporter would use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			module, err := metadataReader.Open(ctx, m.Path(args[0]))
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}

			defer func() {
				if err := module.Close(); err != nil {
					slog.Warn("Failed to close binary", "path", args[0], "error", err)
				}
			}()

			attributes, err := module.Attributes()
			if err != nil {
				return fmt.Errorf("failed to read metadata of %s: %w", module.FileName(), err)
			}

			name, nameErr := domain.ReadProjectName(attributes, module.FileName(), "")
			version, versionErr := domain.ReadProjectVersion(attributes, module.FileName(), "")

			cmd.Printf("project name\t %s\n", identityValue(name, nameErr))
			cmd.Printf("project version\t %s\n", identityValue(version, versionErr))

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func identityValue(value string, err error) string {
	if err != nil {
		var inputErr *m.InputError
		if errors.As(err, &inputErr) {
			return "(" + inputErr.Message + ")"
		}

		return "(" + err.Error() + ")"
	}

	return value
}
