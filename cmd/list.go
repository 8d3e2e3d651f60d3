package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	m "gooze.dev/pkg/preflight/internal/model"
)

const listLongDescription = `Resolve the module at path (default: current directory) and list the test
packages that would be built and run, with the number of source files each
package directory holds. Nothing is built or executed.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [path]",
		Short: "List test packages and source files",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			project, err := projectResolver.Resolve(ctx, runConfiguration(projectPathArg(args)))
			if err != nil {
				return err
			}

			modulePath, _ := project.ProjectUnderTest.Property(m.PropertyModulePath)
			cmd.Printf("module %s (%s)\n", valueOr(modulePath, "-"), project.ProjectUnderTest.Toolchain)

			root := project.ProjectUnderTest.Dir()
			for _, testProject := range project.TestProjects {
				importPath, _ := testProject.Property(m.PropertyImportPath)
				cmd.Printf("  %-40s %s\n", valueOr(importPath, "-"), relativeTo(root, testProject.Dir()))
			}

			cmd.Printf("%d test package(s), %d source file(s)\n", len(project.TestProjects), project.Contents.Count())

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func relativeTo(root, path m.Path) string {
	rel, err := filepath.Rel(string(root), string(path))
	if err != nil {
		return string(path)
	}

	return rel
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
