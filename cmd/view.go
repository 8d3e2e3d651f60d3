package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/preflight/internal/adapter"
	"gooze.dev/pkg/preflight/internal/controller"
	m "gooze.dev/pkg/preflight/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the baseline of the last initial test run",
		Long:  "View the baseline written by the last run from the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			dir := m.Path(viper.GetString(outputFlagName))

			baseline, err := baselineStore.LoadBaseline(dir)
			if errors.Is(err, os.ErrNotExist) {
				return m.NewInputError(
					fmt.Sprintf("No baseline found in %s", dir),
					"Run `preflight run` first to create one.",
				)
			}

			if err != nil {
				return fmt.Errorf("failed to load baseline: %w", err)
			}

			ui.DisplayBaseline(ctx, controller.BaselineSummary{
				Baseline: baseline,
				Path:     m.Path(filepath.Join(string(dir), adapter.BaselineFileName)),
			})

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
