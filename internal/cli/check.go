package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallHang/internal/engine"
	"github.com/piwi3910/WallHang/internal/project"
)

// errInvalidLayout is returned by check when the layout breaks a rule.
var errInvalidLayout = errors.New("layout has violations")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <layout>",
		Short: "Check a layout for overlapping or out-of-bounds frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd, args[0])
		},
	}
}

func runCheck(ctx context.Context, cmd *cobra.Command, path string) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	layout, err := project.LoadLayout(path)
	if err != nil {
		return err
	}

	violations := engine.ValidateLayout(layout, cfg.Settings)
	for _, v := range violations {
		fmt.Fprintln(cmd.OutOrStdout(), v.String())
	}
	if len(violations) > 0 {
		return fmt.Errorf("%s: %w (%d)", path, errInvalidLayout, len(violations))
	}
	logger.Info("layout is valid", "frames", len(layout.Frames), "padding", cfg.Settings.Padding)
	return nil
}
