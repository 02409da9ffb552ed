package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallHang/internal/project"
)

type moveOpts struct {
	to     string
	output string
}

func newMoveCmd() *cobra.Command {
	var opts moveOpts

	cmd := &cobra.Command{
		Use:   "move <layout> <frame-id>",
		Short: "Drag a frame toward a point and drop it",
		Long: `Move a frame the way a mouse drag would: the frame slides toward the target and
stops or slides along any frame in its way. Coordinates are in cm, with x measured
from the wall's center and y from the floor.`,
		Example: `  wallhang move hall.wallhang frame_01h... --to -80,150`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd.Context(), cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "target center X,Y in cm")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output layout file (default: overwrite input)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runMove(ctx context.Context, cmd *cobra.Command, path, frameID string, opts moveOpts) error {
	logger := loggerFromContext(ctx)

	target, err := parsePoint(opts.to)
	if err != nil {
		return err
	}
	p, err := openPlanner(ctx, path, false, 0)
	if err != nil {
		return err
	}

	start, ok := p.Rect(frameID)
	if !ok {
		return fmt.Errorf("frame %s not found in %s", frameID, path)
	}
	if err := p.Select(frameID); err != nil {
		return err
	}
	if err := p.BeginDrag(frameID, start.Center()); err != nil {
		return err
	}
	moved, err := p.DragTo(target)
	if err != nil {
		p.CancelDrag()
		return err
	}
	if moved.Stuck {
		logger.Info("frame blocked on the way", "x", moved.Position.X, "y", moved.Position.Y)
	}
	res, err := p.EndDrag()
	if err != nil {
		return err
	}
	if res.Relocated {
		logger.Info("drop point was taken, moved to the nearest free spot")
	}

	c := res.Rect.Center()
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f,%.1f\n", frameID, c.X, c.Y)
	if !res.Moved {
		logger.Warn("frame did not move")
		return nil
	}

	out := opts.output
	if out == "" {
		out = path
	}
	return project.SaveLayout(out, p.Layout())
}
