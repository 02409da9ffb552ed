package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallHang/internal/model"
	"github.com/piwi3910/WallHang/internal/project"
)

type placeOpts struct {
	wall   string
	count  int
	seed   int64
	output string
}

func newPlaceCmd() *cobra.Command {
	opts := placeOpts{count: 1}

	cmd := &cobra.Command{
		Use:   "place <layout> <size[:orientation[:label]]>...",
		Short: "Add frames to a layout at random free positions",
		Long: `Add frames to a layout. Each frame is dropped at a random free spot on the wall.
The layout file is created if it does not exist.`,
		Example: `  wallhang place hall.wallhang 50x70 30x90:landscape:Dunes --count 2`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd.Context(), cmd, args[0], args[1:], opts)
		},
	}

	cmd.Flags().StringVar(&opts.wall, "wall", "", "wall size WxH in cm (resizes the wall first)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "copies of each frame")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 = random)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output layout file (default: overwrite input)")

	return cmd
}

func runPlace(ctx context.Context, cmd *cobra.Command, path string, frameArgs []string, opts placeOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	specs := make([]model.FrameSpec, 0, len(frameArgs))
	for _, arg := range frameArgs {
		spec, err := parseFrameArg(arg)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	p, err := openPlanner(ctx, path, true, opts.seed)
	if err != nil {
		return err
	}

	if opts.wall != "" {
		wall, err := parseWall(opts.wall)
		if err != nil {
			return err
		}
		if unplaced, ok := p.ResizeWall(wall.Width, wall.Height); !ok {
			return fmt.Errorf("wall %s is too small for %d existing frame(s)", opts.wall, len(unplaced))
		}
	}

	placed, full := 0, 0
	for _, spec := range specs {
		for i := 0; i < opts.count; i++ {
			f, ok := p.AddFrame(spec)
			if !ok {
				full++
				continue
			}
			placed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.1f,%.1f\n", f.ID, f.Size, f.Orientation, f.Position[0], f.Position[1])
		}
	}
	if full > 0 {
		logger.Warn("wall is full", "unplaced", full)
	}

	out := opts.output
	if out == "" {
		out = path
	}
	if err := project.SaveLayout(out, p.Layout()); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Placed %d frame(s) in %s", placed, out))
	return nil
}
