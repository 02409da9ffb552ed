package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallHang/internal/engine"
	"github.com/piwi3910/WallHang/internal/importer"
	"github.com/piwi3910/WallHang/internal/project"
)

type importOpts struct {
	wall   string
	name   string
	seed   int64
	output string
}

func newImportCmd() *cobra.Command {
	var opts importOpts

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Build a layout from a CSV, Excel or DXF frame list",
		Long: `Import frames from a CSV or Excel list, or from a DXF wall plan, into a new layout.
Listed frames are placed at random free spots. Frames from a DXF plan keep their
drawn position when it is free.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.wall, "wall", "", "wall size WxH in cm (default from config or DXF)")
	cmd.Flags().StringVar(&opts.name, "name", "", "layout name (default: file name)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 = random)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output layout file (default: <file>.wallhang)")

	return cmd
}

func runImport(ctx context.Context, cmd *cobra.Command, path string, opts importOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	prog := newProgress(logger)

	layout := cfg.NewLayout()
	if opts.wall != "" {
		wall, err := parseWall(opts.wall)
		if err != nil {
			return err
		}
		layout.Wall.Width, layout.Wall.Height = wall.Width, wall.Height
	}

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		result = importer.ImportCSV(path)
	case ".xlsx", ".xlsm":
		result = importer.ImportExcel(path)
	case ".dxf":
		result = importer.ImportDXF(path, layout.Wall)
	default:
		return fmt.Errorf("unsupported import format %q", filepath.Ext(path))
	}
	for _, w := range result.Warnings {
		logger.Debug(w)
	}
	for _, e := range result.Errors {
		logger.Warn(e)
	}
	if len(result.Frames) == 0 {
		return fmt.Errorf("no frames imported from %s", path)
	}
	if result.Wall != nil && opts.wall == "" {
		layout.Wall.Width, layout.Wall.Height = result.Wall.Width, result.Wall.Height
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	layout.Name = base
	if opts.name != "" {
		layout.Name = opts.name
	}

	p, _ := engine.NewPlanner(layout, cfg.Settings, logger, newRand(opts.seed))
	placed, full := 0, 0
	for _, f := range result.Frames {
		ok := false
		if f.HasPosition {
			_, ok = p.AddFrameAt(f.Spec, f.Position)
		} else {
			_, ok = p.AddFrame(f.Spec)
		}
		if ok {
			placed++
		} else {
			full++
		}
	}
	if full > 0 {
		logger.Warn("wall is full", "unplaced", full)
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + project.LayoutExt
	}
	if err := project.SaveLayout(out, p.Layout()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	prog.done(fmt.Sprintf("Imported %d of %d frame(s)", placed, len(result.Frames)))
	return nil
}
