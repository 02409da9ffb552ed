package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/piwi3910/WallHang/internal/engine"
	"github.com/piwi3910/WallHang/internal/model"
	"github.com/piwi3910/WallHang/internal/project"
)

// parseWall reads a "<W>x<H>" wall size in cm. Unlike frame sizes, the
// order matters: width first.
func parseWall(s string) (model.Wall, error) {
	size, err := model.ParseSize(s)
	if err != nil {
		return model.Wall{}, fmt.Errorf("invalid wall size: %w", err)
	}
	wall := model.DefaultWall()
	wall.Width = size.Width
	wall.Height = size.Height
	return wall, nil
}

// parseFrameArg reads a frame argument of the form
// SIZE[:ORIENTATION[:LABEL]], e.g. "50x70:landscape:Mona".
func parseFrameArg(s string) (model.FrameSpec, error) {
	parts := strings.SplitN(s, ":", 3)
	if _, err := model.ParseSize(parts[0]); err != nil {
		return model.FrameSpec{}, err
	}
	spec := model.FrameSpec{Size: strings.TrimSpace(parts[0]), Orientation: model.Portrait}
	if len(parts) > 1 {
		o, ok := model.ParseOrientation(parts[1])
		if !ok {
			return model.FrameSpec{}, fmt.Errorf("unknown orientation %q", parts[1])
		}
		spec.Orientation = o
	}
	if len(parts) > 2 {
		spec.Label = parts[2]
	}
	return spec, nil
}

// parsePoint reads "X,Y" in plane cm.
func parsePoint(s string) (model.Point, error) {
	var p model.Point
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%g,%g", &p.X, &p.Y); err != nil {
		return model.Point{}, fmt.Errorf("invalid point %q, expected X,Y: %w", s, err)
	}
	if !p.Finite() {
		return model.Point{}, fmt.Errorf("invalid point %q, coordinates must be finite", s)
	}
	return p, nil
}

// newRand returns a seeded source, or nil for a clock seed.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

// openPlanner loads path into a planner. If the file does not exist and
// create is set, a new layout on the configured default wall is used.
func openPlanner(ctx context.Context, path string, create bool, seed int64) (*engine.Planner, error) {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	layout, err := project.LoadLayout(path)
	if err != nil {
		if !create || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		layout = cfg.NewLayout()
		logger.Info("creating new layout", "path", path, "wall", fmt.Sprintf("%gx%g", layout.Wall.Width, layout.Wall.Height))
	}

	p, unplaced := engine.NewPlanner(layout, cfg.Settings, logger, newRand(seed))
	for _, f := range unplaced {
		logger.Warn("frame dropped, no free space on wall", "frame", f.ID, "label", f.Label, "size", f.Size)
	}
	return p, nil
}
