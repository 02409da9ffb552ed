package engine

import "github.com/piwi3910/WallHang/internal/model"

// Overlaps reports whether a and b conflict once padding clearance is
// enforced between them. Both rects keep their true extents; padding only
// widens the separation thresholds, so it counts once, not once per side.
// Touching at exactly the padding distance counts as a conflict.
func Overlaps(a, b model.Rect, padding float64) bool {
	separated := a.Right()+padding < b.Left() ||
		a.Left()-padding > b.Right() ||
		a.Top()+padding < b.Bottom() ||
		a.Bottom()-padding > b.Top()
	return !separated
}
