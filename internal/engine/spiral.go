package engine

import (
	"math"

	"github.com/piwi3910/WallHang/internal/model"
)

// SpiralOptions bounds the nearest-free-slot search.
type SpiralOptions struct {
	MaxRadius     float64
	RingStep      float64
	PointsPerRing int
	Padding       float64
}

// NewSpiralOptions derives search options for a wall. The maximum radius
// is the wall's diagonal, which reaches every point on the wall from any
// starting point on it.
func NewSpiralOptions(settings model.Settings, wall model.Wall) SpiralOptions {
	return SpiralOptions{
		MaxRadius:     WallReach(wall),
		RingStep:      settings.RingStep,
		PointsPerRing: settings.PointsPerRing,
		Padding:       settings.Padding,
	}
}

// WallReach is the largest distance between two points on the wall.
func WallReach(wall model.Wall) float64 {
	return math.Hypot(wall.Width, wall.Height)
}

// FindNearest returns the closest conflict-free position for target. If
// target itself is free it comes back unchanged. Otherwise rings of
// increasing radius around target's center are sampled, each candidate is
// clamped into b, and the first free one wins. It returns false when no
// ring up to MaxRadius has a free candidate, or when target's center is
// not a finite point.
func FindNearest(target model.Rect, reg *Registry, exclude string, b model.Bounds, opts SpiralOptions) (model.Rect, bool) {
	if !target.Center().Finite() {
		return model.Rect{}, false
	}
	if !reg.Conflicts(target, exclude, opts.Padding) {
		return target, true
	}
	if opts.RingStep <= 0 || opts.PointsPerRing <= 0 || !b.Valid() {
		return model.Rect{}, false
	}

	origin := target.Center()
	angleStep := 2 * math.Pi / float64(opts.PointsPerRing)
	for ring := 1; ; ring++ {
		r := float64(ring) * opts.RingStep
		if r > opts.MaxRadius {
			break
		}
		for k := 0; k < opts.PointsPerRing; k++ {
			angle := float64(k) * angleStep
			p := b.Clamp(model.Point{
				X: origin.X + r*math.Cos(angle),
				Y: origin.Y + r*math.Sin(angle),
			})
			candidate := target.MoveTo(p)
			if !reg.Conflicts(candidate, exclude, opts.Padding) {
				return candidate, true
			}
		}
	}
	return model.Rect{}, false
}
