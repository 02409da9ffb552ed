package engine

import (
	"math/rand"
	"time"

	"github.com/piwi3910/WallHang/internal/model"
)

// Allocator picks a random free position for a new frame by rejection
// sampling. It is approximate: at high occupancy it may give up even though
// a free spot exists.
type Allocator struct {
	MaxAttempts int
	Padding     float64
	rng         *rand.Rand
}

// Allocation is a successful placement and the number of draws it took.
type Allocation struct {
	Rect     model.Rect
	Attempts int
}

// NewAllocator creates an allocator. A nil rng is seeded from the clock.
func NewAllocator(settings model.Settings, rng *rand.Rand) *Allocator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Allocator{
		MaxAttempts: settings.MaxAttempts,
		Padding:     settings.Padding,
		rng:         rng,
	}
}

// Allocate draws up to MaxAttempts uniformly random centers within b and
// inserts the first footprint that conflicts with nothing in reg. When every
// draw conflicts, or the frame does not fit the wall at all, it returns
// false and leaves reg untouched.
func (a *Allocator) Allocate(id string, size model.Size, b model.Bounds, reg *Registry) (Allocation, bool) {
	if !b.Valid() {
		return Allocation{}, false
	}
	for attempt := 1; attempt <= a.MaxAttempts; attempt++ {
		center := b.Clamp(model.Point{
			X: b.MinX + a.rng.Float64()*(b.MaxX-b.MinX),
			Y: b.MinY + a.rng.Float64()*(b.MaxY-b.MinY),
		})
		candidate := model.NewRect(center, size.Width, size.Height)
		if reg.Conflicts(candidate, id, a.Padding) {
			continue
		}
		if err := reg.Insert(id, candidate); err != nil {
			return Allocation{}, false
		}
		return Allocation{Rect: candidate, Attempts: attempt}, true
	}
	return Allocation{}, false
}
