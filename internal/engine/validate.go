package engine

import (
	"fmt"

	"github.com/piwi3910/WallHang/internal/model"
)

// ViolationKind names the rule a layout breaks.
type ViolationKind string

const (
	ViolationOverlap     ViolationKind = "overlap"
	ViolationOutOfBounds ViolationKind = "out-of-bounds"
	ViolationBadSize     ViolationKind = "invalid-size"
)

// Violation is one problem found in a stored layout.
type Violation struct {
	Kind    ViolationKind
	FrameID string
	OtherID string // Set for overlaps
}

func (v Violation) String() string {
	switch v.Kind {
	case ViolationOverlap:
		return fmt.Sprintf("frame %s overlaps frame %s", v.FrameID, v.OtherID)
	case ViolationOutOfBounds:
		return fmt.Sprintf("frame %s is outside the wall", v.FrameID)
	default:
		return fmt.Sprintf("frame %s has an invalid size", v.FrameID)
	}
}

// ValidateLayout checks a layout exactly as stored: every pair of frames
// must keep the padding clearance and every center must lie within the
// bounds for its frame. Frames with unparseable sizes are checked at the
// default size.
func ValidateLayout(layout model.Layout, settings model.Settings) []Violation {
	settings = settings.Normalized()
	var violations []Violation

	rects := make([]model.Rect, len(layout.Frames))
	for i, f := range layout.Frames {
		size, err := model.ParseSize(f.Size)
		if err != nil {
			violations = append(violations, Violation{Kind: ViolationBadSize, FrameID: f.ID})
			size = model.DefaultFrameSize
		}
		size = size.Oriented(f.Orientation)
		rects[i] = model.NewRect(f.Center(), size.Width, size.Height)
		if !layout.Wall.BoundsFor(size).Contains(f.Center()) {
			violations = append(violations, Violation{Kind: ViolationOutOfBounds, FrameID: f.ID})
		}
	}

	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if Overlaps(rects[i], rects[j], settings.Padding) {
				violations = append(violations, Violation{
					Kind:    ViolationOverlap,
					FrameID: layout.Frames[i].ID,
					OtherID: layout.Frames[j].ID,
				})
			}
		}
	}
	return violations
}
