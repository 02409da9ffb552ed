// Package export provides functionality for exporting wall layouts to
// printable hanging plans, QR-coded frame labels and spreadsheets.
package export

import (
	"sort"

	"github.com/piwi3910/WallHang/internal/model"
)

// HangingPoint is where one frame goes on the wall, measured the way a
// person with a tape measure needs it: the hook sits at the frame's top
// center, measured from the wall's left edge and from the floor.
type HangingPoint struct {
	Number      int
	FrameID     string
	Label       string
	Size        string
	Orientation model.Orientation
	Width       float64 // Oriented outer width in cm
	Height      float64 // Oriented outer height in cm
	FromLeft    float64 // Hook distance from the wall's left edge in cm
	FromFloor   float64 // Hook height above the floor in cm
	Color       string
}

// HangingPoints computes the hanging point of every frame in the layout,
// ordered left to right and then bottom to top. Frames with size labels that
// do not parse are measured at the default frame size.
func HangingPoints(layout model.Layout) []HangingPoint {
	points := make([]HangingPoint, 0, len(layout.Frames))
	for _, f := range layout.Frames {
		size, err := model.ParseSize(f.Size)
		if err != nil {
			size = model.DefaultFrameSize
		}
		size = size.Oriented(f.Orientation)
		c := f.Center()
		points = append(points, HangingPoint{
			FrameID:     f.ID,
			Label:       f.Label,
			Size:        f.Size,
			Orientation: f.Orientation,
			Width:       size.Width,
			Height:      size.Height,
			FromLeft:    c.X + layout.Wall.Width/2,
			FromFloor:   c.Y + size.Height/2,
			Color:       f.Color,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].FromLeft != points[j].FromLeft {
			return points[i].FromLeft < points[j].FromLeft
		}
		return points[i].FromFloor < points[j].FromFloor
	})
	for i := range points {
		points[i].Number = i + 1
	}
	return points
}
