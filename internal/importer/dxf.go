package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/WallHang/internal/model"
)

// DXF drawings are in millimetres.
const mmPerCm = 10.0

// outline is a closed polygon in drawing coordinates.
type outline []model.Point

// boundingBox returns the min and max corners of the outline.
func (o outline) boundingBox() (model.Point, model.Point) {
	min := model.Point{X: math.Inf(1), Y: math.Inf(1)}
	max := model.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range o {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	start model.Point
	end   model.Point
}

// ImportDXF imports frames from a DXF wall plan. Each closed shape
// (LWPOLYLINE, CIRCLE, or chain of connected LINEs/ARCs) becomes a frame
// sized by its bounding box and positioned at its center. The drawing's
// origin is the bottom-left corner of the wall.
//
// If one shape encloses all the others it is taken as the wall outline:
// the result's Wall is set from it and frame positions are measured from
// its corner. Otherwise positions are converted onto wall.
func ImportDXF(path string, wall model.Wall) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines []outline
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			o := lwPolylineToOutline(e)
			if len(o) >= 3 {
				outlines = append(outlines, o)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			outlines = append(outlines, circleToOutline(e, 64))

		case *entity.Arc:
			pts := arcToPoints(e, 32)
			if len(pts) >= 2 {
				segments = append(segments, pointsToSegments(pts)...)
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	// Chain loose segments (LINEs and ARCs) into closed outlines
	outlines = append(outlines, chainSegments(segments, 0.01)...)

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	framesFromOutlines(outlines, wall, &result)
	return result
}

// framesFromOutlines converts outlines in millimetres into frames on the
// plane. The plane's origin is the wall's horizontal center at floor level.
func framesFromOutlines(outlines []outline, wall model.Wall, result *ImportResult) {
	origin := model.Point{}
	if idx, ok := enclosingOutline(outlines); ok {
		min, max := outlines[idx].boundingBox()
		origin = min
		wall.Width = (max.X - min.X) / mmPerCm
		wall.Height = (max.Y - min.Y) / mmPerCm
		result.Wall = &wall
		outlines = append(outlines[:idx:idx], outlines[idx+1:]...)
	}

	frameNum := 0
	for _, o := range outlines {
		min, max := o.boundingBox()
		width := (max.X - min.X) / mmPerCm
		height := (max.Y - min.Y) / mmPerCm

		if width < 0.1 || height < 0.1 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f cm)", width, height))
			continue
		}

		frameNum++
		orientation := model.Portrait
		if width > height {
			orientation = model.Landscape
		}
		center := model.Point{
			X: ((min.X+max.X)/2-origin.X)/mmPerCm - wall.Width/2,
			Y: ((min.Y+max.Y)/2 - origin.Y) / mmPerCm,
		}
		result.Frames = append(result.Frames, ImportedFrame{
			Spec: model.FrameSpec{
				Label:       fmt.Sprintf("DXF Frame %d", frameNum),
				Size:        model.Size{Width: roundCm(width), Height: roundCm(height)}.Label(),
				Orientation: orientation,
			},
			Position:    center,
			HasPosition: true,
		})
	}
}

// enclosingOutline finds the outline whose bounding box contains every
// other outline's bounding box. It needs at least one other outline.
func enclosingOutline(outlines []outline) (int, bool) {
	if len(outlines) < 2 {
		return 0, false
	}
	best := 0
	bestArea := 0.0
	for i, o := range outlines {
		min, max := o.boundingBox()
		if area := (max.X - min.X) * (max.Y - min.Y); area > bestArea {
			best, bestArea = i, area
		}
	}
	wallMin, wallMax := outlines[best].boundingBox()
	for i, o := range outlines {
		if i == best {
			continue
		}
		min, max := o.boundingBox()
		if min.X < wallMin.X || min.Y < wallMin.Y || max.X > wallMax.X || max.Y > wallMax.Y {
			return 0, false
		}
	}
	return best, true
}

// roundCm rounds to a tenth of a millimetre to absorb CAD float noise.
func roundCm(v float64) float64 {
	return math.Round(v*100) / 100
}

// lwPolylineToOutline converts a DXF LWPOLYLINE entity to an outline.
// Bulge values on vertices produce interpolated arc segments.
func lwPolylineToOutline(lw *entity.LwPolyline) outline {
	var o outline

	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := model.Point{X: v[0], Y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			// This vertex has a bulge: interpolate an arc to the next vertex
			nextIdx := (i + 1) % len(lw.Vertices)
			next := model.Point{X: lw.Vertices[nextIdx][0], Y: lw.Vertices[nextIdx][1]}
			arcPts := bulgeArcPoints(current, next, bulge, 32)
			// Add all but the last point (next vertex will be added naturally)
			o = append(o, arcPts[:len(arcPts)-1]...)
		} else {
			o = append(o, current)
		}
	}

	return o
}

// bulgeArcPoints generates points along an arc defined by two endpoints and a
// DXF bulge factor. The bulge is the tangent of 1/4 the included angle.
func bulgeArcPoints(p1, p2 model.Point, bulge float64, numSegments int) outline {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chordLen := math.Hypot(dx, dy)
	if chordLen < 1e-9 {
		return outline{p1, p2}
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	// Center of the arc, perpendicular to the chord midpoint
	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 {
		// Clockwise arc
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else if endAngle < startAngle {
		endAngle += 2 * math.Pi
	}

	pts := make(outline, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, model.Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return pts
}

// circleToOutline approximates a circle as a regular polygon.
func circleToOutline(c *entity.Circle, numSegments int) outline {
	o := make(outline, numSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		o[i] = model.Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return o
}

// arcToPoints converts a DXF ARC entity to a series of line points.
func arcToPoints(a *entity.Arc, numSegments int) []model.Point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]model.Point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = model.Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// pointsToSegments converts a point sequence to a slice of connected segments.
func pointsToSegments(pts []model.Point) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them
// connected. Chains that do not close are dropped.
func chainSegments(segs []segment, tolerance float64) []outline {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines []outline

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := outline{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if tail.Dist(seg.start) <= tolerance {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if tail.Dist(seg.end) <= tolerance {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) < 4 || chain[0].Dist(chain[len(chain)-1]) > tolerance {
			continue
		}
		// Remove the duplicate closing point
		outlines = append(outlines, chain[:len(chain)-1])
	}

	// Sort outlines by area (largest first) for consistent ordering
	sort.SliceStable(outlines, func(i, j int) bool {
		return outlineArea(outlines[i]) > outlineArea(outlines[j])
	})

	return outlines
}

// outlineArea computes the absolute area of a polygon using the shoelace formula.
func outlineArea(o outline) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].X * o[j].Y
		area -= o[j].X * o[i].Y
	}
	return math.Abs(area) / 2
}
