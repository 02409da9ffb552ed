package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/WallHang/internal/model"
)

func rectOutline(x0, y0, x1, y1 float64) outline {
	return outline{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func rectSegments(x0, y0, x1, y1 float64) []segment {
	o := rectOutline(x0, y0, x1, y1)
	segs := make([]segment, len(o))
	for i := range o {
		segs[i] = segment{start: o[i], end: o[(i+1)%len(o)]}
	}
	return segs
}

func TestChainSegments_ClosesRectangles(t *testing.T) {
	segs := append(rectSegments(0, 0, 100, 100), rectSegments(200, 0, 500, 300)...)
	// Reverse one segment to exercise end-to-end matching.
	segs[1] = segment{start: segs[1].end, end: segs[1].start}

	outlines := chainSegments(segs, 0.01)
	require.Len(t, outlines, 2)
	assert.InDelta(t, 300*300, outlineArea(outlines[0]), 1e-9)
	assert.InDelta(t, 100*100, outlineArea(outlines[1]), 1e-9)
}

func TestChainSegments_DropsOpenChains(t *testing.T) {
	segs := []segment{
		{start: model.Point{X: 0, Y: 0}, end: model.Point{X: 10, Y: 0}},
		{start: model.Point{X: 10, Y: 0}, end: model.Point{X: 10, Y: 10}},
	}
	assert.Empty(t, chainSegments(segs, 0.01))
}

func TestFramesFromOutlines_NoWallOutline(t *testing.T) {
	wall := model.Wall{Width: 400, Height: 250}
	// A 500x700 mm frame whose center is 1 m from the left and 1.5 m up.
	var result ImportResult
	framesFromOutlines([]outline{rectOutline(750, 1150, 1250, 1850)}, wall, &result)

	require.Len(t, result.Frames, 1)
	assert.Nil(t, result.Wall)
	f := result.Frames[0]
	assert.Equal(t, "50x70", f.Spec.Size)
	assert.Equal(t, model.Portrait, f.Spec.Orientation)
	assert.True(t, f.HasPosition)
	assert.InDelta(t, -100.0, f.Position.X, 1e-9)
	assert.InDelta(t, 150.0, f.Position.Y, 1e-9)
}

func TestFramesFromOutlines_WallOutline(t *testing.T) {
	outlines := []outline{
		rectOutline(1000, 500, 4000, 3000),  // 300x250 cm wall, offset in the drawing
		rectOutline(1100, 1500, 2000, 1800), // 90x30 cm frame
	}
	var result ImportResult
	framesFromOutlines(outlines, model.DefaultWall(), &result)

	require.NotNil(t, result.Wall)
	assert.InDelta(t, 300.0, result.Wall.Width, 1e-9)
	assert.InDelta(t, 250.0, result.Wall.Height, 1e-9)

	require.Len(t, result.Frames, 1)
	f := result.Frames[0]
	assert.Equal(t, "90x30", f.Spec.Size)
	assert.Equal(t, model.Landscape, f.Spec.Orientation)
	// Center at 55 cm from the wall's left edge, 115 cm up.
	assert.InDelta(t, 55.0-150.0, f.Position.X, 1e-9)
	assert.InDelta(t, 115.0, f.Position.Y, 1e-9)
	assert.Len(t, outlines, 2, "input slice must not be modified")
}

func TestFramesFromOutlines_SkipsDegenerate(t *testing.T) {
	var result ImportResult
	framesFromOutlines([]outline{rectOutline(0, 0, 0.5, 500)}, model.DefaultWall(), &result)
	assert.Empty(t, result.Frames)
	assert.Len(t, result.Warnings, 1)
}

func TestEnclosingOutline_Overlapping(t *testing.T) {
	_, ok := enclosingOutline([]outline{rectOutline(0, 0, 100, 100), rectOutline(50, 50, 200, 120)})
	assert.False(t, ok)
}

func TestBulgeArcPoints_Semicircle(t *testing.T) {
	pts := bulgeArcPoints(model.Point{X: 0, Y: 0}, model.Point{X: 10, Y: 0}, 1, 16)
	require.Len(t, pts, 17)
	for _, p := range pts {
		assert.InDelta(t, 5.0, p.Dist(model.Point{X: 5, Y: 0}), 1e-9)
	}
}

func TestImportDXF_FileNotFound(t *testing.T) {
	result := ImportDXF("/nonexistent/plan.dxf", model.DefaultWall())
	assert.NotEmpty(t, result.Errors)
}
