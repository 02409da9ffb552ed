package widgets

import (
	"image/color"
	"io"
	"math/rand"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/WallHang/internal/engine"
	"github.com/piwi3910/WallHang/internal/model"
)

func testWall() model.Wall {
	return model.Wall{Width: 500, Height: 300, Color: "#ffffff"}
}

func TestViewport_FitsAndCenters(t *testing.T) {
	vp := NewViewport(testWall(), fyne.NewSize(1000, 600))

	// 900x540 px available for a 5x3 m wall: 180 px per meter.
	center := vp.ToScreen(model.Point{X: 0, Y: 150})
	assert.InDelta(t, 500, center.X, 1e-3)
	assert.InDelta(t, 300, center.Y, 1e-3)

	topLeft := vp.ToScreen(model.Point{X: -250, Y: 300})
	assert.InDelta(t, 50, topLeft.X, 1e-3)
	assert.InDelta(t, 30, topLeft.Y, 1e-3)

	assert.InDelta(t, 1.8, vp.Length(1), 1e-6)
}

func TestViewport_RoundTrip(t *testing.T) {
	vp := NewViewport(testWall(), fyne.NewSize(800, 800))
	for _, p := range []model.Point{{X: 0, Y: 0}, {X: -200, Y: 35}, {X: 124.5, Y: 270}} {
		back := vp.ToPlane(vp.ToScreen(p))
		assert.InDelta(t, p.X, back.X, 1e-3)
		assert.InDelta(t, p.Y, back.Y, 1e-3)
	}
}

func TestViewport_YAxisPointsUp(t *testing.T) {
	vp := NewViewport(testWall(), fyne.NewSize(1000, 600))
	low := vp.ToScreen(model.Point{Y: 10})
	high := vp.ToScreen(model.Point{Y: 200})
	assert.Greater(t, low.Y, high.Y)
}

func TestViewport_RectOnScreen(t *testing.T) {
	vp := NewViewport(testWall(), fyne.NewSize(1000, 600))
	pos, size := vp.RectOnScreen(model.NewRect(model.Point{X: 0, Y: 150}, 50, 70))
	assert.InDelta(t, 90, size.Width, 1e-3)
	assert.InDelta(t, 126, size.Height, 1e-3)
	assert.InDelta(t, 455, pos.X, 1e-3)
	assert.InDelta(t, 237, pos.Y, 1e-3)
}

func TestParseHexColor(t *testing.T) {
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	assert.Equal(t, color.NRGBA{R: 0x3e, G: 0x27, B: 0x23, A: 255}, ParseHexColor("#3e2723", fallback))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, ParseHexColor("FFFFFF", fallback))
	assert.Equal(t, fallback, ParseHexColor("#fff", fallback))
	assert.Equal(t, fallback, ParseHexColor("#zzzzzz", fallback))
}

// newCanvas builds a 1000x600 canvas over a 500x300 wall holding the given
// frames.
func newCanvas(t *testing.T, frames ...model.Frame) (*WallCanvas, *engine.Planner) {
	t.Helper()
	test.NewTempApp(t)

	layout := model.NewLayout()
	layout.Wall = testWall()
	layout.Frames = frames
	p, unplaced := engine.NewPlanner(layout, model.DefaultSettings(), log.New(io.Discard), rand.New(rand.NewSource(1)))
	require.Empty(t, unplaced)

	wc := NewWallCanvas(p)
	wc.Resize(fyne.NewSize(1000, 600))
	return wc, p
}

func frameAt(size string, x, y float64) model.Frame {
	f := model.NewFrame("", size, model.Portrait)
	f.SetCenter(model.Point{X: x, Y: y})
	return f
}

// drag sends a single drag event from one plane point to another.
func drag(wc *WallCanvas, from, to model.Point) {
	vp := wc.viewport()
	a, b := vp.ToScreen(from), vp.ToScreen(to)
	wc.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: b},
		Dragged:    fyne.NewDelta(b.X-a.X, b.Y-a.Y),
	})
}

func TestWallCanvas_TapSelects(t *testing.T) {
	f := frameAt("50x70", 0, 150)
	wc, p := newCanvas(t, f)

	var got []string
	wc.OnSelect = func(id string) { got = append(got, id) }

	wc.Tapped(&fyne.PointEvent{Position: wc.viewport().ToScreen(model.Point{X: 5, Y: 160})})
	assert.Equal(t, f.ID, p.Selected())

	wc.Tapped(&fyne.PointEvent{Position: wc.viewport().ToScreen(model.Point{X: 200, Y: 50})})
	assert.Empty(t, p.Selected())
	assert.Equal(t, []string{f.ID, ""}, got)
}

func TestWallCanvas_DragMovesFrame(t *testing.T) {
	f := frameAt("50x70", 0, 150)
	wc, p := newCanvas(t, f)

	var started string
	var released engine.ReleaseResult
	wc.OnDragStart = func(id string) { started = id }
	wc.OnRelease = func(id string, res engine.ReleaseResult) { released = res }

	drag(wc, model.Point{X: 0, Y: 150}, model.Point{X: 100, Y: 150})
	assert.True(t, wc.dragging)
	wc.DragEnd()

	assert.Equal(t, f.ID, started)
	assert.True(t, released.Moved)
	rect, ok := p.Rect(f.ID)
	require.True(t, ok)
	assert.InDelta(t, 100, rect.CenterX, 1e-3)
	assert.InDelta(t, 150, rect.CenterY, 1e-3)
	assert.False(t, p.Dragging())
}

func TestWallCanvas_DragStopsAtNeighbour(t *testing.T) {
	a := frameAt("20x20", 0, 150)
	b := frameAt("20x20", 60, 150)
	wc, p := newCanvas(t, a, b)

	drag(wc, model.Point{X: 0, Y: 150}, model.Point{X: 120, Y: 150})
	assert.True(t, wc.stuck)
	wc.DragEnd()

	rect, _ := p.Rect(a.ID)
	assert.Less(t, rect.CenterX, 60.0)
	assert.Empty(t, p.Validate())
}

func TestWallCanvas_DragOnEmptyWallIgnored(t *testing.T) {
	f := frameAt("50x70", 0, 150)
	wc, p := newCanvas(t, f)

	released := false
	wc.OnRelease = func(string, engine.ReleaseResult) { released = true }

	drag(wc, model.Point{X: -200, Y: 50}, model.Point{X: 0, Y: 150})
	drag(wc, model.Point{X: -200, Y: 50}, model.Point{X: 10, Y: 150})
	wc.DragEnd()

	assert.False(t, released)
	rect, _ := p.Rect(f.ID)
	assert.Equal(t, model.Point{X: 0, Y: 150}, rect.Center())
}

func TestWallCanvas_SetController(t *testing.T) {
	wc, _ := newCanvas(t, frameAt("50x70", 0, 150))

	layout := model.NewLayout()
	layout.Wall = model.Wall{Width: 200, Height: 100}
	other, _ := engine.NewPlanner(layout, model.DefaultSettings(), log.New(io.Discard), nil)
	wc.SetController(other)

	assert.Equal(t, 200.0, wc.viewport().wall.Width)
	assert.Empty(t, wc.ctrl.Frames())
}

func TestWallCanvas_DragSelectsUnselectedFrame(t *testing.T) {
	a := frameAt("20x20", -100, 150)
	b := frameAt("20x20", 100, 150)
	wc, p := newCanvas(t, a, b)
	require.NoError(t, p.Select(a.ID))

	var selected string
	wc.OnSelect = func(id string) { selected = id }

	drag(wc, model.Point{X: 100, Y: 150}, model.Point{X: 100, Y: 200})
	wc.DragEnd()

	assert.Equal(t, b.ID, selected)
	assert.Equal(t, b.ID, p.Selected())
	rect, ok := p.Rect(b.ID)
	require.True(t, ok)
	assert.InDelta(t, 200, rect.CenterY, 1e-3)
}
