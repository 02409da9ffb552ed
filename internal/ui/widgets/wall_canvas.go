package widgets

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallHang/internal/engine"
	"github.com/piwi3910/WallHang/internal/model"
)

// Frame fallback colors, cycled for frames without a usable color.
var frameColors = []color.NRGBA{
	{R: 62, G: 39, B: 35, A: 230},    // walnut
	{R: 33, G: 33, B: 33, A: 230},    // black
	{R: 189, G: 160, B: 110, A: 230}, // oak
	{R: 176, G: 176, B: 176, A: 230}, // aluminium
}

var (
	wallBorderColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	selectedColor   = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	blockedColor    = color.NRGBA{R: 244, G: 67, B: 54, A: 255}
	floorColor      = color.NRGBA{R: 121, G: 85, B: 72, A: 255}
)

// WallController is the planner surface the canvas drives.
type WallController interface {
	Wall() model.Wall
	Frames() []model.Frame
	Rect(id string) (model.Rect, bool)
	Selected() string
	Select(id string) error
	ClearSelection()
	FrameAt(p model.Point) (string, bool)
	BeginDrag(id string, at model.Point) error
	DragTo(at model.Point) (engine.MoveResult, error)
	EndDrag() (engine.ReleaseResult, error)
	CancelDrag()
}

// Viewport maps plane coordinates (cm, x from the wall's center, y up from
// the floor) to widget pixels (y down) and back. The wall is scaled to fit
// the widget and centered in it.
type Viewport struct {
	wall    model.Wall
	scale   float64 // pixels per render unit
	offsetX float64
	offsetY float64
}

// viewMargin is the share of the widget kept free around the wall.
const viewMargin = 0.05

// NewViewport fits wall into a widget of the given size.
func NewViewport(wall model.Wall, size fyne.Size) Viewport {
	rw, rh := model.ToRender(wall.Width), model.ToRender(wall.Height)
	availW := float64(size.Width) * (1 - 2*viewMargin)
	availH := float64(size.Height) * (1 - 2*viewMargin)
	scale := 1.0
	if rw > 0 && rh > 0 && availW > 0 && availH > 0 {
		scale = math.Min(availW/rw, availH/rh)
	}
	return Viewport{
		wall:    wall,
		scale:   scale,
		offsetX: (float64(size.Width) - rw*scale) / 2,
		offsetY: (float64(size.Height) - rh*scale) / 2,
	}
}

// ToScreen converts a plane point to a widget position.
func (v Viewport) ToScreen(p model.Point) fyne.Position {
	x := v.offsetX + model.ToRender(p.X+v.wall.Width/2)*v.scale
	y := v.offsetY + model.ToRender(v.wall.Height-p.Y)*v.scale
	return fyne.NewPos(float32(x), float32(y))
}

// ToPlane converts a widget position to a plane point.
func (v Viewport) ToPlane(pos fyne.Position) model.Point {
	x := model.FromRender((float64(pos.X)-v.offsetX)/v.scale) - v.wall.Width/2
	y := v.wall.Height - model.FromRender((float64(pos.Y)-v.offsetY)/v.scale)
	return model.Point{X: x, Y: y}
}

// Length converts a plane length to pixels.
func (v Viewport) Length(cm float64) float32 {
	return float32(model.ToRender(cm) * v.scale)
}

// RectOnScreen returns the top-left position and size of r in pixels.
func (v Viewport) RectOnScreen(r model.Rect) (fyne.Position, fyne.Size) {
	topLeft := v.ToScreen(model.Point{X: r.Left(), Y: r.Top()})
	return topLeft, fyne.NewSize(v.Length(r.Width), v.Length(r.Height))
}

// WallCanvas draws the wall and its frames and turns pointer input into
// planner calls: a tap selects, a drag moves the frame under the pointer.
type WallCanvas struct {
	widget.BaseWidget

	ctrl    WallController
	minSize fyne.Size

	dragging bool
	ignoring bool
	stuck    bool

	// OnSelect is called with the selected frame ID, or "" when cleared.
	OnSelect func(id string)
	// OnDragStart is called before a drag begins to move a frame.
	OnDragStart func(id string)
	// OnRelease is called after a drag ends.
	OnRelease func(id string, res engine.ReleaseResult)
	// OnError reports planner errors raised by pointer input.
	OnError func(err error)
}

var (
	_ fyne.Draggable = (*WallCanvas)(nil)
	_ fyne.Tappable  = (*WallCanvas)(nil)
)

func NewWallCanvas(ctrl WallController) *WallCanvas {
	wc := &WallCanvas{ctrl: ctrl, minSize: fyne.NewSize(480, 320)}
	wc.ExtendBaseWidget(wc)
	return wc
}

// SetController swaps the planner, e.g. after opening another layout.
func (wc *WallCanvas) SetController(ctrl WallController) {
	wc.ctrl = ctrl
	wc.dragging, wc.ignoring = false, false
	wc.Refresh()
}

func (wc *WallCanvas) viewport() Viewport {
	return NewViewport(wc.ctrl.Wall(), wc.Size())
}

// Tapped selects the frame under the pointer.
func (wc *WallCanvas) Tapped(ev *fyne.PointEvent) {
	p := wc.viewport().ToPlane(ev.Position)
	id, ok := wc.ctrl.FrameAt(p)
	if !ok {
		wc.ctrl.ClearSelection()
		id = ""
	} else if err := wc.ctrl.Select(id); err != nil {
		wc.report(err)
		return
	}
	if wc.OnSelect != nil {
		wc.OnSelect(id)
	}
	wc.Refresh()
}

// Dragged starts a drag on the first event and moves the frame on later
// ones. Pressing on a frame selects it before the drag begins. A drag that
// starts on empty wall is ignored.
func (wc *WallCanvas) Dragged(ev *fyne.DragEvent) {
	if wc.ignoring {
		return
	}
	vp := wc.viewport()
	if !wc.dragging {
		start := vp.ToPlane(fyne.NewPos(ev.Position.X-ev.Dragged.DX, ev.Position.Y-ev.Dragged.DY))
		id, ok := wc.ctrl.FrameAt(start)
		if !ok {
			wc.ignoring = true
			return
		}
		if err := wc.ctrl.Select(id); err != nil {
			wc.report(err)
			wc.ignoring = true
			return
		}
		if wc.OnSelect != nil {
			wc.OnSelect(id)
		}
		if wc.OnDragStart != nil {
			wc.OnDragStart(id)
		}
		if err := wc.ctrl.BeginDrag(id, start); err != nil {
			wc.report(err)
			wc.ignoring = true
			return
		}
		wc.dragging = true
	}

	res, err := wc.ctrl.DragTo(vp.ToPlane(ev.Position))
	if err != nil {
		wc.report(err)
		return
	}
	wc.stuck = res.Stuck
	wc.Refresh()
}

// DragEnd releases the dragged frame.
func (wc *WallCanvas) DragEnd() {
	wasDragging := wc.dragging
	wc.dragging, wc.ignoring, wc.stuck = false, false, false
	if !wasDragging {
		return
	}
	id := wc.ctrl.Selected()
	res, err := wc.ctrl.EndDrag()
	if err != nil {
		wc.report(err)
	} else if wc.OnRelease != nil {
		wc.OnRelease(id, res)
	}
	wc.Refresh()
}

func (wc *WallCanvas) report(err error) {
	if wc.OnError != nil {
		wc.OnError(err)
	}
}

func (wc *WallCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newWallCanvasRenderer(wc)
}

type wallCanvasRenderer struct {
	wc      *WallCanvas
	objects []fyne.CanvasObject
}

func newWallCanvasRenderer(wc *WallCanvas) *wallCanvasRenderer {
	r := &wallCanvasRenderer{wc: wc}
	r.rebuild()
	return r
}

func (r *wallCanvasRenderer) rebuild() {
	r.objects = nil
	wc := r.wc
	wall := wc.ctrl.Wall()
	vp := wc.viewport()

	// Wall background
	pos, size := vp.RectOnScreen(model.NewRect(model.Point{Y: wall.Height / 2}, wall.Width, wall.Height))
	bg := canvas.NewRectangle(ParseHexColor(wall.Color, color.NRGBA{R: 244, G: 241, B: 234, A: 255}))
	bg.Resize(size)
	bg.Move(pos)
	r.objects = append(r.objects, bg)

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = wallBorderColor
	border.StrokeWidth = 2
	border.Resize(size)
	border.Move(pos)
	r.objects = append(r.objects, border)

	// Floor line
	floor := canvas.NewLine(floorColor)
	floor.StrokeWidth = 3
	floor.Position1 = fyne.NewPos(pos.X, pos.Y+size.Height)
	floor.Position2 = fyne.NewPos(pos.X+size.Width, pos.Y+size.Height)
	r.objects = append(r.objects, floor)

	selected := wc.ctrl.Selected()
	for i, f := range wc.ctrl.Frames() {
		rect, ok := wc.ctrl.Rect(f.ID)
		if !ok {
			continue
		}
		r.drawFrame(vp, f, rect, frameColors[i%len(frameColors)], f.ID == selected)
	}
}

func (r *wallCanvasRenderer) drawFrame(vp Viewport, f model.Frame, rect model.Rect, fallback color.NRGBA, selected bool) {
	pos, size := vp.RectOnScreen(rect)

	body := canvas.NewRectangle(ParseHexColor(f.Color, fallback))
	body.Resize(size)
	body.Move(pos)
	r.objects = append(r.objects, body)

	// Passe-partout
	inset := vp.Length(math.Min(rect.Width, rect.Height) * 0.12)
	if inset > 2 {
		mat := canvas.NewRectangle(color.NRGBA{R: 250, G: 250, B: 245, A: 255})
		mat.Resize(fyne.NewSize(size.Width-2*inset, size.Height-2*inset))
		mat.Move(fyne.NewPos(pos.X+inset, pos.Y+inset))
		r.objects = append(r.objects, mat)
	}

	if selected {
		outline := canvas.NewRectangle(color.Transparent)
		outline.StrokeColor = selectedColor
		if r.wc.dragging && r.wc.stuck {
			outline.StrokeColor = blockedColor
		}
		outline.StrokeWidth = 3
		outline.Resize(size)
		outline.Move(pos)
		r.objects = append(r.objects, outline)
	}

	// Label (only if big enough)
	if size.Width > 40 && size.Height > 24 {
		text := f.Label
		if text == "" {
			text = f.Size
		}
		label := canvas.NewText(text, color.Black)
		label.TextSize = 10
		label.Move(fyne.NewPos(pos.X+inset+2, pos.Y+inset+2))
		r.objects = append(r.objects, label)
	}
}

func (r *wallCanvasRenderer) Layout(size fyne.Size)        { r.rebuild() }
func (r *wallCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *wallCanvasRenderer) Destroy()                     {}
func (r *wallCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *wallCanvasRenderer) MinSize() fyne.Size           { return r.wc.minSize }

// ParseHexColor reads "#rrggbb" or "rrggbb". Anything else returns fallback.
func ParseHexColor(s string, fallback color.NRGBA) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	var c color.NRGBA
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return fallback
	}
	c.A = 255
	return c
}
