package engine

import (
	"errors"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/WallHang/internal/model"
)

var (
	ErrNotSelected = errors.New("frame is not selected")
	ErrNoSession   = errors.New("no drag in progress")
)

// Planner is the interaction controller for one wall. It owns the layout
// document and the occupancy registry and keeps them in step: every
// position change goes through validation before it reaches the registry.
// A Planner is not safe for concurrent use; it is driven from a single
// interaction goroutine.
type Planner struct {
	layout   model.Layout
	settings model.Settings
	reg      *Registry
	alloc    *Allocator
	dims     map[string]model.Size
	logger   *log.Logger

	selected string
	session  *DragSession

	// OnChange is called after any committed change to the layout.
	OnChange func()
}

// NewPlanner builds a planner from a saved layout. Frames are settled in
// document order: a frame keeps its stored position if it is legal,
// otherwise it moves to the nearest free slot. A stored position that is
// not a finite point is discarded and the frame is allocated afresh. Frames
// that cannot be placed at all are left out of the planner and returned.
func NewPlanner(layout model.Layout, settings model.Settings, logger *log.Logger, rng *rand.Rand) (*Planner, []model.Frame) {
	if logger == nil {
		logger = log.Default()
	}
	settings = settings.Normalized()
	p := &Planner{
		settings: settings,
		reg:      NewRegistry(),
		alloc:    NewAllocator(settings, rng),
		dims:     make(map[string]model.Size),
		logger:   logger,
	}
	p.layout = layout
	p.layout.Frames = make([]model.Frame, 0, len(layout.Frames))

	var unplaced []model.Frame
	for _, f := range layout.Frames {
		if f.ID == "" {
			f.ID = model.NewFrameID()
		}
		if _, dup := p.dims[f.ID]; dup {
			f.ID = model.NewFrameID()
		}
		size := p.frameSize(f.Size, f.Orientation)
		var rect model.Rect
		if f.Center().Finite() {
			var ok bool
			rect, ok = p.settle(f.ID, model.NewRect(f.Center(), size.Width, size.Height), p.reg, p.layout.Wall)
			if !ok {
				p.logger.Warn("frame does not fit on wall", "frame", f.ID, "size", f.Size)
				unplaced = append(unplaced, f)
				continue
			}
			_ = p.reg.Insert(f.ID, rect)
		} else {
			p.logger.Warn("stored position is not a number, placing frame again", "frame", f.ID)
			alloc, ok := p.alloc.Allocate(f.ID, size, p.layout.Wall.BoundsFor(size), p.reg)
			if !ok {
				unplaced = append(unplaced, f)
				continue
			}
			rect = alloc.Rect
		}
		f.SetCenter(rect.Center())
		p.dims[f.ID] = size
		p.layout.Frames = append(p.layout.Frames, f)
	}
	return p, unplaced
}

// frameSize resolves a size label to oriented dimensions. A label that does
// not parse falls back to the default size with a warning.
func (p *Planner) frameSize(label string, o model.Orientation) model.Size {
	size, err := model.ParseSize(label)
	if err != nil {
		p.logger.Warn("invalid frame size, using default", "size", label, "default", model.DefaultFrameSize.Label(), "err", err)
		size = model.DefaultFrameSize
	}
	return size.Oriented(o)
}

// settle clamps rect into the wall and finds the nearest free slot for it
// in reg. A non-finite center never settles.
func (p *Planner) settle(id string, rect model.Rect, reg *Registry, wall model.Wall) (model.Rect, bool) {
	b := model.ComputeBounds(wall.Width, wall.Height, rect.Width, rect.Height)
	if !b.Valid() || !rect.Center().Finite() {
		return model.Rect{}, false
	}
	rect = rect.MoveTo(b.Clamp(rect.Center()))
	return FindNearest(rect, reg, id, b, NewSpiralOptions(p.settings, wall))
}

func (p *Planner) changed() {
	p.layout.Touch()
	if p.OnChange != nil {
		p.OnChange()
	}
}

func (p *Planner) indexOf(id string) int {
	for i := range p.layout.Frames {
		if p.layout.Frames[i].ID == id {
			return i
		}
	}
	return -1
}

// syncPosition copies the registry rect of id into the layout document.
func (p *Planner) syncPosition(id string) {
	rect, ok := p.reg.Get(id)
	if i := p.indexOf(id); ok && i >= 0 {
		p.layout.Frames[i].SetCenter(rect.Center())
	}
}

// AddFrame places a new frame at a random free position. It returns false
// when the wall is full.
func (p *Planner) AddFrame(spec model.FrameSpec) (model.Frame, bool) {
	f := spec.ToFrame()
	size := p.frameSize(f.Size, f.Orientation)
	alloc, ok := p.alloc.Allocate(f.ID, size, p.layout.Wall.BoundsFor(size), p.reg)
	if !ok {
		p.logger.Warn("wall is full", "size", f.Size, "attempts", p.alloc.MaxAttempts)
		return model.Frame{}, false
	}
	f.SetCenter(alloc.Rect.Center())
	p.dims[f.ID] = size
	p.layout.Frames = append(p.layout.Frames, f)
	p.logger.Debug("frame allocated", "frame", f.ID, "x", alloc.Rect.CenterX, "y", alloc.Rect.CenterY, "attempts", alloc.Attempts, "frames", p.reg.Len())
	p.changed()
	return f, true
}

// AddFrameAt places a new frame as close to at as the wall allows.
func (p *Planner) AddFrameAt(spec model.FrameSpec, at model.Point) (model.Frame, bool) {
	f := spec.ToFrame()
	size := p.frameSize(f.Size, f.Orientation)
	rect, ok := p.settle(f.ID, model.NewRect(at, size.Width, size.Height), p.reg, p.layout.Wall)
	if !ok {
		p.logger.Warn("no free slot near requested position", "size", f.Size, "x", at.X, "y", at.Y)
		return model.Frame{}, false
	}
	_ = p.reg.Insert(f.ID, rect)
	f.SetCenter(rect.Center())
	p.dims[f.ID] = size
	p.layout.Frames = append(p.layout.Frames, f)
	p.changed()
	return f, true
}

// ApplyTemplate allocates every frame of the template on the current wall.
// Specs that do not fit are returned.
func (p *Planner) ApplyTemplate(t model.LayoutTemplate) ([]model.Frame, []model.FrameSpec) {
	var placed []model.Frame
	var unplaced []model.FrameSpec
	for _, spec := range t.Frames {
		if f, ok := p.AddFrame(spec); ok {
			placed = append(placed, f)
		} else {
			unplaced = append(unplaced, spec)
		}
	}
	return placed, unplaced
}

// RemoveFrame deletes a frame. An active drag of that frame is cancelled.
func (p *Planner) RemoveFrame(id string) bool {
	if p.session != nil && p.session.FrameID() == id {
		p.CancelDrag()
	}
	if !p.reg.Remove(id) {
		return false
	}
	if i := p.indexOf(id); i >= 0 {
		p.layout.Frames = append(p.layout.Frames[:i], p.layout.Frames[i+1:]...)
	}
	delete(p.dims, id)
	if p.selected == id {
		p.selected = ""
	}
	p.changed()
	return true
}

// Select marks id as the selected frame.
func (p *Planner) Select(id string) error {
	if _, ok := p.reg.Get(id); !ok {
		return ErrUnknownFrame
	}
	p.selected = id
	return nil
}

func (p *Planner) ClearSelection() { p.selected = "" }

func (p *Planner) Selected() string { return p.selected }

// BeginDrag starts a drag of the selected frame from plane point at. Any
// other drag still open is cancelled first.
func (p *Planner) BeginDrag(id string, at model.Point) error {
	if _, ok := p.reg.Get(id); !ok {
		return ErrUnknownFrame
	}
	if p.selected != id {
		return ErrNotSelected
	}
	p.CancelDrag()
	s, err := NewDragSession(id, p.reg, p.layout.Wall.BoundsFor(p.dims[id]), at, p.settings, NewSpiralOptions(p.settings, p.layout.Wall))
	if err != nil {
		return err
	}
	p.session = s
	return nil
}

// Dragging reports whether a drag is in progress.
func (p *Planner) Dragging() bool { return p.session != nil }

// DragTo moves the dragged frame toward plane point at.
func (p *Planner) DragTo(at model.Point) (MoveResult, error) {
	if p.session == nil {
		return MoveResult{}, ErrNoSession
	}
	res, err := p.session.Move(at)
	if err != nil {
		return res, err
	}
	if res.Stuck {
		p.logger.Debug("drag blocked", "frame", p.session.FrameID(), "x", res.Position.X, "y", res.Position.Y)
	}
	return res, nil
}

// EndDrag releases the dragged frame and commits its final position.
func (p *Planner) EndDrag() (ReleaseResult, error) {
	if p.session == nil {
		return ReleaseResult{}, ErrNoSession
	}
	s := p.session
	p.session = nil
	res, err := s.End()
	if err != nil {
		return res, err
	}
	if res.Relocated {
		p.logger.Debug("drop collided, moved to nearest free slot", "frame", s.FrameID(), "x", res.Rect.CenterX, "y", res.Rect.CenterY)
	}
	if res.Moved {
		p.syncPosition(s.FrameID())
		p.changed()
	}
	return res, nil
}

// CancelDrag abandons the current drag, if any.
func (p *Planner) CancelDrag() {
	if p.session != nil {
		p.session.Cancel()
		p.session = nil
	}
}

// ResizeWall changes the wall size. Any drag in progress is cancelled, then
// every frame is clamped into its new bounds and moved to the nearest free
// slot if it collides. The resize only takes effect if every frame finds a
// spot; otherwise nothing changes and the IDs of the frames that could not
// be placed are returned.
func (p *Planner) ResizeWall(width, height float64) ([]string, bool) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, false
	}
	p.CancelDrag()

	wall := p.layout.Wall
	wall.Width = width
	wall.Height = height

	scratch := NewRegistry()
	var unplaced []string
	for _, f := range p.layout.Frames {
		cur, _ := p.reg.Get(f.ID)
		rect, ok := p.settle(f.ID, cur, scratch, wall)
		if !ok {
			unplaced = append(unplaced, f.ID)
			continue
		}
		_ = scratch.Insert(f.ID, rect)
	}
	if len(unplaced) > 0 {
		p.logger.Warn("wall resize rejected", "width", width, "height", height, "unplaced", len(unplaced))
		return unplaced, false
	}

	p.reg = scratch
	p.layout.Wall = wall
	for _, f := range p.layout.Frames {
		p.syncPosition(f.ID)
	}
	p.changed()
	return nil, true
}

// ResizeFrame changes a frame's size label and orientation. The frame keeps
// its center if it can, otherwise it moves to the nearest free slot. It
// returns false, changing nothing, if no slot exists.
func (p *Planner) ResizeFrame(id, size string, o model.Orientation) bool {
	i := p.indexOf(id)
	cur, ok := p.reg.Get(id)
	if i < 0 || !ok {
		return false
	}
	if p.session != nil && p.session.FrameID() == id {
		p.CancelDrag()
	}
	dims := p.frameSize(size, o)
	rect, ok := p.settle(id, model.NewRect(cur.Center(), dims.Width, dims.Height), p.reg, p.layout.Wall)
	if !ok {
		p.logger.Warn("no room for resized frame", "frame", id, "size", size)
		return false
	}
	_ = p.reg.Update(id, rect)
	p.dims[id] = dims
	p.layout.Frames[i].Size = size
	p.layout.Frames[i].Orientation = o
	p.syncPosition(id)
	p.changed()
	return true
}

// UpdateFrame changes a frame's descriptive fields. Geometry is not touched.
func (p *Planner) UpdateFrame(id, label, color, image string) bool {
	i := p.indexOf(id)
	if i < 0 {
		return false
	}
	p.layout.Frames[i].Label = label
	p.layout.Frames[i].Color = color
	p.layout.Frames[i].Image = image
	p.changed()
	return true
}

// Rect returns the live footprint of id: the drag position while it is
// being dragged, the committed one otherwise.
func (p *Planner) Rect(id string) (model.Rect, bool) {
	if p.session != nil && p.session.FrameID() == id {
		return p.session.Rect(), true
	}
	return p.reg.Get(id)
}

// BoundsFor returns the center bounds of frame id on the current wall.
func (p *Planner) BoundsFor(id string) (model.Bounds, bool) {
	size, ok := p.dims[id]
	if !ok {
		return model.Bounds{}, false
	}
	return p.layout.Wall.BoundsFor(size), true
}

// FrameAt returns the topmost frame under plane point at.
func (p *Planner) FrameAt(at model.Point) (string, bool) {
	for i := len(p.layout.Frames) - 1; i >= 0; i-- {
		id := p.layout.Frames[i].ID
		if r, ok := p.Rect(id); ok && r.ContainsPoint(at) {
			return id, true
		}
	}
	return "", false
}

// Frame returns a copy of the frame with the given ID.
func (p *Planner) Frame(id string) (model.Frame, bool) {
	if i := p.indexOf(id); i >= 0 {
		return p.layout.Frames[i], true
	}
	return model.Frame{}, false
}

// Frames returns a copy of the frames in document order.
func (p *Planner) Frames() []model.Frame {
	out := make([]model.Frame, len(p.layout.Frames))
	copy(out, p.layout.Frames)
	return out
}

// Layout returns a copy of the layout document with committed positions.
func (p *Planner) Layout() model.Layout {
	l := p.layout
	l.Frames = p.Frames()
	return l
}

// Rename sets the layout name.
func (p *Planner) Rename(name string) {
	p.layout.Name = name
	p.changed()
}

func (p *Planner) Wall() model.Wall           { return p.layout.Wall }
func (p *Planner) Settings() model.Settings   { return p.settings }
func (p *Planner) Occupancy() []OccupiedEntry { return p.reg.All("") }

// Validate checks the committed layout for overlaps and out-of-bounds
// frames. A planner only ever commits legal positions, so a non-empty
// result points at a bug.
func (p *Planner) Validate() []Violation {
	return ValidateLayout(p.Layout(), p.settings)
}
