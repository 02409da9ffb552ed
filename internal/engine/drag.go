package engine

import (
	"errors"
	"math"

	"github.com/piwi3910/WallHang/internal/model"
)

// ErrSessionClosed is returned when a finished drag session is used again.
var ErrSessionClosed = errors.New("drag session closed")

// DragState is the lifecycle stage of a drag session.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
	DragCommitted
)

func (s DragState) String() string {
	switch s {
	case DragDragging:
		return "Dragging"
	case DragCommitted:
		return "Committed"
	default:
		return "Idle"
	}
}

// MoveResult is the outcome of one pointer move.
type MoveResult struct {
	Position model.Point   // Committed center after the move
	Rect     model.Rect    // Committed footprint after the move
	Path     []model.Point // Every committed center this move passed through, in order
	Stuck    bool          // True if the frame stopped short of the target
}

// ReleaseResult is the outcome of ending a drag.
type ReleaseResult struct {
	Rect      model.Rect
	Moved     bool // The registry entry changed
	Relocated bool // The drop point collided and a spiral search moved it
}

// DragSession resolves an interactive move of one frame. Pointer targets
// are walked toward in steps no longer than MaxStep, so a fast pointer
// cannot carry the frame across an occupied region. The registry is only
// written once, on End.
type DragSession struct {
	frameID   string
	reg       *Registry
	bounds    model.Bounds
	settings  model.Settings
	spiral    SpiralOptions
	start     model.Rect
	committed model.Point
	offset    model.Point
	state     DragState
}

// NewDragSession starts dragging frameID. grab is the plane point where the
// pointer went down; the frame keeps its offset from that point while moving.
func NewDragSession(frameID string, reg *Registry, b model.Bounds, grab model.Point, settings model.Settings, spiral SpiralOptions) (*DragSession, error) {
	start, ok := reg.Get(frameID)
	if !ok {
		return nil, ErrUnknownFrame
	}
	return &DragSession{
		frameID:   frameID,
		reg:       reg,
		bounds:    b,
		settings:  settings,
		spiral:    spiral,
		start:     start,
		committed: start.Center(),
		offset:    model.Point{X: grab.X - start.CenterX, Y: grab.Y - start.CenterY},
		state:     DragDragging,
	}, nil
}

func (s *DragSession) FrameID() string  { return s.frameID }
func (s *DragSession) State() DragState { return s.state }

// Position is the frame's live position: the last committed center.
func (s *DragSession) Position() model.Point { return s.committed }

// Rect is the frame's live footprint.
func (s *DragSession) Rect() model.Rect { return s.start.MoveTo(s.committed) }

// Move advances the frame toward the pointer at plane point p.
func (s *DragSession) Move(p model.Point) (MoveResult, error) {
	if s.state != DragDragging {
		return MoveResult{}, ErrSessionClosed
	}

	origin := s.committed
	result := MoveResult{Position: origin, Rect: s.Rect()}
	if !p.Finite() {
		return result, nil
	}
	target := s.bounds.Clamp(model.Point{X: p.X - s.offset.X, Y: p.Y - s.offset.Y})
	dist := origin.Dist(target)
	if dist == 0 {
		return result, nil
	}

	steps := 1
	if dist > s.settings.MaxStep {
		steps = int(math.Ceil(dist / s.settings.MaxStep))
	}
	stepX := (target.X - origin.X) / float64(steps)
	stepY := (target.Y - origin.Y) / float64(steps)

	cur := origin
	onLine := true
	for i := 1; i <= steps; i++ {
		var want model.Point
		if onLine {
			// Interpolate from the origin so the last step lands exactly on target.
			t := float64(i) / float64(steps)
			want = model.Point{X: origin.X + (target.X-origin.X)*t, Y: origin.Y + (target.Y-origin.Y)*t}
		} else {
			want = model.Point{X: cur.X + stepX, Y: cur.Y + stepY}
		}
		want = s.bounds.Clamp(want)

		next, direct, ok := s.resolveStep(cur, want)
		if !ok {
			// Every later sub-step would start from the same spot with the same
			// displacement and fail the same way.
			result.Stuck = true
			break
		}
		if !direct {
			onLine = false
			result.Stuck = true
		}
		if next != cur {
			result.Path = append(result.Path, next)
		}
		cur = next
	}
	if len(result.Path) > 0 && cur == target {
		result.Stuck = false
	}

	s.committed = cur
	result.Position = cur
	result.Rect = s.Rect()
	return result, nil
}

// resolveStep tries to move from cur to want. If the straight move is
// blocked it tries each single-axis move, in the configured order. direct
// reports whether the straight move succeeded; ok is false if the frame
// cannot move at all.
func (s *DragSession) resolveStep(cur, want model.Point) (next model.Point, direct, ok bool) {
	if s.free(want) {
		return want, true, true
	}

	dx := want.X - cur.X
	dy := want.Y - cur.Y
	xOnly := model.Point{X: want.X, Y: cur.Y}
	yOnly := model.Point{X: cur.X, Y: want.Y}

	xFirst := true
	switch s.settings.FallbackOrder {
	case model.FallbackYFirst:
		xFirst = false
	case model.FallbackXFirst:
	default:
		xFirst = math.Abs(dx) >= math.Abs(dy)
	}

	type axisMove struct {
		p     model.Point
		delta float64
	}
	moves := []axisMove{{xOnly, dx}, {yOnly, dy}}
	if !xFirst {
		moves[0], moves[1] = moves[1], moves[0]
	}
	for _, m := range moves {
		if m.delta != 0 && s.free(m.p) {
			return m.p, false, true
		}
	}
	return cur, false, false
}

func (s *DragSession) free(p model.Point) bool {
	return !s.reg.Conflicts(s.start.MoveTo(p), s.frameID, s.settings.Padding)
}

// End finishes the drag and commits the final footprint. The committed
// position is checked once more; if it is out of bounds or collides, the
// nearest free slot is used instead. If none exists the release changes
// nothing and the frame stays where it was before the drag.
func (s *DragSession) End() (ReleaseResult, error) {
	if s.state != DragDragging {
		return ReleaseResult{}, ErrSessionClosed
	}

	final := s.start.MoveTo(s.bounds.Clamp(s.committed))
	relocated := false
	if !s.bounds.Contains(s.committed) || s.reg.Conflicts(final, s.frameID, s.settings.Padding) {
		found, ok := FindNearest(final, s.reg, s.frameID, s.bounds, s.spiral)
		if !ok {
			s.state = DragIdle
			return ReleaseResult{Rect: s.start}, nil
		}
		final = found
		relocated = true
	}

	if err := s.reg.Update(s.frameID, final); err != nil {
		s.state = DragIdle
		return ReleaseResult{}, err
	}
	s.committed = final.Center()
	s.state = DragCommitted
	return ReleaseResult{
		Rect:      final,
		Moved:     final.Center() != s.start.Center(),
		Relocated: relocated,
	}, nil
}

// Cancel abandons the drag without touching the registry.
func (s *DragSession) Cancel() {
	if s.state == DragDragging {
		s.state = DragIdle
	}
}
