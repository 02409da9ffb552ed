package model

import (
	"time"

	"github.com/google/uuid"
)

// Wall is the bounded plane frames are hung on. Dimensions are in cm.
type Wall struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
	Color  string  `json:"color" toml:"color"`
}

// DefaultWall returns a 5 m x 3 m white wall.
func DefaultWall() Wall {
	return Wall{Width: 500, Height: 300, Color: "#f4f1ea"}
}

// BoundsFor returns the center bounds for a frame of the given size.
func (w Wall) BoundsFor(s Size) Bounds {
	return ComputeBounds(w.Width, w.Height, s.Width, s.Height)
}

// Frame is one picture frame as stored in a layout document.
type Frame struct {
	ID          string      `json:"id" toml:"id"`
	Label       string      `json:"label" toml:"label"`
	Color       string      `json:"color" toml:"color"`
	Size        string      `json:"size" toml:"size"` // "<W>x<H>" in cm, orientation-agnostic
	Orientation Orientation `json:"orientation" toml:"orientation"`
	Image       string      `json:"image,omitempty" toml:"image,omitempty"`
	Position    [3]float64  `json:"position" toml:"position"` // center x, center y, offset from wall (always 0)
}

// NewFrame creates a frame with a fresh ID and no position yet.
func NewFrame(label, size string, o Orientation) Frame {
	return Frame{
		ID:          NewFrameID(),
		Label:       label,
		Color:       "#3e2723",
		Size:        size,
		Orientation: o,
	}
}

// Center returns the frame's center on the wall.
func (f Frame) Center() Point {
	return Point{X: f.Position[0], Y: f.Position[1]}
}

// SetCenter stores c as the frame's position.
func (f *Frame) SetCenter(c Point) {
	f.Position = [3]float64{c.X, c.Y, 0}
}

// Layout is the scene document for one wall.
type Layout struct {
	ID        string  `json:"id" toml:"id"`
	Name      string  `json:"name" toml:"name"`
	Wall      Wall    `json:"wall" toml:"wall"`
	Frames    []Frame `json:"frames" toml:"frames"`
	UpdatedAt string  `json:"updated_at" toml:"updated_at"`
}

func NewLayout() Layout {
	return Layout{
		ID:     uuid.New().String()[:8],
		Name:   "Untitled",
		Wall:   DefaultWall(),
		Frames: []Frame{},
	}
}

// Touch stamps the layout with the current time.
func (l *Layout) Touch() {
	l.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// FallbackOrder picks which single-axis move a drag tries first when the
// straight move is blocked.
type FallbackOrder string

const (
	FallbackLargerFirst FallbackOrder = "larger-first" // Axis with the larger intended displacement first
	FallbackXFirst      FallbackOrder = "x-first"
	FallbackYFirst      FallbackOrder = "y-first"
)

// Settings holds the placement engine tunables. All distances are in cm.
type Settings struct {
	Padding       float64       `json:"padding" envconfig:"PADDING"`                 // Minimum clearance between frames
	MaxStep       float64       `json:"max_step" envconfig:"MAX_STEP"`               // Largest distance tested in one drag step
	RingStep      float64       `json:"ring_step" envconfig:"RING_STEP"`             // Radius increment of the spiral search
	PointsPerRing int           `json:"points_per_ring" envconfig:"POINTS_PER_RING"` // Candidates per spiral ring
	MaxAttempts   int           `json:"max_attempts" envconfig:"MAX_ATTEMPTS"`       // Random draws before the allocator gives up
	FallbackOrder FallbackOrder `json:"fallback_order" envconfig:"FALLBACK_ORDER"`
}

func DefaultSettings() Settings {
	return Settings{
		Padding:       2.0,
		MaxStep:       2.0,
		RingStep:      5.0,
		PointsPerRing: 16,
		MaxAttempts:   200,
		FallbackOrder: FallbackLargerFirst,
	}
}

// Normalized replaces non-positive tunables with their defaults.
func (s Settings) Normalized() Settings {
	d := DefaultSettings()
	if !finite(s.Padding) || s.Padding < 0 {
		s.Padding = d.Padding
	}
	if !finite(s.MaxStep) || s.MaxStep <= 0 {
		s.MaxStep = d.MaxStep
	}
	if !finite(s.RingStep) || s.RingStep <= 0 {
		s.RingStep = d.RingStep
	}
	if s.PointsPerRing <= 0 {
		s.PointsPerRing = d.PointsPerRing
	}
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = d.MaxAttempts
	}
	switch s.FallbackOrder {
	case FallbackLargerFirst, FallbackXFirst, FallbackYFirst:
	default:
		s.FallbackOrder = d.FallbackOrder
	}
	return s
}
