package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDimensions is returned when a frame size label does not parse
// into two positive numbers.
var ErrInvalidDimensions = errors.New("invalid frame dimensions")

// DefaultFrameSize is used in place of a size label that cannot be parsed.
var DefaultFrameSize = Size{Width: 30, Height: 40}

// Orientation decides which axis carries a frame's longer side.
type Orientation string

const (
	Portrait  Orientation = "portrait"  // Longer side vertical
	Landscape Orientation = "landscape" // Longer side horizontal
)

func (o Orientation) String() string {
	if o == Landscape {
		return "Landscape"
	}
	return "Portrait"
}

// ParseOrientation maps user input to an Orientation. Unknown values fall
// back to Portrait and report false.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portrait", "p", "vertical", "v", "":
		return Portrait, true
	case "landscape", "l", "horizontal", "h":
		return Landscape, true
	default:
		return Portrait, false
	}
}

// Size is a frame's outer dimensions in cm.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ParseSize parses a size label of the form "<W>x<H>" in cm, e.g. "70x100".
// An upper-case X or a multiplication sign also works as the separator.
func ParseSize(label string) (Size, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	normalized = strings.ReplaceAll(normalized, "×", "x")
	parts := strings.Split(normalized, "x")
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidDimensions, label)
	}
	w, errW := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errW != nil || errH != nil || !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidDimensions, label)
	}
	return Size{Width: w, Height: h}, nil
}

// Label formats the size the way ParseSize reads it.
func (s Size) Label() string {
	return strconv.FormatFloat(s.Width, 'f', -1, 64) + "x" + strconv.FormatFloat(s.Height, 'f', -1, 64)
}

// Oriented reorders the two dimensions for the given orientation. The
// label is orientation-agnostic, so "70x100" and "100x70" give the same
// result.
func (s Size) Oriented(o Orientation) Size {
	short := math.Min(s.Width, s.Height)
	long := math.Max(s.Width, s.Height)
	if o == Landscape {
		return Size{Width: long, Height: short}
	}
	return Size{Width: short, Height: long}
}
