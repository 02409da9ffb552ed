package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/WallHang/internal/model"
)

func TestValidateLayout_Clean(t *testing.T) {
	layout := model.NewLayout()
	layout.Frames = []model.Frame{storedFrame("20x20", 0, 100), storedFrame("20x20", 50, 100)}
	assert.Empty(t, ValidateLayout(layout, model.DefaultSettings()))
}

func TestValidateLayout_Overlap(t *testing.T) {
	layout := model.NewLayout()
	a := storedFrame("20x20", 0, 100)
	b := storedFrame("20x20", 23, 100) // 3 cm gap, needs more than 2
	c := storedFrame("20x20", 21, 100) // 1 cm gap
	layout.Frames = []model.Frame{a, b, c}

	v := ValidateLayout(layout, model.DefaultSettings())
	assert.Equal(t, []Violation{
		{Kind: ViolationOverlap, FrameID: a.ID, OtherID: c.ID},
		{Kind: ViolationOverlap, FrameID: b.ID, OtherID: c.ID},
	}, v)
	assert.Contains(t, v[0].String(), "overlaps")
}

func TestValidateLayout_OutOfBounds(t *testing.T) {
	layout := model.NewLayout()
	f := storedFrame("20x20", 245, 100) // max center x is 240
	layout.Frames = []model.Frame{f}

	v := ValidateLayout(layout, model.DefaultSettings())
	assert.Equal(t, []Violation{{Kind: ViolationOutOfBounds, FrameID: f.ID}}, v)
	assert.Contains(t, v[0].String(), "outside the wall")
}

func TestValidateLayout_BadSize(t *testing.T) {
	layout := model.NewLayout()
	f := storedFrame("huge", 0, 100)
	layout.Frames = []model.Frame{f}

	v := ValidateLayout(layout, model.DefaultSettings())
	assert.Equal(t, []Violation{{Kind: ViolationBadSize, FrameID: f.ID}}, v)
}

func TestValidateLayout_LandscapeUsesRotatedBounds(t *testing.T) {
	layout := model.NewLayout()
	f := storedFrame("20x40", 235, 100)
	layout.Frames = []model.Frame{f}
	assert.Empty(t, ValidateLayout(layout, model.DefaultSettings()))

	layout.Frames[0].Orientation = model.Landscape
	assert.Len(t, ValidateLayout(layout, model.DefaultSettings()), 1)
}
