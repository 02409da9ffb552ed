package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/WallHang/internal/model"
)

func TestFallbackOrderLabels_RoundTrip(t *testing.T) {
	for _, o := range []model.FallbackOrder{model.FallbackLargerFirst, model.FallbackXFirst, model.FallbackYFirst} {
		assert.Equal(t, o, fallbackOrderFromLabel(fallbackOrderLabel(o)))
	}
	assert.Len(t, fallbackOrderOptions(), 3)
}

func TestFallbackOrderLabels_Unknown(t *testing.T) {
	assert.Equal(t, "Larger movement first", fallbackOrderLabel(model.FallbackOrder("diagonal")))
	assert.Equal(t, model.FallbackLargerFirst, fallbackOrderFromLabel("no such label"))
}

func TestThemeForName(t *testing.T) {
	dark := ThemeForName("dark")
	assert.False(t, dark.system)
	assert.Equal(t, theme.VariantDark, dark.variant)

	light := ThemeForName("light")
	assert.False(t, light.system)
	assert.Equal(t, theme.VariantLight, light.variant)

	assert.True(t, ThemeForName("system").system)
	assert.True(t, ThemeForName("").system)
}
