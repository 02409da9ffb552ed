// Package ui provides the WallHang application UI components.
//
// This file defines a custom compact Fyne theme.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// WallHangTheme wraps the default Fyne theme with compact sizing overrides
// so the wall canvas gets most of the window.
type WallHangTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	system  bool
}

// NewWallHangTheme creates a theme that follows the system light/dark variant.
func NewWallHangTheme() *WallHangTheme {
	return &WallHangTheme{
		base:   theme.DefaultTheme(),
		system: true,
	}
}

// ThemeForName maps the config's theme setting ("light", "dark" or
// "system") to a theme.
func ThemeForName(name string) *WallHangTheme {
	t := NewWallHangTheme()
	switch name {
	case "light":
		t.SetVariant(theme.VariantLight)
	case "dark":
		t.SetVariant(theme.VariantDark)
	}
	return t
}

// SetVariant pins the theme to a light or dark variant.
func (t *WallHangTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
	t.system = false
}

// Color delegates to the base theme, using the pinned variant if set.
func (t *WallHangTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.system {
		return t.base.Color(name, variant)
	}
	return t.base.Color(name, t.variant)
}

func (t *WallHangTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *WallHangTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *WallHangTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
