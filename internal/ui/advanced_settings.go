package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallHang/internal/model"
)

// fallbackOrderLabels names the drag fallback orders in the settings dialog.
var fallbackOrderLabels = []struct {
	Order model.FallbackOrder
	Label string
}{
	{model.FallbackLargerFirst, "Larger movement first"},
	{model.FallbackXFirst, "Horizontal first"},
	{model.FallbackYFirst, "Vertical first"},
}

func fallbackOrderOptions() []string {
	opts := make([]string, len(fallbackOrderLabels))
	for i, fl := range fallbackOrderLabels {
		opts[i] = fl.Label
	}
	return opts
}

func fallbackOrderLabel(o model.FallbackOrder) string {
	for _, fl := range fallbackOrderLabels {
		if fl.Order == o {
			return fl.Label
		}
	}
	return fallbackOrderLabels[0].Label
}

func fallbackOrderFromLabel(label string) model.FallbackOrder {
	for _, fl := range fallbackOrderLabels {
		if fl.Label == label {
			return fl.Order
		}
	}
	return model.FallbackLargerFirst
}

// showPlacementSettingsDialog edits the placement engine tunables. Applying
// them re-settles the open layout under the new rules.
func (a *App) showPlacementSettingsDialog() {
	s := a.config.Settings

	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.1f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%d", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	spacingSection := widget.NewCard("Spacing",
		"Minimum gap kept between any two frames",
		container.NewGridWithColumns(2,
			widget.NewLabel("Padding (cm)"), floatEntry(&s.Padding),
		))

	fallbackSelect := widget.NewSelect(fallbackOrderOptions(), func(selected string) {
		s.FallbackOrder = fallbackOrderFromLabel(selected)
	})
	fallbackSelect.SetSelected(fallbackOrderLabel(s.FallbackOrder))

	dragSection := widget.NewCard("Dragging",
		"How a dragged frame moves around other frames",
		container.NewGridWithColumns(2,
			widget.NewLabel("Step Length (cm)"), floatEntry(&s.MaxStep),
			widget.NewLabel("Slide Direction"), fallbackSelect,
		))

	searchSection := widget.NewCard("Free Spot Search",
		"Used when a frame is dropped on another or the wall changes size",
		container.NewGridWithColumns(2,
			widget.NewLabel("Ring Spacing (cm)"), floatEntry(&s.RingStep),
			widget.NewLabel("Points per Ring"), intEntry(&s.PointsPerRing),
			widget.NewLabel("Random Placement Attempts"), intEntry(&s.MaxAttempts),
		))

	content := container.NewVScroll(container.NewVBox(
		spacingSection,
		dragSection,
		searchSection,
	))

	d := dialog.NewCustomConfirm("Placement Settings", "Apply", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		a.applySettings(s.Normalized())
	}, a.window)
	d.Resize(fyne.NewSize(480, 480))
	d.Show()
}

// applySettings stores new engine settings and rebuilds the planner with
// them.
func (a *App) applySettings(s model.Settings) {
	before := a.planner.Layout()
	a.config.Settings = s
	if err := a.saveConfig(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
	}
	a.resetPlanner(before)
	a.refresh()
}
