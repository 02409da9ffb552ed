package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallHang/internal/model"
	"github.com/piwi3910/WallHang/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.0f", *val))
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

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	frameSizeEntry := widget.NewEntry()
	frameSizeEntry.SetText(cfg.DefaultFrameSize)
	frameSizeEntry.OnChanged = func(text string) { cfg.DefaultFrameSize = text }

	orientSelect := widget.NewSelect([]string{model.Portrait.String(), model.Landscape.String()}, func(selected string) {
		cfg.DefaultOrientation, _ = model.ParseOrientation(selected)
	})
	orientSelect.SetSelected(cfg.DefaultOrientation.String())

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Auto-Save Interval (min, 0=off)", intEntry(&cfg.AutoSaveInterval)),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Wall Width (cm)", floatEntry(&cfg.DefaultWallWidth)),
		widget.NewFormItem("Default Wall Height (cm)", floatEntry(&cfg.DefaultWallHeight)),
		widget.NewFormItem("Default Frame Size", frameSizeEntry),
		widget.NewFormItem("Default Orientation", orientSelect),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			if _, err := model.ParseSize(cfg.DefaultFrameSize); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			if cfg.DefaultWallWidth <= 0 || cfg.DefaultWallHeight <= 0 {
				dialog.ShowError(fmt.Errorf("wall width and height must be > 0"), a.window)
				return
			}
			a.config = cfg
			a.app.Settings().SetTheme(ThemeForName(cfg.Theme))
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 450))
	d.Show()
}

// showImportExportDialog displays the backup import/export dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.catalog, a.templates); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("wallhang-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your settings, frame catalog and templates.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := project.ImportAllData(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.catalog = backup.Catalog
					a.templates = backup.Templates
					if err := a.saveAll(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported data: %w", err), a.window)
						return
					}
					a.app.Settings().SetTheme(ThemeForName(a.config.Theme))
					a.sizeSelect.SetOptions(a.catalog.Names())
					a.SetupMenus()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings, the frame catalog and layout templates to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}

// saveAll persists the config, catalog and templates.
func (a *App) saveAll() error {
	if err := a.saveConfig(); err != nil {
		return err
	}
	if err := project.SaveCatalog(a.catalogPath, a.catalog); err != nil {
		return err
	}
	return project.SaveDefaultTemplates(a.templates)
}
