package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/piwi3910/WallHang/internal/engine"
	"github.com/piwi3910/WallHang/internal/export"
	frameimporter "github.com/piwi3910/WallHang/internal/importer"
	"github.com/piwi3910/WallHang/internal/model"
	"github.com/piwi3910/WallHang/internal/project"
	"github.com/piwi3910/WallHang/internal/ui/widgets"
)

const maxRecentLayouts = 10

// App holds all application state and UI references.
type App struct {
	app    fyne.App
	window fyne.Window
	logger *log.Logger

	config      model.AppConfig
	catalog     model.Catalog
	catalogPath string
	templates   model.TemplateStore

	planner    *engine.Planner
	layoutPath string
	dirty      bool
	stopSave   chan struct{}

	// UI references for dynamic updates
	canvas       *widgets.WallCanvas
	framesList   *fyne.Container
	statusLabel  *widget.Label
	sizeSelect   *widget.Select
	orientSelect *widget.Select
	labelEntry   *widget.Entry
}

func NewApp(application fyne.App, window fyne.Window) *App {
	a := &App{
		app:    application,
		window: window,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Prefix:          "wallhang",
		}),
	}

	cfg, err := project.LoadConfig(project.DefaultConfigPath())
	if err != nil {
		a.logger.Warn("using default config", "err", err)
		cfg = model.DefaultAppConfig()
	}
	a.config = cfg
	application.Settings().SetTheme(ThemeForName(cfg.Theme))

	a.catalog, a.catalogPath, err = project.LoadOrCreateCatalog()
	if err != nil {
		a.logger.Warn("frame catalog unavailable", "err", err)
		a.catalog = model.DefaultCatalog()
	}
	a.templates, err = project.LoadDefaultTemplates()
	if err != nil {
		a.logger.Warn("layout templates unavailable", "err", err)
		a.templates = model.NewTemplateStore()
	}

	a.setLayout(cfg.NewLayout(), "")
	a.startAutoSave()
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recent := fyne.NewMenuItem("Open Recent", nil)
	var recentItems []*fyne.MenuItem
	for _, path := range a.config.RecentLayouts {
		p := path
		recentItems = append(recentItems, fyne.NewMenuItem(filepath.Base(p), func() {
			a.confirmDiscard(func() { a.openLayoutPath(p) })
		}))
	}
	if len(recentItems) == 0 {
		none := fyne.NewMenuItem("No recent layouts", nil)
		none.Disabled = true
		recentItems = append(recentItems, none)
	}
	recent.ChildMenu = fyne.NewMenu("", recentItems...)

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Layout", func() {
			a.confirmDiscard(func() {
				a.setLayout(a.config.NewLayout(), "")
			})
		}),
		fyne.NewMenuItem("Open Layout...", func() {
			a.confirmDiscard(a.openLayout)
		}),
		recent,
		fyne.NewMenuItem("Save Layout", func() {
			a.saveLayout()
		}),
		fyne.NewMenuItem("Save Layout As...", func() {
			a.saveLayoutAs()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Frames...", func() {
			a.importFrames()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Hanging Plan (PDF)...", func() {
			a.exportFile("hanging plan", ".pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Frame Labels (PDF)...", func() {
			a.exportFile("labels", "-labels.pdf", export.ExportLabels)
		}),
		fyne.NewMenuItem("Export Hanging Schedule (XLSX)...", func() {
			a.exportFile("hanging schedule", ".xlsx", export.ExportSchedule)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Edit Selected Frame...", a.showEditFrameDialog),
		fyne.NewMenuItem("Delete Selected Frame", a.deleteSelected),
		fyne.NewMenuItem("Clear All Frames", a.clearFrames),
	)

	wallMenu := fyne.NewMenu("Wall",
		fyne.NewMenuItem("Wall Size...", a.showWallDialog),
		fyne.NewMenuItem("Check Layout", a.checkLayout),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save as Template...", a.showSaveTemplateDialog),
		fyne.NewMenuItem("Templates...", a.showTemplateManager),
	)

	adminMenu := fyne.NewMenu("Admin",
		fyne.NewMenuItem("Frame Catalog...", a.showCatalogDialog),
		fyne.NewMenuItem("Placement Settings...", a.showPlacementSettingsDialog),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, wallMenu, adminMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About WallHang",
		"WallHang — Picture Wall Planner\n\n"+
			"Arrange picture frames on a wall without overlaps\n"+
			"and print a hanging plan with exact hook positions.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.canvas = widgets.NewWallCanvas(a.planner)
	a.canvas.OnSelect = func(string) { a.refreshFramesList() }
	a.canvas.OnDragStart = func(id string) { a.logger.Debug("drag started", "frame", id) }
	a.canvas.OnRelease = a.onRelease
	a.canvas.OnError = func(err error) { a.setStatus(err.Error()) }

	a.framesList = container.NewVBox()
	a.statusLabel = widget.NewLabel("")
	a.refreshFramesList()
	a.refreshStatus()

	sidebar := container.NewBorder(
		widget.NewLabelWithStyle("Frames", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewVScroll(a.framesList),
	)

	split := container.NewHSplit(a.canvas, sidebar)
	split.Offset = 0.72

	a.setupShortcuts()

	content := container.NewBorder(a.buildToolbar(), a.statusLabel, nil, nil, split)
	return withTooltipLayer(content, a.window.Canvas())
}

// Shutdown stops background work and stores the config.
func (a *App) Shutdown() {
	if a.stopSave != nil {
		close(a.stopSave)
		a.stopSave = nil
	}
	if err := a.saveConfig(); err != nil {
		a.logger.Error("failed to save config", "err", err)
	}
}

// ─── Toolbar ───────────────────────────────────────────────

func (a *App) buildToolbar() fyne.CanvasObject {
	a.sizeSelect = widget.NewSelect(a.catalog.Names(), func(name string) {
		if cs := a.catalog.FindByName(name); cs != nil {
			a.orientSelect.SetSelected(cs.Orientation.String())
		}
	})
	a.sizeSelect.PlaceHolder = "Frame size"
	if cs := a.defaultCatalogSize(); cs != nil {
		a.sizeSelect.Selected = cs.Name
	}

	a.orientSelect = widget.NewSelect([]string{model.Portrait.String(), model.Landscape.String()}, nil)
	a.orientSelect.SetSelected(a.config.DefaultOrientation.String())

	a.labelEntry = widget.NewEntry()
	a.labelEntry.SetPlaceHolder("Label (optional)")

	return container.NewHBox(
		widget.NewLabel("Size"), a.sizeSelect,
		a.orientSelect,
		container.NewGridWrap(fyne.NewSize(180, a.labelEntry.MinSize().Height), a.labelEntry),
		newIconButtonWithTooltip(theme.ContentAddIcon(), "Add frame at a random free spot", a.addFrame),
		newIconButtonWithTooltip(theme.DeleteIcon(), "Delete selected frame", a.deleteSelected),
		newIconButtonWithTooltip(theme.DocumentCreateIcon(), "Edit selected frame", a.showEditFrameDialog),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.ZoomFitIcon(), "Wall size", a.showWallDialog),
		newIconButtonWithTooltip(theme.DocumentPrintIcon(), "Export hanging plan", func() {
			a.exportFile("hanging plan", ".pdf", export.ExportPDF)
		}),
		layout.NewSpacer(),
	)
}

// defaultCatalogSize finds the catalog entry for the configured default
// frame size.
func (a *App) defaultCatalogSize() *model.CatalogSize {
	for i := range a.catalog.Sizes {
		if a.catalog.Sizes[i].Size == a.config.DefaultFrameSize {
			return &a.catalog.Sizes[i]
		}
	}
	if len(a.catalog.Sizes) > 0 {
		return &a.catalog.Sizes[0]
	}
	return nil
}

// currentSpec builds a frame spec from the toolbar.
func (a *App) currentSpec() model.FrameSpec {
	size := a.config.DefaultFrameSize
	if cs := a.catalog.FindByName(a.sizeSelect.Selected); cs != nil {
		size = cs.Size
	}
	o, _ := model.ParseOrientation(a.orientSelect.Selected)
	return model.FrameSpec{Label: strings.TrimSpace(a.labelEntry.Text), Size: size, Orientation: o}
}

func (a *App) setupShortcuts() {
	c := a.window.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) { a.saveLayout() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) { a.addFrame() })
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			a.deleteSelected()
		case fyne.KeyEscape:
			a.planner.ClearSelection()
			a.refresh()
		}
	})
}

// ─── Layout state ──────────────────────────────────────────

// setLayout replaces the planner with one built from layout. Frames that no
// longer fit are reported and dropped.
func (a *App) setLayout(l model.Layout, path string) {
	a.resetPlanner(l)
	a.layoutPath = path
	a.dirty = false
	a.refresh()
}

func (a *App) resetPlanner(l model.Layout) {
	p, unplaced := engine.NewPlanner(l, a.config.Settings, a.logger, nil)
	p.OnChange = func() { a.dirty = true }
	a.planner = p
	if a.canvas != nil {
		a.canvas.SetController(p)
	}
	if len(unplaced) > 0 {
		names := make([]string, len(unplaced))
		for i, f := range unplaced {
			names[i] = frameName(f)
		}
		dialog.ShowInformation("Frames Dropped",
			fmt.Sprintf("%d frame(s) did not fit on the wall and were left out:\n\n%s",
				len(unplaced), strings.Join(names, "\n")),
			a.window)
	}
}

// apply runs fn and refreshes the view. fn reports whether it changed
// anything.
func (a *App) apply(label string, fn func() bool) {
	if fn() {
		a.logger.Debug("layout changed", "action", label)
	}
	a.refresh()
}

func (a *App) onRelease(id string, res engine.ReleaseResult) {
	if res.Moved {
		a.logger.Debug("frame moved", "frame", id, "x", res.Rect.CenterX, "y", res.Rect.CenterY)
	}
	if res.Relocated {
		a.setStatus("That spot is taken; the frame moved to the nearest free spot.")
	} else {
		a.refreshStatus()
	}
	a.refreshFramesList()
}

func (a *App) refresh() {
	if a.canvas != nil {
		a.canvas.Refresh()
	}
	a.refreshFramesList()
	a.refreshStatus()
}

func (a *App) setStatus(msg string) {
	if a.statusLabel != nil {
		a.statusLabel.SetText(msg)
	}
}

func (a *App) refreshStatus() {
	wall := a.planner.Wall()
	name := a.planner.Layout().Name
	if a.layoutPath != "" {
		name = a.layoutPath
	}
	if a.dirty {
		name += " *"
	}
	a.setStatus(fmt.Sprintf("%s  |  Wall %.0f x %.0f cm  |  %d frame(s)",
		name, wall.Width, wall.Height, len(a.planner.Frames())))
}

func frameName(f model.Frame) string {
	if f.Label != "" {
		return fmt.Sprintf("%s (%s)", f.Label, f.Size)
	}
	return f.Size
}

// ─── Frames list ───────────────────────────────────────────

func (a *App) refreshFramesList() {
	if a.framesList == nil {
		return
	}
	a.framesList.RemoveAll()

	points := export.HangingPoints(a.planner.Layout())
	if len(points) == 0 {
		a.framesList.Add(widget.NewLabel("No frames yet. Pick a size and click +."))
		return
	}

	selected := a.planner.Selected()
	for _, hp := range points {
		id := hp.FrameID
		title := fmt.Sprintf("%d. %s", hp.Number, hp.Label)
		if hp.Label == "" {
			title = fmt.Sprintf("%d. %s", hp.Number, hp.Size)
		}
		style := fyne.TextStyle{Bold: id == selected}
		row := container.NewBorder(nil, nil, nil,
			container.NewHBox(
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					_ = a.planner.Select(id)
					a.showEditFrameDialog()
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.removeFrame(id)
				}),
			),
			container.NewVBox(
				widget.NewLabelWithStyle(title, fyne.TextAlignLeading, style),
				widget.NewLabel(fmt.Sprintf("%s %s, hook %.1f cm from left, %.1f cm up",
					hp.Size, strings.ToLower(hp.Orientation.String()), hp.FromLeft, hp.FromFloor)),
			),
		)
		a.framesList.Add(row)
		a.framesList.Add(widget.NewSeparator())
	}
}

// ─── Frame actions ─────────────────────────────────────────

func (a *App) showWallFull(size string) {
	dialog.ShowInformation("Wall is full",
		fmt.Sprintf("There is no free spot for a %s frame.\n\nRemove a frame or make the wall larger.", size),
		a.window)
}

func (a *App) addFrame() {
	spec := a.currentSpec()
	a.apply("Add Frame", func() bool {
		f, ok := a.planner.AddFrame(spec)
		if !ok {
			a.showWallFull(spec.Size)
			return false
		}
		_ = a.planner.Select(f.ID)
		return true
	})
	a.labelEntry.SetText("")
}

func (a *App) removeFrame(id string) {
	a.apply("Delete Frame", func() bool {
		return a.planner.RemoveFrame(id)
	})
}

func (a *App) deleteSelected() {
	if id := a.planner.Selected(); id != "" {
		a.removeFrame(id)
	}
}

func (a *App) clearFrames() {
	if len(a.planner.Frames()) == 0 {
		return
	}
	dialog.ShowConfirm("Clear All Frames", "Remove every frame from the wall?", func(ok bool) {
		if !ok {
			return
		}
		a.apply("Clear Frames", func() bool {
			for _, f := range a.planner.Frames() {
				a.planner.RemoveFrame(f.ID)
			}
			return true
		})
	}, a.window)
}

func (a *App) showEditFrameDialog() {
	id := a.planner.Selected()
	f, ok := a.planner.Frame(id)
	if !ok {
		dialog.ShowInformation("No frame selected", "Click a frame on the wall first.", a.window)
		return
	}

	labelEntry := widget.NewEntry()
	labelEntry.SetText(f.Label)

	sizeEntry := widget.NewEntry()
	sizeEntry.SetText(f.Size)
	sizeEntry.SetPlaceHolder("e.g. 50x70")

	orientSelect := widget.NewSelect([]string{model.Portrait.String(), model.Landscape.String()}, nil)
	orientSelect.SetSelected(f.Orientation.String())

	colorEntry := widget.NewEntry()
	colorEntry.SetText(f.Color)
	colorEntry.SetPlaceHolder("#3e2723")

	imageEntry := widget.NewEntry()
	imageEntry.SetText(f.Image)

	form := dialog.NewForm("Edit Frame", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Size (cm)", sizeEntry),
			widget.NewFormItem("Orientation", orientSelect),
			widget.NewFormItem("Frame Color", colorEntry),
			widget.NewFormItem("Image", imageEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			size := strings.TrimSpace(sizeEntry.Text)
			if _, err := model.ParseSize(size); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			o, _ := model.ParseOrientation(orientSelect.Selected)
			a.apply("Edit Frame", func() bool {
				if size != f.Size || o != f.Orientation {
					if !a.planner.ResizeFrame(id, size, o) {
						a.showWallFull(size)
						return false
					}
				}
				return a.planner.UpdateFrame(id, labelEntry.Text, colorEntry.Text, imageEntry.Text)
			})
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 350))
	form.Show()
}

// ─── Wall ──────────────────────────────────────────────────

// wallPreset is a common wall size for quick selection.
type wallPreset struct {
	Label  string
	Width  float64
	Height float64
}

var wallPresets = []wallPreset{
	{Label: "Custom", Width: 0, Height: 0},
	{Label: "Hallway (300 x 250)", Width: 300, Height: 250},
	{Label: "Living room (500 x 260)", Width: 500, Height: 260},
	{Label: "Above sofa (240 x 150)", Width: 240, Height: 150},
	{Label: "Staircase (400 x 500)", Width: 400, Height: 500},
}

func (a *App) showWallDialog() {
	wall := a.planner.Wall()

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%.0f", wall.Width))
	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%.0f", wall.Height))

	presetNames := make([]string, len(wallPresets))
	for i, p := range wallPresets {
		presetNames[i] = p.Label
	}
	presetSelect := widget.NewSelect(presetNames, func(selected string) {
		for _, p := range wallPresets {
			if p.Label == selected && p.Width > 0 {
				widthEntry.SetText(fmt.Sprintf("%.0f", p.Width))
				heightEntry.SetText(fmt.Sprintf("%.0f", p.Height))
				break
			}
		}
	})
	presetSelect.PlaceHolder = "Select a preset size..."

	form := dialog.NewForm("Wall Size", "Apply", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Preset", presetSelect),
			widget.NewFormItem("Width (cm)", widthEntry),
			widget.NewFormItem("Height (cm)", heightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			if w <= 0 || h <= 0 {
				dialog.ShowError(fmt.Errorf("width and height must be > 0"), a.window)
				return
			}
			a.resizeWall(w, h)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 250))
	form.Show()
}

func (a *App) resizeWall(w, h float64) bool {
	var unplaced []string
	a.apply("Resize Wall", func() bool {
		var ok bool
		unplaced, ok = a.planner.ResizeWall(w, h)
		return ok
	})
	if len(unplaced) == 0 {
		return true
	}
	names := make([]string, 0, len(unplaced))
	for _, id := range unplaced {
		if f, ok := a.planner.Frame(id); ok {
			names = append(names, frameName(f))
		}
	}
	dialog.ShowInformation("Wall too small",
		fmt.Sprintf("A %.0f x %.0f cm wall has no room for:\n\n%s\n\nThe wall was not changed.", w, h, strings.Join(names, "\n")),
		a.window)
	return false
}

func (a *App) checkLayout() {
	violations := a.planner.Validate()
	if len(violations) == 0 {
		dialog.ShowInformation("Layout OK", "No frames overlap and every frame is on the wall.", a.window)
		return
	}
	lines := make([]string, len(violations))
	for i, v := range violations {
		lines[i] = v.String()
	}
	dialog.ShowError(errors.New(strings.Join(lines, "\n")), a.window)
}

// ─── Files ─────────────────────────────────────────────────

// confirmDiscard runs next, asking first if there are unsaved changes.
func (a *App) confirmDiscard(next func()) {
	if !a.dirty {
		next()
		return
	}
	dialog.ShowConfirm("Unsaved Changes", "Discard changes to the current layout?", func(ok bool) {
		if ok {
			next()
		}
	}, a.window)
}

func (a *App) openLayout() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openLayoutPath(reader.URI().Path())
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{project.LayoutExt, ".json", ".toml"}))
	d.Show()
}

func (a *App) openLayoutPath(path string) {
	l, err := project.LoadLayout(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.setLayout(l, path)
	a.rememberRecent(path)
}

func (a *App) rememberRecent(path string) {
	a.config.AddRecent(path, maxRecentLayouts)
	if err := a.saveConfig(); err != nil {
		a.logger.Warn("failed to save recent layouts", "err", err)
	}
	a.SetupMenus()
}

func (a *App) saveLayout() {
	if a.layoutPath == "" {
		a.saveLayoutAs()
		return
	}
	a.writeLayout(a.layoutPath)
}

func (a *App) saveLayoutAs() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if a.writeLayout(path) {
			a.layoutPath = path
			a.rememberRecent(path)
			a.refreshStatus()
		}
	}, a.window)
	d.SetFileName(a.planner.Layout().Name + project.LayoutExt)
	d.Show()
}

func (a *App) writeLayout(path string) bool {
	if err := project.SaveLayout(path, a.planner.Layout()); err != nil {
		dialog.ShowError(err, a.window)
		return false
	}
	a.dirty = false
	a.refreshStatus()
	return true
}

// startAutoSave saves the open layout every AutoSaveInterval minutes.
// Layouts that were never saved are skipped.
func (a *App) startAutoSave() {
	if a.config.AutoSaveInterval <= 0 {
		return
	}
	a.stopSave = make(chan struct{})
	stop := a.stopSave
	ticker := time.NewTicker(time.Duration(a.config.AutoSaveInterval) * time.Minute)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fyne.Do(func() {
					if a.dirty && a.layoutPath != "" {
						if err := project.SaveLayout(a.layoutPath, a.planner.Layout()); err != nil {
							a.logger.Error("auto-save failed", "path", a.layoutPath, "err", err)
							return
						}
						a.dirty = false
						a.refreshStatus()
					}
				})
			}
		}
	}()
}

// ─── Import / Export ───────────────────────────────────────

func (a *App) importFrames() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		var result frameimporter.ImportResult
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xlsx", ".xlsm":
			result = frameimporter.ImportExcel(path)
		case ".dxf":
			result = frameimporter.ImportDXF(path, a.planner.Wall())
		default:
			result = frameimporter.ImportCSV(path)
		}
		a.handleImportResult(result)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".txt", ".xlsx", ".xlsm", ".dxf"}))
	d.Show()
}

func (a *App) handleImportResult(result frameimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}
	for _, w := range result.Warnings {
		a.logger.Warn("import", "warning", w)
	}
	if len(result.Frames) == 0 {
		return
	}

	placed, full := 0, 0
	a.apply("Import Frames", func() bool {
		if w := result.Wall; w != nil {
			if _, ok := a.planner.ResizeWall(w.Width, w.Height); !ok {
				a.logger.Warn("kept current wall, drawing's wall is too small", "width", w.Width, "height", w.Height)
			}
		}
		for _, f := range result.Frames {
			var ok bool
			if f.HasPosition {
				_, ok = a.planner.AddFrameAt(f.Spec, f.Position)
			} else {
				_, ok = a.planner.AddFrame(f.Spec)
			}
			if ok {
				placed++
			} else {
				full++
			}
		}
		return placed > 0
	})

	msg := fmt.Sprintf("Imported %d frame(s).", placed)
	if full > 0 {
		msg += fmt.Sprintf("\n\nThe wall is full: %d frame(s) could not be placed.", full)
	}
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\n%d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

// exportFile asks for a destination and writes the current layout with fn.
func (a *App) exportFile(what, suffix string, fn func(path string, l model.Layout) error) {
	l := a.planner.Layout()
	if len(l.Frames) == 0 {
		dialog.ShowInformation("Nothing to export", "Add at least one frame first.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := fn(path, l); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export %s: %w", what, err), a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved %s to %s", what, path), a.window)
	}, a.window)
	d.SetFileName(l.Name + suffix)
	d.Show()
}
