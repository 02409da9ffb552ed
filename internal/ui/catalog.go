package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallHang/internal/model"
	"github.com/piwi3910/WallHang/internal/project"
)

// ─── Frame Catalog Dialog ──────────────────────────────────

func (a *App) showCatalogDialog() {
	sizeList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		sizeList.RemoveAll()

		if len(a.catalog.Sizes) == 0 {
			sizeList.Add(widget.NewLabel("No frame sizes defined."))
			return
		}

		header := container.NewGridWithColumns(5,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Size (cm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Orientation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		)
		sizeList.Add(header)
		sizeList.Add(widget.NewSeparator())

		for i := range a.catalog.Sizes {
			idx := i
			cs := a.catalog.Sizes[idx]
			row := container.NewGridWithColumns(5,
				widget.NewLabel(cs.Name),
				widget.NewLabel(cs.Size),
				widget.NewLabel(cs.Orientation.String()),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.showCatalogSizeDialog(idx, refreshList)
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.catalog.Sizes = append(a.catalog.Sizes[:idx], a.catalog.Sizes[idx+1:]...)
					a.saveCatalog()
					refreshList()
				}),
			)
			sizeList.Add(row)
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Size", theme.ContentAddIcon(), func() {
		a.showCatalogSizeDialog(-1, refreshList)
	})

	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importCatalog(refreshList)
	})

	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		a.exportCatalog()
	})

	toolbar := container.NewHBox(addBtn, layout.NewSpacer(), importBtn, exportBtn)

	content := container.NewBorder(
		toolbar,
		nil, nil, nil,
		container.NewVScroll(sizeList),
	)

	d := dialog.NewCustom("Frame Catalog", "Close", content, a.window)
	d.Resize(fyne.NewSize(600, 500))
	d.Show()
}

// showCatalogSizeDialog adds a size (idx < 0) or edits the size at idx.
func (a *App) showCatalogSizeDialog(idx int, onDone func()) {
	cs := model.NewCatalogSize("", "", model.Portrait)
	title, confirm := "Add Frame Size", "Add"
	if idx >= 0 {
		cs = a.catalog.Sizes[idx]
		title, confirm = "Edit Frame Size", "Save"
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("e.g. A3 poster")
	nameEntry.SetText(cs.Name)

	sizeEntry := widget.NewEntry()
	sizeEntry.SetPlaceHolder("e.g. 30x42")
	sizeEntry.SetText(cs.Size)

	orientSelect := widget.NewSelect([]string{model.Portrait.String(), model.Landscape.String()}, nil)
	orientSelect.SetSelected(cs.Orientation.String())

	form := dialog.NewForm(title, confirm, "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Size (cm)", sizeEntry),
			widget.NewFormItem("Orientation", orientSelect),
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
			cs.Name = strings.TrimSpace(nameEntry.Text)
			if cs.Name == "" {
				cs.Name = size
			}
			cs.Size = size
			cs.Orientation, _ = model.ParseOrientation(orientSelect.Selected)

			if idx >= 0 {
				a.catalog.Sizes[idx] = cs
			} else {
				a.catalog.Sizes = append(a.catalog.Sizes, cs)
			}
			a.saveCatalog()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 250))
	form.Show()
}

// ─── Import / Export ───────────────────────────────────────

func (a *App) importCatalog(onDone func()) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		merged, added, err := project.ImportCatalog(reader.URI().Path(), a.catalog)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.catalog = merged
		a.saveCatalog()
		onDone()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Added %d size(s). The catalog now holds %d frame sizes.", added, len(a.catalog.Sizes)),
			a.window)
	}, a.window)
}

func (a *App) exportCatalog() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := project.SaveCatalog(writer.URI().Path(), a.catalog); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Catalog exported to %s", writer.URI().Path()),
				a.window)
		}
	}, a.window)
	d.SetFileName("catalog.json")
	d.Show()
}

// saveCatalog persists the catalog and updates the toolbar size picker.
func (a *App) saveCatalog() {
	if a.sizeSelect != nil {
		a.sizeSelect.SetOptions(a.catalog.Names())
	}
	if a.catalogPath == "" {
		return
	}
	if err := project.SaveCatalog(a.catalogPath, a.catalog); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save catalog: %w", err), a.window)
	}
}
