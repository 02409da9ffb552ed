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

// showSaveTemplateDialog stores the current frame set as a template.
func (a *App) showSaveTemplateDialog() {
	l := a.planner.Layout()
	if len(l.Frames) == 0 {
		dialog.ShowInformation("Nothing to save", "Add frames before saving a template.", a.window)
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(l.Name)
	descEntry := widget.NewMultiLineEntry()
	descEntry.SetPlaceHolder("Optional description")

	form := dialog.NewForm("Save as Template", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				dialog.ShowError(fmt.Errorf("template name is required"), a.window)
				return
			}
			if a.templates.FindByName(name) != nil {
				dialog.ShowError(fmt.Errorf("a template named %q already exists", name), a.window)
				return
			}
			a.templates.Add(model.NewLayoutTemplate(name, descEntry.Text, l))
			a.saveTemplates()
			a.setStatus(fmt.Sprintf("Saved template %q with %d frame(s)", name, len(l.Frames)))
		},
		a.window,
	)
	form.Resize(fyne.NewSize(420, 280))
	form.Show()
}

// showTemplateManager lists templates with apply and delete actions.
func (a *App) showTemplateManager() {
	list := container.NewVBox()
	var d dialog.Dialog
	var refreshList func()

	refreshList = func() {
		list.RemoveAll()
		if len(a.templates.Templates) == 0 {
			list.Add(widget.NewLabel("No templates yet. Use Wall > Save as Template."))
			return
		}
		for _, t := range a.templates.Templates {
			tmpl := t
			info := fmt.Sprintf("%d frame(s) on %.0f x %.0f cm", len(tmpl.Frames), tmpl.Wall.Width, tmpl.Wall.Height)
			if tmpl.Description != "" {
				info += ": " + tmpl.Description
			}
			row := container.NewBorder(nil, nil, nil,
				container.NewHBox(
					widget.NewButtonWithIcon("Apply", theme.ConfirmIcon(), func() {
						d.Hide()
						a.applyTemplate(tmpl)
					}),
					widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
						a.templates.Remove(tmpl.ID)
						a.saveTemplates()
						refreshList()
					}),
				),
				container.NewVBox(
					widget.NewLabelWithStyle(tmpl.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
					widget.NewLabel(info),
				),
			)
			list.Add(row)
			list.Add(widget.NewSeparator())
		}
	}
	refreshList()

	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			if err := project.SaveTemplates(writer.URI().Path(), a.templates); err != nil {
				dialog.ShowError(err, a.window)
			}
		}, a.window)
		fd.SetFileName("templates.json")
		fd.Show()
	})

	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()
			store, err := project.LoadTemplates(reader.URI().Path())
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			added := 0
			for _, t := range store.Templates {
				if a.templates.FindByID(t.ID) == nil {
					a.templates.Add(t)
					added++
				}
			}
			a.saveTemplates()
			refreshList()
			dialog.ShowInformation("Import Complete", fmt.Sprintf("Added %d template(s).", added), a.window)
		}, a.window)
	})

	content := container.NewBorder(
		container.NewHBox(layout.NewSpacer(), importBtn, exportBtn),
		nil, nil, nil,
		container.NewVScroll(list),
	)
	d = dialog.NewCustom("Layout Templates", "Close", content, a.window)
	d.Resize(fyne.NewSize(600, 450))
	d.Show()
}

// applyTemplate starts a new layout on the template's wall and places its
// frames at random free spots.
func (a *App) applyTemplate(t model.LayoutTemplate) {
	a.confirmDiscard(func() {
		a.setLayout(t.ToLayout(t.Name), "")
		_, unplaced := a.planner.ApplyTemplate(t)
		a.dirty = true
		a.refresh()
		if len(unplaced) > 0 {
			a.showWallFull(fmt.Sprintf("%d more", len(unplaced)))
		}
	})
}

func (a *App) saveTemplates() {
	if err := project.SaveDefaultTemplates(a.templates); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save templates: %w", err), a.window)
	}
}
