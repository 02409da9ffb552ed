// WallHang: picture wall planner with a printable hanging plan.
//
// A cross-platform desktop application for arranging picture frames on a
// wall without overlaps and exporting a hanging plan.
//
// Build:
//   go build -o wallhang ./cmd/wallhang
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o wallhang.exe ./cmd/wallhang
//   GOOS=darwin  GOARCH=amd64 go build -o wallhang-darwin ./cmd/wallhang
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/WallHang/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.wallhang")
	window := application.NewWindow("WallHang — Picture Wall Planner")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()
	window.SetOnClosed(appUI.Shutdown)
	window.ShowAndRun()
}
