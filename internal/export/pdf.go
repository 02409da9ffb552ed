package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/WallHang/internal/model"
)

// rgb is a color for drawing a frame.
type rgb struct {
	R, G, B int
}

// framePalette is used for frames whose color does not parse.
var framePalette = []rgb{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	rowsPerPage  = 24
)

// parseHexColor reads "#rrggbb". ok is false for anything else.
func parseHexColor(s string) (rgb, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, true
}

// isDark reports whether white text reads better than black on c.
func (c rgb) isDark() bool {
	return 0.299*float64(c.R)+0.587*float64(c.G)+0.114*float64(c.B) < 128
}

func frameColor(hp HangingPoint) rgb {
	if c, ok := parseHexColor(hp.Color); ok {
		return c
	}
	return framePalette[(hp.Number-1)%len(framePalette)]
}

// ExportPDF generates a hanging plan for the layout: a scaled drawing of the
// wall with every frame and its hook marked, followed by a table of hook
// positions measured from the left wall edge and the floor.
func ExportPDF(path string, layout model.Layout) error {
	if len(layout.Frames) == 0 {
		return fmt.Errorf("no frames to export")
	}
	if !(layout.Wall.Width > 0) || !(layout.Wall.Height > 0) {
		return fmt.Errorf("invalid wall size %gx%g", layout.Wall.Width, layout.Wall.Height)
	}

	points := HangingPoints(layout)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderWallPage(pdf, layout, points)

	for start := 0; start < len(points); start += rowsPerPage {
		end := start + rowsPerPage
		if end > len(points) {
			end = len(points)
		}
		pdf.AddPage()
		renderSchedulePage(pdf, layout, points[start:end], start == 0)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// renderWallPage draws the wall and its frames on the current PDF page.
func renderWallPage(pdf *fpdf.Fpdf, layout model.Layout, points []HangingPoint) {
	wall := layout.Wall

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: wall %.0f x %.0f cm", layout.Name, wall.Width, wall.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Frames: %d | Hooks are marked at each frame's top center", len(points))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	scale := math.Min(drawWidth/wall.Width, drawHeight/wall.Height)
	canvasW := wall.Width * scale
	canvasH := wall.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Wall background
	wallColor, ok := parseHexColor(wall.Color)
	if !ok {
		wallColor = rgb{R: 244, G: 241, B: 234}
	}
	pdf.SetFillColor(wallColor.R, wallColor.G, wallColor.B)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for _, hp := range points {
		// PDF y grows downward; the wall's y grows up from the floor.
		fw := hp.Width * scale
		fh := hp.Height * scale
		fx := offsetX + (hp.FromLeft-hp.Width/2)*scale
		fy := offsetY + (wall.Height-hp.FromFloor)*scale

		col := frameColor(hp)
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(fx, fy, fw, fh, "FD")

		drawHook(pdf, offsetX+hp.FromLeft*scale, fy)

		if fw > 6 && fh > 5 {
			pdf.SetFont("Helvetica", "B", labelFontSize(fw, fh))
			if col.isDark() {
				pdf.SetTextColor(255, 255, 255)
			} else {
				pdf.SetTextColor(0, 0, 0)
			}
			num := strconv.Itoa(hp.Number)
			numW := pdf.GetStringWidth(num)
			pdf.SetXY(fx+(fw-numW)/2, fy+fh/2-2)
			pdf.CellFormat(numW, 4, num, "", 0, "C", false, 0, "")
		}
	}
	pdf.SetTextColor(0, 0, 0)

	drawDimensionAnnotations(pdf, wall, offsetX, offsetY, canvasW, canvasH)
	drawFrameLegend(pdf, points, offsetY+canvasH+6)
}

// drawHook marks a hook position with a small cross.
func drawHook(pdf *fpdf.Fpdf, x, y float64) {
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Line(x-1.5, y, x+1.5, y)
	pdf.Line(x, y-1.5, x, y+1.5)
}

// drawDimensionAnnotations adds width and height labels outside the wall rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, wall model.Wall, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the wall)
	widthLabel := fmt.Sprintf("%.0f cm", wall.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the wall, rotated)
	heightLabel := fmt.Sprintf("%.0f cm", wall.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawFrameLegend renders a compact numbered legend below the wall drawing.
func drawFrameLegend(pdf *fpdf.Fpdf, points []HangingPoint, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Frames:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight
	maxY := pageHeight - marginBottom

	for _, hp := range points {
		col := frameColor(hp)
		label := fmt.Sprintf("%d. %s (%s)", hp.Number, hp.Label, hp.Size)
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}
		if startY > maxY {
			// The table on the next pages lists everything.
			return
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSchedulePage draws one page of the hook position table.
func renderSchedulePage(pdf *fpdf.Fpdf, layout model.Layout, points []HangingPoint, first bool) {
	title := "Hanging Schedule"
	if !first {
		title += " (continued)"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, title, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	colWidths := []float64{15, 75, 35, 35, 50, 50}
	headers := []string{"#", "Frame", "Size (cm)", "Orientation", "Hook from left (cm)", "Hook from floor (cm)"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, hp := range points {
		xPos = marginLeft
		rowData := []string{
			strconv.Itoa(hp.Number),
			hp.Label,
			fmt.Sprintf("%.0f x %.0f", hp.Width, hp.Height),
			hp.Orientation.String(),
			fmt.Sprintf("%.1f", hp.FromLeft),
			fmt.Sprintf("%.1f", hp.FromFloor),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	footer := fmt.Sprintf("Generated by WallHang - %s", layout.Name)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, footer, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 10
	case minDim > 20:
		return 8
	default:
		return 6
	}
}
