package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/WallHang/internal/model"
)

const scheduleSheet = "Hanging Schedule"

var scheduleHeaders = []interface{}{
	"#", "Frame", "Size (cm)", "Orientation", "Width (cm)", "Height (cm)",
	"Hook from left (cm)", "Hook from floor (cm)", "Frame ID",
}

// ExportSchedule writes the hanging schedule as an Excel workbook: one row
// per frame with its hook position, in hanging order.
func ExportSchedule(path string, layout model.Layout) error {
	points := HangingPoints(layout)
	if len(points) == 0 {
		return fmt.Errorf("no frames to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), scheduleSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(scheduleSheet, "A1", &scheduleHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(scheduleSheet, "A1", "I1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, hp := range points {
		row := []interface{}{
			hp.Number, hp.Label, hp.Size, hp.Orientation.String(), hp.Width, hp.Height,
			roundTenth(hp.FromLeft), roundTenth(hp.FromFloor), hp.FrameID,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(scheduleSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(scheduleSheet, "B", "B", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(scheduleSheet, "C", "H", 18); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write schedule: %w", err)
	}
	return nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
