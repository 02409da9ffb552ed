// Package importer provides CSV and Excel import functionality for frame lists.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/WallHang/internal/model"
)

// ImportedFrame is one frame read from a file. Sources that carry a
// location (DXF plans) set Position, in plane coordinates.
type ImportedFrame struct {
	Spec        model.FrameSpec
	Position    model.Point
	HasPosition bool
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Frames   []ImportedFrame
	Wall     *model.Wall // Set when the source describes the wall itself
	Errors   []string
	Warnings []string
}

// Specs returns the frame specs without positions.
func (r ImportResult) Specs() []model.FrameSpec {
	specs := make([]model.FrameSpec, len(r.Frames))
	for i, f := range r.Frames {
		specs[i] = f.Spec
	}
	return specs
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label       int
	Size        int
	Width       int
	Height      int
	Orientation int
	Color       int
	Image       int
	Quantity    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":       {"label", "name", "title", "frame", "artwork", "description", "desc", "item"},
	"size":        {"size", "dimensions", "dims", "format", "frame size"},
	"width":       {"width", "w"},
	"height":      {"height", "h"},
	"orientation": {"orientation", "orient", "direction"},
	"color":       {"color", "colour", "frame color", "frame colour"},
	"image":       {"image", "picture", "photo", "file", "image file"},
	"quantity":    {"quantity", "qty", "count", "num", "amount", "pcs"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

func unmappedColumns() ColumnMapping {
	return ColumnMapping{
		Label:       -1,
		Size:        -1,
		Width:       -1,
		Height:      -1,
		Orientation: -1,
		Color:       -1,
		Image:       -1,
		Quantity:    -1,
	}
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping (Label, Size, Orientation, Quantity) and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := unmappedColumns()
	slots := map[string]*int{
		"label":       &mapping.Label,
		"size":        &mapping.Size,
		"width":       &mapping.Width,
		"height":      &mapping.Height,
		"orientation": &mapping.Orientation,
		"color":       &mapping.Color,
		"image":       &mapping.Image,
		"quantity":    &mapping.Quantity,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					if slot := slots[role]; *slot == -1 {
						*slot = i
					}
				}
			}
		}
	}

	if !isHeader {
		positional := unmappedColumns()
		positional.Label = 0
		positional.Size = 1
		positional.Orientation = 2
		positional.Quantity = 3
		return positional, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDimensions reads the frame size from either the size column or the
// width and height columns.
func parseDimensions(row []string, mapping ColumnMapping, rowLabel string) (model.Size, string) {
	if sizeStr := getCell(row, mapping.Size); sizeStr != "" {
		size, err := model.ParseSize(sizeStr)
		if err != nil {
			return model.Size{}, fmt.Sprintf("%s: Invalid size '%s'", rowLabel, sizeStr)
		}
		return size, ""
	}

	widthStr := getCell(row, mapping.Width)
	heightStr := getCell(row, mapping.Height)
	if widthStr == "" || heightStr == "" {
		return model.Size{}, fmt.Sprintf("%s: Missing size value", rowLabel)
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return model.Size{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr)
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil {
		return model.Size{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr)
	}
	if width <= 0 || height <= 0 {
		return model.Size{}, fmt.Sprintf("%s: Width and height must be positive", rowLabel)
	}
	return model.Size{Width: width, Height: height}, ""
}

// parseRow extracts a frame spec and its quantity from a row using the
// given column mapping. Returns the spec, quantity, any error message, and
// any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, frameCount int) (model.FrameSpec, int, string, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Frame %d", frameCount+1)
	}

	size, errMsg := parseDimensions(row, mapping, rowLabel)
	if errMsg != "" {
		return model.FrameSpec{}, 0, errMsg, ""
	}

	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		n, err := strconv.Atoi(qtyStr)
		if err != nil {
			return model.FrameSpec{}, 0, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), ""
		}
		if n <= 0 {
			return model.FrameSpec{}, 0, fmt.Sprintf("%s: Quantity must be positive", rowLabel), ""
		}
		qty = n
	}

	// Without an explicit orientation the label order decides.
	orientation := model.Portrait
	if size.Width > size.Height {
		orientation = model.Landscape
	}
	var warning string
	if orientStr := getCell(row, mapping.Orientation); orientStr != "" {
		o, ok := model.ParseOrientation(orientStr)
		if ok {
			orientation = o
		} else {
			warning = fmt.Sprintf("%s: Unknown orientation '%s', defaulting to %s", rowLabel, orientStr, orientation)
		}
	}

	spec := model.FrameSpec{
		Label:       label,
		Size:        size.Label(),
		Orientation: orientation,
		Color:       getCell(row, mapping.Color),
		Image:       getCell(row, mapping.Image),
	}
	return spec, qty, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports frames from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports frames from a CSV reader with a specific delimiter.
// This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports frames from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into frames.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		if mapping.Size == -1 && (mapping.Width == -1 || mapping.Height == -1) {
			result.Errors = append(result.Errors, "Required columns not found in header: Size (or Width and Height)")
			return result
		}
	} else if len(rows[0]) >= 2 {
		// No known header: if the size column does not parse, treat the
		// first row as an unrecognized header and use positional mapping.
		if _, err := model.ParseSize(getCell(rows[0], mapping.Size)); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		spec, qty, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Frames))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		for n := 0; n < qty; n++ {
			result.Frames = append(result.Frames, ImportedFrame{Spec: spec})
		}
	}

	return result
}
