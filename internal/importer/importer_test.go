package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/WallHang/internal/model"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Label,Size,Qty\nMona,50x70,2\nDunes,30x90,1\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Label;Size;Qty\nMona;50x70;2\nDunes;30x90;1\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Label\tSize\tQty\nMona\t50x70\t2\nDunes\t30x90\t1\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Label|Size|Qty\nMona|50x70|2\nDunes|30x90|1\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, ok := DetectColumns([]string{"Label", "Size", "Orientation", "Color", "Image", "Quantity"})
	if !ok {
		t.Fatal("expected header to be detected")
	}
	if mapping.Label != 0 || mapping.Size != 1 || mapping.Orientation != 2 ||
		mapping.Color != 3 || mapping.Image != 4 || mapping.Quantity != 5 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
	if mapping.Width != -1 || mapping.Height != -1 {
		t.Errorf("width/height should be unmapped: %+v", mapping)
	}
}

func TestDetectColumns_CaseInsensitiveAliases(t *testing.T) {
	mapping, ok := DetectColumns([]string{" NAME ", "W", "H", "Qty", "Colour"})
	if !ok {
		t.Fatal("expected header to be detected")
	}
	if mapping.Label != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Quantity != 3 || mapping.Color != 4 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, ok := DetectColumns([]string{"Mona", "50x70", "portrait", "2"})
	if ok {
		t.Fatal("expected no header")
	}
	if mapping.Label != 0 || mapping.Size != 1 || mapping.Orientation != 2 || mapping.Quantity != 3 {
		t.Errorf("unexpected positional mapping: %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	csv := "Label,Size,Orientation,Color,Image,Qty\n" +
		"Mona,50x70,portrait,#000000,mona.jpg,2\n" +
		"Dunes,30x90,landscape,,,1\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(result.Frames))
	}

	mona := result.Frames[0].Spec
	if mona.Label != "Mona" || mona.Size != "50x70" || mona.Orientation != model.Portrait {
		t.Errorf("unexpected first frame: %+v", mona)
	}
	if mona.Color != "#000000" || mona.Image != "mona.jpg" {
		t.Errorf("expected color and image to be read, got %+v", mona)
	}
	if result.Frames[1].Spec != mona {
		t.Errorf("quantity 2 should repeat the spec, got %+v", result.Frames[1].Spec)
	}
	if result.Frames[2].Spec.Orientation != model.Landscape {
		t.Errorf("expected landscape, got %s", result.Frames[2].Spec.Orientation)
	}
	if result.Frames[0].HasPosition {
		t.Error("CSV frames have no position")
	}
}

func TestImportCSVFromReader_WidthHeightColumns(t *testing.T) {
	csv := "Name,Width,Height\nWide,90,30\nTall,30,90\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(result.Frames))
	}
	if got := result.Frames[0].Spec; got.Size != "90x30" || got.Orientation != model.Landscape {
		t.Errorf("expected 90x30 landscape, got %+v", got)
	}
	if got := result.Frames[1].Spec; got.Size != "30x90" || got.Orientation != model.Portrait {
		t.Errorf("expected 30x90 portrait, got %+v", got)
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	csv := "Mona,50x70,portrait,1\nDunes,30X90,l,2\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(result.Frames))
	}
	if result.Frames[1].Spec.Size != "30x90" {
		t.Errorf("size label should be normalized, got %q", result.Frames[1].Spec.Size)
	}
}

func TestImportCSVFromReader_UnknownHeaderSkipped(t *testing.T) {
	csv := "Artwork title,Dimension,Hang\nMona,50x70,portrait\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Frames) != 1 {
		t.Fatalf("expected 1 frame, got %d (errors %v)", len(result.Frames), result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a header warning")
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')
	if len(result.Errors) == 0 {
		t.Error("expected error for empty input")
	}
}

func TestImportCSVFromReader_InvalidSize(t *testing.T) {
	csv := "Label,Size\nMona,big\nDunes,30x90\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Line 2") {
		t.Errorf("error should name the line, got %q", result.Errors[0])
	}
	if len(result.Frames) != 1 {
		t.Errorf("valid rows should still import, got %d frames", len(result.Frames))
	}
}

func TestImportCSVFromReader_InvalidQuantity(t *testing.T) {
	for _, qty := range []string{"two", "0", "-1"} {
		csv := "Label,Size,Qty\nMona,50x70," + qty + "\n"
		result := ImportCSVFromReader(strings.NewReader(csv), ',')
		if len(result.Errors) != 1 || len(result.Frames) != 0 {
			t.Errorf("qty %q: expected one error and no frames, got %v / %d", qty, result.Errors, len(result.Frames))
		}
	}
}

func TestImportCSVFromReader_NegativeWidth(t *testing.T) {
	csv := "Label,Width,Height\nMona,-50,70\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Errors) != 1 {
		t.Errorf("expected error for negative width, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_UnknownOrientation(t *testing.T) {
	csv := "Label,Size,Orientation\nMona,50x70,diagonal\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(result.Frames))
	}
	if result.Frames[0].Spec.Orientation != model.Portrait {
		t.Errorf("expected fallback to portrait, got %s", result.Frames[0].Spec.Orientation)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Unknown orientation") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected orientation warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_MissingSizeColumn(t *testing.T) {
	csv := "Label,Qty\nMona,1\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Required columns") {
		t.Errorf("expected missing column error, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_EmptyRowsAndLabels(t *testing.T) {
	csv := "Label,Size\n,50x70\n\n,,\n,30x40\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(result.Frames))
	}
	if result.Frames[0].Spec.Label != "Frame 1" || result.Frames[1].Spec.Label != "Frame 2" {
		t.Errorf("expected generated labels, got %q and %q", result.Frames[0].Spec.Label, result.Frames[1].Spec.Label)
	}
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.csv")
	if err := os.WriteFile(path, []byte("Name;Size;Qty\nMona;50x70;1\nDunes;30x90;1\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Frames) != 2 {
		t.Errorf("expected 2 frames, got %d", len(result.Frames))
	}
	if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "semicolon") {
		t.Errorf("expected delimiter warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/path/file.csv")
	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportResult_Specs(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Label,Size,Qty\nMona,50x70,3\n"), ',')
	specs := result.Specs()
	if len(specs) != 3 || specs[2].Label != "Mona" {
		t.Errorf("unexpected specs: %+v", specs)
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "frames.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Title", "Width", "Height", "Quantity"},
		{"Mona", 50, 70, 2},
		{"Dunes", 90, 30, 1},
	})

	result := ImportExcel(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(result.Frames))
	}
	if got := result.Frames[2].Spec; got.Size != "90x30" || got.Orientation != model.Landscape {
		t.Errorf("unexpected last frame: %+v", got)
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Mona", "50x70", "portrait", 1},
	})

	result := ImportExcel(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Frames) != 1 || result.Frames[0].Spec.Size != "50x70" {
		t.Errorf("unexpected frames: %+v", result.Frames)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/frames.xlsx")
	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportExcel_InvalidData(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Label", "Size"},
		{"Mona", "huge"},
	})

	result := ImportExcel(path)
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Row 2") {
		t.Errorf("expected row error, got %v", result.Errors)
	}
}
