package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/WallHang/internal/model"
)

// buildTestLayout creates a 400x250 cm wall with three frames.
func buildTestLayout() model.Layout {
	l := model.NewLayout()
	l.Name = "Living room"
	l.Wall = model.Wall{Width: 400, Height: 250, Color: "#f4f1ea"}

	right := model.NewFrame("Dunes", "30x90", model.Landscape)
	right.SetCenter(model.Point{X: 100, Y: 150})
	left := model.NewFrame("Mona", "50x70", model.Portrait)
	left.Color = "#1a1a1a"
	left.SetCenter(model.Point{X: -100, Y: 140})
	broken := model.NewFrame("Sketch", "tiny", model.Portrait)
	broken.Color = "not a color"
	broken.SetCenter(model.Point{X: 0, Y: 100})

	l.Frames = []model.Frame{right, left, broken}
	return l
}

func TestHangingPoints(t *testing.T) {
	points := HangingPoints(buildTestLayout())
	require.Len(t, points, 3)

	// Ordered left to right.
	assert.Equal(t, "Mona", points[0].Label)
	assert.Equal(t, "Sketch", points[1].Label)
	assert.Equal(t, "Dunes", points[2].Label)
	for i, p := range points {
		assert.Equal(t, i+1, p.Number)
	}

	mona := points[0]
	assert.Equal(t, 50.0, mona.Width)
	assert.Equal(t, 70.0, mona.Height)
	assert.InDelta(t, 100.0, mona.FromLeft, 1e-9)
	assert.InDelta(t, 175.0, mona.FromFloor, 1e-9)

	dunes := points[2]
	assert.Equal(t, 90.0, dunes.Width)
	assert.InDelta(t, 300.0, dunes.FromLeft, 1e-9)
	assert.InDelta(t, 165.0, dunes.FromFloor, 1e-9)

	sketch := points[1]
	assert.Equal(t, model.DefaultFrameSize.Height, sketch.Height)
}

func TestParseHexColor(t *testing.T) {
	c, ok := parseHexColor("#3e2723")
	require.True(t, ok)
	assert.Equal(t, rgb{R: 0x3e, G: 0x27, B: 0x23}, c)
	assert.True(t, c.isDark())

	_, ok = parseHexColor("red")
	assert.False(t, ok)
	_, ok = parseHexColor("#zzzzzz")
	assert.False(t, ok)
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")

	require.NoError(t, ExportPDF(path, buildTestLayout()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Greater(t, len(data), 1000)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportPDF_ManyFramesPaginates(t *testing.T) {
	l := buildTestLayout()
	for i := 0; i < 60; i++ {
		f := model.NewFrame("Postcard", "10x15", model.Portrait)
		f.SetCenter(model.Point{X: float64(i%20)*18 - 180, Y: float64(i/20)*20 + 20})
		l.Frames = append(l.Frames, f)
	}
	path := filepath.Join(t.TempDir(), "plan.pdf")
	assert.NoError(t, ExportPDF(path, l))
}

func TestExportPDF_NoFrames(t *testing.T) {
	l := buildTestLayout()
	l.Frames = nil
	assert.Error(t, ExportPDF(filepath.Join(t.TempDir(), "plan.pdf"), l))
}

func TestExportPDF_InvalidWall(t *testing.T) {
	l := buildTestLayout()
	l.Wall.Width = 0
	assert.Error(t, ExportPDF(filepath.Join(t.TempDir(), "plan.pdf"), l))
}

func TestExportPDF_InvalidPath(t *testing.T) {
	err := ExportPDF(filepath.Join(t.TempDir(), "missing", "dir", "plan.pdf"), buildTestLayout())
	assert.Error(t, err)
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestLayout())
	require.Len(t, labels, 3)

	assert.Equal(t, "Mona", labels[0].FrameLabel)
	assert.Equal(t, "Living room", labels[0].Layout)
	assert.Equal(t, "Portrait", labels[0].Orientation)
	assert.InDelta(t, 175.0, labels[0].FromFloor, 1e-9)

	data, err := json.Marshal(labels[2])
	require.NoError(t, err)
	var decoded LabelInfo
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, labels[2], decoded)
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	require.NoError(t, ExportLabels(path, buildTestLayout()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportLabels_MultiplePages(t *testing.T) {
	l := buildTestLayout()
	for i := 0; i < 35; i++ {
		f := model.NewFrame("A very long frame title that will not fit on one label", "10x10", model.Portrait)
		f.SetCenter(model.Point{X: float64(i%15)*12 - 90, Y: float64(i/15)*15 + 10})
		l.Frames = append(l.Frames, f)
	}
	assert.NoError(t, ExportLabels(filepath.Join(t.TempDir(), "labels.pdf"), l))
}

func TestExportLabels_NoFrames(t *testing.T) {
	assert.Error(t, ExportLabels(filepath.Join(t.TempDir(), "labels.pdf"), model.NewLayout()))
}

func TestExportSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	require.NoError(t, ExportSchedule(path, buildTestLayout()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{scheduleSheet}, f.GetSheetList())
	rows, err := f.GetRows(scheduleSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Frame", rows[0][1])
	assert.Equal(t, "Mona", rows[1][1])
	assert.Equal(t, "100", rows[1][6])
	assert.Equal(t, "175", rows[1][7])
	assert.Equal(t, "Dunes", rows[3][1])
}

func TestExportSchedule_NoFrames(t *testing.T) {
	assert.Error(t, ExportSchedule(filepath.Join(t.TempDir(), "s.xlsx"), model.NewLayout()))
}
