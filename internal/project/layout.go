package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/piwi3910/WallHang/internal/model"
)

// LayoutExt is the extension of native layout files. They hold JSON.
const LayoutExt = ".wallhang"

// ErrInvalidWall is returned when a layout file describes a wall with a
// non-positive dimension.
var ErrInvalidWall = errors.New("wall dimensions must be positive")

// Format is an on-disk layout encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
)

// FormatForPath picks the encoding from the file extension. Anything that
// is not .toml is read and written as JSON.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// EncodeLayout serialises a layout in the given format.
func EncodeLayout(layout model.Layout, format Format) ([]byte, error) {
	if layout.Frames == nil {
		layout.Frames = []model.Frame{}
	}
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(layout); err != nil {
			return nil, fmt.Errorf("failed to encode layout as TOML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(layout, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode layout as JSON: %w", err)
		}
		return data, nil
	}
}

// DecodeLayout parses a layout in the given format. Positions are returned
// as stored; the planner settles them when the layout is opened.
func DecodeLayout(data []byte, format Format) (model.Layout, error) {
	var layout model.Layout
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &layout); err != nil {
			return model.Layout{}, fmt.Errorf("failed to parse TOML layout: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &layout); err != nil {
			return model.Layout{}, fmt.Errorf("failed to parse JSON layout: %w", err)
		}
	}
	if !(layout.Wall.Width > 0) || !(layout.Wall.Height > 0) {
		return model.Layout{}, fmt.Errorf("invalid layout: %w (got %gx%g)", ErrInvalidWall, layout.Wall.Width, layout.Wall.Height)
	}
	if layout.Frames == nil {
		layout.Frames = []model.Frame{}
	}
	return layout, nil
}

// SaveLayout writes a layout to path, choosing the encoding from the
// extension.
func SaveLayout(path string, layout model.Layout) error {
	data, err := EncodeLayout(layout, FormatForPath(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create layout directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return nil
}

// LoadLayout reads a layout from path. A layout without a name is named
// after its file.
func LoadLayout(path string) (model.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	layout, err := DecodeLayout(data, FormatForPath(path))
	if err != nil {
		return model.Layout{}, err
	}
	if layout.Name == "" {
		base := filepath.Base(path)
		layout.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return layout, nil
}
