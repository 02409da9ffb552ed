package model

import "time"

// FrameSpec describes a frame to create without fixing its position.
type FrameSpec struct {
	Label       string      `json:"label"`
	Size        string      `json:"size"`
	Orientation Orientation `json:"orientation"`
	Color       string      `json:"color,omitempty"`
	Image       string      `json:"image,omitempty"`
}

// ToFrame creates a new unpositioned frame from the spec.
func (fs FrameSpec) ToFrame() Frame {
	f := NewFrame(fs.Label, fs.Size, fs.Orientation)
	if fs.Color != "" {
		f.Color = fs.Color
	}
	f.Image = fs.Image
	return f
}

// SpecOf returns the spec a frame was created from.
func SpecOf(f Frame) FrameSpec {
	return FrameSpec{
		Label:       f.Label,
		Size:        f.Size,
		Orientation: f.Orientation,
		Color:       f.Color,
		Image:       f.Image,
	}
}

// LayoutTemplate is a reusable gallery arrangement: a wall and a set of
// frames, without positions.
type LayoutTemplate struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
	Wall        Wall        `json:"wall"`
	Frames      []FrameSpec `json:"frames"`
}

// NewLayoutTemplate captures a template from the given layout. Positions
// are intentionally dropped.
func NewLayoutTemplate(name, description string, layout Layout) LayoutTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	specs := make([]FrameSpec, len(layout.Frames))
	for i, f := range layout.Frames {
		specs[i] = SpecOf(f)
	}
	return LayoutTemplate{
		ID:          NewTemplateID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Wall:        layout.Wall,
		Frames:      specs,
	}
}

// ToLayout creates an empty layout on the template's wall. The frames are
// placed separately by the planner.
func (t LayoutTemplate) ToLayout(name string) Layout {
	l := NewLayout()
	l.Name = name
	if t.Wall.Width > 0 && t.Wall.Height > 0 {
		l.Wall = t.Wall
	}
	return l
}

// TemplateStore holds a collection of layout templates.
type TemplateStore struct {
	Templates []LayoutTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []LayoutTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t LayoutTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *LayoutTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *LayoutTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for UI dropdowns.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
