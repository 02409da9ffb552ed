package model

// CatalogSize is a named standard frame size the user can pick from.
type CatalogSize struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Size        string      `json:"size"`
	Orientation Orientation `json:"orientation"`
}

// NewCatalogSize creates a new CatalogSize with a generated ID.
func NewCatalogSize(name, size string, o Orientation) CatalogSize {
	return CatalogSize{
		ID:          NewCatalogID(),
		Name:        name,
		Size:        size,
		Orientation: o,
	}
}

// ToFrame creates a frame of this catalog size.
func (cs CatalogSize) ToFrame(label string) Frame {
	return NewFrame(label, cs.Size, cs.Orientation)
}

// Catalog holds the user's saved frame sizes.
type Catalog struct {
	Sizes []CatalogSize `json:"sizes"`
}

// DefaultCatalog returns a catalog of common ready-made frame sizes.
func DefaultCatalog() Catalog {
	return Catalog{
		Sizes: []CatalogSize{
			NewCatalogSize("13x18", "13x18", Portrait),
			NewCatalogSize("A4 (21x30)", "21x30", Portrait),
			NewCatalogSize("30x40", "30x40", Portrait),
			NewCatalogSize("A3 (30x42)", "30x42", Portrait),
			NewCatalogSize("40x50", "40x50", Portrait),
			NewCatalogSize("50x70", "50x70", Portrait),
			NewCatalogSize("Panorama 30x90", "30x90", Landscape),
			NewCatalogSize("70x100", "70x100", Portrait),
		},
	}
}

// FindByID returns a pointer to the size with the given ID, or nil.
func (c *Catalog) FindByID(id string) *CatalogSize {
	for i := range c.Sizes {
		if c.Sizes[i].ID == id {
			return &c.Sizes[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first size with the given name, or nil.
func (c *Catalog) FindByName(name string) *CatalogSize {
	for i := range c.Sizes {
		if c.Sizes[i].Name == name {
			return &c.Sizes[i]
		}
	}
	return nil
}

// Names returns the size names for UI dropdowns.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Sizes))
	for i, s := range c.Sizes {
		names[i] = s.Name
	}
	return names
}

// Merge appends the sizes from other whose IDs are not already present.
func (c *Catalog) Merge(other Catalog) int {
	ids := make(map[string]bool, len(c.Sizes))
	for _, s := range c.Sizes {
		ids[s.ID] = true
	}
	added := 0
	for _, s := range other.Sizes {
		if !ids[s.ID] {
			c.Sizes = append(c.Sizes, s)
			ids[s.ID] = true
			added++
		}
	}
	return added
}
