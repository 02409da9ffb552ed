package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new layouts and frames
	DefaultWallWidth   float64     `json:"default_wall_width" envconfig:"WALL_WIDTH"`
	DefaultWallHeight  float64     `json:"default_wall_height" envconfig:"WALL_HEIGHT"`
	DefaultFrameSize   string      `json:"default_frame_size" envconfig:"FRAME_SIZE"`
	DefaultOrientation Orientation `json:"default_orientation" envconfig:"ORIENTATION"`

	// Placement engine tunables
	Settings Settings `json:"settings" ignored:"true"`

	// Application preferences
	AutoSaveInterval int      `json:"auto_save_interval" envconfig:"AUTO_SAVE_INTERVAL"` // minutes, 0 = disabled
	RecentLayouts    []string `json:"recent_layouts" ignored:"true"`
	Theme            string   `json:"theme" envconfig:"THEME"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	wall := DefaultWall()
	return AppConfig{
		DefaultWallWidth:   wall.Width,
		DefaultWallHeight:  wall.Height,
		DefaultFrameSize:   "50x70",
		DefaultOrientation: Portrait,
		Settings:           DefaultSettings(),
		AutoSaveInterval:   0,
		RecentLayouts:      []string{},
		Theme:              "system",
	}
}

// NewLayout creates an empty layout on the configured default wall.
func (c AppConfig) NewLayout() Layout {
	l := NewLayout()
	if c.DefaultWallWidth > 0 && c.DefaultWallHeight > 0 {
		l.Wall.Width = c.DefaultWallWidth
		l.Wall.Height = c.DefaultWallHeight
	}
	return l
}

// AddRecent moves path to the front of the recent layouts list, keeping at
// most max entries.
func (c *AppConfig) AddRecent(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentLayouts {
		if p != path {
			recent = append(recent, p)
		}
	}
	if max > 0 && len(recent) > max {
		recent = recent[:max]
	}
	c.RecentLayouts = recent
}
