package model

import "testing"

func TestDefaultAppConfigMatchesDefaults(t *testing.T) {
	cfg := DefaultAppConfig()
	wall := DefaultWall()

	if cfg.DefaultWallWidth != wall.Width {
		t.Errorf("wall width mismatch: config=%f wall=%f", cfg.DefaultWallWidth, wall.Width)
	}
	if cfg.DefaultWallHeight != wall.Height {
		t.Errorf("wall height mismatch: config=%f wall=%f", cfg.DefaultWallHeight, wall.Height)
	}
	if cfg.Settings != DefaultSettings() {
		t.Errorf("settings mismatch: %+v", cfg.Settings)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.RecentLayouts == nil {
		t.Error("RecentLayouts should not be nil")
	}
}

func TestAppConfig_NewLayoutUsesDefaultWall(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultWallWidth = 420
	cfg.DefaultWallHeight = 260

	l := cfg.NewLayout()
	if l.Wall.Width != 420 || l.Wall.Height != 260 {
		t.Errorf("expected 420x260 wall, got %.0fx%.0f", l.Wall.Width, l.Wall.Height)
	}
	if len(l.Frames) != 0 {
		t.Errorf("expected no frames, got %d", len(l.Frames))
	}
}

func TestAppConfig_AddRecent(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecent("a", 3)
	cfg.AddRecent("b", 3)
	cfg.AddRecent("c", 3)
	cfg.AddRecent("a", 3)
	cfg.AddRecent("d", 3)

	want := []string{"d", "a", "c"}
	if len(cfg.RecentLayouts) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.RecentLayouts)
	}
	for i := range want {
		if cfg.RecentLayouts[i] != want[i] {
			t.Errorf("index %d: expected %s, got %s", i, want[i], cfg.RecentLayouts[i])
		}
	}
}
