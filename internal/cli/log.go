// Package cli implements the wallhang command-line interface.
//
// The CLI drives the same placement engine as the desktop app without a
// window: it can place frames on a saved layout, move them, check a layout
// for overlaps, import frame lists and export hanging plans. It is built
// using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - place: Add frames to a layout at random free positions
//   - move: Drag a frame toward a target point and drop it
//   - check: Validate a layout against the padding and wall bounds
//   - import: Build a layout from a CSV, Excel or DXF frame list
//   - export: Write a PDF hanging plan, QR labels or an XLSX schedule
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/WallHang/internal/model"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// withConfig attaches the loaded application config to ctx.
func withConfig(ctx context.Context, cfg model.AppConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the config attached by the root command, or
// the defaults.
func configFromContext(ctx context.Context) model.AppConfig {
	if cfg, ok := ctx.Value(configKey).(model.AppConfig); ok {
		return cfg
	}
	return model.DefaultAppConfig()
}
