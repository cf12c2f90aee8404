package cmd

import (
	"time"

	"github.com/smazurov/lcdctl/internal/lcd"
	"github.com/smazurov/lcdctl/internal/logging"
)

// Options for the CLI - flat structure with toml mapping.
// Environment overrides use the LCDCTL_ prefix, e.g. LCDCTL_DISPLAY_BACKEND=noop.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"lcdctl.toml"`

	// Server settings
	Port string `help:"Port to listen on" short:"p" default:":8091" toml:"server.port" env:"SERVER_PORT"`

	// Display settings
	SysfsBase     string `help:"Driver parameter directory" default:"/sys/module/hd44780_driver/parameters" toml:"display.sysfs_base" env:"DISPLAY_SYSFS_BASE"`
	DevicePath    string `help:"Driver character device" default:"/dev/hd44780_driver" toml:"display.device" env:"DISPLAY_DEVICE"`
	Backend       string `help:"Display backend (sysfs, noop, auto)" default:"sysfs" toml:"display.backend" env:"DISPLAY_BACKEND"`
	Rows          int    `help:"Panel rows" default:"4" toml:"display.rows" env:"DISPLAY_ROWS"`
	Cols          int    `help:"Panel columns" default:"16" toml:"display.cols" env:"DISPLAY_COLS"`
	ClearDelayMs  int    `help:"Wait after a clear in milliseconds" default:"100" toml:"display.clear_delay_ms" env:"DISPLAY_CLEAR_DELAY_MS"`
	CursorDelayMs int    `help:"Wait after a cursor move in milliseconds" default:"50" toml:"display.cursor_delay_ms" env:"DISPLAY_CURSOR_DELAY_MS"`

	// Metrics settings
	MetricsEnabled bool `help:"Serve Prometheus metrics on /metrics" default:"true" toml:"metrics.enabled" env:"METRICS_ENABLED"`

	// Auth settings, empty disables auth
	AuthUsername string `help:"Basic auth username" default:"" toml:"auth.username" env:"AUTH_USERNAME"`
	AuthPassword string `help:"Basic auth password" default:"" toml:"auth.password" env:"AUTH_PASSWORD"`

	// Logging settings
	LoggingLevel  string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingLCD    string `help:"Display logging level" default:"info" toml:"logging.lcd" env:"LOGGING_LCD"`
	LoggingAPI    string `help:"API logging level" default:"info" toml:"logging.api" env:"LOGGING_API"`
	LoggingWatch  string `help:"Screen watcher logging level" default:"info" toml:"logging.watch" env:"LOGGING_WATCH"`
}

// DisplayOptions converts the flat CLI options into lcd.Options.
func (o *Options) DisplayOptions() lcd.Options {
	return lcd.Options{
		SysfsBase:   o.SysfsBase,
		DevicePath:  o.DevicePath,
		Backend:     o.Backend,
		Geometry:    lcd.Geometry{Rows: o.Rows, Cols: o.Cols},
		ClearDelay:  time.Duration(o.ClearDelayMs) * time.Millisecond,
		CursorDelay: time.Duration(o.CursorDelayMs) * time.Millisecond,
	}
}

// LoggingConfig converts the flat CLI options into a logging.Config.
func (o *Options) LoggingConfig() logging.Config {
	return logging.Config{
		Level:  o.LoggingLevel,
		Format: o.LoggingFormat,
		Modules: map[string]string{
			"lcd":   o.LoggingLCD,
			"api":   o.LoggingAPI,
			"http":  o.LoggingAPI,
			"watch": o.LoggingWatch,
		},
	}
}
