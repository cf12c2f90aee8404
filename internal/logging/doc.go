// Package logging provides structured logging with per-module log level configuration.
//
// Records go to stdout (text or JSON), to the systemd journal when journald
// is reachable, and to an in-memory ring buffer that backs the log stream
// endpoint of the API.
//
// Initialize once at startup, then ask for module loggers:
//
//	logging.Initialize(logging.Config{
//		Level:  "info",
//		Format: "text",
//		Modules: map[string]string{
//			"lcd": "debug",
//		},
//	})
//
//	logger := logging.GetLogger("lcd")
//	logger.Info("Wrote parameter", "param", "lcd_row", "value", "1")
//
// Loggers obtained before Initialize are kept and pick up the configured
// level when it runs.
//
// When running under systemd:
//
//	journalctl -t lcdctl MODULE=lcd
//
// Example TOML configuration:
//
//	[logging]
//	level = "info"
//	format = "text"
//	lcd = "debug"
//	api = "warn"
package logging
