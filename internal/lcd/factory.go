package lcd

import (
	"log/slog"
	"os"

	"github.com/smazurov/lcdctl/internal/events"
)

// Backend names accepted in Options.Backend.
const (
	BackendSysfs = "sysfs"
	BackendNoop  = "noop"
	BackendAuto  = "auto"
)

// New creates a Display with the backend named in opts.Backend.
// "auto" uses sysfs when the driver is loaded and falls back to no-op otherwise.
func New(opts Options, bus *events.Bus, logger *slog.Logger) *Display {
	opts = opts.withDefaults()

	var backend Backend
	switch opts.Backend {
	case BackendNoop:
		backend = newNoop(logger)
	case BackendAuto:
		if driverLoaded(opts.SysfsBase) {
			logger.Info("Detected hd44780 driver, using sysfs backend", "sysfs_base", opts.SysfsBase)
			backend = newSysfs(opts.SysfsBase, opts.DevicePath)
		} else {
			logger.Info("hd44780 driver not loaded, using no-op backend", "sysfs_base", opts.SysfsBase)
			backend = newNoop(logger)
		}
	default:
		backend = newSysfs(opts.SysfsBase, opts.DevicePath)
	}

	return NewDisplay(backend, opts, bus, logger)
}

// driverLoaded reports whether the driver's parameter directory exists.
func driverLoaded(base string) bool {
	fi, err := os.Stat(base)
	return err == nil && fi.IsDir()
}
