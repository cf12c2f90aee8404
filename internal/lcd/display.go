package lcd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/smazurov/lcdctl/internal/events"
)

// Sleeper waits for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

// Options configures a Display.
type Options struct {
	SysfsBase   string
	DevicePath  string
	Geometry    Geometry
	ClearDelay  time.Duration
	CursorDelay time.Duration

	// Backend selects the I/O backend for New: "sysfs", "noop" or "auto".
	Backend string

	// Sleeper replaces the real clock, mainly for tests.
	Sleeper Sleeper
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.SysfsBase == "" {
		o.SysfsBase = DefaultSysfsBase
	}
	if o.DevicePath == "" {
		o.DevicePath = DefaultDevicePath
	}
	if o.Geometry.Rows == 0 && o.Geometry.Cols == 0 {
		o.Geometry = DefaultGeometry
	}
	if o.ClearDelay == 0 {
		o.ClearDelay = DefaultClearDelay
	}
	if o.CursorDelay == 0 {
		o.CursorDelay = DefaultCursorDelay
	}
	if o.Sleeper == nil {
		o.Sleeper = sleepContext
	}
	return o
}

// Display drives the LCD through a Backend. Operations log their own
// failures and publish them on the event bus; the returned error is
// informational and callers are free to carry on.
type Display struct {
	backend Backend
	opts    Options
	bus     *events.Bus
	logger  *slog.Logger
	mu      sync.Mutex
}

// NewDisplay creates a Display over an explicit backend.
func NewDisplay(backend Backend, opts Options, bus *events.Bus, logger *slog.Logger) *Display {
	return &Display{
		backend: backend,
		opts:    opts.withDefaults(),
		bus:     bus,
		logger:  logger,
	}
}

// Backend returns the name of the active backend.
func (d *Display) Backend() string {
	return d.backend.Name()
}

// Geometry returns the configured panel size.
func (d *Display) Geometry() Geometry {
	return d.opts.Geometry
}

// ParamPath returns the sysfs file for p.
func (d *Display) ParamPath(p Param) string {
	return filepath.Join(d.opts.SysfsBase, string(p))
}

// DevicePath returns the display device file.
func (d *Display) DevicePath() string {
	return d.opts.DevicePath
}

// WriteParam writes the decimal form of value to the parameter file.
func (d *Display) WriteParam(p Param, value int) error {
	if _, err := ParseParam(string(p)); err != nil {
		d.logger.Error("Failed to write parameter", "param", string(p), "error", err)
		return err
	}
	if value < 0 {
		err := fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidValue, p, value)
		d.logger.Error("Failed to write parameter", "param", string(p), "error", err)
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeParam(p, value)
}

// WriteText sends text to the display at the current cursor position.
func (d *Display) WriteText(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeText(text)
}

// Clear raises the clear flag and waits for the driver to settle.
func (d *Display) Clear(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clear(ctx)
}

// SetCursor moves the cursor to row, col and waits for the driver to settle.
func (d *Display) SetCursor(ctx context.Context, row, col int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setCursor(ctx, row, col)
}

// Print moves the cursor and writes text without another caller interleaving.
// Text is not written when the position is off the panel.
func (d *Display) Print(ctx context.Context, row, col int, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.print(ctx, row, col, text)
}

// Render draws a whole screen: an optional clear followed by each line.
// A failing line does not stop the remaining lines.
func (d *Display) Render(ctx context.Context, screen Screen) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var errs []error
	if screen.Clear {
		errs = append(errs, d.clear(ctx))
	}
	for _, line := range screen.Lines {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		errs = append(errs, d.print(ctx, line.Row, line.Col, line.Text))
	}
	return errors.Join(errs...)
}

// Status reads the parameters back from the driver.
func (d *Display) Status() (Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := Status{Backend: d.backend.Name()}
	var errs []error
	for _, p := range Params {
		raw, err := d.backend.ReadParam(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("parse %s value %q: %w", p, raw, err))
			continue
		}
		switch p {
		case ParamClearFlag:
			status.ClearFlag = value
		case ParamRow:
			status.Row = value
		case ParamCol:
			status.Col = value
		}
	}
	return status, errors.Join(errs...)
}

// Sleep waits using the configured Sleeper.
func (d *Display) Sleep(ctx context.Context, dur time.Duration) error {
	return d.opts.Sleeper(ctx, dur)
}

func (d *Display) clear(ctx context.Context) error {
	err := d.writeParam(ParamClearFlag, 1)
	if err == nil {
		d.bus.Publish(events.DisplayClearedEvent{Timestamp: now()})
	}
	if sleepErr := d.Sleep(ctx, d.opts.ClearDelay); sleepErr != nil {
		return sleepErr
	}
	return err
}

func (d *Display) setCursor(ctx context.Context, row, col int) error {
	if err := d.opts.Geometry.contains(row, col); err != nil {
		d.logger.Error("Failed to set cursor", "row", row, "col", col, "error", err)
		return err
	}

	rowErr := d.writeParam(ParamRow, row)
	colErr := d.writeParam(ParamCol, col)
	if sleepErr := d.Sleep(ctx, d.opts.CursorDelay); sleepErr != nil {
		return sleepErr
	}
	return errors.Join(rowErr, colErr)
}

func (d *Display) print(ctx context.Context, row, col int, text string) error {
	cursorErr := d.setCursor(ctx, row, col)
	if errors.Is(cursorErr, ErrInvalidValue) {
		return cursorErr
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return errors.Join(cursorErr, d.writeText(text))
}

func (d *Display) writeParam(p Param, value int) error {
	path := d.ParamPath(p)
	v := formatValue(value)

	if err := d.backend.WriteParam(p, v); err != nil {
		d.logger.Error("Failed to write parameter", "param", string(p), "path", path, "error", err)
		d.bus.Publish(events.WriteFailedEvent{
			Target:    string(p),
			Path:      path,
			Error:     err.Error(),
			Timestamp: now(),
		})
		return err
	}

	d.logger.Info("Wrote parameter", "param", string(p), "value", v, "path", path)
	d.bus.Publish(events.ParamWrittenEvent{
		Param:     string(p),
		Value:     v,
		Path:      path,
		Timestamp: now(),
	})
	return nil
}

func (d *Display) writeText(text string) error {
	if err := d.backend.WriteText(text); err != nil {
		d.logger.Error("Failed to write text", "path", d.opts.DevicePath, "error", err)
		d.bus.Publish(events.WriteFailedEvent{
			Target:    "text",
			Path:      d.opts.DevicePath,
			Error:     err.Error(),
			Timestamp: now(),
		})
		return err
	}

	d.logger.Info("Wrote text to LCD", "text", text)
	d.bus.Publish(events.TextWrittenEvent{
		Text:      text,
		Bytes:     len(text),
		Path:      d.opts.DevicePath,
		Timestamp: now(),
	})
	return nil
}

// Status is the driver state read back from sysfs.
type Status struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	ClearFlag int    `json:"clear_flag"`
	Backend   string `json:"backend"`
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func now() string {
	return time.Now().Format(time.RFC3339)
}
