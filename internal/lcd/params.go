package lcd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultSysfsBase is where hd44780_driver registers its module parameters.
	DefaultSysfsBase = "/sys/module/hd44780_driver/parameters"
	// DefaultDevicePath is the character device accepting display text.
	DefaultDevicePath = "/dev/hd44780_driver"

	// DefaultClearDelay gives the driver time to run the clear command.
	DefaultClearDelay = 100 * time.Millisecond
	// DefaultCursorDelay gives the driver time to apply a cursor move.
	DefaultCursorDelay = 50 * time.Millisecond

	// maxWriteChunk is the largest buffer the driver consumes per write(2).
	maxWriteChunk = 64
)

// Param names a writable driver parameter file.
type Param string

// Driver parameters exposed in sysfs.
const (
	ParamClearFlag Param = "lcd_clear_flag"
	ParamRow       Param = "lcd_row"
	ParamCol       Param = "lcd_col"
)

// Params lists every parameter the driver exposes, in display order.
var Params = []Param{ParamClearFlag, ParamRow, ParamCol}

var (
	// ErrUnknownParam is returned for parameter names the driver does not expose.
	ErrUnknownParam = errors.New("unknown lcd parameter")
	// ErrInvalidValue is returned for values the driver cannot take.
	ErrInvalidValue = errors.New("invalid lcd value")
)

// ParseParam maps a parameter name to a Param. The "lcd_" prefix is optional.
func ParseParam(name string) (Param, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if !strings.HasPrefix(name, "lcd_") {
		name = "lcd_" + name
	}
	for _, p := range Params {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

// Geometry is the character grid of the attached panel.
type Geometry struct {
	Rows int `json:"rows" toml:"rows"`
	Cols int `json:"cols" toml:"cols"`
}

// DefaultGeometry matches the row/column range the driver documents (0-3, 0-15).
var DefaultGeometry = Geometry{Rows: 4, Cols: 16}

// contains reports whether row and col address a cell of g.
func (g Geometry) contains(row, col int) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: position %d,%d is negative", ErrInvalidValue, row, col)
	}
	if g.Rows > 0 && row >= g.Rows {
		return fmt.Errorf("%w: row %d outside 0-%d", ErrInvalidValue, row, g.Rows-1)
	}
	if g.Cols > 0 && col >= g.Cols {
		return fmt.Errorf("%w: col %d outside 0-%d", ErrInvalidValue, col, g.Cols-1)
	}
	return nil
}

// formatValue renders a parameter value the way the driver parses it.
func formatValue(value int) string {
	return strconv.Itoa(value)
}
