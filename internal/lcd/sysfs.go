package lcd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sysfs implements Backend on top of the driver's parameter files and
// character device. Every call opens, writes and closes its target.
type sysfs struct {
	base       string
	devicePath string
}

// newSysfs creates a sysfs backend rooted at base, writing text to devicePath.
func newSysfs(base, devicePath string) *sysfs {
	return &sysfs{
		base:       base,
		devicePath: devicePath,
	}
}

// ParamPath returns the sysfs file backing p.
func (s *sysfs) ParamPath(p Param) string {
	return filepath.Join(s.base, string(p))
}

// WriteParam writes value to the parameter file.
func (s *sysfs) WriteParam(p Param, value string) error {
	path := s.ParamPath(p)
	if err := writeFile(path, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", p, err)
	}
	return nil
}

// WriteText writes text to the display device.
func (s *sysfs) WriteText(text string) error {
	if err := writeFile(s.devicePath, text); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}

// ReadParam reads the parameter back from sysfs.
func (s *sysfs) ReadParam(p Param) (string, error) {
	data, err := os.ReadFile(s.ParamPath(p))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", p, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Name returns the backend name.
func (s *sysfs) Name() string {
	return "sysfs"
}

// writeFile opens an existing file write-only, writes data in chunks the
// driver accepts, and always closes the file.
func writeFile(path string, data string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	buf := []byte(data)
	for len(buf) > 0 {
		n := min(len(buf), maxWriteChunk)
		written, writeErr := f.Write(buf[:n])
		if writeErr != nil {
			return writeErr
		}
		buf = buf[written:]
	}
	return nil
}
