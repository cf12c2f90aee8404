//go:build unix

package lcd

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

func checkPath(name, path string) PathCheck {
	check := PathCheck{Name: name, Path: path}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			check.Error = err.Error()
		}
		return check
	}
	check.Exists = true

	if err := unix.Access(path, unix.W_OK); err != nil {
		check.Error = err.Error()
		return check
	}
	check.Writable = true
	return check
}
