//go:build !unix

package lcd

import "os"

func checkPath(name, path string) PathCheck {
	check := PathCheck{Name: name, Path: path}

	fi, err := os.Stat(path)
	if err != nil {
		return check
	}
	check.Exists = true
	check.Writable = fi.Mode().Perm()&0o222 != 0
	return check
}
