//go:build !linux && !darwin

package filer

import (
	"io/fs"
	"os"
	"time"
)

type genericPaths struct {
	envPaths
}

func newPlatformPaths(e envPaths) PlatformPaths {
	return &genericPaths{envPaths: e}
}

func defaultTempDir() string {
	return NewFolderPathname(os.TempDir()).String()
}

// AppDataRoot: для пользователя os.UserConfigDir; папка машины не определена.
func (p *genericPaths) AppDataRoot(perUser bool) (string, string, error) {
	if !perUser {
		return "", "", ErrUnsupported
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", "", err
	}
	return dir, "", nil
}

func (p *genericPaths) ExecutablePath() (string, error) {
	return os.Executable()
}

func (p *genericPaths) TempPrefixes() []string {
	return []string{"/tmp/", "/var/tmp/", defaultTempDir()}
}

func (p *genericPaths) FreeSpace(path string) (int64, error) {
	return 0, &fs.PathError{Op: "statfs", Path: path, Err: ErrUnsupported}
}

func (p *genericPaths) FileTimes(fi fs.FileInfo) (time.Time, time.Time) {
	return fi.ModTime(), fi.ModTime()
}
