package filer

import (
	"io/fs"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

type darwinPaths struct {
	envPaths
}

func newPlatformPaths(e envPaths) PlatformPaths {
	return &darwinPaths{envPaths: e}
}

func defaultTempDir() string {
	return "/tmp/"
}

// AppDataRoot: ~/Library/Application Support/ для пользователя,
// /Library/Application Support/ для машины.
func (p *darwinPaths) AppDataRoot(perUser bool) (string, string, error) {
	if !perUser {
		return "/Library/Application Support/", "", nil
	}
	home, err := p.homeDir("HOME")
	if err != nil {
		return "", "", err
	}
	return NewFolderPathname(home).AppendFolder("Library").AppendFolder("Application Support").String(), "", nil
}

func (p *darwinPaths) ExecutablePath() (string, error) {
	return os.Executable()
}

func (p *darwinPaths) TempPrefixes() []string {
	return []string{"/tmp/", "/var/tmp/", "/private/tmp/", "/private/var/tmp/", "/private/var/folders/"}
}

// FreeSpace считает Bavail * Bsize: в statfs(2) macOS f_bsize - размер
// фундаментального блока, в котором выражен f_bavail.
func (p *darwinPaths) FreeSpace(path string) (int64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, &fs.PathError{Op: "statfs", Path: path, Err: err}
	}
	return int64(st.Bavail) * int64(st.Bsize), nil
}

// FileTimes: на APFS/HFS+ есть настоящее время создания (birthtime).
func (p *darwinPaths) FileTimes(fi fs.FileInfo) (time.Time, time.Time) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return fi.ModTime(), fi.ModTime()
	}
	return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec),
		time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
}
