package filer

import (
	"io/fs"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

type linuxPaths struct {
	envPaths
}

func newPlatformPaths(e envPaths) PlatformPaths {
	return &linuxPaths{envPaths: e}
}

func defaultTempDir() string {
	return "/tmp/"
}

// AppDataRoot: для пользователя DOTDIR, HOME или домашний каталог из passwd
// с префиксом "."; для машины /var/cache/.
func (p *linuxPaths) AppDataRoot(perUser bool) (string, string, error) {
	if !perUser {
		return "/var/cache/", "", nil
	}
	home, err := p.homeDir("DOTDIR", "HOME")
	if err != nil {
		return "", "", err
	}
	return home, ".", nil
}

func (p *linuxPaths) ExecutablePath() (string, error) {
	return os.Readlink("/proc/self/exe")
}

func (p *linuxPaths) TempPrefixes() []string {
	return []string{"/tmp/", "/var/tmp/"}
}

// FreeSpace считает Bavail * Frsize: в statfs(2) Linux блоки учитываются
// во фрагментах, Bsize - лишь оптимальный размер передачи.
func (p *linuxPaths) FreeSpace(path string) (int64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, &fs.PathError{Op: "statfs", Path: path, Err: err}
	}
	bsize := int64(st.Frsize)
	if bsize == 0 {
		bsize = int64(st.Bsize)
	}
	return int64(st.Bavail) * bsize, nil
}

// FileTimes: время создания - ctime (время изменения inode).
func (p *linuxPaths) FileTimes(fi fs.FileInfo) (time.Time, time.Time) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return fi.ModTime(), fi.ModTime()
	}
	return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)),
		time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec))
}
