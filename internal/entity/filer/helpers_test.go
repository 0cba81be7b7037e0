package filer

import (
	"io"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stubPlatform - платформенные пути с фиксированными ответами.
type stubPlatform struct {
	tmp        string
	dataRoot   string
	dataPrefix string
	dataErr    error
	exe        string
	wd         string
	wdErr      error
	prefixes   []string
	free       int64
	freeErr    error
	freeCalls  []string
}

func (s *stubPlatform) TemporaryRoot() string { return s.tmp }

func (s *stubPlatform) AppDataRoot(perUser bool) (string, string, error) {
	if s.dataErr != nil {
		return "", "", s.dataErr
	}
	if perUser {
		return s.dataRoot, s.dataPrefix, nil
	}
	return "/var/cache/", "", nil
}

func (s *stubPlatform) ExecutablePath() (string, error) { return s.exe, nil }

func (s *stubPlatform) WorkingDirectory() (string, error) { return s.wd, s.wdErr }

func (s *stubPlatform) TempPrefixes() []string { return s.prefixes }

func (s *stubPlatform) FreeSpace(path string) (int64, error) {
	s.freeCalls = append(s.freeCalls, path)
	return s.free, s.freeErr
}

func (s *stubPlatform) FileTimes(fi fs.FileInfo) (time.Time, time.Time) {
	return fi.ModTime(), fi.ModTime()
}

func newStubPlatform() *stubPlatform {
	return &stubPlatform{
		tmp:        "/tmp/",
		dataRoot:   "/home/user/",
		dataPrefix: ".",
		exe:        "/usr/local/bin/backup",
		wd:         "/work",
		prefixes:   []string{"/tmp/", "/var/tmp/"},
	}
}

// envMap подменяет окружение процесса.
func envMap(m map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// newMemFilesystem создаёт движок поверх MemoryFileSystem с папкой /tmp/.
func newMemFilesystem(t *testing.T, opts ...Option) (*Filesystem, *MemoryFileSystem, *stubPlatform) {
	t.Helper()

	mem := NewMemoryFileSystem()
	require.NoError(t, mem.Mount("/tmp"))
	platform := newStubPlatform()

	base := []Option{WithMemoryFS(mem), WithPlatform(platform), WithIdentity("acme", "backup")}
	fsys, err := NewFilesystem(append(base, opts...)...)
	require.NoError(t, err)
	return fsys, mem, platform
}

func writeFile(t *testing.T, backend FileSystem, name string, data []byte) {
	t.Helper()
	f, err := backend.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func readFile(t *testing.T, backend FileSystem, name string) []byte {
	t.Helper()
	f, err := backend.Open(name)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	return data
}
