package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/xplatfs/internal/constants"
)

// isolate очищает окружение, влияющее на конфигурацию.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"XPLATFS_COMMAND", "XPLATFS_CONFIG", "XPLATFS_ENV_FILE",
		"XPLATFS_ORGANIZATION", "XPLATFS_APPLICATION", "XPLATFS_METRICS_ENABLED",
		"XPLATFS_TRACING_ENABLED", "XPLATFS_CLEANUP_ON_EXIT",
	} {
		// t.Setenv восстановит значение после теста
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("XPLATFS_OUTPUT_FORMAT", "json")
	t.Setenv("XPLATFS_LOG_LEVEL", "error")
	t.Setenv("XPLATFS_BACKEND", "disk")
}

func TestRun_ExitCodes(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"version", []string{"version"}, constants.ExitOK},
		{"help по умолчанию", nil, constants.ExitOK},
		{"неизвестная команда", []string{"format-disk"}, constants.ExitUnknownCommand},
		{"ошибка команды", []string{"delete-file", filepath.Join(dir, "missing")}, constants.ExitCommandError},
		{"неверные аргументы", []string{"copy", file}, constants.ExitCommandError},
		{"stat", []string{"stat", file}, constants.ExitOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}

func TestRun_FileLifecycle(t *testing.T) {
	isolate(t)
	dir := filepath.ToSlash(t.TempDir())

	require.Equal(t, constants.ExitOK, run([]string{"create-folder", dir + "/a/b"}))
	assert.DirExists(t, filepath.Join(dir, "a", "b"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "b", "f.txt"), []byte("data"), 0644))
	require.Equal(t, constants.ExitOK, run([]string{"copy", dir + "/a", dir + "/c"}))
	assert.FileExists(t, filepath.Join(dir, "c", "b", "f.txt"))

	require.Equal(t, constants.ExitOK, run([]string{"move", dir + "/c/b/f.txt", dir + "/g.txt"}))
	assert.FileExists(t, filepath.Join(dir, "g.txt"))

	require.Equal(t, constants.ExitCommandError, run([]string{"delete-folder", dir + "/a"}))
	require.Equal(t, constants.ExitOK, run([]string{"delete-folder", "--recursive", dir + "/a"}))
	assert.NoDirExists(t, filepath.Join(dir, "a"))
}

func TestRun_CleanupOnExit(t *testing.T) {
	isolate(t)
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)
	t.Setenv("XPLATFS_ORGANIZATION", "acme")
	t.Setenv("XPLATFS_APPLICATION", "backup")
	t.Setenv("XPLATFS_CLEANUP_ON_EXIT", "true")

	require.Equal(t, constants.ExitOK, run([]string{"app-temp-folder"}))
	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries, "временная папка приложения удаляется при выходе")
}

func TestRun_ConfigError(t *testing.T) {
	isolate(t)
	t.Setenv("XPLATFS_BACKEND", "s3")
	assert.Equal(t, constants.ExitConfigError, run([]string{"version"}))

	isolate(t)
	t.Setenv("XPLATFS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, constants.ExitConfigError, run([]string{"version"}))
}

func TestRun_MemoryBackend(t *testing.T) {
	isolate(t)
	t.Setenv("XPLATFS_BACKEND", "memory")

	assert.Equal(t, constants.ExitOK, run([]string{"version"}))
	assert.Equal(t, constants.ExitOK, run([]string{"temp-folder"}))
}
