// Package testutil содержит общие утилиты для тестирования обработчиков команд.
package testutil

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kargones/xplatfs/internal/entity/filer"
)

// Env - окружение платформы для тестов: временная папка /tmp/, домашняя /home/user.
var Env = map[string]string{
	"TMPDIR": "/tmp/",
	"HOME":   "/home/user",
}

// NewMemFilesystem создаёт движок поверх MemoryFileSystem с папками /tmp и
// /home/user. /tmp смонтирован отдельным томом, поэтому перенос из /tmp в
// /home/user идёт через копирование.
func NewMemFilesystem(t *testing.T, opts ...filer.Option) (*filer.Filesystem, *filer.MemoryFileSystem) {
	t.Helper()

	mem := filer.NewMemoryFileSystem()
	require.NoError(t, mem.Mount("/tmp"))
	require.NoError(t, mem.Mkdir("/home", 0755))
	require.NoError(t, mem.Mkdir("/home/user", 0755))

	lookup := func(key string) (string, bool) {
		v, ok := Env[key]
		return v, ok
	}
	base := []filer.Option{
		filer.WithMemoryFS(mem),
		filer.WithPlatform(filer.NewPlatformPaths(lookup)),
	}
	fsys, err := filer.NewFilesystem(append(base, opts...)...)
	require.NoError(t, err)
	return fsys, mem
}

// WriteFile создаёт файл с содержимым в бэкенде.
func WriteFile(t *testing.T, backend filer.FileSystem, name string, data []byte) {
	t.Helper()
	f, err := backend.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

// Result - разобранный JSON Result команды.
type Result struct {
	Status  string         `json:"status"`
	Command string         `json:"command"`
	Data    map[string]any `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Metadata *struct {
		DurationMs int64  `json:"duration_ms"`
		TraceID    string `json:"trace_id"`
		APIVersion string `json:"api_version"`
		Summary    *struct {
			KeyMetrics []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"key_metrics"`
			WarningsCount int      `json:"warnings_count"`
			Warnings      []string `json:"warnings"`
		} `json:"summary"`
	} `json:"metadata"`
}

// DecodeResult разбирает JSON, записанный JSONWriter.
func DecodeResult(t *testing.T, buf *bytes.Buffer) Result {
	t.Helper()
	var r Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r), buf.String())
	return r
}
