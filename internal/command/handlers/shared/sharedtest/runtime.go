// Package sharedtest собирает shared.Runtime для тестов обработчиков.
package sharedtest

import (
	"bytes"
	"testing"

	"github.com/Kargones/xplatfs/internal/command/handlers/shared"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/output"
	"github.com/Kargones/xplatfs/internal/pkg/testutil"
)

// Harness - Runtime поверх MemoryFileSystem и буфер, в который пишется Result.
type Harness struct {
	RT  *shared.Runtime
	FS  *filer.Filesystem
	Mem *filer.MemoryFileSystem
	Out *bytes.Buffer
}

// New создаёт Harness с JSON-выводом и организацией acme/backup.
func New(t *testing.T, opts ...filer.Option) *Harness {
	t.Helper()
	base := []filer.Option{filer.WithIdentity("acme", "backup")}
	fsys, mem := testutil.NewMemFilesystem(t, append(base, opts...)...)

	out := &bytes.Buffer{}
	return &Harness{
		RT: &shared.Runtime{
			FS:     fsys,
			Logger: logging.NewNopLogger(),
			Writer: output.NewJSONWriter(),
			Stdout: out,
		},
		FS:  fsys,
		Mem: mem,
		Out: out,
	}
}

// Config возвращает конфигурацию с аргументами команды.
func Config(args ...string) *config.Config {
	return &config.Config{Args: args, FilesystemConfig: &config.FilesystemConfig{}}
}

// Result разбирает записанный Result и очищает буфер.
func (h *Harness) Result(t *testing.T) testutil.Result {
	t.Helper()
	r := testutil.DecodeResult(t, h.Out)
	h.Out.Reset()
	return r
}
