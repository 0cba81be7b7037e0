// Package version реализует команду version: версия приложения, Go и платформа сборки.
package version

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/Kargones/xplatfs/internal/command"
	"github.com/Kargones/xplatfs/internal/command/handlers/shared"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/logging"
)

// RegisterCmd регистрирует команду version.
func RegisterCmd(rt *shared.Runtime) error {
	return command.Register(&VersionHandler{rt: rt})
}

// VersionData содержит информацию о версии приложения.
type VersionData struct {
	// Version - полная версия приложения.
	Version string `json:"version"`

	// GoVersion - версия Go, использованная при сборке.
	GoVersion string `json:"go_version"`

	// Commit - хеш коммита на момент сборки.
	Commit string `json:"commit"`

	// Platform - GOOS/GOARCH сборки.
	Platform string `json:"platform"`

	// Backend - бэкенд файловой системы (DiskFS, MemoryFS).
	Backend string `json:"backend"`
}

// WriteText выводит информацию о версии в человекочитаемом формате.
func (d *VersionData) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s version %s\n  Go:       %s\n  Commit:   %s\n  Platform: %s\n  Backend:  %s\n",
		constants.AppName, d.Version, d.GoVersion, d.Commit, d.Platform, d.Backend)
	return err
}

// buildVersionData создаёт VersionData с fallback значениями.
// Если version пустой - используется "dev", если commit пустой - "unknown".
func buildVersionData(version, commit, backend string) *VersionData {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	return &VersionData{
		Version:   version,
		GoVersion: runtime.Version(),
		Commit:    commit,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Backend:   backend,
	}
}

func backendName(fsys *filer.Filesystem) string {
	if fsys == nil {
		return "unknown"
	}
	if _, ok := fsys.Backend().(*filer.MemoryFileSystem); ok {
		return filer.MemoryFS.String()
	}
	return filer.DiskFS.String()
}

// VersionHandler обрабатывает команду version.
type VersionHandler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *VersionHandler) Name() string {
	return constants.ActVersion
}

// Description возвращает описание команды для вывода в help.
func (h *VersionHandler) Description() string {
	return "Вывод информации о версии приложения"
}

// Execute выполняет команду version: собирает данные о версии и выводит результат.
func (h *VersionHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, constants.ActVersion, func(_ context.Context, _ logging.Logger) (*shared.Outcome, error) {
		if _, err := shared.ParseArgs(shared.NewFlagSet(constants.ActVersion), cfg.Args, 0, 0); err != nil {
			return nil, err
		}
		return &shared.Outcome{Data: buildVersionData(constants.Version, constants.PreCommitHash, backendName(h.rt.FS))}, nil
	})
}
