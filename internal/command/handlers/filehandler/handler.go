// Package filehandler реализует команды delete-file и temp-file.
package filehandler

import (
	"context"
	"fmt"
	"io"

	"github.com/Kargones/xplatfs/internal/command"
	"github.com/Kargones/xplatfs/internal/command/handlers/shared"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/logging"
)

// RegisterCmd регистрирует команды работы с файлами.
func RegisterCmd(rt *shared.Runtime) error {
	if err := command.Register(&DeleteHandler{rt: rt}); err != nil {
		return err
	}
	return command.Register(&TempFileHandler{rt: rt})
}

// FileData - результат команд над одним файлом.
type FileData struct {
	Path string `json:"path"`
	// Temporary - путь лежит во временной папке платформы
	Temporary bool `json:"temporary"`
	action    string
}

// WriteText выводит результат в человекочитаемом формате.
func (d *FileData) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: %s\n", d.action, d.Path)
	return err
}

// DeleteHandler обрабатывает delete-file <файл>.
type DeleteHandler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *DeleteHandler) Name() string { return constants.ActDeleteFile }

// Description возвращает описание команды для вывода в help.
func (h *DeleteHandler) Description() string { return "Удаление файла" }

// Usage возвращает синтаксис аргументов.
func (h *DeleteHandler) Usage() string { return "<файл>" }

// Execute удаляет файл. Папка или отсутствующий путь - нарушение предусловия.
func (h *DeleteHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, constants.ActDeleteFile, func(_ context.Context, log logging.Logger) (*shared.Outcome, error) {
		args, err := shared.ParseArgs(shared.NewFlagSet(constants.ActDeleteFile), cfg.Args, 1, 1)
		if err != nil {
			return nil, err
		}
		p := shared.EntryArg(args[0])
		if p.IsFolder() {
			return nil, shared.InvalidArgs("%s: путь %q записан как папка", constants.ActDeleteFile, args[0])
		}

		if err = h.rt.FS.DeleteFile(p); err != nil {
			return nil, err
		}
		log.Info("файл удалён", "path", p.String())
		return &shared.Outcome{Data: &FileData{
			Path:      p.String(),
			Temporary: h.rt.FS.IsTemporaryPath(p),
			action:    "Файл удалён",
		}}, nil
	})
}

// TempFileHandler обрабатывает temp-file [--prefix <префикс>] [папка].
type TempFileHandler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *TempFileHandler) Name() string { return constants.ActTempFile }

// Description возвращает описание команды для вывода в help.
func (h *TempFileHandler) Description() string {
	return "Создание уникального пустого файла (по умолчанию во временной папке приложения)"
}

// Usage возвращает синтаксис аргументов.
func (h *TempFileHandler) Usage() string { return "[--prefix <префикс>] [папка]" }

// Execute создаёт файл и выводит его путь.
func (h *TempFileHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, constants.ActTempFile, func(_ context.Context, log logging.Logger) (*shared.Outcome, error) {
		flags := shared.NewFlagSet(constants.ActTempFile)
		prefix := flags.StringP("prefix", "p", filer.TempFilePrefix, "префикс имени файла")
		args, err := shared.ParseArgs(flags, cfg.Args, 0, 1)
		if err != nil {
			return nil, err
		}

		var dir filer.Pathname
		if len(args) == 1 {
			dir = shared.FolderArg(args[0])
		} else if dir, err = h.rt.FS.AppTempFolder(); err != nil {
			return nil, err
		}

		p, err := h.rt.FS.TempFilename(dir, *prefix)
		if err != nil {
			return nil, err
		}
		log.Info("временный файл создан", "path", p.String())
		return &shared.Outcome{Data: &FileData{
			Path:      p.String(),
			Temporary: h.rt.FS.IsTemporaryPath(p),
			action:    "Создан файл",
		}, Summary: shared.TempSummary(h.rt.FS)}, nil
	})
}
