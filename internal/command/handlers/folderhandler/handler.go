// Package folderhandler реализует команды create-folder и delete-folder.
package folderhandler

import (
	"context"
	"fmt"
	"io"

	"github.com/Kargones/xplatfs/internal/command"
	"github.com/Kargones/xplatfs/internal/command/handlers/shared"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/Kargones/xplatfs/internal/pkg/logging"
)

// RegisterCmd регистрирует обе команды работы с папками.
func RegisterCmd(rt *shared.Runtime) error {
	if err := command.Register(&CreateHandler{rt: rt}); err != nil {
		return err
	}
	return command.Register(&DeleteHandler{rt: rt})
}

// FolderData - результат create-folder и delete-folder.
type FolderData struct {
	// Path - путь папки в форме папки
	Path string `json:"path"`
	// Existed - папка уже существовала (create-folder)
	Existed bool `json:"existed,omitempty"`
	// Recursive - удалено вместе с содержимым (delete-folder)
	Recursive bool `json:"recursive,omitempty"`
	deleted   bool
}

// WriteText выводит результат в человекочитаемом формате.
func (d *FolderData) WriteText(w io.Writer) error {
	var msg string
	switch {
	case d.deleted && d.Recursive:
		msg = "Папка удалена вместе с содержимым"
	case d.deleted:
		msg = "Папка удалена"
	case d.Existed:
		msg = "Папка уже существует"
	default:
		msg = "Папка создана"
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", msg, d.Path)
	return err
}

// CreateHandler обрабатывает create-folder <путь>.
type CreateHandler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *CreateHandler) Name() string { return constants.ActCreateFolder }

// Description возвращает описание команды для вывода в help.
func (h *CreateHandler) Description() string {
	return "Создание папки вместе с недостающими родителями"
}

// Usage возвращает синтаксис аргументов.
func (h *CreateHandler) Usage() string { return "<папка>" }

// Execute создаёт папку. Существующая папка - не ошибка.
func (h *CreateHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, constants.ActCreateFolder, func(_ context.Context, log logging.Logger) (*shared.Outcome, error) {
		args, err := shared.ParseArgs(shared.NewFlagSet(constants.ActCreateFolder), cfg.Args, 1, 1)
		if err != nil {
			return nil, err
		}
		p := shared.FolderArg(args[0])

		existed := h.rt.FS.IsFolder(p)
		if err = h.rt.FS.CreateFolder(p); err != nil {
			return nil, err
		}
		log.Info("папка готова", "path", p.String(), "existed", existed)
		return &shared.Outcome{Data: &FolderData{Path: p.String(), Existed: existed}}, nil
	})
}

// DeleteHandler обрабатывает delete-folder [--recursive] <путь>.
type DeleteHandler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *DeleteHandler) Name() string { return constants.ActDeleteFolder }

// Description возвращает описание команды для вывода в help.
func (h *DeleteHandler) Description() string {
	return "Удаление пустой папки или, с --recursive, папки с содержимым"
}

// Usage возвращает синтаксис аргументов.
func (h *DeleteHandler) Usage() string { return "[--recursive] <папка>" }

// Execute удаляет папку. Без --recursive непустая папка даёт ошибку.
func (h *DeleteHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, constants.ActDeleteFolder, func(_ context.Context, log logging.Logger) (*shared.Outcome, error) {
		flags := shared.NewFlagSet(constants.ActDeleteFolder)
		recursive := flags.BoolP("recursive", "r", false, "удалить вместе с содержимым")
		args, err := shared.ParseArgs(flags, cfg.Args, 1, 1)
		if err != nil {
			return nil, err
		}
		p := shared.FolderArg(args[0])

		if *recursive {
			err = h.rt.FS.DeleteFolderAndContents(p)
		} else {
			err = h.rt.FS.DeleteEmptyFolder(p)
		}
		if err != nil {
			return nil, err
		}
		log.Info("папка удалена", "path", p.String(), "recursive", *recursive)
		return &shared.Outcome{Data: &FolderData{Path: p.String(), Recursive: *recursive, deleted: true}}, nil
	})
}
