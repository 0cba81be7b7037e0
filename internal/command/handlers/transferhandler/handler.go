// Package transferhandler реализует команды move и copy для файлов и папок.
// Между томами перенос выполняется копированием с удалением источника.
package transferhandler

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"sync/atomic"

	"github.com/Kargones/xplatfs/internal/command"
	"github.com/Kargones/xplatfs/internal/command/handlers/shared"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/output"
)

// RegisterCmd регистрирует move и copy.
func RegisterCmd(rt *shared.Runtime) error {
	if err := command.Register(&Handler{rt: rt, name: constants.ActMove}); err != nil {
		return err
	}
	return command.Register(&Handler{rt: rt, name: constants.ActCopy})
}

// TransferData - результат move и copy.
type TransferData struct {
	From string `json:"from"`
	To   string `json:"to"`
	// Kind - file или directory
	Kind  string `json:"kind"`
	Files int64  `json:"files"`
	Bytes int64  `json:"bytes"`
	verb  string
}

// WriteText выводит результат в человекочитаемом формате.
func (d *TransferData) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s → %s\n", d.verb, d.From, d.To)
	return err
}

// Handler обрабатывает move и copy: команды отличаются только операцией движка.
type Handler struct {
	rt   *shared.Runtime
	name string
}

// Name возвращает имя команды.
func (h *Handler) Name() string { return h.name }

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	if h.name == constants.ActMove {
		return "Перемещение файла или папки, между томами - копированием"
	}
	return "Копирование файла или дерева папок"
}

// Usage возвращает синтаксис аргументов.
func (h *Handler) Usage() string { return "<источник> <назначение>" }

// Execute определяет вид источника и выполняет операцию над файлом или папкой.
func (h *Handler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, h.name, func(_ context.Context, log logging.Logger) (*shared.Outcome, error) {
		args, err := shared.ParseArgs(shared.NewFlagSet(h.name), cfg.Args, 2, 2)
		if err != nil {
			return nil, err
		}

		from, to := shared.EntryArg(args[0]), shared.EntryArg(args[1])
		folder := from.IsFolder() || h.rt.FS.IsFolder(from)
		if folder {
			from, to = shared.FolderArg(args[0]), shared.FolderArg(args[1])
		}

		data := &TransferData{From: from.String(), To: to.String(), Kind: filer.KindFile.String()}
		if folder {
			data.Kind = filer.KindDirectory.String()
		}
		// Объём считается до операции: после move источника уже нет.
		if data.Files, data.Bytes, err = measure(h.rt.FS, from, folder); err != nil {
			log.Warn("не удалось оценить объём источника", "path", from.String(), "error", err.Error())
		}

		move := h.name == constants.ActMove
		switch {
		case move && folder:
			data.verb = "Папка перемещена:"
			err = h.rt.FS.MoveFolder(from, to)
		case move:
			data.verb = "Файл перемещён:"
			err = h.rt.FS.MoveFile(from, to)
		case folder:
			data.verb = "Папка скопирована:"
			err = h.rt.FS.CopyFolder(from, to)
		default:
			data.verb = "Файл скопирован:"
			err = h.rt.FS.CopyFile(from, to)
		}
		if err != nil {
			return nil, err
		}

		log.Info("перенос выполнен", "from", data.From, "to", data.To, "kind", data.Kind, "bytes", data.Bytes)

		summary := output.NewSummaryInfo()
		summary.AddMetric("Файлов", shared.FormatCount(data.Files), "")
		summary.AddMetric("Объём", shared.FormatCount(data.Bytes), "байт")
		if !move && h.rt.FS.IsTemporaryPath(to) {
			summary.AddWarning("назначение находится во временной папке")
		}
		return &shared.Outcome{Data: data, Summary: summary}, nil
	})
}

// measure считает файлы и байты источника. Обход бэкенда может вызывать
// функцию конкурентно.
func measure(fsys *filer.Filesystem, p filer.Pathname, folder bool) (int64, int64, error) {
	if !folder {
		size, err := fsys.FileSize(p)
		if err != nil {
			return 0, 0, err
		}
		return 1, size, nil
	}

	var files, bytes atomic.Int64
	err := fsys.Backend().Walk(p.TrimSeparator(), func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files.Add(1)
		bytes.Add(info.Size())
		return nil
	})
	return files.Load(), bytes.Load(), err
}
