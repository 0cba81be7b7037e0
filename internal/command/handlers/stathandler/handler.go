// Package stathandler реализует команды stat и free-space.
package stathandler

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Kargones/xplatfs/internal/command"
	"github.com/Kargones/xplatfs/internal/command/handlers/shared"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/output"
)

// RegisterCmd регистрирует stat и free-space.
func RegisterCmd(rt *shared.Runtime) error {
	if err := command.Register(&StatHandler{rt: rt}); err != nil {
		return err
	}
	return command.Register(&FreeSpaceHandler{rt: rt})
}

// StatData - сведения о записи файловой системы.
type StatData struct {
	Path string `json:"path"`
	// Kind - directory, file или absent
	Kind      string `json:"kind"`
	Temporary bool   `json:"temporary"`
	Size      *int64 `json:"size,omitempty"`
	// Время в RFC 3339 с точностью до секунды
	Created  string `json:"created,omitempty"`
	Modified string `json:"modified,omitempty"`
	Accessed string `json:"accessed,omitempty"`
	// MIME - тип содержимого по сигнатуре (только для файлов)
	MIME      string `json:"mime,omitempty"`
	Extension string `json:"extension,omitempty"`
	// Symlink - сама запись является символической ссылкой
	Symlink bool `json:"symlink,omitempty"`
	// Entries - число записей в папке (без рекурсии)
	Entries *int `json:"entries,omitempty"`
}

// WriteText выводит сведения построчно.
func (d *StatData) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Путь: %s\nТип:  %s\n", d.Path, d.Kind); err != nil {
		return err
	}
	lines := []struct{ label, value string }{
		{"Создан:   ", d.Created},
		{"Изменён:  ", d.Modified},
		{"Доступ:   ", d.Accessed},
		{"MIME:     ", d.MIME},
	}
	if d.Size != nil {
		if _, err := fmt.Fprintf(w, "Размер:   %s байт\n", shared.FormatCount(*d.Size)); err != nil {
			return err
		}
	}
	if d.Entries != nil {
		if _, err := fmt.Fprintf(w, "Записей:  %d\n", *d.Entries); err != nil {
			return err
		}
	}
	for _, l := range lines {
		if l.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", l.label, l.value); err != nil {
			return err
		}
	}
	if d.Symlink {
		if _, err := fmt.Fprintln(w, "Символическая ссылка"); err != nil {
			return err
		}
	}
	if d.Temporary {
		_, err := fmt.Fprintln(w, "Во временной папке")
		return err
	}
	return nil
}

// StatHandler обрабатывает stat <путь>.
type StatHandler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *StatHandler) Name() string { return constants.ActStat }

// Description возвращает описание команды для вывода в help.
func (h *StatHandler) Description() string {
	return "Тип, размер, отметки времени и MIME-тип записи"
}

// Usage возвращает синтаксис аргументов.
func (h *StatHandler) Usage() string { return "<путь>" }

// Execute классифицирует путь и собирает метаданные. Отсутствующий путь -
// успешный ответ с kind=absent.
func (h *StatHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, constants.ActStat, func(_ context.Context, log logging.Logger) (*shared.Outcome, error) {
		args, err := shared.ParseArgs(shared.NewFlagSet(constants.ActStat), cfg.Args, 1, 1)
		if err != nil {
			return nil, err
		}
		p := shared.EntryArg(args[0])
		fsys := h.rt.FS

		kind := fsys.Classify(p)
		if kind == filer.KindError {
			// Classify не возвращает причину: повторный запрос даёт ошибку ОС
			if _, err = fsys.FileSize(p); err == nil {
				err = fmt.Errorf("stat %s: путь не удалось классифицировать", p)
			}
			return nil, err
		}

		// Папка, записанная без завершающего разделителя, приводится к форме
		// папки: IsTemporaryPath сравнивает префиксы лексически.
		if kind == filer.KindDirectory && !p.IsFolder() {
			p = filer.NewFolderPathname(p.String())
		}

		data := &StatData{Path: p.String(), Kind: kind.String(), Temporary: fsys.IsTemporaryPath(p)}
		if kind == filer.KindAbsent {
			return &shared.Outcome{Data: data}, nil
		}

		size, err := fsys.FileSize(p)
		if err != nil {
			return nil, err
		}
		data.Size = &size

		times := map[filer.FileTimeKind]*string{
			filer.FileTimeCreated:  &data.Created,
			filer.FileTimeModified: &data.Modified,
			filer.FileTimeAccessed: &data.Accessed,
		}
		for k, dst := range times {
			t, err := fsys.FileTime(p, k)
			if err != nil {
				return nil, err
			}
			*dst = t.Format(time.RFC3339)
		}

		// Classify идёт по ссылке, Lstat смотрит на саму запись
		if info, err := fsys.Backend().Lstat(p.TrimSeparator()); err == nil {
			data.Symlink = info.Mode()&fs.ModeSymlink != 0
		}

		summary := output.NewSummaryInfo()
		summary.AddMetric("Размер", shared.FormatCount(size), "байт")
		if kind == filer.KindDirectory {
			entries, err := fsys.Backend().ReadDir(p.TrimSeparator())
			if err != nil {
				return nil, filer.WrapError("read dir", p.String(), err)
			}
			n := len(entries)
			data.Entries = &n
			summary.AddMetric("Записей", strconv.Itoa(n), "")
		}
		if kind == filer.KindFile {
			mt, err := detectMIME(fsys, p)
			if err != nil {
				log.Warn("не удалось определить MIME-тип", "path", p.String(), "error", err.Error())
				summary.AddWarning("MIME-тип не определён: " + err.Error())
			} else {
				data.MIME, data.Extension = mt.String(), mt.Extension()
			}
		}
		return &shared.Outcome{Data: data, Summary: summary}, nil
	})
}

// detectMIME определяет тип по первым байтам через бэкенд движка,
// поэтому работает и для файловой системы в памяти.
func detectMIME(fsys *filer.Filesystem, p filer.Pathname) (*mimetype.MIME, error) {
	f, err := fsys.OpenFile(p, os.O_RDONLY)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return mimetype.DetectReader(f)
}

// FreeSpaceData - свободное место на томе.
type FreeSpaceData struct {
	Path      string `json:"path"`
	FreeBytes int64  `json:"free_bytes"`
}

// WriteText выводит объём с разделителями разрядов.
func (d *FreeSpaceData) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Свободно на томе %s: %s байт\n", d.Path, shared.FormatCount(d.FreeBytes))
	return err
}

// FreeSpaceHandler обрабатывает free-space [путь].
type FreeSpaceHandler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *FreeSpaceHandler) Name() string { return constants.ActFreeSpace }

// Description возвращает описание команды для вывода в help.
func (h *FreeSpaceHandler) Description() string {
	return "Свободное место на томе пути (путь может ещё не существовать)"
}

// Usage возвращает синтаксис аргументов.
func (h *FreeSpaceHandler) Usage() string { return "[путь]" }

// Execute запрашивает свободное место. Без аргумента - для текущей директории.
func (h *FreeSpaceHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, constants.ActFreeSpace, func(_ context.Context, _ logging.Logger) (*shared.Outcome, error) {
		args, err := shared.ParseArgs(shared.NewFlagSet(constants.ActFreeSpace), cfg.Args, 0, 1)
		if err != nil {
			return nil, err
		}

		var p filer.Pathname
		if len(args) == 1 {
			p = shared.EntryArg(args[0])
		} else if p, err = h.rt.FS.CurrentDirectory(); err != nil {
			return nil, err
		}

		free, err := h.rt.FS.DiskFreeSpace(p)
		if err != nil {
			return nil, err
		}

		summary := output.NewSummaryInfo()
		summary.AddMetric("Свободно", shared.FormatCount(free), "байт")
		return &shared.Outcome{Data: &FreeSpaceData{Path: p.String(), FreeBytes: free}, Summary: summary}, nil
	})
}
