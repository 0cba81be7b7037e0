// Package locationhandler реализует команды, возвращающие стандартные
// расположения: temp-folder, app-temp-folder, app-data-folder и where.
package locationhandler

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

// RegisterCmd регистрирует команды расположений.
func RegisterCmd(rt *shared.Runtime) error {
	handlers := []command.Handler{
		&TempFolderHandler{rt: rt},
		&AppTempFolderHandler{rt: rt},
		&AppDataFolderHandler{rt: rt},
		&WhereHandler{rt: rt},
	}
	for _, h := range handlers {
		if err := command.Register(h); err != nil {
			return err
		}
	}
	return nil
}

// LocationData - путь к стандартной папке.
type LocationData struct {
	Path string `json:"path"`
	// Scope - user или machine (app-data-folder)
	Scope string `json:"scope,omitempty"`
	// Created - папка создана (temp-folder --create)
	Created bool `json:"created,omitempty"`
}

// WriteText выводит только путь: вывод удобно подставлять в скрипты.
func (d *LocationData) WriteText(w io.Writer) error {
	_, err := fmt.Fprintln(w, d.Path)
	return err
}

// TempFolderHandler обрабатывает temp-folder.
type TempFolderHandler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *TempFolderHandler) Name() string { return constants.ActTempFolder }

// Description возвращает описание команды для вывода в help.
func (h *TempFolderHandler) Description() string { return "Временная папка платформы" }

// Usage возвращает синтаксис аргументов.
func (h *TempFolderHandler) Usage() string { return "[--create] [--append <имя>]" }

// Execute возвращает временную папку, при --append с дополнительным уровнем.
func (h *TempFolderHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, constants.ActTempFolder, func(_ context.Context, _ logging.Logger) (*shared.Outcome, error) {
		flags := shared.NewFlagSet(constants.ActTempFolder)
		create := flags.BoolP("create", "c", false, "создать папку")
		appendName := flags.StringP("append", "a", "", "дополнительный уровень")
		if _, err := shared.ParseArgs(flags, cfg.Args, 0, 0); err != nil {
			return nil, err
		}

		p, err := h.rt.FS.TemporaryFolder(*create, *appendName)
		if err != nil {
			return nil, err
		}
		return &shared.Outcome{Data: &LocationData{Path: p.String(), Created: *create}}, nil
	})
}

// AppTempFolderHandler обрабатывает app-temp-folder.
type AppTempFolderHandler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *AppTempFolderHandler) Name() string { return constants.ActAppTempFolder }

// Description возвращает описание команды для вывода в help.
func (h *AppTempFolderHandler) Description() string {
	return "Создание временной папки приложения <приложение>-<pid>-<время>"
}

// Execute создаёт временную папку приложения.
func (h *AppTempFolderHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, constants.ActAppTempFolder, func(_ context.Context, _ logging.Logger) (*shared.Outcome, error) {
		if _, err := shared.ParseArgs(shared.NewFlagSet(constants.ActAppTempFolder), cfg.Args, 0, 0); err != nil {
			return nil, err
		}
		p, err := h.rt.FS.AppTempFolder()
		if err != nil {
			return nil, err
		}
		return &shared.Outcome{
			Data:    &LocationData{Path: p.String(), Created: true},
			Summary: shared.TempSummary(h.rt.FS),
		}, nil
	})
}

// AppDataFolderHandler обрабатывает app-data-folder.
type AppDataFolderHandler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *AppDataFolderHandler) Name() string { return constants.ActAppDataFolder }

// Description возвращает описание команды для вывода в help.
func (h *AppDataFolderHandler) Description() string {
	return "Папка данных приложения пользователя или, с --machine, общая для машины"
}

// Usage возвращает синтаксис аргументов.
func (h *AppDataFolderHandler) Usage() string { return "[--machine]" }

// Execute создаёт и возвращает папку данных. Значение --machine по
// умолчанию берётся из конфигурации (XPLATFS_MACHINE).
func (h *AppDataFolderHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, constants.ActAppDataFolder, func(_ context.Context, log logging.Logger) (*shared.Outcome, error) {
		flags := shared.NewFlagSet(constants.ActAppDataFolder)
		machine := flags.BoolP("machine", "m", cfg.FilesystemConfig != nil && cfg.FilesystemConfig.Machine,
			"общая папка машины")
		if _, err := shared.ParseArgs(flags, cfg.Args, 0, 0); err != nil {
			return nil, err
		}

		p, err := h.rt.FS.AppDataFolder(!*machine)
		if err != nil {
			return nil, err
		}
		scope := "user"
		if *machine {
			scope = "machine"
		}
		log.Debug("папка данных", "path", p.String(), "scope", scope)
		return &shared.Outcome{Data: &LocationData{Path: p.String(), Scope: scope}}, nil
	})
}

// WhereData - расположение процесса.
type WhereData struct {
	Executable       string `json:"executable"`
	WorkingDirectory string `json:"working_directory"`
}

// WriteText выводит оба пути.
func (d *WhereData) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Исполняемый файл:  %s\nТекущая директория: %s\n", d.Executable, d.WorkingDirectory)
	return err
}

// WhereHandler обрабатывает where.
type WhereHandler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *WhereHandler) Name() string { return constants.ActWhere }

// Description возвращает описание команды для вывода в help.
func (h *WhereHandler) Description() string {
	return "Путь к исполняемому файлу и текущая директория"
}

// Execute возвращает расположение процесса.
func (h *WhereHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return h.rt.Run(ctx, constants.ActWhere, func(_ context.Context, _ logging.Logger) (*shared.Outcome, error) {
		if _, err := shared.ParseArgs(shared.NewFlagSet(constants.ActWhere), cfg.Args, 0, 0); err != nil {
			return nil, err
		}
		exe, err := h.rt.FS.AppPathname()
		if err != nil {
			return nil, err
		}
		wd, err := h.rt.FS.CurrentDirectory()
		if err != nil {
			return nil, err
		}
		return &shared.Outcome{Data: &WhereData{Executable: exe.String(), WorkingDirectory: wd.String()}}, nil
	})
}
