// Package command предоставляет интерфейс и реестр команд приложения.
// Обработчики регистрируются явно через handlers.RegisterAll.
package command

import (
	"context"

	"github.com/Kargones/xplatfs/internal/config"
)

// Handler определяет интерфейс обработчика команды.
type Handler interface {
	// Name возвращает имя команды в kebab-case (см. constants.Act*).
	Name() string

	// Description возвращает описание команды для вывода в help.
	Description() string

	// Execute выполняет команду. Аргументы команды - cfg.Args.
	Execute(ctx context.Context, cfg *config.Config) error
}

// Usage опционально реализуется обработчиками с аргументами.
// Строка выводится командой help после имени команды.
type Usage interface {
	Usage() string
}
