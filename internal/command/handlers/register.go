// Package handlers явно регистрирует все обработчики команд.
// Регистрация без init() делает зависимости обработчиков видимыми:
// каждый получает shared.Runtime, собранный di.
package handlers

import (
	"github.com/Kargones/xplatfs/internal/command/handlers/filehandler"
	"github.com/Kargones/xplatfs/internal/command/handlers/folderhandler"
	"github.com/Kargones/xplatfs/internal/command/handlers/help"
	"github.com/Kargones/xplatfs/internal/command/handlers/locationhandler"
	"github.com/Kargones/xplatfs/internal/command/handlers/shared"
	"github.com/Kargones/xplatfs/internal/command/handlers/stathandler"
	"github.com/Kargones/xplatfs/internal/command/handlers/transferhandler"
	"github.com/Kargones/xplatfs/internal/command/handlers/version"
)

// RegisterAll регистрирует все обработчики в глобальном реестре.
// Вызывается один раз из main() до выполнения команды.
func RegisterAll(rt *shared.Runtime) error {
	registrars := []func(*shared.Runtime) error{
		folderhandler.RegisterCmd,
		filehandler.RegisterCmd,
		transferhandler.RegisterCmd,
		stathandler.RegisterCmd,
		locationhandler.RegisterCmd,
		version.RegisterCmd,
		help.RegisterCmd,
	}
	for _, register := range registrars {
		if err := register(rt); err != nil {
			return err
		}
	}
	return nil
}
