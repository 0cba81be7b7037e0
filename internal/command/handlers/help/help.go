// Package help реализует команду help: список зарегистрированных команд
// и переменных окружения.
package help

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Kargones/xplatfs/internal/command"
	"github.com/Kargones/xplatfs/internal/command/handlers/shared"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/Kargones/xplatfs/internal/pkg/logging"
)

// RegisterCmd регистрирует команду help.
func RegisterCmd(rt *shared.Runtime) error {
	return command.Register(&Handler{rt: rt})
}

// Data содержит информацию обо всех доступных командах.
type Data struct {
	Commands []CommandInfo `json:"commands"`
}

// CommandInfo описывает одну команду.
type CommandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Usage - синтаксис аргументов, пусто для команд без аргументов.
	Usage string `json:"usage,omitempty"`
}

// options - переменные окружения, влияющие на все команды.
var options = []struct{ name, desc string }{
	{constants.EnvOutputFormat + "=json", "Машиночитаемый вывод"},
	{constants.EnvConfigFile + "=<файл>", "YAML файл конфигурации"},
	{constants.EnvDotenvFile + "=<файл>", ".env файл, читается первым"},
	{constants.EnvCommand + "=<команда>", "Команда, если она не передана аргументом"},
	{"XPLATFS_ORGANIZATION, XPLATFS_APPLICATION", "Имя организации и приложения"},
	{"XPLATFS_BACKEND=memory", "Файловая система в памяти"},
}

// Handler обрабатывает команду help.
type Handler struct {
	rt *shared.Runtime
}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActHelp
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Вывод списка доступных команд"
}

// Execute выполняет команду help: собирает список команд и выводит результат.
func (h *Handler) Execute(ctx context.Context, _ *config.Config) error {
	return h.rt.Run(ctx, constants.ActHelp, func(_ context.Context, _ logging.Logger) (*shared.Outcome, error) {
		return &shared.Outcome{Data: buildData()}, nil
	})
}

// buildData собирает информацию обо всех зарегистрированных командах.
func buildData() *Data {
	handlers := command.All()
	data := &Data{Commands: make([]CommandInfo, 0, len(handlers))}
	for _, name := range command.Names() {
		h := handlers[name]
		info := CommandInfo{Name: name, Description: h.Description()}
		if u, ok := h.(command.Usage); ok {
			info.Usage = u.Usage()
		}
		data.Commands = append(data.Commands, info)
	}
	return data
}

// WriteText выводит информацию о командах в человекочитаемом формате.
func (d *Data) WriteText(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString(constants.AppName + " - кроссплатформенные операции с файловой системой\n")
	sb.WriteString("\nИспользование: " + constants.AppName + " <команда> [аргументы]\n")
	sb.WriteString("\nКоманды:\n")

	// Определяем максимальную длину для выравнивания
	maxLen := 0
	for _, cmd := range d.Commands {
		maxLen = max(maxLen, len(cmd.Name))
	}
	for _, cmd := range d.Commands {
		fmt.Fprintf(&sb, "  %-*s  %s\n", maxLen, cmd.Name, cmd.Description)
		if cmd.Usage != "" {
			fmt.Fprintf(&sb, "  %-*s    %s %s\n", maxLen, "", cmd.Name, cmd.Usage)
		}
	}

	sb.WriteString("\nОпции:\n")
	for _, o := range options {
		fmt.Fprintf(&sb, "  %-42s %s\n", o.name, o.desc)
	}

	_, err := fmt.Fprint(w, sb.String())
	return err
}
