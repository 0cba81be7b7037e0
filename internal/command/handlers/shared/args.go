package shared

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/Kargones/xplatfs/internal/entity/filer"
)

// NewFlagSet создаёт набор флагов команды. Ошибки разбора возвращаются,
// а не печатаются: stdout занят Result.
func NewFlagSet(command string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(command, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return fs
}

// ParseArgs разбирает флаги и проверяет число позиционных аргументов.
// maxArgs < 0 - без ограничения сверху. Пустой аргумент - ошибка.
func ParseArgs(fs *pflag.FlagSet, args []string, minArgs, maxArgs int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, InvalidArgs("%s: %v", fs.Name(), err)
	}
	rest := fs.Args()
	if len(rest) < minArgs || (maxArgs >= 0 && len(rest) > maxArgs) {
		return nil, InvalidArgs("%s: неверное число аргументов: %d", fs.Name(), len(rest))
	}
	for i, arg := range rest {
		if arg == "" {
			return nil, InvalidArgs("%s: пустой аргумент %d", fs.Name(), i+1)
		}
	}
	return rest, nil
}

// FolderArg переводит аргумент командной строки в путь в форме папки.
func FolderArg(s string) filer.Pathname {
	return filer.NewFolderPathname(s)
}

// EntryArg переводит аргумент в путь записи без изменения формы:
// "a/b/" остаётся папкой, "a/b" - файлом.
func EntryArg(s string) filer.Pathname {
	return filer.NewPathname(s)
}
