package filer

import (
	"errors"
	"io/fs"
	"os"
	"os/user"
	"time"
)

// LookupEnvFunc читает переменную окружения; совместима с os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// PlatformPaths - платформенная часть движка: где лежат временные файлы,
// данные приложения, исполняемый файл, как считать свободное место и
// время создания файла. Реализация выбирается тегами сборки.
type PlatformPaths interface {
	// TemporaryRoot возвращает временную папку: первая непустая из
	// TMPDIR, TMP, иначе значение по умолчанию для платформы.
	TemporaryRoot() string

	// AppDataRoot возвращает корень для данных приложений и префикс имени
	// папки организации ("." для скрытых папок в домашнем каталоге).
	AppDataRoot(perUser bool) (root, prefix string, err error)

	// ExecutablePath возвращает путь к исполняемому файлу процесса.
	ExecutablePath() (string, error)

	// WorkingDirectory возвращает текущую рабочую директорию.
	WorkingDirectory() (string, error)

	// TempPrefixes возвращает префиксы путей, считающихся временными.
	TempPrefixes() []string

	// FreeSpace возвращает число байт, доступных непривилегированному
	// пользователю на томе, содержащем существующий path.
	FreeSpace(path string) (int64, error)

	// FileTimes возвращает время создания и последнего доступа.
	FileTimes(fi fs.FileInfo) (created, accessed time.Time)
}

// SpaceReporter реализуется бэкендами, которые сами знают свободное место
// (MemoryFileSystem). Для остальных используется PlatformPaths.FreeSpace.
type SpaceReporter interface {
	FreeSpace(path string) (int64, error)
}

var errNoHome = errors.New("не удалось определить домашний каталог")

// envPaths содержит общую для платформ логику поиска по окружению.
type envPaths struct {
	lookup      LookupEnvFunc
	currentUser func() (*user.User, error)
}

// NewPlatformPaths создаёт реализацию PlatformPaths для текущей ОС.
// lookup == nil означает os.LookupEnv.
func NewPlatformPaths(lookup LookupEnvFunc) PlatformPaths {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return newPlatformPaths(envPaths{lookup: lookup, currentUser: user.Current})
}

// firstEnv возвращает первую непустую переменную из списка.
func (e envPaths) firstEnv(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := e.lookup(k); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// TemporaryRoot ищет временную папку: TMPDIR, TMP, значение по умолчанию.
func (e envPaths) TemporaryRoot() string {
	if v, ok := e.firstEnv("TMPDIR", "TMP"); ok {
		return v
	}
	return defaultTempDir()
}

// WorkingDirectory возвращает os.Getwd.
func (e envPaths) WorkingDirectory() (string, error) {
	return os.Getwd()
}

// homeDir ищет домашний каталог по переменным keys, затем по учётной записи.
func (e envPaths) homeDir(keys ...string) (string, error) {
	if v, ok := e.firstEnv(keys...); ok {
		return v, nil
	}
	u, err := e.currentUser()
	if err != nil {
		return "", errors.Join(errNoHome, err)
	}
	if u.HomeDir == "" {
		return "", errNoHome
	}
	return u.HomeDir, nil
}
