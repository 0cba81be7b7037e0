package logging

// Форматы вывода логов.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Уровни логирования.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Куда выводить логи.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Значения по умолчанию, общие для DefaultConfig и загрузчика конфигурации.
const (
	DefaultLevel      = LevelInfo
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultFilePath   = "/var/log/xplatfs.log"
	DefaultMaxSize    = 100 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 7 // days
	DefaultCompress   = true
)

// DefaultConfig возвращает Config со значениями по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}

// Config содержит настройки логирования.
type Config struct {
	// Format: "json" или "text".
	Format string

	// Level: "debug", "info", "warn", "error". Неизвестное значение - info.
	Level string

	// Output: "stderr" или "file".
	Output string

	// FilePath - файл логов при Output == "file".
	FilePath string

	// Параметры ротации lumberjack: размер файла в МБ, число архивов,
	// возраст архивов в днях, сжатие gzip.
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}
