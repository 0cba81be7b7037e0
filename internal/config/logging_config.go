package config

import (
	"log/slog"

	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/ilyakaznacheev/cleanenv"
)

// LoggingConfig содержит настройки для логирования.
type LoggingConfig struct {
	// Level - уровень логирования (debug, info, warn, error)
	Level string `yaml:"level" env:"XPLATFS_LOG_LEVEL" env-default:"info"`

	// Format - формат логов (json, text)
	Format string `yaml:"format" env:"XPLATFS_LOG_FORMAT" env-default:"text"`

	// Output - вывод логов (stderr, file)
	Output string `yaml:"output" env:"XPLATFS_LOG_OUTPUT" env-default:"stderr"`

	// FilePath - путь к файлу логов (если output=file)
	FilePath string `yaml:"filePath" env:"XPLATFS_LOG_FILE_PATH"`

	// MaxSize - максимальный размер файла лога в MB
	MaxSize int `yaml:"maxSize" env:"XPLATFS_LOG_MAX_SIZE" env-default:"100"`

	// MaxBackups - максимальное количество backup файлов
	MaxBackups int `yaml:"maxBackups" env:"XPLATFS_LOG_MAX_BACKUPS" env-default:"3"`

	// MaxAge - максимальный возраст backup файлов в днях
	MaxAge int `yaml:"maxAge" env:"XPLATFS_LOG_MAX_AGE" env-default:"7"`

	// Compress - сжимать ли backup файлы.
	// compress: false в YAML не отключает сжатие: cleanenv подставляет
	// env-default в нулевые поля. Отключается только XPLATFS_LOG_COMPRESS=false.
	Compress bool `yaml:"compress" env:"XPLATFS_LOG_COMPRESS" env-default:"true"`
}

// ToLogging переводит секцию конфигурации в logging.Config.
// Пустые и нулевые поля берутся из logging.DefaultConfig.
func (lc *LoggingConfig) ToLogging() logging.Config {
	out := logging.DefaultConfig()
	if lc == nil {
		return out
	}
	if lc.Level != "" {
		out.Level = lc.Level
	}
	if lc.Format != "" {
		out.Format = lc.Format
	}
	if lc.Output != "" {
		out.Output = lc.Output
	}
	if lc.FilePath != "" {
		out.FilePath = lc.FilePath
	}
	if lc.MaxSize > 0 {
		out.MaxSize = lc.MaxSize
	}
	if lc.MaxBackups > 0 {
		out.MaxBackups = lc.MaxBackups
	}
	if lc.MaxAge > 0 {
		out.MaxAge = lc.MaxAge
	}
	out.Compress = lc.Compress
	return out
}

// getDefaultLoggingConfig возвращает конфигурацию логирования по умолчанию.
// Значения совпадают с logging.DefaultXxx.
func getDefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:      logging.DefaultLevel,
		Format:     logging.DefaultFormat,
		Output:     logging.DefaultOutput,
		FilePath:   logging.DefaultFilePath,
		MaxSize:    logging.DefaultMaxSize,
		MaxBackups: logging.DefaultMaxBackups,
		MaxAge:     logging.DefaultMaxAge,
		Compress:   logging.DefaultCompress,
	}
}

// loadLoggingConfig загружает конфигурацию логирования из AppConfig, переменных окружения или устанавливает значения по умолчанию.
// Переменные окружения XPLATFS_LOG_* переопределяют значения из AppConfig.
func loadLoggingConfig(l *slog.Logger, cfg *Config) (*LoggingConfig, error) {
	if cfg.AppConfig != nil && (cfg.AppConfig.Logging != LoggingConfig{}) {
		loggingConfig := &cfg.AppConfig.Logging
		if err := cleanenv.ReadEnv(loggingConfig); err != nil {
			l.Warn("Ошибка загрузки Logging конфигурации из переменных окружения",
				slog.String("error", err.Error()),
			)
		}
		l.Debug("Logging конфигурация загружена из файла",
			slog.String("level", loggingConfig.Level),
			slog.String("format", loggingConfig.Format),
		)
		return loggingConfig, nil
	}

	loggingConfig := getDefaultLoggingConfig()

	if err := cleanenv.ReadEnv(loggingConfig); err != nil {
		l.Warn("Ошибка загрузки Logging конфигурации из переменных окружения",
			slog.String("error", err.Error()),
		)
	}

	l.Debug("Logging конфигурация: используются значения по умолчанию",
		slog.String("level", loggingConfig.Level),
		slog.String("format", loggingConfig.Format),
	)

	return loggingConfig, nil
}
