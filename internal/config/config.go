// Package config загружает конфигурацию xplatfs из переменных окружения
// XPLATFS_* и необязательного YAML файла (XPLATFS_CONFIG).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig - содержимое YAML файла конфигурации.
// Все секции необязательны.
type AppConfig struct {
	Filesystem FilesystemConfig `yaml:"filesystem"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Tracing    TracingConfig    `yaml:"tracing"`
}

// Config - хранит настройки для работы приложения.
type Config struct {
	// Command - имя команды. Первый аргумент командной строки
	// имеет приоритет над XPLATFS_COMMAND.
	Command string `env:"XPLATFS_COMMAND" env-default:""`

	// Args - аргументы команды после её имени.
	Args []string

	// ConfigFile - путь к YAML файлу конфигурации.
	ConfigFile string `env:"XPLATFS_CONFIG" env-default:""`

	// OutputFormat - формат результата команды (json, text).
	OutputFormat string `env:"XPLATFS_OUTPUT_FORMAT" env-default:"text"`

	// Env - окружение (production, staging, dev).
	Env string `env:"XPLATFS_ENV" env-default:"production"`

	Logger *slog.Logger

	// Настройки из YAML файла, если он задан
	AppConfig *AppConfig

	FilesystemConfig *FilesystemConfig
	LoggingConfig    *LoggingConfig
	MetricsConfig    *MetricsConfig
	TracingConfig    *TracingConfig
}

// Load загружает конфигурацию. args - аргументы командной строки без
// имени программы: args[0] - команда, остальное - её аргументы.
// Переменные окружения (включая .env из XPLATFS_ENV_FILE) переопределяют
// значения из YAML файла.
func Load(args []string) (*Config, error) {
	var cfg Config
	var err error

	// .env файл не переопределяет уже заданные переменные окружения
	if envFile := os.Getenv(constants.EnvDotenvFile); envFile != "" {
		if err = godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("не удалось загрузить %s: %w", envFile, err)
		}
	}

	if err = cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("не удалось прочитать переменные окружения в Config: %w", err)
	}

	cfg.Logger = getSlog(os.Getenv("XPLATFS_LOG_LEVEL"))
	l := cfg.Logger

	if len(args) > 0 {
		cfg.Command = args[0]
		cfg.Args = args[1:]
	}

	if cfg.ConfigFile != "" {
		if cfg.AppConfig, err = loadAppConfig(l, cfg.ConfigFile); err != nil {
			return nil, err
		}
	}

	if cfg.FilesystemConfig, err = loadFilesystemConfig(l, &cfg); err != nil {
		return nil, err
	}
	if err = validateFilesystemConfig(cfg.FilesystemConfig); err != nil {
		return nil, err
	}

	if cfg.LoggingConfig, err = loadLoggingConfig(l, &cfg); err != nil {
		return nil, err
	}

	if cfg.MetricsConfig, err = loadMetricsConfig(l, &cfg); err != nil {
		return nil, err
	}
	if err = validateMetricsConfig(cfg.MetricsConfig); err != nil {
		return nil, err
	}

	if cfg.TracingConfig, err = loadTracingConfig(l, &cfg); err != nil {
		return nil, err
	}
	if err = validateTracingConfig(cfg.TracingConfig); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadAppConfig читает YAML файл. Неизвестные ключи - ошибка,
// пустой файл - пустая конфигурация.
func loadAppConfig(l *slog.Logger, path string) (*AppConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // путь задаёт оператор
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", path, err)
	}

	var appConfig AppConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&appConfig); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ошибка разбора файла конфигурации %s: %w", path, err)
	}

	l.Debug("Файл конфигурации загружен", slog.String("path", path))
	return &appConfig, nil
}

// getSlog создаёт логгер загрузчика конфигурации. Он пишет в stderr
// до того, как настроен основной логгер приложения.
func getSlog(logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch logLevel {
	case constants.LogLevelDebug:
		level = slog.LevelDebug
	case constants.LogLevelInfo:
		level = slog.LevelInfo
	case constants.LogLevelWarn:
		level = slog.LevelWarn
	case constants.LogLevelError:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
