package config

import (
	"fmt"
	"log/slog"

	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/ilyakaznacheev/cleanenv"
)

// FilesystemConfig содержит настройки движка файловой системы.
type FilesystemConfig struct {
	// Application нужно app-temp-folder и app-data-folder,
	// Organization - только app-data-folder.
	Organization string `yaml:"organization" env:"XPLATFS_ORGANIZATION"`
	Application  string `yaml:"application" env:"XPLATFS_APPLICATION"`

	// Machine - папка данных приложения общая для машины, а не для пользователя.
	Machine bool `yaml:"machine" env:"XPLATFS_MACHINE" env-default:"false"`

	// ChunkSize - размер блока копирования в байтах.
	ChunkSize int `yaml:"chunkSize" env:"XPLATFS_CHUNK_SIZE" env-default:"32768"`

	// Backend - disk или memory.
	Backend string `yaml:"backend" env:"XPLATFS_BACKEND" env-default:"disk"`

	// CleanupOnExit - удалять временные файлы и папки процесса при выходе.
	CleanupOnExit bool `yaml:"cleanupOnExit" env:"XPLATFS_CLEANUP_ON_EXIT" env-default:"false"`
}

func isFilesystemConfigPresent(cfg *FilesystemConfig) bool {
	if cfg == nil {
		return false
	}
	return *cfg != FilesystemConfig{}
}

func getDefaultFilesystemConfig() *FilesystemConfig {
	return &FilesystemConfig{
		ChunkSize: filer.DefaultChunkSize,
		Backend:   "disk",
	}
}

// validateFilesystemConfig проверяет backend и размер блока.
func validateFilesystemConfig(fc *FilesystemConfig) error {
	if _, ok := filer.ParseFSType(fc.Backend); !ok {
		return fmt.Errorf("filesystem: неизвестный backend %q (disk, memory)", fc.Backend)
	}
	if fc.ChunkSize < filer.MinChunkSize || fc.ChunkSize > filer.MaxChunkSize {
		return fmt.Errorf("filesystem: chunk size %d вне диапазона [%d, %d]",
			fc.ChunkSize, filer.MinChunkSize, filer.MaxChunkSize)
	}
	return nil
}

// loadFilesystemConfig загружает настройки движка из AppConfig или значений по умолчанию.
// Переменные окружения XPLATFS_* переопределяют оба источника.
func loadFilesystemConfig(l *slog.Logger, cfg *Config) (*FilesystemConfig, error) {
	if cfg.AppConfig != nil && isFilesystemConfigPresent(&cfg.AppConfig.Filesystem) {
		fsConfig := &cfg.AppConfig.Filesystem
		if err := cleanenv.ReadEnv(fsConfig); err != nil {
			return nil, fmt.Errorf("не удалось прочитать переменные окружения filesystem: %w", err)
		}
		l.Debug("Filesystem конфигурация загружена из файла",
			slog.String("backend", fsConfig.Backend),
			slog.String("organization", fsConfig.Organization),
			slog.String("application", fsConfig.Application),
		)
		return fsConfig, nil
	}

	fsConfig := getDefaultFilesystemConfig()
	if err := cleanenv.ReadEnv(fsConfig); err != nil {
		return nil, fmt.Errorf("не удалось прочитать переменные окружения filesystem: %w", err)
	}
	return fsConfig, nil
}
