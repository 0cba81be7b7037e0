package filer

import (
	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/metrics"
)

// Option представляет функциональную опцию для настройки конфигурации движка.
// Использует паттерн "Functional Options" для гибкой настройки параметров.
type Option func(*Config)

// WithDiskFS настраивает движок на работу с диском.
func WithDiskFS() Option {
	return func(c *Config) {
		c.Type = DiskFS
		c.Backend = nil
	}
}

// WithMemoryFS настраивает движок на работу с файловой системой в памяти.
// Если mem == nil, создаётся пустая MemoryFileSystem.
func WithMemoryFS(mem *MemoryFileSystem) Option {
	return func(c *Config) {
		c.Type = MemoryFS
		c.Backend = nil
		if mem != nil {
			c.Backend = mem
		}
	}
}

// WithBackend устанавливает произвольный бэкенд.
func WithBackend(backend FileSystem) Option {
	return func(c *Config) {
		c.Backend = backend
	}
}

// WithIdentity задаёт организацию и приложение.
func WithIdentity(organization, application string) Option {
	return func(c *Config) {
		c.Identity = AppIdentity{Organization: organization, Application: application}
	}
}

// WithChunkSize задаёт размер блока копирования.
func WithChunkSize(size int) Option {
	return func(c *Config) {
		c.ChunkSize = size
	}
}

// WithPlatform подменяет платформенные пути.
func WithPlatform(p PlatformPaths) Option {
	return func(c *Config) {
		c.Platform = p
	}
}

// WithLogger задаёт логгер движка.
func WithLogger(l logging.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithMetrics задаёт сборщик метрик операций.
func WithMetrics(m metrics.Collector) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// ApplyOptions применяет список опций к конфигурации.
// Возвращает новую конфигурацию с примененными опциями.
func ApplyOptions(base Config, options ...Option) Config {
	config := base
	for _, option := range options {
		option(&config)
	}
	return config
}

// NewConfig создает новую конфигурацию с применением опций.
// Начинает с конфигурации по умолчанию.
func NewConfig(options ...Option) Config {
	return ApplyOptions(DefaultConfig(), options...)
}
