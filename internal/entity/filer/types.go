package filer

import (
	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/metrics"
)

// FSType представляет тип бэкенда файловой системы.
type FSType int

const (
	// DiskFS представляет файловую систему на диске
	DiskFS FSType = iota
	// MemoryFS представляет файловую систему в памяти
	MemoryFS
)

// String возвращает строковое представление типа файловой системы.
func (t FSType) String() string {
	switch t {
	case DiskFS:
		return "DiskFS"
	case MemoryFS:
		return "MemoryFS"
	default:
		return "Unknown"
	}
}

// ParseFSType разбирает имя бэкенда из конфигурации ("disk", "memory").
func ParseFSType(s string) (FSType, bool) {
	switch s {
	case "", "disk", "DiskFS":
		return DiskFS, true
	case "memory", "MemoryFS":
		return MemoryFS, true
	default:
		return DiskFS, false
	}
}

// Kind - результат классификации пути.
type Kind int

const (
	// KindError - путь не удалось классифицировать (нет доступа,
	// не-папка в середине пути и т.п.)
	KindError Kind = iota
	// KindDirectory - путь существует и является папкой
	KindDirectory
	// KindFile - путь существует и не является папкой (файл, ссылка, канал...)
	KindFile
	// KindAbsent - записи нет, все промежуточные компоненты - папки
	KindAbsent
)

// String возвращает строковое представление классификации.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	case KindAbsent:
		return "absent"
	default:
		return "error"
	}
}

// FileTimeKind выбирает отметку времени, которую возвращает FileTime.
type FileTimeKind int

const (
	// FileTimeCreated - время создания (ctime на Linux, birthtime на macOS)
	FileTimeCreated FileTimeKind = iota
	// FileTimeModified - время изменения содержимого
	FileTimeModified
	// FileTimeAccessed - время последнего доступа
	FileTimeAccessed
)

// String возвращает строковое представление вида времени.
func (k FileTimeKind) String() string {
	switch k {
	case FileTimeCreated:
		return "created"
	case FileTimeModified:
		return "modified"
	case FileTimeAccessed:
		return "accessed"
	default:
		return "unknown"
	}
}

// ParseFileTimeKind разбирает имя вида времени.
func ParseFileTimeKind(s string) (FileTimeKind, bool) {
	switch s {
	case "created":
		return FileTimeCreated, true
	case "modified":
		return FileTimeModified, true
	case "accessed":
		return FileTimeAccessed, true
	default:
		return 0, false
	}
}

// AppIdentity - имя организации и приложения, от которых зависят
// папка данных и временная папка приложения.
type AppIdentity struct {
	Organization string
	Application  string
}

// IsComplete возвращает true, если заданы оба имени.
func (a AppIdentity) IsComplete() bool {
	return a.Organization != "" && a.Application != ""
}

// Config представляет конфигурацию движка файловой системы.
type Config struct {
	// Type определяет бэкенд (DiskFS или MemoryFS).
	// Игнорируется, если Backend задан явно.
	Type FSType

	// Identity - организация и приложение.
	Identity AppIdentity

	// ChunkSize - размер блока копирования в байтах.
	ChunkSize int

	// Backend - готовый бэкенд (например, MemoryFileSystem с точками монтирования).
	Backend FileSystem

	// Platform - платформенные пути. По умолчанию NewPlatformPaths(os.LookupEnv).
	Platform PlatformPaths

	Logger  logging.Logger
	Metrics metrics.Collector
}

// DefaultConfig возвращает конфигурацию по умолчанию.
func DefaultConfig() Config {
	return Config{
		Type:      DiskFS,
		ChunkSize: DefaultChunkSize,
	}
}

// Константы модуля
const (
	// DefaultChunkSize - размер блока копирования по умолчанию
	DefaultChunkSize = 32 * 1024

	// MinChunkSize - минимальный размер блока копирования
	MinChunkSize = 256

	// MaxChunkSize - максимальный размер блока копирования
	MaxChunkSize = 4 * 1024 * 1024

	// TempFilePrefix - префикс временных файлов по умолчанию
	TempFilePrefix = "xplatfs_"
)
