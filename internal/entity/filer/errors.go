package filer

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"
)

// Предопределенные ошибки модуля filer
var (
	// ErrNotFolderPath возвращается, если операции нужна папка, а путь записан как файл
	ErrNotFolderPath = errors.New("путь не в форме папки")

	// ErrNotFolder возвращается, если по пути папки находится не папка
	ErrNotFolder = errors.New("путь существует и не является папкой")

	// ErrNotFile возвращается, если операции нужен файл, а по пути находится папка
	ErrNotFile = errors.New("путь существует и не является файлом")

	// ErrPrecondition возвращается при нарушении предусловия операции
	// (например, DeleteFile для папки). Это ошибка вызывающего кода.
	ErrPrecondition = errors.New("нарушено предусловие операции")

	// ErrIdentityUnset возвращается, если не заданы организация или приложение
	ErrIdentityUnset = errors.New("не задано имя организации или приложения")

	// ErrInvalidTimeKind возвращается при неизвестном виде времени файла
	ErrInvalidTimeKind = errors.New("неизвестный вид времени файла")

	// ErrShortWrite возвращается, если запись в файл назначения не приняла весь блок
	ErrShortWrite = errors.New("неполная запись в файл назначения")

	// ErrUnsupported возвращается, если операция не реализована для платформы
	ErrUnsupported = errors.New("операция не поддерживается на этой платформе")

	// ErrInvalidConfig возвращается при недопустимой конфигурации
	ErrInvalidConfig = errors.New("недопустимая конфигурация")
)

// FileSystemError представляет ошибку файловой системы с дополнительным контекстом.
type FileSystemError struct {
	Op       string        // Операция, которая вызвала ошибку
	Path     string        // Путь, связанный с ошибкой
	Err      error         // Исходная ошибка
	Severity ErrorSeverity // Серьезность ошибки
}

// ErrorSeverity представляет уровень серьезности ошибки.
type ErrorSeverity int

const (
	// SeverityInfo - информационное сообщение
	SeverityInfo ErrorSeverity = iota
	// SeverityWarning - ожидаемое состояние окружения (нет файла, файл уже есть)
	SeverityWarning
	// SeverityError - ошибка
	SeverityError
	// SeverityCritical - ошибка программиста или исчерпание ресурсов
	SeverityCritical
)

// String возвращает строковое представление уровня серьезности.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Error реализует интерфейс error.
func (e *FileSystemError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("операция: %s", e.Op))
	}

	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("путь: %s", e.Path))
	}

	if e.Severity != 0 {
		parts = append(parts, fmt.Sprintf("уровень: %s", e.Severity.String()))
	}

	if e.Err != nil {
		parts = append(parts, fmt.Sprintf("ошибка: %s", e.Err.Error()))
	}

	return strings.Join(parts, ", ")
}

// Unwrap возвращает исходную ошибку для поддержки errors.Is и errors.As.
func (e *FileSystemError) Unwrap() error {
	return e.Err
}

// NewFileSystemError создает новую ошибку файловой системы.
func NewFileSystemError(op, path string, err error, severity ErrorSeverity) *FileSystemError {
	return &FileSystemError{
		Op:       op,
		Path:     path,
		Err:      err,
		Severity: severity,
	}
}

// WrapError оборачивает ошибку в FileSystemError с дополнительным контекстом.
// Уже обёрнутая ошибка возвращается как есть.
func WrapError(op, path string, err error) error {
	if err == nil {
		return nil
	}

	var fsErr *FileSystemError
	if errors.As(err, &fsErr) {
		return err
	}

	return NewFileSystemError(op, path, err, determineSeverity(err))
}

// determineSeverity определяет уровень серьезности ошибки.
func determineSeverity(err error) ErrorSeverity {
	if err == nil {
		return SeverityInfo
	}

	if errors.Is(err, ErrPrecondition) || errors.Is(err, ErrIdentityUnset) ||
		errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EMFILE) {
		return SeverityCritical
	}

	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrExist) {
		return SeverityWarning
	}

	return SeverityError
}

// IsCrossDevice сообщает, что переименование не удалось из-за разных томов.
func IsCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// IsNotExist сообщает об отсутствии записи (ENOENT, но не ENOTDIR).
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsPathBlocked сообщает, что компонент пути существует, но не является папкой.
func IsPathBlocked(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}

// IsPermission сообщает об отказе в доступе.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// IsPreconditionError сообщает об ошибке вызывающего кода.
func IsPreconditionError(err error) bool {
	return errors.Is(err, ErrPrecondition) || errors.Is(err, ErrIdentityUnset) ||
		errors.Is(err, ErrNotFolderPath)
}

// IsCriticalError проверяет, является ли ошибка критической.
func IsCriticalError(err error) bool {
	if err == nil {
		return false
	}

	var fsErr *FileSystemError
	if errors.As(err, &fsErr) {
		return fsErr.Severity == SeverityCritical
	}

	return determineSeverity(err) == SeverityCritical
}

// ValidateConfig проверяет корректность конфигурации.
func ValidateConfig(config Config) error {
	switch config.Type {
	case DiskFS, MemoryFS:
	default:
		return fmt.Errorf("%w: неподдерживаемый тип файловой системы: %s", ErrInvalidConfig, config.Type.String())
	}

	if config.ChunkSize < MinChunkSize || config.ChunkSize > MaxChunkSize {
		return fmt.Errorf("%w: размер блока копирования %d вне диапазона [%d, %d]",
			ErrInvalidConfig, config.ChunkSize, MinChunkSize, MaxChunkSize)
	}

	return nil
}
