// Package logging - структурированное логирование поверх log/slog.
package logging

// Logger определяет интерфейс для структурированного логирования.
// Основная реализация - SlogAdapter, для тестов - NopLogger.
//
// Сообщение сопровождается парами ключ-значение:
//
//	logger.Info("создание папки", "path", p.String())
//
// Logger пишет только в stderr или файл: stdout занят результатом команды.
type Logger interface {
	// Debug - детальная диагностика (разрешение путей, размеры).
	Debug(msg string, args ...any)

	// Info - изменения файловой системы и значимые события.
	Info(msg string, args ...any)

	// Warn - пропущенные записи и прочие восстановимые ситуации.
	Warn(msg string, args ...any)

	// Error - ошибки, требующие внимания.
	Error(msg string, args ...any)

	// With возвращает Logger, добавляющий атрибуты ко всем записям.
	//
	//	logger.With("trace_id", traceID).Info("команда запущена")
	With(args ...any) Logger
}
