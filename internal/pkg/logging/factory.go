package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger создаёт Logger по конфигурации.
//
// Output "stderr" (или пусто) пишет в os.Stderr, "file" - в файл с ротацией
// через lumberjack. Неизвестный output и ошибки подготовки файла
// откатываются на stderr с предупреждением.
func NewLogger(config Config) Logger {
	var w io.Writer

	switch config.Output {
	case OutputFile:
		w = newLumberjackWriter(config)
	case OutputStderr, "":
		w = os.Stderr
	default:
		bootstrapWarn("неизвестный logging output %q, используется stderr", config.Output)
		w = os.Stderr
	}

	return NewLoggerWithWriter(config, w)
}

// bootstrapWarn пишет предупреждение в stderr до того, как логгер создан.
func bootstrapWarn(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "WARNING: "+format+"\n", args...) //nolint:errcheck // bootstrap stderr
}

// newLumberjackWriter создаёт writer с ротацией и папку для файла логов.
func newLumberjackWriter(config Config) io.Writer {
	if config.FilePath == "" {
		bootstrapWarn("logging output=file, но путь к файлу пуст, используется stderr")
		return os.Stderr
	}

	dir := filepath.Dir(config.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			bootstrapWarn("не удалось создать директорию логов %q: %v, используется stderr", dir, err)
			return os.Stderr
		}
	}

	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
}

// NewLoggerWithWriter создаёт Logger с явным writer (тесты, нестандартный вывод).
func NewLoggerWithWriter(config Config, w io.Writer) Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(config.Level)}

	var handler slog.Handler
	if config.Format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return NewSlogAdapter(slog.New(handler))
}

// parseLevel переводит строковый уровень в slog.Level, по умолчанию info.
func parseLevel(level string) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
