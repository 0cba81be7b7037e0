package di

import (
	"context"
	"log/slog"
	"os"

	"github.com/Kargones/xplatfs/internal/command/handlers/shared"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/metrics"
	"github.com/Kargones/xplatfs/internal/pkg/output"
	"github.com/Kargones/xplatfs/internal/pkg/tracing"
)

// ProvideLogger создаёт Logger на основе LoggingConfig из Config.
// Если LoggingConfig == nil, используются значения по умолчанию
// (info, text, stderr).
func ProvideLogger(cfg *config.Config) logging.Logger {
	if cfg == nil {
		return logging.NewLogger(logging.DefaultConfig())
	}
	return logging.NewLogger(cfg.LoggingConfig.ToLogging())
}

// ProvideOutputWriter создаёт JSONWriter или TextWriter по Config.OutputFormat.
// Без Config формат берётся из XPLATFS_OUTPUT_FORMAT, по умолчанию text.
func ProvideOutputWriter(cfg *config.Config) output.Writer {
	format := os.Getenv(constants.EnvOutputFormat)
	if cfg != nil && cfg.OutputFormat != "" {
		format = cfg.OutputFormat
	}
	if format == "" {
		format = output.FormatText
	}
	return output.NewWriter(format)
}

// ProvideTraceID генерирует trace_id запуска: 32-символьный hex (16 байт).
func ProvideTraceID() string {
	return tracing.GenerateTraceID()
}

// ProvideMetricsCollector создаёт Collector на основе MetricsConfig из Config.
// Если MetricsConfig == nil или Enabled=false, возвращает NopCollector.
// При ошибке создания Collector возвращает NopCollector и логирует ошибку.
func ProvideMetricsCollector(cfg *config.Config, logger logging.Logger) metrics.Collector {
	if cfg == nil || cfg.MetricsConfig == nil {
		return metrics.NewNopCollector()
	}

	collector, err := metrics.NewCollector(cfg.MetricsConfig.ToMetrics(), logger)
	if err != nil {
		logger.Error("ошибка создания MetricsCollector, используется NopCollector",
			slog.String("error", err.Error()),
		)
		return metrics.NewNopCollector()
	}
	return collector
}

// ProvideTracerProvider создаёт и инициализирует OTel TracerProvider.
// Возвращает shutdown function для graceful завершения.
// Если TracingConfig == nil или Enabled=false, возвращает nop shutdown.
// При ошибке создания TracerProvider возвращает nop shutdown и логирует ошибку.
func ProvideTracerProvider(cfg *config.Config, logger logging.Logger) func(context.Context) error {
	if cfg == nil || cfg.TracingConfig == nil {
		return tracing.NewNopTracerProvider()
	}

	shutdown, err := tracing.NewTracerProvider(cfg.TracingConfig.ToTracing(), logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			slog.String("error", err.Error()),
		)
		return tracing.NewNopTracerProvider()
	}
	return shutdown
}

// ProvideFilesystem создаёт движок файловой системы по FilesystemConfig:
// бэкенд, организация и приложение, размер блока копирования.
// Бэкенд memory получает временную папку платформы отдельным томом,
// поэтому перенос из неё идёт через копирование, как между дисками.
func ProvideFilesystem(cfg *config.Config, logger logging.Logger, collector metrics.Collector) (*filer.Filesystem, error) {
	fc := &config.FilesystemConfig{Backend: "disk", ChunkSize: filer.DefaultChunkSize}
	if cfg != nil && cfg.FilesystemConfig != nil {
		fc = cfg.FilesystemConfig
	}

	fsType, ok := filer.ParseFSType(fc.Backend)
	if !ok {
		return nil, filer.NewFileSystemError("new filesystem", "", filer.ErrInvalidConfig, filer.SeverityCritical)
	}

	opts := []filer.Option{
		filer.WithIdentity(fc.Organization, fc.Application),
		filer.WithChunkSize(fc.ChunkSize),
		filer.WithLogger(logger),
		filer.WithMetrics(collector),
	}
	if fsType == filer.MemoryFS {
		platform := filer.NewPlatformPaths(os.LookupEnv)
		mem := filer.NewMemoryFileSystem()
		if err := mem.Mount(platform.TemporaryRoot()); err != nil {
			return nil, err
		}
		opts = append(opts, filer.WithMemoryFS(mem), filer.WithPlatform(platform))
	} else {
		opts = append(opts, filer.WithDiskFS())
	}

	fsys, err := filer.NewFilesystem(opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("движок файловой системы создан",
		slog.String("backend", fsType.String()),
		slog.Int("chunk_size", fc.ChunkSize),
	)
	return fsys, nil
}

// ProvideRuntime собирает зависимости обработчиков команд. Result пишется в stdout.
func ProvideRuntime(fsys *filer.Filesystem, logger logging.Logger, writer output.Writer) *shared.Runtime {
	return &shared.Runtime{
		FS:     fsys,
		Logger: logger,
		Writer: writer,
		Stdout: os.Stdout,
	}
}
