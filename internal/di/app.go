package di

import (
	"context"

	"github.com/Kargones/xplatfs/internal/command/handlers/shared"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/metrics"
	"github.com/Kargones/xplatfs/internal/pkg/output"
)

// App содержит инициализированные зависимости приложения.
// Создаётся через Wire DI в InitializeApp().
//
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config содержит конфигурацию приложения.
	// Передаётся извне через InitializeApp().
	Config *config.Config

	// Logger предоставляет структурированное логирование.
	// Создаётся через ProvideLogger на основе LoggingConfig.
	Logger logging.Logger

	// OutputWriter форматирует результаты команд (XPLATFS_OUTPUT_FORMAT).
	OutputWriter output.Writer

	// TraceID содержит уникальный идентификатор для корреляции логов.
	TraceID string

	// Filesystem - движок файловой системы с бэкендом из FilesystemConfig.
	Filesystem *filer.Filesystem

	// Runtime - зависимости обработчиков команд.
	Runtime *shared.Runtime

	// MetricsCollector собирает и отправляет метрики в Prometheus Pushgateway.
	// Если метрики отключены - используется NopCollector.
	MetricsCollector metrics.Collector

	// TracerShutdown завершает OTel TracerProvider и отправляет буферизированные span-ы.
	// Если трейсинг отключён - nop function.
	TracerShutdown func(context.Context) error
}
