//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Kargones/xplatfs/internal/config"
)

//go:generate wire

// ProviderSet объединяет все провайдеры приложения.
//
// При добавлении новых провайдеров:
// 1. Создать функцию провайдера в providers.go
// 2. Добавить её в ProviderSet
// 3. Перегенерировать: go generate ./internal/di/...
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideOutputWriter,
	ProvideTraceID,
	ProvideMetricsCollector,
	ProvideTracerProvider,
	ProvideFilesystem,
	ProvideRuntime,
	wire.Struct(new(App), "*"),
)

// InitializeApp создаёт и инициализирует App через Wire DI.
// Принимает внешний Config (загруженный через config.Load(os.Args[1:])).
// Ошибка возвращается, если движок файловой системы не удалось создать.
func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
