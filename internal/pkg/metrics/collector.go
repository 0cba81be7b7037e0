// Package metrics собирает метрики команд и операций над файловой системой
// и отправляет их в Prometheus Pushgateway.
//
// NewCollector выбирает реализацию по конфигурации: PrometheusCollector
// при включённых метриках, иначе NopCollector.
package metrics

import (
	"context"
	"time"
)

// Collector определяет интерфейс для сбора метрик.
// Реализации: PrometheusCollector (активный) и NopCollector (no-op).
type Collector interface {
	// RecordCommandStart записывает начало выполнения команды.
	// backend - тип бэкенда файловой системы (disk, memory).
	RecordCommandStart(command, backend string)

	// RecordCommandEnd записывает завершение команды с результатом.
	RecordCommandEnd(command, backend string, duration time.Duration, success bool)

	// RecordOperation записывает одну операцию движка файловой системы
	// (create_folder, copy_file, ...).
	RecordOperation(op string, duration time.Duration, success bool)

	// Push отправляет метрики в Pushgateway.
	// Ошибки отправки логируются внутри реализации, возвращается всегда nil.
	Push(ctx context.Context) error
}
