package metrics

import (
	"context"
	"time"
)

// NopCollector - no-op реализация Collector.
// Используется когда метрики отключены (Config.Enabled = false).
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

// RecordCommandStart - no-op.
func (c *NopCollector) RecordCommandStart(command, backend string) {}

// RecordCommandEnd - no-op.
func (c *NopCollector) RecordCommandEnd(command, backend string, duration time.Duration, success bool) {
}

// RecordOperation - no-op.
func (c *NopCollector) RecordOperation(op string, duration time.Duration, success bool) {}

// Push - no-op, всегда возвращает nil.
func (c *NopCollector) Push(ctx context.Context) error {
	return nil
}
