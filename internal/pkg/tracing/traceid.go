// Package tracing связывает команды с OpenTelemetry: trace ID для логов,
// TracerProvider с OTLP экспортом и span-ы команд и операций.
//
// Trace ID - 32 hex-символа (16 байт), совместимо с W3C Trace Context.
package tracing

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

var fallbackCounter atomic.Uint64

// GenerateTraceID генерирует trace ID из crypto/rand. Если генератор
// недоступен, ID строится из времени и счётчика.
func GenerateTraceID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fallbackTraceID()
	}
	return hex.EncodeToString(b)
}

// fallbackTraceID: %016x для каждого из двух uint64 даёт ровно 32 символа.
func fallbackTraceID() string {
	counter := fallbackCounter.Add(1)
	timestamp := uint64(time.Now().UnixNano())
	return fmt.Sprintf("%016x%016x", timestamp, counter)
}
