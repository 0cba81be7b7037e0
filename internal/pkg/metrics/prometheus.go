package metrics

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/urlutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "xplatfs"

// PrometheusCollector реализует Collector с Prometheus метриками.
// Отправляет метрики в Pushgateway при вызове Push().
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry

	commandDuration *prometheus.HistogramVec
	commandSuccess  *prometheus.CounterVec
	commandError    *prometheus.CounterVec

	operationDuration *prometheus.HistogramVec
	operationTotal    *prometheus.CounterVec

	// Instance label (hostname)
	instance string
}

// NewPrometheusCollector создаёт PrometheusCollector с указанной конфигурацией.
// Регистрирует метрики:
//   - xplatfs_command_duration_seconds (histogram)
//   - xplatfs_command_success_total, xplatfs_command_error_total (counter)
//   - xplatfs_operation_duration_seconds (histogram)
//   - xplatfs_operation_total (counter)
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("не удалось получить hostname для metrics instance label, используется 'unknown'",
				"error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	registry := prometheus.NewRegistry()

	commandDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Duration of command execution in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
		[]string{"command", "backend", "status"},
	)

	commandSuccess := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_success_total",
			Help:      "Total number of successful command executions",
		},
		[]string{"command", "backend"},
	)

	commandError := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_error_total",
			Help:      "Total number of failed command executions",
		},
		[]string{"command", "backend"},
	)

	// Операции над файлами в основном короткие, длинный хвост - копирование
	operationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of filesystem operations in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"op", "status"},
	)

	operationTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_total",
			Help:      "Total number of filesystem operations",
		},
		[]string{"op", "status"},
	)

	// Register вместо MustRegister: ошибка возможна только при дублировании имён
	collectors := []prometheus.Collector{commandDuration, commandSuccess, commandError, operationDuration, operationTotal}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		config:            config,
		logger:            logger,
		registry:          registry,
		commandDuration:   commandDuration,
		commandSuccess:    commandSuccess,
		commandError:      commandError,
		operationDuration: operationDuration,
		operationTotal:    operationTotal,
		instance:          instance,
	}, nil
}

// RecordCommandStart записывает начало выполнения команды.
// Для CLI "in-flight" не отслеживается: метрики пишутся при завершении.
func (c *PrometheusCollector) RecordCommandStart(command, backend string) {
	c.logger.Debug("metrics: command started",
		"command", command,
		"backend", backend,
	)
}

// maxLabelLength - максимальная длина значения label для защиты от cardinality explosion.
const maxLabelLength = 128

// sanitizeLabel обрезает значение label до допустимой длины и заменяет
// контрольные символы, которые ломают текстовый формат Prometheus.
// Обрезка выполняется по рунам.
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// RecordCommandEnd записывает завершение команды.
// Обновляет histogram duration и counter success/error.
func (c *PrometheusCollector) RecordCommandEnd(command, backend string, duration time.Duration, success bool) {
	command = sanitizeLabel(command)
	backend = sanitizeLabel(backend)

	c.commandDuration.WithLabelValues(command, backend, statusLabel(success)).Observe(duration.Seconds())
	if success {
		c.commandSuccess.WithLabelValues(command, backend).Inc()
	} else {
		c.commandError.WithLabelValues(command, backend).Inc()
	}

	c.logger.Debug("metrics: command ended",
		"command", command,
		"backend", backend,
		"duration_ms", duration.Milliseconds(),
		"success", success,
	)
}

// RecordOperation записывает операцию движка файловой системы.
func (c *PrometheusCollector) RecordOperation(op string, duration time.Duration, success bool) {
	op = sanitizeLabel(op)
	status := statusLabel(success)

	c.operationDuration.WithLabelValues(op, status).Observe(duration.Seconds())
	c.operationTotal.WithLabelValues(op, status).Inc()
}

// Push отправляет метрики в Pushgateway.
// Ошибка отправки только логируется: метрики не должны ронять команду.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	if c.config.PushgatewayURL == "" {
		c.logger.Debug("metrics: pushgateway URL not configured, skipping push")
		return nil
	}

	select {
	case <-ctx.Done():
		c.logger.Debug("metrics push отменён")
		return nil
	default:
	}

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("ошибка отправки метрик в Pushgateway",
			"error", err.Error(),
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"job", c.config.JobName,
		)
		return nil
	}

	c.logger.Info("метрики отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
		"instance", c.instance,
	)
	return nil
}

// GetRegistry возвращает внутренний registry для тестирования.
func (c *PrometheusCollector) GetRegistry() *prometheus.Registry {
	return c.registry
}
