package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Kargones/xplatfs/internal/pkg/metrics"
	"github.com/Kargones/xplatfs/internal/pkg/urlutil"
	"github.com/ilyakaznacheev/cleanenv"
)

// MetricsConfig содержит настройки для Prometheus метрик.
type MetricsConfig struct {
	// Enabled - включены ли метрики (по умолчанию false).
	Enabled bool `yaml:"enabled" env:"XPLATFS_METRICS_ENABLED" env-default:"false"`

	// PushgatewayURL - URL Prometheus Pushgateway.
	// Пример: "http://pushgateway:9091"
	PushgatewayURL string `yaml:"pushgatewayUrl" env:"XPLATFS_METRICS_PUSHGATEWAY_URL"`

	// JobName - имя job для группировки метрик.
	JobName string `yaml:"jobName" env:"XPLATFS_METRICS_JOB_NAME" env-default:"xplatfs"`

	// Timeout - таймаут HTTP запросов к Pushgateway.
	Timeout time.Duration `yaml:"timeout" env:"XPLATFS_METRICS_TIMEOUT" env-default:"10s"`

	// InstanceLabel - переопределение instance label.
	// Если пусто - используется hostname.
	InstanceLabel string `yaml:"instanceLabel" env:"XPLATFS_METRICS_INSTANCE"`
}

// ToMetrics переводит секцию конфигурации в metrics.Config.
func (mc *MetricsConfig) ToMetrics() metrics.Config {
	if mc == nil {
		return metrics.DefaultConfig()
	}
	return metrics.Config{
		Enabled:        mc.Enabled,
		PushgatewayURL: mc.PushgatewayURL,
		JobName:        mc.JobName,
		Timeout:        mc.Timeout,
		InstanceLabel:  mc.InstanceLabel,
	}
}

// isMetricsConfigPresent проверяет, задана ли конфигурация метрик.
func isMetricsConfigPresent(cfg *MetricsConfig) bool {
	if cfg == nil {
		return false
	}
	return cfg.Enabled || cfg.PushgatewayURL != ""
}

// getDefaultMetricsConfig возвращает конфигурацию метрик по умолчанию.
// Метрики отключены по умолчанию.
func getDefaultMetricsConfig() *MetricsConfig {
	return &MetricsConfig{
		Enabled:        false,
		PushgatewayURL: "",
		JobName:        "xplatfs",
		Timeout:        10 * time.Second,
		InstanceLabel:  "",
	}
}

// loadMetricsConfig загружает конфигурацию метрик из AppConfig, переменных окружения или устанавливает значения по умолчанию.
// Переменные окружения XPLATFS_METRICS_* переопределяют значения из AppConfig.
func loadMetricsConfig(l *slog.Logger, cfg *Config) (*MetricsConfig, error) {
	if cfg.AppConfig != nil && isMetricsConfigPresent(&cfg.AppConfig.Metrics) {
		metricsConfig := &cfg.AppConfig.Metrics
		if err := cleanenv.ReadEnv(metricsConfig); err != nil {
			l.Warn("Ошибка загрузки Metrics конфигурации из переменных окружения",
				slog.String("error", err.Error()),
			)
		}
		l.Debug("Metrics конфигурация загружена из файла",
			slog.Bool("enabled", metricsConfig.Enabled),
			slog.String("pushgateway_url", urlutil.MaskURL(metricsConfig.PushgatewayURL)),
			slog.String("job_name", metricsConfig.JobName),
		)
		return metricsConfig, nil
	}

	metricsConfig := getDefaultMetricsConfig()

	if err := cleanenv.ReadEnv(metricsConfig); err != nil {
		l.Warn("Ошибка загрузки Metrics конфигурации из переменных окружения",
			slog.String("error", err.Error()),
		)
	}

	l.Debug("Metrics конфигурация: используются значения по умолчанию",
		slog.Bool("enabled", metricsConfig.Enabled),
	)

	return metricsConfig, nil
}

// validateMetricsConfig проверяет обязательные поля при включённых метриках.
func validateMetricsConfig(mc *MetricsConfig) error {
	if !mc.Enabled {
		return nil
	}
	if mc.PushgatewayURL == "" {
		return fmt.Errorf("metrics: pushgateway_url обязателен при enabled=true")
	}
	if mc.Timeout <= 0 {
		return fmt.Errorf("metrics: timeout должен быть положительным")
	}
	return nil
}
