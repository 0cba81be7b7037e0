// Package main содержит точку входа xplatfs - утилиты кроссплатформенных
// операций с файловой системой.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/xplatfs/internal/command"
	"github.com/Kargones/xplatfs/internal/command/handlers"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/Kargones/xplatfs/internal/di"
	"github.com/Kargones/xplatfs/internal/pkg/apperrors"
	"github.com/Kargones/xplatfs/internal/pkg/metrics"
	"github.com/Kargones/xplatfs/internal/pkg/output"
	"github.com/Kargones/xplatfs/internal/pkg/tracing"
)

// recordMetrics записывает результат выполнения команды и отправляет метрики в Pushgateway.
func recordMetrics(ctx context.Context, collector metrics.Collector, command, backend string, start time.Time, success bool) {
	collector.RecordCommandEnd(command, backend, time.Since(start), success)
	_ = collector.Push(ctx) // Ошибки push логируются внутри, не критичны
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run содержит основную логику приложения и возвращает exit code.
// os.Exit вызывается только в main, чтобы отработали defer-ы
// (tracerShutdown, span.End, очистка временных файлов).
func run(args []string) int {
	ctx := context.Background()
	cfg, err := config.Load(args)
	if err != nil || cfg == nil {
		fmt.Fprintf(os.Stderr, "Не удалось загрузить конфигурацию приложения: %v\n", err)
		writeFailure(di.ProvideOutputWriter(nil), commandName(args), apperrors.ErrConfigLoad,
			fmt.Sprintf("не удалось загрузить конфигурацию: %v", err), "")
		return constants.ExitConfigError
	}
	l := cfg.Logger
	l.Debug("Информация о сборке",
		slog.String("version", constants.Version),
		slog.String("commit_hash", constants.PreCommitHash),
	)

	// Пустая команда → help
	if cfg.Command == "" {
		cfg.Command = constants.ActHelp
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		l.Error("Не удалось инициализировать приложение",
			slog.String("error", err.Error()),
			slog.String(constants.MsgErrProcessing, constants.MsgAppExit),
		)
		writeFailure(di.ProvideOutputWriter(cfg), cfg.Command, apperrors.ErrConfigLoad,
			fmt.Sprintf("не удалось инициализировать приложение: %v", err), "")
		return constants.ExitConfigError
	}

	command.Reset()
	if err = handlers.RegisterAll(app.Runtime); err != nil {
		l.Error("Не удалось зарегистрировать команды", slog.String("error", err.Error()))
		return constants.ExitCommandError
	}

	if cfg.FilesystemConfig.CleanupOnExit {
		defer func() {
			if err := app.Filesystem.TempManager().CleanupAll(); err != nil {
				l.Warn("не все временные файлы удалены", slog.String("error", err.Error()))
			}
		}()
	}

	traceID := app.TraceID
	ctx = tracing.WithTraceID(ctx, traceID)
	// Все span-ы запуска используют этот trace ID
	ctx = tracing.ContextWithOTelTraceID(ctx, traceID)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.TracerShutdown(shutdownCtx); err != nil {
			l.Error("ошибка завершения tracing",
				slog.String("error", err.Error()),
				slog.String("trace_id", traceID),
				slog.String("command", cfg.Command),
			)
		}
	}()

	backend := cfg.FilesystemConfig.Backend
	tracer := otel.Tracer(constants.AppName)
	ctx, span := tracer.Start(ctx, cfg.Command,
		trace.WithAttributes(
			attribute.String("command", cfg.Command),
			attribute.String("backend", backend),
			attribute.String("trace_id", traceID),
		),
	)
	defer span.End()

	handler, ok := command.Get(cfg.Command)
	if !ok {
		l.Error("неизвестная команда",
			slog.String("command", cfg.Command),
			slog.String(constants.MsgErrProcessing, constants.MsgAppExit),
		)
		writeFailure(app.OutputWriter, cfg.Command, apperrors.ErrCommandNotFound,
			fmt.Sprintf("неизвестная команда %q, список команд: %s %s", cfg.Command, constants.AppName, constants.ActHelp),
			traceID)
		return constants.ExitUnknownCommand
	}

	app.MetricsCollector.RecordCommandStart(cfg.Command, backend)
	start := time.Now()

	execErr := handler.Execute(ctx, cfg)
	recordMetrics(ctx, app.MetricsCollector, cfg.Command, backend, start, execErr == nil)

	if execErr != nil {
		l.Error("Ошибка выполнения команды",
			slog.String("command", cfg.Command),
			slog.String("error", execErr.Error()),
			slog.String(constants.MsgErrProcessing, constants.MsgAppExit),
		)
		return constants.ExitCommandError
	}
	return constants.ExitOK
}

// writeFailure выводит Result с ошибкой, возникшей до запуска обработчика команды.
func writeFailure(w output.Writer, name, code, message, traceID string) {
	_ = w.Write(os.Stdout, &output.Result{
		Status:  output.StatusError,
		Command: name,
		Error: &output.ErrorInfo{
			Code:    code,
			Message: message,
		},
		Metadata: &output.Metadata{TraceID: traceID, APIVersion: constants.APIVersion},
	})
}

func commandName(args []string) string {
	if len(args) == 0 {
		return constants.ActHelp
	}
	return args[0]
}
