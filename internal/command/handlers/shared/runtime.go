// Package shared содержит общие компоненты обработчиков команд:
// зависимости, выполнение тела команды и разбор аргументов.
package shared

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/apperrors"
	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/output"
	"github.com/Kargones/xplatfs/internal/pkg/tracing"
)

// Runtime - зависимости обработчиков, собранные di.InitializeApp.
type Runtime struct {
	FS     *filer.Filesystem
	Logger logging.Logger
	Writer output.Writer
	// Stdout получает Result команды. Логи идут мимо него.
	Stdout io.Writer
}

// Outcome - данные успешной команды.
type Outcome struct {
	Data    any
	Summary *output.SummaryInfo
}

// Body - тело команды. ctx содержит span команды.
type Body func(ctx context.Context, log logging.Logger) (*Outcome, error)

// Run выполняет body в span-е "command.<имя>" и пишет Result в Stdout.
// Ошибка body выводится как Result со статусом error и возвращается
// как *apperrors.AppError.
func (rt *Runtime) Run(ctx context.Context, command string, body Body) error {
	start := time.Now()

	traceID := tracing.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = tracing.GenerateTraceID()
	}
	log := rt.Logger.With("trace_id", traceID, "command", command)

	spanCtx, span := tracing.StartSpan(ctx, "command."+command, attribute.String("command", command))
	outcome, err := body(spanCtx, log)
	tracing.EndSpan(span, err)

	result := &output.Result{
		Command: command,
		Metadata: &output.Metadata{
			DurationMs: time.Since(start).Milliseconds(),
			TraceID:    traceID,
			APIVersion: constants.APIVersion,
		},
	}

	if err != nil {
		appErr := ClassifyError(err)
		log.Error("команда завершилась с ошибкой", "code", appErr.Code, "error", err.Error())

		result.Status = output.StatusError
		result.Error = &output.ErrorInfo{Code: appErr.Code, Message: ErrorMessage(appErr)}
		if writeErr := rt.Writer.Write(rt.Stdout, result); writeErr != nil {
			log.Error("не удалось записать ответ об ошибке", "error", writeErr.Error())
		}
		return appErr
	}

	result.Status = output.StatusSuccess
	if outcome != nil {
		result.Data = outcome.Data
		result.Summary = outcome.Summary
	}
	if err = rt.Writer.Write(rt.Stdout, result); err != nil {
		return apperrors.NewAppError(apperrors.ErrOutputFormat, "не удалось записать результат команды", err)
	}
	return nil
}
