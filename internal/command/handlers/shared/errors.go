package shared

import (
	"errors"
	"fmt"

	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/apperrors"
)

// ClassifyError сопоставляет ошибку движка коду apperrors.
// *apperrors.AppError возвращается как есть.
func ClassifyError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, filer.ErrIdentityUnset):
		return apperrors.NewAppError(apperrors.ErrFSIdentityUnset,
			"не заданы организация и приложение (XPLATFS_ORGANIZATION, XPLATFS_APPLICATION)", err)
	case errors.Is(err, filer.ErrPrecondition), errors.Is(err, filer.ErrNotFolderPath):
		return apperrors.NewAppError(apperrors.ErrFSPrecondition, "нарушено предусловие операции", err)
	case filer.IsPermission(err):
		return apperrors.NewAppError(apperrors.ErrFSPermission, "нет прав доступа к пути", err)
	case filer.IsNotExist(err):
		return apperrors.NewAppError(apperrors.ErrFSNotFound, "путь не найден", err)
	case errors.Is(err, filer.ErrUnsupported):
		return apperrors.NewAppError(apperrors.ErrFSUnsupported, "операция не поддерживается на этой платформе", err)
	default:
		return apperrors.NewAppError(apperrors.ErrFSOperation, "операция файловой системы не выполнена", err)
	}
}

// ErrorMessage - текст ошибки для Result: описание и причина без кода.
func ErrorMessage(e *apperrors.AppError) string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// InvalidArgs создаёт ошибку COMMAND.INVALID_ARGS.
func InvalidArgs(format string, args ...any) *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrCommandInvalidArgs, fmt.Sprintf(format, args...), nil)
}
