package apperrors

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes_Format(t *testing.T) {
	codes := []string{
		ErrConfigLoad,
		ErrCommandNotFound, ErrCommandInvalidArgs,
		ErrFSPrecondition, ErrFSNotFound, ErrFSPermission, ErrFSOperation, ErrFSIdentityUnset, ErrFSUnsupported,
		ErrOutputFormat,
	}
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		category, specific, ok := strings.Cut(code, ".")
		assert.True(t, ok, code)
		assert.Equal(t, strings.ToUpper(category), category, code)
		assert.Equal(t, strings.ToUpper(specific), specific, code)
		assert.False(t, seen[code], "дубликат %s", code)
		seen[code] = true
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "с причиной",
			err:  NewAppError(ErrFSNotFound, "путь не найден", fs.ErrNotExist),
			want: "FS.NOT_FOUND: путь не найден (file does not exist)",
		},
		{
			name: "без причины",
			err:  NewAppError(ErrCommandInvalidArgs, "ожидается путь", nil),
			want: "COMMAND.INVALID_ARGS: ожидается путь",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := &fs.PathError{Op: "mkdir", Path: "/tmp/x", Err: fs.ErrPermission}
	var err error = NewAppError(ErrFSOperation, "операция файловой системы не выполнена", cause)

	assert.ErrorIs(t, err, fs.ErrPermission)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "/tmp/x", pathErr.Path)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrFSOperation, appErr.Code)

	assert.Nil(t, NewAppError(ErrFSOperation, "x", nil).Unwrap())
}

func TestAppError_JSONOmitsCause(t *testing.T) {
	data, err := json.Marshal(NewAppError(ErrFSPrecondition, "нарушено предусловие операции", errors.New("/etc/hosts")))
	require.NoError(t, err)

	assert.JSONEq(t, `{"code":"FS.PRECONDITION_FAILED","message":"нарушено предусловие операции"}`, string(data))
}
