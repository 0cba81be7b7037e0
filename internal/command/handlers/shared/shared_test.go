package shared

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/apperrors"
	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/output"
	"github.com/Kargones/xplatfs/internal/pkg/testutil"
	"github.com/Kargones/xplatfs/internal/pkg/tracing"
)

func newRuntime(buf *bytes.Buffer) *Runtime {
	return &Runtime{
		Logger: logging.NewNopLogger(),
		Writer: output.NewJSONWriter(),
		Stdout: buf,
	}
}

func TestRun_Success(t *testing.T) {
	var buf bytes.Buffer
	rt := newRuntime(&buf)
	ctx := tracing.WithTraceID(context.Background(), "4bf92f3577b34da6a3ce929d0e0e4736")

	summary := output.NewSummaryInfo()
	summary.AddMetric("Скопировано", "5", "байт")
	err := rt.Run(ctx, "copy", func(_ context.Context, _ logging.Logger) (*Outcome, error) {
		return &Outcome{Data: map[string]string{"to": "/tmp/b"}, Summary: summary}, nil
	})
	require.NoError(t, err)

	res := testutil.DecodeResult(t, &buf)
	assert.Equal(t, output.StatusSuccess, res.Status)
	assert.Equal(t, "copy", res.Command)
	assert.Equal(t, "/tmp/b", res.Data["to"])
	require.NotNil(t, res.Metadata)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", res.Metadata.TraceID)
	assert.Equal(t, "v1", res.Metadata.APIVersion)
	require.NotNil(t, res.Metadata.Summary)
	assert.Equal(t, "Скопировано", res.Metadata.Summary.KeyMetrics[0].Name)
}

func TestRun_Error(t *testing.T) {
	var buf bytes.Buffer
	rt := newRuntime(&buf)

	err := rt.Run(context.Background(), "delete-file", func(_ context.Context, _ logging.Logger) (*Outcome, error) {
		return nil, fmt.Errorf("delete file: %w", filer.ErrPrecondition)
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrFSPrecondition, appErr.Code)

	res := testutil.DecodeResult(t, &buf)
	assert.Equal(t, output.StatusError, res.Status)
	require.NotNil(t, res.Error)
	assert.Equal(t, apperrors.ErrFSPrecondition, res.Error.Code)
	assert.Contains(t, res.Error.Message, "delete file")
	assert.Len(t, res.Metadata.TraceID, 32)
}

func TestClassifyError(t *testing.T) {
	enoent := &fs.PathError{Op: "stat", Path: "/x", Err: syscall.ENOENT}
	tests := []struct {
		err  error
		code string
	}{
		{asError(InvalidArgs("нет пути")), apperrors.ErrCommandInvalidArgs},
		{fmt.Errorf("app data: %w", filer.ErrIdentityUnset), apperrors.ErrFSIdentityUnset},
		{filer.ErrNotFolderPath, apperrors.ErrFSPrecondition},
		{filer.WrapError("stat", "/x", enoent), apperrors.ErrFSNotFound},
		{filer.WrapError("create folder", "/root/x/", &fs.PathError{Op: "mkdir", Path: "/root/x", Err: syscall.EACCES}), apperrors.ErrFSPermission},
		{&fs.PathError{Op: "unlink", Path: "/etc/hosts", Err: syscall.EPERM}, apperrors.ErrFSPermission},
		{&fs.PathError{Op: "statfs", Path: "/", Err: filer.ErrUnsupported}, apperrors.ErrFSUnsupported},
		{errors.New("disk on fire"), apperrors.ErrFSOperation},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, ClassifyError(tt.err).Code, tt.err.Error())
	}
}

// asError приводит *AppError к error для таблицы.
func asError(e *apperrors.AppError) error { return e }

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "путь не найден", ErrorMessage(apperrors.NewAppError("FS.NOT_FOUND", "путь не найден", nil)))
	assert.Equal(t, "путь не найден: stat /x",
		ErrorMessage(apperrors.NewAppError("FS.NOT_FOUND", "путь не найден", errors.New("stat /x"))))
}

func TestParseArgs(t *testing.T) {
	fset := NewFlagSet("delete-folder")
	recursive := fset.BoolP("recursive", "r", false, "")

	rest, err := ParseArgs(fset, []string{"--recursive", "/tmp/a"}, 1, 1)
	require.NoError(t, err)
	assert.True(t, *recursive)
	assert.Equal(t, []string{"/tmp/a"}, rest)

	_, err = ParseArgs(NewFlagSet("x"), []string{}, 1, 1)
	assert.ErrorContains(t, err, "неверное число аргументов")

	_, err = ParseArgs(NewFlagSet("x"), []string{"a", "b"}, 1, 1)
	assert.Error(t, err)

	_, err = ParseArgs(NewFlagSet("x"), []string{"--bogus", "a"}, 1, 1)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCommandInvalidArgs, appErr.Code)

	_, err = ParseArgs(NewFlagSet("x"), []string{""}, 1, 1)
	assert.ErrorContains(t, err, "пустой аргумент")

	rest, err = ParseArgs(NewFlagSet("x"), []string{"a", "b", "c"}, 0, -1)
	require.NoError(t, err)
	assert.Len(t, rest, 3)
}

func TestPathArgs(t *testing.T) {
	assert.Equal(t, "/tmp/a/", FolderArg("/tmp/a").String())
	assert.True(t, FolderArg("/tmp/a").IsFolder())
	assert.False(t, EntryArg("/tmp/a").IsFolder())
	assert.True(t, EntryArg("/tmp/a/").IsFolder())
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1,048,576", formatCount(message.NewPrinter(language.English), 1048576))
	assert.Equal(t, "42", FormatCount(42))
}
