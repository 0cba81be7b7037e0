package folderhandler

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/xplatfs/internal/command/handlers/shared/sharedtest"
	"github.com/Kargones/xplatfs/internal/constants"
	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/apperrors"
	"github.com/Kargones/xplatfs/internal/pkg/output"
	"github.com/Kargones/xplatfs/internal/pkg/testutil"
)

func TestCreateHandler_Names(t *testing.T) {
	h := &CreateHandler{}
	assert.Equal(t, constants.ActCreateFolder, h.Name())
	assert.NotEmpty(t, h.Description())
	assert.Equal(t, "<папка>", h.Usage())

	d := &DeleteHandler{}
	assert.Equal(t, constants.ActDeleteFolder, d.Name())
	assert.Contains(t, d.Usage(), "--recursive")
}

func TestCreateHandler_Execute(t *testing.T) {
	hs := sharedtest.New(t)
	h := &CreateHandler{rt: hs.RT}

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config("/tmp/a/b")))
	res := hs.Result(t)
	assert.Equal(t, output.StatusSuccess, res.Status)
	assert.Equal(t, "/tmp/a/b/", res.Data["path"])
	assert.Nil(t, res.Data["existed"])
	assert.True(t, hs.FS.IsFolder(filer.NewFolderPathname("/tmp/a")))

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config("/tmp/a/b")))
	assert.Equal(t, true, hs.Result(t).Data["existed"])
}

func TestCreateHandler_FileInTheWay(t *testing.T) {
	hs := sharedtest.New(t)
	testutil.WriteFile(t, hs.Mem, "/tmp/f", []byte("x"))
	h := &CreateHandler{rt: hs.RT}

	err := h.Execute(context.Background(), sharedtest.Config("/tmp/f"))
	require.Error(t, err)
	res := hs.Result(t)
	assert.Equal(t, output.StatusError, res.Status)
	assert.Equal(t, apperrors.ErrFSOperation, res.Error.Code)
}

func TestCreateHandler_BadArgs(t *testing.T) {
	hs := sharedtest.New(t)
	h := &CreateHandler{rt: hs.RT}

	for _, args := range [][]string{nil, {"a", "b"}, {"--force", "a"}} {
		err := h.Execute(context.Background(), sharedtest.Config(args...))
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrCommandInvalidArgs, appErr.Code)
		assert.Equal(t, apperrors.ErrCommandInvalidArgs, hs.Result(t).Error.Code)
	}
}

func TestDeleteHandler_Execute(t *testing.T) {
	hs := sharedtest.New(t)
	require.NoError(t, hs.FS.CreateFolder(filer.NewFolderPathname("/tmp/full/sub")))
	testutil.WriteFile(t, hs.Mem, "/tmp/full/sub/f.txt", []byte("data"))
	require.NoError(t, hs.FS.CreateFolder(filer.NewFolderPathname("/tmp/empty")))
	h := &DeleteHandler{rt: hs.RT}

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config("/tmp/empty")))
	assert.Equal(t, "/tmp/empty/", hs.Result(t).Data["path"])
	assert.True(t, hs.FS.IsAbsent(filer.NewFolderPathname("/tmp/empty")))

	require.Error(t, h.Execute(context.Background(), sharedtest.Config("/tmp/full")))
	assert.Equal(t, output.StatusError, hs.Result(t).Status)
	assert.True(t, hs.FS.IsFolder(filer.NewFolderPathname("/tmp/full")))

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config("--recursive", "/tmp/full")))
	assert.Equal(t, true, hs.Result(t).Data["recursive"])
	assert.True(t, hs.FS.IsAbsent(filer.NewFolderPathname("/tmp/full")))
}

func TestDeleteHandler_NotAFolder(t *testing.T) {
	hs := sharedtest.New(t)
	testutil.WriteFile(t, hs.Mem, "/tmp/f", nil)
	h := &DeleteHandler{rt: hs.RT}

	require.Error(t, h.Execute(context.Background(), sharedtest.Config("-r", "/tmp/f")))
	assert.Equal(t, apperrors.ErrFSPrecondition, hs.Result(t).Error.Code)

	require.Error(t, h.Execute(context.Background(), sharedtest.Config("/tmp/missing")))
	assert.Equal(t, apperrors.ErrFSPrecondition, hs.Result(t).Error.Code)
}

func TestFolderData_WriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&FolderData{Path: "/tmp/a/"}).WriteText(&buf))
	require.NoError(t, (&FolderData{Path: "/tmp/a/", Existed: true}).WriteText(&buf))
	require.NoError(t, (&FolderData{Path: "/tmp/a/", deleted: true, Recursive: true}).WriteText(&buf))
	assert.Equal(t, "Папка создана: /tmp/a/\nПапка уже существует: /tmp/a/\nПапка удалена вместе с содержимым: /tmp/a/\n", buf.String())
}
