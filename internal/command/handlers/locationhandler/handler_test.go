package locationhandler

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/xplatfs/internal/command/handlers/shared/sharedtest"
	"github.com/Kargones/xplatfs/internal/config"
	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/apperrors"
	"github.com/Kargones/xplatfs/internal/pkg/output"
)

func TestTempFolder(t *testing.T) {
	hs := sharedtest.New(t)
	h := &TempFolderHandler{rt: hs.RT}

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config()))
	res := hs.Result(t)
	assert.Equal(t, output.StatusSuccess, res.Status)
	assert.Equal(t, "/tmp/", res.Data["path"])

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config("--append", "jobs")))
	assert.Equal(t, "/tmp/jobs/", hs.Result(t).Data["path"])
	assert.True(t, hs.FS.IsAbsent(filer.NewFolderPathname("/tmp/jobs")))

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config("--create", "-a", "jobs")))
	assert.Equal(t, true, hs.Result(t).Data["created"])
	assert.True(t, hs.FS.IsFolder(filer.NewFolderPathname("/tmp/jobs")))

	require.Error(t, h.Execute(context.Background(), sharedtest.Config("extra")))
	assert.Equal(t, apperrors.ErrCommandInvalidArgs, hs.Result(t).Error.Code)
}

func TestAppTempFolder(t *testing.T) {
	hs := sharedtest.New(t)
	h := &AppTempFolderHandler{rt: hs.RT}

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config()))
	res := hs.Result(t)
	first, _ := res.Data["path"].(string)
	assert.True(t, strings.HasPrefix(first, "/tmp/backup-"), first)
	assert.True(t, hs.FS.IsFolder(filer.NewFolderPathname(first)))
	require.NotNil(t, res.Metadata.Summary)
	require.NotEmpty(t, res.Metadata.Summary.KeyMetrics)
	assert.Equal(t, "Временных путей", res.Metadata.Summary.KeyMetrics[0].Name)
	assert.Equal(t, "1", res.Metadata.Summary.KeyMetrics[0].Value)

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config()))
	assert.Equal(t, first, hs.Result(t).Data["path"])
}

func TestAppTempFolder_NoApplication(t *testing.T) {
	hs := sharedtest.New(t, filer.WithIdentity("acme", ""))
	h := &AppTempFolderHandler{rt: hs.RT}

	require.Error(t, h.Execute(context.Background(), sharedtest.Config()))
	assert.Equal(t, apperrors.ErrFSIdentityUnset, hs.Result(t).Error.Code)
}

func TestAppDataFolder(t *testing.T) {
	hs := sharedtest.New(t)
	h := &AppDataFolderHandler{rt: hs.RT}

	expected := func(perUser bool) string {
		root, prefix, err := hs.FS.Platform().AppDataRoot(perUser)
		require.NoError(t, err)
		return filer.NewFolderPathname(root).AppendFolder(prefix + "acme").AppendFolder("backup").String()
	}

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config()))
	res := hs.Result(t)
	assert.Equal(t, expected(true), res.Data["path"])
	assert.Equal(t, "user", res.Data["scope"])
	assert.True(t, hs.FS.IsFolder(filer.NewFolderPathname(expected(true))))

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config("--machine")))
	res = hs.Result(t)
	assert.Equal(t, expected(false), res.Data["path"])
	assert.Equal(t, "machine", res.Data["scope"])
}

func TestAppDataFolder_MachineFromConfig(t *testing.T) {
	hs := sharedtest.New(t)
	h := &AppDataFolderHandler{rt: hs.RT}

	cfg := sharedtest.Config()
	cfg.FilesystemConfig = &config.FilesystemConfig{Machine: true}
	require.NoError(t, h.Execute(context.Background(), cfg))
	assert.Equal(t, "machine", hs.Result(t).Data["scope"])

	cfg.Args = []string{"--machine=false"}
	require.NoError(t, h.Execute(context.Background(), cfg))
	assert.Equal(t, "user", hs.Result(t).Data["scope"])
}

func TestAppDataFolder_NoOrganization(t *testing.T) {
	hs := sharedtest.New(t, filer.WithIdentity("", "backup"))
	h := &AppDataFolderHandler{rt: hs.RT}

	require.Error(t, h.Execute(context.Background(), sharedtest.Config()))
	assert.Equal(t, apperrors.ErrFSIdentityUnset, hs.Result(t).Error.Code)
}

func TestWhere(t *testing.T) {
	hs := sharedtest.New(t)
	h := &WhereHandler{rt: hs.RT}

	require.NoError(t, h.Execute(context.Background(), sharedtest.Config()))
	res := hs.Result(t)
	assert.NotEmpty(t, res.Data["executable"])
	wd, _ := res.Data["working_directory"].(string)
	assert.True(t, strings.HasSuffix(wd, "/"), wd)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&LocationData{Path: "/tmp/"}).WriteText(&buf))
	assert.Equal(t, "/tmp/\n", buf.String())

	buf.Reset()
	require.NoError(t, (&WhereData{Executable: "/usr/bin/xplatfs", WorkingDirectory: "/work/"}).WriteText(&buf))
	assert.Contains(t, buf.String(), "/usr/bin/xplatfs")
	assert.Contains(t, buf.String(), "/work/")
}
