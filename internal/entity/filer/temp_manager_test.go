package filer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempManager_TrackAndCleanupAll(t *testing.T) {
	mem := NewMemoryFileSystem()
	require.NoError(t, mem.Mount("/tmp"))
	require.NoError(t, mem.Mkdir("/tmp/app", 0755))
	writeFile(t, mem, "/tmp/app/data", []byte("x"))
	writeFile(t, mem, "/tmp/keep", []byte("y"))

	tm := NewTempManager(mem)
	tm.Track(NewFolderPathname("/tmp/app"), true)
	tm.Track(NewPathname("/tmp/keep"), false)
	tm.Track(NewPathname("/tmp/gone"), true)

	require.Len(t, tm.Entries(), 3)
	require.NoError(t, tm.CleanupAll())

	_, err := mem.Stat("/tmp/app")
	assert.True(t, IsNotExist(err))
	_, err = mem.Stat("/tmp/keep")
	assert.NoError(t, err)
	assert.Empty(t, tm.Entries())
}

func TestTempManager_TrackTwiceUpdatesAutoClean(t *testing.T) {
	tm := NewTempManager(NewMemoryFileSystem())
	first := tm.Track(NewPathname("/tmp/f"), false)
	second := tm.Track(NewPathname("/tmp/f"), true)

	assert.Same(t, first, second)
	assert.True(t, second.AutoClean)
	assert.Len(t, tm.Entries(), 1)

	tm.Untrack(NewPathname("/tmp/f"))
	assert.Empty(t, tm.Entries())
}

func TestTempManager_UntrackFolderDropsNested(t *testing.T) {
	tm := NewTempManager(NewMemoryFileSystem())
	tm.Track(NewFolderPathname("/tmp/backup-1-2"), true)
	tm.Track(NewPathname("/tmp/backup-1-2/xplatfs_1"), true)
	tm.Track(NewPathname("/tmp/backup-1-20"), true)

	tm.Untrack(NewFolderPathname("/tmp/backup-1-2"))

	entries := tm.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "/tmp/backup-1-20", entries[0].Path.String())
}

func TestTempManager_GetStats(t *testing.T) {
	mem := NewMemoryFileSystem()
	require.NoError(t, mem.Mkdir("/d", 0755))
	writeFile(t, mem, "/f", make([]byte, 10))

	tm := NewTempManager(mem)
	tm.Track(NewFolderPathname("/d"), true)
	tm.Track(NewPathname("/f"), false)

	tm.Track(NewPathname("/gone"), true)

	assert.Equal(t, TempStats{Entries: 3, Folders: 1, Files: 2, AutoClean: 2, FileBytes: 10}, tm.GetStats())
}
