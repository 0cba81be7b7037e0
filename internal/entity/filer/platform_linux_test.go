package filer

import (
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinuxPaths_TemporaryRoot(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"tmpdir", map[string]string{"TMPDIR": "/a/", "TMP": "/b/"}, "/a/"},
		{"tmp", map[string]string{"TMP": "/b/"}, "/b/"},
		{"empty tmpdir skipped", map[string]string{"TMPDIR": "", "TMP": "/b/"}, "/b/"},
		{"default", map[string]string{}, "/tmp/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPlatformPaths(envMap(tt.env)).TemporaryRoot())
		})
	}
}

func TestLinuxPaths_AppDataRoot(t *testing.T) {
	p := NewPlatformPaths(envMap(map[string]string{"DOTDIR": "/dots", "HOME": "/home/u"}))
	root, prefix, err := p.AppDataRoot(true)
	require.NoError(t, err)
	assert.Equal(t, "/dots", root)
	assert.Equal(t, ".", prefix)

	p = NewPlatformPaths(envMap(map[string]string{"HOME": "/home/u"}))
	root, _, err = p.AppDataRoot(true)
	require.NoError(t, err)
	assert.Equal(t, "/home/u", root)

	root, prefix, err = p.AppDataRoot(false)
	require.NoError(t, err)
	assert.Equal(t, "/var/cache/", root)
	assert.Empty(t, prefix)
}

func TestLinuxPaths_AppDataRootFromPasswd(t *testing.T) {
	p := newPlatformPaths(envPaths{
		lookup:      envMap(nil),
		currentUser: func() (*user.User, error) { return &user.User{HomeDir: "/var/lib/svc"}, nil },
	})
	root, _, err := p.AppDataRoot(true)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/svc", root)

	p = newPlatformPaths(envPaths{
		lookup:      envMap(nil),
		currentUser: func() (*user.User, error) { return nil, errors.New("no passwd entry") },
	})
	_, _, err = p.AppDataRoot(true)
	assert.ErrorIs(t, err, errNoHome)
}

func TestLinuxPaths_Process(t *testing.T) {
	p := NewPlatformPaths(nil)

	exe, err := p.ExecutablePath()
	require.NoError(t, err)
	assert.NotEmpty(t, exe)

	wd, err := p.WorkingDirectory()
	require.NoError(t, err)
	assert.NotEmpty(t, wd)

	assert.Equal(t, []string{"/tmp/", "/var/tmp/"}, p.TempPrefixes())
}

func TestLinuxPaths_FreeSpace(t *testing.T) {
	p := NewPlatformPaths(nil)

	free, err := p.FreeSpace(t.TempDir())
	require.NoError(t, err)
	assert.Positive(t, free)

	_, err = p.FreeSpace("/definitely/not/here")
	assert.Error(t, err)
}
