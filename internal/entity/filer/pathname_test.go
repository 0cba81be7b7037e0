package filer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPathname(t *testing.T) {
	tests := []struct {
		in       string
		folder   string
		filename string
		isFolder bool
	}{
		{"/a/b/c.txt", "/a/b/", "c.txt", false},
		{"/a/b/", "/a/b/", "", true},
		{"c.txt", "", "c.txt", false},
		{"/", "/", "", true},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := NewPathname(tt.in)
			assert.Equal(t, tt.folder, p.Folder())
			assert.Equal(t, tt.filename, p.Filename())
			assert.Equal(t, tt.isFolder, p.IsFolder())
			assert.Equal(t, tt.in, p.String())
		})
	}
}

func TestNewFolderPathname(t *testing.T) {
	assert.Equal(t, "/a/b/", NewFolderPathname("/a/b").String())
	assert.Equal(t, "/a/b/", NewFolderPathname("/a/b/").String())
	assert.True(t, NewFolderPathname("x").IsFolder())
	assert.True(t, NewFolderPathname("").IsEmpty())
}

func TestPathname_ParentFolder(t *testing.T) {
	tests := map[string]string{
		"/a/b/":      "/a/",
		"/a/":        "/",
		"/":          "",
		"a/":         "",
		"a/b/":       "a/",
		"/a/b/c.txt": "/a/",
	}
	for in, want := range tests {
		assert.Equal(t, want, NewPathname(in).ParentFolder(), in)
	}
}

func TestPathname_AppendFolder(t *testing.T) {
	p := NewFolderPathname("/tmp").AppendFolder("/app-1/")
	assert.Equal(t, "/tmp/app-1/", p.String())

	file := NewPathname("/tmp/x.txt").AppendFolder("sub")
	assert.Equal(t, "/tmp/sub/x.txt", file.String())

	assert.Equal(t, "/tmp/", NewFolderPathname("/tmp").AppendFolder("").String())
}

func TestPathname_JoinAndTrim(t *testing.T) {
	root := NewFolderPathname("/dst")
	assert.Equal(t, "/dst/sub/b.txt", root.Join("sub/b.txt").String())
	assert.Equal(t, "/dst/sub/", root.Join("/sub/").String())

	assert.Equal(t, "/dst", root.TrimSeparator())
	assert.Equal(t, "/", NewFolderPathname("/").TrimSeparator())
	assert.Equal(t, "/dst/f", NewPathname("/dst/f").TrimSeparator())
}

func TestPathname_HasPrefixIsLexical(t *testing.T) {
	assert.True(t, NewPathname("/tmp/x").HasPrefix("/tmp/"))
	assert.False(t, NewPathname("/tmpfoo").HasPrefix("/tmp/"))
	assert.False(t, NewPathname("/tmp").HasPrefix("/tmp/"))
}

func TestPathname_WithFilename(t *testing.T) {
	p := NewFolderPathname("/data").WithFilename("report.csv")
	assert.Equal(t, "/data/report.csv", p.String())
	assert.Equal(t, "/data/", p.FolderPathname().String())
}
