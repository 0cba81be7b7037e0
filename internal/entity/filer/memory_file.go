package filer

import (
	"io"
	"io/fs"
	"path"
	"syscall"
	"time"
)

// MemoryStat возвращается из FileInfo.Sys() записей MemoryFileSystem.
type MemoryStat struct {
	Created  time.Time
	Accessed time.Time
}

// memFileInfo реализует fs.FileInfo для записей в памяти
type memFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	stat    *MemoryStat
}

func (i *memFileInfo) Name() string       { return i.name }
func (i *memFileInfo) Size() int64        { return i.size }
func (i *memFileInfo) Mode() fs.FileMode  { return i.mode }
func (i *memFileInfo) ModTime() time.Time { return i.modTime }
func (i *memFileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i *memFileInfo) Sys() any           { return i.stat }

// memFile представляет открытый файл MemoryFileSystem.
// Данные общие для всех дескрипторов одного файла, смещение - своё.
type memFile struct {
	fs       *MemoryFileSystem
	name     string
	node     *memNode
	offset   int64
	readable bool
	writable bool
	append   bool
	closed   bool
}

// Убеждаемся, что memFile реализует интерфейс File
var _ File = (*memFile)(nil)

// Name возвращает имя файла
func (f *memFile) Name() string {
	return f.name
}

// Read читает данные с текущего смещения
func (f *memFile) Read(p []byte) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	if !f.readable {
		return 0, &fs.PathError{Op: "read", Path: f.name, Err: syscall.EBADF}
	}
	if f.node.dir {
		return 0, &fs.PathError{Op: "read", Path: f.name, Err: syscall.EISDIR}
	}

	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	f.node.accessed = f.fs.now()
	if f.offset >= int64(len(f.node.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.node.data[f.offset:])
	f.offset += int64(n)
	return n, nil
}

// Write записывает данные. При исчерпании ёмкости записывает то, что помещается,
// и возвращает ENOSPC.
func (f *memFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	if !f.writable {
		return 0, &fs.PathError{Op: "write", Path: f.name, Err: syscall.EBADF}
	}

	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	n := f.node
	if f.append {
		f.offset = int64(len(n.data))
	}

	var errNoSpace error
	end := f.offset + int64(len(p))
	if f.fs.capacity > 0 {
		grow := end - int64(len(n.data))
		if grow < 0 {
			grow = 0
		}
		if avail := f.fs.capacity - f.fs.used; grow > avail {
			p = p[:int64(len(p))-(grow-avail)]
			end = f.offset + int64(len(p))
			errNoSpace = &fs.PathError{Op: "write", Path: f.name, Err: syscall.ENOSPC}
		}
	}

	if end > int64(len(n.data)) {
		f.fs.used += end - int64(len(n.data))
		grown := make([]byte, end)
		copy(grown, n.data)
		n.data = grown
	}
	copy(n.data[f.offset:], p)
	f.offset = end
	n.modTime = f.fs.now()

	return len(p), errNoSpace
}

// Close закрывает дескриптор
func (f *memFile) Close() error {
	if f.closed {
		return fs.ErrClosed
	}
	f.closed = true
	return nil
}

// Stat возвращает информацию о файле
func (f *memFile) Stat() (fs.FileInfo, error) {
	if f.closed {
		return nil, fs.ErrClosed
	}
	f.fs.mu.RLock()
	defer f.fs.mu.RUnlock()
	return &memFileInfo{
		name:    path.Base(cleanMemPath(f.name)),
		size:    int64(len(f.node.data)),
		mode:    f.node.mode,
		modTime: f.node.modTime,
		stat:    &MemoryStat{Created: f.node.created, Accessed: f.node.accessed},
	}, nil
}
