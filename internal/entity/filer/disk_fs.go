package filer

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
)

// DiskFileSystem реализует бэкенд поверх файловой системы ОС.
// Пути принимаются в форме со слэшами и переводятся в родную форму.
type DiskFileSystem struct {
	walkConf fastwalk.Config
}

// Убеждаемся, что DiskFileSystem реализует интерфейс FileSystem
var _ FileSystem = (*DiskFileSystem)(nil)

// NewDiskFileSystem создает новую дисковую файловую систему.
// Обход деревьев не переходит по символическим ссылкам.
func NewDiskFileSystem() *DiskFileSystem {
	return &DiskFileSystem{
		walkConf: fastwalk.Config{Follow: false},
	}
}

func native(name string) string {
	return filepath.FromSlash(name)
}

// Stat возвращает информацию о файле, следуя по ссылкам.
func (dfs *DiskFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(native(name))
}

// Lstat возвращает информацию о самой записи.
func (dfs *DiskFileSystem) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(native(name))
}

// Mkdir создает новую директорию с указанным именем и правами доступа.
func (dfs *DiskFileSystem) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(native(name), perm)
}

// Remove удаляет файл или пустую директорию.
func (dfs *DiskFileSystem) Remove(name string) error {
	return os.Remove(native(name))
}

// RemoveAll удаляет путь и всё содержимое.
func (dfs *DiskFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(native(path))
}

// Rename переименовывает файл или директорию.
// Между томами возвращает *os.LinkError с EXDEV.
func (dfs *DiskFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(native(oldpath), native(newpath))
}

// Open открывает файл для чтения.
func (dfs *DiskFileSystem) Open(name string) (File, error) {
	// #nosec G304 - путь передаёт вызывающий код движка
	f, err := os.Open(native(name))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// OpenFile открывает файл с указанными флагами.
func (dfs *DiskFileSystem) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	// #nosec G304 - путь передаёт вызывающий код движка
	f, err := os.OpenFile(native(name), flag, perm)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CreateTemp создаёт уникальный временный файл (аналог mkstemp).
func (dfs *DiskFileSystem) CreateTemp(dir, pattern string) (File, error) {
	f, err := os.CreateTemp(native(dir), pattern)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ReadDir читает записи директории.
func (dfs *DiskFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(native(name))
}

// Walk обходит дерево параллельно через fastwalk.
// Пути в fn передаются в форме со слэшами.
func (dfs *DiskFileSystem) Walk(root string, fn fs.WalkDirFunc) error {
	conf := dfs.walkConf
	return fastwalk.Walk(&conf, native(root), func(p string, d fs.DirEntry, err error) error {
		return fn(filepath.ToSlash(p), d, err)
	})
}
