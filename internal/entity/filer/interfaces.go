// Package filer реализует кроссплатформенный слой работы с файловой системой:
// рекурсивное создание и удаление папок, перемещение с откатом на копирование
// между томами, поиск временных папок и папок данных приложения, запросы
// метаданных и свободного места.
//
// Движок (Filesystem) работает поверх примитивов бэкенда (FileSystem) и
// платформенных путей (PlatformPaths). Для диска используется DiskFileSystem,
// для тестов - MemoryFileSystem.
package filer

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem определяет примитивы, на которых построен движок.
// Семантика ошибок совпадает с пакетом os: отсутствие записи - ENOENT,
// не-папка в середине пути - ENOTDIR, переименование между томами - EXDEV.
type FileSystem interface {
	// Stat возвращает FileInfo, следуя по символическим ссылкам.
	Stat(name string) (fs.FileInfo, error)

	// Lstat возвращает FileInfo самой записи без перехода по ссылке.
	Lstat(name string) (fs.FileInfo, error)

	// Mkdir создаёт ровно один уровень папки.
	Mkdir(name string, perm os.FileMode) error

	// Remove удаляет файл или пустую папку.
	Remove(name string) error

	// RemoveAll удаляет path и всё его содержимое.
	RemoveAll(path string) error

	// Rename атомарно переименовывает oldpath в newpath в пределах одного тома.
	Rename(oldpath, newpath string) error

	// Open открывает файл для чтения.
	Open(name string) (File, error)

	// OpenFile открывает файл с флагами os.O_*.
	OpenFile(name string, flag int, perm os.FileMode) (File, error)

	// CreateTemp создаёт уникальный файл в dir, имя начинается с pattern.
	CreateTemp(dir, pattern string) (File, error)

	// ReadDir возвращает записи папки, отсортированные по имени.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Walk обходит дерево root. fn может вызываться конкурентно;
	// папка всегда посещается раньше своего содержимого.
	Walk(root string, fn fs.WalkDirFunc) error
}

// File - открытый файл бэкенда. *os.File удовлетворяет интерфейсу.
type File interface {
	io.Reader
	io.Writer
	io.Closer

	// Name возвращает имя файла, как оно передано в Open.
	Name() string

	// Stat возвращает FileInfo открытого файла.
	Stat() (fs.FileInfo, error)
}
