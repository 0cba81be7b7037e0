package filer

import (
	"errors"
	"io/fs"
	"time"

	"github.com/Kargones/xplatfs/internal/constants"
)

// CreateFolder создаёт папку вместе с недостающими родителями (mkdir -p).
// Путь должен быть в форме папки. Существующая папка - не ошибка; файл на
// месте папки - ErrNotFolder.
func (f *Filesystem) CreateFolder(p Pathname) (err error) {
	defer func(start time.Time) { f.observe("create_folder", start, err) }(time.Now())

	if !p.IsFolder() {
		debugAssert(false, "create folder: %q не в форме папки", p)
		return NewFileSystemError("create folder", p.String(), ErrNotFolderPath, SeverityCritical)
	}
	return f.createFolder(p)
}

// createFolder - рекурсивная часть CreateFolder. Рекурсия идёт только
// при ENOENT: любой другой ответ stat (ENOTDIR, EACCES) завершает операцию.
func (f *Filesystem) createFolder(p Pathname) error {
	info, err := f.backend.Stat(p.TrimSeparator())
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return NewFileSystemError("create folder", p.String(), ErrNotFolder, SeverityError)
	case !IsNotExist(err):
		return WrapError("create folder", p.String(), err)
	}

	if parent := p.Parent(); !parent.IsEmpty() {
		if err := f.createFolder(parent); err != nil {
			return err
		}
	}

	f.logger.Info("создание папки", "path", p.String())
	if err := f.backend.Mkdir(p.TrimSeparator(), constants.DirPermExec); err != nil {
		// Папку успел создать кто-то другой
		if errors.Is(err, fs.ErrExist) && f.IsFolder(p) {
			return nil
		}
		return WrapError("create folder", p.String(), err)
	}
	return nil
}

// DeleteFile удаляет файл. Путь должен указывать на существующий файл.
func (f *Filesystem) DeleteFile(p Pathname) (err error) {
	defer func(start time.Time) { f.observe("delete_file", start, err) }(time.Now())

	if err = f.precondition("delete file", p, KindFile); err != nil {
		return err
	}
	f.logger.Info("удаление файла", "path", p.String())
	if err = f.backend.Remove(p.String()); err != nil {
		return WrapError("delete file", p.String(), err)
	}
	f.temps.Untrack(p)
	return nil
}

// DeleteEmptyFolder удаляет пустую папку. Непустая папка даёт ошибку ОС (ENOTEMPTY).
func (f *Filesystem) DeleteEmptyFolder(p Pathname) (err error) {
	defer func(start time.Time) { f.observe("delete_empty_folder", start, err) }(time.Now())

	if err = f.precondition("delete empty folder", p, KindDirectory); err != nil {
		return err
	}
	f.logger.Info("удаление пустой папки", "path", p.String())
	if err = f.backend.Remove(p.TrimSeparator()); err != nil {
		return WrapError("delete empty folder", p.String(), err)
	}
	f.temps.Untrack(NewFolderPathname(p.String()))
	return nil
}

// DeleteFolderAndContents удаляет папку со всем содержимым.
func (f *Filesystem) DeleteFolderAndContents(p Pathname) (err error) {
	defer func(start time.Time) { f.observe("delete_folder_recursive", start, err) }(time.Now())

	if err = f.precondition("delete folder", p, KindDirectory); err != nil {
		return err
	}
	f.logger.Info("удаление папки с содержимым", "path", p.String())
	if err = f.backend.RemoveAll(p.TrimSeparator()); err != nil {
		return WrapError("delete folder", p.String(), err)
	}
	f.temps.Untrack(NewFolderPathname(p.String()))
	return nil
}
