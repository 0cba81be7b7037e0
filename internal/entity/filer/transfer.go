package filer

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Kargones/xplatfs/internal/constants"
)

var errCopyIntoSelf = errors.New("папка назначения находится внутри исходной")

// MoveFile переносит файл. Сначала пробует rename; только при EXDEV
// (разные тома) выполняет копирование с последующим удалением источника.
func (f *Filesystem) MoveFile(from, to Pathname) (err error) {
	defer func(start time.Time) { f.observe("move_file", start, err) }(time.Now())

	if err = f.precondition("move file", from, KindFile); err != nil {
		return err
	}

	f.logger.Info("перенос файла", "from", from.String(), "to", to.String())
	err = f.backend.Rename(from.String(), to.String())
	if err == nil {
		f.temps.Untrack(from)
		return nil
	}
	if !IsCrossDevice(err) {
		return WrapError("move file", from.String(), err)
	}

	f.logger.Info("перенос между томами, копирование", "from", from.String(), "to", to.String())
	if err = f.CopyFile(from, to); err != nil {
		return err
	}
	return f.DeleteFile(from)
}

// MoveFolder переносит папку целиком; при EXDEV копирует дерево и удаляет источник.
func (f *Filesystem) MoveFolder(from, to Pathname) (err error) {
	defer func(start time.Time) { f.observe("move_folder", start, err) }(time.Now())

	if err = f.precondition("move folder", from, KindDirectory); err != nil {
		return err
	}

	f.logger.Info("перенос папки", "from", from.String(), "to", to.String())
	err = f.backend.Rename(from.TrimSeparator(), to.TrimSeparator())
	if err == nil {
		f.temps.Untrack(NewFolderPathname(from.String()))
		return nil
	}
	if !IsCrossDevice(err) {
		return WrapError("move folder", from.String(), err)
	}

	f.logger.Info("перенос между томами, копирование", "from", from.String(), "to", to.String())
	if err = f.CopyFolder(from, to); err != nil {
		return err
	}
	return f.DeleteFolderAndContents(from)
}

// CopyFile копирует содержимое файла блоками размера ChunkSize.
// Файл назначения создаётся или усекается. Каждая запись проверяется:
// ошибка или неполная запись прерывают копирование.
func (f *Filesystem) CopyFile(from, to Pathname) (err error) {
	defer func(start time.Time) { f.observe("copy_file", start, err) }(time.Now())
	return f.copyFile(from.String(), to.String())
}

func (f *Filesystem) copyFile(from, to string) error {
	src, err := f.backend.Open(from)
	if err != nil {
		return WrapError("copy file", from, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := f.backend.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermReadWrite)
	if err != nil {
		return WrapError("copy file", to, err)
	}

	n, err := f.copyChunks(dst, src, from, to)
	if err != nil {
		_ = dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return WrapError("copy file", to, err)
	}

	f.logger.Debug("файл скопирован", "from", from, "to", to, "bytes", n)
	return nil
}

func (f *Filesystem) copyChunks(dst io.Writer, src io.Reader, from, to string) (int64, error) {
	buf := make([]byte, f.chunk)
	var total int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			if werr != nil {
				return total, WrapError("copy file", to, werr)
			}
			if w != n {
				return total, NewFileSystemError("copy file", to, ErrShortWrite, SeverityError)
			}
			total += int64(w)
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, WrapError("copy file", from, rerr)
		}
	}
}

// absolute возвращает очищенный абсолютный путь без завершающего разделителя.
// Относительный путь отсчитывается от CurrentDirectory.
func (f *Filesystem) absolute(p Pathname) (string, error) {
	s := p.TrimSeparator()
	if path.IsAbs(s) || filepath.IsAbs(filepath.FromSlash(s)) {
		return path.Clean(s), nil
	}
	wd, err := f.CurrentDirectory()
	if err != nil {
		return "", err
	}
	return path.Join(wd.String(), s), nil
}

// CopyFolder копирует дерево папок. Папка назначения создаётся при
// необходимости; обход выполняет бэкенд (на диске - параллельно через fastwalk),
// поэтому родитель каждой записи создаётся явно. Ссылки не разыменовываются при
// обходе: ссылка на обычный файл копируется содержимым, остальные пропускаются.
func (f *Filesystem) CopyFolder(from, to Pathname) (err error) {
	defer func(start time.Time) { f.observe("copy_folder", start, err) }(time.Now())

	if err = f.precondition("copy folder", from, KindDirectory); err != nil {
		return err
	}

	srcRoot := from.TrimSeparator()
	dst := NewFolderPathname(to.TrimSeparator())
	var srcAbs, dstAbs string
	if srcAbs, err = f.absolute(from); err != nil {
		return err
	}
	if dstAbs, err = f.absolute(to); err != nil {
		return err
	}
	if NewFolderPathname(dstAbs).HasPrefix(NewFolderPathname(srcAbs).String()) {
		return NewFileSystemError("copy folder", to.String(), errCopyIntoSelf, SeverityError)
	}
	if err = f.createFolder(dst); err != nil {
		return err
	}

	f.logger.Info("копирование папки", "from", from.String(), "to", dst.String())
	return f.backend.Walk(srcRoot, func(p string, d fs.DirEntry, werr error) error {
		if werr != nil {
			return WrapError("copy folder", p, werr)
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, srcRoot), "/")
		if rel == "" {
			return nil
		}
		target := dst.Join(rel)

		switch {
		case d.IsDir():
			return f.createFolder(NewFolderPathname(target.String()))
		case d.Type()&fs.ModeSymlink != 0:
			info, err := f.backend.Stat(p)
			if err != nil || !info.Mode().IsRegular() {
				f.logger.Warn("ссылка пропущена", "path", p)
				return nil
			}
		case !d.Type().IsRegular():
			f.logger.Warn("специальный файл пропущен", "path", p, "mode", d.Type().String())
			return nil
		}

		if err := f.createFolder(target.FolderPathname()); err != nil {
			return err
		}
		return f.copyFile(p, target.String())
	})
}

// OpenFile открывает файл через бэкенд с флагами os.O_*.
func (f *Filesystem) OpenFile(p Pathname, flag int) (File, error) {
	file, err := f.backend.OpenFile(p.String(), flag, constants.FilePermReadWrite)
	if err != nil {
		return nil, WrapError("open file", p.String(), err)
	}
	return file, nil
}
