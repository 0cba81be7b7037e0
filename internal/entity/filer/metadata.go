package filer

import (
	"io/fs"
	"path/filepath"
	"time"
)

// Classify выполняет один запрос метаданных и классифицирует путь.
// KindAbsent возвращается только для ENOENT: не-папка в середине пути
// (ENOTDIR) и прочие ошибки дают KindError.
func (f *Filesystem) Classify(p Pathname) Kind {
	info, err := f.backend.Stat(p.String())
	switch {
	case err == nil && info.IsDir():
		return KindDirectory
	case err == nil:
		return KindFile
	case IsNotExist(err):
		return KindAbsent
	default:
		return KindError
	}
}

// IsFile возвращает true для любой существующей записи, кроме папки
// (ссылки, каналы и устройства тоже считаются файлами).
func (f *Filesystem) IsFile(p Pathname) bool {
	return f.Classify(p) == KindFile
}

// IsFolder возвращает true, если путь существует и является папкой.
func (f *Filesystem) IsFolder(p Pathname) bool {
	return f.Classify(p) == KindDirectory
}

// IsAbsent возвращает true, только если записи нет, а путь к ней свободен.
func (f *Filesystem) IsAbsent(p Pathname) bool {
	return f.Classify(p) == KindAbsent
}

// FileSize возвращает размер записи в байтах.
func (f *Filesystem) FileSize(p Pathname) (int64, error) {
	info, err := f.backend.Stat(p.String())
	if err != nil {
		return 0, WrapError("file size", p.String(), err)
	}
	return info.Size(), nil
}

// FileTime возвращает отметку времени записи с точностью до секунды.
func (f *Filesystem) FileTime(p Pathname, kind FileTimeKind) (time.Time, error) {
	switch kind {
	case FileTimeCreated, FileTimeModified, FileTimeAccessed:
	default:
		return time.Time{}, NewFileSystemError("file time", p.String(), ErrInvalidTimeKind, SeverityError)
	}

	info, err := f.backend.Stat(p.String())
	if err != nil {
		return time.Time{}, WrapError("file time", p.String(), err)
	}

	var t time.Time
	switch kind {
	case FileTimeModified:
		t = info.ModTime()
	case FileTimeCreated:
		t, _ = f.fileTimes(info)
	case FileTimeAccessed:
		_, t = f.fileTimes(info)
	}
	return time.Unix(t.Unix(), 0), nil
}

func (f *Filesystem) fileTimes(info fs.FileInfo) (time.Time, time.Time) {
	if ms, ok := info.Sys().(*MemoryStat); ok {
		return ms.Created, ms.Accessed
	}
	return f.platform.FileTimes(info)
}

// IsTemporaryPath сообщает, начинается ли путь с одного из временных
// префиксов платформы. Файловая система не опрашивается.
func (f *Filesystem) IsTemporaryPath(p Pathname) bool {
	for _, prefix := range f.platform.TempPrefixes() {
		if p.HasPrefix(prefix) {
			return true
		}
	}
	return false
}

// DiskFreeSpace возвращает свободное место на томе, где находится (или
// будет находиться) путь. Начиная с папки пути, отбрасывает по одному уровню,
// пока папка отсутствует, и запрашивает том у ближайшего существующего предка.
// Относительный путь, у которого не нашлось предка, считается от текущей директории.
func (f *Filesystem) DiskFreeSpace(p Pathname) (free int64, err error) {
	defer func(start time.Time) { f.observe("disk_free_space", start, err) }(time.Now())

	existing := p.FolderPathname()
	for !existing.IsEmpty() && f.IsAbsent(existing) {
		existing = existing.Parent()
	}

	target := existing.String()
	if target == "" {
		target = "."
	}

	if sr, ok := f.backend.(SpaceReporter); ok {
		free, err = sr.FreeSpace(target)
	} else {
		free, err = f.platform.FreeSpace(filepath.FromSlash(target))
	}
	if err != nil {
		return 0, WrapError("disk free space", target, err)
	}

	f.logger.Debug("свободное место на томе",
		"path", p.String(),
		"volume_path", target,
		"free_bytes", free,
	)
	return free, nil
}
