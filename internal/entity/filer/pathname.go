package filer

import (
	"path/filepath"
	"strings"
)

// Separator - разделитель компонентов пути внутри Pathname.
// На диск путь передаётся через filepath.FromSlash.
const Separator = '/'

// Pathname представляет путь как пару "папка + имя файла".
//
// Папка либо пустая, либо заканчивается разделителем. Путь в форме папки
// (IsFolder) имеет пустое имя файла и завершающий разделитель в String().
// Завершающий разделитель - единственный признак, по которому операции
// создания отличают папку от файла.
type Pathname struct {
	folder   string
	filename string
}

// NewPathname разбирает строку пути. Всё после последнего разделителя
// становится именем файла, поэтому "a/b/" - папка, а "a/b" - файл.
func NewPathname(s string) Pathname {
	s = filepath.ToSlash(s)
	i := strings.LastIndexByte(s, Separator)
	return Pathname{folder: s[:i+1], filename: s[i+1:]}
}

// NewFolderPathname создаёт путь в форме папки, добавляя разделитель при необходимости.
func NewFolderPathname(s string) Pathname {
	s = filepath.ToSlash(s)
	if s != "" && !strings.HasSuffix(s, string(Separator)) {
		s += string(Separator)
	}
	return Pathname{folder: s}
}

// String возвращает путь целиком.
func (p Pathname) String() string {
	return p.folder + p.filename
}

// IsEmpty возвращает true для нулевого пути.
func (p Pathname) IsEmpty() bool {
	return p.folder == "" && p.filename == ""
}

// IsFolder возвращает true, если путь записан в форме папки.
func (p Pathname) IsFolder() bool {
	return p.filename == "" && p.folder != ""
}

// Folder возвращает папку пути вместе с завершающим разделителем.
func (p Pathname) Folder() string {
	return p.folder
}

// FolderPathname возвращает папку пути в форме Pathname.
func (p Pathname) FolderPathname() Pathname {
	return Pathname{folder: p.folder}
}

// Filename возвращает имя файла (пустое для папки).
func (p Pathname) Filename() string {
	return p.filename
}

// ParentFolder возвращает родительскую папку для папки пути:
// "/a/b/" -> "/a/", "/a/" -> "/", "/" -> "", "a/" -> "".
func (p Pathname) ParentFolder() string {
	trimmed := strings.TrimSuffix(p.folder, string(Separator))
	i := strings.LastIndexByte(trimmed, Separator)
	if i < 0 {
		return ""
	}
	return trimmed[:i+1]
}

// Parent возвращает родительскую папку в форме Pathname.
func (p Pathname) Parent() Pathname {
	return Pathname{folder: p.ParentFolder()}
}

// AppendFolder дописывает к папке пути ещё один уровень, имя файла сохраняется.
func (p Pathname) AppendFolder(name string) Pathname {
	name = strings.Trim(filepath.ToSlash(name), string(Separator))
	if name == "" {
		return p
	}
	return Pathname{folder: p.folder + name + string(Separator), filename: p.filename}
}

// WithFilename возвращает путь с той же папкой и новым именем файла.
func (p Pathname) WithFilename(name string) Pathname {
	return Pathname{folder: p.folder, filename: name}
}

// Join дописывает относительный путь к папке пути.
func (p Pathname) Join(rel string) Pathname {
	return NewPathname(p.folder + strings.TrimPrefix(filepath.ToSlash(rel), string(Separator)))
}

// TrimSeparator возвращает строку пути без завершающего разделителя
// (корень "/" сохраняется).
func (p Pathname) TrimSeparator() string {
	s := p.String()
	if len(s) > 1 {
		return strings.TrimSuffix(s, string(Separator))
	}
	return s
}

// HasPrefix сообщает, начинается ли строка пути с prefix. Сравнение чисто лексическое.
func (p Pathname) HasPrefix(prefix string) bool {
	return strings.HasPrefix(p.String(), prefix)
}
