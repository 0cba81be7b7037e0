package filer

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"
)

// MemoryFileSystem представляет файловую систему в памяти.
//
// Ошибки повторяют errno файловой системы ОС (ENOENT, ENOTDIR, EEXIST,
// ENOTEMPTY, EISDIR), поэтому движок ведёт себя одинаково на обоих бэкендах.
// Точки монтирования (Mount) образуют отдельные тома: Rename между ними
// возвращает EXDEV, как при переносе между файловыми системами.
type MemoryFileSystem struct {
	mu       sync.RWMutex
	nodes    map[string]*memNode
	devices  map[string]int // точка монтирования -> номер тома
	capacity int64          // 0 - без ограничения
	used     int64
	tempSeq  uint64
	now      func() time.Time
}

// memNode представляет файл или директорию в памяти
type memNode struct {
	dir      bool
	data     []byte
	mode     fs.FileMode
	created  time.Time
	modTime  time.Time
	accessed time.Time
}

// Убеждаемся, что MemoryFileSystem реализует интерфейс FileSystem
var _ FileSystem = (*MemoryFileSystem)(nil)

// NewMemoryFileSystem создает пустую файловую систему в памяти с корнем "/".
func NewMemoryFileSystem() *MemoryFileSystem {
	m := &MemoryFileSystem{
		nodes:   make(map[string]*memNode),
		devices: make(map[string]int),
		now:     time.Now,
	}
	now := m.now()
	m.nodes["/"] = &memNode{dir: true, mode: fs.ModeDir | 0755, created: now, modTime: now, accessed: now}
	return m
}

// Mount создаёт директорию mountpoint (со всеми родителями) и объявляет её отдельным томом.
func (m *MemoryFileSystem) Mount(mountpoint string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := cleanMemPath(mountpoint)
	if err := m.mkdirAllLocked(p); err != nil {
		return err
	}
	m.devices[p] = len(m.devices) + 1
	return nil
}

// SetCapacity ограничивает суммарный объём данных. Запись сверх лимита
// возвращает ENOSPC. 0 снимает ограничение.
func (m *MemoryFileSystem) SetCapacity(bytes int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.capacity = bytes
}

// Used возвращает суммарный объём данных в файлах.
func (m *MemoryFileSystem) Used() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.used
}

// FreeSpace возвращает остаток ёмкости. Без ограничения ёмкости размер тома неизвестен.
func (m *MemoryFileSystem) FreeSpace(name string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, _, err := m.lookupLocked("statfs", name); err != nil {
		return 0, err
	}
	if m.capacity == 0 {
		return 0, &fs.PathError{Op: "statfs", Path: name, Err: ErrUnsupported}
	}
	return m.capacity - m.used, nil
}

// cleanMemPath приводит путь к абсолютной форме без завершающего слэша.
func cleanMemPath(name string) string {
	p := path.Clean("/" + strings.TrimPrefix(name, "/"))
	return p
}

// ancestors возвращает промежуточные компоненты пути: "/a/b/c" -> "/a", "/a/b".
func ancestors(p string) []string {
	var out []string
	for i := 1; i < len(p); i++ {
		if p[i] == '/' {
			out = append(out, p[:i])
		}
	}
	return out
}

func pathErr(op, name string, errno syscall.Errno) error {
	return &fs.PathError{Op: op, Path: name, Err: errno}
}

// lookupLocked находит запись. Завершающий слэш требует, чтобы запись была директорией.
func (m *MemoryFileSystem) lookupLocked(op, name string) (string, *memNode, error) {
	if name == "" {
		return "", nil, pathErr(op, name, syscall.ENOENT)
	}
	p := cleanMemPath(name)
	for _, a := range ancestors(p) {
		n, ok := m.nodes[a]
		if !ok {
			return p, nil, pathErr(op, name, syscall.ENOENT)
		}
		if !n.dir {
			return p, nil, pathErr(op, name, syscall.ENOTDIR)
		}
	}
	n, ok := m.nodes[p]
	if !ok {
		return p, nil, pathErr(op, name, syscall.ENOENT)
	}
	if strings.HasSuffix(name, "/") && !n.dir {
		return p, nil, pathErr(op, name, syscall.ENOTDIR)
	}
	return p, n, nil
}

// parentLocked проверяет, что родитель p существует и является директорией.
func (m *MemoryFileSystem) parentLocked(op, name, p string) error {
	if p == "/" {
		return nil
	}
	_, _, err := m.lookupLocked(op, path.Dir(p)+"/")
	if err != nil {
		var errno syscall.Errno = syscall.ENOENT
		if IsPathBlocked(err) {
			errno = syscall.ENOTDIR
		}
		return pathErr(op, name, errno)
	}
	return nil
}

func (m *MemoryFileSystem) mkdirAllLocked(p string) error {
	for _, a := range append(ancestors(p), p) {
		n, ok := m.nodes[a]
		if ok {
			if !n.dir {
				return pathErr("mkdir", a, syscall.ENOTDIR)
			}
			continue
		}
		now := m.now()
		m.nodes[a] = &memNode{dir: true, mode: fs.ModeDir | 0755, created: now, modTime: now, accessed: now}
	}
	return nil
}

func (m *MemoryFileSystem) hasChildrenLocked(p string) bool {
	prefix := p + "/"
	if p == "/" {
		prefix = "/"
	}
	for k := range m.nodes {
		if k != p && strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// deviceLocked возвращает номер тома по самой длинной точке монтирования.
func (m *MemoryFileSystem) deviceLocked(p string) int {
	dev, best := 0, -1
	for mp, d := range m.devices {
		if (p == mp || strings.HasPrefix(p, mp+"/")) && len(mp) > best {
			dev, best = d, len(mp)
		}
	}
	return dev
}

func (m *MemoryFileSystem) info(p string, n *memNode) *memFileInfo {
	return &memFileInfo{
		name:    path.Base(p),
		size:    int64(len(n.data)),
		mode:    n.mode,
		modTime: n.modTime,
		stat:    &MemoryStat{Created: n.created, Accessed: n.accessed},
	}
}

// Stat возвращает информацию о записи.
func (m *MemoryFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, n, err := m.lookupLocked("stat", name)
	if err != nil {
		return nil, err
	}
	return m.info(p, n), nil
}

// Lstat совпадает со Stat: ссылок в памяти нет.
func (m *MemoryFileSystem) Lstat(name string) (fs.FileInfo, error) {
	return m.Stat(name)
}

// Mkdir создаёт один уровень директории.
func (m *MemoryFileSystem) Mkdir(name string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := cleanMemPath(name)
	if _, ok := m.nodes[p]; ok {
		return pathErr("mkdir", name, syscall.EEXIST)
	}
	if err := m.parentLocked("mkdir", name, p); err != nil {
		return err
	}
	now := m.now()
	m.nodes[p] = &memNode{dir: true, mode: fs.ModeDir | perm.Perm(), created: now, modTime: now, accessed: now}
	return nil
}

// Remove удаляет файл или пустую директорию.
func (m *MemoryFileSystem) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, n, err := m.lookupLocked("remove", name)
	if err != nil {
		return err
	}
	if p == "/" {
		return pathErr("remove", name, syscall.EBUSY)
	}
	if n.dir && m.hasChildrenLocked(p) {
		return pathErr("remove", name, syscall.ENOTEMPTY)
	}
	m.used -= int64(len(n.data))
	delete(m.nodes, p)
	return nil
}

// RemoveAll удаляет путь и всё содержимое. Отсутствие пути не ошибка.
func (m *MemoryFileSystem) RemoveAll(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := cleanMemPath(name)
	for k, n := range m.nodes {
		if k == "/" {
			continue
		}
		if k == p || strings.HasPrefix(k, p+"/") || p == "/" {
			m.used -= int64(len(n.data))
			delete(m.nodes, k)
		}
	}
	return nil
}

// Rename переносит запись. Между томами возвращает *os.LinkError с EXDEV.
func (m *MemoryFileSystem) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	linkErr := func(errno syscall.Errno) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: errno}
	}

	oldp, n, err := m.lookupLocked("rename", oldpath)
	if err != nil {
		if IsPathBlocked(err) {
			return linkErr(syscall.ENOTDIR)
		}
		return linkErr(syscall.ENOENT)
	}
	newp := cleanMemPath(newpath)
	if oldp == newp {
		return nil
	}
	if m.deviceLocked(oldp) != m.deviceLocked(newp) {
		return linkErr(syscall.EXDEV)
	}
	if err := m.parentLocked("rename", newpath, newp); err != nil {
		if IsPathBlocked(err) {
			return linkErr(syscall.ENOTDIR)
		}
		return linkErr(syscall.ENOENT)
	}
	if n.dir && strings.HasPrefix(newp, oldp+"/") {
		return linkErr(syscall.EINVAL)
	}
	if target, ok := m.nodes[newp]; ok {
		switch {
		case target.dir && !n.dir:
			return linkErr(syscall.EISDIR)
		case !target.dir && n.dir:
			return linkErr(syscall.ENOTDIR)
		case target.dir && m.hasChildrenLocked(newp):
			return linkErr(syscall.ENOTEMPTY)
		}
		m.used -= int64(len(target.data))
		delete(m.nodes, newp)
	}

	moved := make(map[string]*memNode)
	for k, v := range m.nodes {
		if k == oldp || strings.HasPrefix(k, oldp+"/") {
			moved[newp+strings.TrimPrefix(k, oldp)] = v
			delete(m.nodes, k)
		}
	}
	for k, v := range moved {
		m.nodes[k] = v
	}
	return nil
}

// Open открывает файл для чтения.
func (m *MemoryFileSystem) Open(name string) (File, error) {
	return m.OpenFile(name, os.O_RDONLY, 0)
}

// OpenFile открывает файл с флагами os.O_*.
func (m *MemoryFileSystem) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc := flag & (os.O_RDONLY | os.O_WRONLY | os.O_RDWR)
	writable := acc == os.O_WRONLY || acc == os.O_RDWR

	p, n, err := m.lookupLocked("open", name)
	switch {
	case err == nil:
		if flag&os.O_CREATE != 0 && flag&os.O_EXCL != 0 {
			return nil, pathErr("open", name, syscall.EEXIST)
		}
		if n.dir && writable {
			return nil, pathErr("open", name, syscall.EISDIR)
		}
		if writable && flag&os.O_TRUNC != 0 {
			m.used -= int64(len(n.data))
			n.data = nil
			n.modTime = m.now()
		}
	case IsNotExist(err) && flag&os.O_CREATE != 0:
		if err := m.parentLocked("open", name, p); err != nil {
			return nil, err
		}
		now := m.now()
		n = &memNode{mode: perm.Perm(), created: now, modTime: now, accessed: now}
		m.nodes[p] = n
	default:
		return nil, err
	}

	return &memFile{
		fs:       m,
		name:     name,
		node:     n,
		readable: acc == os.O_RDONLY || acc == os.O_RDWR,
		writable: writable,
		append:   flag&os.O_APPEND != 0,
	}, nil
}

// CreateTemp создаёт уникальный файл в dir. Последняя "*" в pattern
// заменяется случайной частью, иначе она дописывается в конец.
func (m *MemoryFileSystem) CreateTemp(dir, pattern string) (File, error) {
	if dir == "" {
		dir = "/tmp"
	}
	prefix, suffix := pattern, ""
	if i := strings.LastIndexByte(pattern, '*'); i >= 0 {
		prefix, suffix = pattern[:i], pattern[i+1:]
	}

	for try := 0; try < 10000; try++ {
		m.mu.Lock()
		m.tempSeq++
		seq := m.tempSeq
		m.mu.Unlock()

		name := strings.TrimSuffix(dir, "/") + "/" + prefix + strconv.FormatUint(seq, 10) + suffix
		f, err := m.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
		if err == nil || !os.IsExist(err) {
			return f, err
		}
	}
	return nil, pathErr("createtemp", dir+"/"+pattern, syscall.EEXIST)
}

// ReadDir возвращает записи директории, отсортированные по имени.
func (m *MemoryFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, n, err := m.lookupLocked("readdirent", name)
	if err != nil {
		return nil, err
	}
	if !n.dir {
		return nil, pathErr("readdirent", name, syscall.ENOTDIR)
	}

	prefix := p + "/"
	if p == "/" {
		prefix = "/"
	}
	var entries []fs.DirEntry
	for k, child := range m.nodes {
		if k == p || !strings.HasPrefix(k, prefix) {
			continue
		}
		if strings.Contains(k[len(prefix):], "/") {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(m.info(k, child)))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Walk обходит дерево последовательно в лексикографическом порядке.
// Блокировка на время вызова fn не удерживается.
func (m *MemoryFileSystem) Walk(root string, fn fs.WalkDirFunc) error {
	info, err := m.Stat(root)
	if err != nil {
		return fn(root, nil, err)
	}
	r := root
	if len(r) > 1 {
		r = strings.TrimSuffix(r, "/")
	}
	err = m.walk(r, fs.FileInfoToDirEntry(info), fn)
	if err == fs.SkipDir || err == fs.SkipAll {
		return nil
	}
	return err
}

func (m *MemoryFileSystem) walk(p string, d fs.DirEntry, fn fs.WalkDirFunc) error {
	if err := fn(p, d, nil); err != nil || !d.IsDir() {
		if err == fs.SkipDir && d.IsDir() {
			return nil
		}
		return err
	}

	entries, err := m.ReadDir(p)
	if err != nil {
		if err := fn(p, d, err); err != nil && err != fs.SkipDir {
			return err
		}
		return nil
	}
	for _, e := range entries {
		if err := m.walk(path.Join(p, e.Name()), e, fn); err != nil {
			if err == fs.SkipDir {
				return nil
			}
			return err
		}
	}
	return nil
}
