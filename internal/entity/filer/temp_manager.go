package filer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// TempManager учитывает временные папки и файлы, созданные движком
// (временная папка приложения, TempFilename), и удаляет их по запросу.
type TempManager struct {
	mu      sync.RWMutex
	entries map[string]*TempEntry // Карта активных временных путей
	backend FileSystem
	now     func() time.Time
}

// TempEntry представляет временный путь с метаданными.
type TempEntry struct {
	Path      Pathname  // Путь (для папки - в форме папки)
	CreatedAt time.Time // Время регистрации
	AutoClean bool      // Удалять при CleanupAll
}

// NewTempManager создает новый менеджер временных путей поверх бэкенда.
func NewTempManager(backend FileSystem) *TempManager {
	return &TempManager{
		entries: make(map[string]*TempEntry),
		backend: backend,
		now:     time.Now,
	}
}

// Track регистрирует временный путь. Повторная регистрация обновляет AutoClean.
func (tm *TempManager) Track(p Pathname, autoClean bool) *TempEntry {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if e, ok := tm.entries[p.String()]; ok {
		e.AutoClean = autoClean
		return e
	}
	e := &TempEntry{Path: p, CreatedAt: tm.now(), AutoClean: autoClean}
	tm.entries[p.String()] = e
	return e
}

// Untrack снимает путь с учёта, не трогая файловую систему. Для папки
// снимаются и все вложенные пути.
func (tm *TempManager) Untrack(p Pathname) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	key := p.String()
	delete(tm.entries, key)
	if !p.IsFolder() {
		return
	}
	for k := range tm.entries {
		if strings.HasPrefix(k, key) {
			delete(tm.entries, k)
		}
	}
}

// Entries возвращает зарегистрированные пути, отсортированные по имени.
func (tm *TempManager) Entries() []*TempEntry {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	out := make([]*TempEntry, 0, len(tm.entries))
	for _, e := range tm.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path.String() < out[j].Path.String() })
	return out
}

// removeLocked удаляет путь с диска. Отсутствующий путь не ошибка.
func (tm *TempManager) removeLocked(e *TempEntry) error {
	var err error
	if e.Path.IsFolder() {
		err = tm.backend.RemoveAll(e.Path.TrimSeparator())
	} else {
		err = tm.backend.Remove(e.Path.String())
	}
	if err != nil && !IsNotExist(err) {
		return fmt.Errorf("не удалось удалить %s: %w", e.Path, err)
	}
	delete(tm.entries, e.Path.String())
	return nil
}

// CleanupAll удаляет все пути с AutoClean и очищает реестр.
func (tm *TempManager) CleanupAll() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	var errs []error
	for key, e := range tm.entries {
		if e.AutoClean {
			if err := tm.removeLocked(e); err != nil {
				errs = append(errs, err)
			}
		}
		delete(tm.entries, key)
	}

	return errors.Join(errs...)
}

// TempStats - сводка по зарегистрированным временным путям.
type TempStats struct {
	Entries   int
	Folders   int
	Files     int
	AutoClean int
	// FileBytes - суммарный размер существующих файлов
	FileBytes int64
}

// GetStats возвращает статистику по временным путям.
func (tm *TempManager) GetStats() TempStats {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	stats := TempStats{Entries: len(tm.entries)}
	for _, e := range tm.entries {
		if e.AutoClean {
			stats.AutoClean++
		}
		if e.Path.IsFolder() {
			stats.Folders++
			continue
		}
		stats.Files++
		if info, err := tm.backend.Stat(e.Path.String()); err == nil {
			stats.FileBytes += info.Size()
		}
	}
	return stats
}
