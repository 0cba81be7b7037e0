package filer

import (
	"sync"
	"time"

	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/metrics"
)

// Filesystem - движок операций над путями. Все операции синхронные и
// блокирующие; общее состояние (кеш временной папки приложения, реестр
// временных путей) защищено мьютексами.
type Filesystem struct {
	backend  FileSystem
	platform PlatformPaths
	identity AppIdentity
	chunk    int
	logger   logging.Logger
	metrics  metrics.Collector
	temps    *TempManager
	pid      int
	now      func() time.Time

	// appTempPath вычисляется один раз при первом успешном AppTempFolder
	// и больше не проверяется.
	appTempMu   sync.Mutex
	appTempPath Pathname
}

// Backend возвращает бэкенд движка.
func (f *Filesystem) Backend() FileSystem {
	return f.backend
}

// Platform возвращает платформенные пути движка.
func (f *Filesystem) Platform() PlatformPaths {
	return f.platform
}

// Identity возвращает организацию и приложение.
func (f *Filesystem) Identity() AppIdentity {
	return f.identity
}

// TempManager возвращает реестр созданных движком временных путей.
func (f *Filesystem) TempManager() *TempManager {
	return f.temps
}

// observe записывает метрику операции.
func (f *Filesystem) observe(op string, start time.Time, err error) {
	f.metrics.RecordOperation(op, time.Since(start), err == nil)
}

// precondition проверяет классификацию пути. Нарушение - ошибка вызывающего кода:
// в отладочной сборке останавливает процесс, иначе возвращается ErrPrecondition.
func (f *Filesystem) precondition(op string, p Pathname, want Kind) error {
	got := f.Classify(p)
	if got == want {
		return nil
	}
	debugAssert(false, "%s: %s ожидался %s, найден %s", op, p, want, got)
	return NewFileSystemError(op, p.String(),
		&kindError{want: want, got: got}, SeverityCritical)
}

// requireIdentity проверяет, что заданы организация и приложение.
func (f *Filesystem) requireIdentity(op string, needOrganization bool) error {
	ok := f.identity.Application != "" && (!needOrganization || f.identity.Organization != "")
	if ok {
		return nil
	}
	debugAssert(false, "%s: не задано имя организации или приложения", op)
	return NewFileSystemError(op, "", ErrIdentityUnset, SeverityCritical)
}

// kindError описывает нарушение предусловия по типу пути.
type kindError struct {
	want Kind
	got  Kind
}

func (e *kindError) Error() string {
	return ErrPrecondition.Error() + ": ожидался " + e.want.String() + ", найден " + e.got.String()
}

// Is позволяет проверять нарушение через errors.Is(err, ErrPrecondition),
// а для папки на месте файла (и наоборот) ещё и через ErrNotFile / ErrNotFolder.
func (e *kindError) Is(target error) bool {
	switch target {
	case ErrPrecondition:
		return true
	case ErrNotFile:
		return e.want == KindFile && e.got == KindDirectory
	case ErrNotFolder:
		return e.want == KindDirectory && e.got == KindFile
	}
	return false
}
